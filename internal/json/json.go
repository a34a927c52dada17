// Package json contains utilities for handling JSON.
package json

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Encode writes v as the JSON response body with the given status.
func Encode(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
