// Package ping contains handlers for pinging the server
package ping

import "net/http"

// HandlePing answers liveness probes.
func HandlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
