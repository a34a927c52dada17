// Package pages contains handlers for the static pages.
package pages

import (
	"log/slog"
	"net/http"

	"github.com/matt-dz/tripmeal/internal/env"
	mJson "github.com/matt-dz/tripmeal/internal/json"
	"github.com/matt-dz/tripmeal/internal/view"
)

type BackgroundResponse struct {
	Ingredient string `json:"ingredient"`
}

func HandleHome(w http.ResponseWriter, r *http.Request) {
	view.Render(w, r, http.StatusOK, view.PageMain, nil)
}

// HandleBackground echoes the ingredients_submit query parameter back to the
// recipe form script.
func HandleBackground(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	resp := BackgroundResponse{Ingredient: r.URL.Query().Get("ingredients_submit")}
	if err := mJson.Encode(w, http.StatusOK, resp); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}
