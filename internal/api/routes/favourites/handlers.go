// Package favourites contains the handler for the favourites page.
package favourites

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/matt-dz/tripmeal/internal/api/session"
	"github.com/matt-dz/tripmeal/internal/database"
	"github.com/matt-dz/tripmeal/internal/env"
	"github.com/matt-dz/tripmeal/internal/favourites"
	"github.com/matt-dz/tripmeal/internal/view"
)

// HandleFavourites lists the titles of the user's favourite recipes. Ids of
// deleted recipes are skipped; any other failure shows the empty page.
func HandleFavourites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	sess := session.FromCtx(ctx)

	titles, err := favouriteTitles(r, env, sess.Username)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to load favourites", slog.Any("error", err))
		titles = nil
	}

	view.Render(w, r, http.StatusOK, view.PageFavourites, view.Data{"Favourites": titles})
}

func favouriteTitles(r *http.Request, env *env.Env, username string) ([]database.RecipeTitle, error) {
	ctx := r.Context()

	env.Logger.DebugContext(ctx, "Reading favourites")
	ids, err := favourites.NewStore(env.Database).List(ctx, username)
	if err != nil {
		return nil, err
	}

	titles := make([]database.RecipeTitle, 0, len(ids))
	for _, id := range ids {
		title, err := env.Database.GetRecipeTitle(ctx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			env.Logger.DebugContext(ctx, "Skipping deleted favourite", slog.Int64("rid", id))
			continue
		} else if err != nil {
			return nil, fmt.Errorf("getting title of recipe %d: %w", id, err)
		}
		titles = append(titles, database.RecipeTitle{ID: id, Title: title})
	}
	return titles, nil
}
