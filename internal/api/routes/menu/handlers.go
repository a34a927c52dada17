// Package menu contains the handler for the weekly menu page.
package menu

import (
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/matt-dz/tripmeal/internal/api/session"
	"github.com/matt-dz/tripmeal/internal/env"
	"github.com/matt-dz/tripmeal/internal/favourites"
	"github.com/matt-dz/tripmeal/internal/menu"
	"github.com/matt-dz/tripmeal/internal/view"
)

// HandleMenu draws a week of recipes, starting from the visitor's favourites
// when logged in.
func HandleMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	sess := session.FromCtx(ctx)

	env.Logger.DebugContext(ctx, "Listing recipes")
	titles, err := env.Database.ListRecipeTitles(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to list recipes", slog.Any("error", err))
		titles = nil
	}
	recipes := make(map[int64]string, len(titles))
	for _, t := range titles {
		recipes[t.ID] = t.Title
	}

	var favs []int64
	if sess.LoggedIn() {
		env.Logger.DebugContext(ctx, "Reading favourites")
		favs, err = favourites.NewStore(env.Database).List(ctx, sess.Username)
		if err != nil {
			env.Logger.ErrorContext(ctx, "Failed to read favourites", slog.Any("error", err))
			favs = nil
		}
	}

	src := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	week := menu.Generate(src, recipes, favs)
	env.Logger.DebugContext(ctx, "Generated menu",
		slog.Int("entries", len(week)),
		slog.Int("favourites", week.FavouriteCount()))

	view.Render(w, r, http.StatusOK, view.PageMenu, view.Data{"Menu": week})
}
