// Package users contains the handler for the user page.
package users

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/matt-dz/tripmeal/internal/api/session"
	"github.com/matt-dz/tripmeal/internal/database"
	"github.com/matt-dz/tripmeal/internal/env"
	"github.com/matt-dz/tripmeal/internal/role"
	"github.com/matt-dz/tripmeal/internal/view"
)

// Ranking is how many recipes the user shared out of all recipes.
type Ranking struct {
	Own   int64
	Total int64
}

// RankingOf sums counts into the user's own count and the overall total.
func RankingOf(counts []database.RecipeCount, username string) Ranking {
	var rank Ranking
	for _, c := range counts {
		rank.Total += c.Count
		if c.Username == username {
			rank.Own = c.Count
		}
	}
	return rank
}

// HandleUserPage lists the user's recipes with their ranking. The admin sees
// every recipe. Failures fall back to the empty favourites page.
func HandleUserPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	sess := session.FromCtx(ctx)

	recipes, rank, err := userRecipes(r, env, sess.Username)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to load user page", slog.Any("error", err))
		view.Render(w, r, http.StatusOK, view.PageFavourites, view.Data{"Favourites": nil})
		return
	}

	view.Render(w, r, http.StatusOK, view.PageUser, view.Data{
		"User":    sess.Username,
		"Own":     rank.Own,
		"Total":   rank.Total,
		"Recipes": recipes,
	})
}

func userRecipes(r *http.Request, env *env.Env, username string) ([]database.RecipeSummary, Ranking, error) {
	ctx := r.Context()

	var (
		recipes []database.RecipeSummary
		err     error
	)
	if role.Of(username, env.Config.AdminUsername).SeesAllRecipes() {
		env.Logger.DebugContext(ctx, "Listing all recipes for admin")
		recipes, err = env.Database.ListRecipeSummaries(ctx)
	} else {
		env.Logger.DebugContext(ctx, "Listing user recipes")
		recipes, err = env.Database.ListUserRecipeSummaries(ctx, username)
	}
	if err != nil {
		return nil, Ranking{}, fmt.Errorf("listing recipes: %w", err)
	}

	counts, err := env.Database.GetRecipeCounts(ctx)
	if err != nil {
		return nil, Ranking{}, fmt.Errorf("getting recipe counts: %w", err)
	}

	return recipes, RankingOf(counts, username), nil
}
