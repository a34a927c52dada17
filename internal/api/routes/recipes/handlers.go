// Package recipes contains handlers for the recipe resource.
package recipes

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	apiError "github.com/matt-dz/tripmeal/internal/api/error"
	"github.com/matt-dz/tripmeal/internal/api/session"
	"github.com/matt-dz/tripmeal/internal/database"
	"github.com/matt-dz/tripmeal/internal/env"
	"github.com/matt-dz/tripmeal/internal/favourites"
	"github.com/matt-dz/tripmeal/internal/recipe"
	"github.com/matt-dz/tripmeal/internal/view"
)

const (
	recipeNotFoundMessage = "Recipe not found"
	recipeNotDeleted      = "Recipe not deleted"
)

func HandleNewRecipe(w http.ResponseWriter, r *http.Request) {
	view.Render(w, r, http.StatusOK, view.PageNewRecipe, view.Data{"Form": recipe.Form{}})
}

// HandleAddRecipePage serves GET /addrecipe/, which only shows the home page.
func HandleAddRecipePage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, r, http.StatusOK, view.PageMain, nil)
}

func HandleAddRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	sess := session.FromCtx(ctx)

	form := recipe.ReadForm(r)
	env.Logger.DebugContext(ctx, "Validating recipe")
	if err := form.Validate(); err != nil {
		env.Logger.DebugContext(ctx, "Recipe invalid", slog.Any("error", err))
		view.Render(w, r, apiError.ValidationFailed.StatusCode(), view.PageNewRecipe, view.Data{
			"Form":   form,
			"Errors": recipe.Messages(err),
		})
		return
	}

	env.Logger.DebugContext(ctx, "Creating recipe")
	rid, err := env.Database.CreateRecipe(ctx, database.CreateRecipeParams{
		Title:       form.Title,
		Location:    form.Country,
		Ingredients: form.StoredIngredients(),
		Recipe:      form.Recipe,
		Username:    sess.Username,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create recipe", slog.Any("error", err))
		view.Error(w, r, apiError.InternalServerError, "Your recipe could not be saved, please try again")
		return
	}
	env.Logger.DebugContext(ctx, "Created recipe", slog.Int64("rid", rid))

	sess.Flash("Thanks for your recipe :)")
	session.Redirect(w, r, "/newrecipe/")
}

// HandleListRecipes lists every recipe. A failed read shows an empty list.
func HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	recipes, err := env.Database.ListRecipeTitles(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to list recipes", slog.Any("error", err))
		recipes = nil
	}

	view.Render(w, r, http.StatusOK, view.PageRecipes, view.Data{"Recipes": recipes})
}

// HandleRecipe shows one recipe. fav=true or fav=false adds or removes it from
// the visitor's favourites first.
func HandleRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	sess := session.FromCtx(ctx)
	query := r.URL.Query()

	rec, err := loadRecipe(r, query.Get("rid"))
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to load recipe", slog.Any("error", err))
		redirectNotFound(w, r, err)
		return
	}

	store := favourites.NewStore(env.Database)
	var fav bool
	switch query.Get("fav") {
	case "true", "false":
		if !sess.LoggedIn() {
			sess.Flash("Please log in to manage your favourites")
			session.Redirect(w, r, "/login/")
			return
		}

		fav = query.Get("fav") == "true"
		if fav {
			err = store.Add(ctx, sess.Username, rec.ID)
		} else {
			err = store.Remove(ctx, sess.Username, rec.ID)
		}
		if err != nil {
			env.Logger.ErrorContext(ctx, "Failed to update favourites", slog.Bool("fav", fav), slog.Any("error", err))
			session.Redirect(w, r, "/recipes/")
			return
		}
	default:
		if sess.LoggedIn() {
			fav, err = store.Contains(ctx, sess.Username, rec.ID)
			if err != nil {
				env.Logger.ErrorContext(ctx, "Failed to read favourites", slog.Any("error", err))
				fav = false
			}
		}
	}

	view.Render(w, r, http.StatusOK, view.PageRecipe, view.Data{
		"Recipe": rec,
		"Fav":    fav,
	})
}

// HandleRecipePost answers form posts to /recipe by returning to the list.
func HandleRecipePost(w http.ResponseWriter, r *http.Request) {
	session.Redirect(w, r, "/recipes/")
}

func HandleEditRecipePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	rec, err := loadRecipe(r, chi.URLParam(r, "rid"))
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to load recipe", slog.Any("error", err))
		redirectNotFound(w, r, err)
		return
	}

	view.Render(w, r, http.StatusOK, view.PageEditRecipe, view.Data{
		"RID": rec.ID,
		"Form": recipe.Form{
			Title:       rec.Title,
			Country:     rec.Location,
			Ingredients: recipe.EditIngredients(rec.Ingredients),
			Recipe:      rec.Recipe,
		},
	})
}

// HandleEditRecipe updates a recipe. The update only matches rows owned by
// the session user, so editing someone else's recipe changes nothing.
func HandleEditRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	sess := session.FromCtx(ctx)

	rec, err := loadRecipe(r, chi.URLParam(r, "rid"))
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to load recipe", slog.Any("error", err))
		redirectNotFound(w, r, err)
		return
	}

	form := recipe.ReadForm(r)
	if err := form.Validate(); err != nil {
		env.Logger.DebugContext(ctx, "Recipe invalid", slog.Any("error", err))
		view.Render(w, r, apiError.ValidationFailed.StatusCode(), view.PageEditRecipe, view.Data{
			"RID":    rec.ID,
			"Form":   form,
			"Errors": recipe.Messages(err),
		})
		return
	}

	env.Logger.DebugContext(ctx, "Updating recipe", slog.Int64("rid", rec.ID))
	rows, err := env.Database.UpdateRecipe(ctx, database.UpdateRecipeParams{
		Title:       form.Title,
		Location:    form.Country,
		Ingredients: form.StoredIngredients(),
		Recipe:      form.Recipe,
		ID:          rec.ID,
		Username:    sess.Username,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to update recipe", slog.Any("error", err))
		view.Error(w, r, apiError.InternalServerError, "Your recipe could not be saved, please try again")
		return
	}
	if rows == 0 {
		env.Logger.WarnContext(ctx, "Recipe not owned by user", slog.Int64("rid", rec.ID))
	}

	sess.Flash("Recipe updated")
	session.Redirect(w, r, "/user/")
}

// HandleDeleteRecipePage refuses deletes that were not submitted as a form.
func HandleDeleteRecipePage(w http.ResponseWriter, r *http.Request) {
	session.FromCtx(r.Context()).Flash(recipeNotDeleted)
	session.Redirect(w, r, "/user/")
}

func HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	sess := session.FromCtx(ctx)

	rid, err := strconv.ParseInt(chi.URLParam(r, "rid"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Invalid recipe id", slog.Any("error", err))
		sess.Flash(recipeNotDeleted)
		session.Redirect(w, r, "/user/")
		return
	}

	env.Logger.DebugContext(ctx, "Deleting recipe", slog.Int64("rid", rid))
	rows, err := env.Database.DeleteRecipe(ctx, database.DeleteRecipeParams{
		ID:       rid,
		Username: sess.Username,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to delete recipe", slog.Any("error", err))
		sess.Flash(recipeNotDeleted)
		session.Redirect(w, r, "/user/")
		return
	}
	if rows == 0 {
		env.Logger.WarnContext(ctx, "Recipe not owned by user", slog.Int64("rid", rid))
	}

	sess.Flash("Recipe successfully deleted")
	session.Redirect(w, r, "/user/")
}

func loadRecipe(r *http.Request, rawID string) (database.Recipe, error) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	rid, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return database.Recipe{}, apiError.New(apiError.RecipeNotFound, recipeNotFoundMessage, err)
	}

	rec, err := env.Database.GetRecipe(ctx, rid)
	if errors.Is(err, pgx.ErrNoRows) {
		return database.Recipe{}, apiError.New(apiError.RecipeNotFound, recipeNotFoundMessage, err)
	} else if err != nil {
		return database.Recipe{}, apiError.New(apiError.InternalServerError, "", err)
	}
	return rec, nil
}

// redirectNotFound sends the visitor back to the recipe list, flashing the
// not found message when the recipe does not exist.
func redirectNotFound(w http.ResponseWriter, r *http.Request, err error) {
	if apiError.CodeOf(err) == apiError.RecipeNotFound {
		session.FromCtx(r.Context()).Flash(apiError.MessageOf(err, recipeNotFoundMessage))
	}
	session.Redirect(w, r, "/recipes/")
}
