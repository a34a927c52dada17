// Package api sets up and starts the web server with routing and middleware.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/matt-dz/tripmeal/internal/api/middleware"
	"github.com/matt-dz/tripmeal/internal/api/routes/auth"
	"github.com/matt-dz/tripmeal/internal/api/routes/favourites"
	"github.com/matt-dz/tripmeal/internal/api/routes/menu"
	"github.com/matt-dz/tripmeal/internal/api/routes/pages"
	"github.com/matt-dz/tripmeal/internal/api/routes/ping"
	"github.com/matt-dz/tripmeal/internal/api/routes/recipes"
	"github.com/matt-dz/tripmeal/internal/api/routes/users"
	"github.com/matt-dz/tripmeal/internal/env"

	"github.com/go-chi/chi/v5"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func addRoutes(router chi.Router) {
	router.Get("/ping", ping.HandlePing)

	router.Get("/", pages.HandleHome)
	router.Get("/_background/", pages.HandleBackground)

	router.Get("/login/", auth.HandleLoginPage)
	router.Post("/login/", auth.HandleLogin)
	router.Get("/register/", auth.HandleRegisterPage)
	router.Post("/register/", auth.HandleRegister)

	router.Get("/recipes/", recipes.HandleListRecipes)
	for _, path := range []string{"/recipe", "/recipe/"} {
		router.Get(path, recipes.HandleRecipe)
		router.Post(path, recipes.HandleRecipePost)
	}

	router.Get("/menu/", menu.HandleMenu)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin)

		r.Get("/logout/", auth.HandleLogout)

		r.Get("/newrecipe/", recipes.HandleNewRecipe)
		r.Post("/newrecipe/", recipes.HandleNewRecipe)
		r.Get("/addrecipe/", recipes.HandleAddRecipePage)
		r.Post("/addrecipe/", recipes.HandleAddRecipe)

		r.Get("/edit_recipe/{rid}", recipes.HandleEditRecipePage)
		r.Post("/edit_recipe/{rid}", recipes.HandleEditRecipe)
		r.Get("/delete_recipe/{rid}", recipes.HandleDeleteRecipePage)
		r.Post("/delete_recipe/{rid}", recipes.HandleDeleteRecipe)

		r.Get("/favourites/", favourites.HandleFavourites)
		r.Get("/user/", users.HandleUserPage)
	})
}

// NewRouter builds the application's handler tree.
func NewRouter(env *env.Env) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(env.Logger))
	router.Use(middleware.InjectEnv(env))
	router.Use(middleware.LoadSession)

	addRoutes(router)
	return router
}

// Start serves the application until ctx is cancelled, then drains
// in-flight requests.
func Start(ctx context.Context, env *env.Env) error {
	addr := fmt.Sprintf(":%d", env.Config.ServerPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(env),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		env.Logger.Info("Listening", slog.String("addr", addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	env.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}
