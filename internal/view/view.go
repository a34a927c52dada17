// Package view renders the server-side HTML pages.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/tripmeal/internal/api/error"
	"github.com/matt-dz/tripmeal/internal/api/session"
	"github.com/matt-dz/tripmeal/internal/env"
	"github.com/matt-dz/tripmeal/internal/markup"
	"github.com/matt-dz/tripmeal/internal/recipe"
)

const layout = "layout.html"

const (
	PageMain       = "main.html"
	PageLogin      = "login.html"
	PageRegister   = "register.html"
	PageNewRecipe  = "newrecipe.html"
	PageRecipes    = "recipes.html"
	PageRecipe     = "recipe.html"
	PageFavourites = "favourites.html"
	PageMenu       = "menu.html"
	PageUser       = "user.html"
	PageEditRecipe = "edit_recipe.html"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"markup":      markup.RenderBody,
	"ingredients": recipe.SplitIngredients,
}

// Each page is parsed together with the layout on its own so that every
// page can define "content".
var pages = parse(
	PageMain, PageLogin, PageRegister, PageNewRecipe, PageRecipes,
	PageRecipe, PageFavourites, PageMenu, PageUser, PageEditRecipe,
)

func parse(names ...string) map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(names))
	for _, name := range names {
		parsed[name] = template.Must(
			template.New(name).Funcs(funcs).ParseFS(files, "templates/"+layout, "templates/"+name),
		)
	}
	return parsed
}

// Data is the template payload for a page. Render fills in the session
// fields.
type Data map[string]any

// Render writes page with status. The layout receives the logged in user,
// pending flash messages and the country list alongside data.
func Render(w http.ResponseWriter, r *http.Request, status int, page string, data Data) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	tmpl, ok := pages[page]
	if !ok {
		env.Logger.ErrorContext(ctx, "template not found", slog.String("page", page))
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = Data{}
	}
	sess := session.FromCtx(ctx)
	data["LoggedIn"] = sess.LoggedIn()
	data["CurrentUser"] = sess.Username
	data["Countries"] = recipe.Countries
	data["Flashes"] = session.Flashes(w, r)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layout, data); err != nil {
		env.Logger.ErrorContext(ctx, "failed to render template", slog.String("page", page), slog.Any("error", err))
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write page", slog.Any("error", err))
	}
}

// Error renders the home page with message flashed and the status mapped
// from code.
func Error(w http.ResponseWriter, r *http.Request, code apiError.ErrorCode, message string) {
	status := code.StatusCode()
	if status == 0 {
		status = http.StatusInternalServerError
	}
	session.FromCtx(r.Context()).Flash(message)
	Render(w, r, status, PageMain, nil)
}

// LoginForm repopulates the login page after a failed attempt.
type LoginForm struct {
	Username string
}

// RegisterForm repopulates the registration page. Passwords are never echoed.
type RegisterForm struct {
	Username string
	Email    string
}
