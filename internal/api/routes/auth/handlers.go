// Package auth contains handlers for registration, login and logout
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	apiError "github.com/matt-dz/tripmeal/internal/api/error"
	"github.com/matt-dz/tripmeal/internal/api/session"
	"github.com/matt-dz/tripmeal/internal/argon2id"
	"github.com/matt-dz/tripmeal/internal/database"
	"github.com/matt-dz/tripmeal/internal/env"
	"github.com/matt-dz/tripmeal/internal/view"
)

const (
	invalidCredentialsMessage = "Invalid credentials, try again"
	usernameTakenMessage      = "That username is already taken, please choose another"
	uniqueViolation           = "23505"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, r, http.StatusOK, view.PageLogin, view.Data{"Form": view.LoginForm{}})
}

// HandleLogin verifies the submitted credentials. Every failure renders the
// same message so the page does not reveal which usernames exist.
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	form := view.LoginForm{Username: username}

	if err := login(r, env, username, password); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to log in", slog.String("username", username), slog.Any("error", err))
		view.Render(w, r, apiError.InvalidCredentials.StatusCode(), view.PageLogin, view.Data{
			"Form":  form,
			"Error": invalidCredentialsMessage,
		})
		return
	}

	env.Logger.DebugContext(ctx, "Setting session")
	if err := session.Login(w, r, env.Config, username); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create session", slog.Any("error", err))
		view.Render(w, r, apiError.InternalServerError.StatusCode(), view.PageLogin, view.Data{
			"Form":  form,
			"Error": invalidCredentialsMessage,
		})
		return
	}

	session.FromCtx(ctx).Flash("You are now logged in")
	session.Redirect(w, r, "/user/")
}

func login(r *http.Request, env *env.Env, username, password string) error {
	ctx := r.Context()

	env.Logger.DebugContext(ctx, "Retrieving user information")
	user, err := env.Database.GetUser(ctx, username)
	if errors.Is(err, pgx.ErrNoRows) {
		return apiError.New(apiError.UserNotFound, invalidCredentialsMessage, err)
	} else if err != nil {
		return fmt.Errorf("getting user: %w", err)
	}

	env.Logger.DebugContext(ctx, "Comparing passwords")
	if err := argon2id.Compare(password, user.PasswordHash); err != nil {
		return apiError.New(apiError.InvalidCredentials, invalidCredentialsMessage, err)
	}

	return nil
}

// HandleLogout clears the session and sends the visitor to the recipe list.
func HandleLogout(w http.ResponseWriter, r *http.Request) {
	env := env.EnvFromCtx(r.Context())
	session.Logout(w, r, env.Config)
	session.Redirect(w, r, "/recipes/")
}

func HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, r, http.StatusOK, view.PageRegister, view.Data{"Form": view.RegisterForm{}})
}

func HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	request := RegisterRequest{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Confirm:  r.PostFormValue("confirm"),
	}
	form := view.RegisterForm{Username: request.Username, Email: request.Email}

	env.Logger.DebugContext(ctx, "Validating registration form")
	if err := validate.Struct(request); err != nil {
		env.Logger.DebugContext(ctx, "Registration form invalid", slog.Any("error", err))
		view.Render(w, r, apiError.ValidationFailed.StatusCode(), view.PageRegister, view.Data{
			"Form":   form,
			"Errors": messages(err),
		})
		return
	}

	env.Logger.DebugContext(ctx, "Checking username availability")
	exists, err := env.Database.UsernameExists(ctx, request.Username)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to check username", slog.Any("error", err))
		view.Error(w, r, apiError.InternalServerError, "Registration failed, please try again")
		return
	}
	if exists {
		renderUsernameTaken(w, r, form)
		return
	}

	env.Logger.DebugContext(ctx, "Hashing password")
	hash, err := argon2id.Hash(request.Password, argon2id.DefaultParams)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to hash password", slog.Any("error", err))
		view.Error(w, r, apiError.InternalServerError, "Registration failed, please try again")
		return
	}

	env.Logger.DebugContext(ctx, "Creating user")
	var pgErr *pgconn.PgError
	err = env.Database.CreateUser(ctx, database.CreateUserParams{
		Username:     request.Username,
		PasswordHash: hash,
		Email:        request.Email,
	})
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		env.Logger.ErrorContext(ctx, "Username registered concurrently", slog.Any("error", err))
		renderUsernameTaken(w, r, form)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create user", slog.Any("error", err))
		view.Error(w, r, apiError.InternalServerError, "Registration failed, please try again")
		return
	}

	sess := session.FromCtx(ctx)
	sess.Flash("Thanks for registering!")
	if err := session.Login(w, r, env.Config, request.Username); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create session", slog.Any("error", err))
		session.Redirect(w, r, "/login/")
		return
	}
	session.Redirect(w, r, "/favourites/")
}

func renderUsernameTaken(w http.ResponseWriter, r *http.Request, form view.RegisterForm) {
	session.FromCtx(r.Context()).Flash(usernameTakenMessage)
	view.Render(w, r, apiError.UsernameConflict.StatusCode(), view.PageRegister, view.Data{"Form": form})
}

func messages(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{"Registration failed, please try again"}
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		switch e.Field() {
		case "Username":
			msgs = append(msgs, "Username must be between 4 and 25 characters")
		case "Email":
			msgs = append(msgs, "Email address must be between 5 and 50 characters")
		case "Password":
			if e.Tag() == "eqfield" {
				msgs = append(msgs, "Passwords must match")
			} else {
				msgs = append(msgs, "Password is required")
			}
		}
	}
	return msgs
}
