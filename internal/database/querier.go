package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate go run go.uber.org/mock/mockgen -destination=../dbmock/querier.go -package=dbmock . Querier

// Querier is the full set of statements the application runs against the
// database.
type Querier interface {
	CheckUsersTableExists(ctx context.Context) (bool, error)

	CreateUser(ctx context.Context, arg CreateUserParams) error
	GetUser(ctx context.Context, username string) (User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	GetUserFavourites(ctx context.Context, username string) (pgtype.Text, error)
	UpdateUserFavourites(ctx context.Context, arg UpdateUserFavouritesParams) error

	CreateRecipe(ctx context.Context, arg CreateRecipeParams) (int64, error)
	GetRecipe(ctx context.Context, id int64) (Recipe, error)
	GetRecipeTitle(ctx context.Context, id int64) (string, error)
	ListRecipeTitles(ctx context.Context) ([]RecipeTitle, error)
	ListRecipeSummaries(ctx context.Context) ([]RecipeSummary, error)
	ListUserRecipeSummaries(ctx context.Context, username string) ([]RecipeSummary, error)
	GetRecipeCounts(ctx context.Context) ([]RecipeCount, error)
	UpdateRecipe(ctx context.Context, arg UpdateRecipeParams) (int64, error)
	DeleteRecipe(ctx context.Context, arg DeleteRecipeParams) (int64, error)
}

var _ Querier = (*Queries)(nil)
