package database

import "github.com/jackc/pgx/v5/pgtype"

// User is a row of the users table. Favourites holds the comma-joined
// favourite recipe ids and is NULL for users without favourites.
type User struct {
	Username     string
	PasswordHash string
	Email        string
	Favourites   pgtype.Text
}

// Recipe is a row of the recipes table. Ingredients is stored comma-joined
// and Location holds the recipe's country.
type Recipe struct {
	ID          int64
	Title       string
	Location    string
	Ingredients string
	Recipe      string
	Username    string
}

type RecipeTitle struct {
	ID    int64
	Title string
}

type RecipeSummary struct {
	ID       int64
	Location string
	Title    string
}

type RecipeCount struct {
	Username string
	Count    int64
}
