package database

import (
	"context"
)

const createRecipe = `-- name: CreateRecipe :one
INSERT INTO recipes (title, location, ingredients, recipe, username)
VALUES ($1, $2, $3, $4, $5)
RETURNING rid
`

type CreateRecipeParams struct {
	Title       string
	Location    string
	Ingredients string
	Recipe      string
	Username    string
}

func (q *Queries) CreateRecipe(ctx context.Context, arg CreateRecipeParams) (int64, error) {
	row := q.db.QueryRow(ctx, createRecipe,
		arg.Title,
		arg.Location,
		arg.Ingredients,
		arg.Recipe,
		arg.Username,
	)
	var rid int64
	err := row.Scan(&rid)
	return rid, err
}

const getRecipe = `-- name: GetRecipe :one
SELECT rid, title, location, ingredients, recipe, username FROM recipes WHERE rid = $1
`

func (q *Queries) GetRecipe(ctx context.Context, id int64) (Recipe, error) {
	row := q.db.QueryRow(ctx, getRecipe, id)
	var i Recipe
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Location,
		&i.Ingredients,
		&i.Recipe,
		&i.Username,
	)
	return i, err
}

const getRecipeTitle = `-- name: GetRecipeTitle :one
SELECT title FROM recipes WHERE rid = $1
`

func (q *Queries) GetRecipeTitle(ctx context.Context, id int64) (string, error) {
	row := q.db.QueryRow(ctx, getRecipeTitle, id)
	var title string
	err := row.Scan(&title)
	return title, err
}

const listRecipeTitles = `-- name: ListRecipeTitles :many
SELECT rid, title FROM recipes ORDER BY rid
`

func (q *Queries) ListRecipeTitles(ctx context.Context) ([]RecipeTitle, error) {
	rows, err := q.db.Query(ctx, listRecipeTitles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RecipeTitle
	for rows.Next() {
		var i RecipeTitle
		if err := rows.Scan(&i.ID, &i.Title); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listRecipeSummaries = `-- name: ListRecipeSummaries :many
SELECT rid, location, title FROM recipes ORDER BY rid
`

func (q *Queries) ListRecipeSummaries(ctx context.Context) ([]RecipeSummary, error) {
	rows, err := q.db.Query(ctx, listRecipeSummaries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RecipeSummary
	for rows.Next() {
		var i RecipeSummary
		if err := rows.Scan(&i.ID, &i.Location, &i.Title); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listUserRecipeSummaries = `-- name: ListUserRecipeSummaries :many
SELECT rid, location, title FROM recipes WHERE username = $1 ORDER BY rid
`

func (q *Queries) ListUserRecipeSummaries(ctx context.Context, username string) ([]RecipeSummary, error) {
	rows, err := q.db.Query(ctx, listUserRecipeSummaries, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RecipeSummary
	for rows.Next() {
		var i RecipeSummary
		if err := rows.Scan(&i.ID, &i.Location, &i.Title); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getRecipeCounts = `-- name: GetRecipeCounts :many
SELECT username, COUNT(*) AS nu FROM recipes GROUP BY username ORDER BY nu DESC
`

func (q *Queries) GetRecipeCounts(ctx context.Context) ([]RecipeCount, error) {
	rows, err := q.db.Query(ctx, getRecipeCounts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RecipeCount
	for rows.Next() {
		var i RecipeCount
		if err := rows.Scan(&i.Username, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateRecipe = `-- name: UpdateRecipe :execrows
UPDATE recipes SET title = $1, location = $2, ingredients = $3, recipe = $4
WHERE rid = $5 AND username = $6
`

type UpdateRecipeParams struct {
	Title       string
	Location    string
	Ingredients string
	Recipe      string
	ID          int64
	Username    string
}

// UpdateRecipe rewrites a recipe owned by Username. Recipes owned by anyone
// else are left untouched and zero rows are reported.
func (q *Queries) UpdateRecipe(ctx context.Context, arg UpdateRecipeParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateRecipe,
		arg.Title,
		arg.Location,
		arg.Ingredients,
		arg.Recipe,
		arg.ID,
		arg.Username,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteRecipe = `-- name: DeleteRecipe :execrows
DELETE FROM recipes WHERE rid = $1 AND username = $2
`

type DeleteRecipeParams struct {
	ID       int64
	Username string
}

func (q *Queries) DeleteRecipe(ctx context.Context, arg DeleteRecipeParams) (int64, error) {
	result, err := q.db.Exec(ctx, deleteRecipe, arg.ID, arg.Username)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
