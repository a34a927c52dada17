package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const checkUsersTableExists = `-- name: CheckUsersTableExists :one
SELECT EXISTS (
  SELECT 1 FROM information_schema.tables
  WHERE table_schema = current_schema() AND table_name = 'users'
)
`

func (q *Queries) CheckUsersTableExists(ctx context.Context) (bool, error) {
	row := q.db.QueryRow(ctx, checkUsersTableExists)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const createUser = `-- name: CreateUser :exec
INSERT INTO users (username, password, email) VALUES ($1, $2, $3)
`

type CreateUserParams struct {
	Username     string
	PasswordHash string
	Email        string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) error {
	_, err := q.db.Exec(ctx, createUser, arg.Username, arg.PasswordHash, arg.Email)
	return err
}

const getUser = `-- name: GetUser :one
SELECT username, password, email, favourites FROM users WHERE username = $1
`

func (q *Queries) GetUser(ctx context.Context, username string) (User, error) {
	row := q.db.QueryRow(ctx, getUser, username)
	var i User
	err := row.Scan(
		&i.Username,
		&i.PasswordHash,
		&i.Email,
		&i.Favourites,
	)
	return i, err
}

const usernameExists = `-- name: UsernameExists :one
SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)
`

func (q *Queries) UsernameExists(ctx context.Context, username string) (bool, error) {
	row := q.db.QueryRow(ctx, usernameExists, username)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const getUserFavourites = `-- name: GetUserFavourites :one
SELECT favourites FROM users WHERE username = $1
`

func (q *Queries) GetUserFavourites(ctx context.Context, username string) (pgtype.Text, error) {
	row := q.db.QueryRow(ctx, getUserFavourites, username)
	var favourites pgtype.Text
	err := row.Scan(&favourites)
	return favourites, err
}

const updateUserFavourites = `-- name: UpdateUserFavourites :exec
UPDATE users SET favourites = $1 WHERE username = $2
`

type UpdateUserFavouritesParams struct {
	Favourites pgtype.Text
	Username   string
}

func (q *Queries) UpdateUserFavourites(ctx context.Context, arg UpdateUserFavouritesParams) error {
	_, err := q.db.Exec(ctx, updateUserFavourites, arg.Favourites, arg.Username)
	return err
}
