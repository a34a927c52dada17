package favourites

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/matt-dz/tripmeal/internal/database"
)

var ErrUserNotFound = errors.New("user not found")

type Querier interface {
	GetUserFavourites(ctx context.Context, username string) (pgtype.Text, error)
	UpdateUserFavourites(ctx context.Context, arg database.UpdateUserFavouritesParams) error
}

// Store applies favourites mutations to a user's row. Every mutation is a
// read followed by at most one UPDATE.
type Store struct {
	db Querier
}

func NewStore(db Querier) *Store {
	return &Store{db: db}
}

// Raw returns the stored favourites string, empty when the column is NULL.
func (s *Store) Raw(ctx context.Context, username string) (string, error) {
	favs, err := s.db.GetUserFavourites(ctx, username)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrUserNotFound
	} else if err != nil {
		return "", fmt.Errorf("getting favourites: %w", err)
	}
	if !favs.Valid {
		return "", nil
	}
	return favs.String, nil
}

func (s *Store) List(ctx context.Context, username string) ([]int64, error) {
	raw, err := s.Raw(ctx, username)
	if err != nil {
		return nil, err
	}
	return Parse(raw), nil
}

func (s *Store) Contains(ctx context.Context, username string, rid int64) (bool, error) {
	raw, err := s.Raw(ctx, username)
	if err != nil {
		return false, err
	}
	return Contains(raw, rid), nil
}

func (s *Store) Add(ctx context.Context, username string, rid int64) error {
	return s.mutate(ctx, username, func(raw string) string { return Add(raw, rid) })
}

func (s *Store) Remove(ctx context.Context, username string, rid int64) error {
	return s.mutate(ctx, username, func(raw string) string { return Remove(raw, rid) })
}

func (s *Store) mutate(ctx context.Context, username string, fn func(string) string) error {
	raw, err := s.Raw(ctx, username)
	if err != nil {
		return err
	}

	updated := fn(raw)
	if updated == raw {
		return nil
	}

	err = s.db.UpdateUserFavourites(ctx, database.UpdateUserFavouritesParams{
		Favourites: pgtype.Text{
			String: updated,
			Valid:  updated != "",
		},
		Username: username,
	})
	if err != nil {
		return fmt.Errorf("updating favourites: %w", err)
	}
	return nil
}
