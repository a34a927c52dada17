// Package database holds the hand-written SQL the application runs against
// Postgres, plus the pool wrapper and schema bootstrap.
package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

type Database struct {
	*Queries

	Pool *pgxpool.Pool
}

func NewDatabase(pool *pgxpool.Pool) *Database {
	return &Database{
		Queries: New(pool),
		Pool:    pool,
	}
}

// Close releases every pooled connection.
func (db *Database) Close() {
	db.Pool.Close()
}

// EnsureSchema applies the schema to the database if the users table is not
// detected.
func (db *Database) EnsureSchema(ctx context.Context) error {
	exists, err := db.CheckUsersTableExists(ctx)
	if err != nil {
		return fmt.Errorf("ensuring schema exists: %w", err)
	}

	if exists {
		return nil
	}

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("applying database schema: %w", err)
	}

	return nil
}
