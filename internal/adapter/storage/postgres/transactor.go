package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor hands out pgx transactions so a batch row and its documents
// can be persisted in a single commit.
type Transactor struct {
	db Pool
}

// NewTransactor wraps the connection pool.
func NewTransactor(db Pool) *Transactor {
	return &Transactor{db: db}
}

// Begin opens a transaction on the pool.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.db.Begin(ctx)
}
