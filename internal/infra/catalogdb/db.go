// Package catalogdb is the hand-written SQL layer for the exhibit
// catalog. It mirrors the generated-queries shape: a DBTX seam so the
// same queries run against a pool, a single connection, or a
// transaction.
package catalogdb

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}
