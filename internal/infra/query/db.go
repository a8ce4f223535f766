// Package query holds the SQL statements and row types for the Postgres
// schema. Every method takes the DBTX to run on so callers decide whether a
// statement joins a transaction.
package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}
