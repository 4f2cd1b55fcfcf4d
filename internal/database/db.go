package database

import (
	"context"
	"database/sql"
)

// DB is the query surface the repositories run on. Every matching query is a
// single statement, so the facade carries no transaction API; the migration
// runner gets the stdlib handle through SQLDB.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	SQLDB() *sql.DB
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
