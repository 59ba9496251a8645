package repository

import "context"

// DB reports whether the database is reachable. *pgxpool.Pool implements it.
type DB interface {
	Ping(ctx context.Context) error
}
