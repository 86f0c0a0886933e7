// Package sqlexec is the boundary between the storefront and the
// database driver. Every outgoing command text runs through an ordered
// interceptor chain immediately before dispatch, and whatever text
// comes back is executed exactly as returned — no re-validation, no
// re-parsing.
package sqlexec

import (
	"context"
	"database/sql"
)

// Interceptor observes the fully rendered outgoing command text and
// may return a rewritten one. It must be safe to call for every
// command type.
type Interceptor interface {
	InterceptCommand(cmd string) string
}

// Apply runs cmd through the chain in order.
func Apply(hooks []Interceptor, cmd string) string {
	for _, h := range hooks {
		cmd = h.InterceptCommand(cmd)
	}
	return cmd
}

// DB wraps *sql.DB with the interceptor chain.
type DB struct {
	db    *sql.DB
	hooks []Interceptor
}

// Wrap attaches interceptors to a database handle.
func Wrap(db *sql.DB, hooks ...Interceptor) *DB {
	return &DB{db: db, hooks: hooks}
}

// ExecContext dispatches a write command after interception.
func (d *DB) ExecContext(ctx context.Context, cmd string, args ...any) (sql.Result, error) {
	return d.db.ExecContext(ctx, Apply(d.hooks, cmd), args...)
}

// QueryContext dispatches a read command after interception.
func (d *DB) QueryContext(ctx context.Context, cmd string, args ...any) (*sql.Rows, error) {
	return d.db.QueryContext(ctx, Apply(d.hooks, cmd), args...)
}

// QueryRowContext dispatches a single-row read after interception.
func (d *DB) QueryRowContext(ctx context.Context, cmd string, args ...any) *sql.Row {
	return d.db.QueryRowContext(ctx, Apply(d.hooks, cmd), args...)
}

// Ping reports whether the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}
