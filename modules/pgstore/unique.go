package pgstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/recordval"
)

type excludedKeyCtxKey struct{}

type excludedKey struct {
	column string
	value  any
}

// WithExcludedKey marks a primary key to exclude from uniqueness checks.
// Store.Update sets it automatically so a record never collides with its
// own stored row.
func WithExcludedKey(ctx context.Context, column string, value any) context.Context {
	return context.WithValue(ctx, excludedKeyCtxKey{}, excludedKey{column: column, value: value})
}

// ExcludedKeyFromContext returns the primary key marked by WithExcludedKey.
func ExcludedKeyFromContext(ctx context.Context) (column string, value any, ok bool) {
	key, ok := ctx.Value(excludedKeyCtxKey{}).(excludedKey)
	if !ok {
		return "", nil, false
	}
	return key.column, key.value, true
}

// Unique builds a directive that checks column uniqueness in table. Nil
// values pass (combine with engine.Required for mandatory attributes). A
// database failure counts as not unique: rejecting a write on a flaky
// connection is safer than letting a duplicate through.
func Unique(db DB, table, column string) recordval.Directive {
	return recordval.Directive{
		Name:   "unique",
		Params: map[string]any{"table": table, "column": column},
		Check: func(ctx context.Context, value any) bool {
			if value == nil {
				return true
			}

			query := fmt.Sprintf("SELECT NOT EXISTS (SELECT 1 FROM %s WHERE %s = $1",
				pgx.Identifier{table}.Sanitize(),
				pgx.Identifier{column}.Sanitize(),
			)
			args := []any{value}

			if pkCol, pkVal, ok := ExcludedKeyFromContext(ctx); ok {
				query += fmt.Sprintf(" AND %s <> $2", pgx.Identifier{pkCol}.Sanitize())
				args = append(args, pkVal)
			}
			query += ")"

			var free bool
			if err := db.QueryRow(ctx, query, args...).Scan(&free); err != nil {
				return false
			}
			return free
		},
	}
}
