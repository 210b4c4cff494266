package pgstore

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/recordval"
	"github.com/dmitrymomot/recordval/pkg/observer"
)

// DB is the minimal querier the store needs. *pgxpool.Pool satisfies it, as
// do pgx transactions, so stores can run inside or outside a transaction.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store persists records of type T into a single table. Columns are derived
// from ValidationData keys; lifecycle hooks subscribed via the Dispatcher
// interface run before every write.
type Store[T recordval.Record] struct {
	db    DB
	table string
	hooks map[observer.Event][]observer.Hook
}

// New builds a store over db writing to table.
func New[T recordval.Record](db DB, table string) *Store[T] {
	return &Store[T]{
		db:    db,
		table: table,
		hooks: make(map[observer.Event][]observer.Hook),
	}
}

// Subscribe implements observer.Dispatcher. Hooks run in subscription order
// before the corresponding write; the first error aborts it.
func (s *Store[T]) Subscribe(event observer.Event, hook observer.Hook) {
	if hook != nil {
		s.hooks[event] = append(s.hooks[event], hook)
	}
}

// Insert fires creating hooks and then writes the record's attributes as a
// new row.
func (s *Store[T]) Insert(ctx context.Context, rec T) error {
	if err := s.fire(ctx, observer.EventCreating, rec); err != nil {
		return err
	}

	data := rec.ValidationData()
	if len(data) == 0 {
		return ErrNoColumns
	}

	cols := slices.Sorted(maps.Keys(data))
	quoted := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		quoted[i] = pgx.Identifier{col}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = data[col]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		pgx.Identifier{s.table}.Sanitize(),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return errors.Join(ErrExecFailed, err)
	}
	return nil
}

// Update fires updating hooks and then rewrites the record's attributes,
// targeting the row by primary key. The record must implement
// recordval.Keyed. The primary key is also injected into the hook context so
// uniqueness checks exclude the record itself.
func (s *Store[T]) Update(ctx context.Context, rec T) error {
	keyed, ok := any(rec).(recordval.Keyed)
	if !ok {
		return ErrNotKeyed
	}
	pkCol, pkVal := keyed.PrimaryKey()

	ctx = WithExcludedKey(ctx, pkCol, pkVal)
	if err := s.fire(ctx, observer.EventUpdating, rec); err != nil {
		return err
	}

	data := rec.ValidationData()
	cols := slices.Sorted(maps.Keys(data))
	cols = slices.DeleteFunc(cols, func(col string) bool { return col == pkCol })
	if len(cols) == 0 {
		return ErrNoColumns
	}

	assignments := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		assignments[i] = fmt.Sprintf("%s = $%d", pgx.Identifier{col}.Sanitize(), i+1)
		args = append(args, data[col])
	}
	args = append(args, pkVal)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		pgx.Identifier{s.table}.Sanitize(),
		strings.Join(assignments, ", "),
		pgx.Identifier{pkCol}.Sanitize(),
		len(args),
	)

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return errors.Join(ErrExecFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *Store[T]) fire(ctx context.Context, event observer.Event, rec T) error {
	for _, hook := range s.hooks[event] {
		if err := hook(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
