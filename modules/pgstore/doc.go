// Package pgstore is a PostgreSQL-backed record store with lifecycle hooks,
// the reference host for automatic validation. It is intentionally small:
// parameterized inserts and updates driven by a record's attribute map, not
// a query builder.
//
// # Architecture
//
// Store implements the observer.Dispatcher boundary, so registering an
// Observer makes every Insert and Update validate its record first:
//
//	pool, err := pgstore.Connect(ctx, cfg)
//	users := pgstore.New[*User](pool, "users")
//	observer.MustNew(engine.New()).Register(users)
//
//	err = users.Insert(ctx, user) // creating hooks run before the INSERT
//
// Column names come from ValidationData keys and are quoted with
// pgx.Identifier, so attribute maps remain the single source of truth for
// both validation and persistence.
//
// The package also provides Unique, a directive that checks column
// uniqueness against the database. On updates the store injects the record's
// primary key into the check so a record never collides with itself:
//
//	"email": {engine.Required(), engine.Email(), pgstore.Unique(pool, "users", "email")}
//
// # Error Handling
//
// Validation failures surface as *recordval.FailedError from Insert/Update.
// Database failures are joined onto package sentinels comparable with
// errors.Is; SQLSTATE helpers (IsDuplicateKeyError, IsNotFoundError) classify
// driver errors for callers that race the unique check against a database
// constraint.
package pgstore
