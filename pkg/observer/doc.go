// Package observer wires automatic validation into a host's record
// lifecycle. An Observer subscribes validation hooks to the creating and
// updating events of any Dispatcher, so records flowing through the host's
// persistence layer are checked before they are written.
//
// # Architecture
//
// The Dispatcher interface is the host-side boundary: anything that can
// register a hook per lifecycle event can drive the observer. The store in
// modules/pgstore implements it; so can an adapter over a host's own event
// bus. Hooks receive the raw event payload — values that do not implement
// recordval.Record pass through untouched, as do records gated off by the
// process-wide switch, the per-type switch, or their own skip flag.
//
// # Usage
//
//	obs := observer.MustNew(engine.New(), observer.WithLogger(log))
//	obs.Register(store) // store implements observer.Dispatcher
//
//	err := store.Insert(ctx, user) // validates before the INSERT
//
// # Error Handling
//
// A failing hook returns *recordval.FailedError, which dispatchers are
// expected to propagate to abort the write. Hook failures are also logged
// (field names only, never values) unless logging is disabled via config.
package observer
