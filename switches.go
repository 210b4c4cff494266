package recordval

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// Automatic validation can be toggled process-wide or per record type. The
// switches gate only the lifecycle-hook path (pkg/observer); direct Validate
// calls always run. Unlike the per-request runtimes this pattern originates
// from, Go hosts are concurrent, so both switches are race-safe.
var (
	globalDisabled atomic.Bool

	disabledTypes sync.Map // type name -> struct{}
)

// Enable turns automatic validation back on process-wide.
func Enable() {
	globalDisabled.Store(false)
}

// Disable turns automatic validation off process-wide. Per-type switches
// are preserved and apply again once re-enabled.
func Disable() {
	globalDisabled.Store(true)
}

// Enabled reports whether automatic validation is on process-wide.
func Enabled() bool {
	return !globalDisabled.Load()
}

// EnableType re-enables automatic validation for records of type T.
func EnableType[T any]() {
	disabledTypes.Delete(typeName[T]())
}

// DisableType disables automatic validation for records of type T. The
// switch matches the concrete type, so disable the type your hooks see
// (usually the pointer type used as the record).
func DisableType[T any]() {
	disabledTypes.Store(typeName[T](), struct{}{})
}

// TypeEnabled reports whether automatic validation is on for type T.
func TypeEnabled[T any]() bool {
	_, disabled := disabledTypes.Load(typeName[T]())
	return !disabled
}

// AutoEnabled reports whether the automatic path should validate rec,
// combining the global switch, the per-type switch, and the record's own
// skip flag. The observer consults it before every check.
func AutoEnabled(rec Record) bool {
	if !Enabled() {
		return false
	}
	if _, disabled := disabledTypes.Load(nameOf(reflect.TypeOf(rec))); disabled {
		return false
	}
	return !Skipped(rec)
}

func typeName[T any]() string {
	return nameOf(reflect.TypeOf((*T)(nil)).Elem())
}

func nameOf(t reflect.Type) string {
	if t == nil {
		return fmt.Sprintf("%T", nil)
	}
	return t.String()
}
