// Package recordval augments application data records with declarative
// validation behavior: tiered rule sets, lifecycle-hook driven checks, and a
// typed failure error that carries the offending record.
//
// The package is a coordination layer, not a framework. It owns rule
// resolution and error plumbing; the actual checking is delegated to a
// Validator implementation, and the triggering of automatic validation is
// delegated to whatever persistence layer the host application uses. A
// first-party Validator lives in pkg/engine, a lifecycle listener in
// pkg/observer, and a PostgreSQL-backed store wiring everything together in
// modules/pgstore.
//
// # Architecture
//
// A record opts into validation by implementing the Record interface and,
// optionally, embedding Validating to gain error storage and skip toggles:
//
//	type User struct {
//		recordval.Validating
//
//		ID    uuid.UUID
//		Email string
//		Name  string
//	}
//
//	func (u *User) ValidationRules() recordval.RuleSet {
//		return recordval.RuleSet{
//			Base: recordval.Rules{
//				"email": {engine.Required(), engine.Email()},
//				"name":  {engine.Required(), engine.MaxLen(100)},
//			},
//			Create: recordval.Rules{
//				"id": {engine.NotNilUUID()},
//			},
//		}
//	}
//
//	func (u *User) ValidationData() map[string]any {
//		return map[string]any{"id": u.ID, "email": u.Email, "name": u.Name}
//	}
//
// Rule resolution follows three precedence tiers. The Superseding tier, when
// set, exclusively replaces everything else. Otherwise the Base rules are
// overlaid by the operation-specific tier (Create or Update) and then by each
// Mixins entry in order, last write winning per attribute key.
//
// # Usage
//
//	v := engine.New()
//	if err := recordval.Validate(ctx, v, user, recordval.OpCreate); err != nil {
//		var failed *recordval.FailedError
//		if errors.As(err, &failed) {
//			// failed.Record() is the offending record,
//			// failed.Errors() the field-level failures.
//		}
//	}
//
// # Error Handling
//
// Validation failures are reported as *FailedError wrapping ValidationErrors;
// both are extractable with errors.As. Infrastructure errors returned by a
// Validator pass through untouched. Misuse (nil validator, nil record) is
// reported via sentinel errors comparable with errors.Is.
//
// The package follows these principles, in order: explicit over implicit,
// small host-side boundaries over framework coupling, and no hidden global
// state beyond the documented automatic-validation switches.
package recordval
