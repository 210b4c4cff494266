package recordval

import "context"

// Validator checks attribute data against resolved rules. Implementations
// return ValidationErrors (directly or wrapped) for rule failures and any
// other error for infrastructure problems.
//
// The first-party implementation lives in pkg/engine; hosts with their own
// validation machinery adapt it behind this interface.
type Validator interface {
	Validate(ctx context.Context, data map[string]any, rules Rules) error
}

// Validate resolves the record's rules for op and runs them through v.
//
// On failure it writes the failures into the record's embedded Validating
// state (when present) and returns a *FailedError carrying the record. On
// success any previously recorded failures are cleared. Validate ignores
// skip flags and type switches; those gate only the automatic path driven
// by lifecycle hooks.
//
// Empty resolved rules succeed without consulting the validator, so a
// record with a non-nil empty Superseding tier is effectively exempt.
func Validate(ctx context.Context, v Validator, rec Record, op Operation) error {
	if rec == nil {
		return ErrNilRecord
	}

	rules := rec.ValidationRules().Resolve(op)
	if len(rules) == 0 {
		recordResult(rec, nil)
		return nil
	}

	if v == nil {
		return ErrNoValidator
	}

	err := v.Validate(ctx, rec.ValidationData(), rules)
	if err == nil {
		recordResult(rec, nil)
		return nil
	}

	verrs := AsValidationErrors(err)
	if verrs == nil {
		// Infrastructure failure, not a rule failure.
		return err
	}

	recordResult(rec, verrs)
	return NewFailedError(rec, verrs)
}

// Check is a convenience wrapper around Validate that reports the outcome as
// a boolean. Infrastructure errors also report false; callers that need to
// distinguish them should use Validate.
func Check(ctx context.Context, v Validator, rec Record, op Operation) bool {
	return Validate(ctx, v, rec, op) == nil
}

func recordResult(rec Record, errs ValidationErrors) {
	if sink, ok := rec.(errorSink); ok {
		sink.setValidationErrors(errs)
	}
}

// Skipped reports whether rec opted out of automatic validation via an
// embedded Validating. Records without the embed never skip.
func Skipped(rec Record) bool {
	if s, ok := rec.(skippable); ok {
		return s.validationSkipped()
	}
	return false
}
