package recordval

// Record opts a type into validation. It is the capability marker checked by
// the automatic-validation path: values that do not implement it pass through
// lifecycle hooks untouched.
type Record interface {
	// ValidationRules returns the record's tiered rule set.
	ValidationRules() RuleSet

	// ValidationData returns the attribute values to validate, keyed the
	// same way as the rules.
	ValidationData() map[string]any
}

// Keyed is implemented by records with a single-column primary key. The
// store uses it to target updates and to exclude the record itself from
// uniqueness checks.
type Keyed interface {
	PrimaryKey() (column string, value any)
}

// errorSink receives validation results. Embedding Validating satisfies it.
type errorSink interface {
	setValidationErrors(ValidationErrors)
}

// skippable reports whether the record opted out of automatic validation.
// Embedding Validating satisfies it.
type skippable interface {
	validationSkipped() bool
}

// Validating is the embeddable state carrier for validated records. It
// stores the most recent validation result and a per-record skip flag.
// Embedding it is optional: records without it still validate, they just
// cannot be queried for their last failures afterwards.
//
// Validating is not safe for concurrent use; it is request-scoped state,
// owned by whoever owns the record value.
type Validating struct {
	errs    ValidationErrors
	skipped bool
}

func (v *Validating) setValidationErrors(errs ValidationErrors) {
	v.errs = errs
}

func (v *Validating) validationSkipped() bool {
	return v.skipped
}

// ValidationErrors returns the failures recorded by the last validation,
// or nil if the record passed or was never validated.
func (v *Validating) ValidationErrors() ValidationErrors {
	return v.errs
}

// IsValid reports whether the last validation recorded no failures.
func (v *Validating) IsValid() bool {
	return v.errs.IsEmpty()
}

// IsInvalid reports whether the last validation recorded failures.
func (v *Validating) IsInvalid() bool {
	return !v.errs.IsEmpty()
}

// SkipValidation opts this record out of the automatic (lifecycle hook)
// validation path. Direct calls to Validate are unaffected.
func (v *Validating) SkipValidation() {
	v.skipped = true
}

// ResumeValidation reverses SkipValidation.
func (v *Validating) ResumeValidation() {
	v.skipped = false
}
