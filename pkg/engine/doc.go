// Package engine is the first-party recordval.Validator implementation. It
// evaluates directive checks against an attribute data map and renders
// field-level messages from a catalog.
//
// # Architecture
//
// The package has two halves. The Engine evaluates resolved rules: for every
// attribute it runs the attached directives against the attribute's value and
// aggregates failures into recordval.ValidationErrors. The directive
// constructors (Required, MinLen, Email, Between, UUID, ...) build
// recordval.Directive values in families grouped per source file, mirroring
// how most hosts group their own custom directives.
//
// Every directive except Required treats a nil value as passing, so optional
// attributes only fail when present and malformed. Combine with Required to
// make an attribute mandatory.
//
// # Usage
//
//	v := engine.New(
//		engine.WithAttributeNames(map[string]string{"email": "email address"}),
//		engine.WithMessages(catalog.ForLocale("en")),
//	)
//	err := recordval.Validate(ctx, v, user, recordval.OpCreate)
//
// Message lookup order for a failed directive on attribute a with name n:
// the "a.n" override, then the catalog entry for n, then the built-in
// default, then a generic fallback. Templates interpolate {field} and any
// directive params, e.g. "must be at least {min} characters long".
//
// # Error Handling
//
// Validate returns recordval.ValidationErrors (which satisfies error) when
// any directive fails, nil otherwise. The engine itself never produces
// infrastructure errors; directives that consult external resources report
// plain failure through their boolean check.
package engine
