package recordval

import (
	"context"
	"maps"
)

// Operation identifies the lifecycle phase a record is validated for.
// Create and Update may carry different rule sets.
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
)

// Directive is a single validation check for one attribute. It is the
// Go-native replacement for a string rule DSL entry: the check is a plain
// function, the name identifies the message template, and Params feed
// template interpolation.
type Directive struct {
	// Name identifies the directive kind, e.g. "required" or "min_len".
	// Message catalogs are keyed by it.
	Name string

	// Check reports whether the value satisfies the directive. The context
	// allows directives that consult external resources (e.g. uniqueness
	// checks against a database) to honor cancellation.
	Check func(ctx context.Context, value any) bool

	// Params carries directive parameters for message interpolation,
	// e.g. {"min": 3} for a minimum-length directive.
	Params map[string]any
}

// Rules maps attribute names to the directives validated against them.
type Rules map[string][]Directive

// Clone returns a copy of r that shares directive slices but not the map
// itself, so per-attribute overlays never mutate the source.
func (r Rules) Clone() Rules {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// Merge overlays other onto a copy of r. Entries in other fully replace
// same-key entries in r (last write wins per attribute); directives are
// never concatenated across tiers.
func (r Rules) Merge(other Rules) Rules {
	if len(other) == 0 {
		return r.Clone()
	}
	merged := make(Rules, len(r)+len(other))
	maps.Copy(merged, r)
	maps.Copy(merged, other)
	return merged
}

// Attributes returns the attribute names that have at least one directive.
func (r Rules) Attributes() []string {
	attrs := make([]string, 0, len(r))
	for attr, directives := range r {
		if len(directives) > 0 {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// RuleSet holds a record's validation rules across three precedence tiers:
//
//  1. Superseding — when non-nil, exclusively replaces the computed set.
//  2. Base plus the operation-specific tier (Create or Update), overlaid
//     per attribute.
//  3. Mixins — overlays merged in declaration order, last write wins per
//     attribute key.
type RuleSet struct {
	// Superseding, when non-nil, is returned as-is by Resolve and every
	// other tier is ignored. An empty non-nil map disables validation.
	Superseding Rules

	// Base applies to every operation.
	Base Rules

	// Create and Update override Base per attribute for their operation.
	Create Rules
	Update Rules

	// Mixins are overlays contributed by embedded behaviors. They are
	// applied after the operation tiers, in order.
	Mixins []Rules
}

// Resolve computes the effective rules for op. The result never aliases the
// tier maps, so callers may modify it freely.
func (rs RuleSet) Resolve(op Operation) Rules {
	if rs.Superseding != nil {
		return rs.Superseding.Clone()
	}

	effective := rs.Base.Clone()
	if effective == nil {
		effective = make(Rules)
	}

	switch op {
	case OpCreate:
		effective = effective.Merge(rs.Create)
	case OpUpdate:
		effective = effective.Merge(rs.Update)
	}

	for _, mixin := range rs.Mixins {
		effective = effective.Merge(mixin)
	}

	return effective
}
