package engine

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/recordval"
)

// Required fails for absent values: nil, blank strings, empty collections,
// nil pointers. Every other directive passes on nil, so Required is what
// makes an attribute mandatory.
func Required() recordval.Directive {
	return recordval.Directive{
		Name: "required",
		Check: func(_ context.Context, value any) bool {
			return !isEmpty(value)
		},
	}
}

func MinLen(min int) recordval.Directive {
	return recordval.Directive{
		Name:   "min_len",
		Params: map[string]any{"min": min},
		Check: func(_ context.Context, value any) bool {
			if value == nil {
				return true
			}
			s, ok := asString(value)
			return ok && len(s) >= min
		},
	}
}

func MaxLen(max int) recordval.Directive {
	return recordval.Directive{
		Name:   "max_len",
		Params: map[string]any{"max": max},
		Check: func(_ context.Context, value any) bool {
			if value == nil {
				return true
			}
			s, ok := asString(value)
			return ok && len(s) <= max
		},
	}
}

func LenBetween(min, max int) recordval.Directive {
	return recordval.Directive{
		Name:   "len_between",
		Params: map[string]any{"min": min, "max": max},
		Check: func(_ context.Context, value any) bool {
			if value == nil {
				return true
			}
			s, ok := asString(value)
			return ok && len(s) >= min && len(s) <= max
		},
	}
}

// Matches validates string values against re. The caller owns the regexp;
// compile it once at package level.
func Matches(re *regexp.Regexp) recordval.Directive {
	return recordval.Directive{
		Name:   "matches",
		Params: map[string]any{"pattern": re.String()},
		Check: func(_ context.Context, value any) bool {
			if value == nil {
				return true
			}
			s, ok := asString(value)
			return ok && re.MatchString(s)
		},
	}
}

// OneOf validates that a string value is one of the allowed options.
func OneOf(options ...string) recordval.Directive {
	return recordval.Directive{
		Name:   "one_of",
		Params: map[string]any{"options": strings.Join(options, ", ")},
		Check: func(_ context.Context, value any) bool {
			if value == nil {
				return true
			}
			s, ok := asString(value)
			return ok && slices.Contains(options, s)
		},
	}
}

// Custom wraps an arbitrary check into a directive. Use it for host-specific
// rules that don't warrant their own constructor.
func Custom(name string, params map[string]any, check func(ctx context.Context, value any) bool) recordval.Directive {
	return recordval.Directive{
		Name:   name,
		Params: params,
		Check:  check,
	}
}
