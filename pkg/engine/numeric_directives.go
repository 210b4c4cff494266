package engine

import (
	"context"

	"github.com/dmitrymomot/recordval"
)

// Numeric constrains the generic numeric directive constructors.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func MinNum[T Numeric](min T) recordval.Directive {
	bound := float64(min)
	return recordval.Directive{
		Name:   "min_num",
		Params: map[string]any{"min": min},
		Check: func(_ context.Context, value any) bool {
			if value == nil {
				return true
			}
			n, ok := asFloat(value)
			return ok && n >= bound
		},
	}
}

func MaxNum[T Numeric](max T) recordval.Directive {
	bound := float64(max)
	return recordval.Directive{
		Name:   "max_num",
		Params: map[string]any{"max": max},
		Check: func(_ context.Context, value any) bool {
			if value == nil {
				return true
			}
			n, ok := asFloat(value)
			return ok && n <= bound
		},
	}
}

func Between[T Numeric](min, max T) recordval.Directive {
	lo, hi := float64(min), float64(max)
	return recordval.Directive{
		Name:   "between",
		Params: map[string]any{"min": min, "max": max},
		Check: func(_ context.Context, value any) bool {
			if value == nil {
				return true
			}
			n, ok := asFloat(value)
			return ok && n >= lo && n <= hi
		},
	}
}
