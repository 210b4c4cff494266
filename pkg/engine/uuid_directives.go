package engine

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/recordval"
)

// UUID validates canonical 36-character UUID strings and uuid.UUID values.
// String input is pre-checked for length and hyphen positions to skip the
// expensive parse on obvious garbage.
func UUID() recordval.Directive {
	return recordval.Directive{
		Name: "uuid",
		Check: func(_ context.Context, value any) bool {
			switch v := value.(type) {
			case nil:
				return true
			case uuid.UUID:
				return true
			case string:
				if !looksLikeUUID(v) {
					return false
				}
				_, err := uuid.Parse(v)
				return err == nil
			}
			return false
		},
	}
}

// NotNilUUID validates that a UUID value is present and not the nil UUID.
func NotNilUUID() recordval.Directive {
	return recordval.Directive{
		Name: "uuid_not_nil",
		Check: func(_ context.Context, value any) bool {
			switch v := value.(type) {
			case nil:
				return true
			case uuid.UUID:
				return v != uuid.Nil
			case string:
				if !looksLikeUUID(v) {
					return false
				}
				parsed, err := uuid.Parse(v)
				return err == nil && parsed != uuid.Nil
			}
			return false
		},
	}
}

func looksLikeUUID(s string) bool {
	if strings.TrimSpace(s) == "" || len(s) != 36 {
		return false
	}
	return s[8] == '-' && s[13] == '-' && s[18] == '-' && s[23] == '-'
}
