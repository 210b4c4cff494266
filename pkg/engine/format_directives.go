package engine

import (
	"context"
	"net/mail"
	"strings"

	"github.com/dmitrymomot/recordval"
)

// Email validates email addresses with Go's RFC 5322 parser plus the
// stricter checks typical web applications expect: a single @, a non-empty
// local part, and a dotted domain.
func Email() recordval.Directive {
	return recordval.Directive{
		Name: "email",
		Check: func(_ context.Context, value any) bool {
			if value == nil {
				return true
			}
			s, ok := asString(value)
			if !ok || strings.TrimSpace(s) == "" {
				return false
			}

			addr, err := mail.ParseAddress(s)
			if err != nil {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 || parts[0] == "" {
				return false
			}

			domain := parts[1]
			return strings.Contains(domain, ".") &&
				!strings.HasPrefix(domain, ".") &&
				!strings.HasSuffix(domain, ".")
		},
	}
}
