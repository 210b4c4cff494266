package engine_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/recordval"
	"github.com/dmitrymomot/recordval/pkg/engine"
)

func check(t *testing.T, d recordval.Directive, value any) bool {
	t.Helper()
	return d.Check(context.Background(), value)
}

func TestRequired(t *testing.T) {
	d := engine.Required()

	assert.True(t, check(t, d, "value"))
	assert.True(t, check(t, d, 0))
	assert.True(t, check(t, d, false))
	assert.True(t, check(t, d, []string{"a"}))

	assert.False(t, check(t, d, nil))
	assert.False(t, check(t, d, ""))
	assert.False(t, check(t, d, "   "))
	assert.False(t, check(t, d, []string{}))
	assert.False(t, check(t, d, map[string]int{}))
	assert.False(t, check(t, d, (*string)(nil)))
}

func TestStringDirectives(t *testing.T) {
	t.Run("min and max length", func(t *testing.T) {
		assert.True(t, check(t, engine.MinLen(3), "abc"))
		assert.False(t, check(t, engine.MinLen(3), "ab"))
		assert.True(t, check(t, engine.MaxLen(3), "abc"))
		assert.False(t, check(t, engine.MaxLen(3), "abcd"))
		assert.True(t, check(t, engine.LenBetween(2, 4), "abc"))
		assert.False(t, check(t, engine.LenBetween(2, 4), "abcde"))

		// Nil passes, type mismatch fails.
		assert.True(t, check(t, engine.MinLen(3), nil))
		assert.False(t, check(t, engine.MinLen(3), 123))
	})

	t.Run("matches", func(t *testing.T) {
		slug := engine.Matches(regexp.MustCompile(`^[a-z0-9-]+$`))
		assert.True(t, check(t, slug, "my-slug-42"))
		assert.False(t, check(t, slug, "My Slug"))
		assert.True(t, check(t, slug, nil))
	})

	t.Run("one of", func(t *testing.T) {
		status := engine.OneOf("draft", "published")
		assert.True(t, check(t, status, "draft"))
		assert.False(t, check(t, status, "archived"))
		assert.Equal(t, "draft, published", status.Params["options"])
	})
}

func TestEmail(t *testing.T) {
	d := engine.Email()

	assert.True(t, check(t, d, "dev@example.com"))
	assert.True(t, check(t, d, nil))

	assert.False(t, check(t, d, "not-an-email"))
	assert.False(t, check(t, d, "dev@localhost"))
	assert.False(t, check(t, d, "dev@.example.com"))
	assert.False(t, check(t, d, ""))
	assert.False(t, check(t, d, 42))
}

func TestNumericDirectives(t *testing.T) {
	assert.True(t, check(t, engine.MinNum(18), 18))
	assert.False(t, check(t, engine.MinNum(18), 17))
	assert.True(t, check(t, engine.MaxNum(100), 99.5))
	assert.False(t, check(t, engine.MaxNum(100), 101))
	assert.True(t, check(t, engine.Between(1, 10), int64(5)))
	assert.False(t, check(t, engine.Between(1, 10), uint8(11)))

	// Nil passes, non-numeric fails.
	assert.True(t, check(t, engine.MinNum(1), nil))
	assert.False(t, check(t, engine.MinNum(1), "2"))
}

func TestUUIDDirectives(t *testing.T) {
	valid := uuid.New()

	t.Run("uuid", func(t *testing.T) {
		d := engine.UUID()
		assert.True(t, check(t, d, valid))
		assert.True(t, check(t, d, valid.String()))
		assert.True(t, check(t, d, nil))

		assert.False(t, check(t, d, "not-a-uuid"))
		assert.False(t, check(t, d, valid.String()[:35]))
		assert.False(t, check(t, d, 42))
	})

	t.Run("not nil uuid", func(t *testing.T) {
		d := engine.NotNilUUID()
		assert.True(t, check(t, d, valid))
		assert.True(t, check(t, d, valid.String()))
		assert.True(t, check(t, d, nil))

		assert.False(t, check(t, d, uuid.Nil))
		assert.False(t, check(t, d, uuid.Nil.String()))
	})
}
