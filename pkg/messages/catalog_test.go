package messages_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordval/pkg/messages"
)

func TestCatalog(t *testing.T) {
	catalog := messages.New("en")
	catalog.Add("en", "required", "{field} is required")
	catalog.Add("en", "min_len", "{field} must be at least {min} characters")
	catalog.Add("de", "required", "{field} darf nicht leer sein")

	t.Run("lookup in requested locale", func(t *testing.T) {
		tmpl, ok := catalog.Lookup("de", "required")
		require.True(t, ok)
		assert.Equal(t, "{field} darf nicht leer sein", tmpl)
	})

	t.Run("falls back to default locale", func(t *testing.T) {
		tmpl, ok := catalog.Lookup("de", "min_len")
		require.True(t, ok)
		assert.Equal(t, "{field} must be at least {min} characters", tmpl)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		_, ok := catalog.Lookup("de", "between")
		assert.False(t, ok)
	})

	t.Run("locales are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"de", "en"}, catalog.Locales())
		assert.Equal(t, "en", catalog.DefaultLocale())
	})

	t.Run("single-locale view", func(t *testing.T) {
		de := catalog.ForLocale("de")

		tmpl, ok := de.Lookup("required")
		require.True(t, ok)
		assert.Equal(t, "{field} darf nicht leer sein", tmpl)

		// Fallback still applies through the view.
		tmpl, ok = de.Lookup("min_len")
		require.True(t, ok)
		assert.Contains(t, tmpl, "{min}")
	})

	t.Run("zero-value view never matches", func(t *testing.T) {
		var empty messages.Locale
		_, ok := empty.Lookup("required")
		assert.False(t, ok)
	})
}

func TestParseYAML(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		content := []byte(`
en:
  required: "{field} is required"
  email: "{field} must be a valid email address"
uk:
  required: "{field} є обов'язковим"
`)
		catalog, err := messages.ParseYAML("en", content)
		require.NoError(t, err)

		tmpl, ok := catalog.Lookup("uk", "required")
		require.True(t, ok)
		assert.Contains(t, tmpl, "обов'язковим")

		// Missing in uk, falls back to en.
		tmpl, ok = catalog.Lookup("uk", "email")
		require.True(t, ok)
		assert.Contains(t, tmpl, "valid email")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := messages.ParseYAML("en", []byte("en: [broken"))
		assert.ErrorIs(t, err, messages.ErrFailedToParseYAML)
	})

	t.Run("locale entry is not a map", func(t *testing.T) {
		_, err := messages.ParseYAML("en", []byte("en: just a string"))
		assert.ErrorIs(t, err, messages.ErrInvalidCatalogStructure)
	})

	t.Run("template is not a string", func(t *testing.T) {
		_, err := messages.ParseYAML("en", []byte("en:\n  required: [1, 2]"))
		assert.ErrorIs(t, err, messages.ErrInvalidCatalogStructure)
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, err := messages.ParseYAML("en", []byte(""))
		assert.ErrorIs(t, err, messages.ErrNoTranslations)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("loads from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "validation.yaml")
		require.NoError(t, os.WriteFile(path, []byte("en:\n  required: needed\n"), 0o600))

		catalog, err := messages.LoadFile("en", path)
		require.NoError(t, err)

		tmpl, ok := catalog.Lookup("en", "required")
		require.True(t, ok)
		assert.Equal(t, "needed", tmpl)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := messages.LoadFile("en", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, messages.ErrFailedToReadFile)
	})
}
