package messages

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML builds a catalog from YAML content shaped as
// locale -> directive name -> template. Non-string templates and non-map
// locale entries are structural errors, not silently skipped, so a broken
// catalog file fails loudly at startup.
func ParseYAML(defaultLocale string, content []byte) (*Catalog, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	catalog := New(defaultLocale)
	for locale, entry := range raw {
		localeMap, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: locale %q: expected map, got %T", ErrInvalidCatalogStructure, locale, entry)
		}
		for name, tmpl := range localeMap {
			s, ok := tmpl.(string)
			if !ok {
				return nil, fmt.Errorf("%w: locale %q, key %q: expected string, got %T", ErrInvalidCatalogStructure, locale, name, tmpl)
			}
			catalog.Add(locale, name, s)
		}
	}

	if len(catalog.templates) == 0 {
		return nil, ErrNoTranslations
	}

	return catalog, nil
}

// LoadFile reads and parses a YAML catalog file.
func LoadFile(defaultLocale, path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return ParseYAML(defaultLocale, content)
}
