package messages

import (
	"maps"
	"slices"
)

// Catalog holds message templates keyed by locale and directive name.
// Build one with New/Add or load it from YAML; afterwards it is read-only
// and safe to share between engines.
type Catalog struct {
	defaultLocale string
	templates     map[string]map[string]string
}

// New creates an empty catalog falling back to defaultLocale on lookups.
func New(defaultLocale string) *Catalog {
	return &Catalog{
		defaultLocale: defaultLocale,
		templates:     make(map[string]map[string]string),
	}
}

// Add registers a template for a directive name under locale.
func (c *Catalog) Add(locale, name, template string) {
	if c.templates[locale] == nil {
		c.templates[locale] = make(map[string]string)
	}
	c.templates[locale][name] = template
}

// Lookup finds the template for a directive name in locale, falling back to
// the default locale when the requested one has no entry.
func (c *Catalog) Lookup(locale, name string) (string, bool) {
	if tmpl, ok := c.templates[locale][name]; ok {
		return tmpl, true
	}
	tmpl, ok := c.templates[c.defaultLocale][name]
	return tmpl, ok
}

// Locales returns the locales present in the catalog, sorted.
func (c *Catalog) Locales() []string {
	return slices.Sorted(maps.Keys(c.templates))
}

// DefaultLocale returns the fallback locale.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// ForLocale pins the catalog to one locale. The result satisfies the
// engine's MessageSource interface.
func (c *Catalog) ForLocale(locale string) Locale {
	return Locale{catalog: c, locale: locale}
}

// Locale is a single-locale view over a Catalog.
type Locale struct {
	catalog *Catalog
	locale  string
}

// Lookup implements the engine's MessageSource contract.
func (l Locale) Lookup(name string) (string, bool) {
	if l.catalog == nil {
		return "", false
	}
	return l.catalog.Lookup(l.locale, name)
}
