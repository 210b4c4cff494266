// Package messages provides locale-aware message catalogs for rendering
// validation failures. A Catalog maps locale -> directive name -> template;
// templates use {param} placeholders filled by the engine at render time.
//
// Catalogs are built in code with Add or loaded from YAML files shaped as:
//
//	en:
//	  required: "{field} is required"
//	  min_len: "{field} must be at least {min} characters long"
//	de:
//	  required: "{field} darf nicht leer sein"
//
// ForLocale adapts a catalog to a single locale with default-locale
// fallback; the result satisfies the engine's MessageSource:
//
//	catalog, err := messages.LoadFile("en", "validation.yaml")
//	v := engine.New(engine.WithMessages(catalog.ForLocale("de")))
//
// Catalogs are immutable after loading and safe for concurrent reads.
// Parse errors are typed and comparable with errors.Is.
package messages
