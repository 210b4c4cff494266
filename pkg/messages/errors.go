package messages

import "errors"

var (
	// ErrFailedToParseYAML is returned when the catalog file is not valid YAML.
	ErrFailedToParseYAML = errors.New("failed to parse messages YAML")

	// ErrInvalidCatalogStructure is returned when the YAML does not follow
	// the locale -> directive -> template shape.
	ErrInvalidCatalogStructure = errors.New("invalid catalog structure")

	// ErrNoTranslations is returned when the parsed catalog contains no
	// templates at all.
	ErrNoTranslations = errors.New("no translations found in catalog")

	// ErrFailedToReadFile is returned when the catalog file cannot be read.
	ErrFailedToReadFile = errors.New("failed to read catalog file")
)
