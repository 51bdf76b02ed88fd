package i18n

import "errors"

var (
	ErrEmptyCatalogPath  = errors.New("i18n: catalog path cannot be empty")
	ErrNilFS             = errors.New("i18n: catalog filesystem cannot be nil")
	ErrInvalidCatalog    = errors.New("i18n: invalid translation catalog")
	ErrUnsupportedFormat = errors.New("i18n: unsupported catalog format")
)
