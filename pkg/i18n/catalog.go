package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog maps a locale code to its key → translation table.
type Catalog map[string]map[string]string

// Locales returns the locale codes present in the catalog, in no particular order.
func (c Catalog) Locales() []string {
	codes := make([]string, 0, len(c))
	for code := range c {
		codes = append(codes, code)
	}
	return codes
}

// Format identifies the encoding of a catalog document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the catalog format by file extension.
// Extensions are matched case-insensitively; .yml counts as YAML.
func FormatFromPath(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// ReadCatalog reads and parses the catalog document at the given OS path.
func ReadCatalog(name string) (Catalog, error) {
	format, err := FormatFromPath(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}

	return ParseCatalog(data, format)
}

// ReadCatalogFS reads and parses a catalog document from fsys.
// Useful with embed.FS when the catalog ships inside the binary.
func ReadCatalogFS(fsys fs.FS, name string) (Catalog, error) {
	if fsys == nil {
		return nil, ErrNilFS
	}

	format, err := FormatFromPath(name)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}

	return ParseCatalog(data, format)
}

// ParseCatalog decodes a catalog document.
//
// The document is an object keyed by locale code whose values are objects of
// translations. Nested objects are flattened with dot notation, so
//
//	{"en": {"menu": {"open": "Open"}}}
//
// yields the key "menu.open" for "en".
func ParseCatalog(data []byte, format Format) (Catalog, error) {
	var raw map[string]any

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if raw == nil {
		return nil, fmt.Errorf("%w: document is empty", ErrInvalidCatalog)
	}

	catalog := make(Catalog, len(raw))
	for locale, value := range raw {
		entries, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: locale %q is not an object", ErrInvalidCatalog, locale)
		}
		catalog[locale] = flatten(entries, "")
	}

	return catalog, nil
}

func flatten(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string, len(data))

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flatten(v, fullKey))
		case map[any]any:
			// YAML mappings with non-string keys ("1: one").
			nested := make(map[string]any, len(v))
			for k, item := range v {
				nested[fmt.Sprintf("%v", k)] = item
			}
			maps.Copy(result, flatten(nested, fullKey))
		case nil:
			result[fullKey] = ""
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
