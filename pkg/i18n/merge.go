package i18n

import (
	"maps"
	"slices"
	"strings"
)

// RegionSeparator splits the language from the region in a locale code ("ja_JP").
const RegionSeparator = "_"

// BaseLanguage returns the part of locale before the first region separator.
// A locale without a region is its own base language.
func BaseLanguage(locale string) string {
	base, _, _ := strings.Cut(locale, RegionSeparator)
	return base
}

// Merge resolves the translation table for locale from the catalog.
//
// The base language table is applied first. A regional locale ("en_GB") then
// overrides it with its own entries. When the base language itself is requested
// ("en"), every regional variant of it ("en_AU", "en_GB", ...) is merged on top,
// in lexicographic order of locale code, so later codes win on key collisions.
//
// The returned map is freshly allocated and never aliases the catalog.
func Merge(c Catalog, locale string) map[string]string {
	base := BaseLanguage(locale)
	table := make(map[string]string, len(c[base]))

	maps.Copy(table, c[base])

	if locale != base {
		maps.Copy(table, c[locale])
		return table
	}

	for _, variant := range regionalVariants(c, base) {
		maps.Copy(table, c[variant])
	}

	return table
}

// regionalVariants lists the catalog locales that refine base, sorted.
func regionalVariants(c Catalog, base string) []string {
	prefix := base + RegionSeparator

	var variants []string
	for code := range c {
		if code != base && strings.HasPrefix(code, prefix) {
			variants = append(variants, code)
		}
	}
	slices.Sort(variants)

	return variants
}
