package i18n

import (
	"fmt"
	"strings"
)

// M holds placeholder values for Tf.
type M map[string]any

// ReplacePlaceholders substitutes {{name}} placeholders in template with
// values from placeholders. Unknown placeholders are left as they are.
//
// Example:
//
//	ReplacePlaceholders("Hi, {{name}}!", M{"name": "Ann"}) // "Hi, Ann!"
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for key, value := range placeholders {
		pairs = append(pairs, "{{"+key+"}}", fmt.Sprintf("%v", value))
	}

	return strings.NewReplacer(pairs...).Replace(template)
}
