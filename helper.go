// File: lixenwraith/items/helper.go
package items

import (
	"sort"
	"strings"
)

// isValidName checks an item or alias name.
// Names are ASCII letters, digits, underscores, dashes and dots, and may not start with a dash.
func isValidName(s string) bool {
	if len(s) == 0 || s[0] == '-' {
		return false
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isPunct := r == '_' || r == '-' || r == '.'

		if !(isLetter || isDigit || isPunct) {
			return false
		}
	}
	return true
}

// sortedKeys returns the keys of m in lexicographic order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// splitNames splits a whitespace separated list of declarations
func splitNames(s string) []string {
	return strings.Fields(s)
}
