package utils

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts a CamelCase name to snake_case, e.g. "GreaterOrEqual" -> "greater_or_equal".
// A run of capitals is kept together as one word: "ToStableHLO" -> "to_stable_hlo".
func ToSnakeCase(name string) string {
	runes := []rune(name)
	var sb strings.Builder
	sb.Grow(len(name) + 5)
	for ii, r := range runes {
		if !unicode.IsUpper(r) {
			sb.WriteRune(r)
			continue
		}
		if ii > 0 && runes[ii-1] != '_' {
			prevUpper := unicode.IsUpper(runes[ii-1])
			nextLower := ii+1 < len(runes) && !unicode.IsUpper(runes[ii+1]) && runes[ii+1] != '_'
			if !prevUpper || nextLower {
				sb.WriteByte('_')
			}
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}
