// File: pebbl/template.go
package pebbl

import "regexp"

// placeholderPattern matches a single <token> span inside a key pattern.
// Tokens cannot nest and there is no escaping syntax.
var placeholderPattern = regexp.MustCompile(`<([^<>]+)>`)

// ResolvePlaceholders replaces every <token> span in pattern using the
// replacements map. Spans whose token has no replacement are left verbatim,
// so resolution is idempotent and resolvable in multiple passes.
func ResolvePlaceholders(pattern string, replacements map[string]string) string {
	if len(replacements) == 0 || !IsTemplated(pattern) {
		return pattern
	}
	return placeholderPattern.ReplaceAllStringFunc(pattern, func(span string) string {
		token := span[1 : len(span)-1]
		if value, ok := replacements[token]; ok {
			return value
		}
		return span
	})
}

// TemplateTokens returns the placeholder tokens of pattern in order of
// appearance, without the surrounding angle brackets.
func TemplateTokens(pattern string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(pattern, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// IsTemplated reports whether pattern contains at least one placeholder.
func IsTemplated(pattern string) bool {
	return placeholderPattern.MatchString(pattern)
}
