// File: pebbl/helper.go
package pebbl

import (
	"fmt"
	"strings"
)

// stringify renders any value as plain text for substring matching and
// diagnostics. nil becomes the empty string.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// stripOuterQuotes removes one pair of surrounding single or double
// quotes from a string, if present.
func stripOuterQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// isEmptyValue reports whether a resolved field value counts as absent
// for defaulting purposes: nil or a blank string.
func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// safeIdentifier converts an entity name into the form used inside
// output keys: spaces become underscores.
func safeIdentifier(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}
