// File: pebbl/format.go
package pebbl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// missingSentinel marks a value the upstream data source reported as
// absent. It always renders as the empty string literal.
const missingSentinel = "notfound"

// octreeMeshKey carries inverted boolean semantics on the simulator side.
const octreeMeshKey = "Octree_Mesh"

// scientificPattern recognizes a numeric string in scientific notation.
var scientificPattern = regexp.MustCompile(`^[+-]?\d+(?:\.\d+)?[eE][+-]?\d+$`)

// directionLetters maps full direction names to their wire codes.
var directionLetters = map[string]string{
	"top":   "T",
	"down":  "D",
	"north": "N",
	"south": "S",
	"east":  "E",
	"west":  "W",
}

// FormatLine renders one configuration assignment in the document wire
// shape: "{prefix}set @{key}= {literal}".
func FormatLine(prefix, key string, value any) string {
	return fmt.Sprintf("%sset @%s= %s", prefix, key, FormatValue(key, value))
}

// FormatValue converts a typed field value into its canonical textual
// literal for the given output key. The rules apply in priority order and
// the function never fails; any value it cannot classify renders through
// fmt.Sprint.
func FormatValue(key string, value any) string {
	if s, ok := value.(string); ok && s == missingSentinel {
		return "''"
	}

	if key == octreeMeshKey {
		if inverted, ok := invertedBoolLiteral(value); ok {
			return inverted
		}
	}

	if isDirectionKey(key) {
		if letter, ok := directionLetter(value); ok {
			return letter
		}
	}

	switch v := value.(type) {
	case nil:
		return "''"
	case bool:
		return boolLiteral(v)
	case float64:
		return formatFloat(v)
	case float32:
		return formatFloat(float64(v))
	case string:
		return stringLiteral(v)
	case Enum:
		// No override context here; the lookup layer renders enums before
		// they reach the formatter. This is the bare fallback.
		return fmt.Sprint(RenderEnum(v, OverrideNone))
	default:
		return fmt.Sprint(value)
	}
}

// boolLiteral renders the simulator's boolean convention.
func boolLiteral(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// invertedBoolLiteral applies the flipped Octree_Mesh convention to
// boolean or textual-boolean values.
func invertedBoolLiteral(value any) (string, bool) {
	switch v := value.(type) {
	case bool:
		if v {
			return "no", true
		}
		return "yes", true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes":
			return "no", true
		case "false", "no":
			return "yes", true
		}
	}
	return "", false
}

// isDirectionKey reports whether key names a surface normal direction
// field, which always renders as a single uppercase letter.
func isDirectionKey(key string) bool {
	lower := strings.ToLower(key)
	return strings.Contains(lower, "anisotropy_surface_normal_direction") ||
		strings.HasSuffix(lower, "_normal_direction")
}

// directionLetter reduces a direction value to its single-letter code.
// Enum values carrying a letter are used directly; strings resolve via
// the fixed name map, then by their first letter.
func directionLetter(value any) (string, bool) {
	if l, ok := value.(Lettered); ok {
		return l.Letter(), true
	}
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(strings.Trim(s, `'"`))
	if s == "" {
		return "", false
	}
	if letter, ok := directionLetters[strings.ToLower(s)]; ok {
		return letter, true
	}
	return strings.ToUpper(s[:1]), true
}

// formatFloat renders a float as fixed decimal text: no exponent, no
// trailing zeros, no trailing decimal point.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// stringLiteral renders a string value. Boolean literals produced by the
// coercion layer stay bare, scientific-notation numerics are normalized
// to fixed decimal, "not found" collapses to the empty literal, and
// everything else is single-quoted.
func stringLiteral(s string) string {
	switch s {
	case "not found":
		return "''"
	case "yes", "no":
		return s
	}
	if scientificPattern.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return formatFloat(f)
		}
	}
	return "'" + s + "'"
}
