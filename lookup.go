// File: pebbl/lookup.go
package pebbl

import (
	"strings"

	"go.uber.org/zap"
)

// flagSubstrings marks keys whose empty values default to "no" rather
// than the caller-supplied default.
var flagSubstrings = []string{"is_", "has_", "include_", "enabled", "custom"}

// Lookup resolves entity fields through the reference library and applies
// the cross-cutting value coercions. Failure never propagates: every
// ambiguity degrades to the supplied default and surfaces only through
// warning logs carrying the originating key.
type Lookup struct {
	lib    *ReferenceLibrary
	logger *zap.Logger
}

// NewLookup binds a lookup layer to a reference library. A nil logger is
// replaced with a no-op one.
func NewLookup(lib *ReferenceLibrary, logger *zap.Logger) *Lookup {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Lookup{lib: lib, logger: logger}
}

// ValueOf fetches the field behind key from entity and coerces it. When
// a reference entry exists for key, the entry's internal name selects the
// field; otherwise key is used directly. An absent field falls back to
// the caller-supplied default first; only when the resolved value is
// still empty does the flag-key rule force "no". The remaining coercions
// apply in priority order: eager booleans, Rock_or_Soil codes, direction
// letters, enum rendering, stringified enum recovery.
func (l *Lookup) ValueOf(entity Entity, key string, def any) any {
	fieldName := key
	var override OverridePolicy
	if l.lib != nil {
		if entry, ok := l.lib.Lookup(key); ok {
			fieldName = entry.InternalName
			override = entry.EnumOverride
		}
	}

	var value any
	found := false
	if entity != nil {
		value, found = entity.Field(fieldName)
	}
	if !found {
		l.logger.Warn("field not found, using default",
			zap.String("key", key),
			zap.String("field", fieldName))
		value = def
	}
	if isEmptyValue(value) {
		if !isEmptyValue(def) {
			value = def
		}
		if isEmptyValue(value) && isFlagKey(key) {
			return "no"
		}
	}
	return l.coerce(key, value, override)
}

// coerce applies the value-level rules independent of field resolution.
func (l *Lookup) coerce(key string, value any, override OverridePolicy) any {
	if b, ok := value.(bool); ok {
		return boolLiteral(b)
	}
	if strings.Contains(key, "_Rock_or_Soil") {
		return rockOrSoilCode(value)
	}
	if isDirectionKey(key) {
		if letter, ok := directionLetter(value); ok {
			return letter
		}
		return DirectionTop.Letter()
	}
	if e, ok := value.(Enum); ok {
		return RenderEnum(e, override)
	}
	if s, ok := value.(string); ok {
		if recovered, ok := recoverEnumString(s); ok {
			return recovered
		}
	}
	return value
}

// isFlagKey reports whether key names an inclusion or capability flag.
func isFlagKey(key string) bool {
	lower := strings.ToLower(key)
	for _, sub := range flagSubstrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// rockOrSoilCode reduces any representation of the soil/rock choice to
// its numeric wire code: 1 for Soil, 2 for Rock. Ambiguous input yields
// Rock, the documented default.
func rockOrSoilCode(value any) int {
	switch v := value.(type) {
	case DomainKind:
		return v.Ordinal()
	case int:
		if v == 1 || v == 2 {
			return v
		}
	case float64:
		if v == 1 || v == 2 {
			return int(v)
		}
	}
	s := strings.ToLower(stringify(value))
	switch {
	case strings.Contains(s, "soil"):
		return DomainSoil.Ordinal()
	case strings.Contains(s, "rock"):
		return DomainRock.Ordinal()
	}
	return DomainRock.Ordinal()
}

// recoverEnumString recognizes an enum accidentally stored as its
// stringified "Type.MEMBER" form and converts it back to letter form
// when the member names a direction.
func recoverEnumString(s string) (string, bool) {
	trimmed := strings.TrimSpace(strings.Trim(s, `'"`))
	dot := strings.LastIndexByte(trimmed, '.')
	if dot < 1 || dot == len(trimmed)-1 {
		return "", false
	}
	member := trimmed[dot+1:]
	for _, d := range Directions {
		if strings.EqualFold(member, d.Name()) {
			return d.Letter(), true
		}
	}
	return "", false
}
