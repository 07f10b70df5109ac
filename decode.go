// File: pebbl/decode.go
package pebbl

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ScanEntity decodes one recovered field map into a typed target struct.
// All public scanning helpers delegate to this. Raw literals are weakly
// typed: "2700" fills a float, "yes"/"no" fill booleans, wire codes and
// ordinals fill enum fields.
func ScanEntity(entity ParsedEntity, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	source := make(map[string]any, len(entity.Fields))
	for name, raw := range entity.Fields {
		source[name] = raw
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       scanDecodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(source); err != nil {
		return fmt.Errorf("decode failed for entity %q: %w", entity.Identifier, err)
	}
	return nil
}

// ScanEntities decodes a slice of recovered entities into a slice of
// typed structs, in extraction order.
func ScanEntities[T any](entities []ParsedEntity) ([]T, error) {
	out := make([]T, 0, len(entities))
	for _, entity := range entities {
		var target T
		if err := ScanEntity(entity, &target); err != nil {
			return nil, err
		}
		out = append(out, target)
	}
	return out, nil
}

// scanDecodeHook returns the composite hook for literal conversions.
func scanDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringToBoolHookFunc(),
		stringToEnumHookFunc(),
	)
}

// stringToBoolHookFunc converts the document's yes/no literals into
// booleans before the weak typing layer sees them.
func stringToBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		switch strings.ToLower(strings.TrimSpace(data.(string))) {
		case "yes", "true":
			return true, nil
		case "no", "false", "":
			return false, nil
		}
		return data, nil
	}
}

// enumTargets maps each enum type to its parser. Parse failure falls back
// to the type's zero member rather than erroring, matching the encoder's
// degrade-to-default policy.
var enumTargets = map[reflect.Type]func(any) (any, bool){
	reflect.TypeOf(Direction(0)):              func(v any) (any, bool) { x, ok := ParseDirection(v); return x, ok },
	reflect.TypeOf(DomainKind(0)):             func(v any) (any, bool) { x, ok := ParseDomainKind(v); return x, ok },
	reflect.TypeOf(DensificationLevel(0)):     func(v any) (any, bool) { x, ok := ParseDensificationLevel(v); return x, ok },
	reflect.TypeOf(BackfillType(0)):           func(v any) (any, bool) { x, ok := ParseBackfillType(v); return x, ok },
	reflect.TypeOf(BackfillDelayRule(0)):      func(v any) (any, bool) { x, ok := ParseBackfillDelayRule(v); return x, ok },
	reflect.TypeOf(BackfillMaterial(0)):       func(v any) (any, bool) { x, ok := ParseBackfillMaterial(v); return x, ok },
	reflect.TypeOf(StressKind(0)):             func(v any) (any, bool) { x, ok := ParseStressKind(v); return x, ok },
	reflect.TypeOf(StressOption(0)):           func(v any) (any, bool) { x, ok := ParseStressOption(v); return x, ok },
	reflect.TypeOf(GeoAccuracy(0)):            func(v any) (any, bool) { x, ok := ParseGeoAccuracy(v); return x, ok },
	reflect.TypeOf(ConstructionDetailName(0)): func(v any) (any, bool) { x, ok := ParseConstructionDetailName(v); return x, ok },
	reflect.TypeOf(FLACVersion(0)):            func(v any) (any, bool) { x, ok := ParseFLACVersion(v); return x, ok },
}

// stringToEnumHookFunc resolves wire literals (letters, 1-based ordinals,
// raw values, labels) into the enum types of the model structs.
func stringToEnumHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		parse, ok := enumTargets[t]
		if !ok {
			return data, nil
		}
		if f.Kind() != reflect.String && f.Kind() != reflect.Int && f.Kind() != reflect.Float64 {
			return data, nil
		}
		parsed, _ := parse(data)
		return parsed, nil
	}
}
