// File: pebbl/builder.go
package pebbl

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// FieldMapping ties one output key pattern to the entity field that
// feeds it. Source, when set, redirects the field read to a different
// entity than the one being iterated (used when a flag lives on a parent
// container rather than the grouped detail).
type FieldMapping struct {
	Key     string
	Field   string
	Default any
	Source  Entity
}

// FieldGroup partitions mappings under a named subheading.
type FieldGroup struct {
	Heading  string
	Mappings []FieldMapping
}

// MappingsFromSection derives one mapping per reference entry of a
// section: the entry's output pattern becomes the key, its template key
// the lookup field. Defaults are nil and filled per call site if needed.
func MappingsFromSection(section *ReferenceSection) []FieldMapping {
	if section == nil {
		return nil
	}
	entries := section.Entries()
	mappings := make([]FieldMapping, 0, len(entries))
	for _, e := range entries {
		mappings = append(mappings, FieldMapping{Key: e.OutputPattern, Field: e.TemplateKey})
	}
	return mappings
}

// ConfigBuilder accumulates document lines. It has no hard seal: Build
// may be called at any point and further appends simply extend the next
// Build output. One builder serves one encode request.
type ConfigBuilder struct {
	prefix string
	lines  []string
	lookup *Lookup
	logger *zap.Logger
}

// NewConfigBuilder creates a builder emitting lines with the given
// command prefix, resolving fields through the default reference library.
// A nil logger is replaced with a no-op one.
func NewConfigBuilder(prefix string, logger *zap.Logger) *ConfigBuilder {
	lib, err := DefaultReferenceLibrary()
	if err != nil {
		if logger != nil {
			logger.Warn("default reference library unavailable", zap.Error(err))
		}
		lib = nil
	}
	return NewConfigBuilderWithLibrary(prefix, lib, logger)
}

// NewConfigBuilderWithLibrary creates a builder bound to an explicit
// reference library.
func NewConfigBuilderWithLibrary(prefix string, lib *ReferenceLibrary, logger *zap.Logger) *ConfigBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigBuilder{
		prefix: prefix,
		lookup: NewLookup(lib, logger),
		logger: logger,
	}
}

// AddLine appends one raw line without any formatting.
func (b *ConfigBuilder) AddLine(line string) *ConfigBuilder {
	b.lines = append(b.lines, line)
	return b
}

// Newline appends an empty line.
func (b *ConfigBuilder) Newline() *ConfigBuilder {
	return b.AddLine("")
}

// SectionHeader emits the three-line banner followed by a blank line.
func (b *ConfigBuilder) SectionHeader(title string) *ConfigBuilder {
	b.AddLine(";==============================")
	b.AddLine(";==== " + title)
	b.AddLine(";==============================")
	return b.Newline()
}

// Subheading emits the two-line minor banner.
func (b *ConfigBuilder) Subheading(title string) *ConfigBuilder {
	b.AddLine(";--------------------")
	return b.AddLine(";-- " + title)
}

// ConfigLine emits one formatted assignment for an already-resolved value.
func (b *ConfigBuilder) ConfigLine(key string, value any) *ConfigBuilder {
	return b.AddLine(FormatLine(b.prefix, key, value))
}

// ConfigLineFor scans collection for the entity whose name field equals
// identifier, ignoring case, and emits one assignment from its field.
// When no entity matches, the default is emitted instead.
func (b *ConfigBuilder) ConfigLineFor(key string, collection []Entity, identifier, field string, def any) *ConfigBuilder {
	for _, entity := range collection {
		name, ok := entity.Field("name")
		if !ok {
			continue
		}
		if strings.EqualFold(stringify(name), identifier) {
			return b.ConfigLine(key, b.resolveField(entity, field, def))
		}
	}
	b.logger.Warn("no entity matched identifier, using default",
		zap.String("key", key),
		zap.String("identifier", identifier))
	return b.ConfigLine(key, def)
}

// RecursiveSection emits one block of assignments per entity in the
// collection, under a per-entity subheading when a title is given
// ("Faults #2", or "Faults {name}" with a discriminator). Key patterns
// resolve their <index> token from the 1-based position, or any other
// token from the entity's discriminator field named by identifierKey. A
// nil mappings slice derives the mappings from the section's entries.
// One field failing never aborts the remaining fields or entities.
func (b *ConfigBuilder) RecursiveSection(title string, collection []Entity, section *ReferenceSection, mappings []FieldMapping, identifierKey string) *ConfigBuilder {
	if mappings == nil {
		mappings = MappingsFromSection(section)
	}
	if title != "" {
		b.SectionHeader(title)
	}
	for i, entity := range collection {
		if title != "" {
			b.Subheading(entityHeading(title, entity, i+1, identifierKey))
		}
		for _, m := range mappings {
			b.emitMapping(entity, m, b.replacements(entity, m.Key, i+1, identifierKey))
		}
		b.Newline()
	}
	return b
}

// entityHeading names one entity's block: the discriminator value when
// one is configured and present, the 1-based position otherwise.
func entityHeading(title string, entity Entity, index int, identifierKey string) string {
	if identifierKey != "" {
		if v, ok := entity.Field(identifierKey); ok && !isEmptyValue(v) {
			return title + " " + strings.TrimSpace(stringify(v))
		}
	}
	return fmt.Sprintf("%s #%d", title, index)
}

// GroupedRecursiveSection is RecursiveSection with the mappings split
// into named subheading groups per entity.
func (b *ConfigBuilder) GroupedRecursiveSection(title string, collection []Entity, section *ReferenceSection, groups []FieldGroup, identifierKey string) *ConfigBuilder {
	if title != "" {
		b.SectionHeader(title)
	}
	for i, entity := range collection {
		for _, g := range groups {
			if g.Heading != "" {
				b.Subheading(g.Heading)
			}
			for _, m := range g.Mappings {
				b.emitMapping(entity, m, b.replacements(entity, m.Key, i+1, identifierKey))
			}
		}
		b.Newline()
	}
	return b
}

// DetailsByName groups entities by a discriminator field and emits one
// block per distinct name, using that name's specific mapping list.
// Names normalize through enum raw values and lower-casing so "Stoping",
// DetailStoping and "stoping" land in the same bucket. Custom headings
// override the default subheading text per name.
func (b *ConfigBuilder) DetailsByName(collection []Entity, nameField string, mappingsByName map[string][]FieldMapping, headings map[string]string) *ConfigBuilder {
	seen := make(map[string]bool)
	for _, entity := range collection {
		raw, ok := entity.Field(nameField)
		if !ok {
			b.logger.Warn("entity without discriminator field skipped",
				zap.String("field", nameField))
			continue
		}
		name := normalizeName(raw)
		if seen[name] {
			continue
		}
		seen[name] = true
		mappings, ok := mappingsByName[name]
		if !ok {
			b.logger.Warn("no mappings for detail name", zap.String("name", name))
			continue
		}
		heading := headings[name]
		if heading == "" {
			heading = name
		}
		b.Subheading(heading)
		for _, m := range mappings {
			b.emitMapping(entity, m, tokenReplacements(m.Key, name))
		}
		b.Newline()
	}
	return b
}

// StressDetailsSection emits one block per canonical name present in the
// collection, in canonical order, matching entity names without case
// sensitivity. Canonical names absent from the collection are skipped.
func (b *ConfigBuilder) StressDetailsSection(canonicalNames []string, collection []Entity, mappings []FieldMapping) *ConfigBuilder {
	for _, canonical := range canonicalNames {
		entity, ok := findByName(collection, canonical)
		if !ok {
			continue
		}
		name := strings.ToLower(canonical)
		for _, m := range mappings {
			b.emitMapping(entity, m, tokenReplacements(m.Key, name))
		}
		b.Newline()
	}
	return b
}

// Build joins the accumulated lines. It is pure and may be called any
// number of times.
func (b *ConfigBuilder) Build() string {
	return strings.Join(b.lines, "\n")
}

// Lines returns a copy of the accumulated lines.
func (b *ConfigBuilder) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Len reports the number of accumulated lines.
func (b *ConfigBuilder) Len() int {
	return len(b.lines)
}

// emitMapping resolves one mapping against the entity and appends the
// line. A panicking Field implementation degrades to the mapping default.
func (b *ConfigBuilder) emitMapping(entity Entity, m FieldMapping, replacements map[string]string) {
	key := ResolvePlaceholders(m.Key, replacements)
	if IsTemplated(key) {
		b.logger.Warn("unresolved placeholder in output key", zap.String("key", key))
	}
	source := entity
	if m.Source != nil {
		source = m.Source
	}
	b.ConfigLine(key, b.resolveField(source, m.Field, m.Default))
}

// resolveField is the fault barrier around a single field lookup.
func (b *ConfigBuilder) resolveField(entity Entity, field string, def any) (value any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn("field lookup failed, using default",
				zap.String("field", field),
				zap.Any("cause", r))
			value = def
		}
	}()
	return b.lookup.ValueOf(entity, field, def)
}

// replacements builds the token substitution map for one key pattern:
// <index> resolves to the 1-based position, every other token to the
// entity's discriminator value.
func (b *ConfigBuilder) replacements(entity Entity, pattern string, index int, identifierKey string) map[string]string {
	replacements := map[string]string{"index": strconv.Itoa(index)}
	for _, token := range TemplateTokens(pattern) {
		if token == "index" {
			continue
		}
		field := identifierKey
		if field == "" {
			field = token
		}
		if v, ok := entity.Field(field); ok {
			replacements[token] = safeIdentifier(normalizeName(v))
		}
	}
	return replacements
}

// tokenReplacements maps every token of the pattern to the same name.
func tokenReplacements(pattern, name string) map[string]string {
	replacements := make(map[string]string)
	for _, token := range TemplateTokens(pattern) {
		replacements[token] = safeIdentifier(name)
	}
	return replacements
}

// normalizeName reduces a discriminator value to its canonical lowercase
// form, preferring an enum's raw value over its display text.
func normalizeName(v any) string {
	if e, ok := v.(Enum); ok {
		return strings.ToLower(e.RawValue())
	}
	return strings.ToLower(strings.TrimSpace(stringify(v)))
}

// findByName returns the first entity whose name field equals name,
// ignoring case. Enum-valued names match on raw value and identifier.
func findByName(collection []Entity, name string) (Entity, bool) {
	for _, entity := range collection {
		v, ok := entity.Field("name")
		if !ok {
			continue
		}
		if strings.EqualFold(normalizeName(v), name) || strings.EqualFold(stringify(v), name) {
			return entity, true
		}
	}
	return nil, false
}
