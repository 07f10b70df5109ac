// File: pebbl/extract.go
package pebbl

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// assignmentPattern matches one key/value assignment anywhere in a line,
// tolerating an optional leading @ and either = or : as separator.
var assignmentPattern = regexp.MustCompile(`@?([A-Za-z_]\w*)\s*[:=]\s*(.+)`)

// stressDetailPrefix selects canonical-name identifier detection instead
// of numeric suffixes.
const stressDetailPrefix = "stress_detail_name"

// ParsedEntity is one entity recovered from document text: its
// identifier (numeric index or canonical name) and the matched fields,
// keyed by internal field name, holding the raw literals as found.
type ParsedEntity struct {
	Identifier string
	Fields     map[string]string
}

// Extractor rebuilds entity field maps from rendered document lines
// using a single pass over the text.
type Extractor struct {
	lib    *ReferenceLibrary
	logger *zap.Logger
}

// NewExtractor creates an extractor. A nil logger is replaced with a
// no-op one.
func NewExtractor(lib *ReferenceLibrary, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{lib: lib, logger: logger}
}

// Extract parses all assignment lines once into a normalized key table,
// detects the entity identifiers for objectPrefix from the table's own
// keys, then resolves each templated reference entry of the section per
// identifier by direct lookup. A nil section resolves to the extractor
// library's section named by the lower-cased prefix. Identifiers with
// zero matched fields produce no entity.
func (x *Extractor) Extract(lines []string, objectPrefix string, section *ReferenceSection) []ParsedEntity {
	if section == nil {
		if x.lib == nil {
			return nil
		}
		section = x.lib.Section(strings.ToLower(objectPrefix))
	}
	table := x.parseAssignments(lines)

	templated := section.TemplatedEntries()
	if len(templated) == 0 || objectPrefix == "" {
		return x.extractSingleton(table, section)
	}

	var entities []ParsedEntity
	for _, id := range x.identifiers(table, objectPrefix, templated) {
		fields := make(map[string]string)
		for _, entry := range templated {
			key := strings.ToLower(resolveAllTokens(entry.OutputPattern, id))
			if raw, ok := table[key]; ok {
				fields[entry.InternalName] = raw
			}
		}
		if len(fields) == 0 {
			continue
		}
		entities = append(entities, ParsedEntity{Identifier: id, Fields: fields})
	}
	return entities
}

// extractSingleton recovers the one implicit entity of a section whose
// entries carry no placeholders (settings, project, stress and the like).
func (x *Extractor) extractSingleton(table map[string]string, section *ReferenceSection) []ParsedEntity {
	fields := make(map[string]string)
	for _, entry := range section.Entries() {
		if entry.Templated() {
			continue
		}
		if raw, ok := table[strings.ToLower(entry.OutputPattern)]; ok {
			fields[entry.InternalName] = raw
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return []ParsedEntity{{Fields: fields}}
}

// parseAssignments builds the case-insensitive key table from all lines.
// Comment lines are skipped; the first occurrence of a key wins.
func (x *Extractor) parseAssignments(lines []string) map[string]string {
	table := make(map[string]string)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}
		m := assignmentPattern.FindStringSubmatch(trimmed)
		if m == nil {
			x.logger.Debug("line did not match assignment shape", zap.String("line", trimmed))
			continue
		}
		key := strings.ToLower(m[1])
		if key == "set" {
			continue
		}
		if _, exists := table[key]; exists {
			continue
		}
		table[key] = cleanRawValue(m[2])
	}
	return table
}

// identifiers detects the entity identifiers present in the key table.
// Numeric prefixes (Domain, Fault, step and so on) yield sorted numeric
// suffixes; the stress detail prefix yields the canonical component
// names actually present.
func (x *Extractor) identifiers(table map[string]string, objectPrefix string, templated []ReferenceEntry) []string {
	if strings.EqualFold(objectPrefix, stressDetailPrefix) {
		return stressIdentifiers(table, templated)
	}

	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(strings.ToLower(objectPrefix)) + `(\d+)`)
	seen := make(map[int]bool)
	for key := range table {
		m := pattern.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			seen[n] = true
		}
	}
	indices := make([]int, 0, len(seen))
	for n := range seen {
		indices = append(indices, n)
	}
	sort.Ints(indices)
	ids := make([]string, len(indices))
	for i, n := range indices {
		ids[i] = strconv.Itoa(n)
	}
	return ids
}

// stressIdentifiers reports which canonical stress component names have
// at least one resolved key in the table, in canonical order.
func stressIdentifiers(table map[string]string, templated []ReferenceEntry) []string {
	var ids []string
	for _, canonical := range CanonicalStressNames() {
		name := strings.ToLower(canonical)
		for _, entry := range templated {
			key := strings.ToLower(resolveAllTokens(entry.OutputPattern, name))
			if _, ok := table[key]; ok {
				ids = append(ids, name)
				break
			}
		}
	}
	return ids
}

// resolveAllTokens substitutes every placeholder of the pattern with the
// same identifier.
func resolveAllTokens(pattern, id string) string {
	replacements := make(map[string]string)
	for _, token := range TemplateTokens(pattern) {
		replacements[token] = id
	}
	return ResolvePlaceholders(pattern, replacements)
}

// cleanRawValue normalizes a captured value: trailing comment or
// list-delimited content is cut, whitespace trimmed, one pair of
// surrounding quotes removed.
func cleanRawValue(raw string) string {
	if i := strings.IndexAny(raw, ";,"); i >= 0 {
		raw = raw[:i]
	}
	return stripOuterQuotes(strings.TrimSpace(raw))
}
