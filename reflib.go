// File: pebbl/reflib.go
package pebbl

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed refdata/reference.toml
var defaultReferenceTOML []byte

// ReferenceEntry describes how one logical field maps to an output key
// and back. OutputPattern may contain <token> placeholders instantiated
// per entity at encode and decode time.
type ReferenceEntry struct {
	TemplateKey   string         `toml:"template_key" json:"template_key"`
	InternalName  string         `toml:"internal_name" json:"internal_name"`
	OutputPattern string         `toml:"output_pattern" json:"output_pattern"`
	ParentObject  string         `toml:"parent_object" json:"parent_object"`
	EnumOverride  OverridePolicy `toml:"enum_override,omitempty" json:"enum_override,omitempty"`
}

// Templated reports whether the entry's output pattern needs identifier
// substitution before use.
func (e ReferenceEntry) Templated() bool {
	return IsTemplated(e.OutputPattern)
}

// ReferenceLibrary is the immutable table of reference entries, indexed
// by template key and grouped by parent object. It is loaded once and
// shared by reference across all encode and decode calls; it is never
// mutated after load and is safe for concurrent readers.
type ReferenceLibrary struct {
	byKey    map[string]ReferenceEntry
	sections map[string]*ReferenceSection
}

// ReferenceSection is the slice of a library owned by one parent object
// category, in load order.
type ReferenceSection struct {
	parent  string
	byKey   map[string]ReferenceEntry
	ordered []ReferenceEntry
}

// referenceFile is the on-disk TOML shape of a library.
type referenceFile struct {
	Entries []ReferenceEntry `toml:"entry"`
}

// LoadReferenceLibrary reads a reference library from TOML. Entries must
// have a non-empty template key, internal name and output pattern, and
// template keys must be unique across the whole library.
func LoadReferenceLibrary(r io.Reader) (*ReferenceLibrary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference library: %w", err)
	}
	return ParseReferenceLibrary(data)
}

// ParseReferenceLibrary builds a library from TOML bytes.
func ParseReferenceLibrary(data []byte) (*ReferenceLibrary, error) {
	var file referenceFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse reference library TOML: %w", err)
	}

	lib := &ReferenceLibrary{
		byKey:    make(map[string]ReferenceEntry, len(file.Entries)),
		sections: make(map[string]*ReferenceSection),
	}

	for i, entry := range file.Entries {
		if entry.TemplateKey == "" {
			return nil, fmt.Errorf("reference entry %d has an empty template_key", i)
		}
		if entry.InternalName == "" {
			return nil, fmt.Errorf("reference entry %q has an empty internal_name", entry.TemplateKey)
		}
		if entry.OutputPattern == "" {
			return nil, fmt.Errorf("reference entry %q has an empty output_pattern", entry.TemplateKey)
		}
		if _, exists := lib.byKey[entry.TemplateKey]; exists {
			return nil, fmt.Errorf("duplicate template_key %q in reference library", entry.TemplateKey)
		}
		switch entry.EnumOverride {
		case OverrideNone, OverrideNumeric, OverrideValue, OverrideName, OverrideLabel, OverrideSlug, OverrideLetter:
		default:
			return nil, fmt.Errorf("reference entry %q has unknown enum_override %q", entry.TemplateKey, entry.EnumOverride)
		}

		lib.byKey[entry.TemplateKey] = entry

		section, ok := lib.sections[entry.ParentObject]
		if !ok {
			section = &ReferenceSection{
				parent: entry.ParentObject,
				byKey:  make(map[string]ReferenceEntry),
			}
			lib.sections[entry.ParentObject] = section
		}
		section.byKey[entry.TemplateKey] = entry
		section.ordered = append(section.ordered, entry)
	}

	return lib, nil
}

var defaultLibrary = sync.OnceValues(func() (*ReferenceLibrary, error) {
	return LoadReferenceLibrary(bytes.NewReader(defaultReferenceTOML))
})

// DefaultReferenceLibrary returns the library embedded in the binary.
// The load happens once; every caller shares the same instance.
func DefaultReferenceLibrary() (*ReferenceLibrary, error) {
	return defaultLibrary()
}

// Lookup finds an entry by template key anywhere in the library.
func (l *ReferenceLibrary) Lookup(key string) (ReferenceEntry, bool) {
	entry, ok := l.byKey[key]
	return entry, ok
}

// Section returns the entries grouped under one parent object. An
// unknown parent yields an empty section, never nil.
func (l *ReferenceLibrary) Section(parentObject string) *ReferenceSection {
	if section, ok := l.sections[parentObject]; ok {
		return section
	}
	return &ReferenceSection{parent: parentObject, byKey: map[string]ReferenceEntry{}}
}

// Len reports the total number of entries.
func (l *ReferenceLibrary) Len() int {
	return len(l.byKey)
}

// Parent returns the owning parent object tag of the section.
func (s *ReferenceSection) Parent() string {
	return s.parent
}

// Lookup finds an entry of this section by template key.
func (s *ReferenceSection) Lookup(key string) (ReferenceEntry, bool) {
	entry, ok := s.byKey[key]
	return entry, ok
}

// Entries returns all entries of the section in load order. The returned
// slice is a copy; mutating it does not affect the library.
func (s *ReferenceSection) Entries() []ReferenceEntry {
	out := make([]ReferenceEntry, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// TemplatedEntries returns only the entries whose output pattern carries
// placeholders, in load order.
func (s *ReferenceSection) TemplatedEntries() []ReferenceEntry {
	var out []ReferenceEntry
	for _, entry := range s.ordered {
		if entry.Templated() {
			out = append(out, entry)
		}
	}
	return out
}

// Len reports the number of entries in the section.
func (s *ReferenceSection) Len() int {
	return len(s.ordered)
}
