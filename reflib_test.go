// File: pebbl/reflib_test.go
package pebbl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLibraryTOML = `
[[entry]]
template_key = "widget_name"
internal_name = "name"
output_pattern = "Widget<index>_name"
parent_object = "widget"

[[entry]]
template_key = "widget_direction"
internal_name = "direction"
output_pattern = "Widget<index>_normal_direction"
parent_object = "widget"
enum_override = "letter"

[[entry]]
template_key = "global_flag"
internal_name = "flag"
output_pattern = "global_flag"
parent_object = "globals"
`

func TestParseReferenceLibrary(t *testing.T) {
	t.Run("ValidLibrary", func(t *testing.T) {
		lib, err := ParseReferenceLibrary([]byte(testLibraryTOML))
		require.NoError(t, err)
		assert.Equal(t, 3, lib.Len())

		entry, ok := lib.Lookup("widget_direction")
		require.True(t, ok)
		assert.Equal(t, "direction", entry.InternalName)
		assert.Equal(t, OverrideLetter, entry.EnumOverride)
		assert.True(t, entry.Templated())

		entry, ok = lib.Lookup("global_flag")
		require.True(t, ok)
		assert.False(t, entry.Templated())

		_, ok = lib.Lookup("missing")
		assert.False(t, ok)
	})

	t.Run("EmptyTemplateKey", func(t *testing.T) {
		_, err := ParseReferenceLibrary([]byte(`
[[entry]]
template_key = ""
internal_name = "x"
output_pattern = "x"
parent_object = "p"
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "template_key")
	})

	t.Run("DuplicateTemplateKey", func(t *testing.T) {
		dup := testLibraryTOML + `
[[entry]]
template_key = "widget_name"
internal_name = "other"
output_pattern = "Other<index>_name"
parent_object = "widget"
`
		_, err := ParseReferenceLibrary([]byte(dup))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("UnknownEnumOverride", func(t *testing.T) {
		_, err := ParseReferenceLibrary([]byte(`
[[entry]]
template_key = "x"
internal_name = "x"
output_pattern = "x"
parent_object = "p"
enum_override = "color"
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "enum_override")
	})

	t.Run("MalformedTOML", func(t *testing.T) {
		_, err := ParseReferenceLibrary([]byte(`[[entry` ))
		assert.Error(t, err)
	})
}

func TestReferenceSections(t *testing.T) {
	lib, err := LoadReferenceLibrary(strings.NewReader(testLibraryTOML))
	require.NoError(t, err)

	t.Run("SectionGrouping", func(t *testing.T) {
		widgets := lib.Section("widget")
		assert.Equal(t, "widget", widgets.Parent())
		assert.Equal(t, 2, widgets.Len())

		entries := widgets.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "widget_name", entries[0].TemplateKey)
		assert.Equal(t, "widget_direction", entries[1].TemplateKey)

		assert.Len(t, widgets.TemplatedEntries(), 2)
		assert.Empty(t, lib.Section("globals").TemplatedEntries())
	})

	t.Run("UnknownSectionIsEmptyNotNil", func(t *testing.T) {
		s := lib.Section("nope")
		require.NotNil(t, s)
		assert.Zero(t, s.Len())
		assert.Equal(t, "nope", s.Parent())
	})

	t.Run("EntriesReturnsCopy", func(t *testing.T) {
		widgets := lib.Section("widget")
		entries := widgets.Entries()
		entries[0].TemplateKey = "mutated"
		assert.Equal(t, "widget_name", widgets.Entries()[0].TemplateKey)
	})
}

func TestDefaultReferenceLibrary(t *testing.T) {
	lib, err := DefaultReferenceLibrary()
	require.NoError(t, err)
	assert.Greater(t, lib.Len(), 50)

	t.Run("SharedInstance", func(t *testing.T) {
		again, err := DefaultReferenceLibrary()
		require.NoError(t, err)
		assert.Same(t, lib, again)
	})

	t.Run("ExpectedSections", func(t *testing.T) {
		for _, parent := range []string{
			"project", "settings", "domain", "fault", "backfill",
			"stress", "stress_detail", "model_construction",
			"model_construction_detail", "solving_parameter", "step",
		} {
			assert.NotZero(t, lib.Section(parent).Len(), "section %q", parent)
		}
	})

	t.Run("DomainEntries", func(t *testing.T) {
		entry, ok := lib.Lookup("domain_density")
		require.True(t, ok)
		assert.Equal(t, "Domain<index>_density", entry.OutputPattern)
		assert.Equal(t, "density", entry.InternalName)
		assert.Equal(t, "domain", entry.ParentObject)

		entry, ok = lib.Lookup("domain_anisotropy_surface_normal_direction")
		require.True(t, ok)
		assert.Equal(t, OverrideLetter, entry.EnumOverride)
	})
}
