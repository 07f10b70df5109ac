// File: pebbl/builder_test.go
package pebbl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuilder(t *testing.T, prefix string) *ConfigBuilder {
	t.Helper()
	lib, err := DefaultReferenceLibrary()
	require.NoError(t, err)
	return NewConfigBuilderWithLibrary(prefix, lib, nil)
}

func TestBuilderStructure(t *testing.T) {
	t.Run("SectionHeader", func(t *testing.T) {
		b := testBuilder(t, "")
		b.SectionHeader("Rockmass Domains")
		assert.Equal(t, []string{
			";==============================",
			";==== Rockmass Domains",
			";==============================",
			"",
		}, strings.Split(b.Build(), "\n"))
	})

	t.Run("Subheading", func(t *testing.T) {
		b := testBuilder(t, "")
		b.Subheading("Mechanical Properties")
		assert.Equal(t, []string{
			";--------------------",
			";-- Mechanical Properties",
		}, strings.Split(b.Build(), "\n"))
	})

	t.Run("AddLineAndNewline", func(t *testing.T) {
		b := testBuilder(t, "")
		b.AddLine("; custom comment").Newline().AddLine("model new")
		assert.Equal(t, "; custom comment\n\nmodel new", b.Build())
	})

	t.Run("BuildIsIdempotent", func(t *testing.T) {
		b := testBuilder(t, "")
		b.ConfigLine("zone_size", 0.5)
		first := b.Build()
		assert.Equal(t, first, b.Build())
	})

	t.Run("AppendAfterBuild", func(t *testing.T) {
		b := testBuilder(t, "")
		b.ConfigLine("a", 1)
		first := b.Build()
		b.ConfigLine("b", 2)
		assert.Equal(t, first+"\nset @b= 2", b.Build())
	})
}

func TestConfigLine(t *testing.T) {
	b := testBuilder(t, "fish ")
	b.ConfigLine("Domain1_density", 2700.0)
	b.ConfigLine("flag_enabled", true)
	b.ConfigLine("Octree_Mesh", true)
	assert.Equal(t,
		"fish set @Domain1_density= 2700\n"+
			"fish set @flag_enabled= yes\n"+
			"fish set @Octree_Mesh= no",
		b.Build())
}

func TestConfigLineFor(t *testing.T) {
	collection := []Entity{
		FieldMap{"name": "Hangingwall", "density": 2650.0},
		FieldMap{"name": "Orebody", "density": 3100.0},
	}

	t.Run("MatchIgnoresCase", func(t *testing.T) {
		b := testBuilder(t, "")
		b.ConfigLineFor("hw_density", collection, "HANGINGWALL", "density", 0.0)
		assert.Equal(t, "set @hw_density= 2650", b.Build())
	})

	t.Run("NoMatchEmitsDefault", func(t *testing.T) {
		b := testBuilder(t, "")
		b.ConfigLineFor("fw_density", collection, "Footwall", "density", 2600.0)
		assert.Equal(t, "set @fw_density= 2600", b.Build())
	})
}

func TestRecursiveSection(t *testing.T) {
	mappings := []FieldMapping{
		{Key: "Domain<index>_name", Field: "name", Default: "''"},
		{Key: "Domain<index>_density", Field: "density", Default: 0.0},
	}
	collection := []Entity{
		FieldMap{"name": "Hangingwall", "density": 2650.0},
		FieldMap{"name": "Orebody", "density": 3100.0},
	}

	t.Run("IndexedIteration", func(t *testing.T) {
		b := testBuilder(t, "")
		b.RecursiveSection("", collection, nil, mappings, "")
		assert.Equal(t, []string{
			"set @Domain1_name= 'Hangingwall'",
			"set @Domain1_density= 2650",
			"",
			"set @Domain2_name= 'Orebody'",
			"set @Domain2_density= 3100",
			"",
		}, strings.Split(b.Build(), "\n"))
	})

	t.Run("TitleEmitsHeader", func(t *testing.T) {
		b := testBuilder(t, "")
		b.RecursiveSection("Domains", collection[:1], nil, mappings, "")
		lines := strings.Split(b.Build(), "\n")
		assert.Equal(t, ";==== Domains", lines[1])
	})

	t.Run("TitleEmitsPerEntityHeadings", func(t *testing.T) {
		b := testBuilder(t, "")
		b.RecursiveSection("Domains", collection, nil, mappings, "")
		out := b.Build()
		assert.Contains(t, out, ";-- Domains #1")
		assert.Contains(t, out, ";-- Domains #2")
	})

	t.Run("DiscriminatorHeadingUsesName", func(t *testing.T) {
		b := testBuilder(t, "")
		b.RecursiveSection("Faults", []Entity{
			FieldMap{"name": "Main Fault", "cohesion": 0.1},
		}, nil, []FieldMapping{
			{Key: "<name>_cohesion", Field: "cohesion", Default: 0.0},
		}, "name")
		assert.Contains(t, b.Build(), ";-- Faults Main Fault")
	})

	t.Run("NoTitleNoHeadings", func(t *testing.T) {
		b := testBuilder(t, "")
		b.RecursiveSection("", collection, nil, mappings, "")
		assert.NotContains(t, b.Build(), ";--")
	})

	t.Run("DiscriminatorIteration", func(t *testing.T) {
		b := testBuilder(t, "")
		b.RecursiveSection("", []Entity{
			FieldMap{"name": "Main Fault", "cohesion": 0.1},
		}, nil, []FieldMapping{
			{Key: "<name>_cohesion", Field: "cohesion", Default: 0.0},
		}, "name")
		assert.Equal(t, "set @main_fault_cohesion= 0.1\n", b.Build())
	})

	t.Run("MissingFieldDefaultsAndContinues", func(t *testing.T) {
		b := testBuilder(t, "")
		b.RecursiveSection("", []Entity{
			FieldMap{"name": "Orebody"},
		}, nil, mappings, "")
		assert.Equal(t, []string{
			"set @Domain1_name= 'Orebody'",
			"set @Domain1_density= 0",
			"",
		}, strings.Split(b.Build(), "\n"))
	})

	t.Run("MappingsDerivedFromSection", func(t *testing.T) {
		lib, err := DefaultReferenceLibrary()
		require.NoError(t, err)
		b := testBuilder(t, "")
		b.RecursiveSection("", []Entity{
			&MiningStep{File: "cut1.dxf", GroupName: "cut1", SolveCycles: 2000},
		}, lib.Section("step"), nil, "")
		out := b.Build()
		assert.Contains(t, out, "set @step1_geometry_filename= 'cut1.dxf'")
		assert.Contains(t, out, "set @step1_group_name= 'cut1'")
		assert.Contains(t, out, "set @step1_solve_cycles= 2000")
	})
}

func TestGroupedRecursiveSection(t *testing.T) {
	groups := []FieldGroup{
		{Heading: "Identification", Mappings: []FieldMapping{
			{Key: "Domain<index>_name", Field: "name", Default: "''"},
		}},
		{Heading: "Mechanical Properties", Mappings: []FieldMapping{
			{Key: "Domain<index>_density", Field: "density", Default: 0.0},
		}},
	}
	b := testBuilder(t, "")
	b.GroupedRecursiveSection("", []Entity{
		FieldMap{"name": "Orebody", "density": 3100.0},
	}, nil, groups, "")
	assert.Equal(t, []string{
		";--------------------",
		";-- Identification",
		"set @Domain1_name= 'Orebody'",
		";--------------------",
		";-- Mechanical Properties",
		"set @Domain1_density= 3100",
		"",
	}, strings.Split(b.Build(), "\n"))
}

func TestDetailsByName(t *testing.T) {
	parent := FieldMap{"include_topography": true}
	collection := []Entity{
		&ConstructionDetail{Name: DetailStoping, File: "stopes.dxf", ZoneDensDist: 25},
		&ConstructionDetail{Name: DetailTopography, File: "topo.dxf", ZoneDensDist: 100},
		// Duplicate name: only the first Stoping block is emitted.
		&ConstructionDetail{Name: DetailStoping, File: "ignored.dxf"},
	}
	mappingsByName := map[string][]FieldMapping{
		"stoping": {
			{Key: "<detail_name>_geometry_filename", Field: "file", Default: "''"},
			{Key: "zone_densification_extent_<detail_name>", Field: "zone_dens_dist", Default: 0.0},
		},
		"topo": {
			{Key: "<detail_name>_geometry_filename", Field: "file", Default: "''"},
			{Key: "include_topo", Field: "include_topography", Default: false, Source: parent},
		},
	}

	b := testBuilder(t, "")
	b.DetailsByName(collection, "name", mappingsByName, map[string]string{
		"stoping": "Stoping",
		"topo":    "Topography",
	})
	assert.Equal(t, []string{
		";--------------------",
		";-- Stoping",
		"set @stoping_geometry_filename= 'stopes.dxf'",
		"set @zone_densification_extent_stoping= 25",
		"",
		";--------------------",
		";-- Topography",
		"set @topo_geometry_filename= 'topo.dxf'",
		"set @include_topo= yes",
		"",
	}, strings.Split(b.Build(), "\n"))
}

func TestStressDetailsSection(t *testing.T) {
	collection := []Entity{
		// Out of canonical order on purpose.
		&StressDetail{Name: StressMaximum, Gradient: 0.031, Trend: 45},
		&StressDetail{Name: StressMinimum, Gradient: 0.025, Trend: 135},
	}
	mappings := []FieldMapping{
		{Key: "stress_<stress_detail_name>_gradient", Field: "gradient", Default: 0.0},
		{Key: "stress_<stress_detail_name>_trend", Field: "trend", Default: 0.0},
	}

	b := testBuilder(t, "")
	b.StressDetailsSection(CanonicalStressNames(), collection, mappings)
	assert.Equal(t, []string{
		"set @stress_minimum_gradient= 0.025",
		"set @stress_minimum_trend= 135",
		"",
		"set @stress_maximum_gradient= 0.031",
		"set @stress_maximum_trend= 45",
		"",
	}, strings.Split(b.Build(), "\n"))
}

func TestResolveFieldPanicBarrier(t *testing.T) {
	b := testBuilder(t, "")
	b.RecursiveSection("", []Entity{panickyEntity{}}, nil, []FieldMapping{
		{Key: "Widget<index>_size", Field: "size", Default: 1.0},
	}, "")
	assert.Equal(t, "set @Widget1_size= 1\n", b.Build())
}

type panickyEntity struct{}

func (panickyEntity) Field(name string) (any, bool) {
	panic("broken field access")
}
