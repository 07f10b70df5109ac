// File: pebbl/generate_test.go
package pebbl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() *Model {
	return &Model{
		Project: Project{
			ID:               "p-001",
			Name:             "North Mine",
			IncludeFaults:    true,
			IncludeBackfills: false,
			IncludeStress:    true,
		},
		Settings: Settings{
			FLACVersion: FLACv7,
			ZoneSize:    1e-05,
			TargetZones: 40000,
			OctreeMesh:  true,
		},
		Domains: []Domain{
			{Name: "Hangingwall", Kind: DomainRock, Density: 2650, Orientation: DirectionTop},
			{Name: "Orebody", Kind: DomainSoil, Density: 3100, Anisotropic: true, Orientation: DirectionNorth},
		},
		Faults: []Fault{
			{Name: "Main", Cohesion: 0.1, Direction: DirectionWest, File: "main.dxf"},
		},
		Backfills: []Backfill{
			{Name: "Paste", FillType: BackfillDelayed},
		},
		Stress: Stress{
			Option: StressOptionDetailed,
			Details: []StressDetail{
				{Name: StressMinimum, Gradient: 0.025, Trend: 135},
				{Name: StressMaximum, Gradient: 0.031, Trend: 45},
			},
		},
		Construction: Construction{
			IncludeTopography: true,
			Details: []ConstructionDetail{
				{Name: DetailStoping, File: "stopes.dxf", ZoneDensDist: 25},
				{Name: DetailTopography, File: "topo.dxf"},
			},
		},
		Solving: SolvingParameters{TotalMineSteps: 12, FirstStep: 1, SolveStepsNumber: 12},
		Steps: []MiningStep{
			{File: "cut1.dxf", GroupName: "cut1", SolveCycles: 2000},
		},
	}
}

func TestGenerate(t *testing.T) {
	lib, err := DefaultReferenceLibrary()
	require.NoError(t, err)

	t.Run("FullDocument", func(t *testing.T) {
		text := Generate(testModel(), lib, GenerateOptions{})

		assert.Contains(t, text, ";==== Project Settings")
		assert.Contains(t, text, "set @Project_Name= 'North Mine'")
		assert.Contains(t, text, "set @zone_size= 0.00001")
		assert.Contains(t, text, "set @Octree_Mesh= no")
		assert.Contains(t, text, "set @FLAC_version= '7.0'")

		assert.Contains(t, text, ";==== Rockmass Domains")
		assert.Contains(t, text, "set @Domain1_name= 'Hangingwall'")
		assert.Contains(t, text, "set @Domain1_Rock_or_Soil= 2")
		assert.Contains(t, text, "set @Domain2_Rock_or_Soil= 1")
		assert.Contains(t, text, "set @Domain2_is_anisotropic= yes")
		assert.Contains(t, text, "set @Domain2_anisotropy_surface_normal_direction= N")

		assert.Contains(t, text, ";==== Faults")
		assert.Contains(t, text, ";-- Faults #1")
		assert.Contains(t, text, "set @Fault1_normal_direction= W")

		assert.Contains(t, text, ";==== Insitu Stress")
		assert.Contains(t, text, "set @stress_option= 'detailed'")
		assert.Contains(t, text, "set @stress_minimum_gradient= 0.025")
		assert.Contains(t, text, "set @stress_maximum_trend= 45")

		assert.Contains(t, text, ";-- Stoping")
		assert.Contains(t, text, "set @stoping_geometry_filename= 'stopes.dxf'")
		assert.Contains(t, text, "set @zone_densification_extent_stoping= 25")

		assert.Contains(t, text, ";==== Solving Parameters")
		assert.Contains(t, text, "set @total_mine_steps= 12")

		assert.Contains(t, text, ";==== Mining Sequence")
		assert.Contains(t, text, "set @step1_geometry_filename= 'cut1.dxf'")
	})

	t.Run("InclusionFlagsGateSections", func(t *testing.T) {
		model := testModel()
		model.Project.IncludeFaults = false
		model.Project.IncludeStress = false
		text := Generate(model, lib, GenerateOptions{})

		assert.NotContains(t, text, ";==== Faults")
		assert.NotContains(t, text, "Fault1_")
		assert.NotContains(t, text, ";==== Insitu Stress")
		assert.NotContains(t, text, "Backfill1_")
	})

	t.Run("SimpleStressOmitsDetails", func(t *testing.T) {
		model := testModel()
		model.Stress.Option = StressOptionSimple
		text := Generate(model, lib, GenerateOptions{})

		assert.Contains(t, text, "set @stress_option= 'simple'")
		assert.NotContains(t, text, "stress_minimum_gradient")
	})

	t.Run("PrefixOnEveryAssignment", func(t *testing.T) {
		text := Generate(testModel(), lib, GenerateOptions{Prefix: "fish "})
		for _, line := range strings.Split(text, "\n") {
			if strings.Contains(line, "set @") {
				assert.True(t, strings.HasPrefix(line, "fish set @"), "line %q", line)
			}
		}
	})
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "North_Mine", SanitizeName("North Mine"))
	assert.Equal(t, "Mine_2.1", SanitizeName("  Mine 2.1  "))
	assert.Equal(t, "mine", SanitizeName("m/i\\n:e"))
	assert.Equal(t, "", SanitizeName("  "))
}

func TestOutputFilename(t *testing.T) {
	t.Run("FromProjectName", func(t *testing.T) {
		assert.Equal(t, "North_Mine_1.2.0.f3dat", OutputFilename("p-001", "North Mine", "1.2.0"))
	})

	t.Run("FallbackToProjectID", func(t *testing.T) {
		assert.Equal(t, "p-001.f3dat", OutputFilename("p-001", "", ""))
	})

	t.Run("RandomStemWhenNothingUsable", func(t *testing.T) {
		name := OutputFilename("", "", "")
		assert.True(t, strings.HasSuffix(name, ".f3dat"))
		assert.Len(t, strings.TrimSuffix(name, ".f3dat"), 8)
	})
}

func TestExtractProjectName(t *testing.T) {
	assert.Equal(t, "North Mine", ExtractProjectName("fish set @Project_Name= 'North Mine'\nset @zone_size= 1"))
	assert.Equal(t, "Bare", ExtractProjectName("Project_Name: Bare"))
	assert.Equal(t, "", ExtractProjectName("set @zone_size= 1"))
}
