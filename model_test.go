// File: pebbl/model_test.go
package pebbl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityFieldAccess(t *testing.T) {
	t.Run("CaseInsensitive", func(t *testing.T) {
		d := &Domain{Density: 2700}
		v, ok := d.Field("DENSITY")
		require.True(t, ok)
		assert.Equal(t, 2700.0, v)
	})

	t.Run("Aliases", func(t *testing.T) {
		d := &Domain{Nu: 0.25}
		v, ok := d.Field("poisson")
		require.True(t, ok)
		assert.Equal(t, 0.25, v)
	})

	t.Run("UnknownField", func(t *testing.T) {
		_, ok := (&Fault{}).Field("imaginary")
		assert.False(t, ok)
	})

	t.Run("KnownFieldMayBeZero", func(t *testing.T) {
		v, ok := (&Backfill{}).Field("group_name")
		require.True(t, ok)
		assert.Equal(t, "", v)
	})
}

func TestStressDetailLookup(t *testing.T) {
	s := &Stress{Details: []StressDetail{
		{Name: StressMinimum, Gradient: 0.025},
		{Name: StressMaximum, Gradient: 0.031},
	}}

	d, ok := s.Detail("MAXIMUM")
	require.True(t, ok)
	assert.Equal(t, 0.031, d.Gradient)

	_, ok = s.Detail("intermediate")
	assert.False(t, ok)
}

func TestConstructionDetailLookup(t *testing.T) {
	c := &Construction{Details: []ConstructionDetail{
		{Name: DetailAreaOfInterest, File: "aoi.dxf"},
	}}

	d, ok := c.Detail("area_of_interest")
	require.True(t, ok)
	assert.Equal(t, "aoi.dxf", d.File)

	d, ok = c.Detail("Area of Interest")
	require.True(t, ok)
	assert.Equal(t, "aoi.dxf", d.File)

	_, ok = c.Detail("stoping")
	assert.False(t, ok)
}
