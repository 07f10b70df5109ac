// File: pebbl/model.go
package pebbl

import "strings"

// Entity exposes named field access for document generation. Implementations
// return the field's current value and whether the name is known; the two are
// independent, so a known field may legitimately hold nil or an empty string.
type Entity interface {
	Field(name string) (any, bool)
}

// FieldMap is the loosest Entity: a plain map of field names to values.
// Decoded documents and ad-hoc test fixtures use it directly.
type FieldMap map[string]any

// Field looks the name up case-insensitively.
func (m FieldMap) Field(name string) (any, bool) {
	if v, ok := m[name]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// Project is the top-level job description.
type Project struct {
	ID               string `json:"id" yaml:"id"`
	Name             string `json:"project_name" yaml:"project_name"`
	LinearElastic    bool   `json:"linear_elastic" yaml:"linear_elastic"`
	IncludeFaults    bool   `json:"include_faults" yaml:"include_faults"`
	IncludeBackfills bool   `json:"include_backfills" yaml:"include_backfills"`
	IncludeStress    bool   `json:"include_stress" yaml:"include_stress"`
}

func (p *Project) Field(name string) (any, bool) {
	switch strings.ToLower(name) {
	case "id":
		return p.ID, true
	case "project_name", "name":
		return p.Name, true
	case "linear_elastic":
		return p.LinearElastic, true
	case "include_faults":
		return p.IncludeFaults, true
	case "include_backfills":
		return p.IncludeBackfills, true
	case "include_stress":
		return p.IncludeStress, true
	}
	return nil, false
}

// Settings holds the meshing and output switches shared by the whole model.
type Settings struct {
	FileFormat          string      `json:"file_format" yaml:"file_format"`
	FLACVersion         FLACVersion `json:"flac_version" yaml:"flac_version"`
	ZoneSize            float64     `json:"zone_size" yaml:"zone_size"`
	FarFieldZoneSize    float64     `json:"farfield_zone_size" yaml:"farfield_zone_size"`
	ModelBoundaryOffset float64     `json:"model_boundary_offset" yaml:"model_boundary_offset"`
	TargetZones         int         `json:"target_zones" yaml:"target_zones"`
	OctreeMesh          bool        `json:"octree_mesh" yaml:"octree_mesh"`
	ImportMesh          bool        `json:"import_mesh" yaml:"import_mesh"`
	ImportMeshFile      string      `json:"import_mesh_file" yaml:"import_mesh_file"`
	GEM4DOutput         bool        `json:"gem4d_output" yaml:"gem4d_output"`
	Paraview            bool        `json:"paraview" yaml:"paraview"`
}

func (s *Settings) Field(name string) (any, bool) {
	switch strings.ToLower(name) {
	case "file_format":
		return s.FileFormat, true
	case "flac_version":
		return s.FLACVersion, true
	case "zone_size":
		return s.ZoneSize, true
	case "farfield_zone_size":
		return s.FarFieldZoneSize, true
	case "model_boundary_offset":
		return s.ModelBoundaryOffset, true
	case "target_zones":
		return s.TargetZones, true
	case "octree_mesh":
		return s.OctreeMesh, true
	case "import_mesh":
		return s.ImportMesh, true
	case "import_mesh_file":
		return s.ImportMeshFile, true
	case "gem4d_output":
		return s.GEM4DOutput, true
	case "paraview":
		return s.Paraview, true
	}
	return nil, false
}

// Domain is one geological material domain with its strength and
// anisotropy parameters.
type Domain struct {
	Name               string     `json:"name" yaml:"name"`
	Kind               DomainKind `json:"kind" yaml:"kind"`
	File               string     `json:"file" yaml:"file"`
	Density            float64    `json:"density" yaml:"density"`
	Ei                 float64    `json:"ei" yaml:"ei"`
	Nu                 float64    `json:"nu" yaml:"nu"`
	GSI                float64    `json:"gsi" yaml:"gsi"`
	Sigci              float64    `json:"sigci" yaml:"sigci"`
	MiMax              float64    `json:"mi_max" yaml:"mi_max"`
	MiMin              float64    `json:"mi_min" yaml:"mi_min"`
	DisFac             float64    `json:"dis_fac" yaml:"dis_fac"`
	Cohesion           float64    `json:"cohesion" yaml:"cohesion"`
	FrictionAngle      float64    `json:"friction_angle" yaml:"friction_angle"`
	Tension            float64    `json:"tension" yaml:"tension"`
	DilationAngle      float64    `json:"dilation_angle" yaml:"dilation_angle"`
	Cohres             float64    `json:"cohres" yaml:"cohres"`
	Fricres            float64    `json:"fricres" yaml:"fricres"`
	Tenres             float64    `json:"tenres" yaml:"tenres"`
	Critred            float64    `json:"critred" yaml:"critred"`
	LinearElastic      bool       `json:"linear_elastic" yaml:"linear_elastic"`
	StiffnessSoftening bool       `json:"stiffness_softening" yaml:"stiffness_softening"`
	Anisotropic        bool       `json:"anisotropic" yaml:"anisotropic"`
	AnisoDip           float64    `json:"aniso_dip" yaml:"aniso_dip"`
	AnisoDipD          float64    `json:"aniso_dipd" yaml:"aniso_dipd"`
	AnisoFac           float64    `json:"aniso_fac" yaml:"aniso_fac"`
	Orientation        Direction  `json:"orientation" yaml:"orientation"`
}

func (d *Domain) Field(name string) (any, bool) {
	switch strings.ToLower(name) {
	case "name":
		return d.Name, true
	case "kind":
		return d.Kind, true
	case "file":
		return d.File, true
	case "density":
		return d.Density, true
	case "ei":
		return d.Ei, true
	case "nu", "poisson":
		return d.Nu, true
	case "gsi":
		return d.GSI, true
	case "sigci":
		return d.Sigci, true
	case "mi_max":
		return d.MiMax, true
	case "mi_min":
		return d.MiMin, true
	case "dis_fac":
		return d.DisFac, true
	case "cohesion":
		return d.Cohesion, true
	case "friction_angle":
		return d.FrictionAngle, true
	case "tension":
		return d.Tension, true
	case "dilation_angle":
		return d.DilationAngle, true
	case "cohres":
		return d.Cohres, true
	case "fricres":
		return d.Fricres, true
	case "tenres":
		return d.Tenres, true
	case "critred":
		return d.Critred, true
	case "linear_elastic":
		return d.LinearElastic, true
	case "stiffness_softening":
		return d.StiffnessSoftening, true
	case "anisotropic":
		return d.Anisotropic, true
	case "aniso_dip":
		return d.AnisoDip, true
	case "aniso_dipd":
		return d.AnisoDipD, true
	case "aniso_fac":
		return d.AnisoFac, true
	case "orientation":
		return d.Orientation, true
	}
	return nil, false
}

// Fault is a discrete structure cutting the model, carried as an
// interface with its own strength parameters.
type Fault struct {
	Name            string     `json:"name" yaml:"name"`
	File            string     `json:"file" yaml:"file"`
	GroupName       string     `json:"group_name" yaml:"group_name"`
	Material        DomainKind `json:"material" yaml:"material"`
	Cohesion        float64    `json:"cohesion" yaml:"cohesion"`
	Density         float64    `json:"density" yaml:"density"`
	Ei              float64    `json:"ei" yaml:"ei"`
	Poisson         float64    `json:"poisson" yaml:"poisson"`
	GSI             float64    `json:"gsi" yaml:"gsi"`
	Sigci           float64    `json:"sigci" yaml:"sigci"`
	FrictionAngle   float64    `json:"friction_angle" yaml:"friction_angle"`
	Tension         float64    `json:"tension" yaml:"tension"`
	NormalStiffness float64    `json:"normal_stiffness" yaml:"normal_stiffness"`
	ShearStiffness  float64    `json:"shear_stiffness" yaml:"shear_stiffness"`
	IncAniso        bool       `json:"inc_aniso" yaml:"inc_aniso"`
	Direction       Direction  `json:"direction" yaml:"direction"`
}

func (f *Fault) Field(name string) (any, bool) {
	switch strings.ToLower(name) {
	case "name":
		return f.Name, true
	case "file":
		return f.File, true
	case "group_name":
		return f.GroupName, true
	case "material":
		return f.Material, true
	case "cohesion":
		return f.Cohesion, true
	case "density":
		return f.Density, true
	case "ei":
		return f.Ei, true
	case "poisson":
		return f.Poisson, true
	case "gsi":
		return f.GSI, true
	case "sigci":
		return f.Sigci, true
	case "friction_angle":
		return f.FrictionAngle, true
	case "tension":
		return f.Tension, true
	case "normal_stiffness":
		return f.NormalStiffness, true
	case "shear_stiffness":
		return f.ShearStiffness, true
	case "inc_aniso":
		return f.IncAniso, true
	case "direction":
		return f.Direction, true
	}
	return nil, false
}

// Backfill describes one fill material and its placement schedule.
type Backfill struct {
	Name            string            `json:"name" yaml:"name"`
	File            string            `json:"file" yaml:"file"`
	GroupName       string            `json:"group_name" yaml:"group_name"`
	FillType        BackfillType      `json:"fill_type" yaml:"fill_type"`
	DelayRule       BackfillDelayRule `json:"delay_rule" yaml:"delay_rule"`
	Elasticity      BackfillMaterial  `json:"elasticity" yaml:"elasticity"`
	Cohesion        float64           `json:"cohesion" yaml:"cohesion"`
	Density         float64           `json:"density" yaml:"density"`
	Ei              float64           `json:"ei" yaml:"ei"`
	FrictionAngle   float64           `json:"friction_angle" yaml:"friction_angle"`
	Poisson         float64           `json:"poisson" yaml:"poisson"`
	Tension         float64           `json:"tension" yaml:"tension"`
	NumSteps        int               `json:"num_steps" yaml:"num_steps"`
	NumStepsDelayed int               `json:"num_steps_delayed" yaml:"num_steps_delayed"`
}

func (b *Backfill) Field(name string) (any, bool) {
	switch strings.ToLower(name) {
	case "name":
		return b.Name, true
	case "file":
		return b.File, true
	case "group_name":
		return b.GroupName, true
	case "fill_type":
		return b.FillType, true
	case "delay_rule":
		return b.DelayRule, true
	case "elasticity":
		return b.Elasticity, true
	case "cohesion":
		return b.Cohesion, true
	case "density":
		return b.Density, true
	case "ei":
		return b.Ei, true
	case "friction_angle":
		return b.FrictionAngle, true
	case "poisson":
		return b.Poisson, true
	case "tension":
		return b.Tension, true
	case "num_steps":
		return b.NumSteps, true
	case "num_steps_delayed":
		return b.NumStepsDelayed, true
	}
	return nil, false
}

// StressDetail is one canonical in-situ stress component block.
type StressDetail struct {
	Name     StressKind `json:"name" yaml:"name"`
	Gradient float64    `json:"gradient" yaml:"gradient"`
	Plunge   float64    `json:"plunge" yaml:"plunge"`
	Trend    float64    `json:"trend" yaml:"trend"`
	LockedIn float64    `json:"locked_in" yaml:"locked_in"`
}

func (d *StressDetail) Field(name string) (any, bool) {
	switch strings.ToLower(name) {
	case "name":
		return d.Name, true
	case "gradient":
		return d.Gradient, true
	case "plunge":
		return d.Plunge, true
	case "trend":
		return d.Trend, true
	case "locked_in":
		return d.LockedIn, true
	}
	return nil, false
}

// Stress carries the in-situ stress state, either as simple ratios or as
// per-component detail blocks.
type Stress struct {
	Option                 StressOption   `json:"option" yaml:"option"`
	GroundSurfaceElevation float64        `json:"ground_surface_elevation" yaml:"ground_surface_elevation"`
	MajorRatio             float64        `json:"major_ratio" yaml:"major_ratio"`
	MinorRatio             float64        `json:"minor_ratio" yaml:"minor_ratio"`
	OrientationMajor       float64        `json:"orientation_major" yaml:"orientation_major"`
	Details                []StressDetail `json:"details" yaml:"details"`
}

func (s *Stress) Field(name string) (any, bool) {
	switch strings.ToLower(name) {
	case "option":
		return s.Option, true
	case "ground_surface_elevation":
		return s.GroundSurfaceElevation, true
	case "major_ratio":
		return s.MajorRatio, true
	case "minor_ratio":
		return s.MinorRatio, true
	case "orientation_major":
		return s.OrientationMajor, true
	}
	return nil, false
}

// Detail returns the stress detail block with the given canonical name,
// matched case-insensitively.
func (s *Stress) Detail(name string) (*StressDetail, bool) {
	for i := range s.Details {
		if strings.EqualFold(s.Details[i].Name.RawValue(), name) ||
			strings.EqualFold(s.Details[i].Name.Name(), name) {
			return &s.Details[i], true
		}
	}
	return nil, false
}

// ConstructionDetail is one named construction surface (stoping,
// topography, development and so on) with its meshing parameters.
type ConstructionDetail struct {
	Name             ConstructionDetailName `json:"name" yaml:"name"`
	File             string                 `json:"file" yaml:"file"`
	ZoneDensDist     float64                `json:"zone_dens_dist" yaml:"zone_dens_dist"`
	MinZoneSize      float64                `json:"min_zonesize" yaml:"min_zonesize"`
	InitZoneSize     float64                `json:"init_zonesize" yaml:"init_zonesize"`
	Densification    DensificationLevel     `json:"densification" yaml:"densification"`
	GeometryAccuracy GeoAccuracy            `json:"geometry_accuracy" yaml:"geometry_accuracy"`
}

func (d *ConstructionDetail) Field(name string) (any, bool) {
	switch strings.ToLower(name) {
	case "name":
		return d.Name, true
	case "file":
		return d.File, true
	case "zone_dens_dist":
		return d.ZoneDensDist, true
	case "min_zonesize":
		return d.MinZoneSize, true
	case "init_zonesize":
		return d.InitZoneSize, true
	case "densification":
		return d.Densification, true
	case "geometry_accuracy":
		return d.GeometryAccuracy, true
	}
	return nil, false
}

// Construction groups the model construction switches and per-surface
// detail blocks.
type Construction struct {
	IncludeTopography       bool                 `json:"include_topography" yaml:"include_topography"`
	IncludeDevelopment      bool                 `json:"include_development" yaml:"include_development"`
	IncludeAreaOfInterest   bool                 `json:"include_area_of_interest" yaml:"include_area_of_interest"`
	IncludeHistoricalMining bool                 `json:"include_historical_mining" yaml:"include_historical_mining"`
	GroundSurfaceElevation  float64              `json:"ground_surface_elevation" yaml:"ground_surface_elevation"`
	Details                 []ConstructionDetail `json:"details" yaml:"details"`
}

func (c *Construction) Field(name string) (any, bool) {
	switch strings.ToLower(name) {
	case "include_topography":
		return c.IncludeTopography, true
	case "include_development":
		return c.IncludeDevelopment, true
	case "include_area_of_interest":
		return c.IncludeAreaOfInterest, true
	case "include_historical_mining":
		return c.IncludeHistoricalMining, true
	case "ground_surface_elevation":
		return c.GroundSurfaceElevation, true
	}
	return nil, false
}

// Detail returns the construction detail block with the given name,
// matched against raw value, display label or identifier form.
func (c *Construction) Detail(name string) (*ConstructionDetail, bool) {
	for i := range c.Details {
		d := &c.Details[i]
		if strings.EqualFold(d.Name.RawValue(), name) ||
			strings.EqualFold(d.Name.Label(), name) ||
			strings.EqualFold(safeIdentifier(d.Name.Label()), name) {
			return d, true
		}
	}
	return nil, false
}

// SolvingParameters controls the stepping of the solve sequence.
type SolvingParameters struct {
	TotalMineSteps   int `json:"total_mine_steps" yaml:"total_mine_steps"`
	FirstStep        int `json:"first_step" yaml:"first_step"`
	SolveStepsNumber int `json:"solve_steps_number" yaml:"solve_steps_number"`
	AdditionalCycles int `json:"additional_cycles" yaml:"additional_cycles"`
}

func (p *SolvingParameters) Field(name string) (any, bool) {
	switch strings.ToLower(name) {
	case "total_mine_steps":
		return p.TotalMineSteps, true
	case "first_step":
		return p.FirstStep, true
	case "solve_steps_number":
		return p.SolveStepsNumber, true
	case "additional_cycles":
		return p.AdditionalCycles, true
	}
	return nil, false
}

// MiningStep is one excavation step in the mining sequence.
type MiningStep struct {
	Name          string `json:"name" yaml:"name"`
	File          string `json:"file" yaml:"file"`
	GroupName     string `json:"group_name" yaml:"group_name"`
	SolveCycles   int    `json:"solve_cycles" yaml:"solve_cycles"`
	BackfillDelay int    `json:"backfill_delay" yaml:"backfill_delay"`
}

func (s *MiningStep) Field(name string) (any, bool) {
	switch strings.ToLower(name) {
	case "name":
		return s.Name, true
	case "file":
		return s.File, true
	case "group_name":
		return s.GroupName, true
	case "solve_cycles":
		return s.SolveCycles, true
	case "backfill_delay":
		return s.BackfillDelay, true
	}
	return nil, false
}

// Model is the complete input for one document generation run.
type Model struct {
	Project      Project           `json:"project" yaml:"project"`
	Settings     Settings          `json:"settings" yaml:"settings"`
	Domains      []Domain          `json:"domains" yaml:"domains"`
	Faults       []Fault           `json:"faults" yaml:"faults"`
	Backfills    []Backfill        `json:"backfills" yaml:"backfills"`
	Stress       Stress            `json:"stress" yaml:"stress"`
	Construction Construction      `json:"construction" yaml:"construction"`
	Solving      SolvingParameters `json:"solving" yaml:"solving"`
	Steps        []MiningStep      `json:"steps" yaml:"steps"`
}
