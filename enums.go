// File: pebbl/enums.go
package pebbl

import (
	"strconv"
	"strings"
)

// OverridePolicy selects which textual representation of an enum a
// reference entry wants in the output document.
type OverridePolicy string

const (
	// OverrideNone means no per-field policy; the default chain applies.
	OverrideNone OverridePolicy = ""
	// OverrideNumeric renders the 1-based ordinal.
	OverrideNumeric OverridePolicy = "numeric"
	// OverrideValue renders the raw stored value.
	OverrideValue OverridePolicy = "value"
	// OverrideName renders the member name.
	OverrideName OverridePolicy = "name"
	// OverrideLabel renders the human-readable label.
	OverrideLabel OverridePolicy = "label"
	// OverrideSlug renders the label lower-cased with underscores.
	OverrideSlug OverridePolicy = "slug"
	// OverrideLetter renders the single-letter code.
	OverrideLetter OverridePolicy = "letter"
)

// Enum is the capability shared by all option-set types in the model.
// Ordinals are 1-based and come from hand-written tables: they are a
// compatibility contract with existing documents, not declaration order.
type Enum interface {
	Name() string
	Label() string
	RawValue() string
	Ordinal() int
}

// Lettered is implemented by enums with a single-letter wire code.
type Lettered interface {
	Letter() string
}

// enumAttrs pins the wire attributes of one enum member.
type enumAttrs struct {
	name    string
	label   string
	raw     string
	ordinal int
}

// RenderEnum applies an override policy to an enum value. With
// OverrideNone it falls back to the default chain: letter code when the
// type has one, otherwise the 1-based ordinal.
func RenderEnum(e Enum, policy OverridePolicy) any {
	switch policy {
	case OverrideNumeric:
		return e.Ordinal()
	case OverrideValue:
		return e.RawValue()
	case OverrideName:
		return e.Name()
	case OverrideLabel:
		return e.Label()
	case OverrideSlug:
		return strings.ReplaceAll(strings.ToLower(e.Label()), " ", "_")
	case OverrideLetter:
		if l, ok := e.(Lettered); ok {
			return l.Letter()
		}
		return strings.ToUpper(e.RawValue()[:1])
	}
	if l, ok := e.(Lettered); ok {
		return l.Letter()
	}
	return e.Ordinal()
}

// parseEnum matches v against the members of one enum type by raw value,
// name, label or 1-based ordinal. String matching is case-insensitive.
func parseEnum[E Enum](members []E, v any) (E, bool) {
	var zero E
	switch val := v.(type) {
	case nil:
		return zero, false
	case E:
		return val, true
	case int:
		for _, m := range members {
			if m.Ordinal() == val {
				return m, true
			}
		}
	case float64:
		return parseEnum(members, int(val))
	case string:
		s := strings.TrimSpace(strings.Trim(val, `'"`))
		if s == "" {
			return zero, false
		}
		for _, m := range members {
			if strings.EqualFold(s, m.RawValue()) ||
				strings.EqualFold(s, m.Name()) ||
				strings.EqualFold(s, m.Label()) {
				return m, true
			}
		}
		if n, err := strconv.Atoi(s); err == nil {
			return parseEnum(members, n)
		}
	}
	return zero, false
}

//
// --- Direction ---
//

// Direction is the orientation of a fault plane or anisotropy surface
// normal. On the wire it is a single uppercase letter.
type Direction int

const (
	DirectionTop Direction = iota
	DirectionDown
	DirectionNorth
	DirectionSouth
	DirectionEast
	DirectionWest
)

var directionTable = map[Direction]enumAttrs{
	DirectionTop:   {name: "Top", label: "Top", raw: "top", ordinal: 1},
	DirectionDown:  {name: "Down", label: "Down", raw: "down", ordinal: 2},
	DirectionNorth: {name: "North", label: "North", raw: "north", ordinal: 3},
	DirectionSouth: {name: "South", label: "South", raw: "south", ordinal: 4},
	DirectionEast:  {name: "East", label: "East", raw: "east", ordinal: 5},
	DirectionWest:  {name: "West", label: "West", raw: "west", ordinal: 6},
}

// Directions lists all members in ordinal order.
var Directions = []Direction{
	DirectionTop, DirectionDown, DirectionNorth,
	DirectionSouth, DirectionEast, DirectionWest,
}

func (d Direction) Name() string     { return directionTable[d].name }
func (d Direction) Label() string    { return directionTable[d].label }
func (d Direction) RawValue() string { return directionTable[d].raw }
func (d Direction) Ordinal() int     { return directionTable[d].ordinal }
func (d Direction) String() string   { return d.Name() }

// Letter returns the single uppercase wire code (T, D, N, S, E, W).
func (d Direction) Letter() string {
	return strings.ToUpper(directionTable[d].name[:1])
}

// ParseDirection accepts a Direction, a full name in any case, a single
// letter code or a 1-based ordinal. Anything else yields DirectionTop,
// the documented default for direction fields.
func ParseDirection(v any) (Direction, bool) {
	if s, ok := v.(string); ok {
		t := strings.TrimSpace(strings.Trim(s, `'"`))
		if len(t) == 1 {
			for _, d := range Directions {
				if strings.EqualFold(t, d.Letter()) {
					return d, true
				}
			}
			return DirectionTop, false
		}
	}
	if d, ok := parseEnum(Directions, v); ok {
		return d, true
	}
	return DirectionTop, false
}

//
// --- DomainKind ---
//

// DomainKind distinguishes soil from rock material. On the wire it is a
// numeric code: 1 for Soil, 2 for Rock.
type DomainKind int

const (
	DomainSoil DomainKind = iota
	DomainRock
)

var domainKindTable = map[DomainKind]enumAttrs{
	DomainSoil: {name: "Soil", label: "Soil", raw: "soil", ordinal: 1},
	DomainRock: {name: "Rock", label: "Rock", raw: "rock", ordinal: 2},
}

// DomainKinds lists all members in ordinal order.
var DomainKinds = []DomainKind{DomainSoil, DomainRock}

func (k DomainKind) Name() string     { return domainKindTable[k].name }
func (k DomainKind) Label() string    { return domainKindTable[k].label }
func (k DomainKind) RawValue() string { return domainKindTable[k].raw }
func (k DomainKind) Ordinal() int     { return domainKindTable[k].ordinal }
func (k DomainKind) String() string   { return k.Name() }

// ParseDomainKind resolves a DomainKind from an enum, a 1/2 code or a
// string containing "soil" or "rock". Ambiguous input defaults to Rock.
func ParseDomainKind(v any) (DomainKind, bool) {
	if k, ok := parseEnum(DomainKinds, v); ok {
		return k, true
	}
	s := strings.ToLower(strings.TrimSpace(stringify(v)))
	if strings.Contains(s, "soil") {
		return DomainSoil, true
	}
	if strings.Contains(s, "rock") {
		return DomainRock, true
	}
	return DomainRock, false
}

//
// --- DensificationLevel ---
//

// DensificationLevel controls mesh densification intensity. On the wire
// it is the 1-based ordinal.
type DensificationLevel int

const (
	DensificationNone DensificationLevel = iota
	DensificationMinimum
	DensificationIntermediate
	DensificationMaximum
)

// The misspelled intermediate raw value is load-bearing: existing project
// records store it and documents must keep matching it.
var densificationTable = map[DensificationLevel]enumAttrs{
	DensificationNone:         {name: "No", label: "No Densification", raw: "no_densification", ordinal: 1},
	DensificationMinimum:      {name: "Minimum", label: "Minimum Densification", raw: "minimum_densification", ordinal: 2},
	DensificationIntermediate: {name: "Intermediate", label: "Intermediate Densification", raw: "internmediate_densification", ordinal: 3},
	DensificationMaximum:      {name: "Maximum", label: "Maximum Densification", raw: "maximum_densification", ordinal: 4},
}

// DensificationLevels lists all members in ordinal order.
var DensificationLevels = []DensificationLevel{
	DensificationNone, DensificationMinimum,
	DensificationIntermediate, DensificationMaximum,
}

func (l DensificationLevel) Name() string     { return densificationTable[l].name }
func (l DensificationLevel) Label() string    { return densificationTable[l].label }
func (l DensificationLevel) RawValue() string { return densificationTable[l].raw }
func (l DensificationLevel) Ordinal() int     { return densificationTable[l].ordinal }
func (l DensificationLevel) String() string   { return l.Label() }

// ParseDensificationLevel resolves a level from an enum, raw value, name,
// label or 1-based ordinal.
func ParseDensificationLevel(v any) (DensificationLevel, bool) {
	return parseEnum(DensificationLevels, v)
}

//
// --- BackfillType ---
//

// BackfillType selects immediate versus delayed filling of mined voids.
type BackfillType int

const (
	BackfillImmediate BackfillType = iota
	BackfillDelayed
)

var backfillTypeTable = map[BackfillType]enumAttrs{
	BackfillImmediate: {name: "ImmediateFill", label: "Immediate Fill", raw: "immediate_fill", ordinal: 1},
	BackfillDelayed:   {name: "DelayedFill", label: "Delayed Fill", raw: "delayed_fill", ordinal: 2},
}

// BackfillTypes lists all members in ordinal order.
var BackfillTypes = []BackfillType{BackfillImmediate, BackfillDelayed}

func (t BackfillType) Name() string     { return backfillTypeTable[t].name }
func (t BackfillType) Label() string    { return backfillTypeTable[t].label }
func (t BackfillType) RawValue() string { return backfillTypeTable[t].raw }
func (t BackfillType) Ordinal() int     { return backfillTypeTable[t].ordinal }
func (t BackfillType) String() string   { return t.Label() }

// ParseBackfillType resolves a type from an enum, raw value, label or
// 1-based ordinal.
func ParseBackfillType(v any) (BackfillType, bool) {
	return parseEnum(BackfillTypes, v)
}

//
// --- BackfillDelayRule ---
//

// BackfillDelayRule selects how a delayed fill relates to the mining
// sequence.
type BackfillDelayRule int

const (
	DelayByStepCount BackfillDelayRule = iota
	DelayToFillStep
)

var delayRuleTable = map[BackfillDelayRule]enumAttrs{
	DelayByStepCount: {
		name:    "DelayByNumberOfMiningSteps",
		label:   "Delay by number of mining steps",
		raw:     "delay_by_number_of_mining_steps_delayed_based_on_the_mining_step_to_fill",
		ordinal: 1,
	},
	DelayToFillStep: {
		name:    "DelayedBasedOnMiningStep",
		label:   "Delayed based on the mining step to fill",
		raw:     "delayed_based_on_the_mining_step_to_fill",
		ordinal: 2,
	},
}

// BackfillDelayRules lists all members in ordinal order.
var BackfillDelayRules = []BackfillDelayRule{DelayByStepCount, DelayToFillStep}

func (r BackfillDelayRule) Name() string     { return delayRuleTable[r].name }
func (r BackfillDelayRule) Label() string    { return delayRuleTable[r].label }
func (r BackfillDelayRule) RawValue() string { return delayRuleTable[r].raw }
func (r BackfillDelayRule) Ordinal() int     { return delayRuleTable[r].ordinal }
func (r BackfillDelayRule) String() string   { return r.Label() }

// ParseBackfillDelayRule resolves a rule from an enum, raw value, label
// or 1-based ordinal.
func ParseBackfillDelayRule(v any) (BackfillDelayRule, bool) {
	return parseEnum(BackfillDelayRules, v)
}

//
// --- BackfillMaterial ---
//

// BackfillMaterial selects the constitutive behavior of fill material.
type BackfillMaterial int

const (
	BackfillElastic BackfillMaterial = iota
	BackfillInelastic
)

var backfillMaterialTable = map[BackfillMaterial]enumAttrs{
	BackfillElastic:   {name: "Elastic", label: "Elastic", raw: "elastic", ordinal: 1},
	BackfillInelastic: {name: "Inelastic", label: "Inelastic", raw: "inelastic", ordinal: 2},
}

// BackfillMaterials lists all members in ordinal order.
var BackfillMaterials = []BackfillMaterial{BackfillElastic, BackfillInelastic}

func (m BackfillMaterial) Name() string     { return backfillMaterialTable[m].name }
func (m BackfillMaterial) Label() string    { return backfillMaterialTable[m].label }
func (m BackfillMaterial) RawValue() string { return backfillMaterialTable[m].raw }
func (m BackfillMaterial) Ordinal() int     { return backfillMaterialTable[m].ordinal }
func (m BackfillMaterial) String() string   { return m.Label() }

// ParseBackfillMaterial resolves a material from an enum, raw value or
// 1-based ordinal.
func ParseBackfillMaterial(v any) (BackfillMaterial, bool) {
	return parseEnum(BackfillMaterials, v)
}

//
// --- StressKind ---
//

// StressKind names one canonical in-situ stress detail block.
type StressKind int

const (
	StressSimple StressKind = iota
	StressMinimum
	StressIntermediate
	StressMaximum
)

var stressKindTable = map[StressKind]enumAttrs{
	StressSimple:       {name: "Simple", label: "Simple", raw: "simple", ordinal: 1},
	StressMinimum:      {name: "Minimum", label: "Minimum", raw: "minimum", ordinal: 2},
	StressIntermediate: {name: "Intermediate", label: "Intermediate", raw: "intermediate", ordinal: 3},
	StressMaximum:      {name: "Maximum", label: "Maximum", raw: "maximum", ordinal: 4},
}

// StressKinds lists all members in ordinal order.
var StressKinds = []StressKind{
	StressSimple, StressMinimum, StressIntermediate, StressMaximum,
}

func (k StressKind) Name() string     { return stressKindTable[k].name }
func (k StressKind) Label() string    { return stressKindTable[k].label }
func (k StressKind) RawValue() string { return stressKindTable[k].raw }
func (k StressKind) Ordinal() int     { return stressKindTable[k].ordinal }
func (k StressKind) String() string   { return k.RawValue() }

// ParseStressKind resolves a kind case-insensitively from an enum, raw
// value, name or 1-based ordinal.
func ParseStressKind(v any) (StressKind, bool) {
	return parseEnum(StressKinds, v)
}

// CanonicalStressNames returns the stress detail names in their fixed
// document order.
func CanonicalStressNames() []string {
	names := make([]string, 0, len(StressKinds))
	for _, k := range StressKinds {
		names = append(names, k.RawValue())
	}
	return names
}

//
// --- StressOption ---
//

// StressOption selects the simple or detailed in-situ stress input mode.
type StressOption int

const (
	StressOptionSimple StressOption = iota
	StressOptionDetailed
)

var stressOptionTable = map[StressOption]enumAttrs{
	StressOptionSimple:   {name: "Simple", label: "Simple", raw: "simple", ordinal: 1},
	StressOptionDetailed: {name: "Detailed", label: "Detailed", raw: "detailed", ordinal: 2},
}

// StressOptions lists all members in ordinal order.
var StressOptions = []StressOption{StressOptionSimple, StressOptionDetailed}

func (o StressOption) Name() string     { return stressOptionTable[o].name }
func (o StressOption) Label() string    { return stressOptionTable[o].label }
func (o StressOption) RawValue() string { return stressOptionTable[o].raw }
func (o StressOption) Ordinal() int     { return stressOptionTable[o].ordinal }
func (o StressOption) String() string   { return o.Label() }

// ParseStressOption resolves an option from an enum, raw value, label or
// 1-based ordinal.
func ParseStressOption(v any) (StressOption, bool) {
	return parseEnum(StressOptions, v)
}

//
// --- GeoAccuracy ---
//

// GeoAccuracy is the relative geometry accuracy of an imported surface.
type GeoAccuracy int

const (
	GeoAccuracyMaximum GeoAccuracy = iota
	GeoAccuracyIntermediate
	GeoAccuracyMinimum
)

var geoAccuracyTable = map[GeoAccuracy]enumAttrs{
	GeoAccuracyMaximum:      {name: "Maximum", label: "Maximum", raw: "maximum", ordinal: 1},
	GeoAccuracyIntermediate: {name: "Intermediate", label: "Intermediate", raw: "intermediate", ordinal: 2},
	GeoAccuracyMinimum:      {name: "Minimum", label: "Minimum", raw: "minimum", ordinal: 3},
}

// GeoAccuracies lists all members in ordinal order.
var GeoAccuracies = []GeoAccuracy{
	GeoAccuracyMaximum, GeoAccuracyIntermediate, GeoAccuracyMinimum,
}

func (a GeoAccuracy) Name() string     { return geoAccuracyTable[a].name }
func (a GeoAccuracy) Label() string    { return geoAccuracyTable[a].label }
func (a GeoAccuracy) RawValue() string { return geoAccuracyTable[a].raw }
func (a GeoAccuracy) Ordinal() int     { return geoAccuracyTable[a].ordinal }
func (a GeoAccuracy) String() string   { return a.Label() }

// ParseGeoAccuracy resolves an accuracy from an enum, raw value, label or
// 1-based ordinal.
func ParseGeoAccuracy(v any) (GeoAccuracy, bool) {
	return parseEnum(GeoAccuracies, v)
}

//
// --- ConstructionDetailName ---
//

// ConstructionDetailName is the option set of model construction detail
// discriminators.
type ConstructionDetailName int

const (
	DetailStoping ConstructionDetailName = iota
	DetailTopography
	DetailDevelopment
	DetailAreaOfInterest
	DetailHistoricalMining
	DetailPitExcavation
	DetailPreMiningTopography
)

var detailNameTable = map[ConstructionDetailName]enumAttrs{
	DetailStoping:             {name: "Stoping", label: "Stoping", raw: "stoping", ordinal: 1},
	DetailTopography:          {name: "Topography", label: "Topography", raw: "topo", ordinal: 2},
	DetailDevelopment:         {name: "Development", label: "Development", raw: "development", ordinal: 3},
	DetailAreaOfInterest:      {name: "AreaOfInterest", label: "Area of Interest", raw: "area_of_interest", ordinal: 4},
	DetailHistoricalMining:    {name: "HistoricalMining", label: "Historical Mining", raw: "historical_mining", ordinal: 5},
	DetailPitExcavation:       {name: "PitExcavation", label: "Pit Excavation", raw: "pit_excavation", ordinal: 6},
	DetailPreMiningTopography: {name: "PreMiningTopography", label: "Pre-Mining Topography", raw: "pre_mining_topography", ordinal: 7},
}

// ConstructionDetailNames lists all members in ordinal order.
var ConstructionDetailNames = []ConstructionDetailName{
	DetailStoping, DetailTopography, DetailDevelopment, DetailAreaOfInterest,
	DetailHistoricalMining, DetailPitExcavation, DetailPreMiningTopography,
}

func (n ConstructionDetailName) Name() string     { return detailNameTable[n].name }
func (n ConstructionDetailName) Label() string    { return detailNameTable[n].label }
func (n ConstructionDetailName) RawValue() string { return detailNameTable[n].raw }
func (n ConstructionDetailName) Ordinal() int     { return detailNameTable[n].ordinal }
func (n ConstructionDetailName) String() string   { return n.Label() }

// ParseConstructionDetailName resolves a detail name from an enum, raw
// value, display label or 1-based ordinal.
func ParseConstructionDetailName(v any) (ConstructionDetailName, bool) {
	return parseEnum(ConstructionDetailNames, v)
}

//
// --- FLACVersion ---
//

// FLACVersion is the simulator version a document targets.
type FLACVersion int

const (
	FLACv5 FLACVersion = iota
	FLACv7
)

var flacVersionTable = map[FLACVersion]enumAttrs{
	FLACv5: {name: "v5_0", label: "5.0", raw: "5_0", ordinal: 1},
	FLACv7: {name: "v7_0", label: "7.0", raw: "7_0", ordinal: 2},
}

// FLACVersions lists all members in ordinal order.
var FLACVersions = []FLACVersion{FLACv5, FLACv7}

func (v FLACVersion) Name() string     { return flacVersionTable[v].name }
func (v FLACVersion) Label() string    { return flacVersionTable[v].label }
func (v FLACVersion) RawValue() string { return flacVersionTable[v].raw }
func (v FLACVersion) Ordinal() int     { return flacVersionTable[v].ordinal }
func (v FLACVersion) String() string   { return v.Label() }

// ParseFLACVersion resolves a version from an enum, raw value, display
// label or 1-based ordinal.
func ParseFLACVersion(v any) (FLACVersion, bool) {
	return parseEnum(FLACVersions, v)
}
