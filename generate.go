// File: pebbl/generate.go
package pebbl

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateOptions tunes one document generation run.
type GenerateOptions struct {
	// Prefix is prepended to every assignment line, e.g. "fish ".
	Prefix string
	// Logger receives field resolution warnings. Nil means no-op.
	Logger *zap.Logger
}

// Generate renders the complete document for a model: project and mesh
// settings, rockmass domains, optional faults, backfills and in-situ
// stress, model construction details, solving parameters and the mining
// sequence. Sections gated by a project inclusion flag are omitted
// entirely when the flag is off.
func Generate(model *Model, lib *ReferenceLibrary, opts GenerateOptions) string {
	b := NewConfigBuilderWithLibrary(opts.Prefix, lib, opts.Logger)

	b.SectionHeader("Project Settings")
	for _, entry := range lib.Section("project").Entries() {
		b.ConfigLine(entry.OutputPattern, b.resolveField(&model.Project, entry.TemplateKey, nil))
	}
	b.Newline()
	for _, entry := range lib.Section("settings").Entries() {
		b.ConfigLine(entry.OutputPattern, b.resolveField(&model.Settings, entry.TemplateKey, nil))
	}
	b.Newline()

	b.GroupedRecursiveSection("Rockmass Domains",
		collect[Domain](model.Domains),
		lib.Section("domain"),
		domainGroups(lib.Section("domain")),
		"")

	if model.Project.IncludeFaults {
		b.RecursiveSection("Faults",
			collect[Fault](model.Faults),
			lib.Section("fault"),
			nil, "")
	}

	if model.Project.IncludeBackfills {
		b.RecursiveSection("Backfills",
			collect[Backfill](model.Backfills),
			lib.Section("backfill"),
			nil, "")
	}

	if model.Project.IncludeStress {
		b.SectionHeader("Insitu Stress")
		for _, entry := range lib.Section("stress").Entries() {
			b.ConfigLine(entry.OutputPattern, b.resolveField(&model.Stress, entry.TemplateKey, nil))
		}
		b.Newline()
		if model.Stress.Option == StressOptionDetailed {
			b.StressDetailsSection(CanonicalStressNames(),
				collect[StressDetail](model.Stress.Details),
				MappingsFromSection(lib.Section("stress_detail")))
		}
	}

	b.SectionHeader("Model Construction")
	for _, entry := range lib.Section("model_construction").Entries() {
		b.ConfigLine(entry.OutputPattern, b.resolveField(&model.Construction, entry.TemplateKey, nil))
	}
	b.Newline()
	b.DetailsByName(collect[ConstructionDetail](model.Construction.Details),
		"name",
		detailMappings(lib.Section("model_construction_detail")),
		detailHeadings())

	b.SectionHeader("Solving Parameters")
	for _, entry := range lib.Section("solving_parameter").Entries() {
		b.ConfigLine(entry.OutputPattern, b.resolveField(&model.Solving, entry.TemplateKey, nil))
	}
	b.Newline()

	b.RecursiveSection("Mining Sequence",
		collect[MiningStep](model.Steps),
		lib.Section("step"),
		nil, "")

	return b.Build()
}

// collect adapts a typed entity slice into the builder's Entity slice.
func collect[T any, P interface {
	*T
	Entity
}](items []T) []Entity {
	out := make([]Entity, len(items))
	for i := range items {
		out[i] = P(&items[i])
	}
	return out
}

// domainFieldGroups partitions the domain template keys into the three
// subheading groups of the rockmass section.
var domainFieldGroups = []struct {
	heading string
	keys    map[string]bool
}{
	{"Identification", map[string]bool{
		"domain_name": true, "domain_Rock_or_Soil": true, "domain_geometry_filename": true,
	}},
	{"Anisotropy", map[string]bool{
		"domain_anisotropic": true, "domain_aniso_dip": true, "domain_aniso_dipd": true,
		"domain_aniso_fac": true, "domain_anisotropy_surface_normal_direction": true,
	}},
}

// domainGroups splits a domain section's mappings into identification,
// mechanical and anisotropy groups, preserving entry order within each.
func domainGroups(section *ReferenceSection) []FieldGroup {
	groups := make([]FieldGroup, len(domainFieldGroups)+1)
	for i, g := range domainFieldGroups {
		groups[i].Heading = g.heading
	}
	mechanical := &groups[len(domainFieldGroups)]
	mechanical.Heading = "Mechanical Properties"

	for _, m := range MappingsFromSection(section) {
		placed := false
		for i, g := range domainFieldGroups {
			if g.keys[m.Field] {
				groups[i].Mappings = append(groups[i].Mappings, m)
				placed = true
				break
			}
		}
		if !placed {
			mechanical.Mappings = append(mechanical.Mappings, m)
		}
	}
	return groups
}

// detailMappings builds the per-name mapping lists for the construction
// detail blocks. Every distinct detail name shares the same reference
// entries; the name itself resolves the <detail_name> token per block.
func detailMappings(section *ReferenceSection) map[string][]FieldMapping {
	mappings := MappingsFromSection(section)
	byName := make(map[string][]FieldMapping, len(ConstructionDetailNames))
	for _, name := range ConstructionDetailNames {
		byName[strings.ToLower(name.RawValue())] = mappings
	}
	return byName
}

// detailHeadings maps normalized detail names to their display headings.
func detailHeadings() map[string]string {
	headings := make(map[string]string, len(ConstructionDetailNames))
	for _, name := range ConstructionDetailNames {
		headings[strings.ToLower(name.RawValue())] = name.Label()
	}
	return headings
}

// invalidFilenameChars matches everything not allowed in an output
// filename stem.
var invalidFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeName converts free text into a filesystem-safe name stem:
// spaces become underscores, anything outside the safe set is dropped.
func SanitizeName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	return invalidFilenameChars.ReplaceAllString(name, "")
}

// OutputFilename derives the document filename from the project name,
// falling back to the project ID and finally to a short random stem when
// both are unusable.
func OutputFilename(projectID, projectName, appVersion string) string {
	stem := SanitizeName(projectName)
	if stem == "" {
		stem = SanitizeName(projectID)
	}
	if stem == "" {
		stem = strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}
	if v := SanitizeName(appVersion); v != "" {
		stem += "_" + v
	}
	return stem + ".f3dat"
}

// projectNamePattern recovers the project name assignment from document
// text, tolerating the optional @ and quote conventions.
var projectNamePattern = regexp.MustCompile(`(?i)@?Project_Name\s*[:=]\s*'?([^'\r\n;]+)'?`)

// ExtractProjectName returns the project name stored in a generated
// document, or the empty string when none is present.
func ExtractProjectName(contents string) string {
	m := projectNamePattern.FindStringSubmatch(contents)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
