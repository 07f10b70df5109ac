// File: pebbl/doc.go

// Package pebbl encodes structured geomechanical model data into the
// line-oriented key/value text consumed by the FLAC3D-family simulators
// (.f3dat), and decodes previously generated text back into per-entity
// field maps.
//
// The codec is driven by an immutable reference library: a table of
// entries mapping logical field names to output key patterns, grouped by
// the entity category ("parent object") that owns them. Output patterns
// may contain <token> placeholders that are instantiated once per entity
// from its 1-based index or its discriminator name.
//
// Features:
//   - Value formatting with the simulator's literal conventions (yes/no
//     booleans, fixed-decimal floats, single-quoted strings, single-letter
//     direction codes)
//   - Placeholder resolution with verbatim pass-through of unknown tokens
//   - A line-accumulating ConfigBuilder for sections, subheadings and
//     per-collection recursive blocks
//   - A single-pass extractor that rebuilds entity field maps from
//     rendered text
//   - mapstructure-based scanning of recovered field maps into the typed
//     model structs
//
// Encoding is best effort by design: a missing field, an unmatched enum
// value or an unresolved placeholder degrades to a documented default and
// is reported through the injected zap logger. No failure aborts the
// remaining fields, entities or sections of a document.
//
// Quick Start:
//
//	lib, err := pebbl.DefaultReferenceLibrary()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	b := pebbl.NewConfigBuilder("fish ", logger)
//	b.SectionHeader("Rockmass Domains")
//	b.RecursiveSection("Domain", domains, lib.Section("domain"), mappings, "")
//	text := b.Build()
//
//	ex := pebbl.NewExtractor(lib, logger)
//	entities := ex.Extract(strings.Split(text, "\n"), "Domain", lib.Section("domain"))
//
// Concurrency:
// A ReferenceLibrary is read-only after load and may be shared across
// concurrent encode and decode calls. A ConfigBuilder belongs to a single
// encode request and must not be shared.
package pebbl
