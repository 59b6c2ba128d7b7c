// Package diffindex indexes electron-diffraction measurements against
// precomputed libraries of simulated crystallographic patterns, identifying
// the most likely crystal phase and orientation at every probed position of
// a scan.
//
// # Quick Start
//
// Template matching over a scan:
//
//	lib, _ := library.NewTemplateLibrary(phases...)
//	sig, _ := grid.NewSignal(shape, patterns, calibration)
//
//	results, _ := diffindex.Correlate(ctx, sig, lib, 5, []string{"si", "ga"}, nil)
//	top := results.At(y, x)[0] // best (phase, orientation, score) at (y, x)
//
// # Matchers
//
// Three matchers cover the common acquisition modes:
//
//   - TemplateMatcher: full-pattern normalized correlation against every
//     simulated (phase, orientation) template; returns the n best.
//   - ProfileMatcher: assigns Miller indices to 1-D radial peak magnitudes
//     within a relative tolerance.
//   - VectorMatcher: combinatorial correspondence search matching measured
//     diffraction vectors to per-orientation (magnitude, angle) templates.
//
// Each is driven over the navigation grid by an Indexer; positions are
// independent and matched in parallel, with results written by coordinate
// so output is deterministic regardless of worker count.
//
// # Masking
//
// A grid.Mask restricts matching to a region of interest; disabled
// positions receive the matcher's placeholder without invoking it.
//
// # Libraries
//
// Reference libraries are immutable once constructed and shared read-only
// by all workers. The librarystore package persists them through local,
// S3, or MinIO object stores with codec-based compression.
package diffindex
