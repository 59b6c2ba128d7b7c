// Package library defines the reference libraries the matchers search:
// simulated diffraction data organized by candidate crystal phase.
//
// Three library variants exist, one per matching strategy:
//
//   - TemplateLibrary: full simulated intensity patterns per orientation,
//     scored by normalized correlation.
//   - ProfileSimulation: reflection magnitudes with their Miller indices,
//     matched against peaks of a 1-D radial profile.
//   - VectorLibrary: reflection magnitudes and inter-vector angles per
//     candidate orientation, matched against measured diffraction vectors.
//
// Libraries are built once by a simulation pipeline, validated at
// construction, and shared read-only across all concurrent matcher
// invocations. Nothing in this module mutates a library after construction,
// so no locking is needed.
package library
