// Package match implements the three indexation matchers: full-pattern
// correlation (TemplateMatcher), 1-D radial magnitude matching
// (ProfileMatcher), and combinatorial diffraction-vector correspondence
// matching (VectorMatcher).
//
// All three implement the Matcher interface and are purely functional:
// given the same measured data and library they return the same ranked
// output, regardless of how many goroutines run them concurrently. The
// orchestrator in the root package drives a Matcher over every position of
// a navigation grid.
package match
