// Package report serializes matching results into the run artifacts:
// duplicate groups, cross-dataset co-reference groups, and the
// missing/duplicate-flagged classification in both JSON and flat CSV form.
//
// A Writer owns one output directory for the duration of a run and holds a
// file lock on it, so two concurrent runs cannot interleave partial
// artifacts. Every run is tagged with a generated run id that appears in
// log lines for correlation.
package report
