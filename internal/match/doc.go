// Package match implements the identity-resolution core: clustering record
// occurrences by canonical key, collapsing clusters that cover the same set
// of records, detecting intra-dataset duplicates, building cross-dataset
// co-reference groups, and classifying source records against a target
// dataset.
//
// The one subtle invariant lives in DedupeBySignature: a set of
// co-referential records must be reported exactly once even when both an
// identifier key and a name key connect it. Groups are deduplicated through
// an explicit signature map (the sorted (dataset, index) pairs of a bucket),
// and later keys reaching the same signature are appended to the existing
// group's key list.
//
// Classification is a single-pass batch operation over fully loaded
// datasets; nothing here retains state between runs.
package match
