package match

import (
	"sort"
	"strconv"
	"strings"

	"rosterlink/internal/roster"
)

// DatasetTag identifies which input collection an occurrence came from.
type DatasetTag string

const (
	TagSource DatasetTag = "source"
	TagTarget DatasetTag = "target"
)

// Occurrence ties a record to its position within one dataset. Indices are
// stable for the duration of a run and carry no meaning across runs.
type Occurrence struct {
	Dataset DatasetTag
	Index   int
	Record  roster.Record
}

// Occurrences builds the occurrence slice for one dataset.
func Occurrences(tag DatasetTag, records []roster.Record) []Occurrence {
	occs := make([]Occurrence, 0, len(records))
	for i, record := range records {
		occs = append(occs, Occurrence{Dataset: tag, Index: i, Record: record})
	}
	return occs
}

// Cluster buckets every occurrence under each canonical key it yields. An
// occurrence with both an identifier and a name appears in two buckets.
// Keyless occurrences get a per-occurrence fallback key so they remain
// countable without ever merging with other keyless records.
func Cluster(occs []Occurrence) map[string][]Occurrence {
	buckets := make(map[string][]Occurrence)
	for _, occ := range occs {
		keys := occ.Record.Keys()
		if len(keys) == 0 {
			keys = []string{roster.FallbackKey(string(occ.Dataset), occ.Index)}
		}
		for _, key := range keys {
			buckets[key] = append(buckets[key], occ)
		}
	}
	return buckets
}

// Group is a set of co-referential occurrences together with every canonical
// key that links them.
type Group struct {
	Keys        []string
	Occurrences []Occurrence
}

// DedupeBySignature turns key buckets into groups. Buckets of size one are
// not duplicates and are discarded. Buckets whose occurrence signature was
// already emitted under another key merge into the existing group instead of
// producing a second one. Output order is deterministic (sorted by the first
// key that produced each group).
func DedupeBySignature(buckets map[string][]Occurrence) []Group {
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	bySignature := make(map[string]*Group)
	var groups []*Group
	for _, key := range keys {
		occs := buckets[key]
		if len(occs) < 2 {
			continue
		}
		sig := signature(occs)
		if existing, ok := bySignature[sig]; ok {
			existing.Keys = append(existing.Keys, key)
			continue
		}
		group := &Group{
			Keys:        []string{key},
			Occurrences: sortOccurrences(occs),
		}
		bySignature[sig] = group
		groups = append(groups, group)
	}

	out := make([]Group, 0, len(groups))
	for _, group := range groups {
		out = append(out, *group)
	}
	return out
}

// PresentIn reports the sorted set of dataset tags the group spans.
func (g Group) PresentIn() []string {
	seen := make(map[string]struct{}, 2)
	for _, occ := range g.Occurrences {
		seen[string(occ.Dataset)] = struct{}{}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// signature encodes the sorted (dataset, index) pairs of a bucket, the
// identity used to prevent duplicate group emission.
func signature(occs []Occurrence) string {
	sorted := sortOccurrences(occs)
	var b strings.Builder
	b.Grow(len(sorted) * 12)
	for i, occ := range sorted {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(string(occ.Dataset))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(occ.Index))
	}
	return b.String()
}

func sortOccurrences(occs []Occurrence) []Occurrence {
	sorted := make([]Occurrence, len(occs))
	copy(sorted, occs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Dataset != sorted[j].Dataset {
			return sorted[i].Dataset < sorted[j].Dataset
		}
		return sorted[i].Index < sorted[j].Index
	})
	return sorted
}
