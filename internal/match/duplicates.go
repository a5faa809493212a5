package match

import "rosterlink/internal/roster"

// DuplicateGroup is one intra-dataset duplicate cluster as it appears in the
// duplicates report: the keys that link the members, their positions, and
// the full member records for manual review.
type DuplicateGroup struct {
	Key     string          `json:"key"`
	Keys    []string        `json:"keys,omitempty"`
	Indices []int           `json:"indices"`
	Members []roster.Record `json:"members"`
}

// FindDuplicates runs the clustering primitive over a single dataset and
// returns its duplicate groups (size >= 2 only). Key is the first canonical
// key that produced the group; Keys lists every key that reached it.
func FindDuplicates(tag DatasetTag, records []roster.Record) []DuplicateGroup {
	groups := DedupeBySignature(Cluster(Occurrences(tag, records)))
	out := make([]DuplicateGroup, 0, len(groups))
	for _, group := range groups {
		dup := DuplicateGroup{
			Key:     group.Keys[0],
			Indices: make([]int, 0, len(group.Occurrences)),
			Members: make([]roster.Record, 0, len(group.Occurrences)),
		}
		if len(group.Keys) > 1 {
			dup.Keys = group.Keys
		}
		for _, occ := range group.Occurrences {
			dup.Indices = append(dup.Indices, occ.Index)
			dup.Members = append(dup.Members, occ.Record)
		}
		out = append(out, dup)
	}
	return out
}

// keyIndex maps every canonical key of every group back to its group, the
// lookup the resolver uses for duplicate membership checks.
func keyIndex(groups []DuplicateGroup) map[string]*DuplicateGroup {
	index := make(map[string]*DuplicateGroup)
	for i := range groups {
		group := &groups[i]
		index[group.Key] = group
		for _, key := range group.Keys {
			index[key] = group
		}
	}
	return index
}
