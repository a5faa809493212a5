package match

import "rosterlink/internal/roster"

// GroupOccurrence is one member of a co-reference group in report form.
type GroupOccurrence struct {
	Dataset DatasetTag  `json:"dataset"`
	Index   int         `json:"index"`
	Player  roster.View `json:"player"`
}

// CommonGroup is one co-reference group spanning the union of both datasets.
// Groups confined to a single dataset surface same-dataset duplicates;
// groups spanning both tags are confirmed cross-dataset matches.
type CommonGroup struct {
	Keys        []string          `json:"keys"`
	TotalCount  int               `json:"total_count"`
	Occurrences []GroupOccurrence `json:"occurrences"`
	PresentIn   []string          `json:"present_in"`
}

// FindCommonGroups clusters the union of source and target occurrences and
// reports every group of size >= 2.
func FindCommonGroups(source, target []roster.Record) []CommonGroup {
	combined := Occurrences(TagSource, source)
	combined = append(combined, Occurrences(TagTarget, target)...)

	groups := DedupeBySignature(Cluster(combined))
	out := make([]CommonGroup, 0, len(groups))
	for _, group := range groups {
		common := CommonGroup{
			Keys:        group.Keys,
			TotalCount:  len(group.Occurrences),
			Occurrences: make([]GroupOccurrence, 0, len(group.Occurrences)),
			PresentIn:   group.PresentIn(),
		}
		for _, occ := range group.Occurrences {
			common.Occurrences = append(common.Occurrences, GroupOccurrence{
				Dataset: occ.Dataset,
				Index:   occ.Index,
				Player:  occ.Record.View(),
			})
		}
		out = append(out, common)
	}
	return out
}
