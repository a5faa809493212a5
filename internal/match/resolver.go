package match

import (
	"log/slog"
	"sort"

	"rosterlink/internal/logging"
	"rosterlink/internal/roster"
	"rosterlink/internal/textutil"
)

// DefaultThreshold is the fuzzy-match threshold used when none is configured.
const DefaultThreshold = 0.90

// DefaultPreviewMembers caps how many group members a duplicate-group
// summary embeds.
const DefaultPreviewMembers = 5

// Resolver classifies source records against a target dataset.
type Resolver struct {
	threshold  float64
	previewCap int
	logger     *slog.Logger
}

// NewResolver constructs a resolver. Threshold must be in (0, 1]; values
// outside that range fall back to DefaultThreshold. A nil logger is replaced
// with a no-op logger.
func NewResolver(threshold float64, previewCap int, logger *slog.Logger) *Resolver {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	if previewCap <= 0 {
		previewCap = DefaultPreviewMembers
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{
		threshold:  threshold,
		previewCap: previewCap,
		logger:     logger.With(logging.String("component", "resolver")),
	}
}

// Entry is one classified source record. Only records that need attention
// are emitted: missing records, and found records flagged as duplicates.
type Entry struct {
	Name             any            `json:"name"`
	NameAr           any            `json:"name_ar"`
	TransfermarktURL any            `json:"transfermarkt_url"`
	WikipediaURL     any            `json:"wikipedia_url_provided"`
	TransfermarktID  *string        `json:"transfermarkt_id"`
	Duplicate        bool           `json:"duplicate,omitempty"`
	DuplicateIn      []string       `json:"duplicate_in,omitempty"`
	DuplicateGroups  []GroupSummary `json:"duplicate_groups,omitempty"`
	Missing          bool           `json:"missing"`
}

// GroupSummary is the compact duplicate-group preview attached to an entry
// so a reviewer can disambiguate without re-querying the groups report.
type GroupSummary struct {
	Key            string          `json:"key"`
	MemberCount    int             `json:"member_count"`
	MembersPreview []MemberPreview `json:"members_preview"`
}

// MemberPreview is the name+identifier projection of one group member.
type MemberPreview struct {
	Name            any `json:"name"`
	TransfermarktID any `json:"transfermarkt_id"`
}

// targetLookup holds the exact-match sets derived from the target dataset.
type targetLookup struct {
	ids   map[string]struct{}
	names map[string]struct{}
	// nameList carries the normalized names in dataset order for the
	// exhaustive fuzzy scan.
	nameList []string
}

func buildTargetLookup(target []roster.Record) targetLookup {
	lookup := targetLookup{
		ids:   make(map[string]struct{}),
		names: make(map[string]struct{}),
	}
	for _, record := range target {
		if id, ok := record.Identifier(); ok {
			lookup.ids[id] = struct{}{}
		}
		if nn := record.NormalizedName(); nn != "" {
			if _, seen := lookup.names[nn]; !seen {
				lookup.names[nn] = struct{}{}
				lookup.nameList = append(lookup.nameList, nn)
			}
		}
	}
	return lookup
}

// Classify runs the full classification pass: exact identifier match, exact
// normalized-name match, then an exhaustive fuzzy scan over every target
// name. Duplicate membership is checked against the supplied intra-dataset
// duplicate groups for source and target independently. The result contains
// every source record that is missing from the target, plus found records
// that carry a duplicate flag; found-and-clean records are dropped.
func (r *Resolver) Classify(source, target []roster.Record, dupSource, dupTarget []DuplicateGroup) []Entry {
	lookup := buildTargetLookup(target)
	srcIndex := keyIndex(dupSource)
	tgtIndex := keyIndex(dupTarget)

	var entries []Entry
	for i, record := range source {
		found, method := r.classifyFound(record, lookup)
		entry := r.buildEntry(record)

		locations, summaries := r.duplicateMembership(record, srcIndex, tgtIndex)
		if len(locations) > 0 {
			entry.Duplicate = true
			entry.DuplicateIn = locations
			entry.DuplicateGroups = summaries
		}

		switch {
		case !found:
			entry.Missing = true
			entries = append(entries, entry)
		case len(locations) > 0:
			// Found, but flagged for manual review; a fuzzy hit counts as
			// found even when the identifiers disagree.
			entry.Missing = false
			entries = append(entries, entry)
		default:
			r.logger.Debug("record resolved",
				logging.Int("index", i),
				logging.String("method", method),
			)
		}
	}
	return entries
}

// classifyFound applies the ordered match rules and reports which one hit.
func (r *Resolver) classifyFound(record roster.Record, lookup targetLookup) (bool, string) {
	if id, ok := record.Identifier(); ok {
		if _, hit := lookup.ids[id]; hit {
			return true, "identifier"
		}
	}
	nn := record.NormalizedName()
	if nn == "" {
		return false, ""
	}
	if _, hit := lookup.names[nn]; hit {
		return true, "name"
	}
	// Exhaustive scan, no early exit: the reference behavior is max over
	// every target name.
	best := 0.0
	for _, candidate := range lookup.nameList {
		if ratio := textutil.Similarity(nn, candidate); ratio > best {
			best = ratio
		}
	}
	if best >= r.threshold {
		return true, "fuzzy"
	}
	return false, ""
}

func (r *Resolver) buildEntry(record roster.Record) Entry {
	entry := Entry{
		Name:             record["name"],
		NameAr:           record["name_ar"],
		TransfermarktURL: record.Field("transfermarkt_url", "transfermarktUrl"),
		WikipediaURL:     record.Field("wikipedia_url_provided", "wikipedia_url", "wikipedia"),
	}
	if id, ok := record.Identifier(); ok {
		entry.TransfermarktID = &id
	}
	return entry
}

// duplicateMembership checks the record's own keys against the duplicate
// group indexes of each dataset and collects group summaries for every hit.
func (r *Resolver) duplicateMembership(record roster.Record, srcIndex, tgtIndex map[string]*DuplicateGroup) ([]string, []GroupSummary) {
	seen := make(map[string]struct{}, 2)
	var locations []string
	var summaries []GroupSummary
	for _, key := range record.Keys() {
		if group, ok := srcIndex[key]; ok {
			seen["source"] = struct{}{}
			summaries = append(summaries, r.summarize(key, group))
		}
		if group, ok := tgtIndex[key]; ok {
			seen["target"] = struct{}{}
			summaries = append(summaries, r.summarize(key, group))
		}
	}
	for tag := range seen {
		locations = append(locations, tag)
	}
	sort.Strings(locations)
	return locations, summaries
}

func (r *Resolver) summarize(key string, group *DuplicateGroup) GroupSummary {
	summary := GroupSummary{
		Key:         key,
		MemberCount: len(group.Members),
	}
	for _, member := range group.Members {
		if len(summary.MembersPreview) >= r.previewCap {
			break
		}
		summary.MembersPreview = append(summary.MembersPreview, MemberPreview{
			Name:            member["name"],
			TransfermarktID: member.Field("transfermarkt_id", "id"),
		})
	}
	return summary
}
