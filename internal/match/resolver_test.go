package match

import (
	"testing"

	"rosterlink/internal/roster"
)

func classify(t *testing.T, source, target []roster.Record, threshold float64) []Entry {
	t.Helper()
	dupSource := FindDuplicates(TagSource, source)
	dupTarget := FindDuplicates(TagTarget, target)
	resolver := NewResolver(threshold, 0, nil)
	return resolver.Classify(source, target, dupSource, dupTarget)
}

func TestClassifyFoundByIdentifier(t *testing.T) {
	source := []roster.Record{{"name": "Jon Smith", "transfermarkt_id": "7"}}
	target := []roster.Record{{"name": "John Smith", "transfermarkt_id": "7"}}

	entries := classify(t, source, target, 0.90)
	if len(entries) != 0 {
		t.Errorf("found, non-duplicate record should be dropped, got %v", entries)
	}
}

func TestClassifyFoundByExactName(t *testing.T) {
	source := []roster.Record{{"name": "Müller"}}
	target := []roster.Record{{"name": "Muller"}}

	entries := classify(t, source, target, 0.90)
	if len(entries) != 0 {
		t.Errorf("diacritic variants should match exactly, got %v", entries)
	}
}

func TestClassifyFuzzyBelowThreshold(t *testing.T) {
	source := []roster.Record{{"name": "Ana Horvat"}}
	target := []roster.Record{{"name": "Ana Kovac"}}

	entries := classify(t, source, target, 0.90)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if !entries[0].Missing {
		t.Errorf("expected missing=true, got %+v", entries[0])
	}
}

func TestClassifyFuzzyAboveThreshold(t *testing.T) {
	// "jon smith" vs "john smith" scores 18/19 ≈ 0.947.
	source := []roster.Record{{"name": "Jon Smith"}}
	target := []roster.Record{{"name": "John Smith", "transfermarkt_id": "1"}}

	entries := classify(t, source, target, 0.90)
	if len(entries) != 0 {
		t.Errorf("fuzzy hit should count as found, got %v", entries)
	}
}

func TestClassifyEmptyTarget(t *testing.T) {
	source := []roster.Record{
		{"name": "Jon Smith", "transfermarkt_id": "1"},
		{"name": "Ana Horvat"},
	}
	entries := classify(t, source, nil, 0.90)
	if len(entries) != len(source) {
		t.Fatalf("entries = %d, want %d", len(entries), len(source))
	}
	for _, entry := range entries {
		if !entry.Missing {
			t.Errorf("expected missing=true with empty target, got %+v", entry)
		}
	}
}

func TestClassifyDuplicateInSource(t *testing.T) {
	source := []roster.Record{
		{"name": "Jon Smith", "transfermarkt_id": "42"},
		{"name": "Jonny Smith", "transfermarkt_id": "42"},
	}
	target := []roster.Record{}

	dupSource := FindDuplicates(TagSource, source)
	if len(dupSource) != 1 {
		t.Fatalf("duplicate groups = %d, want 1 for key id::42", len(dupSource))
	}
	if dupSource[0].Key != "id::42" {
		t.Fatalf("duplicate key = %q, want id::42", dupSource[0].Key)
	}

	resolver := NewResolver(0.90, 0, nil)
	entries := resolver.Classify(source, target, dupSource, nil)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	for _, entry := range entries {
		if !entry.Duplicate {
			t.Errorf("expected duplicate=true, got %+v", entry)
		}
		if len(entry.DuplicateIn) != 1 || entry.DuplicateIn[0] != "source" {
			t.Errorf("duplicate_in = %v, want [source]", entry.DuplicateIn)
		}
		if len(entry.DuplicateGroups) == 0 {
			t.Errorf("expected duplicate group summaries")
		}
	}
}

func TestClassifyFoundButDuplicateRetained(t *testing.T) {
	source := []roster.Record{{"name": "Jon Smith", "transfermarkt_id": "7"}}
	target := []roster.Record{
		{"name": "Jon Smith", "transfermarkt_id": "7"},
		{"name": "Jon Smith", "transfermarkt_id": "7"},
	}

	dupTarget := FindDuplicates(TagTarget, target)
	resolver := NewResolver(0.90, 0, nil)
	entries := resolver.Classify(source, target, nil, dupTarget)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1 (found but duplicate-flagged)", len(entries))
	}
	entry := entries[0]
	if entry.Missing {
		t.Errorf("expected missing=false for found record")
	}
	if len(entry.DuplicateIn) != 1 || entry.DuplicateIn[0] != "target" {
		t.Errorf("duplicate_in = %v, want [target]", entry.DuplicateIn)
	}
}

// Every source record lands in exactly one bucket: dropped, emitted missing,
// or emitted found-but-duplicate.
func TestClassifyIsTotal(t *testing.T) {
	source := []roster.Record{
		{"name": "Jon Smith", "transfermarkt_id": "7"},
		{"name": "Ana Horvat"},
		{"name": "Luka Modric", "transfermarkt_id": "9"},
		{"name": "Luka Modric", "transfermarkt_id": "9"},
		{"id": "free-text"},
	}
	target := []roster.Record{
		{"name": "John Smith", "transfermarkt_id": "7"},
		{"name": "Luka Modric", "transfermarkt_id": "9"},
	}

	entries := classify(t, source, target, 0.90)
	missing := 0
	flagged := 0
	for _, entry := range entries {
		if entry.Missing {
			missing++
		} else {
			flagged++
		}
	}
	dropped := len(source) - len(entries)
	if missing+flagged+dropped != len(source) {
		t.Errorf("classification not total: missing=%d flagged=%d dropped=%d source=%d",
			missing, flagged, dropped, len(source))
	}
	// Jon Smith found clean (dropped); the two Modric records are found but
	// duplicated in source; Ana Horvat and the keyless record are missing.
	if dropped != 1 || flagged != 2 || missing != 2 {
		t.Errorf("missing=%d flagged=%d dropped=%d, want 2/2/1", missing, flagged, dropped)
	}
}

func TestClassifyPreviewCap(t *testing.T) {
	var source []roster.Record
	for i := 0; i < 8; i++ {
		source = append(source, roster.Record{"name": "Jon Smith", "transfermarkt_id": "42"})
	}
	dupSource := FindDuplicates(TagSource, source)
	resolver := NewResolver(0.90, 5, nil)
	entries := resolver.Classify(source, nil, dupSource, nil)
	if len(entries) == 0 {
		t.Fatal("expected entries")
	}
	for _, entry := range entries {
		for _, summary := range entry.DuplicateGroups {
			if summary.MemberCount != 8 {
				t.Errorf("member_count = %d, want 8", summary.MemberCount)
			}
			if len(summary.MembersPreview) > 5 {
				t.Errorf("preview = %d members, want at most 5", len(summary.MembersPreview))
			}
		}
	}
}

func TestNewResolverThresholdFallback(t *testing.T) {
	// "jon smith" vs "john smith" scores 18/19 ≈ 0.947, above the default
	// threshold. Out-of-range thresholds must fall back to the default
	// instead of making every fuzzy match impossible.
	source := []roster.Record{{"name": "Jon Smith"}}
	target := []roster.Record{{"name": "John Smith"}}
	for _, threshold := range []float64{-1, 0, 1.5} {
		resolver := NewResolver(threshold, 0, nil)
		entries := resolver.Classify(source, target, nil, nil)
		if len(entries) != 0 {
			t.Errorf("threshold %v: expected fallback to default and a fuzzy hit, got %v", threshold, entries)
		}
	}
}

func TestClassifyEntryIdentifier(t *testing.T) {
	source := []roster.Record{{"name": "Ana Horvat", "id": "123"}}
	entries := classify(t, source, nil, 0.90)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].TransfermarktID == nil || *entries[0].TransfermarktID != "123" {
		t.Errorf("transfermarkt_id = %v, want 123", entries[0].TransfermarktID)
	}

	noID := classify(t, []roster.Record{{"name": "Ana Horvat"}}, nil, 0.90)
	if noID[0].TransfermarktID != nil {
		t.Errorf("expected nil identifier, got %v", *noID[0].TransfermarktID)
	}
}
