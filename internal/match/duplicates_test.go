package match

import (
	"testing"

	"rosterlink/internal/roster"
)

func TestFindDuplicatesSharedIdentifier(t *testing.T) {
	records := []roster.Record{
		{"transfermarkt_id": "42", "name": "Jon Smith"},
		{"transfermarkt_id": "42", "name": "J. Smith"},
		{"transfermarkt_id": "7", "name": "Ana Horvat"},
	}
	groups := FindDuplicates(TagSource, records)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	group := groups[0]
	if group.Key != "id::42" {
		t.Errorf("key = %q, want id::42", group.Key)
	}
	if len(group.Indices) != 2 || group.Indices[0] != 0 || group.Indices[1] != 1 {
		t.Errorf("indices = %v, want [0 1]", group.Indices)
	}
	if len(group.Members) != 2 {
		t.Errorf("members = %d, want 2", len(group.Members))
	}
}

func TestFindDuplicatesNone(t *testing.T) {
	records := []roster.Record{
		{"transfermarkt_id": "1", "name": "Jon Smith"},
		{"transfermarkt_id": "2", "name": "Ana Horvat"},
	}
	if groups := FindDuplicates(TagSource, records); len(groups) != 0 {
		t.Errorf("expected no duplicate groups, got %v", groups)
	}
}

func TestFindDuplicatesKeepsAllLinkingKeys(t *testing.T) {
	records := []roster.Record{
		{"transfermarkt_id": "9", "name": "Luka Modric"},
		{"transfermarkt_id": "9", "name": "Luka Modrić"},
	}
	groups := FindDuplicates(TagSource, records)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	if len(groups[0].Keys) != 2 {
		t.Errorf("keys = %v, want id and name key listed", groups[0].Keys)
	}
}

func TestKeyIndexCoversEveryKey(t *testing.T) {
	records := []roster.Record{
		{"transfermarkt_id": "9", "name": "Luka Modric"},
		{"transfermarkt_id": "9", "name": "Luka Modrić"},
	}
	index := keyIndex(FindDuplicates(TagSource, records))
	for _, key := range []string{"id::9", "name::luka modric"} {
		if _, ok := index[key]; !ok {
			t.Errorf("key %q missing from index", key)
		}
	}
}
