package roster

import "fmt"

const (
	idKeyPrefix   = "id::"
	nameKeyPrefix = "name::"
)

// IDKey builds the identifier-based canonical key.
func IDKey(id string) string { return idKeyPrefix + id }

// NameKey builds the name-based canonical key from an already-normalized name.
func NameKey(normalized string) string { return nameKeyPrefix + normalized }

// FallbackKey builds the per-occurrence singleton key used for records that
// yield no canonical keys, so they stay countable without ever merging.
func FallbackKey(dataset string, index int) string {
	return fmt.Sprintf("raw::%s::%d", dataset, index)
}

// Keys derives the record's canonical grouping keys: the identifier key
// first when an identifier resolves, then the name key when the normalized
// name is non-empty. A record with neither yields nil.
func (r Record) Keys() []string {
	var keys []string
	if id, ok := r.Identifier(); ok {
		keys = append(keys, IDKey(id))
	}
	if nn := r.NormalizedName(); nn != "" {
		keys = append(keys, NameKey(nn))
	}
	return keys
}
