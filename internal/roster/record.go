package roster

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"rosterlink/internal/textutil"
)

// Record is one player entry: an opaque field map decoded from JSON.
type Record map[string]any

// identifierAliases is the ordered probe list for the Transfermarkt
// identifier field. The first present value that stringifies to something
// non-empty wins.
var identifierAliases = []string{
	"transfermarkt_id",
	"transfermarktId",
	"transfermarkt id",
	"transfermarkt",
}

// Field returns the first non-nil value among the named fields.
func (r Record) Field(names ...string) any {
	for _, name := range names {
		if v, ok := r[name]; ok && v != nil {
			return v
		}
	}
	return nil
}

// Identifier resolves the record's identifier as a string. When none of the
// alias fields is present, the generic "id" field is accepted only if its
// value is an integer or an all-digit string.
func (r Record) Identifier() (string, bool) {
	for _, alias := range identifierAliases {
		v, ok := r[alias]
		if !ok || v == nil {
			continue
		}
		if s := stringify(v); s != "" {
			return s, true
		}
	}
	if v, ok := r["id"]; ok && v != nil {
		if s, ok := digitString(v); ok {
			return s, true
		}
	}
	return "", false
}

// Name returns the raw "name" field, or "" when absent or not text.
func (r Record) Name() string {
	if s, ok := r["name"].(string); ok {
		return s
	}
	return ""
}

// NormalizedName returns the comparison form of the record's name.
func (r Record) NormalizedName() string {
	return textutil.NormalizeName(r.Name())
}

func stringify(v any) string {
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case json.Number:
		return value.String()
	case float64:
		if value == math.Trunc(value) {
			return strconv.FormatInt(int64(value), 10)
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}

// digitString reports whether v is integer-like and returns its decimal form.
func digitString(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return "", false
		}
		for _, r := range trimmed {
			if r < '0' || r > '9' {
				return "", false
			}
		}
		return trimmed, true
	case json.Number:
		if _, err := value.Int64(); err != nil {
			return "", false
		}
		return value.String(), true
	case float64:
		if value != math.Trunc(value) {
			return "", false
		}
		return strconv.FormatInt(int64(value), 10), true
	case int:
		return strconv.Itoa(value), true
	case int64:
		return strconv.FormatInt(value, 10), true
	default:
		return "", false
	}
}
