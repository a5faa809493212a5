package textutil

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Similarity returns a matching-block ratio between two strings in [0, 1]:
// twice the total length of matched blocks divided by the combined length of
// both inputs. Identical strings score 1.0 and fully disjoint strings score
// 0.0. Callers are expected to pass already-normalized names.
//
// The comparison is rune-based and O(len(a)·len(b)) in the worst case.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	// SequenceMatcher builds its junk index from the second argument, which
	// can make the raw ratio order-sensitive. Fix the argument order so the
	// score is symmetric.
	if a > b {
		a, b = b, a
	}
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}
