package search

import (
	"sort"
	"strings"

	"github.com/poiesic/facet/core"
)

// rankByOffset orders results by the position of the first occurrence of
// the lowercased query inside the lowercased matched text, ascending. A
// result whose matched text no longer contains the query compares equal to
// others in the same state and sorts after every result that does; the sort
// is stable so such entries keep their relative order.
func rankByOffset(results []*core.SearchResult, lowered string) {
	sort.SliceStable(results, func(i, j int) bool {
		oi := strings.Index(strings.ToLower(results[i].Matched), lowered)
		oj := strings.Index(strings.ToLower(results[j].Matched), lowered)
		if oi < 0 {
			return false
		}
		if oj < 0 {
			return true
		}
		return oi < oj
	})
}
