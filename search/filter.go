package search

import (
	"strings"

	"github.com/poiesic/facet/core"
)

// Apply narrows records to those whose value at the filter's path equals
// the filter's matched text, case-insensitively. At a sub-collection step a
// record passes when any element satisfies the rest of the path. Records
// whose shape does not fit the path are excluded, not errors. The returned
// slice preserves the input order.
func Apply(filter *core.SearchResult, records []any) []any {
	if filter == nil || filter.Path == nil {
		return []any{}
	}

	want := strings.ToLower(filter.Matched)

	narrowed := make([]any, 0, len(records))
	for _, record := range records {
		if pathHolds(record, filter.Path, want) {
			narrowed = append(narrowed, record)
		}
	}
	return narrowed
}

// pathHolds reports whether the record carries want (already lowercased) at
// the leaf of path, descending existentially through sub-collections.
func pathHolds(record any, path *core.Path, want string) bool {
	value, ok := path.Resolve(record)
	if !ok {
		return false
	}

	if path.Next() == nil {
		text, ok := value.(core.Text)
		return ok && strings.ToLower(string(text)) == want
	}

	list, ok := value.(core.List)
	if !ok {
		return false
	}
	for _, element := range list {
		if pathHolds(element, path.Next(), want) {
			return true
		}
	}
	return false
}
