package search

import (
	"github.com/poiesic/facet/core"
)

// DedupPolicy selects how duplicate matches are collapsed.
type DedupPolicy int

const (
	// DedupIdentity treats every result instance as distinct, so every
	// match is kept. Useful when result identity matters, e.g. UI rows.
	DedupIdentity DedupPolicy = iota

	// DedupValue collapses results whose path and matched text are both
	// equal, even when produced by different traversal steps.
	DedupValue
)

// valueKey identifies a match under DedupValue. Paths are shared
// configuration built once per record type, so pointer equality is
// structural equality of the accessor chain.
type valueKey struct {
	path    *core.Path
	matched string
}

// resultSet collects matches, collapsing duplicates per the active policy.
type resultSet struct {
	policy  DedupPolicy
	seen    map[valueKey]struct{}
	ordered []*core.SearchResult
}

func newResultSet(policy DedupPolicy) *resultSet {
	return &resultSet{
		policy: policy,
		seen:   make(map[valueKey]struct{}),
	}
}

// insert adds the result to the set. It reports false when the active
// policy considers the result a duplicate of one already held.
func (rs *resultSet) insert(result *core.SearchResult) bool {
	if rs.policy == DedupValue {
		key := valueKey{path: result.Path, matched: result.Matched}
		if _, dup := rs.seen[key]; dup {
			return false
		}
		rs.seen[key] = struct{}{}
	}

	rs.ordered = append(rs.ordered, result)
	return true
}

func (rs *resultSet) results() []*core.SearchResult {
	if rs.ordered == nil {
		return []*core.SearchResult{}
	}
	return rs.ordered
}
