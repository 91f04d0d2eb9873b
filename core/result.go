package core

import "github.com/google/uuid"

// SearchResult represents a single match produced by a search: the leaf
// text that contained the query, together with the top-level path that
// reached it. The path is the root of the chain, not the nested tail, so
// the result can later be re-applied as an exact filter.
type SearchResult struct {
	ID       uuid.UUID // Stable per-instance identity (e.g. UI row identity)
	Query    string    // The original query string
	Matched  string    // The exact leaf text that matched
	Path     *Path     // Top-level path that produced the match
	Category string    // Caller-derived display label for the path
}

// ResultFactory constructs a SearchResult for a successful match. Callers
// supply their own factory to control result construction; it must succeed
// for any well-formed inputs.
type ResultFactory func(query, matched string, path *Path) *SearchResult

// NewSearchResult is the default result factory. Each call produces a
// distinct instance with its own ID.
func NewSearchResult(query, matched string, path *Path) *SearchResult {
	return &SearchResult{
		ID:      uuid.New(),
		Query:   query,
		Matched: matched,
		Path:    path,
	}
}

// Labeler maps a path to a display category. Unrecognized paths should map
// to the empty string rather than fail.
type Labeler func(*Path) string
