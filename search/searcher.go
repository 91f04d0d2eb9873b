package search

import (
	"log/slog"
	"runtime"
	"strings"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/facet/core"
)

// Searcher finds records whose fields contain a query substring, following
// a fixed set of field paths built once per record type. The traversal runs
// synchronously on the calling goroutine; SearchAsync dispatches the same
// computation to a worker pool and delivers results through a callback,
// exactly once per call.
type Searcher struct {
	paths   []*core.Path
	factory core.ResultFactory
	labeler core.Labeler
	dedup   DedupPolicy
	pool    *ants.Pool
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithResultFactory sets the factory used to construct results.
// Default is core.NewSearchResult.
func WithResultFactory(factory core.ResultFactory) Option {
	return func(s *Searcher) error {
		if factory == nil {
			return ErrFactoryRequired
		}
		s.factory = factory
		return nil
	}
}

// WithLabeler sets the policy that derives a result's category from its
// path. The default labels every path with the empty string.
func WithLabeler(labeler core.Labeler) Option {
	return func(s *Searcher) error {
		if labeler == nil {
			labeler = func(*core.Path) string { return "" }
		}
		s.labeler = labeler
		return nil
	}
}

// WithDedupPolicy sets the equality policy used to collapse duplicate
// matches. Default is DedupIdentity.
func WithDedupPolicy(policy DedupPolicy) Option {
	return func(s *Searcher) error {
		if policy != DedupIdentity && policy != DedupValue {
			return ErrInvalidDedupPolicy
		}
		s.dedup = policy
		return nil
	}
}

// WithPoolSize sets the worker pool size for asynchronous delivery.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}

		if s.pool != nil {
			s.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		s.pool = pool
		return nil
	}
}

// NewSearcher creates a new searcher over the given field paths.
// Paths are validated up front; malformed paths are configuration errors,
// not search-time failures.
func NewSearcher(paths []*core.Path, opts ...Option) (*Searcher, error) {
	if len(paths) == 0 {
		return nil, ErrPathsRequired
	}
	for _, path := range paths {
		if err := core.ValidatePath(path); err != nil {
			return nil, err
		}
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		paths:   paths,
		factory: core.NewSearchResult,
		labeler: func(*core.Path) string { return "" },
		dedup:   DedupIdentity,
		pool:    pool,
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}

	return s, nil
}

// Search scans every record against every path and returns the
// deduplicated matches, ranked by the position of the query inside the
// matched text, earliest first. An empty query matches nothing.
func (s *Searcher) Search(records []any, query string) []*core.SearchResult {
	return s.SearchWithMonitor(records, query, nil)
}

// SearchWithMonitor is Search with observation hooks.
// The monitor receives callbacks as matches are found and once with the
// final ranked results.
func (s *Searcher) SearchWithMonitor(records []any, query string, monitor SearchMonitor) []*core.SearchResult {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	results := []*core.SearchResult{}
	if query == "" {
		// Empty query is an explicit "no results" request, not an error.
		monitor.Finish(results)
		return results
	}

	lowered := strings.ToLower(query)
	set := newResultSet(s.dedup)

	for _, record := range records {
		for _, path := range s.paths {
			s.scan(record, path, path, query, lowered, set, monitor)
		}
	}

	results = set.results()
	rankByOffset(results, lowered)
	monitor.Finish(results)

	s.logger.Debug("search complete", "query", query, "records", len(records), "results", len(results))
	return results
}

// SearchAsync runs Search on a worker and delivers the results through the
// callback. The callback is invoked exactly once unless submission itself
// fails, e.g. after Release.
func (s *Searcher) SearchAsync(records []any, query string, deliver func([]*core.SearchResult)) error {
	if deliver == nil {
		return ErrDeliveryRequired
	}
	return s.pool.Submit(func() {
		deliver(s.Search(records, query))
	})
}

// Release releases the worker pool.
// The searcher's asynchronous surface should not be used after calling Release.
func (s *Searcher) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// scan resolves path against record, descending through sub-collections.
// top stays fixed at the root of the chain so every result points at the
// path that can later be re-applied as a filter.
func (s *Searcher) scan(record any, path, top *core.Path, query, lowered string, set *resultSet, monitor SearchMonitor) {
	value, ok := path.Resolve(record)
	if !ok {
		// Accessor does not apply to this record's shape. Skip, not an error.
		return
	}

	if path.Next() == nil {
		text, ok := value.(core.Text)
		if !ok {
			return
		}
		if !strings.Contains(strings.ToLower(string(text)), lowered) {
			return
		}

		result := s.factory(query, string(text), top)
		result.Category = s.labeler(top)
		if set.insert(result) {
			monitor.Match(result)
		} else {
			monitor.Duplicate(result)
		}
		return
	}

	list, ok := value.(core.List)
	if !ok {
		return
	}
	for _, element := range list {
		s.scan(element, path.Next(), top, query, lowered, set, monitor)
	}
}
