// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package facet

import (
	"log/slog"

	"github.com/poiesic/facet/core"
	"github.com/poiesic/facet/search"
)

// Collection bundles a record slice with a configured searcher. It is the
// convenience entry point for callers who want search and filtering over
// one collection without wiring the engine pieces themselves.
type Collection struct {
	records  []any
	searcher *search.Searcher
	owner    bool
	logger   *slog.Logger
}

// CollectionOption configures a Collection.
type CollectionOption func(*collectionOptions)

type collectionOptions struct {
	logger     *slog.Logger
	searchOpts []search.Option
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) CollectionOption {
	return func(o *collectionOptions) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// WithSearchOptions forwards options to the underlying searcher.
func WithSearchOptions(opts ...search.Option) CollectionOption {
	return func(o *collectionOptions) {
		o.searchOpts = append(o.searchOpts, opts...)
	}
}

// NewCollection creates a collection over records searchable along the
// given paths.
func NewCollection(records []any, paths []*core.Path, opts ...CollectionOption) (*Collection, error) {
	// Apply options
	options := &collectionOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	searchOpts := append([]search.Option{search.WithLogger(options.logger)}, options.searchOpts...)
	searcher, err := search.NewSearcher(paths, searchOpts...)
	if err != nil {
		return nil, err
	}

	return &Collection{
		records:  records,
		searcher: searcher,
		owner:    true,
		logger:   options.logger,
	}, nil
}

// Records returns the underlying record slice.
func (c *Collection) Records() []any {
	return c.records
}

// Search returns the ranked matches for query across the collection.
func (c *Collection) Search(query string) []*core.SearchResult {
	return c.searcher.Search(c.records, query)
}

// SearchWithMonitor is Search with observation hooks.
func (c *Collection) SearchWithMonitor(query string, monitor search.SearchMonitor) []*core.SearchResult {
	return c.searcher.SearchWithMonitor(c.records, query, monitor)
}

// SearchAsync delivers the ranked matches through the callback from a
// worker goroutine, exactly once.
func (c *Collection) SearchAsync(query string, deliver func([]*core.SearchResult)) error {
	return c.searcher.SearchAsync(c.records, query, deliver)
}

// Narrow returns a new collection holding only the records that carry the
// match's text at the match's path. The new collection shares this
// collection's searcher; releasing the parent releases both.
func (c *Collection) Narrow(match *core.SearchResult) *Collection {
	return &Collection{
		records:  search.Apply(match, c.records),
		searcher: c.searcher,
		logger:   c.logger,
	}
}

// Release releases the underlying searcher's resources. Only the
// collection that created the searcher releases it; narrowed views are
// no-ops.
func (c *Collection) Release() {
	if c.owner {
		c.searcher.Release()
	}
}
