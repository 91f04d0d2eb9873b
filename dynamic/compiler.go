package dynamic

import (
	"fmt"
	"strings"
	"sync"

	"github.com/poiesic/facet/core"
)

// Compiler turns dotted path specs into core.Path chains over untyped
// records. It caches compiled paths by spec content, so identical specs
// yield the identical descriptor. Safe for concurrent use.
type Compiler struct {
	mu       sync.Mutex
	compiled map[core.ID]*core.Path
	specs    map[*core.Path]string
}

// NewCompiler creates an empty compiler.
func NewCompiler() *Compiler {
	return &Compiler{
		compiled: make(map[core.ID]*core.Path),
		specs:    make(map[*core.Path]string),
	}
}

// Compile parses spec into a search path. A previously compiled spec
// returns the same *core.Path instance.
func (c *Compiler) Compile(spec string) (*core.Path, error) {
	if spec == "" {
		return nil, ErrEmptySpec
	}

	id := core.IDFromContent(spec)

	c.mu.Lock()
	defer c.mu.Unlock()

	if path, ok := c.compiled[id]; ok {
		return path, nil
	}

	segments := strings.Split(spec, ".")

	last := segments[len(segments)-1]
	if last == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptySegment, spec)
	}
	if strings.HasSuffix(last, "[]") {
		return nil, fmt.Errorf("%w: %q", ErrCollectionLeaf, spec)
	}

	path := core.Leaf(lookup(last))
	for i := len(segments) - 2; i >= 0; i-- {
		key := strings.TrimSuffix(segments[i], "[]")
		if key == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptySegment, spec)
		}
		path = core.Nested(lookup(key), path)
	}

	c.compiled[id] = path
	c.specs[path] = spec
	return path, nil
}

// Label returns the spec that produced the path, or the empty string for
// paths this compiler did not produce.
func (c *Compiler) Label(path *core.Path) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.specs[path]
}

// Labeler adapts the compiler into a category labeling policy.
func (c *Compiler) Labeler() core.Labeler {
	return c.Label
}

// lookup builds an accessor reading key from a map-shaped record. A string
// value is a text leaf; a slice is a sub-collection; a nested map is a
// single-element collection so plain segments descend through it. Any
// other shape is inapplicable.
func lookup(key string) core.Accessor {
	return func(record any) (core.Value, bool) {
		m, ok := record.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := m[key]
		if !ok {
			return nil, false
		}

		switch v := v.(type) {
		case string:
			return core.Text(v), true
		case []any:
			return core.List(v), true
		case map[string]any:
			return core.List{v}, true
		}
		return nil, false
	}
}
