package dynamic

import (
	"testing"

	"github.com/poiesic/facet/core"
	"github.com/poiesic/facet/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []any {
	return []any{
		map[string]any{
			"name": "Lamp",
			"stores": []any{
				map[string]any{"name": "Acme"},
			},
			"details": map[string]any{
				"manufacturer": map[string]any{"name": "Lumen Works"},
			},
		},
		map[string]any{
			"name": "Chair",
			"stores": []any{
				map[string]any{"name": "Bolt"},
			},
		},
	}
}

func TestCompile(t *testing.T) {
	compiler := NewCompiler()

	t.Run("leaf spec", func(t *testing.T) {
		path, err := compiler.Compile("name")
		require.NoError(t, err)
		require.NoError(t, core.ValidatePath(path))
		assert.Nil(t, path.Next())
	})

	t.Run("nested spec", func(t *testing.T) {
		path, err := compiler.Compile("stores[].name")
		require.NoError(t, err)
		require.NoError(t, core.ValidatePath(path))
		require.NotNil(t, path.Next())
		assert.Nil(t, path.Next().Next())
	})

	t.Run("empty spec", func(t *testing.T) {
		_, err := compiler.Compile("")
		assert.Equal(t, ErrEmptySpec, err)
	})

	t.Run("empty segment", func(t *testing.T) {
		_, err := compiler.Compile("stores[].")
		assert.ErrorIs(t, err, ErrEmptySegment)

		_, err = compiler.Compile(".name")
		assert.ErrorIs(t, err, ErrEmptySegment)
	})

	t.Run("collection leaf", func(t *testing.T) {
		_, err := compiler.Compile("stores[]")
		assert.ErrorIs(t, err, ErrCollectionLeaf)
	})
}

func TestCompile_CacheIdentity(t *testing.T) {
	compiler := NewCompiler()

	first, err := compiler.Compile("stores[].name")
	require.NoError(t, err)
	second, err := compiler.Compile("stores[].name")
	require.NoError(t, err)

	assert.Same(t, first, second)

	other, err := compiler.Compile("name")
	require.NoError(t, err)
	assert.NotSame(t, first, other)
}

func TestLabel(t *testing.T) {
	compiler := NewCompiler()

	path, err := compiler.Compile("stores[].name")
	require.NoError(t, err)

	assert.Equal(t, "stores[].name", compiler.Label(path))
	assert.Equal(t, "stores[].name", compiler.Labeler()(path))

	foreign := core.Leaf(lookup("name"))
	assert.Empty(t, compiler.Label(foreign))
}

func TestCompiledPaths_Search(t *testing.T) {
	compiler := NewCompiler()

	name, err := compiler.Compile("name")
	require.NoError(t, err)
	storeName, err := compiler.Compile("stores[].name")
	require.NoError(t, err)

	searcher, err := search.NewSearcher(
		[]*core.Path{name, storeName},
		search.WithLabeler(compiler.Labeler()),
	)
	require.NoError(t, err)
	defer searcher.Release()

	results := searcher.Search(sampleRecords(), "acme")

	require.Len(t, results, 1)
	assert.Equal(t, "Acme", results[0].Matched)
	assert.Equal(t, "stores[].name", results[0].Category)
}

func TestCompiledPaths_MapDescent(t *testing.T) {
	compiler := NewCompiler()

	path, err := compiler.Compile("details.manufacturer.name")
	require.NoError(t, err)

	searcher, err := search.NewSearcher([]*core.Path{path})
	require.NoError(t, err)
	defer searcher.Release()

	results := searcher.Search(sampleRecords(), "lumen")

	require.Len(t, results, 1)
	assert.Equal(t, "Lumen Works", results[0].Matched)
}

func TestCompiledPaths_Filter(t *testing.T) {
	compiler := NewCompiler()

	storeName, err := compiler.Compile("stores[].name")
	require.NoError(t, err)

	records := sampleRecords()
	filter := core.NewSearchResult("bolt", "Bolt", storeName)
	narrowed := search.Apply(filter, records)

	require.Len(t, narrowed, 1)
	assert.Equal(t, "Chair", narrowed[0].(map[string]any)["name"])
}

func TestCompiledPaths_SkipNonTextLeaf(t *testing.T) {
	compiler := NewCompiler()

	path, err := compiler.Compile("price")
	require.NoError(t, err)

	searcher, err := search.NewSearcher([]*core.Path{path})
	require.NoError(t, err)
	defer searcher.Release()

	records := []any{
		map[string]any{"price": 42},
		map[string]any{"price": "42 dollars"},
	}

	results := searcher.Search(records, "42")

	// The integer-valued leaf is skipped, not an error.
	require.Len(t, results, 1)
	assert.Equal(t, "42 dollars", results[0].Matched)
}
