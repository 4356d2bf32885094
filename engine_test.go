package pathjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho-labs/pathjson/perrors"
)

func mustPatterns(t *testing.T, raw ...string) Patterns {
	t.Helper()
	p, err := NewPatterns(raw)
	require.NoError(t, err)
	return p
}

func TestEnginePushChunkedAcrossArbitraryBoundaries(t *testing.T) {
	doc := `{"user": {"id": 42, "name": "ana", "tags": ["a", "b", "c"]}, "ignored": {"x": 1}}`
	patterns := mustPatterns(t, "$.user.id", "$.user.tags[*]")

	for chunkSize := 1; chunkSize <= len(doc); chunkSize++ {
		var got []Result
		eng := NewEngine(patterns, func(path string, v Value) {
			got = append(got, Result{Path: path, Value: v})
		})
		for i := 0; i < len(doc); i += chunkSize {
			end := min(i+chunkSize, len(doc))
			require.NoError(t, eng.Push([]byte(doc[i:end])), "chunkSize=%d", chunkSize)
		}
		require.NoError(t, eng.Finalize(), "chunkSize=%d", chunkSize)

		require.Len(t, got, 4, "chunkSize=%d", chunkSize)
		assert.Equal(t, "$.user.id", got[0].Path)
		assert.Equal(t, 42.0, got[0].Value)
		assert.Equal(t, "$.user.tags[0]", got[1].Path)
		assert.Equal(t, "a", got[1].Value)
		assert.Equal(t, "$.user.tags[2]", got[3].Path)
		assert.Equal(t, "c", got[3].Value)
	}
}

func TestEngineTopLevelBareScalar(t *testing.T) {
	patterns := mustPatterns(t, "$")
	var got []Result
	eng := NewEngine(patterns, func(path string, v Value) {
		got = append(got, Result{Path: path, Value: v})
	})
	require.NoError(t, eng.Push([]byte("4")))
	require.NoError(t, eng.Push([]byte("2")))
	require.NoError(t, eng.Finalize())

	require.Len(t, got, 1)
	assert.Equal(t, "$", got[0].Path)
	assert.Equal(t, 42.0, got[0].Value)
}

func TestEngineBulkScanTopLevel(t *testing.T) {
	patterns := mustPatterns(t, "$")
	var got Value
	eng := NewEngine(patterns, func(_ string, v Value) { got = v })
	require.NoError(t, eng.Push([]byte(`{"a": 1, "b": 2}`)))
	require.NoError(t, eng.Finalize())

	obj, ok := got.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
}

func TestEngineRejectsTrailingGarbage(t *testing.T) {
	patterns := mustPatterns(t, "$")
	eng := NewEngine(patterns, func(string, Value) {})
	require.NoError(t, eng.Push([]byte(`{}garbage`)))
	require.Error(t, eng.Finalize())
}

func TestEngineFinalizeIsIdempotent(t *testing.T) {
	patterns := mustPatterns(t, "$")
	eng := NewEngine(patterns, func(string, Value) {})
	require.NoError(t, eng.Push([]byte(`{}extra`)))
	err1 := eng.Finalize()
	require.Error(t, err1)
	err2 := eng.Finalize()
	assert.Same(t, err1, err2)
}

func TestEnginePushAfterFinalizeFails(t *testing.T) {
	patterns := mustPatterns(t, "$")
	eng := NewEngine(patterns, func(string, Value) {})
	require.NoError(t, eng.Push([]byte(`1`)))
	require.NoError(t, eng.Finalize())
	require.Error(t, eng.Push([]byte(`2`)))
}

func TestEngineFinalizeFailsIncompleteOnTruncatedStructure(t *testing.T) {
	patterns := mustPatterns(t, "$")
	eng := NewEngine(patterns, func(string, Value) {})
	require.NoError(t, eng.Push([]byte(`{"a":1`)))
	err := eng.Finalize()
	require.Error(t, err)
	kind, ok := perrors.Of(err)
	require.True(t, ok)
	assert.Equal(t, perrors.Incomplete, kind)
}

func TestEngineSkipsUnmatchedSubtrees(t *testing.T) {
	patterns := mustPatterns(t, "$.keep")
	doc := `{"skip": {"deep": {"huge": [1,2,3,4,5,6,7,8,9,10]}}, "keep": "value"}`
	var got []Result
	eng := NewEngine(patterns, func(path string, v Value) {
		got = append(got, Result{Path: path, Value: v})
	})
	require.NoError(t, eng.Push([]byte(doc)))
	require.NoError(t, eng.Finalize())
	require.Len(t, got, 1)
	assert.Equal(t, "value", got[0].Value)
}
