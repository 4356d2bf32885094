package pathjson

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCollectsAllMatches(t *testing.T) {
	patterns := mustPatterns(t, "$.a", "$.b[*]")
	results, err := Parse(patterns, []byte(`{"a": 1, "b": [10, 20]}`))
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "$.a", results[0].Path)
	assert.Equal(t, "$.b[0]", results[1].Path)
	assert.Equal(t, "$.b[1]", results[2].Path)
}

func TestParseSeqStreamsResultsAsChunksArrive(t *testing.T) {
	patterns := mustPatterns(t, "$.n[*]")
	doc := `{"n": [1, 2, 3, 4, 5]}`

	var chunks [][]byte
	for i := 0; i < len(doc); i += 3 {
		end := min(i+3, len(doc))
		chunks = append(chunks, []byte(doc[i:end]))
	}

	var results []Result
	for r, err := range ParseSeq(patterns, slices.Values(chunks)) {
		require.NoError(t, err)
		results = append(results, r)
	}
	require.Len(t, results, 5)
	assert.Equal(t, 5.0, results[4].Value)
}

func TestParseSeqYieldsErrorOnMalformedInput(t *testing.T) {
	patterns := mustPatterns(t, "$")
	seq := ParseSeq(patterns, slices.Values([][]byte{[]byte(`{bad json`)}))
	var sawErr bool
	for _, err := range seq {
		if err != nil {
			sawErr = true
		}
	}
	assert.True(t, sawErr)
}
