package pathjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho-labs/pathjson/perrors"
)

func drivePrimitive(t *testing.T, n node, chunks []string, final bool) (bool, error) {
	t.Helper()
	var buf buffer
	var done bool
	var err error
	for i, c := range chunks {
		buf.push([]byte(c))
		done, err = n.advance(&buf, final && i == len(chunks)-1)
		if err != nil || done {
			return done, err
		}
	}
	return done, err
}

func TestStringReaderByteByByte(t *testing.T) {
	var got string
	r := &stringReader{path: RootPath(), emit: func(_ Path, v Value) { got = v.(string) }}
	lit := `"hello, world"`
	chunks := make([]string, len(lit))
	for i, c := range []byte(lit) {
		chunks[i] = string(c)
	}
	done, err := drivePrimitive(t, r, chunks, false)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "hello, world", got)
}

func TestStringReaderUnicodeEscape(t *testing.T) {
	var got string
	r := &stringReader{path: RootPath(), emit: func(_ Path, v Value) { got = v.(string) }}
	done, err := drivePrimitive(t, r, []string{`"caf\u00e9"`}, false)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "café", got)
}

func TestStringReaderRejectsBadEscape(t *testing.T) {
	r := &stringReader{path: RootPath(), emit: func(Path, Value) {}}
	_, err := drivePrimitive(t, r, []string{`"bad\q"`}, false)
	require.Error(t, err)
	kind, ok := perrors.Of(err)
	require.True(t, ok)
	assert.Equal(t, perrors.Lexical, kind)
}

func TestNumberReaderResumesAcrossPushes(t *testing.T) {
	var got float64
	r := &numberReader{path: RootPath(), emit: func(_ Path, v Value) { got = v.(float64) }}
	done, err := drivePrimitive(t, r, []string{"1", "2", ".", "5", "e", "1", " "}, false)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 12.5e1, got)
}

func TestNumberReaderCommitsOnFinal(t *testing.T) {
	var got float64
	r := &numberReader{path: RootPath(), emit: func(_ Path, v Value) { got = v.(float64) }}
	done, err := drivePrimitive(t, r, []string{"42"}, true)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 42.0, got)
}

func TestNumberReaderRejectsBadLeadingDigit(t *testing.T) {
	r := &numberReader{path: RootPath(), emit: func(Path, Value) {}}
	_, err := drivePrimitive(t, r, []string{"-a"}, false)
	require.Error(t, err)
}

func TestNumberReaderRejectsMalformedTerminator(t *testing.T) {
	r := &numberReader{path: RootPath(), emit: func(Path, Value) {}}
	_, err := drivePrimitive(t, r, []string{"12x"}, false)
	require.Error(t, err)
}

func TestLiteralReaderTrue(t *testing.T) {
	var got Value
	r := newLiteralReader(RootPath(), func(_ Path, v Value) { got = v }, "true", true)
	done, err := drivePrimitive(t, r, []string{"tr", "ue,"}, false)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, true, got)
}

func TestLiteralReaderRejectsGarbage(t *testing.T) {
	r := newLiteralReader(RootPath(), func(Path, Value) {}, "null", nil)
	_, err := drivePrimitive(t, r, []string{"nuxx"}, false)
	require.Error(t, err)
}

func TestLiteralReaderCommitsOnFinalAtExactBoundary(t *testing.T) {
	var got Value
	r := newLiteralReader(RootPath(), func(_ Path, v Value) { got = v }, "false", false)
	done, err := drivePrimitive(t, r, []string{"false"}, true)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, false, got)
}
