package pathjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyReaderParsesKeyAndColon(t *testing.T) {
	r := &keyReader{}
	var buf buffer
	buf.push([]byte(`"name"  :`))
	done, err := r.advance(&buf, false)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "name", r.key)
	assert.True(t, buf.empty())
}

func TestKeyReaderWaitsForColon(t *testing.T) {
	r := &keyReader{}
	var buf buffer
	buf.push([]byte(`"name"`))
	done, err := r.advance(&buf, false)
	require.NoError(t, err)
	assert.False(t, done)

	buf.push([]byte(` :`))
	done, err = r.advance(&buf, false)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "name", r.key)
}

func TestKeyReaderRejectsNonString(t *testing.T) {
	r := &keyReader{}
	var buf buffer
	buf.push([]byte(`42`))
	_, err := r.advance(&buf, false)
	require.Error(t, err)
}
