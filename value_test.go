package pathjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectPreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Set("z", 1.0)
	o.Set("a", 2.0)
	o.Set("m", 3.0)

	assert.Equal(t, []string{"z", "a", "m"}, o.Keys())
	assert.Equal(t, 3, o.Len())

	v, ok := o.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)
}

func TestObjectSetOverwritesKeepsPosition(t *testing.T) {
	o := NewObject()
	o.Set("a", 1.0)
	o.Set("b", 2.0)
	o.Set("a", 99.0)

	assert.Equal(t, []string{"a", "b"}, o.Keys())
	v, _ := o.Get("a")
	assert.Equal(t, 99.0, v)
}

func TestObjectRangeStopsEarly(t *testing.T) {
	o := NewObject()
	o.Set("a", 1.0)
	o.Set("b", 2.0)
	o.Set("c", 3.0)

	var seen []string
	o.Range(func(key string, value Value) bool {
		seen = append(seen, key)
		return key != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}
