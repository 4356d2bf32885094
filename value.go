package pathjson

// Value is a decoded JSON value: nil, bool, float64, string, Array, or
// *Object. Consumers type-switch on it the same way they would on the
// result of encoding/json.Unmarshal into interface{}, except object
// member order is preserved.
type Value = any

// Array is an ordered sequence of Values.
type Array []Value

// Object is a mapping from string keys to Values that preserves
// insertion order. Go's map type cannot make that guarantee, so Object
// pairs a slice of keys with a lookup map, built incrementally from an
// ordered token stream as members arrive.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty Object ready for Set.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set assigns key to v, appending key to the iteration order the first
// time it is seen and overwriting the value (keeping its original
// position) on a repeat key — matching JSON's "last value wins, first
// position sticks" semantics under encoding/json.Decoder.Token.
func (o *Object) Set(key string, v Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Len returns the number of members.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the member names in insertion order. The returned slice
// must not be mutated.
func (o *Object) Keys() []string { return o.keys }

// Range calls fn for each member in insertion order, stopping early if
// fn returns false.
func (o *Object) Range(fn func(key string, value Value) bool) {
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}
