package pathjson

import "strconv"

// segmentKind distinguishes an object-key path segment from an
// array-index one.
type segmentKind uint8

const (
	segKey segmentKind = iota
	segIndex
)

// segment is one step of a Path: either .<key> or [<index>].
type segment struct {
	kind  segmentKind
	key   string
	index int
}

// Path is a JSONPath locator, kept as an ordered sequence of segments
// rather than a pre-rendered string: descending into a value is on the
// hot path, and building the rendered string lazily (only when a value
// is actually about to be emitted or an error reported) avoids
// per-node allocation for subtrees that end up skipped.
//
// Keys are never escaped when rendered: a key containing '.' or '['
// renders indistinguishably from a nested path. That ambiguity is
// intentional and documented, not a bug to silently fix.
type Path struct {
	segs []segment
}

// RootPath returns the path "$".
func RootPath() Path { return Path{} }

// Child returns the path for the object member named key.
func (p Path) Child(key string) Path {
	next := make([]segment, len(p.segs)+1)
	copy(next, p.segs)
	next[len(p.segs)] = segment{kind: segKey, key: key}
	return Path{segs: next}
}

// Index returns the path for the array element at i.
func (p Path) Index(i int) Path {
	next := make([]segment, len(p.segs)+1)
	copy(next, p.segs)
	next[len(p.segs)] = segment{kind: segIndex, index: i}
	return Path{segs: next}
}

// String renders the path as "$.a.b[0]".
func (p Path) String() string {
	if len(p.segs) == 0 {
		return "$"
	}
	// Rendering is rare enough (only on Emit or error) that a single
	// pre-sized buffer beats fully lazy rendering without the
	// complexity of a rope/builder chain.
	size := 1
	for _, s := range p.segs {
		switch s.kind {
		case segKey:
			size += 1 + len(s.key)
		case segIndex:
			size += 2 + numDigits(s.index)
		}
	}
	out := make([]byte, 0, size)
	out = append(out, '$')
	for _, s := range p.segs {
		switch s.kind {
		case segKey:
			out = append(out, '.')
			out = append(out, s.key...)
		case segIndex:
			out = append(out, '[')
			out = strconv.AppendInt(out, int64(s.index), 10)
			out = append(out, ']')
		}
	}
	return string(out)
}

func numDigits(n int) int {
	if n == 0 {
		return 1
	}
	d := 0
	if n < 0 {
		d++
		n = -n
	}
	for n > 0 {
		d++
		n /= 10
	}
	return d
}
