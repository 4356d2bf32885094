package pathjson

import "github.com/jacoelho-labs/pathjson/perrors"

// incArray descends into a JSON array element by element, chosen over
// bulk/skip whenever some pattern could still match a path strictly
// below this array. It assembles its own Array from each child's
// decoded value as it goes, so that if this array's own path also
// happens to match a pattern outright, the assembled value can still be
// emitted once the array closes (a pattern on the container and a
// pattern on one of its descendants can both fire).
type incArray struct {
	path  Path
	f     *factory
	elems Array
	index int
	child node
	state incArrState
}

type incArrState uint8

const (
	incArrOpen incArrState = iota
	incArrElemOrClose
	incArrExpectElem
	incArrChild
	incArrCommaOrClose
	incArrDone
)

func newIncArray(path Path, f *factory) node {
	return &incArray{path: path, f: f}
}

func (a *incArray) advance(buf *buffer, final bool) (bool, error) {
	for {
		switch a.state {
		case incArrOpen:
			buf.consumeWhitespace()
			c, ok := buf.peekFirst()
			if !ok {
				return false, nil
			}
			if c != '[' {
				return false, perrors.New(perrors.Structure, a.path.String(), "expected '[', got %q", c)
			}
			buf.consume(1)
			a.state = incArrElemOrClose

		case incArrElemOrClose:
			buf.consumeWhitespace()
			c, ok := buf.peekFirst()
			if !ok {
				return false, nil
			}
			if c == ']' {
				buf.consume(1)
				return a.finish()
			}
			child, ok, err := a.f.createChild(a.path.Index(a.index), buf)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
			a.child = child
			a.state = incArrChild

		case incArrExpectElem:
			buf.consumeWhitespace()
			c, ok := buf.peekFirst()
			if !ok {
				return false, nil
			}
			if c == ']' {
				return false, perrors.New(perrors.Structure, a.path.String(), "trailing comma before closing bracket")
			}
			child, ok, err := a.f.createChild(a.path.Index(a.index), buf)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
			a.child = child
			a.state = incArrChild

		case incArrChild:
			done, err := a.child.advance(buf, final)
			if err != nil {
				return false, err
			}
			if !done {
				return false, nil
			}
			a.elems = append(a.elems, a.child.value())
			a.child = nil
			a.index++
			a.state = incArrCommaOrClose

		case incArrCommaOrClose:
			buf.consumeWhitespace()
			c, ok := buf.peekFirst()
			if !ok {
				return false, nil
			}
			switch c {
			case ',':
				buf.consume(1)
				a.state = incArrExpectElem
			case ']':
				buf.consume(1)
				return a.finish()
			default:
				return false, perrors.New(perrors.Structure, a.path.String(), "expected ',' or ']', got %q", c)
			}

		case incArrDone:
			return true, nil
		}
	}
}

// finish closes out the array and offers its assembled value to the
// engine's filtering emitter, which only forwards it to the caller's
// callback if this array's own path happens to match a pattern too.
// Every emission in the tree goes through that same filter, so this
// call site does not need to re-check the match itself. An element's
// own emission always happens before this call, so when a pattern
// matches this array and another matches one of its elements, the
// element is emitted first and the array second — post-order, not the
// depth-first pre-order a reader might otherwise expect.
func (a *incArray) finish() (bool, error) {
	a.state = incArrDone
	a.f.emit(a.path, a.elems)
	return true, nil
}

func (a *incArray) value() Value { return a.elems }
