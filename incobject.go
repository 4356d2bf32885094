package pathjson

import "github.com/jacoelho-labs/pathjson/perrors"

// incObject descends into a JSON object member by member, the object
// counterpart of incArray. As with incArray, it assembles its own
// Object as members complete so the container's own path can still be
// emitted if a pattern matches it exactly.
type incObject struct {
	path   Path
	f      *factory
	obj    *Object
	key    *keyReader
	curKey string
	child  node
	state  incObjState
}

type incObjState uint8

const (
	incObjOpen incObjState = iota
	incObjKeyOrClose
	incObjExpectKey
	incObjKey
	incObjChild
	incObjCommaOrClose
	incObjDone
)

func newIncObject(path Path, f *factory) node {
	return &incObject{path: path, f: f, obj: NewObject()}
}

func (o *incObject) advance(buf *buffer, final bool) (bool, error) {
	for {
		switch o.state {
		case incObjOpen:
			buf.consumeWhitespace()
			c, ok := buf.peekFirst()
			if !ok {
				return false, nil
			}
			if c != '{' {
				return false, perrors.New(perrors.Structure, o.path.String(), "expected '{', got %q", c)
			}
			buf.consume(1)
			o.state = incObjKeyOrClose

		case incObjKeyOrClose:
			buf.consumeWhitespace()
			c, ok := buf.peekFirst()
			if !ok {
				return false, nil
			}
			if c == '}' {
				buf.consume(1)
				return o.finish()
			}
			o.key = &keyReader{}
			o.state = incObjKey

		case incObjExpectKey:
			buf.consumeWhitespace()
			c, ok := buf.peekFirst()
			if !ok {
				return false, nil
			}
			if c == '}' {
				return false, perrors.New(perrors.Structure, o.path.String(), "trailing comma before closing brace")
			}
			o.key = &keyReader{}
			o.state = incObjKey

		case incObjKey:
			done, err := o.key.advance(buf, final)
			if err != nil {
				return false, err
			}
			if !done {
				return false, nil
			}
			o.curKey = o.key.key
			o.key = nil
			buf.consumeWhitespace()
			o.state = incObjChild

		case incObjChild:
			if o.child == nil {
				child, ok, err := o.f.createChild(o.path.Child(o.curKey), buf)
				if err != nil {
					return false, err
				}
				if !ok {
					return false, nil
				}
				o.child = child
			}
			done, err := o.child.advance(buf, final)
			if err != nil {
				return false, err
			}
			if !done {
				return false, nil
			}
			o.obj.Set(o.curKey, o.child.value())
			o.child = nil
			o.state = incObjCommaOrClose

		case incObjCommaOrClose:
			buf.consumeWhitespace()
			c, ok := buf.peekFirst()
			if !ok {
				return false, nil
			}
			switch c {
			case ',':
				buf.consume(1)
				o.state = incObjExpectKey
			case '}':
				buf.consume(1)
				return o.finish()
			default:
				return false, perrors.New(perrors.Structure, o.path.String(), "expected ',' or '}', got %q", c)
			}

		case incObjDone:
			return true, nil
		}
	}
}

// finish closes out the object and offers its assembled value to the
// engine's filtering emitter, the same single chokepoint every other
// emission in the tree goes through (see incArray.finish). A member's
// own emission always happens before this call, so when a pattern
// matches this object and another matches something inside it, the
// descendant is emitted first and the container second — post-order,
// not the depth-first pre-order a reader might otherwise expect.
func (o *incObject) finish() (bool, error) {
	o.state = incObjDone
	o.f.emit(o.path, o.obj)
	return true, nil
}

func (o *incObject) value() Value { return o.obj }
