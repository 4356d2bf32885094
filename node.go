package pathjson

import "github.com/jacoelho-labs/pathjson/perrors"

// node is the tagged-variant contract every parser step implements:
// string, number, literal, and key readers, the incremental object and
// array walkers, and the bulk and skip scanners. A single advance
// operation drives any variant; final is true only on the last drive of
// a session, once the caller has signalled end-of-input, so number and
// literal readers can commit a trailing lexeme that has no structural
// terminator after it (a bare top-level number or literal).
type node interface {
	// advance drives the node with whatever is currently in buf. It
	// returns true once the node is complete; an error is terminal.
	advance(buf *buffer, final bool) (bool, error)
	// value returns the node's result. Only meaningful once advance
	// has returned (true, nil).
	value() Value
}

// emitter is the sink a parser/primitive node calls into. It is the
// engine's filtering wrapper around the user's Emit, never the user's
// callback directly, so every emission anywhere in the tree passes
// through one chokepoint.
type emitter func(path Path, v Value)

// factory creates the right kind of child node for the value starting
// at buf's current position, and is how structural parsers pick a
// child without importing their peers directly: the engine owns
// child-node selection and structural parsers only hold a borrowed
// reference to it.
type factory struct {
	patterns *Patterns
	emit     emitter
}

// createChild picks a node for the value starting at buf's current
// position and decides among the skip/bulk/incremental strategies for
// objects and arrays. It returns (nil, false, nil) when there isn't yet
// a character to decide on (more data needed).
func (f *factory) createChild(path Path, buf *buffer) (node, bool, error) {
	c, ok := buf.peekFirst()
	if !ok {
		return nil, false, nil
	}

	switch {
	case c == '"':
		return &stringReader{path: path, emit: f.emit}, true, nil
	case c == '-' || isDigit(c):
		return &numberReader{path: path, emit: f.emit}, true, nil
	case c == 't':
		return newLiteralReader(path, f.emit, "true", true), true, nil
	case c == 'f':
		return newLiteralReader(path, f.emit, "false", false), true, nil
	case c == 'n':
		return newLiteralReader(path, f.emit, "null", nil), true, nil
	case c == '{':
		return f.createStructural(path, buf, true), true, nil
	case c == '[':
		return f.createStructural(path, buf, false), true, nil
	default:
		return nil, false, perrors.New(perrors.Structure, path.String(),
			"unexpected start character %q", c)
	}
}

func (f *factory) createStructural(path Path, buf *buffer, isObject bool) node {
	p := path.String()
	switch {
	case f.patterns.HasMatchingDescendants(p):
		if isObject {
			return newIncObject(path, f)
		}
		return newIncArray(path, f)
	case f.patterns.Match(p):
		if isObject {
			return newBulkScanner(path, f.emit, '{', '}')
		}
		return newBulkScanner(path, f.emit, '[', ']')
	default:
		if isObject {
			return newSkipScanner('{', '}')
		}
		return newSkipScanner('[', ']')
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
