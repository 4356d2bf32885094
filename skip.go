package pathjson

// skipScanner handles a subtree no pattern can ever match, either
// exactly or by descent. It runs the same bracket-depth, string-aware
// scan bulkScanner does, but throws the bytes away as it consumes them
// instead of capturing and decoding a span, so unwanted subtrees cost a
// linear scan and nothing else — no decode, no allocation, no emitted
// pair.
type skipScanner struct {
	open  byte
	close byte

	depth    int
	started  bool
	inString bool
	escaped  bool
}

func newSkipScanner(open, close byte) node {
	return &skipScanner{open: open, close: close}
}

func (s *skipScanner) advance(buf *buffer, _ bool) (bool, error) {
	w := buf.window()
	pos := 0
	for pos < len(w) {
		c := w[pos]
		if s.inString {
			switch {
			case s.escaped:
				s.escaped = false
			case c == '\\':
				s.escaped = true
			case c == '"':
				s.inString = false
			}
			pos++
			continue
		}
		switch c {
		case '"':
			s.inString = true
		case s.open:
			s.depth++
			s.started = true
		case s.close:
			s.depth--
		}
		pos++
		if s.started && s.depth == 0 {
			buf.consume(pos)
			return true, nil
		}
	}
	buf.consume(pos)
	return false, nil
}

func (s *skipScanner) value() Value { return nil }
