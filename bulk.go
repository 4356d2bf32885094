package pathjson

import (
	"bytes"
	"encoding/json"

	"github.com/jacoelho-labs/pathjson/perrors"
)

// bulkScanner handles a path whose pattern matches exactly, but which
// has no pattern matching anything strictly below it, so there is no
// reason to pay for incremental descent. It scans byte-by-byte,
// tracking only bracket depth and whether it is inside a string, until
// the matching close bracket is found, then decodes the whole captured
// span in one shot with the host's JSON decoder and emits a single
// (path, value) pair.
//
// The scan position and depth/string state persist across advance
// calls in scanPos/depth/inString/escaped, so a span split across
// multiple pushed chunks resumes exactly where the previous call left
// off instead of re-scanning (and re-counting) bytes already seen.
type bulkScanner struct {
	path  Path
	emit  emitter
	open  byte
	close byte

	scanPos  int
	depth    int
	started  bool
	inString bool
	escaped  bool

	val Value
}

func newBulkScanner(path Path, emit emitter, open, close byte) node {
	return &bulkScanner{path: path, emit: emit, open: open, close: close}
}

func (s *bulkScanner) advance(buf *buffer, _ bool) (bool, error) {
	w := buf.window()
	pos, done := s.scan(w)
	s.scanPos = pos
	if !done {
		return false, nil
	}
	raw := w[:pos]
	v, err := decodeJSON(raw)
	if err != nil {
		return false, perrors.Wrap(perrors.Lexical, s.path.String(), err)
	}
	buf.consume(pos)
	s.val = v
	s.emit(s.path, v)
	return true, nil
}

// scan resumes the bracket-depth/string-awareness state machine from
// scanPos and reports the index just past the matching close bracket,
// or false if w runs out first.
func (s *bulkScanner) scan(w []byte) (int, bool) {
	pos := s.scanPos
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
			return pos, true
		}
	}
	return pos, false
}

func (s *bulkScanner) value() Value { return s.val }

// decodeJSON decodes a self-contained JSON object or array literal into
// this package's Value representation, preserving object member order
// with Object rather than collapsing it into an unordered map the way
// json.Unmarshal(raw, &any{}) would.
//
// Recursing over the decoder's own Token stream (rather than a single
// json.Unmarshal into interface{}) is what makes the order preservation
// possible: encoding/json's tokenizer visits object keys in document
// order and Object.Set records that order as each key arrives.
func decodeJSON(raw []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				val, err := decodeNext(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(keyTok.(string), val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		case '[':
			arr := Array{}
			for dec.More() {
				val, err := decodeNext(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return arr, nil
		}
		return nil, nil
	case json.Number:
		return t.Float64()
	default:
		return tok, nil // string, bool, nil decode natively via json.Token
	}
}

func decodeNext(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}
