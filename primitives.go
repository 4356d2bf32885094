package pathjson

import (
	"encoding/json"
	"regexp"
	"strconv"

	"github.com/jacoelho-labs/pathjson/perrors"
)

// stringLexeme matches a complete JSON string token, including its
// surrounding quotes: any run of characters that are neither '"' nor
// '\', or a backslash-escaped pair, repeated.
var stringLexeme = regexp.MustCompile(`^"([^"\\]|\\.)*"`)

// stringReader parses a JSON string in a resumable way. On completion
// it decodes the lexeme with the host's JSON string decoding
// (encoding/json) so \uXXXX escapes and surrogate pairs resolve exactly
// as the JSON spec requires, then emits (path, value).
type stringReader struct {
	path Path
	emit emitter
	val  string
}

func (r *stringReader) advance(buf *buffer, _ bool) (bool, error) {
	lexeme, ok := buf.consumeUntilMatch(stringLexeme)
	if !ok {
		if hasBadEscape(buf.window()) {
			return false, perrors.New(perrors.Lexical, r.path.String(), "invalid string escape")
		}
		return false, nil
	}
	var s string
	if err := json.Unmarshal(lexeme, &s); err != nil {
		return false, perrors.Wrap(perrors.Lexical, r.path.String(), err)
	}
	r.val = s
	r.emit(r.path, r.val)
	return true, nil
}

func (r *stringReader) value() Value { return r.val }

// hasBadEscape gives a precise diagnostic once a string clearly
// contains a disallowed escape character, rather than waiting forever
// for a lexeme that can never complete. A lone trailing backslash is
// left alone: it might be an escape sequence that just hasn't finished
// arriving yet.
func hasBadEscape(window []byte) bool {
	if len(window) == 0 || window[0] != '"' {
		return false
	}
	for i := 1; i < len(window); i++ {
		if window[i] != '\\' {
			continue
		}
		if i+1 >= len(window) {
			return false
		}
		if !isValidEscapeChar(window[i+1]) {
			return true
		}
		i++
	}
	return false
}

func isValidEscapeChar(c byte) bool {
	switch c {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
		return true
	default:
		return false
	}
}

func isTerminator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ',', '}', ']':
		return true
	default:
		return false
	}
}

// numberReader parses a JSON number with a resumable character-by-
// character state machine, run over whatever prefix of the number has
// arrived so far. It distinguishes "might still grow" from "this is
// genuinely the end of input" via the final flag rather than blocking
// for more bytes.
type numberReader struct {
	path Path
	emit emitter
	val  float64
}

const (
	numBegin = iota
	numSign
	numLeadingZero
	numAnyDigit1
	numDecimal
	numAnyDigit2
	numExponent
	numExpSign
	numAnyDigit3
)

func (r *numberReader) advance(buf *buffer, final bool) (bool, error) {
	w := buf.window()
	state := numBegin
	pos := 0
	for pos < len(w) {
		c := w[pos]
		switch state {
		case numBegin:
			if c == '-' {
				state = numSign
				pos++
				continue
			}
			fallthrough
		case numSign:
			switch {
			case c == '0':
				state = numLeadingZero
			case c >= '1' && c <= '9':
				state = numAnyDigit1
			default:
				return false, perrors.New(perrors.Lexical, r.path.String(), "invalid number")
			}
		case numAnyDigit1:
			if c >= '0' && c <= '9' {
				break
			}
			fallthrough
		case numLeadingZero:
			switch c {
			case '.':
				state = numDecimal
			case 'e', 'E':
				state = numExponent
			default:
				return r.finish(buf, w, pos)
			}
		case numDecimal:
			if c < '0' || c > '9' {
				return false, perrors.New(perrors.Lexical, r.path.String(), "invalid number: expected digit after '.'")
			}
			state = numAnyDigit2
		case numAnyDigit2:
			switch {
			case c >= '0' && c <= '9':
			case c == 'e' || c == 'E':
				state = numExponent
			default:
				return r.finish(buf, w, pos)
			}
		case numExponent:
			if c == '+' || c == '-' {
				state = numExpSign
				pos++
				continue
			}
			fallthrough
		case numExpSign:
			if c < '0' || c > '9' {
				return false, perrors.New(perrors.Lexical, r.path.String(), "invalid number: expected digit in exponent")
			}
			state = numAnyDigit3
		case numAnyDigit3:
			if c < '0' || c > '9' {
				return r.finish(buf, w, pos)
			}
		}
		pos++
	}

	switch state {
	case numLeadingZero, numAnyDigit1, numAnyDigit2, numAnyDigit3:
		if !final {
			return false, nil // might still be growing, e.g. "12" before "3" arrives
		}
		return r.finish(buf, w, pos)
	default:
		if !final {
			return false, nil
		}
		return false, perrors.New(perrors.Lexical, r.path.String(), "incomplete number %q", w)
	}
}

func (r *numberReader) finish(buf *buffer, w []byte, pos int) (bool, error) {
	if pos < len(w) && !isTerminator(w[pos]) {
		return false, perrors.New(perrors.Lexical, r.path.String(),
			"invalid number: unexpected character %q after %q", w[pos], w[:pos])
	}
	f, err := strconv.ParseFloat(string(w[:pos]), 64)
	if err != nil {
		return false, perrors.Wrap(perrors.Lexical, r.path.String(), err)
	}
	buf.consume(pos)
	r.val = f
	r.emit(r.path, r.val)
	return true, nil
}

func (r *numberReader) value() Value { return r.val }

// literalReader parses "true", "false", or "null" with the same
// terminator-lookahead discipline as numberReader.
type literalReader struct {
	path Path
	emit emitter
	text string
	val  Value
}

func newLiteralReader(path Path, emit emitter, text string, val Value) *literalReader {
	return &literalReader{path: path, emit: emit, text: text, val: val}
}

func (r *literalReader) advance(buf *buffer, final bool) (bool, error) {
	w := buf.window()
	n := len(r.text)
	if len(w) < n {
		if string(w) != r.text[:len(w)] {
			return false, perrors.New(perrors.Lexical, r.path.String(), "invalid literal, expected %q", r.text)
		}
		if final {
			return false, perrors.New(perrors.Lexical, r.path.String(), "incomplete literal, expected %q", r.text)
		}
		return false, nil
	}
	if string(w[:n]) != r.text {
		return false, perrors.New(perrors.Lexical, r.path.String(), "invalid literal, expected %q", r.text)
	}
	if n == len(w) {
		if !final {
			return false, nil
		}
	} else if !isTerminator(w[n]) {
		return false, perrors.New(perrors.Structure, r.path.String(),
			"unexpected character %q after %q", w[n], r.text)
	}
	buf.consume(n)
	r.emit(r.path, r.val)
	return true, nil
}

func (r *literalReader) value() Value { return r.val }
