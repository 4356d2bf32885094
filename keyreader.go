package pathjson

import (
	"encoding/json"

	"github.com/jacoelho-labs/pathjson/perrors"
)

// keyReader parses one object member's "key" WS ':'. Unlike primitive
// readers it never calls emit: keys are structural, not values, so they
// never appear as an emitted pair by themselves.
type keyReader struct {
	key string
}

func (r *keyReader) advance(buf *buffer, _ bool) (bool, error) {
	w := buf.window()
	if len(w) == 0 {
		return false, nil
	}
	if w[0] != '"' {
		return false, perrors.New(perrors.Structure, "", "expected object key, got %q", w[0])
	}
	loc := stringLexeme.FindIndex(w)
	if loc == nil {
		if hasBadEscape(w) {
			return false, perrors.New(perrors.Lexical, "", "invalid string escape in object key")
		}
		return false, nil
	}
	end := loc[1]
	i := end
	for i < len(w) && isJSONWhitespace(w[i]) {
		i++
	}
	if i == len(w) {
		return false, nil // not yet known whether ':' follows
	}
	if w[i] != ':' {
		return false, perrors.New(perrors.Structure, "", "expected ':' after object key, got %q", w[i])
	}
	var key string
	if err := json.Unmarshal(w[:end], &key); err != nil {
		return false, perrors.Wrap(perrors.Lexical, "", err)
	}
	buf.consume(i + 1)
	r.key = key
	return true, nil
}

func (r *keyReader) value() Value { return r.key }
