package pathjson

import (
	"regexp"
	"strings"

	"github.com/jacoelho-labs/pathjson/perrors"
)

// patternKind classifies a compiled Pattern.
type patternKind uint8

const (
	patternExact patternKind = iota
	patternArrayWildcard
	patternObjectWildcard
)

// Pattern is one compiled JSONPath pattern from a restricted grammar:
//
//	Pattern := '$' Segment*
//	Segment := '.' Ident | '[*]' | ('.*' only as final segment)
//	Ident   := any run of characters not containing '.' or '['
//
// Array indices, filters, slices, unions, and recursive descent ('..',
// '**') are not part of this grammar. A syntactically valid but
// unsupported form such as "$.users[0]" is accepted as an Exact pattern
// and will only ever match the literal path "$.users[0]" — this package
// never rejects a pattern for "meaning nothing more than its literal
// text", only for the two hard errors below.
//
// This Pattern intentionally has no selector interface the way a full
// RFC 9535 engine would: the grammar it serves has exactly three
// shapes, so a closed patternKind enum plus a literal base prefix is
// the whole matcher, and the tie-break rules below are pure
// string-prefix comparisons, not a per-selector match method.
type Pattern struct {
	raw   string
	kind  patternKind
	base  string         // the immutable prefix
	arrRe *regexp.Regexp // array-wildcard form only: ^base\[\d+\]$
}

// String returns the original pattern text.
func (p Pattern) String() string { return p.raw }

// NewPattern parses and classifies a single pattern string. It fails
// with a Config error if s is empty or contains "**".
func NewPattern(s string) (Pattern, error) {
	if s == "" {
		return Pattern{}, perrors.New(perrors.Config, "", "pattern must not be empty")
	}
	if strings.Contains(s, "**") {
		return Pattern{}, perrors.New(perrors.Config, "", "pattern %q must not contain '**'", s)
	}

	switch {
	case strings.HasSuffix(s, "[*]"):
		base := strings.TrimSuffix(s, "[*]")
		return Pattern{
			raw:   s,
			kind:  patternArrayWildcard,
			base:  base,
			arrRe: regexp.MustCompile("^" + regexp.QuoteMeta(base) + `\[\d+\]$`),
		}, nil
	case strings.HasSuffix(s, ".*"):
		base := strings.TrimSuffix(s, ".*")
		return Pattern{
			raw:  s,
			kind: patternObjectWildcard,
			base: base,
		}, nil
	default:
		return Pattern{raw: s, kind: patternExact, base: s}, nil
	}
}

// Match reports whether path falls in the set this pattern matches:
//
//   - Exact matches only the literal pattern text.
//   - Array wildcard "$prefix[*]" matches any "prefix[<digits>]".
//   - Object wildcard "$prefix.*" matches "prefix.<segment>" for a
//     segment containing neither '.' nor '['.
func (p Pattern) Match(path string) bool {
	switch p.kind {
	case patternExact:
		return path == p.base
	case patternArrayWildcard:
		return p.arrRe.MatchString(path)
	case patternObjectWildcard:
		rest, ok := strings.CutPrefix(path, p.base+".")
		if !ok {
			return false
		}
		return !strings.ContainsAny(rest, ".[")
	default:
		return false
	}
}

// IsAncestorOrMatch reports whether path is a (non-strict) ancestor of
// any path this pattern could match — i.e. path == some matched path,
// or the pattern's base prefix begins with path followed by '.', '[',
// or end of string. Ancestry is pure string-prefix comparison on the
// base path.
func (p Pattern) IsAncestorOrMatch(path string) bool {
	if p.Match(path) {
		return true
	}
	rest, ok := strings.CutPrefix(p.base, path)
	if !ok {
		return false
	}
	return rest == "" || rest[0] == '.' || rest[0] == '['
}

// HasMatchingDescendants reports whether some path strictly below path
// could still match: IsAncestorOrMatch(path) && !Match(path).
func (p Pattern) HasMatchingDescendants(path string) bool {
	return p.IsAncestorOrMatch(path) && !p.Match(path)
}

// Patterns is an immutable, ordered set of compiled patterns.
type Patterns struct {
	list []Pattern
}

// NewPatterns compiles a list of pattern strings. Construction fails
// with a Config error if the list is empty or any element fails
// NewPattern.
func NewPatterns(raw []string) (Patterns, error) {
	if len(raw) == 0 {
		return Patterns{}, perrors.New(perrors.Config, "", "pattern list must not be empty")
	}
	list := make([]Pattern, 0, len(raw))
	for _, s := range raw {
		p, err := NewPattern(s)
		if err != nil {
			return Patterns{}, err
		}
		list = append(list, p)
	}
	return Patterns{list: list}, nil
}

// Match reports whether any pattern in the set matches path.
func (ps Patterns) Match(path string) bool {
	for _, p := range ps.list {
		if p.Match(path) {
			return true
		}
	}
	return false
}

// HasMatchingDescendants reports whether any pattern in the set could
// still match something strictly below path.
func (ps Patterns) HasMatchingDescendants(path string) bool {
	for _, p := range ps.list {
		if p.HasMatchingDescendants(path) {
			return true
		}
	}
	return false
}

// String renders the set as a comma-separated list of pattern texts,
// for log messages.
func (ps Patterns) String() string {
	parts := make([]string, len(ps.list))
	for i, p := range ps.list {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}
