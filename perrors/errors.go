// Package perrors defines the error kinds pathjson can raise and wraps
// them with github.com/pkg/errors so a stack trace is captured at the
// point of failure, the same way github.com/inngest/inngest's pkg/ tree
// does for its own internal errors.
package perrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why parsing failed.
type Kind string

const (
	// Config marks an invalid pattern list supplied at construction time.
	Config Kind = "config"
	// Structure marks malformed JSON structure: unexpected characters,
	// trailing commas, or trailing data after the root value.
	Structure Kind = "structure"
	// Lexical marks an invalid primitive lexeme: a bad number, a bad
	// escape sequence, or an unterminated string.
	Lexical Kind = "lexical"
	// Incomplete marks end-of-input reached with an unfinished
	// structure, or an empty/whitespace-only input.
	Incomplete Kind = "incomplete"
)

// Error is the single error type pathjson returns. It is fail-fast: the
// first Error produced by any component is terminal for its Engine.
type Error struct {
	Kind Kind
	// Path is the current path of the node that failed, when known.
	// Bulk scanners may leave this empty.
	Path string
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (at %s)", e.Kind, e.msg, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Unwrap exposes the wrapped cause, if any, so errors.Is/As reach
// through to e.g. a json.SyntaxError from the bulk decode step.
func (e *Error) Unwrap() error { return e.err }

// Of reports the Kind of err and whether err is (or wraps) a *Error at
// all, so callers can branch on category without string matching:
//
//	if kind, ok := perrors.Of(err); ok && kind == perrors.Incomplete { ... }
func Of(err error) (Kind, bool) {
	var pe *Error
	if !errors.As(err, &pe) {
		return "", false
	}
	return pe.Kind, true
}

// New builds a new Error of the given Kind at the given path, capturing
// a stack trace via github.com/pkg/errors.
func New(kind Kind, path, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{
		Kind: kind,
		Path: path,
		msg:  msg,
		err:  errors.New(msg),
	}
}

// Wrap attaches a Kind and path to an existing error, preserving it as
// the Unwrap cause.
func Wrap(kind Kind, path string, cause error) *Error {
	if cause == nil {
		return nil
	}
	return &Error{
		Kind: kind,
		Path: path,
		msg:  cause.Error(),
		err:  errors.WithStack(cause),
	}
}
