package pathjson

import (
	"log/slog"

	"github.com/jacoelho-labs/pathjson/perrors"
)

// EmitFunc receives one matched (path, value) pair, path already
// rendered as a string.
type EmitFunc func(path string, value Value)

// Engine drives one push-parse session end to end: it owns the byte
// buffer, the root node, and the single filtering emitter every node in
// the tree calls into. It is not safe for concurrent use — one
// goroutine pushes chunks and calls Finalize, in order.
type Engine struct {
	patterns  Patterns
	userEmit  EmitFunc
	buf       buffer
	factory   *factory
	root      node
	rootDone  bool
	err       error
	finalized bool

	metrics MetricsRecorder
	logger  *slog.Logger
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithMetrics attaches a MetricsRecorder. The default records nothing.
func WithMetrics(m MetricsRecorder) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithLogger attaches a structured logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine builds an Engine for the given pattern set. emit is called
// synchronously, in path order, for every value matching one of
// patterns, as soon as enough bytes have arrived to decode it.
func NewEngine(patterns Patterns, emit EmitFunc, opts ...Option) *Engine {
	e := &Engine{
		patterns: patterns,
		userEmit: emit,
		metrics:  noopMetrics{},
		logger:   slog.Default(),
	}
	e.factory = &factory{patterns: &e.patterns, emit: e.filteredEmit}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// filteredEmit is the single chokepoint every node in the tree calls
// into. It is the only place that checks a value's path against the
// pattern set before handing it to the caller's callback — nodes
// upstream of it never need to re-derive that decision.
func (e *Engine) filteredEmit(path Path, v Value) {
	if !e.patterns.Match(path.String()) {
		return
	}
	e.metrics.ValueEmitted()
	e.logger.Debug("value emitted", "path", path.String())
	e.userEmit(path.String(), v)
}

// Push feeds the next chunk of raw input bytes into the session,
// decoding and emitting as many complete matches as the buffered data
// allows before returning. It never blocks waiting for more data: on
// an incomplete lexeme or subtree it simply returns, holding whatever
// partial state it has, to be resumed on the next Push or on Finalize.
// Calling Push after a prior call returned an error returns that same
// sticky error; calling it after a successful Finalize returns a Config
// error without changing the result Finalize reports.
func (e *Engine) Push(chunk []byte) error {
	if e.err != nil {
		return e.err
	}
	if e.finalized {
		return perrors.New(perrors.Config, "", "Push called after Finalize")
	}
	e.metrics.BytesPushed(len(chunk))
	e.buf.push(chunk)
	return e.drive(false)
}

// Finalize signals end of input and drives any remaining resumable
// state to completion, committing a bare top-level scalar that has no
// structural terminator after it. It is idempotent: calling it more
// than once returns the error (or nil) recorded by the first call
// without re-driving anything.
func (e *Engine) Finalize() error {
	if e.finalized {
		return e.err
	}
	e.finalized = true
	if e.err != nil {
		return e.err
	}
	if err := e.drive(true); err != nil {
		return err
	}
	e.buf.consumeWhitespace()
	if e.root == nil {
		return e.fail(perrors.New(perrors.Incomplete, "", "no value was parsed"))
	}
	if !e.rootDone {
		return e.fail(perrors.New(perrors.Incomplete, "", "structure not closed"))
	}
	if !e.buf.empty() {
		return e.fail(perrors.New(perrors.Structure, "", "unexpected trailing data after top-level value"))
	}
	return nil
}

// drive advances the root node (creating it lazily from whatever the
// first non-whitespace byte turns out to be) until either it completes,
// it needs more data than the buffer currently holds, or it errors. A
// root that has already completed is not advanced again, so any bytes
// after it stay in the buffer for Finalize's trailing-data check.
func (e *Engine) drive(final bool) error {
	e.buf.consumeWhitespace()
	if e.rootDone {
		return nil
	}
	if e.root == nil {
		if e.buf.empty() {
			return nil
		}
		root, ok, err := e.factory.createChild(RootPath(), &e.buf)
		if err != nil {
			return e.fail(err)
		}
		if !ok {
			return nil
		}
		e.root = root
	}
	done, err := e.root.advance(&e.buf, final)
	if err != nil {
		return e.fail(err)
	}
	if done {
		e.rootDone = true
	}
	return nil
}

func (e *Engine) fail(err error) error {
	e.metrics.ParseError()
	e.logger.Error("parse failed", "error", err)
	e.err = err
	return err
}
