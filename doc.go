// Package pathjson is a push-driven, incremental JSON parser that emits a
// filtered stream of (path, value) pairs as bytes arrive.
//
// Callers push UTF-8 chunks into an Engine as they become available and
// call Finalize once the stream is exhausted. Nothing is buffered beyond
// what is needed to resolve the current lexeme or bracket-matched
// subtree: values that no configured pattern can reach are skipped
// without being materialized, values a pattern matches wholesale are
// captured and decoded in one pass, and everything else is walked
// key-by-key or element-by-element so nested matches can still surface.
//
// See Pattern for the (restricted) JSONPath grammar this package
// understands, and Engine for the push/finalize lifecycle.
package pathjson
