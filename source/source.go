// Package source adapts external transports into the chunk-pushing
// shape pathjson.Engine expects. pathjson itself never touches an
// io.Reader or a network connection directly, keeping the engine a
// pure state machine over byte slices; this package is where that
// transport plumbing lives.
package source

import (
	"bufio"
	"context"
	"io"

	"github.com/jacoelho-labs/pathjson"
)

// DefaultChunkSize is the read size PushReader uses when the caller
// doesn't override it, matching bufio's own default buffer size.
const DefaultChunkSize = 4096

// PushReader drains r in fixed-size chunks, pushing each one into eng,
// until r is exhausted, then calls Finalize. If ctx is cancelled first
// it returns ctx.Err() without calling Finalize. It is
// the pull-to-push bridge for callers who have a file, an HTTP response
// body, or any other io.Reader instead of a chunk-producing loop of
// their own.
func PushReader(ctx context.Context, eng *pathjson.Engine, r io.Reader, chunkSize int) error {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	buf := make([]byte, chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.Read(buf)
		if n > 0 {
			if pushErr := eng.Push(buf[:n]); pushErr != nil {
				return pushErr
			}
		}
		if err == io.EOF {
			return eng.Finalize()
		}
		if err != nil {
			return err
		}
	}
}

// LineReader drains r one newline-delimited JSON document at a time
// (NDJSON), running a fresh Engine per line and calling onResult for
// every matched pair. It is the streaming counterpart to
// pathjson.Parse for logs and message queues that frame one JSON
// document per line, in the same spirit as a bufio.Scanner-driven
// line loop.
func LineReader(ctx context.Context, patterns pathjson.Patterns, r io.Reader, onResult func(line int, path string, value pathjson.Value)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, DefaultChunkSize), 64<<20)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := lineNo
		eng := pathjson.NewEngine(patterns, func(path string, v pathjson.Value) {
			onResult(line, path, v)
		})
		if err := eng.Push(scanner.Bytes()); err != nil {
			return err
		}
		if err := eng.Finalize(); err != nil {
			return err
		}
	}
	return scanner.Err()
}
