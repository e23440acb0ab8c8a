package assistantv2

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/tjfontaine/watson-assistant/pkg/tagged"
)

// StreamReader splits a captured message stream body into events and
// decodes each one. Both server-sent events ("event:" and "data:" lines,
// blank line terminated) and newline-delimited JSON are accepted.
//
// A StreamReader is not safe for concurrent use.
type StreamReader[T any] struct {
	family  *tagged.Family[T]
	scanner *bufio.Scanner
	event   string
	done    bool

	// pending is an NDJSON line read while an SSE event was still open.
	pending []byte
}

// NewStreamReader reads stateful stream events from r.
func NewStreamReader(r io.Reader) *StreamReader[MessageStreamResponse] {
	return newStreamReader(r, messageStreamResponses)
}

// NewStatelessStreamReader reads stateless stream events from r.
func NewStatelessStreamReader(r io.Reader) *StreamReader[StatelessMessageStreamResponse] {
	return newStreamReader(r, statelessMessageStreamResponses)
}

func newStreamReader[T any](r io.Reader, family *tagged.Family[T]) *StreamReader[T] {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for potentially large final responses
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	return &StreamReader[T]{family: family, scanner: scanner}
}

// Event returns the SSE event name of the last event returned by Next, or
// "" when the stream carries none.
func (s *StreamReader[T]) Event() string { return s.event }

// Next returns the next event. It returns io.EOF after the last one.
func (s *StreamReader[T]) Next() (T, error) {
	var zero T

	data, err := s.nextData()
	if err != nil {
		return zero, err
	}
	v, err := s.family.Decode(data)
	if err != nil {
		return zero, err
	}
	return v, nil
}

// All reads the remaining events.
func (s *StreamReader[T]) All() ([]T, error) {
	var out []T
	for {
		v, err := s.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}

// nextData returns the payload of the next event. Multiple data lines of one
// event are joined with newlines.
func (s *StreamReader[T]) nextData() ([]byte, error) {
	if s.pending != nil {
		data := s.pending
		s.pending = nil
		s.event = ""
		return data, nil
	}
	if s.done {
		return nil, io.EOF
	}

	var (
		data    []byte
		hasData bool
		event   string
	)
	for s.scanner.Scan() {
		line := bytes.TrimRight(s.scanner.Bytes(), "\r")

		switch {
		case len(line) == 0:
			if hasData {
				s.event = event
				return data, nil
			}
			event = ""
		case line[0] == ':':
			// comment
		case bytes.HasPrefix(line, []byte("event:")):
			event = string(bytes.TrimSpace(line[len("event:"):]))
		case bytes.HasPrefix(line, []byte("data:")):
			payload := bytes.TrimPrefix(line[len("data:"):], []byte(" "))
			if hasData {
				data = append(data, '\n')
			}
			data = append(data, payload...)
			hasData = true
		case line[0] == '{':
			if hasData {
				s.pending = append([]byte(nil), line...)
				s.event = event
				return data, nil
			}
			s.event = ""
			return append([]byte(nil), line...), nil
		}
	}
	s.done = true

	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("stream read error: %w", err)
	}
	if hasData {
		s.event = event
		return data, nil
	}
	return nil, io.EOF
}
