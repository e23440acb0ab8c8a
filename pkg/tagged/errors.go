package tagged

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DecodeError reports a payload whose structure is incompatible with the
// declared shape of a family: the payload is not an object, or a required
// base field holds the wrong kind of JSON value. Retrying the same bytes
// reproduces it.
type DecodeError struct {
	// Family is the name of the family being decoded.
	Family string

	// Field is the dotted path of the offending field, relative to the
	// outermost value that was decoded. Empty when the value itself is wrong.
	Field string

	Expected Kind
	Actual   Kind
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode %s: expected %s, got %s", e.Family, e.Expected, e.Actual)
	}
	return fmt.Sprintf("decode %s: field %s: expected %s, got %s", e.Family, e.Field, e.Expected, e.Actual)
}

// At prefixes the field path of a *DecodeError with path. Other errors are
// returned unchanged. Index segments such as "[2]" attach without a dot.
func At(path string, err error) error {
	var de *DecodeError
	if !errors.As(err, &de) {
		return err
	}

	out := *de
	switch {
	case out.Field == "":
		out.Field = path
	case strings.HasPrefix(out.Field, "["):
		out.Field = path + out.Field
	default:
		out.Field = path + "." + out.Field
	}
	return &out
}

// Partial reports whether err from json.Unmarshal left a usable value behind.
// encoding/json skips a field whose JSON kind does not fit and keeps
// decoding, so containers holding family members can finish decoding them
// before returning err.
func Partial(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}

// Extra is embedded in base shapes. When a payload matches no registered
// variant the decoder stores the payload here so callers can still look at
// members introduced after this client was built.
type Extra struct {
	raw json.RawMessage
}

// RawJSON returns the undecoded payload of an unrecognized member, or nil.
func (e *Extra) RawJSON() json.RawMessage { return e.raw }

// CloneExtra returns a copy of e that shares no memory with it. Deep-copy
// helpers that skip unexported fields use it to keep the payload.
func CloneExtra(e Extra) Extra { return Extra{raw: bytes.Clone(e.raw)} }

func (e *Extra) setRaw(raw json.RawMessage) { e.raw = raw }

type rawSetter interface {
	setRaw(json.RawMessage)
}
