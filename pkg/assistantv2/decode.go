package assistantv2

import (
	"encoding/json"
	"fmt"

	"github.com/tjfontaine/watson-assistant/pkg/tagged"
)

// partial remembers the first recoverable error seen while decoding a
// container so it can be returned after the rest of the container decoded,
// matching encoding/json.
type partial struct {
	err error
}

// keep returns err when decoding must stop and records it otherwise.
func (p *partial) keep(err error) error {
	if err == nil {
		return nil
	}
	if !tagged.Partial(err) {
		return err
	}
	if p.err == nil {
		p.err = err
	}
	return nil
}

func decodeMember[T any](f *tagged.Family[T], field string, raw json.RawMessage, dst *T) error {
	if raw == nil {
		return nil
	}
	v, err := f.Decode(raw)
	if err != nil {
		return tagged.At(field, err)
	}
	*dst = v
	return nil
}

func decodeMembers[T any](f *tagged.Family[T], field string, raw json.RawMessage, dst *[]T) error {
	if raw == nil {
		return nil
	}
	v, err := f.DecodeList(raw)
	if err != nil {
		return tagged.At(field, err)
	}
	*dst = v
	return nil
}

// decodeField unmarshals a nested container, prefixing decode errors with
// field.
func decodeField(field string, raw json.RawMessage, dst any) error {
	if raw == nil {
		return nil
	}
	return tagged.At(field, json.Unmarshal(raw, dst))
}

// decodeElems unmarshals a JSON array element by element so decode errors
// carry the element index.
func decodeElems[T any](field string, raw json.RawMessage, dst *[]T) error {
	if raw == nil {
		return nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(raw, &raws); err != nil {
		return err
	}
	if raws == nil {
		*dst = nil
		return nil
	}

	out := make([]T, len(raws))
	var p partial
	for i, r := range raws {
		if err := p.keep(json.Unmarshal(r, &out[i])); err != nil {
			return tagged.At(fmt.Sprintf("%s[%d]", field, i), err)
		}
	}
	*dst = out
	return p.err
}
