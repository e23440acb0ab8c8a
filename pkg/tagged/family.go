// Package tagged decodes JSON objects whose shape is selected by a
// discriminator.
//
// A Family maps discriminator values to variant constructors. Decoding reads
// the discriminator, unmarshals the payload into the matching variant and
// falls back to the family's base shape when the discriminator is absent or
// names a variant this client does not know about. Neither an unknown
// discriminator nor an unknown extra field is an error: newer server payloads
// must keep decoding in older clients.
//
// Two kinds of families exist:
//   - value families (New) read a named property such as "type" or
//     "response_type" and match its string value;
//   - key families (ByKey) select the first registered marker key present in
//     the object, for payloads like {"partial_item": {...}}.
package tagged

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Family describes one discriminated union whose members implement T.
// Constructors passed to Variant and the base constructor must return
// pointers so the payload can be unmarshaled into them.
//
// A Family is safe for concurrent use. Variants are normally registered from
// package-level variable initializers and only read afterwards.
type Family[T any] struct {
	name  string
	field string
	base  func() T

	mu       sync.RWMutex
	variants map[string]func() T
	markers  []string
	required []requirement
}

type requirement struct {
	field string
	kind  Kind
}

// New creates a value family discriminated by field.
func New[T any](name, field string, base func() T) *Family[T] {
	return &Family[T]{
		name:     name,
		field:    field,
		base:     base,
		variants: make(map[string]func() T),
	}
}

// ByKey creates a key family: the member is chosen by which registered
// marker key is present in the object.
func ByKey[T any](name string, base func() T) *Family[T] {
	return New[T](name, "", base)
}

// Name returns the family name used in errors.
func (f *Family[T]) Name() string { return f.name }

// Field returns the discriminator property, or "" for key families.
func (f *Family[T]) Field() string { return f.field }

// Variant registers ctor for tag. For key families tag is the marker key and
// registration order is match order. Registering a tag twice panics.
func (f *Family[T]) Variant(tag string, ctor func() T) *Family[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, dup := f.variants[tag]; dup {
		panic(fmt.Sprintf("tagged: duplicate variant %q in family %s", tag, f.name))
	}
	f.variants[tag] = ctor
	if f.field == "" {
		f.markers = append(f.markers, tag)
	}
	return f
}

// Require declares a base field that, when present and non-null, must hold a
// JSON value of kind. The discriminator of a value family is always required
// to be a string.
func (f *Family[T]) Require(field string, kind Kind) *Family[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.required = append(f.required, requirement{field: field, kind: kind})
	return f
}

// Tags returns the registered tags: sorted for value families, in match
// order for key families.
func (f *Family[T]) Tags() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.field == "" {
		return append([]string(nil), f.markers...)
	}
	tags := make([]string, 0, len(f.variants))
	for tag := range f.variants {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Tag reports the discriminator value carried by data and whether it names a
// registered variant. An absent discriminator yields "", false.
func (f *Family[T]) Tag(data []byte) (string, bool, error) {
	obj, err := f.object(data)
	if err != nil || obj == nil {
		return "", false, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.resolve(obj)
}

// Decode unmarshals data into the variant selected by its discriminator. A
// JSON null decodes to the zero T.
//
// Type mismatches in optional fields leave those fields unset; only the
// discriminator and fields declared with Require produce a *DecodeError.
func (f *Family[T]) Decode(data []byte) (T, error) {
	var zero T

	obj, err := f.object(data)
	if err != nil || obj == nil {
		return zero, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, req := range f.required {
		raw, ok := obj[req.field]
		if !ok {
			continue
		}
		if k := KindOf(raw); k != KindNull && k != req.kind {
			return zero, &DecodeError{Family: f.name, Field: req.field, Expected: req.kind, Actual: k}
		}
	}

	tag, known, err := f.resolve(obj)
	if err != nil {
		return zero, err
	}

	ctor := f.base
	if known {
		ctor = f.variants[tag]
	}
	v := ctor()

	if err := json.Unmarshal(data, any(v)); err != nil {
		var decodeErr *DecodeError
		switch {
		case errors.As(err, &decodeErr):
			return zero, err
		case !Partial(err):
			return zero, fmt.Errorf("tagged: decode %s: %w", f.name, err)
		}
	}

	if !known {
		if h, ok := any(v).(rawSetter); ok {
			h.setRaw(append(json.RawMessage(nil), data...))
		}
	}
	return v, nil
}

// DecodeObject decodes a generic key/value structure, such as one produced by
// unmarshaling into map[string]any.
func (f *Family[T]) DecodeObject(obj map[string]any) (T, error) {
	if obj == nil {
		var zero T
		return zero, nil
	}
	data, err := json.Marshal(obj)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("tagged: encode %s object: %w", f.name, err)
	}
	return f.Decode(data)
}

// DecodeList decodes a JSON array of family members. Errors carry the
// element index in their field path.
func (f *Family[T]) DecodeList(data []byte) ([]T, error) {
	switch k := KindOf(data); k {
	case KindNull:
		return nil, nil
	case KindArray:
	default:
		return nil, &DecodeError{Family: f.name, Expected: KindArray, Actual: k}
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("tagged: decode %s list: %w", f.name, err)
	}

	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		v, err := f.Decode(raw)
		if err != nil {
			return nil, At(fmt.Sprintf("[%d]", i), err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *Family[T]) object(data []byte) (map[string]json.RawMessage, error) {
	switch k := KindOf(data); k {
	case KindNull:
		return nil, nil
	case KindObject:
	default:
		return nil, &DecodeError{Family: f.name, Expected: KindObject, Actual: k}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("tagged: decode %s: %w", f.name, err)
	}
	return obj, nil
}

// resolve must be called with f.mu held for reading.
func (f *Family[T]) resolve(obj map[string]json.RawMessage) (string, bool, error) {
	if f.field == "" {
		for _, key := range f.markers {
			if raw, ok := obj[key]; ok && KindOf(raw) != KindNull {
				return key, true, nil
			}
		}
		return "", false, nil
	}

	raw, ok := obj[f.field]
	if !ok {
		return "", false, nil
	}
	switch k := KindOf(raw); k {
	case KindNull:
		return "", false, nil
	case KindString:
	default:
		return "", false, &DecodeError{Family: f.name, Field: f.field, Expected: KindString, Actual: k}
	}

	var tag string
	if err := json.Unmarshal(raw, &tag); err != nil {
		return "", false, fmt.Errorf("tagged: decode %s discriminator: %w", f.name, err)
	}
	_, known := f.variants[tag]
	return tag, known, nil
}

// Kind is the kind of a JSON value.
type Kind string

const (
	KindNull   Kind = "null"
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindObject Kind = "object"
	KindArray  Kind = "array"
)

// KindOf reports the kind of the JSON value in raw. Empty input is null.
func KindOf(raw []byte) Kind {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	if len(raw) == 0 {
		return KindNull
	}
	switch raw[0] {
	case '"':
		return KindString
	case '{':
		return KindObject
	case '[':
		return KindArray
	case 't', 'f':
		return KindBool
	case 'n':
		return KindNull
	default:
		return KindNumber
	}
}
