package assistantv2

import (
	"fmt"
	"maps"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/copystructure"

	"github.com/tjfontaine/watson-assistant/pkg/tagged"
)

// ValidationReason says why a required field was rejected.
type ValidationReason string

const (
	// ReasonMissing means the field was never supplied.
	ReasonMissing ValidationReason = "missing"

	// ReasonEmpty means a required string was supplied with zero length.
	ReasonEmpty ValidationReason = "empty"
)

// ValidationError reports a required field that is absent at build time.
// It is always a caller mistake and is never worth retrying.
type ValidationError struct {
	// Model is the type being built, e.g. "AssistantSkill".
	Model string

	// Field is the JSON name of the rejected field.
	Field string

	Reason ValidationReason
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s is %s", e.Model, e.Field, e.Reason)
}

// Validator is implemented by every model and options type that has
// required fields.
type Validator interface {
	Validate() error
}

// Build validates v and returns an independent deep copy of it.
func Build[T any, P interface {
	*T
	Validator
}](v T) (*T, error) {
	if err := P(&v).Validate(); err != nil {
		return nil, err
	}
	return clone(&v)
}

// Rebuild seeds a new value from existing, applies overrides in order and
// validates the result. existing is left untouched. With no overrides the
// result is field-wise equal to existing.
func Rebuild[T any, P interface {
	*T
	Validator
}](existing *T, overrides ...func(*T)) (*T, error) {
	out, err := clone(existing)
	if err != nil {
		return nil, err
	}
	for _, override := range overrides {
		override(out)
	}
	if err := P(out).Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Ptr returns a pointer to v, for optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// copier keeps the raw payload of members that fell back to a base shape;
// copystructure does not copy unexported fields.
var copier = copystructure.Config{Copiers: extraCopiers()}

func extraCopiers() map[reflect.Type]copystructure.CopierFunc {
	m := maps.Clone(copystructure.Copiers)
	m[reflect.TypeOf(tagged.Extra{})] = func(v any) (any, error) {
		return tagged.CloneExtra(v.(tagged.Extra)), nil
	}
	return m
}

func clone[T any](v *T) (*T, error) {
	if v == nil {
		return new(T), nil
	}
	c, err := copier.Copy(v)
	if err != nil {
		return nil, fmt.Errorf("copy %T: %w", v, err)
	}
	return c.(*T), nil
}

type rule struct {
	field    string
	value    any
	nonEmpty bool
}

// present requires value to be supplied. Go strings have no null state, so
// a zero-length string is reported as empty rather than missing.
func present(field string, value any) rule {
	return rule{field: field, value: value}
}

// nonEmpty requires a string with at least one character; used for path
// parameters.
func nonEmpty(field, value string) rule {
	return rule{field: field, value: value, nonEmpty: true}
}

func validate(model string, rules ...rule) error {
	for _, r := range rules {
		if r.nonEmpty {
			if validation.Required.Validate(r.value) != nil {
				return &ValidationError{Model: model, Field: r.field, Reason: ReasonEmpty}
			}
			continue
		}

		if validation.NotNil.Validate(r.value) != nil {
			return &ValidationError{Model: model, Field: r.field, Reason: ReasonMissing}
		}
		if _, isString := r.value.(string); isString && validation.Required.Validate(r.value) != nil {
			return &ValidationError{Model: model, Field: r.field, Reason: ReasonEmpty}
		}
	}
	return nil
}
