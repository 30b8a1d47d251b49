package payload

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrTypeMismatch is returned when a payload's stored value has a different
// dynamic type than the one the caller asserted against.
var ErrTypeMismatch = errors.New("payload type mismatch")

// Payload holds exactly one captured value of any type.
// The zero value is not useful; construct with New.
type Payload struct {
	value any
}

// New wraps a value in a Payload. The value's dynamic type is preserved for
// later exact-type recovery.
func New(v any) *Payload {
	return &Payload{value: v}
}

// Value returns the stored value without any type check.
// Assertion code should prefer Recover or Equal.
func (p *Payload) Value() any {
	return p.value
}

// Type returns the dynamic type of the stored value.
// Returns nil if the stored value is an untyped nil.
func (p *Payload) Type() reflect.Type {
	return reflect.TypeOf(p.value)
}

// TypeName returns a human-readable name for the stored value's type,
// for use in failure messages.
func (p *Payload) TypeName() string {
	t := reflect.TypeOf(p.value)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// Equal reports whether the stored value equals expected.
// The dynamic types must match exactly; a type difference is reported as an
// ErrTypeMismatch error rather than a silent false. Values of matching type
// are compared with reflect.DeepEqual.
func (p *Payload) Equal(expected any) (bool, error) {
	st, et := reflect.TypeOf(p.value), reflect.TypeOf(expected)
	if st != et {
		return false, fmt.Errorf("%w: logged %s, asserted %s", ErrTypeMismatch, p.TypeName(), typeName(et))
	}
	return reflect.DeepEqual(p.value, expected), nil
}

// Recover returns the stored value as type T.
// Fails with ErrTypeMismatch if the stored dynamic type is not exactly T.
func Recover[T any](p *Payload) (T, error) {
	v, ok := p.value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: logged %s, asserted %s",
			ErrTypeMismatch, p.TypeName(), reflect.TypeOf((*T)(nil)).Elem().String())
	}
	return v, nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
