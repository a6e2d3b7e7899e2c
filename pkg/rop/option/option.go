package option

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ib-77/fallible/pkg/rop"
)

// UnwrapMessage is the message of the error returned by Unwrap on an absent
// Optional.
const UnwrapMessage = "attempted to unwrap an option but it is none"

// Optional holds either exactly one value of type T or nothing. The zero
// value is absent. Optionals are immutable; every combinator returns a new
// one.
type Optional[T any] struct {
	present bool
	value   T
}

func Present[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsAbsent() bool {
	return !o.present
}

// IsPresentAnd returns pred(v) when present, false otherwise.
func (o Optional[T]) IsPresentAnd(pred func(v T) bool) bool {
	if o.present {
		return pred(o.value)
	}
	return false
}

// IsAbsentOr returns pred(v) when present, true otherwise.
func (o Optional[T]) IsAbsentOr(pred func(v T) bool) bool {
	if o.present {
		return pred(o.value)
	}
	return true
}

func (o Optional[T]) Inspect(fn func(v T)) {
	if o.present {
		fn(o.value)
	}
}

// Get returns the payload and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Expect returns the payload, or an *rop.UnwrapError wrapping the error made
// by errorFactory. errorFactory is only called when o is absent.
func (o Optional[T]) Expect(errorFactory func() error) (T, error) {
	if o.present {
		return o.value, nil
	}
	var zero T
	if errorFactory == nil {
		return zero, rop.NewUnwrapError(UnwrapMessage)
	}
	if err := errorFactory(); err != nil {
		return zero, rop.WrapUnwrapError(err)
	}
	return zero, rop.NewUnwrapError(UnwrapMessage)
}

func (o Optional[T]) ExpectMessage(message string) (T, error) {
	if o.present {
		return o.value, nil
	}
	var zero T
	return zero, rop.NewUnwrapError(message)
}

func (o Optional[T]) Unwrap() (T, error) {
	return o.ExpectMessage(UnwrapMessage)
}

// MustUnwrap returns the payload or panics with the error Unwrap would
// return.
func (o Optional[T]) MustUnwrap() T {
	v, err := o.Unwrap()
	if err != nil {
		panic(err)
	}
	return v
}

// UnwrapOr returns the payload or fallback. The fallback is evaluated by the
// caller regardless of the branch taken; use UnwrapOrElse to defer it.
func (o Optional[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

func (o Optional[T]) UnwrapOrDefault() T {
	if o.present {
		return o.value
	}
	var zero T
	return zero
}

func (o Optional[T]) UnwrapOrElse(fallback func() T) T {
	if o.present {
		return o.value
	}
	return fallback()
}

// And returns other when o is present and o (absent) otherwise.
func (o Optional[T]) And(other Optional[T]) Optional[T] {
	if o.present {
		return other
	}
	return o
}

// Or returns o when present and other otherwise.
func (o Optional[T]) Or(other Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return other
}

// OrElse is the lazy form of Or.
func (o Optional[T]) OrElse(other func() Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return other()
}

// Xor returns whichever of o and other is present when exactly one of them
// is, and an absent Optional otherwise.
func (o Optional[T]) Xor(other Optional[T]) Optional[T] {
	switch {
	case o.present && !other.present:
		return o
	case !o.present && other.present:
		return other
	}
	return Absent[T]()
}

// Filter keeps the payload only if pred holds for it.
func (o Optional[T]) Filter(pred func(v T) bool) Optional[T] {
	if o.present && pred(o.value) {
		return o
	}
	return Absent[T]()
}

func (o Optional[T]) String() string {
	if o.present {
		return fmt.Sprintf("Present(%v)", o.value)
	}
	return "Absent"
}

// Hash is consistent with Equal: equal Optionals hash equally.
func (o Optional[T]) Hash() uint64 {
	if o.present {
		return rop.Hash64("present", o.value)
	}
	return rop.Hash64("absent")
}

// Key is a stable UUID derived from the same rendering as Hash.
func (o Optional[T]) Key() uuid.UUID {
	if o.present {
		return rop.Key("present", o.value)
	}
	return rop.Key("absent")
}

// Map returns Present(fn(v)) when o is present and an absent Optional of the
// new type otherwise.
func Map[T, U any](o Optional[T], fn func(v T) U) Optional[U] {
	if o.present {
		return Present(fn(o.value))
	}
	return Absent[U]()
}

// MapOr always returns a present Optional: Present(fn(v)) when o is present
// and Present(fallback) when it is absent. Unlike outcome.MapOr the fallback
// branch is wrapped as well.
func MapOr[T, U any](o Optional[T], fn func(v T) U, fallback U) Optional[U] {
	if o.present {
		return Present(fn(o.value))
	}
	return Present(fallback)
}

// MapOrElse is MapOr with a lazily computed fallback. The result is always
// present.
func MapOrElse[T, U any](o Optional[T], fn func(v T) U, fallback func() U) Optional[U] {
	if o.present {
		return Present(fn(o.value))
	}
	return Present(fallback())
}

func AndThen[T, U any](o Optional[T], fn func(v T) Optional[U]) Optional[U] {
	if o.present {
		return fn(o.value)
	}
	return Absent[U]()
}

func Equal[T comparable](a, b Optional[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc compares a and b structurally using eq for the payloads.
func EqualFunc[T any](a, b Optional[T], eq func(x, y T) bool) bool {
	if a.present != b.present {
		return false
	}
	if !a.present {
		return true
	}
	return eq(a.value, b.value)
}
