package outcome

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/option"
)

// UnwrapMessage prefixes the message of the error returned by Unwrap on a
// failed Outcome. The failure, formatted with %v, follows it.
const UnwrapMessage = "attempted to unwrap an error result."

// Outcome holds exactly one of a success value T or a failure value E.
// The zero value is a failure holding the zero E; construct Outcomes with
// Success and Failure.
type Outcome[T, E any] struct {
	value     T
	failure   E
	succeeded bool
}

func Success[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value:     v,
		succeeded: true,
	}
}

func Failure[T, E any](e E) Outcome[T, E] {
	return Outcome[T, E]{
		failure:   e,
		succeeded: false,
	}
}

func (r Outcome[T, E]) IsSuccess() bool {
	return r.succeeded
}

func (r Outcome[T, E]) IsFailure() bool {
	return !r.succeeded
}

// Result returns the success value and whether r is a success.
func (r Outcome[T, E]) Result() (T, bool) {
	return r.value, r.succeeded
}

// Err returns the failure value and whether r is a failure.
func (r Outcome[T, E]) Err() (E, bool) {
	return r.failure, !r.succeeded
}

func (r Outcome[T, E]) Inspect(fn func(v T)) {
	if r.succeeded {
		fn(r.value)
	}
}

func (r Outcome[T, E]) InspectFailure(fn func(e E)) {
	if !r.succeeded {
		fn(r.failure)
	}
}

// Expect returns the success value, or an *rop.UnwrapError wrapping the
// error made by errorFactory. errorFactory is only called on failure; it
// may capture the failure (see Err) for diagnostics.
func (r Outcome[T, E]) Expect(errorFactory func() error) (T, error) {
	if r.succeeded {
		return r.value, nil
	}
	var zero T
	if errorFactory == nil {
		return zero, rop.NewUnwrapError(r.unwrapMessage())
	}
	if err := errorFactory(); err != nil {
		return zero, rop.WrapUnwrapError(err)
	}
	return zero, rop.NewUnwrapError(r.unwrapMessage())
}

func (r Outcome[T, E]) ExpectMessage(message string) (T, error) {
	if r.succeeded {
		return r.value, nil
	}
	var zero T
	return zero, rop.NewUnwrapError(message)
}

// Unwrap returns the success value, or an error whose message embeds the
// failure.
func (r Outcome[T, E]) Unwrap() (T, error) {
	if r.succeeded {
		return r.value, nil
	}
	return r.ExpectMessage(r.unwrapMessage())
}

func (r Outcome[T, E]) MustUnwrap() T {
	v, err := r.Unwrap()
	if err != nil {
		panic(err)
	}
	return v
}

func (r Outcome[T, E]) unwrapMessage() string {
	return fmt.Sprintf("%s %v", UnwrapMessage, r.failure)
}

// UnwrapOr returns the success value or fallback, which the caller has
// already evaluated.
func (r Outcome[T, E]) UnwrapOr(fallback T) T {
	if r.succeeded {
		return r.value
	}
	return fallback
}

func (r Outcome[T, E]) UnwrapOrDefault() T {
	var zero T
	return r.UnwrapOr(zero)
}

// UnwrapOrElse returns the success value or fallback applied to the failure.
func (r Outcome[T, E]) UnwrapOrElse(fallback func(e E) T) T {
	if r.succeeded {
		return r.value
	}
	return fallback(r.failure)
}

func (r Outcome[T, E]) SuccessAsOptional() option.Optional[T] {
	if r.succeeded {
		return option.Present(r.value)
	}
	return option.Absent[T]()
}

func (r Outcome[T, E]) FailureAsOptional() option.Optional[E] {
	if r.succeeded {
		return option.Absent[E]()
	}
	return option.Present(r.failure)
}

// And returns other when r is a success and r otherwise.
func (r Outcome[T, E]) And(other Outcome[T, E]) Outcome[T, E] {
	if r.succeeded {
		return other
	}
	return r
}

// Or returns r when it is a success and other otherwise.
func (r Outcome[T, E]) Or(other Outcome[T, E]) Outcome[T, E] {
	if r.succeeded {
		return r
	}
	return other
}

func (r Outcome[T, E]) String() string {
	if r.succeeded {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.failure)
}

// Hash is consistent with Equal: equal Outcomes hash equally.
func (r Outcome[T, E]) Hash() uint64 {
	if r.succeeded {
		return rop.Hash64("success", r.value)
	}
	return rop.Hash64("failure", r.failure)
}

func (r Outcome[T, E]) Key() uuid.UUID {
	if r.succeeded {
		return rop.Key("success", r.value)
	}
	return rop.Key("failure", r.failure)
}

// Map applies fn to a success value. A failure passes through unchanged.
func Map[T, U, E any](r Outcome[T, E], fn func(v T) U) Outcome[U, E] {
	if r.succeeded {
		return Success[U, E](fn(r.value))
	}
	return Failure[U](r.failure)
}

// MapFailure applies fn to a failure value. A success passes through
// unchanged.
func MapFailure[T, E, F any](r Outcome[T, E], fn func(e E) F) Outcome[T, F] {
	if r.succeeded {
		return Success[T, F](r.value)
	}
	return Failure[T](fn(r.failure))
}

// MapOr returns fn(v) on success and fallback on failure. The result is the
// raw value, not an Outcome or Optional; option.MapOr differs in that it
// wraps.
func MapOr[T, E, V any](r Outcome[T, E], fn func(v T) V, fallback V) V {
	if r.succeeded {
		return fn(r.value)
	}
	return fallback
}

// MapOrElse returns fn(v) on success and fallback(e) on failure.
func MapOrElse[T, E, V any](r Outcome[T, E], fn func(v T) V, fallback func(e E) V) V {
	if r.succeeded {
		return fn(r.value)
	}
	return fallback(r.failure)
}

// AndThen continues with fn on success. On failure fn is not called and the
// failure is carried over to the new success type.
func AndThen[T, U, E any](r Outcome[T, E], fn func(v T) Outcome[U, E]) Outcome[U, E] {
	if r.succeeded {
		return fn(r.value)
	}
	return Failure[U](r.failure)
}

// OrElse recovers from a failure with fn. On success fn is not called and
// the value is carried over to the new failure type.
func OrElse[T, E, F any](r Outcome[T, E], fn func(e E) Outcome[T, F]) Outcome[T, F] {
	if r.succeeded {
		return Success[T, F](r.value)
	}
	return fn(r.failure)
}

func Flatten[T, E any](r Outcome[Outcome[T, E], E]) Outcome[T, E] {
	if r.succeeded {
		return r.value
	}
	return Failure[T](r.failure)
}

func Equal[T, E comparable](a, b Outcome[T, E]) bool {
	return EqualFunc(a, b,
		func(x, y T) bool { return x == y },
		func(x, y E) bool { return x == y })
}

// EqualFunc compares the live payloads of a and b with eqValue or
// eqFailure.
func EqualFunc[T, E any](a, b Outcome[T, E],
	eqValue func(x, y T) bool, eqFailure func(x, y E) bool) bool {

	if a.succeeded != b.succeeded {
		return false
	}
	if a.succeeded {
		return eqValue(a.value, b.value)
	}
	return eqFailure(a.failure, b.failure)
}
