package outcome

import "github.com/ib-77/fallible/pkg/rop/option"

// OkOr returns Success(v) when o is present and Failure(err) otherwise.
// err is evaluated by the caller regardless; use OkOrElse to defer it.
func OkOr[T, E any](o option.Optional[T], err E) Outcome[T, E] {
	if v, ok := o.Get(); ok {
		return Success[T, E](v)
	}
	return Failure[T](err)
}

// OkOrElse is OkOr with the failure produced by errFn only when o is absent.
func OkOrElse[T, E any](o option.Optional[T], errFn func() E) Outcome[T, E] {
	if v, ok := o.Get(); ok {
		return Success[T, E](v)
	}
	return Failure[T](errFn())
}

// FromOptionals is OkOr over several Optionals at once, failing with err on
// the first absent one.
func FromOptionals[T, E any](err E, opts ...option.Optional[T]) Outcome[[]T, E] {
	res := make([]T, 0, len(opts))
	for _, o := range opts {
		v, ok := o.Get()
		if !ok {
			return Failure[[]T](err)
		}
		res = append(res, v)
	}
	return Success[[]T, E](res)
}
