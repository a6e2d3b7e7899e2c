package solo

import (
	"context"
	"errors"

	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/outcome"
)

// Result is an Outcome failing with an error.
type Result[T any] = outcome.Outcome[T, error]

func Succeed[T any](input T) Result[T] {
	return outcome.Success[T, error](input)
}

func Fail[T any](err error) Result[T] {
	return outcome.Failure[T](err)
}

// FromTuple converts the (value, error) pair of an ordinary Go call.
func FromTuple[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Succeed(v)
}

// ToTuple is the inverse of FromTuple.
func ToTuple[T any](input Result[T]) (T, error) {
	if v, ok := input.Result(); ok {
		return v, nil
	}
	err, _ := input.Err()
	var zero T
	return zero, err
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) Result[T] {

	if v, ok := input.Result(); ok {
		if isValid, errMsg := validate(ctx, v); isValid {
			return input
		} else {
			return Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in Result[T]) Result[T]) Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current Result[T]) Result[T] {

			if e, failed := current.Err(); failed {
				err = rop.JoinErrors(err, e)
			}

			if rop.IsNil(err) {
				return current
			}

			return Fail[T](err)
		},
		inputsF...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input Result[In],
	onSuccess func(ctx context.Context, r In) Result[Out]) Result[Out] {

	return outcome.AndThen(input, func(v In) Result[Out] {
		return onSuccess(ctx, v)
	})
}

func Map[In any, Out any](ctx context.Context,
	input Result[In],
	onSuccess func(ctx context.Context, r In) Out) Result[Out] {

	return outcome.Map(input, func(v In) Out {
		return onSuccess(ctx, v)
	})
}

func Tee[T any](ctx context.Context,
	input Result[T],
	onSuccess func(ctx context.Context, r T)) Result[T] {

	input.Inspect(func(v T) {
		onSuccess(ctx, v)
	})

	return input
}

func TeeIf[T any](ctx context.Context,
	input Result[T],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) Result[T] {

	input.Inspect(func(v T) {
		if condition(ctx, v) {
			onSuccessAndCondition(ctx, v)
		}
	})

	return input
}

func DoubleTee[T any](ctx context.Context, input Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) Result[T] {

	input.Inspect(func(v T) {
		onSuccess(ctx, v)
	})
	input.InspectFailure(func(err error) {
		onError(ctx, err)
	})

	return input
}

func Try[In any, Out any](ctx context.Context, input Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) Result[Out] {

	return outcome.AndThen(input, func(v In) Result[Out] {
		return FromTuple(onTryExecute(ctx, v))
	})
}

func FailOnError[T any](ctx context.Context, input Result[T],
	maybeErr func(ctx context.Context, in T) error) Result[T] {
	if v, ok := input.Result(); ok {
		err := maybeErr(ctx, v)
		if err != nil {
			return Fail[T](err)
		} else {
			return input
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	return outcome.MapOrElse(input,
		func(v In) Out { return onSuccess(ctx, v) },
		func(err error) Out { return onError(ctx, err) })
}

// Join feeds input through inputsF, passing every step's output through
// concat. With breakOnError the first failing step ends the fold. A
// cancelled ctx stops the fold and returns what has been computed so far.
func Join[T any](ctx context.Context,
	input Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current Result[T]) Result[T],
	inputsF ...func(ctx context.Context, in Result[T]) Result[T]) Result[T] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
