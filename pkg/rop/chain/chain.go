package chain

import (
	"context"

	"github.com/ib-77/fallible/pkg/rop/outcome"
	"github.com/ib-77/fallible/pkg/rop/solo"
)

// Chain wraps a solo.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result solo.Result[T]
}

// Start creates a new chain from a solo.Result
func Start[T any](ctx context.Context, result solo.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: solo.Succeed(value),
	}
}

// FromTuple creates a new chain from the (value, error) pair of a Go call
func FromTuple[T any](ctx context.Context, value T, err error) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: solo.FromTuple(value, err),
	}
}

// Result returns the underlying solo.Result
func (c *Chain[T]) Result() solo.Result[T] {
	return c.result
}

// Then chains a function that returns solo.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) solo.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch[T, U](c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try[T, U](c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map[T, U](c.ctx, c.result, onSuccess),
	}
}

// Validate fails the chain with errMsg when validate does not hold
func (c *Chain[T]) Validate(validate func(context.Context, T) (bool, string)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.AndValidate(c.ctx, c.result, validate),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Tee(c.ctx, c.result, onSuccess),
	}
}

// Recover replaces a failure with the result of onFailure
func (c *Chain[T]) Recover(onFailure func(context.Context, error) solo.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: outcome.OrElse(c.result, func(err error) solo.Result[T] {
			return onFailure(c.ctx, err)
		}),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally[T, U](c.ctx, c.result, onSuccess, onFailure)
}
