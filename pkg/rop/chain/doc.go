// Package chain provides a fluent wrapper around solo.Result[T]
// for building synchronous railway chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue/FromTuple: begin a chain from a Result[T], value or (value, error)
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Validate: fail the chain when a predicate does not hold
// - Ensure: run side effects on success without changing the result
// - Recover: turn a failure back into a success
// - Finally: collapse the chain into a final value via handlers
package chain
