// Package solo contains single-value, synchronous railway primitives over
// Result[T], an outcome.Outcome whose failure channel is a Go error. These
// functions bridge Go's (value, error) idiom and the outcome package.
//
// Highlights:
// - Succeed/Fail/FromTuple: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee/FailOnError: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
// - Join: fold several steps, optionally stopping on the first error
package solo
