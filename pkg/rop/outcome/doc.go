// Package outcome provides Outcome[T, E], a value that holds either a
// success of type T or a failure of type E, never both and never neither.
//
// Highlights:
// - Success/Failure: construct an Outcome
// - IsSuccess/IsFailure, Inspect/InspectFailure: inspect it
// - Expect/ExpectMessage/Unwrap/MustUnwrap and the UnwrapOr family: extract
// - SuccessAsOptional/FailureAsOptional: project onto option.Optional
// - OkOr/OkOrElse: build an Outcome from an option.Optional
// - Map/MapFailure/MapOr/MapOrElse: transform one channel
// - And/Or/AndThen/OrElse: compose, short-circuiting on failure (AndThen)
//   or success (OrElse)
//
// MapOr and MapOrElse return the raw projected value. option.MapOr, in
// contrast, wraps both branches in a present Optional.
package outcome
