// Package option provides Optional[T], a value that is either present
// (holding exactly one T) or absent.
//
// Constructors and queries:
// - Present/Absent: build an Optional
// - FromNillable/FromPtr/FromOk: lift Go's nil and comma-ok idioms
// - IsPresent/IsAbsent/IsPresentAnd/IsAbsentOr: inspect the discriminant
//
// Extraction:
// - Expect/ExpectMessage/Unwrap: value or an error matching rop.ErrUnwrap
// - MustUnwrap: value or panic
// - UnwrapOr (eager), UnwrapOrElse (lazy), UnwrapOrDefault
//
// Combinators:
// - Map, MapOr, MapOrElse, AndThen: transform the payload
// - And/Or/Xor/OrElse/Filter: combine two Optionals
// - Presents/PresentValues: keep only present payloads of a sequence
//
// Note that MapOr and MapOrElse always return a present Optional: the
// fallback is wrapped too. outcome.MapOr, in contrast, returns the raw value.
//
// Conversion to an Outcome lives in package outcome (outcome.OkOr and
// outcome.OkOrElse) since outcome already depends on this package.
package option
