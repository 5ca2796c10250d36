// Package try provides Try[T], a container for the outcome of exactly one
// attempt: either the value it produced or the error that stopped it.
//
// Chained transformations short-circuit on the first failure, so callers
// compose fallible steps without branching at each one:
//
//   - OfFailable/Successful/Failure: construct a Try
//   - Map/FlatMap (method and package form): transform or compose, capturing
//     errors and panics into the Failure variant
//   - Filter: reject values that fail a predicate
//   - Recover/RecoverWith/OrElse/OrElseTry: leave or repair the failure path
//   - Get/GetUnchecked/OrElseFail/Fold: collapse the chain at its edge
//   - OnSuccess/OnFailure: side effects that run unguarded
//
// Every callback except the side-effecting ones and OrElseFail's supplier
// runs inside a capturing boundary: a returned error or a panic becomes a
// Failure rather than escaping the combinator.
package try
