package try

import "github.com/ib-77/monads/pkg/monads"

// The method set on Try keeps the value type fixed; the functions here are
// the type-switching counterparts.

// Map transforms a successful In into an Out. An error or panic from f
// becomes a Failure; a Failure short-circuits with its cause and f never
// runs.
func Map[In, Out any](t Try[In], f func(In) (Out, error)) Try[Out] {
	if !t.IsSuccess() {
		return failureFrom[In, Out](t)
	}

	v, err := monads.Protect(func() (Out, error) { return f(t.value) })
	if err != nil {
		return Failure[Out](err)
	}
	return Successful(v)
}

// FlatMap composes a function returning Try[Out]. Same short-circuit and
// capture rules as Map.
func FlatMap[In, Out any](t Try[In], f func(In) Try[Out]) Try[Out] {
	if !t.IsSuccess() {
		return failureFrom[In, Out](t)
	}

	next, err := monads.Protect(func() (Try[Out], error) { return f(t.value), nil })
	if err != nil {
		return Failure[Out](err)
	}
	return next
}

// Fold reduces a Try to a plain value with one exhaustive case analysis.
// Neither handler is guarded; there is no chain left to capture into.
func Fold[T, X any](t Try[T], ifFailure func(error) X, ifSuccess func(T) X) X {
	if t.IsSuccess() {
		return ifSuccess(t.value)
	}
	return ifFailure(t.cause)
}
