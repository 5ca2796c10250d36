package try

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/option"
)

// ErrNoMatch is the sentinel behind the failure Filter synthesizes when the
// predicate rejects the value.
var ErrNoMatch = errors.New("try: predicate does not match")

// PredicateError is the failure produced by Filter. It keeps the rejected
// value for diagnostics and unwraps to ErrNoMatch.
type PredicateError struct {
	Value any
}

func (e *PredicateError) Error() string {
	return fmt.Sprintf("try: predicate does not match for %v", e.Value)
}

func (e *PredicateError) Unwrap() error {
	return ErrNoMatch
}

// Try holds the outcome of exactly one attempt: a value or the error that
// prevented it. Exactly one of value/cause is populated, and an instance is
// never mutated after construction.
type Try[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	cause     error
	isSuccess bool
}

func Successful[T any](v T) Try[T] {
	return Try[T]{
		value:     v,
		cause:     nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any](cause error) Try[T] {
	return Try[T]{
		cause:     cause,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// OfFailable invokes supplier and wraps its outcome. A returned error or a
// panic becomes a Failure; nothing escapes to the caller.
func OfFailable[T any](supplier func() (T, error)) Try[T] {
	v, err := monads.Protect(supplier)
	if err != nil {
		return Failure[T](err)
	}
	return Successful(v)
}

// failureFrom re-expresses a failure under a new value type, keeping the
// cause and the origin's id and timestamp.
func failureFrom[In, Out any](from Try[In]) Try[Out] {
	return Try[Out]{
		cause:     from.cause,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (t Try[T]) IsSuccess() bool {
	return t.isSuccess
}

// Result returns the successful value, or the zero value on a Failure.
func (t Try[T]) Result() T {
	return t.value
}

// Err returns the captured cause, or nil on a Success.
func (t Try[T]) Err() error {
	return t.cause
}

// Cause returns the captured failure. It panics when called on a Success,
// which holds no cause.
func (t Try[T]) Cause() error {
	if t.isSuccess {
		panic("try: Cause called on Success")
	}
	return t.cause
}

func (t Try[T]) Id() uuid.UUID {
	return t.id
}

func (t Try[T]) CreatedAt() time.Time {
	return t.createdAt
}

// Get returns the held value, or the originally captured cause unchanged.
func (t Try[T]) Get() (T, error) {
	if t.isSuccess {
		return t.value, nil
	}
	var zero T
	return zero, t.cause
}

// GetUnchecked returns the held value, or panics with an error wrapping the
// original cause (recoverable via errors.Unwrap).
func (t Try[T]) GetUnchecked() T {
	if t.isSuccess {
		return t.value
	}
	panic(fmt.Errorf("try: get on Failure: %w", t.cause))
}

// Map transforms the successful value. An error or panic from f becomes a
// Failure; on a Failure f is never invoked and the cause passes through.
func (t Try[T]) Map(f func(T) (T, error)) Try[T] {
	if !t.isSuccess {
		return failureFrom[T, T](t)
	}

	v, err := monads.Protect(func() (T, error) { return f(t.value) })
	if err != nil {
		return Failure[T](err)
	}
	return Successful(v)
}

// FlatMap composes a function that already returns a Try. A panic from f
// becomes a Failure; on a Failure f is never invoked.
func (t Try[T]) FlatMap(f func(T) Try[T]) Try[T] {
	if !t.isSuccess {
		return failureFrom[T, T](t)
	}

	next, err := monads.Protect(func() (Try[T], error) { return f(t.value), nil })
	if err != nil {
		return Failure[T](err)
	}
	return next
}

// Filter passes a Success through when pred holds, and turns it into a
// Failure carrying a PredicateError otherwise. A Failure passes through
// untouched and pred never runs.
func (t Try[T]) Filter(pred func(T) bool) Try[T] {
	if !t.isSuccess {
		return t
	}

	ok, err := monads.Protect(func() (bool, error) { return pred(t.value), nil })
	if err != nil {
		return Failure[T](err)
	}
	if ok {
		return t
	}
	return Failure[T](&PredicateError{Value: t.value})
}

// Recover collapses to a plain value: the held value on Success, f(cause) on
// Failure. This exits the Try abstraction.
func (t Try[T]) Recover(f func(error) T) T {
	if t.isSuccess {
		return t.value
	}
	return f(t.cause)
}

// RecoverWith applies f to the cause on Failure, staying inside Try. A panic
// from f becomes a new Failure. On Success f is never invoked.
func (t Try[T]) RecoverWith(f func(error) Try[T]) Try[T] {
	if t.isSuccess {
		return t
	}

	next, err := monads.Protect(func() (Try[T], error) { return f(t.cause), nil })
	if err != nil {
		return Failure[T](err)
	}
	return next
}

// OrElse returns the held value on Success, or def on Failure. Nothing is
// evaluated.
func (t Try[T]) OrElse(def T) T {
	if t.isSuccess {
		return t.value
	}
	return def
}

// OrElseTry keeps a Success, and on Failure evaluates supplier via
// OfFailable, so the replacement may itself fail.
func (t Try[T]) OrElseTry(supplier func() (T, error)) Try[T] {
	if t.isSuccess {
		return t
	}
	return OfFailable(supplier)
}

// OrElseFail returns the held value on Success; on Failure it returns the
// error produced by errSupplier instead of the captured cause. errSupplier
// runs unguarded, so its panic reaches the caller.
func (t Try[T]) OrElseFail(errSupplier func() error) (T, error) {
	if t.isSuccess {
		return t.value, nil
	}
	var zero T
	return zero, errSupplier()
}

// OnSuccess runs action for its side effect on a Success and returns the
// receiver. action runs unguarded: its panic reaches the caller instead of
// being captured.
func (t Try[T]) OnSuccess(action func(T)) Try[T] {
	if t.isSuccess {
		action(t.value)
	}
	return t
}

// OnFailure is the Failure-side counterpart of OnSuccess, also unguarded.
func (t Try[T]) OnFailure(action func(error)) Try[T] {
	if !t.isSuccess {
		action(t.cause)
	}
	return t
}

// ToOption keeps a present Success value, and collapses both a Failure and a
// nil-valued Success to None. The cause is discarded.
func (t Try[T]) ToOption() option.Option[T] {
	if !t.isSuccess {
		return option.None[T]()
	}
	return option.OfNullable(t.value)
}
