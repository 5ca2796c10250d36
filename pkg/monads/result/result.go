package result

import (
	"time"

	"github.com/google/uuid"
)

// Result is the checked-error wrapper: it captures errors a supplier
// returns, and nothing else. Unlike try.Try there is no panic guard here; a
// panicking callback reaches the caller.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isOk      bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Attempt invokes supplier and wraps its outcome: Ok on a nil error, Err
// otherwise.
func Attempt[T any](supplier func() (T, error)) Result[T] {
	v, err := supplier()
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

func (r Result[T]) IsOk() bool {
	return r.isOk
}

func (r Result[T]) IsErr() bool {
	return !r.isOk
}

// Result returns the successful value, or the zero value on an Err.
func (r Result[T]) Result() T {
	return r.value
}

// Err returns the captured error, or nil on an Ok.
func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isOk
}

// Value returns the successful value and panics on an Err, which holds none.
func (r Result[T]) Value() T {
	if !r.isOk {
		panic("result: Value called on Err")
	}
	return r.value
}

// Cause returns the captured error and panics on an Ok, which holds none.
func (r Result[T]) Cause() error {
	if r.isOk {
		panic("result: Cause called on Ok")
	}
	return r.err
}

func (r Result[T]) Get() (T, error) {
	if r.isOk {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Map transforms the successful value; a returned error becomes an Err. An
// Err passes through with its error, f never invoked.
func (r Result[T]) Map(f func(T) (T, error)) Result[T] {
	if !r.isOk {
		return errFrom[T, T](r)
	}
	return Attempt(func() (T, error) { return f(r.value) })
}

// FlatMap composes a function that already returns a Result.
func (r Result[T]) FlatMap(f func(T) Result[T]) Result[T] {
	if !r.isOk {
		return errFrom[T, T](r)
	}
	return f(r.value)
}

func errFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isOk:      false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Map is the type-switching form of Result.Map.
func Map[In, Out any](r Result[In], f func(In) (Out, error)) Result[Out] {
	if !r.isOk {
		return errFrom[In, Out](r)
	}
	return Attempt(func() (Out, error) { return f(r.value) })
}

// FlatMap is the type-switching form of Result.FlatMap.
func FlatMap[In, Out any](r Result[In], f func(In) Result[Out]) Result[Out] {
	if !r.isOk {
		return errFrom[In, Out](r)
	}
	return f(r.value)
}

// Fold reduces a Result to a plain value with one exhaustive case analysis.
func Fold[T, X any](r Result[T], ifErr func(error) X, ifOk func(T) X) X {
	if r.isOk {
		return ifOk(r.value)
	}
	return ifErr(r.err)
}
