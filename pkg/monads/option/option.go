package option

import (
	"errors"

	"github.com/ib-77/monads/pkg/monads"
)

// ErrNoValue is returned by Get on an empty Option.
var ErrNoValue = errors.New("option: no value present")

type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OfNullable builds Some(v) unless v is nil (typed nil pointers included).
func OfNullable[T any](v T) Option[T] {
	if monads.IsNil(any(v)) {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrNoValue
	}
	return o.value, nil
}

func (o Option[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// Map transforms the present value, keeping None as None.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if !o.present {
		return o
	}
	return Some(f(o.value))
}

// Map transforms the present value to a new value type.
func Map[In, Out any](o Option[In], f func(In) Out) Option[Out] {
	if !o.present {
		return None[Out]()
	}
	return Some(f(o.value))
}
