package validator

import "errors"

// Validator checks one value against any number of conditions, accumulating
// a message for every unmet one. It never short-circuits: each step runs
// regardless of earlier outcomes.
type Validator[T any] struct {
	value T
	errs  []error
}

func Of[T any](v T) Validator[T] {
	return Validator[T]{value: v}
}

// Validate applies one condition, recording msg as an error when it fails.
func (v Validator[T]) Validate(pred func(T) bool, msg string) Validator[T] {
	if pred(v.value) {
		return v
	}

	errs := make([]error, 0, len(v.errs)+1)
	errs = append(errs, v.errs...)
	errs = append(errs, errors.New(msg))
	return Validator[T]{value: v.value, errs: errs}
}

// Field validates a projection of the value, for conditions on a single
// field rather than on the whole object.
func Field[T, U any](v Validator[T], projection func(T) U, pred func(U) bool, msg string) Validator[T] {
	return v.Validate(func(t T) bool { return pred(projection(t)) }, msg)
}

func (v Validator[T]) IsValid() bool {
	return len(v.errs) == 0
}

// Errors returns the accumulated condition failures, empty when valid.
func (v Validator[T]) Errors() []error {
	return v.errs
}

// Get returns the validated value, or a single joined error listing every
// unmet condition.
func (v Validator[T]) Get() (T, error) {
	if v.IsValid() {
		return v.value, nil
	}
	var zero T
	return zero, errors.Join(v.errs...)
}
