package monads

import (
	"fmt"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch reflect.ValueOf(i).Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return reflect.ValueOf(i).IsNil()
	default:
		return false
	}
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Protect calls f and converts a panic into a returned error, so callers
// always observe failures as values. A returned error passes through as-is.
func Protect[T any](f func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("recovered panic: %v", r)
		}
	}()

	return f()
}
