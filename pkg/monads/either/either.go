package either

import "github.com/ib-77/monads/pkg/monads"

// Either is a plain two-sided disjunction. Neither side implies failure;
// callers assign meaning to left and right themselves.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](left L) Either[L, R] {
	return Either[L, R]{left: left, isRight: false}
}

func Right[L, R any](right R) Either[L, R] {
	return Either[L, R]{right: right, isRight: true}
}

// Of evaluates rightSupplier first and keeps its value when non-nil;
// otherwise it falls back to leftSupplier.
func Of[L, R any](leftSupplier func() L, rightSupplier func() R) Either[L, R] {
	right := rightSupplier()
	if !monads.IsNil(any(right)) {
		return Right[L, R](right)
	}
	return Left[L, R](leftSupplier())
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value and panics on a Right, which holds none.
func (e Either[L, R]) Left() L {
	if e.isRight {
		panic("either: Left called on Right")
	}
	return e.left
}

// Right returns the right value and panics on a Left, which holds none.
func (e Either[L, R]) Right() R {
	if !e.isRight {
		panic("either: Right called on Left")
	}
	return e.right
}

// Swap exchanges the sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// Run invokes exactly one of the callbacks with the populated side.
func (e Either[L, R]) Run(runLeft func(L), runRight func(R)) {
	if e.isRight {
		runRight(e.right)
		return
	}
	runLeft(e.left)
}

// Fold reduces an Either to a plain value with one exhaustive case analysis.
func Fold[L, R, T any](e Either[L, R], transformLeft func(L) T, transformRight func(R) T) T {
	if e.isRight {
		return transformRight(e.right)
	}
	return transformLeft(e.left)
}

// MapBoth transforms whichever side is populated, producing an Either over
// the new side types.
func MapBoth[L, R, X, Y any](e Either[L, R], leftMapper func(L) X, rightMapper func(R) Y) Either[X, Y] {
	if e.isRight {
		return Right[X, Y](rightMapper(e.right))
	}
	return Left[X, Y](leftMapper(e.left))
}
