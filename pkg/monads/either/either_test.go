package either

import (
	"errors"
	"strconv"
	"testing"
)

func TestLeftAndRight(t *testing.T) {
	t.Parallel()

	left := Left[string, int]("error")
	if !left.IsLeft() || left.IsRight() || left.Left() != "error" {
		t.Fatalf("expected a left holding 'error'")
	}

	right := Right[string, int](42)
	if !right.IsRight() || right.IsLeft() || right.Right() != 42 {
		t.Fatalf("expected a right holding 42")
	}
}

func TestAccessors_PanicOnWrongSide(t *testing.T) {
	t.Parallel()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic from Left on Right")
			}
		}()
		Right[string, int](42).Left()
	}()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic from Right on Left")
			}
		}()
		Left[string, int]("error").Right()
	}()
}

func TestOf(t *testing.T) {
	t.Parallel()

	out := Of(
		func() string { return "fallback" },
		func() *int { v := 42; return &v })
	if !out.IsRight() || *out.Right() != 42 {
		t.Fatalf("expected right 42 when the right supplier produces a value")
	}

	leftCalled := false
	out = Of(
		func() string { leftCalled = true; return "fallback" },
		func() *int { return nil })
	if !out.IsLeft() || out.Left() != "fallback" || !leftCalled {
		t.Fatalf("expected left fallback when the right supplier produces nil")
	}
}

func TestSwap(t *testing.T) {
	t.Parallel()

	swapped := Right[string, int](42).Swap()
	if !swapped.IsLeft() || swapped.Left() != 42 {
		t.Fatalf("expected right to become left")
	}

	back := swapped.Swap()
	if !back.IsRight() || back.Right() != 42 {
		t.Fatalf("expected a double swap to restore the original side")
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	var seenLeft string
	var seenRight int

	Left[string, int]("error").Run(
		func(l string) { seenLeft = l },
		func(r int) { seenRight = r })
	if seenLeft != "error" || seenRight != 0 {
		t.Fatalf("expected only the left callback to run, got left=%v right=%v", seenLeft, seenRight)
	}

	seenLeft = ""
	Right[string, int](42).Run(
		func(l string) { seenLeft = l },
		func(r int) { seenRight = r })
	if seenRight != 42 || seenLeft != "" {
		t.Fatalf("expected only the right callback to run, got left=%v right=%v", seenLeft, seenRight)
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	success := Right[error, int](3)
	msg := Fold(success,
		func(err error) string { return err.Error() },
		func(count int) string { return "users updated: " + strconv.Itoa(count) })
	if msg != "users updated: 3" {
		t.Fatalf("expected right branch, got %v", msg)
	}

	failure := Left[error, int](errors.New("failed to update users"))
	msg = Fold(failure,
		func(err error) string { return err.Error() },
		func(count int) string { return "users updated: " + strconv.Itoa(count) })
	if msg != "failed to update users" {
		t.Fatalf("expected left branch, got %v", msg)
	}
}

func TestMapBoth(t *testing.T) {
	t.Parallel()

	out := MapBoth(Right[error, int](42),
		func(err error) string { return err.Error() },
		strconv.Itoa)
	if !out.IsRight() || out.Right() != "42" {
		t.Fatalf("expected right '42', got left=%v", out.IsLeft())
	}

	out = MapBoth(Left[error, int](errors.New("error")),
		func(err error) string { return err.Error() },
		strconv.Itoa)
	if !out.IsLeft() || out.Left() != "error" {
		t.Fatalf("expected left 'error'")
	}
}
