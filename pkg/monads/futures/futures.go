package futures

import (
	"context"
	"sync"

	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/try"
)

// All runs every supplier in its own goroutine, waits for all of them, and
// merges the outcomes into one try: Successful with the results in supplier
// order, or the first Failure (by supplier position) when any supplier
// fails. Suppliers are panic-guarded the same way try.OfFailable guards its
// computation.
//
// Cancellation is the suppliers' job: each receives ctx and should return
// ctx.Err() when it gives up. All itself only refuses to start on an
// already-cancelled context.
func All[T any](ctx context.Context, suppliers ...func(ctx context.Context) (T, error)) try.Try[[]T] {
	if err := ctx.Err(); err != nil {
		return try.Failure[[]T](err)
	}
	if len(suppliers) == 0 {
		return try.Successful([]T{})
	}

	results := make([]T, len(suppliers))
	errs := make([]error, len(suppliers))

	wg := &sync.WaitGroup{}
	for i, supplier := range suppliers {
		i, supplier := i, supplier
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = monads.Protect(func() (T, error) { return supplier(ctx) })
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return try.Failure[[]T](err)
		}
	}
	return try.Successful(results)
}

// Sequence merges already-computed tries: Successful with the values in
// input order, or the first Failure encountered.
func Sequence[T any](tries ...try.Try[T]) try.Try[[]T] {
	values := make([]T, 0, len(tries))
	for _, t := range tries {
		if !t.IsSuccess() {
			return try.Failure[[]T](t.Cause())
		}
		values = append(values, t.Result())
	}
	return try.Successful(values)
}
