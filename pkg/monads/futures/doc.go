// Package futures merges independently-running fallible computations into a
// single try: All fans suppliers out over goroutines and waits for every one,
// Sequence folds tries that were already computed. Either way the result is
// one Successful slice in input order, or the first Failure.
package futures
