// Package result provides Result[T], a lighter sibling of try.Try for code
// whose failures only ever arrive as returned errors. It captures what a
// supplier returns and nothing more: no panic boundary, no recovery
// combinators. Use try when callbacks may panic or the failure path needs
// repairing; use result when an Ok/Err split with Map/FlatMap/Fold is enough.
package result
