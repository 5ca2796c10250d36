// Package either provides Either[L, R], a disjunction with no implicit
// failure semantics: Left and Right are symmetric and the caller decides
// what each side means. Swap, Run, Fold and MapBoth cover the case analysis.
package either
