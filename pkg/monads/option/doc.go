// Package option provides a minimal present/absent container.
//
// It exists mainly as the target of try.Try.ToOption, which must keep
// "failed" and "succeeded with no value" distinguishable from a present
// value. Some/None/OfNullable construct it; Get, OrElse and Map consume it.
package option
