// Package monads holds the plumbing shared by the container packages:
// reflection-based nil detection, joined-error unwrapping, the Protect
// guard that turns panics into returned errors, and the interfaces the
// value containers satisfy.
package monads
