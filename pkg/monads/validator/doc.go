// Package validator provides an accumulating Validator[T]: every condition
// runs against the value and every unmet one contributes a message, so the
// caller sees all problems at once rather than the first. This is the
// opposite policy to try's short-circuiting.
package validator
