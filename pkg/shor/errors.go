package shor

import (
	"errors"
	"fmt"
)

var (
	// ErrInputTooSmall indicates the input was at most 1 and cannot be factored.
	ErrInputTooSmall = errors.New("shor: input must be greater than 1")

	// ErrProbablePrime indicates the primality pre-check concluded the input is
	// (probably) prime, so no nontrivial factorization exists.
	ErrProbablePrime = errors.New("shor: input is probably prime")

	// ErrAttemptsExhausted indicates the retry budget ran out before a
	// nontrivial factor was found.
	ErrAttemptsExhausted = errors.New("shor: attempt budget exhausted")

	// ErrPeriodNotFound indicates the period search hit its iteration ceiling.
	// Callers treat this as a signal to resample a new base, never as fatal.
	ErrPeriodNotFound = errors.New("shor: period search limit exceeded")

	// ErrNotCoprime indicates the base shares a factor with the modulus, so no
	// multiplicative order exists.
	ErrNotCoprime = errors.New("shor: base shares a factor with the modulus")

	// ErrBadModulus indicates a modulus outside the supported range (< 1 for
	// modular exponentiation, <= 1 for period finding).
	ErrBadModulus = errors.New("shor: modulus out of range")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("shor.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// opError wraps err with the given operation name, preserving errors.Is.
func opError(op string, err error) error {
	return &Error{Op: op, Err: err}
}
