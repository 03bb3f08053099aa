package shor

import "math/big"

// Method records which path of the algorithm produced a factorization.
type Method int

const (
	// MethodUnknown is the zero value.
	MethodUnknown Method = iota

	// MethodEven means the trivial even fast path (2, n/2) applied.
	MethodEven

	// MethodGCD means a sampled base already shared a factor with n, so the
	// gcd itself was the factor and no period search ran.
	MethodGCD

	// MethodPeriod means a factor was derived from gcd(a^(r/2) ± 1, n) after
	// a successful period search.
	MethodPeriod
)

func (m Method) String() string {
	switch m {
	case MethodEven:
		return "even"
	case MethodGCD:
		return "gcd"
	case MethodPeriod:
		return "period"
	default:
		return "unknown"
	}
}

// Result is a complete nontrivial factorization: P·Q = n with 1 < P, Q < n
// (the sole exception is the even fast path on n = 2, which the caller
// contract of n > 3 excludes). Attempts counts outer-loop iterations,
// including the successful one; the even fast path reports zero.
type Result struct {
	P *big.Int
	Q *big.Int

	// Method records how the factors were obtained.
	Method Method

	// Attempts is the number of bases sampled.
	Attempts int
}
