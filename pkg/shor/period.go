package shor

import "math/big"

// FindPeriod returns the multiplicative order of a modulo n: the smallest
// r > 0 with a^r ≡ 1 (mod n). The search is a sequential scan bounded by the
// heuristic ceiling n², the stand-in for the quantum speedup. It requires
// gcd(a, n) = 1; a violation returns ErrNotCoprime immediately without
// searching. Exceeding the ceiling returns ErrPeriodNotFound.
func FindPeriod(a, n *big.Int) (*big.Int, error) {
	return FindPeriodWithLimit(a, n, nil)
}

// FindPeriodWithLimit is FindPeriod with an explicit iteration ceiling.
// A nil limit selects the default n² heuristic.
func FindPeriodWithLimit(a, n, limit *big.Int) (*big.Int, error) {
	if n.Cmp(one) <= 0 {
		return nil, opError("FindPeriod", ErrBadModulus)
	}
	if GCD(a, n).Cmp(one) != 0 {
		return nil, opError("FindPeriod", ErrNotCoprime)
	}
	if limit == nil {
		limit = new(big.Int).Mul(n, n)
	}

	x := new(big.Int).Mod(a, n)
	r := big.NewInt(1)
	for x.Cmp(one) != 0 {
		x.Mul(x, a).Mod(x, n)
		r.Add(r, one)
		if r.Cmp(limit) > 0 {
			return nil, opError("FindPeriod", ErrPeriodNotFound)
		}
	}
	return r, nil
}
