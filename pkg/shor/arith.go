package shor

import "math/big"

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// GCD returns the greatest common divisor of two non-negative integers using
// the Euclidean algorithm. It is total: GCD(a, 0) = a and GCD(0, 0) = 0.
// Neither input is mutated.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	for y.Sign() != 0 {
		x, y = y, x.Mod(x, y)
	}
	return x
}

// ModPow returns base^exponent mod modulus computed by repeated squaring.
// The result is always in [0, modulus). A modulus below 1 returns
// ErrBadModulus rather than dividing by zero.
func ModPow(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, opError("ModPow", ErrBadModulus)
	}
	return new(big.Int).Exp(base, exponent, modulus), nil
}
