package shor

import "math/big"

// millerRabinRounds is the round count passed to big.Int.ProbablyPrime.
// 20 rounds keeps the false-positive probability below 2^-40.
const millerRabinRounds = 20

// IsProbablePrime reports whether n is prime with high probability. It backs
// the pre-check in Factor and the leaf test in FactorAll.
func IsProbablePrime(n *big.Int) bool {
	return n.ProbablyPrime(millerRabinRounds)
}
