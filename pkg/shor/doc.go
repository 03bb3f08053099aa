// Package shor factors composite integers using the classical skeleton of
// Shor's algorithm. Instead of quantum period finding, the multiplicative
// order of a randomly chosen base is located by brute-force sequential
// multiplication, so the search is exponential and only practical for small
// to medium inputs.
//
// All values are arbitrary-precision (math/big) and never mutated once
// computed. Randomness is an injected dependency so runs can be made
// deterministic for testing.
package shor
