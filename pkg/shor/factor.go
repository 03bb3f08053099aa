package shor

import (
	"context"
	crand "crypto/rand"
	"math/big"
	"sort"
)

// Factor finds a nontrivial factor pair of n using the classical Shor loop:
// sample a base a in [2, n), short-circuit on gcd(a, n) > 1, otherwise find
// the multiplicative order r of a, and derive factors from gcd(a^(r/2) ± 1, n)
// when r is even and a^(r/2) is not -1 mod n.
//
// Inputs of at most 1 return ErrInputTooSmall. Even inputs return (2, n/2)
// without consuming randomness. Unless disabled in cfg, a probable-prime
// input returns ErrProbablePrime before any sampling. Running out of the
// attempt budget returns ErrAttemptsExhausted; the ctx is checked between
// attempts so callers can impose a deadline on the otherwise unbounded search.
func Factor(ctx context.Context, n *big.Int, cfg Config) (*Result, error) {
	if n == nil || n.Cmp(one) <= 0 {
		return nil, opError("Factor", ErrInputTooSmall)
	}

	log := cfg.logger()

	if n.Bit(0) == 0 {
		log.Debug(ctx, "even fast path", "n", n.String())
		return &Result{P: big.NewInt(2), Q: new(big.Int).Rsh(n, 1), Method: MethodEven}, nil
	}

	if !cfg.SkipPrimalityCheck && IsProbablePrime(n) {
		return nil, opError("Factor", ErrProbablePrime)
	}

	rnd := cfg.rand()
	budget := cfg.attempts()
	span := new(big.Int).Sub(n, two) // size of the sampling interval [2, n)
	nMinusOne := new(big.Int).Sub(n, one)

	for attempt := 1; budget < 0 || attempt <= budget; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		a, err := crand.Int(rnd, span)
		if err != nil {
			return nil, opError("Factor", err)
		}
		a.Add(a, two)
		log.Debug(ctx, "trying base", "attempt", attempt, "a", a.String())

		if g := GCD(a, n); g.Cmp(one) > 0 {
			log.Info(ctx, "factor found via gcd short-circuit", "a", a.String(), "gcd", g.String())
			return newResult(n, g, MethodGCD, attempt), nil
		}

		r, err := FindPeriodWithLimit(a, n, cfg.PeriodLimit)
		if err != nil {
			log.Debug(ctx, "period search failed, resampling", "a", a.String(), "err", err.Error())
			continue
		}
		log.Debug(ctx, "period found", "a", a.String(), "r", r.String())

		if r.Bit(0) == 1 {
			log.Debug(ctx, "period is odd, resampling", "r", r.String())
			continue
		}

		term, err := ModPow(a, new(big.Int).Rsh(r, 1), n)
		if err != nil {
			return nil, opError("Factor", err)
		}
		if term.Cmp(nMinusOne) == 0 {
			log.Debug(ctx, "a^(r/2) is -1 mod n, resampling", "a", a.String())
			continue
		}

		// Two candidates: gcd(term+1, n) and gcd(term-1, n), the latter with
		// wraparound so term = 0 maps to n-1 instead of underflowing. Either
		// nontrivial candidate is accepted, term-1 first.
		plus := GCD(new(big.Int).Add(term, one), n)
		down := new(big.Int).Sub(term, one)
		if down.Sign() < 0 {
			down.Add(down, n)
		}
		minus := GCD(down, n)

		if isNontrivial(minus, n) {
			log.Info(ctx, "factor found via period reduction", "a", a.String(), "r", r.String(), "factor", minus.String())
			return newResult(n, minus, MethodPeriod, attempt), nil
		}
		if isNontrivial(plus, n) {
			log.Info(ctx, "factor found via period reduction", "a", a.String(), "r", r.String(), "factor", plus.String())
			return newResult(n, plus, MethodPeriod, attempt), nil
		}
		log.Debug(ctx, "both candidates trivial, resampling", "a", a.String())
	}

	return nil, opError("Factor", ErrAttemptsExhausted)
}

// FactorAll returns the complete prime factorization of n in ascending order,
// built by recursively splitting composites with Factor and testing leaves
// with IsProbablePrime. It shares Factor's error conditions.
func FactorAll(ctx context.Context, n *big.Int, cfg Config) ([]*big.Int, error) {
	if n == nil || n.Cmp(one) <= 0 {
		return nil, opError("FactorAll", ErrInputTooSmall)
	}

	// Leaves are detected here, so the per-split pre-check is redundant work.
	sub := cfg
	sub.SkipPrimalityCheck = true

	var primes []*big.Int
	var split func(m *big.Int) error
	split = func(m *big.Int) error {
		if m.Cmp(one) == 0 {
			return nil
		}
		if IsProbablePrime(m) {
			primes = append(primes, new(big.Int).Set(m))
			return nil
		}
		res, err := Factor(ctx, m, sub)
		if err != nil {
			return err
		}
		if err := split(res.P); err != nil {
			return err
		}
		return split(res.Q)
	}
	if err := split(n); err != nil {
		return nil, err
	}

	sort.Slice(primes, func(i, j int) bool { return primes[i].Cmp(primes[j]) < 0 })
	return primes, nil
}

// isNontrivial reports whether g is a factor strictly between 1 and n.
func isNontrivial(g, n *big.Int) bool {
	return g.Cmp(one) > 0 && g.Cmp(n) < 0
}

func newResult(n, p *big.Int, m Method, attempts int) *Result {
	return &Result{P: p, Q: new(big.Int).Quo(n, p), Method: m, Attempts: attempts}
}
