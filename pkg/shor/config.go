package shor

import (
	crand "crypto/rand"
	"io"
	"log/slog"
	"math/big"

	"github.com/shorlabs/shor-go/pkg/shor/logging"
)

// DefaultMaxAttempts bounds the outer retry loop when Config.MaxAttempts is
// left zero. The reference behavior of looping forever on unlucky inputs is
// available by setting MaxAttempts negative.
const DefaultMaxAttempts = 1000

// Config expresses the knobs for a factorization run. The zero value is
// ready to use: cryptographic randomness, the default attempt budget, the n²
// period ceiling, the primality pre-check enabled, and no logging.
type Config struct {
	// Rand supplies entropy for base sampling. Leaving it nil selects
	// crypto/rand.Reader. Tests inject a deterministic reader here.
	Rand io.Reader

	// MaxAttempts caps the number of outer-loop iterations (fresh bases).
	// Zero selects DefaultMaxAttempts; a negative value removes the cap so
	// the loop runs until a factor is found or the ctx expires.
	MaxAttempts int

	// PeriodLimit overrides the n² iteration ceiling of the period search.
	// Leaving it nil keeps the heuristic default.
	PeriodLimit *big.Int

	// SkipPrimalityCheck disables the Miller-Rabin pre-check, in which case a
	// prime input exhausts the attempt budget instead of failing early.
	SkipPrimalityCheck bool

	// Logger receives per-attempt progress events. Leaving it nil discards
	// them.
	Logger logging.Logger
}

func (c Config) rand() io.Reader {
	if c.Rand != nil {
		return c.Rand
	}
	return crand.Reader
}

func (c Config) attempts() int {
	if c.MaxAttempts == 0 {
		return DefaultMaxAttempts
	}
	return c.MaxAttempts
}

func (c Config) logger() logging.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
