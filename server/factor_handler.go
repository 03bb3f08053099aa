package server

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shorlabs/shor-go/pkg/shor"
)

var four = big.NewInt(4)

type factorRequest struct {
	N                  string `json:"n"`
	MaxAttempts        int    `json:"max_attempts"`
	SkipPrimalityCheck bool   `json:"skip_primality_check"`
	All                bool   `json:"all"`
}

// parseN validates the decimal input; callers must supply a composite
// integer greater than 3.
func (r factorRequest) parseN() (*big.Int, bool) {
	n, ok := new(big.Int).SetString(r.N, 10)
	if !ok || n.Cmp(four) < 0 {
		return nil, false
	}
	return n, true
}

func (r factorRequest) config() shor.Config {
	return shor.Config{
		MaxAttempts:        r.MaxAttempts,
		SkipPrimalityCheck: r.SkipPrimalityCheck,
	}
}

func factorHandler(c *gin.Context) {
	var req factorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	n, ok := req.parseN()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "n must be a decimal integer greater than 3"})
		return
	}

	start := time.Now()
	if req.All {
		primes, err := shor.FactorAll(c.Request.Context(), n, req.config())
		if err != nil {
			writeFactorError(c, err)
			return
		}
		factors := make([]string, len(primes))
		for i, p := range primes {
			factors[i] = p.String()
		}
		c.JSON(http.StatusOK, gin.H{
			"n":          n.String(),
			"factors":    factors,
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
		return
	}

	res, err := shor.Factor(c.Request.Context(), n, req.config())
	if err != nil {
		writeFactorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"n":          n.String(),
		"p":          res.P.String(),
		"q":          res.Q.String(),
		"method":     res.Method.String(),
		"attempts":   res.Attempts,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
}

// writeFactorError maps library failures onto HTTP statuses: unprocessable
// for the two defined no-result outcomes, bad request for invalid input.
func writeFactorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, shor.ErrProbablePrime):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "probably_prime"})
	case errors.Is(err, shor.ErrAttemptsExhausted):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "attempts_exhausted"})
	case errors.Is(err, shor.ErrInputTooSmall):
		c.JSON(http.StatusBadRequest, gin.H{"error": "input_too_small"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "canceled"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
