package printer

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/fatih/color"

	"github.com/shorlabs/shor-go/pkg/shor"
)

// Version is populated at build time via ldflags. In development it defaults
// to the placeholder below.
var Version = "v0.0.0-dev"

// Banner prints the tool name and version.
func Banner() {
	color.New(color.FgCyan, color.Bold).Printf("shor-go %s", Version)
	fmt.Println(" - classical Shor factorization simulator")
}

// Result prints a successful factorization together with a verification
// line showing p times q.
func Result(n *big.Int, res *shor.Result, elapsed time.Duration) {
	bold := color.New(color.FgGreen, color.Bold)
	bold.Printf("Factors found: %s and %s\n", res.P, res.Q)

	product := new(big.Int).Mul(res.P, res.Q)
	fmt.Printf("Verification: %s * %s = %s\n", res.P, res.Q, product)
	fmt.Printf("Method: %s, attempts: %d\n", res.Method, res.Attempts)
	fmt.Printf("Computation took: %v\n", elapsed)
}

// Failure prints an unsuccessful outcome, distinguishing a prime input from
// an exhausted search.
func Failure(err error, elapsed time.Duration) {
	red := color.New(color.FgRed)
	switch {
	case errors.Is(err, shor.ErrProbablePrime):
		red.Println("No factors: the input is probably prime.")
	case errors.Is(err, shor.ErrAttemptsExhausted):
		red.Println("Failed to find factors: attempt budget exhausted. The number might be prime or the algorithm got unlucky.")
	case errors.Is(err, shor.ErrInputTooSmall):
		red.Println("Please enter a composite number greater than 3.")
	default:
		red.Printf("Failed to find factors: %v\n", err)
	}
	fmt.Printf("Computation took: %v\n", elapsed)
}
