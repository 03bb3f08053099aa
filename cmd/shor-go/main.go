package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	mrand "math/rand"
	"os"
	"strings"
	"time"

	"github.com/akamensky/argparse"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/shorlabs/shor-go/config"
	"github.com/shorlabs/shor-go/pkg/shor"
	"github.com/shorlabs/shor-go/pkg/shor/logging"
	"github.com/shorlabs/shor-go/printer"
	"github.com/shorlabs/shor-go/server"
)

var four = big.NewInt(4)

func main() {
	parser := argparse.NewParser("shor-go", "Classical simulator of Shor's integer factorization algorithm")
	all := parser.Flag("a", "all", &argparse.Options{Help: "Print the complete prime factorization as a table"})
	jsonOut := parser.Flag("j", "json", &argparse.Options{Help: "Output the result as JSON"})
	verbose := parser.Flag("V", "verbose", &argparse.Options{Help: "Log per-attempt progress to stderr"})
	attempts := parser.Int("", "attempts", &argparse.Options{Default: 0, Help: "Retry budget for the outer loop. 0 uses the configured default, negative removes the cap"})
	seed := parser.Int("", "seed", &argparse.Options{Default: 0, Help: "Seed for deterministic base sampling. 0 uses cryptographic randomness"})
	timeoutMs := parser.Int("", "timeout", &argparse.Options{Default: 0, Help: "Abort after this many milliseconds. 0 means no deadline"})
	skipPrime := parser.Flag("", "skip-prime-check", &argparse.Options{Help: "Skip the Miller-Rabin primality pre-check"})
	serve := parser.Flag("", "serve", &argparse.Options{Help: "Run the HTTP API server instead of a one-shot factorization"})
	listen := parser.String("l", "listen", &argparse.Options{Help: "Listen address for --serve (default from config)"})
	ver := parser.Flag("v", "version", &argparse.Options{Help: "Print version info and exit"})
	nArg := parser.StringPositional(&argparse.Options{Help: "Decimal integer to factor"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		return
	}

	if *ver {
		printer.Banner()
		os.Exit(0)
	}

	config.Init()

	if *serve {
		addr := *listen
		if addr == "" {
			addr = config.ListenAddr()
		}
		if err := server.Run(addr); err != nil {
			color.Red("server error: %v", err)
			os.Exit(1)
		}
		return
	}

	nStr := *nArg
	if nStr == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Print("Enter the number (N) to factor: ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			nStr = strings.TrimSpace(scanner.Text())
		}
	}
	if nStr == "" {
		fmt.Print(parser.Usage(nil))
		os.Exit(1)
	}

	n, ok := new(big.Int).SetString(nStr, 10)
	if !ok {
		color.Red("Invalid number input.")
		os.Exit(1)
	}
	if n.Cmp(four) < 0 {
		color.Red("Please enter a composite number greater than 3.")
		os.Exit(1)
	}

	cfg := shor.Config{
		MaxAttempts:        *attempts,
		SkipPrimalityCheck: *skipPrime || config.SkipPrimalityCheck(),
		Logger:             buildLogger(*verbose),
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = config.MaxAttempts()
	}
	if *seed != 0 {
		cfg.Rand = mrand.New(mrand.NewSource(int64(*seed)))
	}

	if !*jsonOut {
		printer.Banner()
		fmt.Printf("Attempting to factor N = %s\n", n)
	}

	ctx := context.Background()
	if *timeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(*timeoutMs)*time.Millisecond)
		defer cancel()
	}

	start := time.Now()
	if *all {
		primes, err := shor.FactorAll(ctx, n, cfg)
		elapsed := time.Since(start)
		if err != nil {
			reportFailure(err, elapsed, *jsonOut)
			os.Exit(1)
		}
		if *jsonOut {
			factors := make([]string, len(primes))
			for i, p := range primes {
				factors[i] = p.String()
			}
			writeJSON(map[string]any{
				"n":          n.String(),
				"factors":    factors,
				"elapsed_ms": elapsed.Milliseconds(),
			})
			return
		}
		printer.FactorTable(n, primes)
		fmt.Printf("Computation took: %v\n", elapsed)
		return
	}

	res, err := shor.Factor(ctx, n, cfg)
	elapsed := time.Since(start)
	if err != nil {
		reportFailure(err, elapsed, *jsonOut)
		os.Exit(1)
	}

	if *jsonOut {
		writeJSON(map[string]any{
			"n":          n.String(),
			"p":          res.P.String(),
			"q":          res.Q.String(),
			"method":     res.Method.String(),
			"attempts":   res.Attempts,
			"elapsed_ms": elapsed.Milliseconds(),
		})
		return
	}
	printer.Result(n, res, elapsed)
}

// buildLogger wires stderr progress logging; --verbose forces debug,
// otherwise the configured level applies.
func buildLogger(verbose bool) logging.Logger {
	level := parseLevel(config.LogLevel())
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return logging.New(slog.New(handler))
}

func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func reportFailure(err error, elapsed time.Duration, jsonOut bool) {
	if jsonOut {
		writeJSON(map[string]any{
			"error":      err.Error(),
			"elapsed_ms": elapsed.Milliseconds(),
		})
		return
	}
	printer.Failure(err, elapsed)
}

func writeJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		color.Red("encode output: %v", err)
	}
}
