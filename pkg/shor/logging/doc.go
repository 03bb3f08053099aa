// Package logging provides a minimal logging facade for the shor library.
//
// The package defines a Logger interface wrapping a subset of log/slog. The
// factorization loop reports per-attempt progress through it (which base is
// being tried, whether the period search succeeded, why a base was
// discarded), replacing direct printing so that callers decide where progress
// goes: a terminal, a structured log sink, or a websocket stream.
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	cfg := shor.Config{Logger: logging.New(slog.New(handler))}
//
// Custom implementations only need the five methods of the interface; see
// the server package's websocket adapter for an example.
package logging
