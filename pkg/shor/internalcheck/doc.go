// Package internalcheck holds policy tests for the core library.
//
// The tests statically inspect pkg/shor and fail when code drifts from two
// invariants: randomness must flow through the injected Config.Rand source
// (no math/rand), and progress must flow through the logging facade (no
// direct printing). It is not intended for external use.
package internalcheck
