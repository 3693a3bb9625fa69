// File: errors.go
// Role: Sentinel errors for the cluster graph core, plus a method-context
// wrapping helper.
//
// Error policy (explicit and strict, per SPEC_FULL.md's ambient stack):
//   - Only sentinel variables are exported; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site.
//   - Implementations attach context with wrapf below, using %w.
//
// AI-Hints (file):
//   - errors.Is(err, ErrNotFound) covers both "no such global id" and
//     "no such local handle" lookups — the distinction is not load-bearing
//     for callers, only for the message wrapf attaches.
//   - There is no cross-cluster-scope sentinel: scope is reported
//     structurally via AddEdgeResult.Scope, per spec.md §7.
package core

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a lookup for a global id or a local handle found
// nothing in the cluster's subtree.
var ErrNotFound = errors.New("core: not found")

// ErrPreconditionViolated indicates a caller-supplied precondition failed:
// identical endpoints on AddEdge, a cluster vertex where a non-cluster one
// is required, moving a vertex into a cluster that is not a direct child,
// or similar.
var ErrPreconditionViolated = errors.New("core: precondition violated")

// wrapf prefixes err with a deterministic "<method>: <message>" context
// while preserving it for errors.Is via %w.
func wrapf(method, format string, err error, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, msg, err)
}
