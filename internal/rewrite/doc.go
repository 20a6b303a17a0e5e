// Package rewrite is the final pass over the emitted target tree: it
// replaces every literal occurrence of a converted asset's original
// filename with its converted filename.
//
// The substitution is deliberately textual, not reference-graph-aware.
// It can only repair references left behind by conversion ordering; a
// node whose unrelated content happens to contain a matching filename
// substring is rewritten too. That imprecision is accepted and
// documented, not something to strengthen silently.
package rewrite
