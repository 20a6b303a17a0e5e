// Package inventory builds the classification index of convertible
// source files: one walk over the project root, classifying files by
// extension into per-kind name-to-path tables.
//
// Bare-name collisions are resolved last-write-wins. That is a defined
// policy, not an accident: projects relying on unique bare names must
// dedupe upstream.
package inventory
