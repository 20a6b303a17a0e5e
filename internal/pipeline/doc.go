// Package pipeline drives one conversion run end to end, in the order
// the reference model requires: inventory first, then all asset
// converters, then scene and prefab conversion, then the reference
// rewrite over the whole output tree.
package pipeline
