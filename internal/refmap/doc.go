// Package refmap holds the reference table of one conversion run: the
// mapping from source asset path to converted target asset path.
//
// The table is what decouples conversion order from reference
// resolution order: converters register their output here, node
// conversion consults it, and the final rewrite pass replays every
// pair over the emitted documents. It is threaded explicitly through
// the stages and scoped to one run, never ambient state.
package refmap
