// Package diagnostic collects non-fatal findings from a conversion run.
//
// Unrecognized component tags and unresolved asset references are
// recoverable by design: the converter skips the unit or omits the
// property, records a diagnostic here, and keeps going. Only I/O
// failures abort a run, and those travel as ordinary errors.
package diagnostic
