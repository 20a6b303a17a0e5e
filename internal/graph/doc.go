// Package graph converts source object trees into target node trees.
//
// The conversion of one object is: resolve the target node type from
// the component list (first recognized tag wins, generic container
// otherwise), copy the local transform, dispatch each component in
// order to its converter, then recurse into children preserving order.
// Component converters add properties, synthesize auxiliary child
// nodes (collision shapes), look up asset references in the reference
// table, or rewrite the node's proposed type; the type is finalized
// only when the whole object is done.
package graph
