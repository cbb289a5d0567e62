// Package node defines the generic document tree consumed and produced by the config package.
//
// A tree is made of three kinds of values:
//   - Scalar: a string, integer, float, boolean or null
//   - Sequence: an ordered list of nodes
//   - Mapping: an ordered list of (key, node) pairs with unique keys
//
// Trees are immutable once built. Parsers in config/parser produce them from raw
// bytes and render them back; the config package only walks them.
//
// Usage:
//
//	doc := node.Mapping(
//	    node.Pair{Key: "title", Value: node.String("X")},
//	    node.Pair{Key: "display", Value: node.String(node.ExternMarker)},
//	)
//	doc.Get("display").IsExtern() // true
package node
