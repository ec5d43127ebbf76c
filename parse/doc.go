// Package parse implements the HOCON grammar (spec.md §4.2): a recursive
// descent parser over token.Token that produces a raw *ir.Node tree still
// carrying Substitution, Concat and Include placeholders for later stages.
//
// Key assignment, path-key nesting (a.b.c = 1), duplicate-key merging
// within a single object, and the `+=` self-append desugaring all happen
// here, since they are properties of how the document is structured, not
// of how it is later resolved.
package parse
