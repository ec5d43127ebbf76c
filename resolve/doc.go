// Package resolve implements the Resolver (spec.md §4.5): it walks a
// merged, include-expanded raw tree and produces a fully concrete value
// tree with every Substitution and Concat node replaced.
//
// Resolution is on-demand and recursive rather than a literal
// whole-document dependency graph: a Substitution is resolved by
// navigating the raw tree to its target path and resolving that subtree,
// memo-free, with a per-call in-progress set standing in for the
// "reverse-topological order" requirement — a node currently being
// resolved that is asked to resolve itself again is a genuine cycle
// (spec.md §9 "recursion elimination" explicitly allows this kind of
// iterative/recursive refinement).
package resolve
