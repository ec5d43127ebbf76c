// Package merge implements HOCON's duplicate-key and concatenation merge
// rules (spec.md §4.3).
//
// Merge is used in two places in the pipeline: the parser calls it every
// time a key is assigned a second time in the same object, and the
// resolver calls it when concatenating two object-typed parts of a
// Concat node. Both call sites share the same rule: object merges with
// object recursively, key order fixed by first mention; anything else
// replaces.
package merge
