// Package value implements the Post-processors stage (spec.md §4.6): a
// bottom-up array-from-object conversion applied to an already-resolved
// tree, and the as_duration/as_size unit parsers used by the typed
// access API.
package value
