// Package include implements the Include Resolver (spec.md §4.4): it
// walks a raw *ir.Node tree, finds IncludeType placeholders left by
// parse.Parse, loads and parses the referenced resource against the
// configured classpath roots, and splices the result in at the include
// site, merging it into the enclosing object.
//
// Resolution is depth-first and recursive: an included document may
// itself contain further includes, which are expanded before the
// surrounding merge completes. Cycles are detected via a stack of
// canonicalized (absolute, symlink-resolved) resource paths.
package include
