// Package configdiff compares two resolved configuration trees, for the
// `hocon diff` CLI subcommand.
//
// FieldDiff aligns two objects' field-name sequences by mapping each
// distinct field name to a rune and running a rune-sequence diff over
// them (github.com/sergi/go-diff), interpreting each equal/insert/delete
// run as an unchanged-or-modified/added/removed field.
// TextDiff renders both sides as JSON text and produces a character-level,
// ANSI-colored diff with the same library. MergePatch/ApplyMergePatch use
// github.com/evanphx/json-patch's RFC 7396 JSON Merge Patch support over
// the two sides' JSON rendering.
package configdiff
