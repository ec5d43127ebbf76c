// Package encode renders a resolved *ir.Node tree as JSON text for the
// CLI and for debug.Logf, optionally colorized by value kind when the
// output is a terminal. HOCON-text emission is explicitly out of scope
// (spec.md §1 Non-goals); this package only ever produces JSON.
package encode
