// Package watch re-resolves a loaded HOCON document whenever its source
// file changes, for the `hocon watch` CLI subcommand and for long-running
// processes that want to pick up configuration edits without restarting.
//
// Since this module's include expansion does not retain a dependency
// graph of which files were actually spliced in (spec.md §4.4 resolves
// includes eagerly and discards the locator once resolved), the watcher
// watches the root document's containing directory rather than computing
// an exact include set — editing any file alongside the root document
// triggers a reload attempt. Watching a containing directory rather than
// a single file also survives editors that replace-by-rename instead of
// writing in place.
package watch
