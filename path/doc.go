// Package path implements the Access/path API (spec.md §4.7):
// GetByPath for segment-wise lookup through a resolved value tree, and
// ToJSON/FromJSON, a bijection between *ir.Node and a generic JSON value
// tree (map[string]any / []any / string / int64 / float64 / bool / nil)
// on the JSON-representable subset.
package path
