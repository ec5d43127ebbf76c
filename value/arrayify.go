package value

import (
	"sort"
	"strconv"

	"github.com/mikai233/gohocon/ir"
)

// ArrayifyObjects applies spec.md §4.6's array-from-object conversion
// bottom-up: a non-empty object all of whose keys are array-index-shaped
// decimal integers becomes an array ordered by numeric key value. Any
// other object, and any empty object, passes through unchanged. n is not
// mutated.
func ArrayifyObjects(n *ir.Node) *ir.Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.ObjectType:
		return arrayifyObject(n)
	case ir.ArrayType:
		values := make([]*ir.Node, len(n.Values))
		for i, v := range n.Values {
			values[i] = ArrayifyObjects(v)
		}
		return ir.FromSlice(values)
	default:
		return n
	}
}

func arrayifyObject(n *ir.Node) *ir.Node {
	values := make([]*ir.Node, len(n.Values))
	for i, v := range n.Values {
		values[i] = ArrayifyObjects(v)
	}

	if isArrayShaped(n.Fields) {
		type indexed struct {
			idx int
			val *ir.Node
		}
		items := make([]indexed, len(n.Fields))
		for i, f := range n.Fields {
			idx, _ := strconv.Atoi(f)
			items[i] = indexed{idx: idx, val: values[i]}
		}
		sort.Slice(items, func(a, b int) bool { return items[a].idx < items[b].idx })
		ordered := make([]*ir.Node, len(items))
		for i, it := range items {
			ordered[i] = it.val
		}
		return ir.FromSlice(ordered)
	}

	out := ir.EmptyObject()
	for i, f := range n.Fields {
		out.SetField(f, values[i])
	}
	return out
}

// isArrayShaped reports whether fields is non-empty and every key is a
// non-negative decimal integer with no leading zero (except the literal
// "0").
func isArrayShaped(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if !isArrayIndex(f) {
			return false
		}
	}
	return true
}

func isArrayIndex(s string) bool {
	if s == "" {
		return false
	}
	if s == "0" {
		return true
	}
	if s[0] < '1' || s[0] > '9' {
		return false
	}
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
