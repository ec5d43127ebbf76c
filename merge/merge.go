package merge

import "github.com/mikai233/gohocon/ir"

// Nodes merges incoming into existing per spec.md §4.3:
//
//   - object ⊕ object: recursive key-wise merge; incoming wins on leaf
//     keys; existing keys retain their original position.
//   - anything else: incoming replaces existing outright.
//
// Neither argument's Fields/Values are changed. Merged objects are new
// nodes, but a non-object incoming is returned as is, and child values
// are shared with the inputs and re-parented onto the result.
func Nodes(existing, incoming *ir.Node) *ir.Node {
	if existing == nil {
		return incoming
	}
	if incoming == nil {
		return existing
	}
	if existing.Type == ir.ObjectType && incoming.Type == ir.ObjectType {
		return mergeObjects(existing, incoming)
	}
	return incoming
}

func mergeObjects(existing, incoming *ir.Node) *ir.Node {
	result := ir.EmptyObject()
	pos := map[string]int{}
	for i, f := range existing.Fields {
		pos[f] = i
		result.SetField(f, existing.Values[i])
	}
	for i, f := range incoming.Fields {
		if j, ok := pos[f]; ok {
			merged := Nodes(existing.Values[j], incoming.Values[i])
			result.SetField(f, merged)
			continue
		}
		result.SetField(f, incoming.Values[i])
	}
	return result
}

// AssignField merges value into obj's binding for key, implementing the
// "duplicate assignments merge (objects) or replace (non-objects)"
// invariant for a single field, and reports the field's binding *before*
// this assignment so self-reference rewriting (spec.md §4.5 "prior
// binding") can see it.
func AssignField(obj *ir.Node, key string, value *ir.Node) (prior *ir.Node) {
	prior = obj.Field(key)
	if prior == nil {
		obj.SetField(key, value)
		return nil
	}
	obj.SetField(key, Nodes(prior, value))
	return prior
}
