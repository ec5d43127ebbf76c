package path

import (
	"fmt"

	"github.com/mikai233/gohocon/ir"
)

// ToJSON converts a fully resolved node into a generic JSON value tree.
// It errors on Substitution/Concat/Include nodes, which only exist
// before resolve.Resolve has run.
func ToJSON(n *ir.Node) (any, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return n.Bool, nil
	case ir.StringType:
		return n.String, nil
	case ir.NumberType:
		switch {
		case n.Int64 != nil:
			return *n.Int64, nil
		case n.Float64 != nil:
			return *n.Float64, nil
		default:
			return n.Number, nil
		}
	case ir.ArrayType:
		out := make([]any, len(n.Values))
		for i, v := range n.Values {
			jv, err := ToJSON(v)
			if err != nil {
				return nil, err
			}
			out[i] = jv
		}
		return out, nil
	case ir.ObjectType:
		out := make(map[string]any, len(n.Fields))
		for i, f := range n.Fields {
			jv, err := ToJSON(n.Values[i])
			if err != nil {
				return nil, err
			}
			out[f] = jv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("path: cannot convert unresolved %s node to JSON", n.Type)
	}
}

// FromJSON converts a generic JSON value tree, as produced by
// encoding/json.Unmarshal into `any` or by ToJSON, into an *ir.Node.
func FromJSON(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case float64:
		if whole := int64(x); float64(whole) == x {
			return ir.FromInt(whole), nil
		}
		return ir.FromFloat(x), nil
	case []any:
		values := make([]*ir.Node, len(x))
		for i, e := range x {
			n, err := FromJSON(e)
			if err != nil {
				return nil, err
			}
			values[i] = n
		}
		return ir.FromSlice(values), nil
	case map[string]any:
		out := ir.EmptyObject()
		for k, e := range x {
			n, err := FromJSON(e)
			if err != nil {
				return nil, err
			}
			out.SetField(k, n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("path: unsupported JSON value of type %T", v)
	}
}
