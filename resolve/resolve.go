package resolve

import (
	"strconv"

	"github.com/mikai233/gohocon/debug"
	"github.com/mikai233/gohocon/ir"
	"github.com/mikai233/gohocon/merge"
)

// Resolve replaces every Substitution and Concat node in root with its
// concrete value, following spec.md §4.5. root must already be merged
// and include-expanded (see merge and include packages); it is not
// mutated, a fresh resolved tree is returned.
//
// A top-level binding whose value resolves to "undefined" (an optional
// substitution with no target, per spec.md §8 invariant 5) is dropped
// from its enclosing object or array entirely, rather than becoming
// null.
func Resolve(root *ir.Node, opts Options) (*ir.Node, error) {
	r := &resolver{
		root:      root,
		opts:      opts,
		resolving: map[*ir.Node]bool{},
	}
	if opts.UseSystemEnvironment {
		r.env = envMap()
	}
	resolved, ok, err := r.resolveField(root)
	if err != nil {
		return nil, err
	}
	if !ok {
		return ir.EmptyObject(), nil
	}
	return resolved, nil
}

type resolver struct {
	root      *ir.Node
	opts      Options
	env       map[string]string
	resolving map[*ir.Node]bool
	hops      int
}

// resolveField resolves n with a cycle guard keyed on n's identity: if n
// is already being resolved somewhere up the current call stack, this is
// a genuine reference cycle, not a legitimate forward reference.
func (r *resolver) resolveField(n *ir.Node) (*ir.Node, bool, error) {
	if r.resolving[n] {
		return nil, false, cyclicErr(n)
	}
	r.resolving[n] = true
	defer delete(r.resolving, n)
	return r.resolveNode(n)
}

func (r *resolver) resolveNode(n *ir.Node) (*ir.Node, bool, error) {
	switch n.Type {
	case ir.NullType, ir.BoolType, ir.NumberType, ir.StringType:
		return n, true, nil
	case ir.ArrayType:
		return r.resolveArray(n)
	case ir.ObjectType:
		return r.resolveObject(n)
	case ir.SubstitutionType:
		return r.resolveSubstitution(n)
	case ir.ConcatType:
		return r.resolveConcat(n)
	default:
		return nil, false, unresolvedErr(n)
	}
}

func (r *resolver) resolveObject(n *ir.Node) (*ir.Node, bool, error) {
	out := ir.EmptyObject()
	for i, f := range n.Fields {
		v, ok, err := r.resolveField(n.Values[i])
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}
		out.SetField(f, v)
	}
	return out, true, nil
}

func (r *resolver) resolveArray(n *ir.Node) (*ir.Node, bool, error) {
	var values []*ir.Node
	for _, e := range n.Values {
		v, ok, err := r.resolveField(e)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}
		values = append(values, v)
	}
	return ir.FromSlice(values), true, nil
}

func (r *resolver) resolveSubstitution(n *ir.Node) (*ir.Node, bool, error) {
	if n.IsSelf {
		if n.SelfPrior == nil {
			if n.Optional {
				return nil, false, nil
			}
			return nil, false, unresolvedErr(n)
		}
		return r.chase(n, n.SelfPrior)
	}

	target, foundInDoc, err := r.lookupPath(n.Path)
	if err != nil {
		return nil, false, err
	}
	if foundInDoc {
		if debug.Resolve() {
			debug.Logf("resolve: %s -> %s\n", joinPath(n.Path), n.PathString())
		}
		return r.chase(n, target)
	}
	if r.env != nil {
		if s, ok := r.env[joinPath(n.Path)]; ok {
			if debug.Env() {
				debug.Logf("resolve: %s from environment\n", joinPath(n.Path))
			}
			return ir.FromString(s), true, nil
		}
	}
	if n.Optional {
		return nil, false, nil
	}
	return nil, false, unresolvedErr(n)
}

// chase resolves target on n's behalf, counting it as one substitution
// hop against the configured depth limit.
func (r *resolver) chase(n, target *ir.Node) (*ir.Node, bool, error) {
	r.hops++
	if r.hops > r.opts.depthLimit() {
		return nil, false, depthErr(n)
	}
	return r.resolveField(target)
}

// lookupPath navigates root's raw structure to path, resolving only the
// containers actually traversed (an intermediate field that is itself an
// unresolved Concat of object literals is resolved just enough to reach
// the next segment). foundInDoc is false when any segment is missing, or
// present but resolves to "undefined".
func (r *resolver) lookupPath(path []string) (target *ir.Node, foundInDoc bool, err error) {
	cur := r.root
	for _, seg := range path {
		if cur.Type != ir.ObjectType {
			resolved, ok, rerr := r.resolveField(cur)
			if rerr != nil {
				return nil, false, rerr
			}
			if !ok || resolved.Type != ir.ObjectType {
				return nil, false, nil
			}
			cur = resolved
		}
		next := cur.Field(seg)
		if next == nil {
			return nil, false, nil
		}
		cur = next
	}
	resolved, ok, rerr := r.resolveField(cur)
	if rerr != nil {
		return nil, false, rerr
	}
	if !ok {
		return nil, false, nil
	}
	return resolved, true, nil
}

type concatPart struct {
	idx int
	val *ir.Node
}

// resolveConcat implements spec.md §4.5's value concatenation rules:
// object parts merge, array parts append, and scalar parts join into a
// string preserving the literal inline whitespace recorded in Seps.
func (r *resolver) resolveConcat(n *ir.Node) (*ir.Node, bool, error) {
	var kept []concatPart
	for i, part := range n.Values {
		v, ok, err := r.resolveField(part)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}
		kept = append(kept, concatPart{idx: i, val: v})
	}
	if len(kept) == 0 {
		return nil, false, nil
	}
	if len(kept) == 1 {
		return kept[0].val, true, nil
	}

	allObjects, allArrays, allScalar := true, true, true
	for _, k := range kept {
		switch k.val.Type {
		case ir.ObjectType:
			allArrays, allScalar = false, false
		case ir.ArrayType:
			allObjects, allScalar = false, false
		default:
			allObjects, allArrays = false, false
		}
	}

	switch {
	case allObjects:
		merged := kept[0].val
		for _, k := range kept[1:] {
			merged = merge.Nodes(merged, k.val)
		}
		return merged, true, nil
	case allArrays:
		var values []*ir.Node
		for _, k := range kept {
			values = append(values, k.val.Values...)
		}
		return ir.FromSlice(values), true, nil
	case allScalar:
		return ir.FromString(r.joinScalars(n, kept)), true, nil
	default:
		return nil, false, concatMismatchErr(n)
	}
}

func (r *resolver) joinScalars(n *ir.Node, kept []concatPart) string {
	var b []byte
	for i, k := range kept {
		if i > 0 {
			sepIdx := k.idx - 1
			if sepIdx >= 0 && sepIdx < len(n.Seps) {
				b = append(b, n.Seps[sepIdx]...)
			}
		}
		b = append(b, stringify(k.val)...)
	}
	return string(b)
}

func stringify(v *ir.Node) string {
	switch v.Type {
	case ir.StringType:
		return v.String
	case ir.NumberType:
		switch {
		case v.Int64 != nil:
			return strconv.FormatInt(*v.Int64, 10)
		case v.Float64 != nil:
			return strconv.FormatFloat(*v.Float64, 'g', -1, 64)
		default:
			return v.Number
		}
	case ir.BoolType:
		return strconv.FormatBool(v.Bool)
	case ir.NullType:
		return "null"
	default:
		return ""
	}
}
