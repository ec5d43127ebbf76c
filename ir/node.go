package ir

import "strconv"

// Type identifies the kind of value or deferred expression a Node holds.
type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType

	// Deferred kinds. A Node of one of these types only ever appears
	// between parsing and resolution; Resolve replaces every occurrence.
	SubstitutionType
	ConcatType
	IncludeType
)

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "bool"
	case NumberType:
		return "number"
	case StringType:
		return "string"
	case ArrayType:
		return "array"
	case ObjectType:
		return "object"
	case SubstitutionType:
		return "substitution"
	case ConcatType:
		return "concat"
	case IncludeType:
		return "include"
	default:
		return "unknown"
	}
}

// IncludeKind distinguishes the locator syntax used at an include site.
type IncludeKind int

const (
	IncludeHeuristic IncludeKind = iota // include "foo.conf"
	IncludeURL
	IncludeFile
	IncludeClasspath
)

// Node is the single recursive type used for every stage of the pipeline:
// the raw tree coming out of the parser, the merged and include-expanded
// tree, and the final resolved value tree all share this representation.
type Node struct {
	Type Type

	Parent      *Node
	ParentIndex int
	ParentField string

	// ObjectType: Fields[i] names Values[i]. Same length, order preserved.
	Fields []string
	Values []*Node

	// ArrayType and ConcatType both use Values for their ordered parts.
	// ConcatType additionally records the literal inline whitespace that
	// appeared between adjacent parts in source, so that string
	// concatenation can reproduce it (spec.md §4.5).
	Seps []string

	Bool   bool
	String string

	// Number values preserve the int-vs-decimal distinction (spec.md §3).
	Int64   *int64
	Float64 *float64
	Number  string // fallback lexeme when neither Int64 nor Float64 fits

	// SubstitutionType fields.
	Path     []string
	Optional bool
	// IsSelf marks a substitution produced by desugaring `+=`, or any
	// substitution whose path is exactly the path of the assignment it
	// occurs in (spec.md §4.3, §4.5, §9 "cyclic reference in data model").
	IsSelf bool
	// SelfPrior is the merge of all strictly earlier assignments to this
	// node's own path, captured at merge time, or nil if there is none.
	// Only meaningful when IsSelf is true.
	SelfPrior *Node

	// IncludeType fields.
	IncludeLocator  string
	IncludeRequired bool
	IncludeKind     IncludeKind
}

func Null() *Node { return &Node{Type: NullType} }

func FromBool(b bool) *Node { return &Node{Type: BoolType, Bool: b} }

func FromString(s string) *Node { return &Node{Type: StringType, String: s} }

func FromInt(v int64) *Node { return &Node{Type: NumberType, Int64: &v} }

func FromFloat(v float64) *Node { return &Node{Type: NumberType, Float64: &v} }

// FromSlice builds an ArrayType node from already-constructed elements,
// wiring up Parent/ParentIndex.
func FromSlice(values []*Node) *Node {
	n := &Node{Type: ArrayType, Values: make([]*Node, len(values))}
	for i, v := range values {
		v.Parent = n
		v.ParentIndex = i
		v.ParentField = ""
		n.Values[i] = v
	}
	return n
}

// KeyVal is one field of an object literal, used by FromKeyVals.
type KeyVal struct {
	Key   string
	Value *Node
}

// FromKeyVals builds an ObjectType node, preserving the given order.
func FromKeyVals(kvs []KeyVal) *Node {
	n := &Node{
		Type:   ObjectType,
		Fields: make([]string, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i, kv := range kvs {
		n.Fields[i] = kv.Key
		kv.Value.Parent = n
		kv.Value.ParentIndex = i
		kv.Value.ParentField = kv.Key
		n.Values[i] = kv.Value
	}
	return n
}

// EmptyObject returns a freshly allocated, field-less ObjectType node.
func EmptyObject() *Node {
	return &Node{Type: ObjectType}
}

// Field returns the value bound to key in an ObjectType node, or nil.
func (n *Node) Field(key string) *Node {
	if n == nil || n.Type != ObjectType {
		return nil
	}
	for i, f := range n.Fields {
		if f == key {
			return n.Values[i]
		}
	}
	return nil
}

// SetField inserts or replaces key's binding, preserving the position of
// an existing key and appending new keys at the end.
func (n *Node) SetField(key string, v *Node) {
	for i, f := range n.Fields {
		if f == key {
			v.Parent = n
			v.ParentIndex = i
			v.ParentField = key
			n.Values[i] = v
			return
		}
	}
	i := len(n.Fields)
	n.Fields = append(n.Fields, key)
	v.Parent = n
	v.ParentIndex = i
	v.ParentField = key
	n.Values = append(n.Values, v)
}

// IsResolved reports whether node and its entire subtree contain no
// deferred (substitution/concat/include) nodes.
func (n *Node) IsResolved() bool {
	if n == nil {
		return true
	}
	switch n.Type {
	case SubstitutionType, ConcatType, IncludeType:
		return false
	case ObjectType, ArrayType:
		for _, v := range n.Values {
			if !v.IsResolved() {
				return false
			}
		}
	}
	return true
}

// Clone deep-copies node, detaching it from its original parent.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Parent = nil
	c.ParentIndex = 0
	c.ParentField = ""
	if n.Int64 != nil {
		v := *n.Int64
		c.Int64 = &v
	}
	if n.Float64 != nil {
		v := *n.Float64
		c.Float64 = &v
	}
	if n.Path != nil {
		c.Path = append([]string(nil), n.Path...)
	}
	if n.Seps != nil {
		c.Seps = append([]string(nil), n.Seps...)
	}
	if n.Fields != nil {
		c.Fields = append([]string(nil), n.Fields...)
	}
	if n.SelfPrior != nil {
		c.SelfPrior = n.SelfPrior.Clone()
	}
	if n.Values != nil {
		c.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			cv := v.Clone()
			cv.Parent = &c
			cv.ParentIndex = i
			if i < len(c.Fields) {
				cv.ParentField = c.Fields[i]
			}
			c.Values[i] = cv
		}
	}
	return &c
}

// Root walks up to the document root.
func (n *Node) Root() *Node {
	r := n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// PathString renders the node's position as a dotted path, for error
// messages and diagnostics; it is not the KPath/JSONPath syntax of a
// full access-path grammar, just a readable breadcrumb.
func (n *Node) PathString() string {
	if n == nil || n.Parent == nil {
		return "$"
	}
	switch n.Parent.Type {
	case ObjectType:
		return n.Parent.PathString() + "." + n.ParentField
	case ArrayType, ConcatType:
		return n.Parent.PathString() + "[" + strconv.Itoa(n.ParentIndex) + "]"
	default:
		return n.Parent.PathString()
	}
}
