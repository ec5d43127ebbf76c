package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mikai233/gohocon/ir"
)

// Encode writes node as indented JSON to w. node must be fully resolved
// (ir.Node.IsResolved); Encode panics on a deferred Substitution, Concat
// or Include node since those have no JSON representation.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := defaultState()
	for _, f := range opts {
		f(es)
	}
	var b strings.Builder
	encodeNode(&b, es, node, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func encodeNode(b *strings.Builder, es *encState, n *ir.Node, depth int) {
	switch n.Type {
	case ir.NullType:
		b.WriteString(es.colors.Color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		b.WriteString(es.colors.Color(ir.BoolType, ValueColor, strconv.FormatBool(n.Bool)))
	case ir.NumberType:
		b.WriteString(es.colors.Color(ir.NumberType, ValueColor, numberLiteral(n)))
	case ir.StringType:
		b.WriteString(es.colors.Color(ir.StringType, ValueColor, strconv.Quote(n.String)))
	case ir.ArrayType:
		encodeArray(b, es, n, depth)
	case ir.ObjectType:
		encodeObject(b, es, n, depth)
	default:
		panic(fmt.Sprintf("encode: unresolved node of type %s cannot be rendered as JSON", n.Type))
	}
}

func numberLiteral(n *ir.Node) string {
	switch {
	case n.Int64 != nil:
		return strconv.FormatInt(*n.Int64, 10)
	case n.Float64 != nil:
		return strconv.FormatFloat(*n.Float64, 'g', -1, 64)
	default:
		return n.Number
	}
}

func encodeArray(b *strings.Builder, es *encState, n *ir.Node, depth int) {
	if len(n.Values) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteString("[\n")
	for i, v := range n.Values {
		writeIndent(b, es, depth+1)
		encodeNode(b, es, v, depth+1)
		if i < len(n.Values)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	writeIndent(b, es, depth)
	b.WriteString("]")
}

func encodeObject(b *strings.Builder, es *encState, n *ir.Node, depth int) {
	if len(n.Fields) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	for i, f := range n.Fields {
		writeIndent(b, es, depth+1)
		b.WriteString(es.colors.Color(ir.ObjectType, FieldColor, strconv.Quote(f)))
		b.WriteString(": ")
		encodeNode(b, es, n.Values[i], depth+1)
		if i < len(n.Fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	writeIndent(b, es, depth)
	b.WriteString("}")
}

func writeIndent(b *strings.Builder, es *encState, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(es.indent)
	}
}
