package encode

import (
	"strings"

	"github.com/mikai233/gohocon/ir"
)

// MustString renders node and panics on error; used by debug.Logf where
// an encoding failure means the caller passed an unresolved node.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	var b strings.Builder
	if err := Encode(node, &b, opts...); err != nil {
		panic(err)
	}
	return b.String()
}
