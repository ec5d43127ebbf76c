package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mikai233/gohocon/internal/encode"
	"github.com/mikai233/gohocon/ir"
)

// Node wraps an *ir.Node so that it pretty-prints as JSON when passed to
// Logf, without forcing every call site to import internal/encode.
type Node struct{ *ir.Node }

func (n Node) String() string {
	if n.Node == nil || !n.Node.IsResolved() {
		return fmt.Sprintf("%+v", n.Node)
	}
	return encode.MustString(n.Node)
}

// JSON marshals v for inclusion in a Logf message, falling back to %v on
// marshal failure.
func JSON(v any) string {
	d, err := json.MarshalIndent(v, "  ", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}

// Logf writes a trace line to stderr, gated by the caller first checking
// the relevant debug.Xxx() getter.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
