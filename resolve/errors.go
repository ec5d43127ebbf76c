package resolve

import (
	"errors"
	"fmt"

	"github.com/mikai233/gohocon/ir"
)

var (
	ErrUnresolvedSubstitution = errors.New("unresolved substitution")
	ErrCyclicSubstitution     = errors.New("cyclic substitution")
	ErrSubstitutionDepth      = errors.New("substitution depth exceeded")
	ErrConcatTypeMismatch     = errors.New("concatenation type mismatch")
)

// Err carries the substitution path or node breadcrumb that failed,
// alongside the underlying sentinel.
type Err struct {
	Err  error
	Path string
}

func (e *Err) Error() string { return fmt.Sprintf("%s: %s", e.Err.Error(), e.Path) }
func (e *Err) Unwrap() error { return e.Err }

func unresolvedErr(n *ir.Node) error {
	return &Err{Err: ErrUnresolvedSubstitution, Path: "${" + joinPath(n.Path) + "}"}
}

func cyclicErr(n *ir.Node) error {
	return &Err{Err: ErrCyclicSubstitution, Path: n.PathString()}
}

func depthErr(n *ir.Node) error {
	return &Err{Err: ErrSubstitutionDepth, Path: n.PathString()}
}

func concatMismatchErr(n *ir.Node) error {
	return &Err{Err: ErrConcatTypeMismatch, Path: n.PathString()}
}

func joinPath(p []string) string {
	out := ""
	for i, s := range p {
		if i > 0 {
			out += "."
		}
		out += s
	}
	return out
}
