package parse

import (
	"errors"
	"fmt"

	"github.com/mikai233/gohocon/token"
)

// Sentinel errors, matched with errors.Is by callers that need to
// distinguish parse failures from recursion-depth failures.
var (
	ErrParse          = errors.New("parse error")
	ErrRecursionDepth = errors.New("recursion depth exceeded")
)

// Err is the error type returned for every malformed-grammar condition;
// it always carries a position, mirroring token.ScanError's shape.
type Err struct {
	Err error
	Pos token.Pos
}

func (e *Err) Error() string { return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String()) }
func (e *Err) Unwrap() error { return e.Err }

func parseErrorf(pos token.Pos, format string, args ...any) error {
	return &Err{Err: fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...)), Pos: pos}
}

func recursionErrorf(pos token.Pos) error {
	return &Err{Err: fmt.Errorf("%w (limit exceeded while descending into a nested object or array)", ErrRecursionDepth), Pos: pos}
}
