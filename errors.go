package hocon

import (
	"github.com/mikai233/gohocon/include"
	"github.com/mikai233/gohocon/parse"
	"github.com/mikai233/gohocon/resolve"
	"github.com/mikai233/gohocon/token"
	"github.com/mikai233/gohocon/value"
)

// Error kinds (spec.md §7), re-exported at the root so callers can
// errors.Is/errors.As against a single package without reaching into
// the pipeline's internal packages.
var (
	ErrParse                  = parse.ErrParse
	ErrRecursionDepthExceeded = parse.ErrRecursionDepth
	ErrCyclicInclude          = include.ErrCyclicInclude
	ErrMissingRequiredInclude = include.ErrMissingRequired
	ErrIo                     = include.ErrIo
	ErrUnresolvedSubstitution = resolve.ErrUnresolvedSubstitution
	ErrCyclicSubstitution     = resolve.ErrCyclicSubstitution
	ErrSubstitutionDepth      = resolve.ErrSubstitutionDepth
	ErrConcatTypeMismatch     = resolve.ErrConcatTypeMismatch
	ErrInvalidUnit            = value.ErrInvalidUnit
)

// ScanError is the scanner's malformed-token error (spec.md §7
// "ScanError"); match it with `var se *hocon.ScanError; errors.As(err, &se)`
// and inspect se.Kind to distinguish the specific scan failure.
type ScanError = token.ScanError
