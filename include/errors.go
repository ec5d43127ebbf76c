package include

import (
	"errors"
	"fmt"
)

var (
	ErrCyclicInclude   = errors.New("cyclic include")
	ErrMissingRequired = errors.New("missing required include")
	ErrIo              = errors.New("include: io error")
)

// Err carries the include locator that failed, alongside the underlying
// sentinel (ErrCyclicInclude, ErrMissingRequired, or ErrIo).
type Err struct {
	Err     error
	Locator string
}

func (e *Err) Error() string { return fmt.Sprintf("%s: %q", e.Err.Error(), e.Locator) }
func (e *Err) Unwrap() error { return e.Err }

func cyclicErr(locator string) error {
	return &Err{Err: ErrCyclicInclude, Locator: locator}
}

func missingRequiredErr(locator string) error {
	return &Err{Err: ErrMissingRequired, Locator: locator}
}

func ioErr(locator string, cause error) error {
	return &Err{Err: fmt.Errorf("%w: %s", ErrIo, cause.Error()), Locator: locator}
}
