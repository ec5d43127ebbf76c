package encode

// EncodeOption configures a single Encode call, following the same
// functional-options shape as parse.ParseOption.
type EncodeOption func(*encState)

type encState struct {
	indent string
	colors *Colors
}

func defaultState() *encState {
	return &encState{indent: "  ", colors: NoColors()}
}

// WithIndent overrides the per-level indentation string (default "  ").
func WithIndent(s string) EncodeOption {
	return func(e *encState) { e.indent = s }
}

// WithColors enables value-kind colorization using c (NewColors() for the
// default palette, NoColors() — the default — to disable it).
func WithColors(c *Colors) EncodeOption {
	return func(e *encState) { e.colors = c }
}
