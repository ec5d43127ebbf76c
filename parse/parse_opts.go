package parse

// parseOpts holds the parser's functional-option configuration: a struct
// of resolved settings plus a slice of ParseOption functions that mutate
// it before parsing begins.
type parseOpts struct {
	recursionDepthLimit int
}

func defaultOpts() *parseOpts {
	return &parseOpts{recursionDepthLimit: 64}
}

// ParseOption configures a single Parse call.
type ParseOption func(*parseOpts)

// RecursionDepthLimit overrides the default nesting limit of 64 (spec.md
// §4.2 "Recursion depth limit").
func RecursionDepthLimit(n int) ParseOption {
	return func(o *parseOpts) { o.recursionDepthLimit = n }
}
