package hocon

import "github.com/mikai233/gohocon/format"

// options configures Load/FromStr (spec.md §6) through functional
// options, the same shape as parse.ParseOption; it is translated into
// the plain include.Options and resolve.Options structs.
type options struct {
	classpathRoots            []string
	recursionDepthLimit       int
	substitutionDepthLimit    int
	extensionLessIncludeOrder []format.Format
	useSystemEnvironment      bool
}

func defaultOptions() *options {
	return &options{
		recursionDepthLimit:       64,
		substitutionDepthLimit:    100,
		extensionLessIncludeOrder: format.DefaultOrder(),
		useSystemEnvironment:      true,
	}
}

// Option configures Load/FromStr/LoadWithFallback.
type Option func(*options)

// ClasspathRoots sets the ordered list of directories searched for
// includes. Default: ["."].
func ClasspathRoots(roots ...string) Option {
	return func(o *options) { o.classpathRoots = roots }
}

// RecursionDepthLimit bounds object/array nesting depth during parsing.
// Default: 64.
func RecursionDepthLimit(n int) Option {
	return func(o *options) { o.recursionDepthLimit = n }
}

// SubstitutionDepthLimit bounds substitution indirection hops during
// resolution. Default: 100.
func SubstitutionDepthLimit(n int) Option {
	return func(o *options) { o.substitutionDepthLimit = n }
}

// ExtensionLessIncludeOrder sets the format merge order used when an
// include locator has no extension. Default: format.DefaultOrder()
// (properties, then JSON, then HOCON — so HOCON wins).
func ExtensionLessIncludeOrder(order ...format.Format) Option {
	return func(o *options) { o.extensionLessIncludeOrder = order }
}

// UseSystemEnvironment controls whether `${p}` falls back to the process
// environment once the document is exhausted. Default: true.
func UseSystemEnvironment(use bool) Option {
	return func(o *options) { o.useSystemEnvironment = use }
}

func apply(opts []Option) *options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(o)
	}
	return o
}
