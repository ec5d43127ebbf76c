package resolve

import (
	"os"
	"strings"
)

// Options configures the Resolver (spec.md §4.5, §6).
type Options struct {
	// SubstitutionDepthLimit bounds how many substitution indirections a
	// single lookup may chase before SubstitutionDepthExceeded is
	// reported. Defaults to 100.
	SubstitutionDepthLimit int
	// UseSystemEnvironment, when true, consults os.Environ() for a
	// substitution's path once the document itself is exhausted — after
	// in-document lookup fails, never before (spec.md §4.5 "environment
	// fallback", following the ordering used by the reference hocon
	// crate's Hocon::resolve).
	UseSystemEnvironment bool
}

func (o Options) depthLimit() int {
	if o.SubstitutionDepthLimit <= 0 {
		return 100
	}
	return o.SubstitutionDepthLimit
}

func envMap() map[string]string {
	env := os.Environ()
	m := make(map[string]string, len(env))
	for _, kv := range env {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			m[kv[:i]] = kv[i+1:]
		}
	}
	return m
}
