// Package hocon implements a HOCON (Human-Optimized Config Object
// Notation) parser and evaluator: Scanner, Parser, Merger, Include
// Resolver, Resolver and Post-processors compose into Load/FromStr, and
// the path and decode packages provide typed access to the result.
package hocon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikai233/gohocon/include"
	"github.com/mikai233/gohocon/ir"
	"github.com/mikai233/gohocon/merge"
	"github.com/mikai233/gohocon/parse"
	"github.com/mikai233/gohocon/resolve"
	"github.com/mikai233/gohocon/value"
)

// Load parses the HOCON document at path and fully resolves it (spec.md
// §6 "load(path, options?)"), searching for includes relative to path's
// own directory first, then the configured classpath roots.
func Load(path string, opts ...Option) (*ir.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hocon: %w", err)
	}
	o := apply(opts)
	return parseMergeResolve(data, filepath.Dir(path), o)
}

// FromStr parses text as a HOCON document (spec.md §6 "from_str(text,
// options?)"); includes resolve relative to the configured classpath
// roots only, since there is no source file directory.
func FromStr(text string, opts ...Option) (*ir.Node, error) {
	o := apply(opts)
	return parseMergeResolve([]byte(text), "", o)
}

// LoadWithFallback loads path and then merges it under a separately
// loaded fallback document (original_source/src/factory.rs's
// ConfigFactory pattern — "reference.conf" style layered defaults): path
// wins on every key the two share, and any key only the fallback
// defines is carried through unchanged.
func LoadWithFallback(path, fallbackPath string, opts ...Option) (*ir.Node, error) {
	primary, err := Load(path, opts...)
	if err != nil {
		return nil, err
	}
	fallback, err := Load(fallbackPath, opts...)
	if err != nil {
		return nil, err
	}
	return merge.Nodes(fallback, primary), nil
}

func parseMergeResolve(data []byte, baseDir string, o *options) (*ir.Node, error) {
	raw, err := parse.Parse(data, parse.RecursionDepthLimit(o.recursionDepthLimit))
	if err != nil {
		return nil, err
	}
	expanded, err := include.Expand(raw, include.Options{
		ClasspathRoots: o.classpathRoots,
		BaseDir:        baseDir,
		Order:          o.extensionLessIncludeOrder,
	})
	if err != nil {
		return nil, err
	}
	resolved, err := resolve.Resolve(expanded, resolve.Options{
		SubstitutionDepthLimit: o.substitutionDepthLimit,
		UseSystemEnvironment:   o.useSystemEnvironment,
	})
	if err != nil {
		return nil, err
	}
	return value.ArrayifyObjects(resolved), nil
}
