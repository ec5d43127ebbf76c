// Package debug is the ambient tracing layer used across the pipeline: a
// handful of env-var-gated booleans read once at startup, exposed as
// zero-arg getters, plus a Logf helper for pretty-printing *ir.Node
// values. It deliberately carries no logging framework dependency.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Merge   bool
	Include bool
	Resolve bool
	Env     bool
	Watch   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("HOCON_DEBUG_MERGE")
	d.Include = boolEnv("HOCON_DEBUG_INCLUDE")
	d.Resolve = boolEnv("HOCON_DEBUG_RESOLVE")
	d.Env = boolEnv("HOCON_DEBUG_ENV")
	d.Watch = boolEnv("HOCON_DEBUG_WATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool   { return d.Merge }
func Include() bool { return d.Include }
func Resolve() bool { return d.Resolve }
func Env() bool     { return d.Env }
func Watch() bool   { return d.Watch }
