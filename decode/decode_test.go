package decode

import (
	"reflect"
	"testing"
	"time"

	"github.com/mikai233/gohocon/include"
	"github.com/mikai233/gohocon/ir"
	"github.com/mikai233/gohocon/parse"
	"github.com/mikai233/gohocon/resolve"
)

type serverConfig struct {
	Host    string        `hocon:"host"`
	Port    int           `hocon:"port"`
	Timeout time.Duration `hocon:"timeout,duration"`
	Tags    []string      `hocon:"tags"`
}

func resolvedNode(t *testing.T, src string) *ir.Node {
	t.Helper()
	raw, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse.Parse: %v", err)
	}
	expanded, err := include.Expand(raw, include.Options{BaseDir: t.TempDir()})
	if err != nil {
		t.Fatalf("include.Expand: %v", err)
	}
	got, err := resolve.Resolve(expanded, resolve.Options{})
	if err != nil {
		t.Fatalf("resolve.Resolve: %v", err)
	}
	return got
}

func TestDecodeStructWithDurationTag(t *testing.T) {
	node := resolvedNode(t, `
host = localhost
port = 8080
timeout = 30s
tags = [a, b]
`)
	var cfg serverConfig
	if err := Decode(node, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Host != "localhost" || cfg.Port != 8080 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if len(cfg.Tags) != 2 || cfg.Tags[0] != "a" || cfg.Tags[1] != "b" {
		t.Fatalf("Tags = %v", cfg.Tags)
	}
}

func TestEncodeStructRoundTripsThroughDecode(t *testing.T) {
	in := serverConfig{Host: "example.com", Port: 443, Timeout: 5 * time.Second, Tags: []string{"x"}}
	node, err := Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	var out serverConfig
	if err := Decode(node, &out); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("out = %+v, want %+v", out, in)
	}
}

func TestDecodeNestedStructAndMap(t *testing.T) {
	type nested struct {
		Inner map[string]int `hocon:"inner"`
	}
	node := resolvedNode(t, `inner { a = 1, b = 2 }`)
	var n nested
	if err := Decode(node, &n); err != nil {
		t.Fatal(err)
	}
	if n.Inner["a"] != 1 || n.Inner["b"] != 2 {
		t.Fatalf("Inner = %v", n.Inner)
	}
}

func TestDecodeSkipsDashTaggedField(t *testing.T) {
	type withSecret struct {
		Public string `hocon:"public"`
		Secret string `hocon:"-"`
	}
	node := resolvedNode(t, `public = ok`)
	s := withSecret{Secret: "untouched"}
	if err := Decode(node, &s); err != nil {
		t.Fatal(err)
	}
	if s.Public != "ok" || s.Secret != "untouched" {
		t.Fatalf("s = %+v", s)
	}
}

func TestDecodeTypeMismatchErrors(t *testing.T) {
	type wantsInt struct {
		N int `hocon:"n"`
	}
	node := resolvedNode(t, `n = "not a number"`)
	var w wantsInt
	if err := Decode(node, &w); err == nil {
		t.Fatal("want type mismatch error")
	}
}
