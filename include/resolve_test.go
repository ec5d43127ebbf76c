package include

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mikai233/gohocon/ir"
	"github.com/mikai233/gohocon/parse"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestExpandSplicesIncludedObject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "other.conf", `y = 2`)
	raw := mustParse(t, `x = 1
include "other.conf"
`)
	got, err := Expand(raw, Options{BaseDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	if got.Field("x").Int64 == nil || *got.Field("x").Int64 != 1 {
		t.Fatalf("x = %+v, want 1", got.Field("x"))
	}
	if got.Field("y").Int64 == nil || *got.Field("y").Int64 != 2 {
		t.Fatalf("y = %+v, want 2", got.Field("y"))
	}
}

func TestExpandMissingOptionalIncludeIsEmpty(t *testing.T) {
	raw := mustParse(t, `include "does-not-exist.conf"
a = 1
`)
	got, err := Expand(raw, Options{BaseDir: t.TempDir()})
	if err != nil {
		t.Fatalf("optional missing include should not error: %v", err)
	}
	if got.Field("a").Int64 == nil || *got.Field("a").Int64 != 1 {
		t.Fatalf("a = %+v, want 1", got.Field("a"))
	}
}

func TestExpandMissingRequiredIncludeErrors(t *testing.T) {
	raw := mustParse(t, `include required("does-not-exist.conf")`)
	_, err := Expand(raw, Options{BaseDir: t.TempDir()})
	if err == nil || !errors.Is(err, ErrMissingRequired) {
		t.Fatalf("err = %v, want ErrMissingRequired", err)
	}
}

func TestExpandDetectsCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.conf", `include "b.conf"`)
	writeFile(t, dir, "b.conf", `include "a.conf"`)
	raw := mustParse(t, `include "a.conf"`)
	_, err := Expand(raw, Options{BaseDir: dir})
	if err == nil || !errors.Is(err, ErrCyclicInclude) {
		t.Fatalf("err = %v, want ErrCyclicInclude", err)
	}
}

func TestExpandExtensionLessOrderPrefersHOCON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "foo.json", `{"a": 1, "b": 2}`)
	writeFile(t, dir, "foo.conf", `a = 3`)
	raw := mustParse(t, `include "foo"`)
	got, err := Expand(raw, Options{BaseDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	if got.Field("a").Int64 == nil || *got.Field("a").Int64 != 3 {
		t.Fatalf("a = %+v, want 3 (HOCON wins default order)", got.Field("a"))
	}
	if got.Field("b").Int64 == nil || *got.Field("b").Int64 != 2 {
		t.Fatalf("b = %+v, want 2 (only present in JSON)", got.Field("b"))
	}
}

func TestExpandJSONIncludePreservesFieldOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "other.json", `{"z": 1, "a": 2, "m": 3}`)
	raw := mustParse(t, `include "other.json"`)
	got, err := Expand(raw, Options{BaseDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	if len(got.Fields) != len(want) {
		t.Fatalf("Fields = %v, want %v", got.Fields, want)
	}
	for i, k := range want {
		if got.Fields[i] != k {
			t.Fatalf("Fields = %v, want %v", got.Fields, want)
		}
	}
}

func mustParse(t *testing.T, src string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse.Parse(%q): %v", src, err)
	}
	return n
}
