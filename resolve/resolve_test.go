package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mikai233/gohocon/include"
	"github.com/mikai233/gohocon/ir"
	"github.com/mikai233/gohocon/parse"
)

func prepare(t *testing.T, src string) *ir.Node {
	t.Helper()
	raw, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse.Parse(%q): %v", src, err)
	}
	expanded, err := include.Expand(raw, include.Options{BaseDir: t.TempDir()})
	if err != nil {
		t.Fatalf("include.Expand: %v", err)
	}
	return expanded
}

func resolveStr(t *testing.T, src string) *ir.Node {
	t.Helper()
	got, err := Resolve(prepare(t, src), Options{})
	if err != nil {
		t.Fatalf("Resolve(%q): %v", src, err)
	}
	return got
}

func TestResolveSimpleSubstitution(t *testing.T) {
	got := resolveStr(t, `
name = mikai233
greeting = hello ${name}
`)
	if got.Field("greeting").String != "hello mikai233" {
		t.Fatalf("greeting = %q, want %q", got.Field("greeting").String, "hello mikai233")
	}
}

func TestResolveNestedPathSubstitution(t *testing.T) {
	got := resolveStr(t, `
a { x = 1 }
b = ${a.x}
`)
	if got.Field("b").Int64 == nil || *got.Field("b").Int64 != 1 {
		t.Fatalf("b = %+v, want 1", got.Field("b"))
	}
}

func TestResolveOptionalMissingDropsField(t *testing.T) {
	got := resolveStr(t, `
a = ${?missing}
b = 1
`)
	if got.Field("a") != nil {
		t.Fatalf("a = %+v, want absent", got.Field("a"))
	}
	if got.Field("b").Int64 == nil || *got.Field("b").Int64 != 1 {
		t.Fatalf("b = %+v, want 1", got.Field("b"))
	}
}

func TestResolveRequiredMissingErrors(t *testing.T) {
	_, err := Resolve(prepare(t, `a = ${missing}`), Options{})
	if err == nil || !errors.Is(err, ErrUnresolvedSubstitution) {
		t.Fatalf("err = %v, want ErrUnresolvedSubstitution", err)
	}
}

func TestResolveSelfAppendAccumulates(t *testing.T) {
	got := resolveStr(t, `
a = [1, 2]
a += 3
`)
	arr := got.Field("a")
	if arr.Type != ir.ArrayType || len(arr.Values) != 3 {
		t.Fatalf("a = %+v, want array of 3", arr)
	}
	if *arr.Values[2].Int64 != 3 {
		t.Fatalf("a[2] = %+v, want 3", arr.Values[2])
	}
}

func TestResolveSelfAppendWithNoPriorStartsArray(t *testing.T) {
	// a += 1 desugars to a = ${?a} [1]; with no prior "a", the ${?a} part
	// contributes nothing and the result is simply [1].
	got := resolveStr(t, `a += 1`)
	arr := got.Field("a")
	if arr == nil || arr.Type != ir.ArrayType || len(arr.Values) != 1 {
		t.Fatalf("a = %+v, want [1]", arr)
	}
	if *arr.Values[0].Int64 != 1 {
		t.Fatalf("a[0] = %+v, want 1", arr.Values[0])
	}
}

func TestResolveObjectConcatenationMerges(t *testing.T) {
	got := resolveStr(t, `
a = { x = 1 } { y = 2 }
`)
	obj := got.Field("a")
	if obj.Field("x").Int64 == nil || *obj.Field("x").Int64 != 1 {
		t.Fatalf("a.x = %+v, want 1", obj.Field("x"))
	}
	if obj.Field("y").Int64 == nil || *obj.Field("y").Int64 != 2 {
		t.Fatalf("a.y = %+v, want 2", obj.Field("y"))
	}
}

func TestResolveArrayConcatenationAppends(t *testing.T) {
	got := resolveStr(t, `a = [1, 2] [3, 4]`)
	arr := got.Field("a")
	if len(arr.Values) != 4 {
		t.Fatalf("a = %+v, want 4 elements", arr)
	}
}

func TestResolveStringConcatenationPreservesWhitespace(t *testing.T) {
	got := resolveStr(t, `
name = world
a = hello   ${name}
`)
	if got.Field("a").String != "hello   world" {
		t.Fatalf("a = %q, want %q", got.Field("a").String, "hello   world")
	}
}

func TestResolveConcatTypeMismatchErrors(t *testing.T) {
	_, err := Resolve(prepare(t, `
obj = { x = 1 }
a = ${obj} [1, 2]
`), Options{})
	if err == nil || !errors.Is(err, ErrConcatTypeMismatch) {
		t.Fatalf("err = %v, want ErrConcatTypeMismatch", err)
	}
}

func TestResolveCyclicSubstitutionErrors(t *testing.T) {
	_, err := Resolve(prepare(t, `
a = ${b}
b = ${a}
`), Options{})
	if err == nil || !errors.Is(err, ErrCyclicSubstitution) {
		t.Fatalf("err = %v, want ErrCyclicSubstitution", err)
	}
}

func TestResolveSubstitutionDepthExceeded(t *testing.T) {
	_, err := Resolve(prepare(t, `
a = ${b}
b = ${a}
`), Options{SubstitutionDepthLimit: 1})
	if err == nil {
		t.Fatal("want error")
	}
	if !errors.Is(err, ErrCyclicSubstitution) && !errors.Is(err, ErrSubstitutionDepth) {
		t.Fatalf("err = %v, want depth or cyclic error", err)
	}
}

func TestResolveEnvironmentFallbackOnlyAfterDocumentExhausted(t *testing.T) {
	t.Setenv("GOHOCON_TEST_VAR", "from-env")
	_, err := Resolve(prepare(t, `a = ${GOHOCON_TEST_VAR}`), Options{})
	if err == nil || !errors.Is(err, ErrUnresolvedSubstitution) {
		t.Fatalf("err = %v, want ErrUnresolvedSubstitution (UseSystemEnvironment not enabled)", err)
	}

	resolved, err := Resolve(prepare(t, `a = ${GOHOCON_TEST_VAR}`), Options{UseSystemEnvironment: true})
	if err != nil {
		t.Fatal(err)
	}
	if resolved.Field("a").String != "from-env" {
		t.Fatalf("a = %+v, want %q", resolved.Field("a"), "from-env")
	}

	resolved2, err := Resolve(prepare(t, `
GOHOCON_TEST_VAR = in-document
a = ${GOHOCON_TEST_VAR}
`), Options{UseSystemEnvironment: true})
	if err != nil {
		t.Fatal(err)
	}
	if resolved2.Field("a").String != "in-document" {
		t.Fatalf("a = %+v, want in-document value to win over environment", resolved2.Field("a"))
	}
}

func TestResolveSelfAppendAccumulatesAcrossInclude(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "base.conf"), []byte(`x = [1]`), 0o644); err != nil {
		t.Fatal(err)
	}
	raw, err := parse.Parse([]byte(`
include "base.conf"
x += 2
`))
	if err != nil {
		t.Fatalf("parse.Parse: %v", err)
	}
	expanded, err := include.Expand(raw, include.Options{BaseDir: dir})
	if err != nil {
		t.Fatalf("include.Expand: %v", err)
	}
	got, err := Resolve(expanded, Options{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	arr := got.Field("x")
	if arr == nil || arr.Type != ir.ArrayType || len(arr.Values) != 2 {
		t.Fatalf("x = %+v, want [1, 2]", arr)
	}
	if arr.Values[0].Int64 == nil || *arr.Values[0].Int64 != 1 {
		t.Fatalf("x[0] = %+v, want 1", arr.Values[0])
	}
	if arr.Values[1].Int64 == nil || *arr.Values[1].Int64 != 2 {
		t.Fatalf("x[1] = %+v, want 2", arr.Values[1])
	}
}
