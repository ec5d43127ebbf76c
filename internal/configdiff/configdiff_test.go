package configdiff

import (
	"strings"
	"testing"

	"github.com/mikai233/gohocon/include"
	"github.com/mikai233/gohocon/ir"
	"github.com/mikai233/gohocon/parse"
	"github.com/mikai233/gohocon/resolve"
)

func resolvedNode(t *testing.T, src string) *ir.Node {
	t.Helper()
	raw, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	expanded, err := include.Expand(raw, include.Options{BaseDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	resolved, err := resolve.Resolve(expanded, resolve.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return resolved
}

func TestFieldDiffDetectsAddedRemovedAndModified(t *testing.T) {
	oldNode := resolvedNode(t, `host = localhost, port = 8080, keep = 1`)
	newNode := resolvedNode(t, `host = example.com, keep = 1, extra = true`)

	changes, err := FieldDiff(oldNode, newNode)
	if err != nil {
		t.Fatal(err)
	}
	byField := map[string]FieldChange{}
	for _, c := range changes {
		byField[c.Field] = c
	}
	if c, ok := byField["host"]; !ok || c.Kind != Modified {
		t.Fatalf("host change = %+v, want Modified", c)
	}
	if c, ok := byField["port"]; !ok || c.Kind != Removed {
		t.Fatalf("port change = %+v, want Removed", c)
	}
	if c, ok := byField["extra"]; !ok || c.Kind != Added {
		t.Fatalf("extra change = %+v, want Added", c)
	}
	if _, ok := byField["keep"]; ok {
		t.Fatalf("keep should be unchanged and absent, got %+v", byField["keep"])
	}
}

func TestFieldDiffRecursesIntoNestedObjects(t *testing.T) {
	oldNode := resolvedNode(t, `db { host = a, port = 5432 }`)
	newNode := resolvedNode(t, `db { host = b, port = 5432 }`)

	changes, err := FieldDiff(oldNode, newNode)
	if err != nil {
		t.Fatal(err)
	}
	if len(changes) != 1 || changes[0].Field != "db" || changes[0].Kind != Modified {
		t.Fatalf("changes = %+v", changes)
	}
	if len(changes[0].Nested) != 1 || changes[0].Nested[0].Field != "host" {
		t.Fatalf("nested = %+v", changes[0].Nested)
	}
}

func TestTextDiffRendersChangedLine(t *testing.T) {
	oldNode := resolvedNode(t, `a = 1`)
	newNode := resolvedNode(t, `a = 2`)

	out, err := TextDiff(oldNode, newNode)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1") || !strings.Contains(out, "2") {
		t.Fatalf("TextDiff output = %q, want both old and new values present", out)
	}
}

func TestMergePatchThenApplyRoundTrips(t *testing.T) {
	oldNode := resolvedNode(t, `host = localhost, port = 8080`)
	newNode := resolvedNode(t, `host = example.com, port = 8080`)

	patch, err := MergePatch(oldNode, newNode)
	if err != nil {
		t.Fatal(err)
	}
	patched, err := ApplyMergePatch(oldNode, patch)
	if err != nil {
		t.Fatal(err)
	}
	if patched.Field("host").String != "example.com" {
		t.Fatalf("host = %+v, want example.com", patched.Field("host"))
	}
	if patched.Field("port").Int64 == nil || *patched.Field("port").Int64 != 8080 {
		t.Fatalf("port = %+v, want 8080", patched.Field("port"))
	}
}
