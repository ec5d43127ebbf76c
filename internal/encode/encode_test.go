package encode

import (
	"strings"
	"testing"

	"github.com/mikai233/gohocon/ir"
)

func TestEncodeObject(t *testing.T) {
	n := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Value: ir.FromInt(2)},
		{Key: "b", Value: ir.FromString("two")},
	})
	got := MustString(n)
	want := "{\n  \"a\": 2,\n  \"b\": \"two\"\n}"
	if got != want {
		t.Fatalf("MustString = %q, want %q", got, want)
	}
}

func TestEncodeEmptyArrayAndObject(t *testing.T) {
	n := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Value: ir.FromSlice(nil)},
		{Key: "b", Value: ir.EmptyObject()},
	})
	got := MustString(n)
	if !strings.Contains(got, `"a": []`) {
		t.Fatalf("MustString = %q, want empty array rendered as []", got)
	}
	if !strings.Contains(got, `"b": {}`) {
		t.Fatalf("MustString = %q, want empty object rendered as {}", got)
	}
}

func TestEncodeUnresolvedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Encode on a Substitution node should panic")
		}
	}()
	MustString(&ir.Node{Type: ir.SubstitutionType, Path: []string{"a"}})
}
