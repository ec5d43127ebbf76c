package value

import (
	"errors"
	"testing"
	"time"

	"github.com/mikai233/gohocon/ir"
)

func TestArrayifyObjectsConvertsNumericKeyedObject(t *testing.T) {
	obj := ir.FromKeyVals([]ir.KeyVal{
		{Key: "1", Value: ir.FromString("b")},
		{Key: "0", Value: ir.FromString("a")},
		{Key: "2", Value: ir.FromString("c")},
	})
	got := ArrayifyObjects(obj)
	if got.Type != ir.ArrayType || len(got.Values) != 3 {
		t.Fatalf("got = %+v, want array of 3", got)
	}
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if got.Values[i].String != w {
			t.Fatalf("got[%d] = %q, want %q", i, got.Values[i].String, w)
		}
	}
}

func TestArrayifyObjectsLeavesNonNumericKeyedObjectAlone(t *testing.T) {
	obj := ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Value: ir.FromString("x")},
	})
	got := ArrayifyObjects(obj)
	if got.Type != ir.ObjectType {
		t.Fatalf("got = %+v, want object unchanged", got)
	}
}

func TestArrayifyObjectsRejectsLeadingZeroKeys(t *testing.T) {
	obj := ir.FromKeyVals([]ir.KeyVal{
		{Key: "01", Value: ir.FromString("a")},
		{Key: "02", Value: ir.FromString("b")},
	})
	got := ArrayifyObjects(obj)
	if got.Type != ir.ObjectType {
		t.Fatalf("got = %+v, want object (leading-zero keys disqualify)", got)
	}
}

func TestArrayifyObjectsSuppressedForEmptyObject(t *testing.T) {
	got := ArrayifyObjects(ir.EmptyObject())
	if got.Type != ir.ObjectType {
		t.Fatalf("got = %+v, want empty object unchanged", got)
	}
}

func TestArrayifyObjectsAppliesBottomUp(t *testing.T) {
	inner := ir.FromKeyVals([]ir.KeyVal{
		{Key: "0", Value: ir.FromString("x")},
		{Key: "1", Value: ir.FromString("y")},
	})
	outer := ir.FromKeyVals([]ir.KeyVal{{Key: "nested", Value: inner}})
	got := ArrayifyObjects(outer)
	nested := got.Field("nested")
	if nested.Type != ir.ArrayType || len(nested.Values) != 2 {
		t.Fatalf("nested = %+v, want array of 2", nested)
	}
}

func TestArrayifyObjectsIsIdempotent(t *testing.T) {
	obj := ir.FromKeyVals([]ir.KeyVal{
		{Key: "0", Value: ir.FromString("a")},
		{Key: "1", Value: ir.FromString("b")},
	})
	once := ArrayifyObjects(obj)
	twice := ArrayifyObjects(once)
	if len(once.Values) != len(twice.Values) {
		t.Fatalf("once = %+v, twice = %+v, want equal", once, twice)
	}
	for i := range once.Values {
		if once.Values[i].String != twice.Values[i].String {
			t.Fatalf("index %d differs between one and two applications", i)
		}
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"30s", 30 * time.Second},
		{"500ms", 500 * time.Millisecond},
		{"1h", time.Hour},
		{"2d", 48 * time.Hour},
		{"100ns", 100 * time.Nanosecond},
	}
	for _, c := range cases {
		got, err := ParseDuration(c.in)
		if err != nil {
			t.Fatalf("ParseDuration(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseDuration(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDurationInvalidUnit(t *testing.T) {
	_, err := ParseDuration("30 bananas")
	if err == nil || !errors.Is(err, ErrInvalidUnit) {
		t.Fatalf("err = %v, want ErrInvalidUnit", err)
	}
}

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"1KB", 1000},
		{"1kB", 1000},
		{"2MiB", 2 * (1 << 20)},
		{"500B", 500},
		{"1K", 1024},
		{"1Ki", 1024},
		{"1EiB", 1 << 60},
	}
	for _, c := range cases {
		got, err := ParseSize(c.in)
		if err != nil {
			t.Fatalf("ParseSize(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseSize(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseSizeInvalidUnit(t *testing.T) {
	_, err := ParseSize("lots")
	if err == nil || !errors.Is(err, ErrInvalidUnit) {
		t.Fatalf("err = %v, want ErrInvalidUnit", err)
	}
}
