package parse

import (
	"errors"
	"testing"

	"github.com/mikai233/gohocon/ir"
)

func mustParse(t *testing.T, src string) *ir.Node {
	t.Helper()
	n, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return n
}

func TestParseDuplicateKeysMerge(t *testing.T) {
	// spec.md §8 scenario 1
	root := mustParse(t, `{a = 1, a = 2}`)
	if got := root.Field("a"); got == nil || got.Type != ir.NumberType || got.Int64 == nil || *got.Int64 != 2 {
		t.Fatalf("a = %+v, want resolved-looking number 2", got)
	}
}

func TestParseDottedPathNesting(t *testing.T) {
	// spec.md §8 scenario 2
	root := mustParse(t, "a.b.c = 1\na.b.d = 2")
	b := root.Field("a").Field("b")
	if b == nil || b.Type != ir.ObjectType {
		t.Fatalf("a.b = %+v, want object", b)
	}
	if len(b.Fields) != 2 || b.Fields[0] != "c" || b.Fields[1] != "d" {
		t.Fatalf("a.b fields = %v, want [c d] in first-mention order", b.Fields)
	}
}

func TestParseObjectMerge(t *testing.T) {
	// spec.md §8 invariant 3: a = {x:1}; a = {y:2}; a = {x:3} == {x:3, y:2}
	root := mustParse(t, "a = {x:1}\na = {y:2}\na = {x:3}")
	a := root.Field("a")
	if a == nil || a.Type != ir.ObjectType {
		t.Fatalf("a = %+v, want object", a)
	}
	if len(a.Fields) != 2 || a.Fields[0] != "x" || a.Fields[1] != "y" {
		t.Fatalf("a fields = %v, want [x y] (order fixed by first mention)", a.Fields)
	}
	if a.Field("x").Int64 == nil || *a.Field("x").Int64 != 3 {
		t.Fatalf("a.x = %+v, want 3", a.Field("x"))
	}
}

func TestParseSelfAppendDesugars(t *testing.T) {
	// spec.md §8 scenario 3: x = [1,2]\nx += 3
	root := mustParse(t, "x = [1,2]\nx += 3")
	x := root.Field("x")
	if x.Type != ir.ConcatType || len(x.Values) != 2 {
		t.Fatalf("x = %+v, want desugared Concat of 2 parts", x)
	}
	self := x.Values[0]
	if self.Type != ir.SubstitutionType || !self.IsSelf || !self.Optional {
		t.Fatalf("x.Values[0] = %+v, want self-referential optional substitution", self)
	}
	if len(self.Path) != 1 || self.Path[0] != "x" {
		t.Fatalf("self.Path = %v, want [x]", self.Path)
	}
	if self.SelfPrior == nil || self.SelfPrior.Type != ir.ArrayType || len(self.SelfPrior.Values) != 2 {
		t.Fatalf("self.SelfPrior = %+v, want the prior [1,2] array", self.SelfPrior)
	}
	rhs := x.Values[1]
	if rhs.Type != ir.ArrayType || len(rhs.Values) != 1 {
		t.Fatalf("x.Values[1] = %+v, want singleton array [3]", rhs)
	}
}

func TestParseSubstitutionAndConcat(t *testing.T) {
	// spec.md §8 scenario 4
	root := mustParse(t, "name = mikai233\ngreeting = hello ${name}")
	g := root.Field("greeting")
	if g.Type != ir.ConcatType || len(g.Values) != 2 {
		t.Fatalf("greeting = %+v, want a 2-part concat", g)
	}
	if g.Values[0].Type != ir.StringType || g.Values[0].String != "hello" {
		t.Fatalf("greeting.Values[0] = %+v, want string \"hello\"", g.Values[0])
	}
	sub := g.Values[1]
	if sub.Type != ir.SubstitutionType || sub.Optional || len(sub.Path) != 1 || sub.Path[0] != "name" {
		t.Fatalf("greeting.Values[1] = %+v, want required substitution to [name]", sub)
	}
	if len(g.Seps) != 1 || g.Seps[0] != " " {
		t.Fatalf("greeting.Seps = %v, want [\" \"]", g.Seps)
	}
}

func TestParseOptionalSubstitution(t *testing.T) {
	// spec.md §8 scenario 7
	root := mustParse(t, "a = ${?MISSING}\nb = 1")
	a := root.Field("a")
	if a.Type != ir.SubstitutionType || !a.Optional {
		t.Fatalf("a = %+v, want optional substitution", a)
	}
	if b := root.Field("b"); b == nil || b.Int64 == nil || *b.Int64 != 1 {
		t.Fatalf("b = %+v, want 1", b)
	}
}

func TestParseArrayFromObjectKeysUnaffectedAtParseTime(t *testing.T) {
	// spec.md §8 scenario 5: array-from-object is a post-processing step,
	// not a parse-time one, so at this stage it must still be an object.
	root := mustParse(t, `a = { "0" = x, "1" = y }`)
	a := root.Field("a")
	if a.Type != ir.ObjectType {
		t.Fatalf("a = %+v, want object (array conversion happens post-resolution)", a)
	}
}

func TestParseInclude(t *testing.T) {
	root := mustParse(t, `include "foo.conf"`)
	if len(root.Values) != 1 || root.Values[0].Type != ir.IncludeType {
		t.Fatalf("root.Values = %+v, want one IncludeType placeholder", root.Values)
	}
	inc := root.Values[0]
	if inc.IncludeLocator != "foo.conf" || inc.IncludeRequired || inc.IncludeKind != ir.IncludeHeuristic {
		t.Fatalf("include node = %+v, unexpected fields", inc)
	}
}

func TestParseIncludeRequired(t *testing.T) {
	root := mustParse(t, `include required("foo.conf")`)
	inc := root.Values[0]
	if !inc.IncludeRequired || inc.IncludeLocator != "foo.conf" {
		t.Fatalf("include node = %+v, want required locator foo.conf", inc)
	}
}

func TestParseRecursionDepthExceeded(t *testing.T) {
	src := ""
	for i := 0; i < 100; i++ {
		src += "{a="
	}
	src += "1"
	for i := 0; i < 100; i++ {
		src += "}"
	}
	_, err := Parse([]byte(src), RecursionDepthLimit(8))
	if err == nil || !errors.Is(err, ErrRecursionDepth) {
		t.Fatalf("Parse deeply nested input: err = %v, want ErrRecursionDepth", err)
	}
}

func TestParseBareSyntaxError(t *testing.T) {
	_, err := Parse([]byte("a"))
	if err == nil || !errors.Is(err, ErrParse) {
		t.Fatalf("Parse(\"a\"): err = %v, want ErrParse", err)
	}
}
