package merge

import (
	"testing"

	"github.com/mikai233/gohocon/ir"
)

func TestNodesObjectMerge(t *testing.T) {
	existing := ir.FromKeyVals([]ir.KeyVal{{Key: "x", Value: ir.FromInt(1)}})
	incoming := ir.FromKeyVals([]ir.KeyVal{{Key: "y", Value: ir.FromInt(2)}})
	got := Nodes(existing, incoming)
	if len(got.Fields) != 2 || got.Fields[0] != "x" || got.Fields[1] != "y" {
		t.Fatalf("Fields = %v, want [x y]", got.Fields)
	}
}

func TestNodesNonObjectReplaces(t *testing.T) {
	existing := ir.FromInt(1)
	incoming := ir.FromString("two")
	got := Nodes(existing, incoming)
	if got != incoming {
		t.Fatalf("Nodes(non-object, non-object) should return incoming unchanged")
	}
}

func TestAssignFieldReportsPrior(t *testing.T) {
	obj := ir.EmptyObject()
	if p := AssignField(obj, "a", ir.FromInt(1)); p != nil {
		t.Fatalf("first assignment prior = %+v, want nil", p)
	}
	prior := AssignField(obj, "a", ir.FromInt(2))
	if prior == nil || prior.Int64 == nil || *prior.Int64 != 1 {
		t.Fatalf("prior = %+v, want 1", prior)
	}
	if got := obj.Field("a"); got.Int64 == nil || *got.Int64 != 2 {
		t.Fatalf("a = %+v, want 2", got)
	}
}
