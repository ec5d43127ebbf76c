package configdiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mikai233/gohocon/ir"
	"github.com/mikai233/gohocon/path"
)

// TextDiff renders both sides as indented JSON and returns a
// character-level diff of the two texts, rendered by go-diff's
// DiffPrettyText: the full text, with insertions and deletions marked by
// ANSI color escapes.
func TextDiff(oldNode, newNode *ir.Node) (string, error) {
	oldText, err := jsonText(oldNode)
	if err != nil {
		return "", err
	}
	newText, err := jsonText(newNode)
	if err != nil {
		return "", err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs), nil
}

func jsonText(n *ir.Node) (string, error) {
	b, err := jsonBytes(n)
	if err != nil {
		return "", err
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, b, "", "  "); err != nil {
		return "", err
	}
	return pretty.String(), nil
}

// ChangeKind classifies a single field's change between two objects.
type ChangeKind int

const (
	Unchanged ChangeKind = iota
	Added
	Removed
	Modified
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return "unchanged"
	}
}

// FieldChange describes one top-level-or-nested field's change.
type FieldChange struct {
	Field  string
	Kind   ChangeKind
	From   any
	To     any
	Nested []FieldChange
}

// FieldDiff compares two resolved objects field by field: field names on
// both sides are mapped to runes so go-diff's DiffMainRunes can align the
// two field-name sequences, and each resulting equal/insert/delete run
// becomes an unchanged/modified, added, or removed FieldChange. Equal-named
// fields whose values are themselves objects are recursed into; everything
// else is compared with reflect.DeepEqual on its JSON rendering.
func FieldDiff(oldNode, newNode *ir.Node) ([]FieldChange, error) {
	if oldNode == nil || oldNode.Type != ir.ObjectType || newNode == nil || newNode.Type != ir.ObjectType {
		return nil, fmt.Errorf("configdiff: FieldDiff requires two resolved objects")
	}
	return diffObjectFields(oldNode, newNode)
}

func diffObjectFields(from, to *ir.Node) ([]FieldChange, error) {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsToRunes(fieldMap, runeMap, from.Fields)
	toRunes := mapFieldsToRunes(fieldMap, runeMap, to.Fields)

	dmp := diffpatch.New()
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)

	var changes []FieldChange
	fi, ti := 0, 0
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			for _, r := range d.Text {
				name := runeMap[r]
				v, err := path.ToJSON(from.Values[fi])
				if err != nil {
					return nil, err
				}
				changes = append(changes, FieldChange{Field: name, Kind: Removed, From: v})
				fi++
			}
		case diffpatch.DiffInsert:
			for _, r := range d.Text {
				name := runeMap[r]
				v, err := path.ToJSON(to.Values[ti])
				if err != nil {
					return nil, err
				}
				changes = append(changes, FieldChange{Field: name, Kind: Added, To: v})
				ti++
			}
		case diffpatch.DiffEqual:
			for _, r := range d.Text {
				name := runeMap[r]
				change, err := diffFieldValue(name, from.Values[fi], to.Values[ti])
				if err != nil {
					return nil, err
				}
				if change != nil {
					changes = append(changes, *change)
				}
				fi++
				ti++
			}
		}
	}
	return changes, nil
}

func diffFieldValue(name string, from, to *ir.Node) (*FieldChange, error) {
	if from.Type == ir.ObjectType && to.Type == ir.ObjectType {
		nested, err := diffObjectFields(from, to)
		if err != nil {
			return nil, err
		}
		if len(nested) == 0 {
			return nil, nil
		}
		return &FieldChange{Field: name, Kind: Modified, Nested: nested}, nil
	}
	fromJSON, err := path.ToJSON(from)
	if err != nil {
		return nil, err
	}
	toJSON, err := path.ToJSON(to)
	if err != nil {
		return nil, err
	}
	if reflect.DeepEqual(fromJSON, toJSON) {
		return nil, nil
	}
	return &FieldChange{Field: name, Kind: Modified, From: fromJSON, To: toJSON}, nil
}

func mapFieldsToRunes(m map[string]rune, im map[rune]string, fields []string) []rune {
	rs := make([]rune, len(fields))
	for i, f := range fields {
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
