package path

import "github.com/mikai233/gohocon/ir"

// GetByPath walks root by segment: against an ObjectType node a segment
// indexes by field name, against an ArrayType node a segment indexes by
// position (a segment that isn't a non-negative integer, or is out of
// range, is a miss), and traversing through anything else is a miss.
func GetByPath(root *ir.Node, segments []string) (*ir.Node, bool) {
	cur := root
	for _, seg := range segments {
		if cur == nil {
			return nil, false
		}
		switch cur.Type {
		case ir.ObjectType:
			next := cur.Field(seg)
			if next == nil {
				return nil, false
			}
			cur = next
		case ir.ArrayType:
			idx, ok := parseIndex(seg)
			if !ok || idx < 0 || idx >= len(cur.Values) {
				return nil, false
			}
			cur = cur.Values[idx]
		default:
			return nil, false
		}
	}
	return cur, cur != nil
}

// SplitPath splits a dotted path string into segments, the same way the
// parser splits an unquoted key (quoted segments containing literal dots
// are not re-split here; callers that need that distinction should carry
// segments as a slice from the start).
func SplitPath(s string) []string {
	if s == "" {
		return nil
	}
	segs := []string{}
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			segs = append(segs, s[start:i])
			start = i + 1
		}
	}
	segs = append(segs, s[start:])
	return segs
}

func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
