package format

import (
	"bufio"
	"strings"

	"github.com/mikai233/gohocon/ir"
)

// ParseProperties parses a Java .properties document into an *ir.Node
// object tree, splitting each key on '.' the same way parse.Parse splits
// a dotted HOCON key, so that "a.b=1" and HOCON's "a.b = 1" merge
// identically (spec.md §4.4).
func ParseProperties(data []byte) (*ir.Node, error) {
	root := ir.EmptyObject()
	sc := bufio.NewScanner(strings.NewReader(string(data)))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		key, value := splitPropertyLine(line)
		if key == "" {
			continue
		}
		assignDotted(root, strings.Split(key, "."), ir.FromString(value))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return root, nil
}

func splitPropertyLine(line string) (key, value string) {
	idx := strings.IndexAny(line, "=:")
	if idx < 0 {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return "", ""
		}
		return fields[0], strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:])
}

func assignDotted(obj *ir.Node, path []string, value *ir.Node) {
	cur := obj
	for i := 0; i < len(path)-1; i++ {
		child := cur.Field(path[i])
		if child == nil || child.Type != ir.ObjectType {
			child = ir.EmptyObject()
			cur.SetField(path[i], child)
			child = cur.Field(path[i])
		}
		cur = child
	}
	cur.SetField(path[len(path)-1], value)
}
