package decode

import (
	"encoding"
	"fmt"
	"reflect"
	"time"

	"github.com/mikai233/gohocon/ir"
)

// Encode converts a Go value into an *ir.Node tree, the inverse of
// Decode. A struct field tagged `hocon:",duration"` is encoded as its
// canonical string form (time.Duration.String()); `hocon:",size"`
// encodes as a plain byte count, since HOCON size literals have no
// single canonical unit to round-trip to.
func Encode(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	return encodeValue(reflect.ValueOf(v), fieldTag{}, map[uintptr]string{}, "")
}

func encodeValue(val reflect.Value, tag fieldTag, visited map[uintptr]string, fieldPath string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Ptr || kind == reflect.Interface {
		if val.IsNil() {
			return ir.Null(), nil
		}
		if kind == reflect.Ptr {
			ptrAddr := val.Pointer()
			if prev, seen := visited[ptrAddr]; seen {
				return nil, &MarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("circular reference: %s -> %s", prev, fieldPath)}
			}
			visited[ptrAddr] = fieldPath
			defer delete(visited, ptrAddr)
		}
		return encodeValue(val.Elem(), tag, visited, fieldPath)
	}

	if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return nil, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		return ir.FromString(string(text)), nil
	}
	if val.CanAddr() {
		if tm, ok := val.Addr().Interface().(encoding.TextMarshaler); ok {
			text, err := tm.MarshalText()
			if err != nil {
				return nil, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
			}
			return ir.FromString(string(text)), nil
		}
	}

	switch kind {
	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if tag.duration {
			return ir.FromString(time.Duration(val.Int()).String()), nil
		}
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromInt(int64(val.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Slice, reflect.Array:
		return encodeSlice(val, visited, fieldPath)

	case reflect.Map:
		return encodeMap(val, visited, fieldPath)

	case reflect.Struct:
		return encodeStruct(val, visited, fieldPath)

	default:
		return nil, &MarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported source kind %s", kind)}
	}
}

func encodeSlice(val reflect.Value, visited map[uintptr]string, fieldPath string) (*ir.Node, error) {
	if val.Kind() == reflect.Slice && val.IsNil() {
		return ir.Null(), nil
	}
	values := make([]*ir.Node, val.Len())
	for i := 0; i < val.Len(); i++ {
		n, err := encodeValue(val.Index(i), fieldTag{}, visited, fmt.Sprintf("%s[%d]", fieldPath, i))
		if err != nil {
			return nil, err
		}
		values[i] = n
	}
	return ir.FromSlice(values), nil
}

func encodeMap(val reflect.Value, visited map[uintptr]string, fieldPath string) (*ir.Node, error) {
	if val.IsNil() {
		return ir.Null(), nil
	}
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{FieldPath: fieldPath, Message: "map key must be string"}
	}
	mapPtr := val.Pointer()
	if prev, seen := visited[mapPtr]; seen {
		return nil, &MarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("circular reference: %s -> %s", prev, fieldPath)}
	}
	visited[mapPtr] = fieldPath
	defer delete(visited, mapPtr)

	out := ir.EmptyObject()
	iter := val.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		n, err := encodeValue(iter.Value(), fieldTag{}, visited, joinFieldPath(fieldPath, key))
		if err != nil {
			return nil, err
		}
		out.SetField(key, n)
	}
	return out, nil
}

func encodeStruct(val reflect.Value, visited map[uintptr]string, fieldPath string) (*ir.Node, error) {
	typ := val.Type()
	out := ir.EmptyObject()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := parseTag(sf.Tag.Get("hocon"))
		if tag.skip {
			continue
		}
		if sf.Anonymous && tag.name == "" {
			if sf.Type.Kind() == reflect.Struct {
				embedded, err := encodeStruct(val.Field(i), visited, fieldPath)
				if err != nil {
					return nil, err
				}
				for j, f := range embedded.Fields {
					out.SetField(f, embedded.Values[j])
				}
			}
			continue
		}
		name := sf.Name
		if tag.name != "" {
			name = tag.name
		}
		n, err := encodeValue(val.Field(i), tag, visited, joinFieldPath(fieldPath, name))
		if err != nil {
			return nil, err
		}
		out.SetField(name, n)
	}
	return out, nil
}
