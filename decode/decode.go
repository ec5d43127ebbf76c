package decode

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"github.com/mikai233/gohocon/ir"
	"github.com/mikai233/gohocon/path"
	"github.com/mikai233/gohocon/value"
)

// Decode populates v, which must be a non-nil pointer, from node.
func Decode(node *ir.Node, v any) error {
	if v == nil {
		return &UnmarshalError{Message: "destination cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return &UnmarshalError{Message: "destination must be a non-nil pointer"}
	}
	return decodeValue(node, val.Elem(), fieldTag{}, "")
}

func decodeValue(node *ir.Node, val reflect.Value, tag fieldTag, fieldPath string) error {
	if node == nil || node.Type == ir.NullType {
		val.Set(reflect.Zero(val.Type()))
		return nil
	}

	typ := val.Type()

	if typ.Kind() == reflect.Ptr {
		if val.IsNil() {
			val.Set(reflect.New(typ.Elem()))
		}
		return decodeValue(node, val.Elem(), tag, fieldPath)
	}

	if val.CanAddr() {
		if tu, ok := val.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if node.Type != ir.StringType {
				return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("expected string for TextUnmarshaler, got %s", node.Type)}
			}
			return tu.UnmarshalText([]byte(node.String))
		}
	}

	switch typ.Kind() {
	case reflect.String:
		if node.Type != ir.StringType {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("expected string, got %s", node.Type)}
		}
		val.SetString(node.String)
		return nil

	case reflect.Bool:
		if node.Type != ir.BoolType {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("expected bool, got %s", node.Type)}
		}
		val.SetBool(node.Bool)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if tag.duration || tag.size {
			return decodeUnitInt(node, val, tag, fieldPath)
		}
		n, err := numberAsInt64(node, fieldPath)
		if err != nil {
			return err
		}
		val.SetInt(n)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := numberAsInt64(node, fieldPath)
		if err != nil {
			return err
		}
		val.SetUint(uint64(n))
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := numberAsFloat64(node, fieldPath)
		if err != nil {
			return err
		}
		val.SetFloat(f)
		return nil

	case reflect.Slice:
		if node.Type != ir.ArrayType {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("expected array, got %s", node.Type)}
		}
		out := reflect.MakeSlice(typ, len(node.Values), len(node.Values))
		for i, e := range node.Values {
			if err := decodeValue(e, out.Index(i), fieldTag{}, fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
				return err
			}
		}
		val.Set(out)
		return nil

	case reflect.Array:
		if node.Type != ir.ArrayType {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("expected array, got %s", node.Type)}
		}
		if len(node.Values) != typ.Len() {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("expected %d elements, got %d", typ.Len(), len(node.Values))}
		}
		for i, e := range node.Values {
			if err := decodeValue(e, val.Index(i), fieldTag{}, fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		if node.Type != ir.ObjectType {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("expected object, got %s", node.Type)}
		}
		if typ.Key().Kind() != reflect.String {
			return &UnmarshalError{FieldPath: fieldPath, Message: "map key must be string"}
		}
		out := reflect.MakeMapWithSize(typ, len(node.Fields))
		for i, f := range node.Fields {
			elem := reflect.New(typ.Elem()).Elem()
			if err := decodeValue(node.Values[i], elem, fieldTag{}, joinFieldPath(fieldPath, f)); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(f).Convert(typ.Key()), elem)
		}
		val.Set(out)
		return nil

	case reflect.Struct:
		return decodeStruct(node, val, fieldPath)

	case reflect.Interface:
		if typ.NumMethod() != 0 {
			return &UnmarshalError{FieldPath: fieldPath, Message: "cannot decode into non-empty interface"}
		}
		jv, err := path.ToJSON(node)
		if err != nil {
			return &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		val.Set(reflect.ValueOf(jv))
		return nil

	default:
		return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported destination kind %s", typ.Kind())}
	}
}

func decodeUnitInt(node *ir.Node, val reflect.Value, tag fieldTag, fieldPath string) error {
	if node.Type != ir.StringType {
		return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("expected string unit literal, got %s", node.Type)}
	}
	if tag.duration {
		d, err := value.ParseDuration(node.String)
		if err != nil {
			return &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		val.SetInt(int64(d))
		return nil
	}
	sz, err := value.ParseSize(node.String)
	if err != nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
	}
	val.SetInt(sz)
	return nil
}

func decodeStruct(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ObjectType {
		return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("expected object, got %s", node.Type)}
	}
	typ := val.Type()
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
				if err := decodeStruct(node, val.Field(i), fieldPath); err != nil {
					return err
				}
			}
			continue
		}
		name := sf.Name
		if tag.name != "" {
			name = tag.name
		}
		field := node.Field(name)
		if field == nil {
			continue
		}
		if err := decodeValue(field, val.Field(i), tag, joinFieldPath(fieldPath, name)); err != nil {
			return err
		}
	}
	return nil
}

func numberAsInt64(node *ir.Node, fieldPath string) (int64, error) {
	if node.Type != ir.NumberType {
		return 0, &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("expected number, got %s", node.Type)}
	}
	switch {
	case node.Int64 != nil:
		return *node.Int64, nil
	case node.Float64 != nil:
		return int64(*node.Float64), nil
	default:
		n, err := strconv.ParseInt(node.Number, 10, 64)
		if err != nil {
			return 0, &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		return n, nil
	}
}

func numberAsFloat64(node *ir.Node, fieldPath string) (float64, error) {
	if node.Type != ir.NumberType {
		return 0, &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("expected number, got %s", node.Type)}
	}
	switch {
	case node.Float64 != nil:
		return *node.Float64, nil
	case node.Int64 != nil:
		return float64(*node.Int64), nil
	default:
		f, err := strconv.ParseFloat(node.Number, 64)
		if err != nil {
			return 0, &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		return f, nil
	}
}
