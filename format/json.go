package format

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mikai233/gohocon/ir"
)

// ParseJSON parses a JSON document into an *ir.Node tree using
// encoding/json's token stream directly (rather than decoding into
// map[string]any), so object field order matches source order the same
// way parse.Parse preserves HOCON key order, satisfying spec.md §8
// invariant 1 for JSON-format includes as well as HOCON-native ones, and
// invariant 2 ("every valid JSON document parses, and parse(J) equals
// json_parse(J) as values").
func ParseJSON(data []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	n, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func decodeValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return nodeFromToken(dec, tok)
}

func nodeFromToken(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected JSON delimiter %q", t)
		}
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case json.Number:
		if iv, err := t.Int64(); err == nil {
			return ir.FromInt(iv), nil
		}
		fv, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid JSON number %q: %w", t.String(), err)
		}
		return ir.FromFloat(fv), nil
	default:
		return nil, fmt.Errorf("unsupported JSON token %T", tok)
	}
}

// decodeObject reads key/value pairs in stream order, via Token, and sets
// them on the result in that same order (ir.Node.SetField preserves
// insertion position).
func decodeObject(dec *json.Decoder) (*ir.Node, error) {
	obj := ir.EmptyObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected JSON object key, got %T", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.SetField(key, val)
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (*ir.Node, error) {
	var values []*ir.Node
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		values = append(values, val)
	}
	if _, err := dec.Token(); err != nil { // consume closing ']'
		return nil, err
	}
	return ir.FromSlice(values), nil
}
