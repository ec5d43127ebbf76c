// Package format identifies the on-disk formats an extension-less include
// may resolve to (spec.md §4.4), and provides their fallback parsers:
// JSON and Java-properties documents are both parsed straight to an
// *ir.Node tree so the include resolver can merge them exactly like a
// parsed HOCON document.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	HOCONFormat Format = iota
	JSONFormat
	PropertiesFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"hocon": HOCONFormat,
		"conf":  HOCONFormat,
		"json":  JSONFormat,
		"properties": PropertiesFormat,
		"props":      PropertiesFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case HOCONFormat:
		return []byte("hocon"), nil
	case JSONFormat:
		return []byte("json"), nil
	case PropertiesFormat:
		return []byte("properties"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsHOCON() bool      { return f == HOCONFormat }
func (f Format) IsJSON() bool       { return f == JSONFormat }
func (f Format) IsProperties() bool { return f == PropertiesFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case HOCONFormat:
		return ".conf"
	case JSONFormat:
		return ".json"
	case PropertiesFormat:
		return ".properties"
	default:
		return ""
	}
}

// DefaultOrder is the default merge order for an extension-less include
// that resolves to more than one format (spec.md §4.4): HOCON wins over
// JSON, which wins over properties.
func DefaultOrder() []Format {
	return []Format{PropertiesFormat, JSONFormat, HOCONFormat}
}
