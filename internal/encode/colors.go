package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/mikai233/gohocon/ir"
)

// ColorAttr distinguishes which part of a rendered value a color applies
// to — the key versus the value itself.
type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
)

// Colorable is the lookup key into a Colors map: a value kind plus which
// part of its rendering the color applies to.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

// Colors maps (Type, ColorAttr) pairs to a color.Sprintf-style function.
// NewColors returns the colored default palette; NoColors renders
// everything uncolored.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func colorDefault(v string, _ ...any) string { return v }

// NewColors returns the default value-kind color scheme, ported from
// encode_colors.go's RGB palette.
func NewColors() *Colors {
	c := &Colors{Default: colorDefault, Map: map[Colorable]func(string, ...any) string{}}
	c.Map[Colorable{Type: ir.StringType, Attr: ValueColor}] = color.RGB(8, 196, 16).SprintfFunc()
	c.Map[Colorable{Type: ir.NumberType, Attr: ValueColor}] = color.RGB(128, 216, 236).SprintfFunc()
	c.Map[Colorable{Type: ir.BoolType, Attr: ValueColor}] = color.CyanString
	c.Map[Colorable{Type: ir.NullType, Attr: ValueColor}] = color.RGB(168, 0, 196).SprintfFunc()
	c.Map[Colorable{Type: ir.ObjectType, Attr: FieldColor}] = color.RGB(128, 168, 196).SprintfFunc()
	c.Map[Colorable{Type: ir.ArrayType, Attr: FieldColor}] = color.RGB(196, 128, 128).SprintfFunc()
	for k, f := range c.Map {
		f := f
		c.Map[k] = func(v string, a ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return c
}

// NoColors renders everything without ANSI escapes, for non-TTY output.
func NoColors() *Colors {
	return &Colors{Default: colorDefault, Map: map[Colorable]func(string, ...any) string{}}
}

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	if f := c.Map[Colorable{Type: t, Attr: a}]; f != nil {
		return f
	}
	return c.Default
}
