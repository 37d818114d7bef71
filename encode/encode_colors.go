package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/vdf-format/vdf/ast"
)

type Colorable struct {
	Kind ast.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	KeyColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = ast.CommentKind
	colors.Map[able] = forced(color.New(color.FgBlue))

	able.Kind = ast.NumberKind
	colors.Map[able] = forced(color.RGB(128, 216, 236))

	able.Kind = ast.StringKind
	colors.Map[able] = forced(color.RGB(8, 196, 16))
	able.Attr = KeyColor
	colors.Map[able] = forced(color.RGB(196, 96, 16))

	able = Colorable{Kind: ast.ObjectKind, Attr: SepColor}
	colors.Map[able] = forced(color.RGB(196, 128, 128))

	able = Colorable{Kind: ast.ConditionalKind, Attr: ValueColor}
	colors.Map[able] = forced(color.RGB(168, 0, 196))

	able.Kind = ast.DirectiveKind
	colors.Map[able] = forced(color.RGB(74, 92, 138))

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

// forced colors regardless of the terminal check in fatih/color; callers
// decide whether to color at all.
func forced(c *color.Color) func(string, ...any) string {
	c.EnableColor()
	return c.SprintfFunc()
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ast.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ast.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
