package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	StringColor
	NumberColor
	BoolColor
	NullColor
	SepColor
	AnchorColor
	AliasColor
	MarkerColor
	LiteralColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			KeyColor:     color.RGB(128, 168, 196).SprintfFunc(),
			StringColor:  color.RGB(8, 196, 16).SprintfFunc(),
			NumberColor:  color.RGB(128, 216, 236).SprintfFunc(),
			BoolColor:    color.CyanString,
			NullColor:    color.RGB(168, 0, 196).SprintfFunc(),
			SepColor:     color.RGB(196, 128, 128).SprintfFunc(),
			AnchorColor:  color.RGB(196, 168, 128).SprintfFunc(),
			AliasColor:   color.RGB(196, 168, 128).SprintfFunc(),
			MarkerColor:  color.RGB(74, 92, 138).SprintfFunc(),
			LiteralColor: color.RGB(198, 198, 46).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
