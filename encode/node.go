package encode

import (
	"strings"

	"github.com/signadot/yamlenc/ir"
	"github.com/signadot/yamlenc/token"
)

// FromNode maps an ir tree onto encoders. Strings and keys are quoted when
// their plain spelling would read back differently, and multi-line strings
// become literal block scalars where possible.
func FromNode(node *ir.Node) Encoder {
	var e Encoder
	switch node.Type {
	case ir.NullType:
		e = Null()
	case ir.BoolType:
		e = Bool(node.Bool)
	case ir.NumberType:
		e = fromNumber(node)
	case ir.StringType:
		e = fromString(node.String)
	case ir.ArrayType:
		e = List(FromNode, node.Values)
	case ir.ObjectType:
		pairs := make([]Pair, len(node.Fields))
		for i, field := range node.Fields {
			pairs[i] = Pair{Key: Key(field.String), Value: FromNode(node.Values[i])}
		}
		e = Record(pairs...)
	case ir.AliasType:
		e = Alias(node.String)
	default:
		panic("type")
	}
	if node.Anchor != "" {
		e = AnchorOf(node.Anchor, e)
	}
	return e
}

// Key returns the spelling of a mapping key: escaped per token.EscapeKey,
// and quoted if it would otherwise read back as something else.
func Key(k string) string {
	esc := token.EscapeKey(k)
	if esc == k && token.NeedsQuote(k) {
		return token.Quote(k)
	}
	return esc
}

func fromNumber(node *ir.Node) Encoder {
	switch {
	case node.Int64 != nil:
		return Int(*node.Int64)
	case node.Float64 != nil:
		return Float(*node.Float64)
	default:
		return Number(node.Number)
	}
}

func fromString(s string) Encoder {
	if strings.Contains(s, "\n") {
		return Literal(s)
	}
	if token.NeedsQuote(s) {
		return Quoted(s)
	}
	return String(s)
}
