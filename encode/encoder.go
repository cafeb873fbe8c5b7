package encode

import (
	"strconv"
	"strings"

	"github.com/signadot/yamlenc/token"
)

// State is threaded through every Encoder call.
type State struct {
	// Column is the number of spaces a block child of the node being
	// rendered is aligned at. It grows by Indent per nesting level.
	Column int
	// Indent is the per-level indentation width. 0 selects flow style for
	// every non-empty container.
	Indent int
	// InMapping is set when the node is the value of a mapping entry.
	InMapping bool

	// Color, when non-nil, decorates emitted text. It never influences
	// layout.
	Color func(ColorAttr, string) string
}

// Encoder renders a node given the traversal state. Encoders are immutable
// and may be rendered any number of times, concurrently, with different
// states.
type Encoder func(st State) string

// Layout is how a rendered node sits after a mapping key.
type Layout int

const (
	// Inline nodes follow the key on the same line.
	Inline Layout = iota
	// Block nodes start on the next line, at the current column.
	Block
)

func (l Layout) String() string {
	switch l {
	case Inline:
		return "inline"
	case Block:
		return "block"
	default:
		return "<unknown layout>"
	}
}

// Render renders e with indent spaces per nesting level. Negative widths
// are treated as 0.
func Render(indent int, e Encoder) string {
	return e(State{Indent: max(indent, 0)})
}

// withContext is the only place separators between a mapping key and its
// value are decided.
func withContext(layout Layout, st State, text string) string {
	if !st.InMapping {
		return text
	}
	switch layout {
	case Block:
		return "\n" + spaces(st.Column) + text
	default:
		return " " + text
	}
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

func (st State) paint(attr ColorAttr, v string) string {
	if st.Color == nil || v == "" {
		return v
	}
	return st.Color(attr, v)
}

func scalar(attr ColorAttr, v string) Encoder {
	return func(st State) string {
		return withContext(Inline, st, st.paint(attr, v))
	}
}

// String renders s verbatim. No escaping is done, see package token.
func String(s string) Encoder {
	return scalar(StringColor, s)
}

// Int renders v in decimal.
func Int(v int64) Encoder {
	return scalar(NumberColor, strconv.FormatInt(v, 10))
}

// Float renders f per token.FormatFloat.
func Float(f float64) Encoder {
	return scalar(NumberColor, token.FormatFloat(f))
}

// Number renders preformatted numeric text verbatim.
func Number(v string) Encoder {
	return scalar(NumberColor, v)
}

// Bool renders true or false.
func Bool(v bool) Encoder {
	return scalar(BoolColor, strconv.FormatBool(v))
}

// Null renders null.
func Null() Encoder {
	return scalar(NullColor, "null")
}

// Text applies the escaping helpers of package token to s and renders the
// result as a string scalar. Text containing line breaks goes through
// token.EscapeMultilineScalar and keeps its line breaks.
func Text(s string) Encoder {
	if strings.Contains(s, "\n") {
		return String(token.EscapeMultilineScalar(s))
	}
	return String(token.EscapeScalar(s))
}

// Quoted renders s as a double-quoted scalar.
func Quoted(s string) Encoder {
	return String(token.Quote(s))
}
