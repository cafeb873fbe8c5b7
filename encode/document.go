package encode

import (
	"strings"
	"unicode"
)

// Document wraps e in document start and end markers. e is rendered with
// the state Document is given.
func Document(e Encoder) Encoder {
	return func(st State) string {
		return st.paint(MarkerColor, "---") + "\n" + e(st) + "\n" + st.paint(MarkerColor, "...")
	}
}

// Anchor renders value through enc, marked with the anchor name.
func Anchor[T any](name string, enc func(T) Encoder, value T) Encoder {
	return AnchorOf(name, enc(value))
}

// AnchorOf marks e with the anchor name. The anchored value is rendered as
// if it were a mapping value so that its own separator follows the marker.
//
// The name is not checked; it must be a valid YAML anchor name.
func AnchorOf(name string, e Encoder) Encoder {
	return func(st State) string {
		inner := st
		inner.InMapping = true
		return withContext(Inline, st, st.paint(AnchorColor, "&"+name)) + e(inner)
	}
}

// Alias renders a reference to the anchor name. The anchor must be
// defined earlier in the same document, on a node which does not contain
// the alias; nothing checks either.
func Alias(name string) Encoder {
	return scalar(AliasColor, "*"+name)
}

// Literal renders s as a literal block scalar (|, |-), its lines aligned at
// the current column. In flow style, or when s cannot be carried by a block
// scalar unchanged, it falls back to a double-quoted scalar.
func Literal(s string) Encoder {
	quoted := Quoted(s)
	body, trailingNL := strings.CutSuffix(s, "\n")
	if !literalSafe(body) {
		return quoted
	}
	header := "|-"
	if trailingNL {
		header = "|"
	}
	lines := strings.Split(body, "\n")
	return func(st State) string {
		if st.Indent == 0 {
			return quoted(st)
		}
		col := st.Column
		if col == 0 {
			col = st.Indent
		}
		buf := &strings.Builder{}
		buf.WriteString(st.paint(SepColor, header))
		for _, ln := range lines {
			buf.WriteByte('\n')
			if ln == "" {
				continue
			}
			buf.WriteString(spaces(col))
			buf.WriteString(st.paint(LiteralColor, ln))
		}
		return withContext(Inline, st, buf.String())
	}
}

// literalSafe reports whether body, the text of a block scalar without its
// final line break, reads back unchanged from a clipped or stripped block.
func literalSafe(body string) bool {
	if body == "" || !strings.Contains(body, "\n") {
		return false
	}
	if strings.HasSuffix(body, "\n") {
		return false
	}
	// the first non-empty line fixes the block's indentation
	first := strings.TrimLeft(body, "\n")
	if first[0] == ' ' {
		return false
	}
	for _, r := range body {
		if r == '\n' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) || r == '\u2028' || r == '\u2029' || r == '\ufeff' {
			return false
		}
	}
	last := body[strings.LastIndexByte(body, '\n')+1:]
	return strings.TrimSpace(last) != ""
}
