// Package token provides the scalar spelling rules used when encoding YAML.
//
// [EscapeScalar], [EscapeMultilineScalar] and [EscapeKey] are the escaping
// helpers callers apply to text before wrapping it as a string scalar; the
// encoder itself never escapes.
//
// [Quote] produces a YAML double-quoted scalar and [NeedsQuote] reports when
// text cannot be written as a plain scalar without changing its meaning.
//
// [FormatFloat] is the canonical float spelling.
package token
