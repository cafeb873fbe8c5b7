// Package encode renders values as YAML text.
//
// An [Encoder] is a deferred rendering: a function of the traversal [State]
// (current column, indentation width, and whether the node is a mapping
// value) to text. Scalars ([String], [Int], [Float], [Bool], [Null]) and
// containers ([List], [Record], [Dict]) compose into larger encoders, and
// [Render] runs the result at a chosen indentation width:
//
//	e := encode.Record(
//	    encode.Pair{Key: "foo", Value: encode.Int(42)},
//	    encode.Pair{Key: "bar", Value: encode.List(encode.Int, []int64{1, 2})},
//	)
//	encode.Render(2, e) // "foo: 42\nbar:\n  - 1\n  - 2"
//	encode.Render(0, e) // "{foo: 42, bar: [1, 2]}"
//
// Indentation width 0 selects flow style for every non-empty container.
// Empty containers are always [] and {}.
//
// Each node decides its own layout, inline or block, and a single separator
// rule places it after a mapping key: one space for inline values, a line
// break and deeper indentation for block values.
//
// String renders its text verbatim. Callers are responsible for escaping,
// with the helpers in package token or with [Text] and [Quoted].
//
// # Value trees
//
// [FromNode] maps an ir.Node tree onto encoders, quoting strings and keys as
// needed, and [Encode] writes such a tree to an io.Writer:
//
//	err := encode.Encode(node, os.Stdout, encode.Indent(4), encode.EncodeDocument(true))
//
// # Related Packages
//
//   - github.com/signadot/yamlenc/ir - Value tree
//   - github.com/signadot/yamlenc/token - Escaping helpers
//   - github.com/signadot/yamlenc/parse - Parse text to ir
package encode
