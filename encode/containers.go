package encode

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// List renders values as a sequence, each element through enc.
//
// An empty sequence is always []. At indent 0 the sequence is written in
// flow style. Otherwise each element is written on its own line after a
// dash, its children aligned max(indent, 2) columns deeper.
func List[T any](enc func(T) Encoder, values []T) Encoder {
	values = slices.Clone(values)
	return func(st State) string {
		if len(values) == 0 {
			return withContext(Inline, st, st.paint(SepColor, "[]"))
		}
		parts := make([]string, len(values))
		if st.Indent == 0 {
			child := State{Color: st.Color}
			for i, v := range values {
				parts[i] = enc(v)(child)
			}
			return withContext(Inline, st, flow(st, "[", "]", parts))
		}
		child := st
		child.Column += max(st.Indent, 2)
		child.InMapping = false
		marker := st.paint(SepColor, "-") + " " + spaces(max(st.Indent-2, 0))
		for i, v := range values {
			parts[i] = marker + enc(v)(child)
		}
		return withContext(Block, st, strings.Join(parts, "\n"+spaces(st.Column)))
	}
}

// Pair is a mapping entry. Key is written as is; see token.EscapeKey.
type Pair struct {
	Key   string
	Value Encoder
}

// Record renders pairs as a mapping, in the given order.
//
// An empty mapping is always {}. At indent 0 the mapping is written in flow
// style. Otherwise each pair is written on its own line, and values which are
// themselves blocks start on the next line, one indent deeper than the key.
func Record(pairs ...Pair) Encoder {
	pairs = slices.Clone(pairs)
	return func(st State) string {
		if len(pairs) == 0 {
			return withContext(Inline, st, st.paint(SepColor, "{}"))
		}
		parts := make([]string, len(pairs))
		sep := st.paint(SepColor, ":")
		if st.Indent == 0 {
			child := State{InMapping: true, Color: st.Color}
			for i, p := range pairs {
				parts[i] = st.paint(KeyColor, p.Key) + sep + p.Value(child)
			}
			return withContext(Inline, st, flow(st, "{", "}", parts))
		}
		child := st
		child.Column += st.Indent
		child.InMapping = true
		for i, p := range pairs {
			parts[i] = st.paint(KeyColor, p.Key) + sep + p.Value(child)
		}
		return withContext(Block, st, strings.Join(parts, "\n"+spaces(st.Column)))
	}
}

// Dict renders m as a mapping with keys in ascending order, converting keys
// with keyString and values with enc.
func Dict[K cmp.Ordered, V any](keyString func(K) string, enc func(V) Encoder, m map[K]V) Encoder {
	keys := slices.Sorted(maps.Keys(m))
	pairs := make([]Pair, len(keys))
	for i, k := range keys {
		pairs[i] = Pair{Key: keyString(k), Value: enc(m[k])}
	}
	return Record(pairs...)
}

func flow(st State, open, close string, parts []string) string {
	return st.paint(SepColor, open) +
		strings.Join(parts, st.paint(SepColor, ",")+" ") +
		st.paint(SepColor, close)
}
