package encode

type EncodeOption func(*encState)

type encState struct {
	indent   int
	document bool
	color    func(ColorAttr, string) string
}

// Indent sets the indentation width, 2 by default. 0 selects flow style.
func Indent(n int) EncodeOption {
	return func(es *encState) { es.indent = max(n, 0) }
}

// EncodeDocument wraps each encoded node in document markers.
func EncodeDocument(v bool) EncodeOption {
	return func(es *encState) { es.document = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) {
		if c == nil {
			es.color = nil
			return
		}
		es.color = c.Color
	}
}

func newEncState(opts []EncodeOption) *encState {
	es := &encState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}
