package encode

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/yamlenc/debug"
	"github.com/signadot/yamlenc/ir"
)

var ErrEncoding = errors.New("encoding error")

// Encode writes the YAML rendering of node to w, followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	return writeString(w, es.render(node)+"\n")
}

// EncodeAll writes nodes as a stream of documents, each wrapped in document
// markers regardless of EncodeDocument.
func EncodeAll(nodes []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	es.document = true
	for _, node := range nodes {
		if err := writeString(w, es.render(node)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (es *encState) render(node *ir.Node) string {
	e := FromNode(node)
	if es.document {
		e = Document(e)
	}
	if debug.Encode() {
		debug.Logf("encode %s node at indent %d (document=%t)\n", node.Type, es.indent, es.document)
	}
	return e(State{Indent: es.indent, Color: es.color})
}

func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}
