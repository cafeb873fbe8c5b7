package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"

	"github.com/signadot/yamlenc/ir"
)

func testNode() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromString("x"), ir.FromBool(true)})},
	})
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		opts []EncodeOption
		want string
	}{
		{name: "default", want: "a: 1\nb:\n  - x\n  - true\n"},
		{name: "flow", opts: []EncodeOption{Indent(0)}, want: "{a: 1, b: [x, true]}\n"},
		{name: "negative", opts: []EncodeOption{Indent(-1)}, want: "{a: 1, b: [x, true]}\n"},
		{name: "document", opts: []EncodeOption{EncodeDocument(true)}, want: "---\na: 1\nb:\n  - x\n  - true\n...\n"},
		{name: "no colors", opts: []EncodeOption{EncodeColors(nil), Indent(0)}, want: "{a: 1, b: [x, true]}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := Encode(testNode(), buf, tt.opts...); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", buf.String(), tt.want)
			}
		})
	}
}

func TestEncodeAll(t *testing.T) {
	buf := &bytes.Buffer{}
	nodes := []*ir.Node{testNode(), ir.FromInt(2)}
	if err := EncodeAll(nodes, buf, Indent(0)); err != nil {
		t.Fatal(err)
	}
	want := "---\n{a: 1, b: [x, true]}\n...\n---\n2\n...\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestEncodeWriteError(t *testing.T) {
	err := Encode(testNode(), failWriter{})
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(ir.FromString("x")); got != "x" {
		t.Errorf("got %q", got)
	}
}

func TestColors(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	c := NewColors()
	if got := c.Color(StringColor, "100%"); got != "100%" {
		t.Errorf("got %q", got)
	}
	buf := &bytes.Buffer{}
	if err := Encode(testNode(), buf, EncodeColors(c)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "a: 1\nb:\n  - x\n  - true\n" {
		t.Errorf("got %q", buf.String())
	}

	c.Map = nil
	if got := c.Color(KeyColor, "k"); got != "k" {
		t.Errorf("default color: got %q", got)
	}
}
