package parse

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/yamlenc/ir"
)

type parseTest struct {
	in   string
	want any
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`, want: nil},
		{in: `true`, want: true},
		{in: `22`, want: int64(22)},
		{in: `-3.5`, want: -3.5},
		{in: `"hello"`, want: "hello"},
		{in: `hello`, want: "hello"},
		{in: "|\n  z\n", want: "z\n"},
		{in: `[a, b]`, want: []any{"a", "b"}},
		{in: `[[]]`, want: []any{[]any{}}},
		{in: `{}`, want: map[string]any{}},
		{in: `{a: b}`, want: map[string]any{"a": "b"}},
		{in: `!tag a`, want: "a"},
		{
			in:   "a: b\nc:\n  d: 2\n  e: 3",
			want: map[string]any{"a": "b", "c": map[string]any{"d": int64(2), "e": int64(3)}},
		},
		{
			in:   "- - a\n- - b",
			want: []any{[]any{"a"}, []any{"b"}},
		},
		{
			in:   `{"a": [1,2], "f[0]": [0,1,2,"three"]}`,
			want: map[string]any{"a": []any{int64(1), int64(2)}, "f[0]": []any{int64(0), int64(1), int64(2), "three"}},
		},
		{
			in:   "1: one\ntrue: yes",
			want: map[string]any{"1": "one", "true": "yes"},
		},
	}
	for i := range pts {
		pt := &pts[i]
		t.Run(pt.in, func(t *testing.T) {
			node, err := Parse([]byte(pt.in))
			if err != nil {
				t.Fatalf("# doc\n%s\n# error %v", pt.in, err)
			}
			got, err := ir.ToAny(node)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(pt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseKeepsKeyOrder(t *testing.T) {
	node, err := Parse([]byte("z: 1\na: 2\nm: 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	got := []string{}
	for _, f := range node.Fields {
		got = append(got, f.String)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseSpecialFloats(t *testing.T) {
	node, err := Parse([]byte("[.nan, .inf, -.inf]"))
	if err != nil {
		t.Fatal(err)
	}
	if f := node.Values[0].Float64; f == nil || !math.IsNaN(*f) {
		t.Errorf("expected NaN, got %v", f)
	}
	if f := node.Values[1].Float64; f == nil || !math.IsInf(*f, 1) {
		t.Errorf("expected +Inf, got %v", f)
	}
	if f := node.Values[2].Float64; f == nil || !math.IsInf(*f, -1) {
		t.Errorf("expected -Inf, got %v", f)
	}
}

func TestParseAnchors(t *testing.T) {
	in := "base: &b\n  x: 1\ncopy: *b\n"
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	base := ir.Get(node, "base")
	if base.Anchor != "b" {
		t.Errorf("expected anchor b, got %q", base.Anchor)
	}
	cp := ir.Get(node, "copy")
	if cp.Type != ir.AliasType || cp.String != "b" {
		t.Errorf("expected alias to b, got %s %q", cp.Type, cp.String)
	}

	node, err = Parse([]byte(in), ExpandAliases(true))
	if err != nil {
		t.Fatal(err)
	}
	cp = ir.Get(node, "copy")
	if cp.Type != ir.ObjectType || cp.Anchor != "" {
		t.Fatalf("expected expanded object, got %s anchor %q", cp.Type, cp.Anchor)
	}
	if base := ir.Get(node, "base"); base.Anchor != "" {
		t.Errorf("expected anchor dropped, got %q", base.Anchor)
	}
}

func TestParseUndefinedAlias(t *testing.T) {
	_, err := Parse([]byte("a: *nope\n"), ExpandAliases(true))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestParseAll(t *testing.T) {
	docs, err := ParseAll([]byte("a: 1\n---\n- 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Type != ir.ObjectType || docs[1].Type != ir.ArrayType {
		t.Errorf("unexpected types %s %s", docs[0].Type, docs[1].Type)
	}
}

func TestParseEmpty(t *testing.T) {
	node, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.NullType {
		t.Errorf("expected null, got %s", node.Type)
	}
}

func TestBadParse(t *testing.T) {
	for _, in := range []string{"a: [1, 2", "a: b: c", "{a: 1"} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("%q: expected ErrParse, got %v", in, err)
		}
	}
}
