package encode

import (
	"strconv"
	"testing"
)

func TestList(t *testing.T) {
	nested := List(same, []Encoder{
		Record(Pair{Key: "x", Value: Int(1)}, Pair{Key: "y", Value: Int(2)}),
		Int(3),
	})
	runRenderTests(t, []renderTest{
		{name: "flow", indent: 0, enc: List(Int, []int64{1, 2, 3}), want: "[1, 2, 3]"},
		{name: "block", indent: 2, enc: List(Int, []int64{1, 2, 3}), want: "- 1\n- 2\n- 3"},
		{name: "empty flow", indent: 0, enc: List(Int, nil), want: "[]"},
		{name: "empty block", indent: 2, enc: List(Int, []int64{}), want: "[]"},
		{name: "records", indent: 2, enc: nested, want: "- x: 1\n  y: 2\n- 3"},
		{name: "records flow", indent: 0, enc: nested, want: "[{x: 1, y: 2}, 3]"},
		{
			name:   "lists",
			indent: 2,
			enc:    List(same, []Encoder{List(String, []string{"a", "b"}), List(String, []string{"c"})}),
			want:   "- - a\n  - b\n- - c",
		},
		{name: "indent 4", indent: 4, enc: nested, want: "-   x: 1\n    y: 2\n-   3"},
		{name: "indent 1", indent: 1, enc: nested, want: "- x: 1\n  y: 2\n- 3"},
	})
}

func TestListClonesValues(t *testing.T) {
	vals := []int64{1, 2}
	e := List(Int, vals)
	vals[0] = 9
	if got := Render(0, e); got != "[1, 2]" {
		t.Errorf("got %q", got)
	}
}

func TestRecord(t *testing.T) {
	runRenderTests(t, []renderTest{
		{
			name:   "scalars",
			indent: 2,
			enc:    Record(Pair{Key: "foo", Value: Int(42)}, Pair{Key: "bar", Value: Float(3.14)}),
			want:   "foo: 42\nbar: 3.14",
		},
		{
			name:   "scalars flow",
			indent: 0,
			enc:    Record(Pair{Key: "foo", Value: Int(42)}, Pair{Key: "bar", Value: Float(3.14)}),
			want:   "{foo: 42, bar: 3.14}",
		},
		{name: "empty", indent: 2, enc: Record(), want: "{}"},
		{
			name:   "empty values",
			indent: 2,
			enc: Record(
				Pair{Key: "a", Value: List(Int, nil)},
				Pair{Key: "b", Value: Record()},
				Pair{Key: "c", Value: Null()},
			),
			want: "a: []\nb: {}\nc: null",
		},
		{
			name:   "nested",
			indent: 2,
			enc: Record(
				Pair{Key: "a", Value: List(same, []Encoder{
					Record(Pair{Key: "x", Value: Int(1)}, Pair{Key: "y", Value: Int(2)}),
					Int(3),
				})},
				Pair{Key: "b", Value: Record(Pair{Key: "c", Value: Record(Pair{Key: "d", Value: Bool(true)})})},
			),
			want: "a:\n  - x: 1\n    y: 2\n  - 3\nb:\n  c:\n    d: true",
		},
		{
			name:   "nested flow",
			indent: 0,
			enc: Record(
				Pair{Key: "a", Value: List(Int, []int64{1, 2})},
				Pair{Key: "b", Value: Record()},
			),
			want: "{a: [1, 2], b: {}}",
		},
		{
			name:   "indent 4",
			indent: 4,
			enc:    Record(Pair{Key: "a", Value: Record(Pair{Key: "b", Value: List(Int, []int64{1})})}),
			want:   "a:\n    b:\n        -   1",
		},
		{
			name:   "indent 1",
			indent: 1,
			enc:    Record(Pair{Key: "a", Value: Record(Pair{Key: "b", Value: Int(1)})}),
			want:   "a:\n b: 1",
		},
	})
}

func TestDict(t *testing.T) {
	runRenderTests(t, []renderTest{
		{
			name:   "string keys",
			indent: 2,
			enc:    Dict(func(k string) string { return k }, Int, map[string]int64{"b": 2, "a": 1, "c": 3}),
			want:   "a: 1\nb: 2\nc: 3",
		},
		{
			name:   "int keys",
			indent: 0,
			enc:    Dict(strconv.Itoa, String, map[int]string{10: "x", 2: "y"}),
			want:   "{2: y, 10: x}",
		},
		{
			name:   "empty",
			indent: 2,
			enc:    Dict(strconv.Itoa, String, map[int]string{}),
			want:   "{}",
		},
	})
}
