package token

import (
	"math"
	"testing"
)

func TestEscapeScalar(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"hello world", "hello world"},
		{"*ref", `"*ref"`},
		{"!tag", `"!tag"`},
		{"&anchor", `"&anchor"`},
		{`say "hi"`, `"say \"hi\""`},
		{"a*b", "a*b"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := EscapeScalar(tt.in); got != tt.want {
				t.Errorf("EscapeScalar(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeScalarNoop(t *testing.T) {
	for _, v := range []string{"plain", "with space", "x*y&z", "trailing!"} {
		if got := EscapeScalar(v); got != v {
			t.Errorf("EscapeScalar(%q) = %q, expected no-op", v, got)
		}
		if got := EscapeScalar(EscapeScalar(v)); got != v {
			t.Errorf("EscapeScalar twice on %q = %q", v, got)
		}
	}
}

func TestEscapeMultilineScalar(t *testing.T) {
	got := EscapeMultilineScalar("line \"one\"\nline two\n\"three\"")
	want := "line \\\"one\\\"\nline two\n\\\"three\\\""
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEscapeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a:b", `"a:b"`},
		{"two words", `"two words"`},
		{"dash-ed", "dash-ed"},
	}
	for _, tt := range tests {
		if got := EscapeKey(tt.in); got != tt.want {
			t.Errorf("EscapeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"hello", false},
		{"hello world", false},
		{"true", true},
		{"Off", true},
		{"null", true},
		{"~", true},
		{"42", true},
		{"-1.5", true},
		{"0x1f", true},
		{".inf", true},
		{"-.NaN", true},
		{"2001-12-14", true},
		{"a: b", true},
		{"http://x", true},
		{"x #y", true},
		{"- item", true},
		{"*alias", true},
		{"[1]", true},
		{"a,b", true},
		{" lead", true},
		{"trail ", true},
		{"tab\there", true},
		{"foo-bar", false},
		{"v1.2", false},
		{"héllo", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NeedsQuote(tt.in); got != tt.want {
				t.Errorf("NeedsQuote(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuoteUnquote(t *testing.T) {
	for _, s := range []string{
		`"`,
		`'`,
		"\t\n\v\r\b\f",
		"∞∞",
		`"""''`,
		`a\b`,
		"nul\x00",
		"line\u2028sep",
		`f[0]`,
	} {
		q := Quote(s)
		uq, err := Unquote(q)
		if err != nil {
			t.Errorf("error unquoting %q (from %q): %v", q, s, err)
			continue
		}
		if uq != s {
			t.Errorf("Unquote(Quote(%q)) = %q", s, uq)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	for _, s := range []string{`plain`, `"open`, `"bad \q"`, `"a"b"`, `"\u12"`} {
		if _, err := Unquote(s); err == nil {
			t.Errorf("Unquote(%q) expected error", s)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3.14, "3.14"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{-2.5, "-2.5"},
		{100000, "100000.0"},
		{1e21, "1.0e+21"},
		{1.5e-7, "1.5e-07"},
		{math.NaN(), ".nan"},
		{math.Inf(1), ".inf"},
		{math.Inf(-1), "-.inf"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
