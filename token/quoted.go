package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote returns v as a YAML double-quoted scalar.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) || r == '\u2028' || r == '\u2029' || r == '\ufeff' {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote decodes a single line YAML double-quoted scalar, including its
// surrounding quotes.
func Unquote(v string) (string, error) {
	if len(v) < 2 || v[0] != '"' {
		return "", ErrYAMLDoubleQuote
	}
	var (
		d   = []byte(v)
		n   = len(d)
		dst = make([]byte, 0, n)
		esc = false
	)
	for i := 1; i < n; {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return "", ErrBadUTF8
		}
		i += sz
		if !esc {
			switch r {
			case '\\':
				esc = true
			case '"':
				if i != n {
					return "", ErrYAMLDoubleQuote
				}
				return string(dst), nil
			case '\n', '\r':
				return "", ErrYAMLDoubleQuote
			default:
				dst = utf8.AppendRune(dst, r)
			}
			continue
		}
		esc = false
		switch r {
		case 'n':
			dst = append(dst, '\n')
		case 't', '\t':
			dst = append(dst, '\t')
		case 'f':
			dst = append(dst, '\f')
		case 'b':
			dst = append(dst, '\b')
		case 'r':
			dst = append(dst, '\r')
		case '0':
			dst = append(dst, 0)
		case ' ', '"', '/', '\\':
			dst = utf8.AppendRune(dst, r)
		case 'x', 'u', 'U':
			width := map[rune]int{'x': 2, 'u': 4, 'U': 8}[r]
			if i+width > n {
				return "", ErrBadEscape
			}
			cp, err := hex.DecodeString(strings.Repeat("0", 8-width) + v[i:i+width])
			if err != nil {
				return "", ErrBadEscape
			}
			cr := rune(cp[0])<<24 | rune(cp[1])<<16 | rune(cp[2])<<8 | rune(cp[3])
			dst = utf8.AppendRune(dst, cr)
			i += width
		default:
			return "", ErrBadEscape
		}
	}
	return "", ErrUnterminated
}
