package token

import (
	"strconv"
	"strings"
	"unicode"
)

// EscapeScalar neutralizes a single line string for use as a scalar. A
// leading alias, tag or anchor indicator or an embedded double quote causes
// the whole string to be double quoted; anything else is returned as is.
func EscapeScalar(v string) string {
	if v == "" {
		return v
	}
	switch v[0] {
	case '*', '!', '&':
		return Quote(v)
	}
	if strings.Contains(v, `"`) {
		return Quote(v)
	}
	return v
}

// EscapeMultilineScalar escapes double quotes on each line of v. Line breaks
// are kept as they are.
func EscapeMultilineScalar(v string) string {
	lines := strings.Split(v, "\n")
	for i, ln := range lines {
		lines[i] = strings.ReplaceAll(ln, `"`, `\"`)
	}
	return strings.Join(lines, "\n")
}

// EscapeKey double quotes mapping keys containing ':' or a space.
func EscapeKey(v string) string {
	if strings.ContainsAny(v, ": ") {
		return Quote(v)
	}
	return v
}

var reserved = map[string]bool{
	"~": true, "null": true, "Null": true, "NULL": true,
	"true": true, "True": true, "TRUE": true,
	"false": true, "False": true, "FALSE": true,
	"yes": true, "Yes": true, "YES": true, "no": true, "No": true, "NO": true,
	"on": true, "On": true, "ON": true, "off": true, "Off": true, "OFF": true,
	"y": true, "Y": true, "n": true, "N": true,
	"<<": true, "=": true,
}

// NeedsQuote reports whether v would read back as something other than the
// same string if written as a plain scalar, in block or flow context.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if reserved[v] {
		return true
	}
	switch v[0] {
	case '-', '?', ':', ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`', ' ':
		return true
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		// numbers, dates and sexagesimals
		return true
	}
	if v[len(v)-1] == ' ' {
		return true
	}
	if looksNumeric(v) {
		return true
	}
	for _, r := range v {
		switch r {
		case ':', '#', ',', '[', ']', '{', '}', '"':
			return true
		}
		if unicode.IsControl(r) || r == '\u2028' || r == '\u2029' || r == '\ufeff' {
			return true
		}
	}
	return false
}

func looksNumeric(v string) bool {
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseInt(v, 0, 64); err == nil {
		return true
	}
	switch strings.ToLower(strings.TrimLeft(v, "+-")) {
	case ".inf", ".nan":
		return true
	}
	return false
}
