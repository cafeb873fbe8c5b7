package token

import "errors"

var (
	ErrBadUTF8         = errors.New("bad utf8")
	ErrUnterminated    = errors.New("unterminated")
	ErrBadEscape       = errors.New("bad escape")
	ErrYAMLDoubleQuote = errors.New("yaml double quote")
)
