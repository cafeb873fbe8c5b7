package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse       = errors.New("parse error")
	ErrUnsupported = fmt.Errorf("%w: unsupported node", ErrParse)
	ErrAlias       = fmt.Errorf("%w: undefined alias", ErrParse)
)
