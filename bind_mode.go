package sqlexpand

import (
	"strings"
)

// BindMode selects how parameters are associated with placeholders.
type BindMode int

const (
	UnspecifiedBindMode BindMode = iota

	// PositionalBindMode binds parameters by the left-to-right order of ? tokens.
	PositionalBindMode

	// NamedBindMode binds parameters by the identifier following a : token.
	NamedBindMode
)

// TokenChar returns the byte that introduces a placeholder in this mode, or 0
// for an unspecified mode.
func (m BindMode) TokenChar() (c byte) {
	switch m {
	case PositionalBindMode:
		c = positionalToken
	case NamedBindMode:
		c = namedToken
	}
	return c
}

func (m BindMode) String() string {
	switch m {
	case PositionalBindMode:
		return "positional"
	case NamedBindMode:
		return "named"
	}
	return "unspecified"
}

func ParseBindMode(s string) (m BindMode, err error) {
	switch strings.ToLower(s) {
	case "positional", "?":
		m = PositionalBindMode
	case "named", ":":
		m = NamedBindMode
	default:
		err = NewErr(ErrInvalidBindMode, "bind_mode", s)
	}
	return m, err
}
