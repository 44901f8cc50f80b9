package sqlexpand

import (
	"strings"
)

// Locate returns the placeholders of stmt that lie outside quoted literals,
// ordered by byte offset.
//
// In PositionalBindMode every unquoted ? is a placeholder. In NamedBindMode a
// placeholder is a : followed by at least one of [A-Za-z0-9_]; the second
// colon of a :: cast never starts one. Names may repeat.
//
// Single and double quotes open and close literals. A quote preceded by an
// odd number of consecutive backslashes is escaped and does not toggle the
// literal. Malformed input such as an unterminated literal is scanned on a
// best-effort basis; Locate never fails.
func Locate(stmt SQLQuery, mode BindMode) (ps Placeholders) {
	var state locateState

	token := mode.TokenChar()
	if token == 0 {
		ps = make(Placeholders, 0)
		goto end
	}
	if strings.IndexByte(string(stmt), token) < 0 {
		ps = make(Placeholders, 0)
		goto end
	}

	state = newLocateState(stmt, mode)
	for state.i < state.n {
		c := state.src[state.i]

		switch {
		case c == '\\':
			state.backslashRun++
			state.i++
			continue
		case c == '\'' || c == '"':
			state.consumeQuote(c)
		case c != state.token:
			state.i++
		case state.inLiteral:
			state.i++
		case state.mode == PositionalBindMode:
			state.consumePositional()
		default:
			state.consumeNamed()
		}
		state.backslashRun = 0
	}
	ps = state.placeholders
end:
	return ps
}
