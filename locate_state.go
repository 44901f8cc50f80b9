package sqlexpand

type locateState struct {
	src   string
	n     int
	i     int
	mode  BindMode
	token byte

	inLiteral    bool
	openQuote    byte
	backslashRun int // consecutive backslashes ending just before src[i]

	placeholders Placeholders
}

func newLocateState(stmt SQLQuery, mode BindMode) locateState {
	return locateState{
		src:          string(stmt),
		n:            len(stmt),
		i:            0,
		mode:         mode,
		token:        mode.TokenChar(),
		placeholders: make(Placeholders, 0),
	}
}

func (s *locateState) escaped() bool {
	return s.backslashRun%2 == 1
}

// consumeQuote opens or closes a literal at src[i]. A quote preceded by an
// odd run of backslashes is data, as is a quote of the other kind inside an
// open literal.
func (s *locateState) consumeQuote(q byte) {
	if s.escaped() {
		goto end
	}
	if !s.inLiteral {
		s.inLiteral = true
		s.openQuote = q
		goto end
	}
	if s.openQuote == q {
		s.inLiteral = false
		s.openQuote = 0
	}
end:
	s.i++
}

func (s *locateState) consumePositional() {
	s.placeholders = append(s.placeholders, Placeholder{
		Ordinal: len(s.placeholders),
		Offset:  s.i,
	})
	s.i++
}

func (s *locateState) consumeNamed() {
	start := s.i // Points to ':'
	j := start + 1

	// Second colon of a :: cast
	if start > 0 && s.src[start-1] == namedToken {
		goto skip
	}
	for j < s.n && isIdentifierChar(s.src[j]) {
		j++
	}
	if j == start+1 {
		// Not a placeholder, just a standalone colon
		goto skip
	}
	s.placeholders = append(s.placeholders, Placeholder{
		Ordinal: len(s.placeholders),
		Offset:  start,
		Name:    Identifier(s.src[start+1 : j]),
	})
	s.i = j
	goto end
skip:
	s.i = start + 1
end:
	return
}

// isIdentifierChar reports whether b may appear in a placeholder name.
func isIdentifierChar(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_'
}
