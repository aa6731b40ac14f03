package comment

import (
	"strings"
	"unicode/utf8"
)

// state is the scanner state of Strip.
type state uint8

const (
	stateNormal state = iota
	stateLineComment
	stateBlockComment
	stateString
)

// Strip returns source with every comment character replaced by a space.
//
// The result has the same line structure as source and each line has the
// same number of characters: one space is written per comment rune, and
// '\n' and '\r' are always copied.
func Strip(source string) string {
	s := stripper{source: source}
	s.out.Grow(len(source))
	s.run()
	return s.out.String()
}

type stripper struct {
	source  string
	pos     int
	state   state
	escaped bool
	out     strings.Builder
}

func (s *stripper) run() {
	for s.pos < len(s.source) {
		r, size := utf8.DecodeRuneInString(s.source[s.pos:])

		switch s.state {
		case stateNormal:
			switch {
			case r == '"':
				s.state = stateString
				s.copy(size)
			case r == '/' && s.peekNext() == '/':
				s.state = stateLineComment
				s.blankDelimiter()
			case r == '/' && s.peekNext() == '*':
				s.state = stateBlockComment
				s.blankDelimiter()
			default:
				s.copy(size)
			}

		case stateString:
			switch {
			case r == '\n':
				// Unterminated literal: recover at end of line.
				s.state = stateNormal
				s.escaped = false
			case s.escaped:
				s.escaped = false
			case r == '\\':
				s.escaped = true
			case r == '"':
				s.state = stateNormal
			}
			s.copy(size)

		case stateLineComment:
			switch r {
			case '\n':
				s.state = stateNormal
				s.copy(size)
			case '\r':
				s.copy(size)
			default:
				s.blankRune(size)
			}

		case stateBlockComment:
			switch {
			case r == '*' && s.peekNext() == '/':
				s.state = stateNormal
				s.blankDelimiter()
			case r == '\n' || r == '\r':
				s.copy(size)
			default:
				s.blankRune(size)
			}
		}
	}
}

// copy writes the next n bytes of source unchanged.
func (s *stripper) copy(n int) {
	s.out.WriteString(s.source[s.pos : s.pos+n])
	s.pos += n
}

// blankRune replaces one rune of size bytes with a single space.
func (s *stripper) blankRune(size int) {
	s.out.WriteByte(' ')
	s.pos += size
}

// blankDelimiter replaces a two-character comment delimiter.
func (s *stripper) blankDelimiter() {
	s.out.WriteString("  ")
	s.pos += 2
}

func (s *stripper) peekNext() byte {
	if s.pos+1 >= len(s.source) {
		return 0
	}
	return s.source[s.pos+1]
}
