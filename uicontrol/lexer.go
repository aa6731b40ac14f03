package uicontrol

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes a single directive line.
type Lexer struct {
	source string // the line, without its terminator
	pos    int
	column int
	start  int
	startC int

	line   int // 1-based line number of source
	offset int // byte offset of the line in the whole text
	tokens []Token
}

// NewLexer creates a lexer for one line of text. line is the 1-based line
// number and offset the byte offset of the line start within the full
// source; both are only used to position tokens.
func NewLexer(source string, line, offset int) *Lexer {
	return &Lexer{
		source: source,
		column: 1,
		line:   line,
		offset: offset,
		tokens: make([]Token, 0, 16),
	}
}

// Tokenize returns all tokens of the line, terminated by TokenEOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens, err := l.tokenize()
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (l *Lexer) tokenize() ([]Token, *SourceError) {
	for !l.isAtEnd() {
		l.start = l.pos
		l.startC = l.column
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}

	l.start = l.pos
	l.startC = l.column
	l.addToken(TokenEOF)

	return l.tokens, nil
}

func (l *Lexer) scanToken() *SourceError {
	r := l.advance()

	switch r {
	case '(':
		l.addToken(TokenLeftParen)
	case ')':
		l.addToken(TokenRightParen)
	case ',':
		l.addToken(TokenComma)
	case '=':
		l.addToken(TokenEqual)
	case '"':
		return l.string()
	case '#':
		if !isAlpha(l.peek()) {
			return l.errorf("expected directive name after '#'")
		}
		l.identifierTail()
		l.addToken(TokenDirective)

	// Whitespace
	case ' ', '\t', '\r', '\v', '\f':

	default:
		switch {
		case isDigit(r) || r == '.' && isDigit(l.peek()):
			l.number()
		case (r == '-' || r == '+') && (isDigit(l.peek()) || l.peek() == '.'):
			l.number()
		case isAlpha(r) || r == '_':
			l.identifierTail()
			l.addToken(TokenIdent)
		default:
			return l.errorf("unexpected character %q", r)
		}
	}

	return nil
}

// number scans the rest of a decimal literal: digits, an optional fraction
// and an optional exponent. Validation of the value is left to the parser.
func (l *Lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	// Trailing letters (1.0f, 2u) are kept in the lexeme so the parser can
	// reject the whole literal at once.
	for isAlphaNumeric(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	l.addToken(TokenNumber)
}

// string scans a double-quoted literal. A backslash escapes the next
// character.
func (l *Lexer) string() *SourceError {
	for {
		if l.isAtEnd() {
			return l.errorf("unterminated string literal")
		}
		r := l.advance()
		switch r {
		case '\\':
			if l.isAtEnd() {
				return l.errorf("unterminated string literal")
			}
			l.advance()
		case '"':
			l.addToken(TokenString)
			return nil
		}
	}
}

func (l *Lexer) identifierTail() {
	for isAlphaNumeric(l.peek()) || l.peek() == '_' {
		l.advance()
	}
}

func (l *Lexer) addToken(kind TokenKind) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Lexeme: l.source[l.start:l.pos],
		Span:   l.span(),
	})
}

func (l *Lexer) span() Span {
	return Span{
		Start: Position{Line: l.line, Column: l.startC, Offset: l.offset + l.start},
		End:   Position{Line: l.line, Column: l.column, Offset: l.offset + l.pos},
	}
}

func (l *Lexer) errorf(format string, args ...any) *SourceError {
	return &SourceError{
		Kind:    SyntaxError,
		Message: fmt.Sprintf(format, args...),
		Span:    l.span(),
	}
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size
	l.column++
	return r
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos:])
	return r
}

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
