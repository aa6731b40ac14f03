package uicontrol

// TokenKind represents the type of token in a directive line.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenError

	TokenDirective // #uicontrol
	TokenIdent
	TokenNumber
	TokenString

	TokenLeftParen  // (
	TokenRightParen // )
	TokenComma      // ,
	TokenEqual      // =
)

// String returns the string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of line"
	case TokenError:
		return "Error"
	case TokenDirective:
		return "directive"
	case TokenIdent:
		return "identifier"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenLeftParen:
		return "'('"
	case TokenRightParen:
		return "')'"
	case TokenComma:
		return "','"
	case TokenEqual:
		return "'='"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Span   Span
}

// Span represents a source code location span.
type Span struct {
	Start Position
	End   Position
}

// Position represents a position in source code.
//
// Line and Column are 1-based; Column counts characters, not bytes.
// Offset is the 0-based byte offset into the source.
type Position struct {
	Line   int
	Column int
	Offset int
}
