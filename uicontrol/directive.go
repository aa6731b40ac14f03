package uicontrol

import (
	"fmt"
	"strings"
)

const directiveKeyword = "#uicontrol"

// isDirective reports whether line, once leading blanks are trimmed, starts
// with the directive keyword as a whole word.
func isDirective(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, directiveKeyword) {
		return false
	}
	rest := trimmed[len(directiveKeyword):]
	return rest == "" || strings.ContainsRune(" \t\r\v\f", rune(rest[0]))
}

// directive is the syntax of one directive line:
//
//	#uicontrol <valueType> <name> <kind>[(<key>=<value>, ...)]
type directive struct {
	valueType Token
	name      Token
	kind      Token
	params    []param
	span      Span
}

type param struct {
	key   Token
	value Token
}

type directiveParser struct {
	tokens []Token
	pos    int
}

// parseDirective parses the tokens of a directive line. Only the grammar is
// checked here; names, types and values are resolved by the kind schema.
func parseDirective(tokens []Token) (*directive, *SourceError) {
	p := &directiveParser{tokens: tokens}

	keyword, err := p.expect(TokenDirective, "'"+directiveKeyword+"'")
	if err != nil {
		return nil, err
	}
	if keyword.Lexeme != directiveKeyword {
		return nil, p.errorAt(keyword, "expected '%s', found '%s'", directiveKeyword, keyword.Lexeme)
	}

	d := &directive{}
	if d.valueType, err = p.expect(TokenIdent, "value type"); err != nil {
		return nil, err
	}
	if d.name, err = p.expect(TokenIdent, "control name"); err != nil {
		return nil, err
	}
	if d.kind, err = p.expect(TokenIdent, "control kind"); err != nil {
		return nil, err
	}

	if p.match(TokenLeftParen) {
		if !p.check(TokenRightParen) {
			for {
				prm, err := p.param()
				if err != nil {
					return nil, err
				}
				d.params = append(d.params, prm)
				if !p.match(TokenComma) {
					break
				}
			}
		}
		if _, err := p.expect(TokenRightParen, "',' or ')' in parameter list"); err != nil {
			return nil, err
		}
	}

	end := p.previous()
	if _, err := p.expect(TokenEOF, "end of directive"); err != nil {
		return nil, err
	}

	d.span = Span{Start: keyword.Span.Start, End: end.Span.End}
	return d, nil
}

func (p *directiveParser) param() (param, *SourceError) {
	key, err := p.expect(TokenIdent, "parameter name")
	if err != nil {
		return param{}, err
	}
	if _, err := p.expect(TokenEqual, fmt.Sprintf("'=' after parameter %q", key.Lexeme)); err != nil {
		return param{}, err
	}
	value := p.peek()
	switch value.Kind {
	case TokenNumber, TokenString, TokenIdent:
		p.advance()
		return param{key: key, value: value}, nil
	default:
		return param{}, p.errorAt(value, "expected value for parameter %q, found %s", key.Lexeme, describe(value))
	}
}

func (p *directiveParser) expect(kind TokenKind, what string) (Token, *SourceError) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, p.errorAt(tok, "expected %s, found %s", what, describe(tok))
	}
	p.advance()
	return tok, nil
}

func (p *directiveParser) match(kind TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *directiveParser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *directiveParser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *directiveParser) peek() Token {
	return p.tokens[p.pos]
}

func (p *directiveParser) previous() Token {
	if p.pos == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.pos-1]
}

func (p *directiveParser) errorAt(tok Token, format string, args ...any) *SourceError {
	return NewSourceErrorf(SyntaxError, tok.Span, "", format, args...)
}

// describe renders a token for an error message.
func describe(tok Token) string {
	switch tok.Kind {
	case TokenIdent, TokenNumber, TokenString, TokenDirective:
		return fmt.Sprintf("%s '%s'", tok.Kind, tok.Lexeme)
	default:
		return tok.Kind.String()
	}
}
