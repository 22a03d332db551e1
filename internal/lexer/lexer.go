// Package lexer turns a .bhv/.bhi source file into a stream of
// internal/token.Tokens. Grounded on funvibe/funxy's internal/lexer
// package: the same hand-rolled, table-free scanning style (a Lexer
// struct tracking position/readPosition/ch/line/column, readChar
// stepping a rune at a time via utf8.DecodeRuneInString, a single big
// switch in NextToken, one-or-two-character lookahead via peekChar for
// every multi-character operator) cut down to this language's much
// smaller token set — no bytes/bits/rational/interpolated-string
// literals, no user-defined operators, no automatic semicolon
// insertion (newlines are ordinary whitespace here; statements are
// separated by the grammar, not by NEWLINE tokens).
package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/Synaptic-Simulations/behave/internal/token"
)

// Lexer scans one source file's text into tokens on demand.
type Lexer struct {
	file         string
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	col          int
}

// New creates a Lexer over input, attributing every token's location to
// file.
func New(file, input string) *Lexer {
	l := &Lexer{file: file, input: input, line: 1, col: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.col++
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.col++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// NextToken scans and returns the next token, advancing past it.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	startLine, startCol, startPos := l.line, l.col, l.position

	loc := func() token.Location {
		return token.Location{File: l.file, Start: startPos, End: l.position, Line: startLine, Col: startCol}
	}
	one := func(t token.Type) token.Token {
		lex := string(l.ch)
		l.readChar()
		return token.Token{Type: t, Lexeme: lex, Loc: loc()}
	}
	two := func(t token.Type, lex string) token.Token {
		l.readChar()
		l.readChar()
		return token.Token{Type: t, Lexeme: lex, Loc: loc()}
	}

	switch l.ch {
	case 0:
		return token.Token{Type: token.EOF, Loc: loc()}

	case '(':
		return one(token.LPAREN)
	case ')':
		return one(token.RPAREN)
	case '{':
		return one(token.LBRACE)
	case '}':
		return one(token.RBRACE)
	case '[':
		return one(token.LBRACKET)
	case ']':
		return one(token.RBRACKET)
	case ',':
		return one(token.COMMA)
	case ':':
		return one(token.COLON)
	case ';':
		return one(token.SEMI)
	case '?':
		return one(token.QUESTION)

	case '.':
		return one(token.DOT)

	case '-':
		if l.peekChar() == '>' {
			return two(token.ARROW, "->")
		}
		return one(token.MINUS)
	case '+':
		return one(token.PLUS)
	case '*':
		return one(token.STAR)
	case '/':
		return one(token.SLASH)

	case '!':
		if l.peekChar() == '=' {
			return two(token.NEQ, "!=")
		}
		return one(token.BANG)
	case '=':
		if l.peekChar() == '=' {
			return two(token.EQ, "==")
		}
		return one(token.ASSIGN)
	case '<':
		if l.peekChar() == '=' {
			return two(token.LE, "<=")
		}
		return one(token.LT)
	case '>':
		if l.peekChar() == '=' {
			return two(token.GE, ">=")
		}
		return one(token.GT)
	case '&':
		if l.peekChar() == '&' {
			return two(token.AND_AND, "&&")
		}
		return l.illegal(loc, "unexpected character '&'")
	case '|':
		if l.peekChar() == '|' {
			return two(token.OR_OR, "||")
		}
		return one(token.PIPE)

	case '"':
		return l.readString(startLine, startCol, startPos)

	default:
		if isLetter(l.ch) {
			return l.readIdentifier(startLine, startCol, startPos)
		}
		if isDigit(l.ch) {
			return l.readNumber(startLine, startCol, startPos)
		}
		return l.illegal(loc, "unexpected character "+strconv.QuoteRune(l.ch))
	}
}

func (l *Lexer) illegal(loc func() token.Location, msg string) token.Token {
	lex := string(l.ch)
	l.readChar()
	return token.Token{Type: token.ILLEGAL, Lexeme: lex, Literal: msg, Loc: loc()}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			for l.ch != 0 {
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				l.readChar()
			}
			continue
		}
		break
	}
}

func (l *Lexer) readIdentifier(startLine, startCol, startPos int) token.Token {
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[startPos:l.position]
	loc := token.Location{File: l.file, Start: startPos, End: l.position, Line: startLine, Col: startCol}
	return token.Token{Type: token.LookupIdent(lexeme), Lexeme: lexeme, Literal: lexeme, Loc: loc}
}

func (l *Lexer) readNumber(startLine, startCol, startPos int) token.Token {
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	lexeme := l.input[startPos:l.position]
	loc := token.Location{File: l.file, Start: startPos, End: l.position, Line: startLine, Col: startCol}
	return token.Token{Type: token.NUMBER, Lexeme: lexeme, Literal: lexeme, Loc: loc}
}

// readString scans a double-quoted string literal, processing \n \t \r
// \\ \" escapes. An unterminated string yields an ILLEGAL token rather
// than panicking or running off the end of input.
func (l *Lexer) readString(startLine, startCol, startPos int) token.Token {
	l.readChar() // consume opening quote
	var out []byte
	for {
		if l.ch == 0 {
			loc := token.Location{File: l.file, Start: startPos, End: l.position, Line: startLine, Col: startCol}
			return token.Token{Type: token.ILLEGAL, Lexeme: l.input[startPos:l.position], Literal: "unterminated string literal", Loc: loc}
		}
		if l.ch == '"' {
			l.readChar()
			break
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			case '\\':
				out = append(out, '\\')
			case '"':
				out = append(out, '"')
			default:
				out = append(out, '\\')
				out = appendRune(out, l.ch)
			}
			l.readChar()
			continue
		}
		out = appendRune(out, l.ch)
		l.readChar()
	}
	loc := token.Location{File: l.file, Start: startPos, End: l.position, Line: startLine, Col: startCol}
	return token.Token{Type: token.STRING, Lexeme: l.input[startPos:l.position], Literal: string(out), Loc: loc}
}

func appendRune(b []byte, r rune) []byte {
	buf := make([]byte, 4)
	n := utf8.EncodeRune(buf, r)
	return append(b, buf[:n]...)
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || (ch >= 0x80 && unicode.IsLetter(ch))
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
