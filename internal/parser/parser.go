// Package parser is a hand-written recursive-descent parser turning a
// token.Token stream into the internal/ast node shapes. Grounded on
// funvibe/funxy's internal/parser package: the same split into one file
// per grammar area (types.go, items.go, expr.go, stmt.go, template.go)
// and the same precedence-climbing treatment of binary operators as
// expressions_core.go's parseExpression, scaled down to this language's
// much smaller grammar — no user-defined operators, no pipe/bind/cons
// operator families, no newline-sensitive statement termination (a
// block's statements are semicolon-terminated; its last statement, if
// not semicolon-terminated, is the block's trailing value).
//
// The parser holds exactly one token of lookahead (p.cur); every parse
// function consumes tokens by calling advance() and leaves p.cur on the
// first token past whatever it parsed. Syntax errors are collected as
// diagnostics.CodeSyntax diagnostics rather than panicking; on a parse
// failure the parser manufactures a placeholder node and advances past
// the offending token so the rest of the file can still be scanned for
// further errors, the same accumulate-and-continue policy the evaluator
// uses (SPEC_FULL.md §4.2's error-collection policy).
package parser

import (
	"strconv"

	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/diagnostics"
	"github.com/Synaptic-Simulations/behave/internal/lexer"
	"github.com/Synaptic-Simulations/behave/internal/token"
)

type Parser struct {
	lex   *lexer.Lexer
	file  string
	cur   token.Token
	diags []*diagnostics.Diagnostic
}

func newParser(file, src string) *Parser {
	p := &Parser{lex: lexer.New(file, src), file: file}
	p.cur = p.lex.NextToken()
	return p
}

// ParseSecondary parses one .bhi file: imports followed by a list of
// items.
func ParseSecondary(file, src string) (*ast.File, []*diagnostics.Diagnostic) {
	p := newParser(file, src)
	imports := p.parseImports()

	var items []*ast.Item
	for !p.at(token.EOF) {
		items = append(items, p.parseItem())
	}

	return &ast.File{Kind: ast.FileSecondary, Path: file, Imports: imports, Items: items}, p.diags
}

// ParseMain parses the single .bhv file: imports, an optional `lods { }`
// block, and an optional `behavior { }` block.
func ParseMain(file, src string) (*ast.File, []*diagnostics.Diagnostic) {
	p := newParser(file, src)
	imports := p.parseImports()

	f := &ast.File{Kind: ast.FileMain, Path: file, Imports: imports}
	for !p.at(token.EOF) {
		switch p.cur.Type {
		case token.KW_LODS:
			f.LODs = p.parseLODs()
		case token.KW_BEHAVIOR:
			f.Behavior = p.parseBehavior()
		default:
			p.errorf(p.cur.Loc, "expected `lods` or `behavior`, found "+describe(p.cur))
			p.advance()
		}
	}
	return f, p.diags
}

func (p *Parser) advance() token.Token {
	t := p.cur
	p.cur = p.lex.NextToken()
	return t
}

func (p *Parser) at(t token.Type) bool { return p.cur.Type == t }

// eat consumes the current token if it has type t, else records a
// syntax diagnostic and leaves the cursor in place so the caller's
// subsequent structure (e.g. a following RBRACE) still has a chance to
// resynchronize.
func (p *Parser) eat(t token.Type, what string) token.Token {
	if !p.at(t) {
		p.errorf(p.cur.Loc, "expected "+what+", found "+describe(p.cur))
		return p.cur
	}
	return p.advance()
}

func (p *Parser) errorf(loc token.Location, msg string) {
	p.diags = append(p.diags, diagnostics.Errorf(diagnostics.CodeSyntax, msg).
		WithLabel(diagnostics.PrimaryLabel(msg, loc)))
}

func describe(t token.Token) string {
	if t.Type == token.EOF {
		return "end of file"
	}
	if t.Type == token.ILLEGAL {
		return "invalid token " + strconv.Quote(t.Lexeme)
	}
	return strconv.Quote(t.Lexeme)
}

func (p *Parser) parseIdent() ast.Ident {
	tok := p.eat(token.IDENT, "identifier")
	return ast.Ident{Name: tok.Lexeme, Location: tok.Loc}
}

func (p *Parser) parsePath() ast.Path {
	parts := []ast.Ident{p.parseIdent()}
	for p.at(token.DOT) {
		p.advance()
		parts = append(parts, p.parseIdent())
	}
	return ast.Path{Parts: parts}
}
