package parser

import (
	"strconv"

	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/token"
)

// binOpInfo maps an infix operator token to its BinaryOp and binding
// power. Precedence climbing (parseBinary) consumes the tightest-binding
// operators first; all operators here are left-associative, matching
// the evaluator's left-to-right operand evaluation order (SPEC_FULL.md
// §5).
func binOpInfo(t token.Type) (op ast.BinaryOp, prec int, ok bool) {
	switch t {
	case token.OR_OR:
		return ast.BinOr, 1, true
	case token.AND_AND:
		return ast.BinAnd, 2, true
	case token.EQ:
		return ast.BinEq, 3, true
	case token.NEQ:
		return ast.BinNeq, 3, true
	case token.LT:
		return ast.BinLt, 4, true
	case token.GT:
		return ast.BinGt, 4, true
	case token.LE:
		return ast.BinLe, 4, true
	case token.GE:
		return ast.BinGe, 4, true
	case token.PLUS:
		return ast.BinAdd, 5, true
	case token.MINUS:
		return ast.BinSub, 5, true
	case token.STAR:
		return ast.BinMul, 6, true
	case token.SLASH:
		return ast.BinDiv, 6, true
	default:
		return 0, 0, false
	}
}

// parseExpr is the sole entry point into expression parsing: it parses
// one assignment-or-binary expression. Assignment binds looser than
// every binary operator and is right-associative, matching `Target =
// Value` where Value may itself contain further operators but not a
// further top-level assignment chain beyond what recursing into
// parseExpr already allows.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parseBinary(minPrec)
	if minPrec == 0 && p.at(token.ASSIGN) {
		p.advance()
		value := p.parseExpr(0)
		return &ast.AssignExpr{Target: left, Value: value, Location: token.Merge(left.Loc(), value.Loc())}
	}
	return left
}

func (p *Parser) parseBinary(minPrec int) ast.Expr {
	left := p.parseUnary()
	for {
		op, prec, ok := binOpInfo(p.cur.Type)
		if !ok || prec < minPrec {
			return left
		}
		p.advance()
		right := p.parseBinary(prec + 1)
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, Location: token.Merge(left.Loc(), right.Loc())}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	switch p.cur.Type {
	case token.MINUS:
		loc := p.cur.Loc
		p.advance()
		operand := p.parseUnary()
		return &ast.UnaryExpr{Op: ast.UnaryNeg, Operand: operand, Location: token.Merge(loc, operand.Loc())}
	case token.BANG:
		loc := p.cur.Loc
		p.advance()
		operand := p.parseUnary()
		return &ast.UnaryExpr{Op: ast.UnaryNot, Operand: operand, Location: token.Merge(loc, operand.Loc())}
	default:
		return p.parsePostfix(p.parsePrimary())
	}
}

func (p *Parser) parsePostfix(e ast.Expr) ast.Expr {
	for {
		switch {
		case p.at(token.LPAREN):
			e = p.parseCallArgs(e)
		case p.at(token.LBRACKET):
			e = p.parseIndexExpr(e)
		default:
			return e
		}
	}
}

func (p *Parser) parseCallArgs(callee ast.Expr) ast.Expr {
	p.advance() // (
	var args []ast.Expr
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		args = append(args, p.parseExpr(0))
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end := p.cur.Loc
	p.eat(token.RPAREN, ")")
	return &ast.CallExpr{Callee: callee, Args: args, Location: token.Merge(callee.Loc(), end)}
}

func (p *Parser) parseIndexExpr(base ast.Expr) ast.Expr {
	p.advance() // [
	idx := p.parseExpr(0)
	end := p.cur.Loc
	p.eat(token.RBRACKET, "]")
	return &ast.IndexExpr{Base: base, Index: idx, Location: token.Merge(base.Loc(), end)}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur
	switch tok.Type {
	case token.NUMBER:
		p.advance()
		v, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return &ast.NumberLit{Value: v, Location: tok.Loc}
	case token.STRING:
		p.advance()
		return &ast.StringLit{Value: tok.Literal, Location: tok.Loc}
	case token.KW_TRUE:
		p.advance()
		return &ast.BoolLit{Value: true, Location: tok.Loc}
	case token.KW_FALSE:
		p.advance()
		return &ast.BoolLit{Value: false, Location: tok.Loc}
	case token.KW_NONE:
		p.advance()
		return &ast.NoneLit{Location: tok.Loc}
	case token.LPAREN:
		p.advance()
		e := p.parseExpr(0)
		p.eat(token.RPAREN, ")")
		return e
	case token.LBRACE:
		return p.parseBlock()
	case token.LBRACKET:
		return p.parseArrayLit()
	case token.KW_MAP:
		return p.parseMapLit()
	case token.KW_CODE:
		return p.parseCodeExpr()
	case token.KW_NEW:
		return p.parseStructLiteral()
	case token.KW_FN:
		return p.parseFunctionLit()
	case token.KW_LET:
		return p.parseLocalLet()
	case token.KW_IF:
		return p.parseIfChain()
	case token.KW_SWITCH:
		return p.parseSwitch()
	case token.KW_WHILE:
		return p.parseWhile()
	case token.KW_FOR:
		return p.parseFor()
	case token.KW_RETURN:
		return p.parseReturn()
	case token.KW_BREAK:
		return p.parseBreak()
	case token.KW_USE:
		return p.parseUse()
	case token.KW_COMPONENT:
		return p.parseComponent()
	case token.KW_ANIMATION:
		return p.parseAnimation()
	case token.KW_VISIBLE:
		return p.parseVisible()
	case token.KW_EMISSIVE:
		return p.parseEmissive()
	case token.IDENT:
		return p.parseAccessExpr()
	default:
		p.errorf(tok.Loc, "expected an expression, found "+describe(tok))
		p.advance()
		return &ast.NoneLit{Location: tok.Loc}
	}
}

func (p *Parser) parseAccessExpr() ast.Expr {
	path := p.parsePath()
	root := path.Parts[0]
	extra := path.Parts[1:]
	return &ast.AccessExpr{Root: root, Extra: extra, Location: path.Loc()}
}

// parseBlock parses `{ stmt; stmt; trailing }`. Every statement but the
// last must be followed by `;`; an expression immediately preceding
// `}` with no semicolon becomes the block's Trailing value.
func (p *Parser) parseBlock() *ast.BlockExpr {
	loc := p.cur.Loc
	p.eat(token.LBRACE, "{")
	var stmts []ast.Expr
	var trailing ast.Expr
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		e := p.parseExpr(0)
		if p.at(token.SEMI) {
			p.advance()
			stmts = append(stmts, e)
			continue
		}
		trailing = e
		break
	}
	end := p.cur.Loc
	p.eat(token.RBRACE, "}")
	return &ast.BlockExpr{Stmts: stmts, Trailing: trailing, Location: token.Merge(loc, end)}
}

func (p *Parser) parseArrayLit() ast.Expr {
	loc := p.cur.Loc
	p.advance() // [
	var elems []ast.Expr
	for !p.at(token.RBRACKET) && !p.at(token.EOF) {
		elems = append(elems, p.parseExpr(0))
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end := p.cur.Loc
	p.eat(token.RBRACKET, "]")
	return &ast.ArrayLit{Elements: elems, Location: token.Merge(loc, end)}
}

// parseMapLit parses `map { key : value, ... }`. The leading `map`
// keyword disambiguates a map literal from an ordinary block — without
// it, `{ k: v }` is indistinguishable from a block whose trailing
// expression is itself `k: v`, which isn't a legal expression anyway,
// but the keyword keeps the grammar LL(1) rather than relying on that.
func (p *Parser) parseMapLit() ast.Expr {
	loc := p.cur.Loc
	p.advance() // `map`
	p.eat(token.LBRACE, "{")
	var entries []ast.MapEntry
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		key := p.parseExpr(0)
		p.eat(token.COLON, ":")
		val := p.parseExpr(0)
		entries = append(entries, ast.MapEntry{Key: key, Value: val})
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end := p.cur.Loc
	p.eat(token.RBRACE, "}")
	return &ast.MapLit{Entries: entries, Location: token.Merge(loc, end)}
}

func (p *Parser) parseCodeExpr() *ast.CodeExpr {
	loc := p.cur.Loc
	p.advance() // `code`
	body := p.parseBlock()
	return &ast.CodeExpr{Body: body, Location: token.Merge(loc, body.Loc())}
}

// parseStructLiteral parses `new Type { field: value, ... }`. The
// leading `new` keyword is this grammar's disambiguator for the same
// reason `map` is: without it, `Type { ... }` immediately after an `if`
// condition or a `component` name would be ambiguous with the
// following block.
func (p *Parser) parseStructLiteral() ast.Expr {
	loc := p.cur.Loc
	p.advance() // `new`
	ty := p.parseType()
	p.eat(token.LBRACE, "{")
	var fields []ast.FieldInit
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		name := p.parseIdent()
		p.eat(token.COLON, ":")
		val := p.parseExpr(0)
		fields = append(fields, ast.FieldInit{Name: name, Value: val})
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end := p.cur.Loc
	p.eat(token.RBRACE, "}")
	return &ast.StructLiteralExpr{Type: ty, Fields: fields, Location: token.Merge(loc, end)}
}

func (p *Parser) parseFunctionLit() ast.Expr {
	loc := p.cur.Loc
	p.advance() // `fn`
	params := p.parseParams()
	var ret *ast.Type
	if p.at(token.ARROW) {
		p.advance()
		ret = p.parseType()
	}
	body := p.parseBlock()
	return &ast.FunctionLit{Params: params, Ret: ret, Body: body, Location: token.Merge(loc, body.Loc())}
}
