package parser

import (
	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/token"
)

// parseLocalLet parses a local `let name [: Type] = value` binding as a
// block statement. Unlike the top-level `let` item (parseVariableDecl,
// which consumes its own trailing `;` since parseItem's caller doesn't),
// this one leaves the `;` for parseBlock's statement/trailing-expression
// split to consume.
func (p *Parser) parseLocalLet() ast.Expr {
	loc := p.cur.Loc
	p.advance() // `let`
	name := p.parseIdent()
	var ty *ast.Type
	if p.at(token.COLON) {
		p.advance()
		ty = p.parseType()
	}
	p.eat(token.ASSIGN, "=")
	val := p.parseExpr(0)
	return &ast.VariableDecl{Name: name, Type: ty, Value: val, Location: token.Merge(loc, val.Loc())}
}

// parseIfChain parses `if cond { } else if cond { } ... else { }`. Each
// `else if` extends the Conditions/Blocks pair; a trailing bare `else`
// fills Else. Missing a final else leaves Else nil, matching the
// evaluator's "no branch taken yields none" contract.
func (p *Parser) parseIfChain() ast.Expr {
	loc := p.cur.Loc
	p.advance() // `if`
	var conds []ast.Expr
	var blocks []*ast.BlockExpr
	var elseBlock *ast.BlockExpr
	end := loc

	for {
		cond := p.parseExpr(0)
		body := p.parseBlock()
		conds = append(conds, cond)
		blocks = append(blocks, body)
		end = body.Loc()
		if !p.at(token.KW_ELSE) {
			break
		}
		p.advance()
		if p.at(token.KW_IF) {
			p.advance()
			continue
		}
		elseBlock = p.parseBlock()
		end = elseBlock.Loc()
		break
	}
	return &ast.IfChainExpr{Conditions: conds, Blocks: blocks, Else: elseBlock, Location: token.Merge(loc, end)}
}

// parseSwitch parses `switch subject { case value: result, ... }`.
func (p *Parser) parseSwitch() ast.Expr {
	loc := p.cur.Loc
	p.advance() // `switch`
	subject := p.parseExpr(0)
	p.eat(token.LBRACE, "{")
	var cases []ast.SwitchCase
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		p.eat(token.KW_CASE, "`case`")
		val := p.parseExpr(0)
		p.eat(token.COLON, ":")
		res := p.parseExpr(0)
		cases = append(cases, ast.SwitchCase{Value: val, Result: res})
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end := p.cur.Loc
	p.eat(token.RBRACE, "}")
	return &ast.SwitchExpr{Subject: subject, Cases: cases, Location: token.Merge(loc, end)}
}

func (p *Parser) parseWhile() ast.Expr {
	loc := p.cur.Loc
	p.advance() // `while`
	cond := p.parseExpr(0)
	body := p.parseBlock()
	return &ast.WhileExpr{Cond: cond, Body: body, Location: token.Merge(loc, body.Loc())}
}

// parseFor parses `for binding in iterable { body }`.
func (p *Parser) parseFor() ast.Expr {
	loc := p.cur.Loc
	p.advance() // `for`
	binding := p.parseIdent()
	p.eat(token.KW_IN, "`in`")
	iterable := p.parseExpr(0)
	body := p.parseBlock()
	return &ast.ForExpr{Binding: binding, Iterable: iterable, Body: body, Location: token.Merge(loc, body.Loc())}
}

// parseReturn parses `return;` or `return expr;`. A return immediately
// followed by `;` or `}` carries no value.
func (p *Parser) parseReturn() ast.Expr {
	loc := p.cur.Loc
	p.advance() // `return`
	if p.at(token.SEMI) || p.at(token.RBRACE) {
		return &ast.ReturnExpr{Location: loc}
	}
	val := p.parseExpr(0)
	return &ast.ReturnExpr{Value: val, Location: token.Merge(loc, val.Loc())}
}

// parseBreak parses `break;` or `break expr;`, same value-optionality
// as parseReturn.
func (p *Parser) parseBreak() ast.Expr {
	loc := p.cur.Loc
	p.advance() // `break`
	if p.at(token.SEMI) || p.at(token.RBRACE) {
		return &ast.BreakExpr{Location: loc}
	}
	val := p.parseExpr(0)
	return &ast.BreakExpr{Value: val, Location: token.Merge(loc, val.Loc())}
}
