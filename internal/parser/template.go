package parser

import (
	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/token"
)

// parseUse parses a template-use site: `use Path.To.Template(name:
// value, ...)`. Args share the same FieldInit shape struct literals
// use, since both bind a name to an expression by keyword rather than
// position.
func (p *Parser) parseUse() ast.Expr {
	loc := p.cur.Loc
	p.advance() // `use`
	path := p.parsePath()
	args, end := p.parseFieldInits()
	return &ast.UseExpr{Path: path, Args: args, Location: token.Merge(loc, end)}
}

// parseFieldInits parses the common `(name: expr, ...)` argument list
// shared by use, animation and component.
func (p *Parser) parseFieldInits() ([]ast.FieldInit, token.Location) {
	p.eat(token.LPAREN, "(")
	var fields []ast.FieldInit
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
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
	p.eat(token.RPAREN, ")")
	return fields, end
}

// parseComponent parses `component(name: expr, node: expr) { body }`.
// Named arguments here mirror parseUse/parseAnimation rather than a
// positional `component nameExpr on nodeExpr` form, so a reader who
// knows one knows all three.
func (p *Parser) parseComponent() ast.Expr {
	loc := p.cur.Loc
	p.advance() // `component`
	args, _ := p.parseFieldInits()
	var name, node ast.Expr
	for _, f := range args {
		switch f.Name.Name {
		case "name":
			name = f.Value
		case "node":
			node = f.Value
		default:
			p.errorf(f.Name.Location, "unknown component argument `"+f.Name.Name+"`")
		}
	}
	body := p.parseBlock()
	return &ast.ComponentExpr{Name: name, Node: node, Body: body, Location: token.Merge(loc, body.Loc())}
}

// parseAnimation parses `animation(name: expr, lag: expr, length: expr,
// value: code { ... })`.
func (p *Parser) parseAnimation() ast.Expr {
	loc := p.cur.Loc
	p.advance() // `animation`
	args, end := p.parseFieldInits()
	var name, lag, length, value ast.Expr
	for _, f := range args {
		switch f.Name.Name {
		case "name":
			name = f.Value
		case "lag":
			lag = f.Value
		case "length":
			length = f.Value
		case "value":
			value = f.Value
		default:
			p.errorf(f.Name.Location, "unknown animation argument `"+f.Name.Name+"`")
		}
	}
	return &ast.AnimationExpr{Name: name, Lag: lag, Length: length, Value: value, Location: token.Merge(loc, end)}
}

// parseVisible parses `visible(code { ... })`.
func (p *Parser) parseVisible() ast.Expr {
	loc := p.cur.Loc
	p.advance() // `visible`
	p.eat(token.LPAREN, "(")
	code := p.parseExpr(0)
	end := p.cur.Loc
	p.eat(token.RPAREN, ")")
	return &ast.VisibleExpr{Code: code, Location: token.Merge(loc, end)}
}

// parseEmissive parses `emissive(code { ... })`.
func (p *Parser) parseEmissive() ast.Expr {
	loc := p.cur.Loc
	p.advance() // `emissive`
	p.eat(token.LPAREN, "(")
	code := p.parseExpr(0)
	end := p.cur.Loc
	p.eat(token.RPAREN, ")")
	return &ast.EmissiveExpr{Code: code, Location: token.Merge(loc, end)}
}
