package parser

import (
	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/token"
)

// parseType parses one type-position slot: a primitive keyword, a
// dotted user path, or a composite (array<T>, map<K,V>, fn(...)->T),
// followed by any number of trailing `?` (optional) markers and an
// optional `|`-separated sum-type tail.
func (p *Parser) parseType() *ast.Type {
	loc := p.cur.Loc
	base := p.parseTypeAtom()

	for p.at(token.QUESTION) {
		end := p.cur.Loc
		p.advance()
		base = wrapType(&ast.OptionalType{Inner: base, Location: token.Merge(loc, end)})
	}

	if !p.at(token.PIPE) {
		return base
	}
	options := []*ast.Type{base}
	for p.at(token.PIPE) {
		p.advance()
		opt := p.parseTypeAtom()
		for p.at(token.QUESTION) {
			end := p.cur.Loc
			p.advance()
			opt = wrapType(&ast.OptionalType{Inner: opt, Location: token.Merge(opt.Location, end)})
		}
		options = append(options, opt)
	}
	return wrapType(&ast.SumType{Options: options, Location: token.Merge(loc, options[len(options)-1].Location)})
}

func wrapType(e ast.TypeExpr) *ast.Type {
	return &ast.Type{Expr: e, Location: e.Loc()}
}

func (p *Parser) parseTypeAtom() *ast.Type {
	tok := p.cur
	switch tok.Type {
	case token.KW_NUM:
		p.advance()
		return wrapType(&ast.NumType{Location: tok.Loc})
	case token.KW_STR:
		p.advance()
		return wrapType(&ast.StrType{Location: tok.Loc})
	case token.KW_BOOL:
		p.advance()
		return wrapType(&ast.BoolType{Location: tok.Loc})
	case token.KW_CODE:
		p.advance()
		return wrapType(&ast.CodeType{Location: tok.Loc})
	case token.KW_NONE:
		p.advance()
		return wrapType(&ast.NoneTypeExpr{Location: tok.Loc})
	case token.KW_ARRAY:
		p.advance()
		p.eat(token.LT, "<")
		elem := p.parseType()
		end := p.cur.Loc
		p.eat(token.GT, ">")
		return wrapType(&ast.ArrayType{Elem: elem, Location: token.Merge(tok.Loc, end)})
	case token.KW_MAP:
		p.advance()
		p.eat(token.LT, "<")
		key := p.parseType()
		p.eat(token.COMMA, ",")
		val := p.parseType()
		end := p.cur.Loc
		p.eat(token.GT, ">")
		return wrapType(&ast.MapType{Key: key, Value: val, Location: token.Merge(tok.Loc, end)})
	case token.KW_FN:
		p.advance()
		p.eat(token.LPAREN, "(")
		var args []*ast.Type
		for !p.at(token.RPAREN) && !p.at(token.EOF) {
			args = append(args, p.parseType())
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
		end := p.cur.Loc
		p.eat(token.RPAREN, ")")
		var ret *ast.Type
		if p.at(token.ARROW) {
			p.advance()
			ret = p.parseType()
			end = ret.Location
		}
		return wrapType(&ast.FuncType{Args: args, Ret: ret, Location: token.Merge(tok.Loc, end)})
	case token.IDENT:
		path := p.parsePath()
		return wrapType(&ast.UserType{Name: path, Location: path.Loc()})
	default:
		p.errorf(tok.Loc, "expected a type, found "+describe(tok))
		p.advance()
		return wrapType(&ast.NoneTypeExpr{Location: tok.Loc})
	}
}
