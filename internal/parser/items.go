package parser

import (
	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/token"
)

func (p *Parser) parseImports() []ast.Import {
	var imports []ast.Import
	for p.at(token.KW_IMPORT) {
		imports = append(imports, p.parseImport())
	}
	return imports
}

func (p *Parser) parseImport() ast.Import {
	loc := p.cur.Loc
	p.advance() // `import`
	if p.at(token.KW_EXTERN) {
		p.advance()
		e := p.parseExpr(0)
		p.eat(token.SEMI, ";")
		return ast.Import{Kind: ast.ImportExtern, Extern: e, Location: token.Merge(loc, e.Loc())}
	}
	path := p.parsePath()
	end := path.Loc()
	p.eat(token.SEMI, ";")
	return ast.Import{Kind: ast.ImportNormal, Path: path, Location: token.Merge(loc, end)}
}

// parseParams parses `(name: Type [= default], ...)`. Only template
// parameters carry defaults in practice, but the grammar allows one
// anywhere a parameter list appears — a function parameter's default,
// if written, is simply never consulted by the evaluator's call-binding
// path (SPEC_FULL.md §4.2.1 binds function arguments positionally by
// type, not through the provided/defaults protocol §4.2.4 uses).
func (p *Parser) parseParams() []ast.Param {
	p.eat(token.LPAREN, "(")
	var params []ast.Param
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		name := p.parseIdent()
		p.eat(token.COLON, ":")
		ty := p.parseType()
		var def ast.Expr
		if p.at(token.ASSIGN) {
			p.advance()
			def = p.parseExpr(0)
		}
		params = append(params, ast.Param{Name: name, Type: ty, Default: def})
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.eat(token.RPAREN, ")")
	return params
}

func (p *Parser) parseItem() *ast.Item {
	switch p.cur.Type {
	case token.KW_FN:
		d := p.parseFunctionDecl()
		return &ast.Item{Function: d, Location: d.Location}
	case token.KW_TEMPLATE:
		d := p.parseTemplateDecl()
		return &ast.Item{Template: d, Location: d.Location}
	case token.KW_STRUCT:
		d := p.parseStructDecl()
		return &ast.Item{Struct: d, Location: d.Location}
	case token.KW_ENUM:
		d := p.parseEnumDecl()
		return &ast.Item{Enum: d, Location: d.Location}
	case token.KW_LET:
		d := p.parseVariableDecl()
		return &ast.Item{Variable: d, Location: d.Location}
	default:
		loc := p.cur.Loc
		p.errorf(loc, "expected an item declaration (fn/template/struct/enum/let), found "+describe(p.cur))
		p.advance()
		return &ast.Item{Location: loc}
	}
}

func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	loc := p.cur.Loc
	p.advance() // `fn`
	name := p.parseIdent()
	params := p.parseParams()
	var ret *ast.Type
	if p.at(token.ARROW) {
		p.advance()
		ret = p.parseType()
	}
	body := p.parseBlock()
	return &ast.FunctionDecl{Name: name, Params: params, Ret: ret, Body: body, Location: token.Merge(loc, body.Loc())}
}

// parseTemplateDecl parses `template name(params) { stmt; stmt; ... }`.
// Unlike a function body, a template body is a bare statement list, not
// a BlockExpr: the evaluator collects the template values its top-level
// statements produce rather than taking a trailing result, so there is
// no trailing-expression distinction to track here.
func (p *Parser) parseTemplateDecl() *ast.TemplateDecl {
	loc := p.cur.Loc
	p.advance() // `template`
	name := p.parseIdent()
	params := p.parseParams()
	p.eat(token.LBRACE, "{")
	var stmts []ast.Expr
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseExpr(0))
		if p.at(token.SEMI) {
			p.advance()
		}
	}
	end := p.cur.Loc
	p.eat(token.RBRACE, "}")
	return &ast.TemplateDecl{Name: name, Params: params, Body: stmts, Location: token.Merge(loc, end)}
}

func (p *Parser) parseStructDecl() *ast.StructDecl {
	loc := p.cur.Loc
	p.advance() // `struct`
	name := p.parseIdent()
	p.eat(token.LBRACE, "{")
	var fields []ast.StructField
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		fname := p.parseIdent()
		p.eat(token.COLON, ":")
		ty := p.parseType()
		var def ast.Expr
		if p.at(token.ASSIGN) {
			p.advance()
			def = p.parseExpr(0)
		}
		fields = append(fields, ast.StructField{Name: fname, Type: ty, Default: def})
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end := p.cur.Loc
	p.eat(token.RBRACE, "}")
	return &ast.StructDecl{Name: name, Fields: fields, Location: token.Merge(loc, end)}
}

func (p *Parser) parseEnumDecl() *ast.EnumDecl {
	loc := p.cur.Loc
	p.advance() // `enum`
	name := p.parseIdent()
	p.eat(token.LBRACE, "{")
	var variants []ast.EnumVariant
	next := 0
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		vname := p.parseIdent()
		tag := next
		explicit := false
		if p.at(token.ASSIGN) {
			p.advance()
			tag = p.parseIntLiteral()
			explicit = true
		}
		variants = append(variants, ast.EnumVariant{Name: vname, Tag: tag, Explicit: explicit})
		next = tag + 1
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	end := p.cur.Loc
	p.eat(token.RBRACE, "}")
	return &ast.EnumDecl{Name: name, Variants: variants, Location: token.Merge(loc, end)}
}

func (p *Parser) parseIntLiteral() int {
	tok := p.eat(token.NUMBER, "a number")
	n := 0
	neg := false
	for i, r := range tok.Lexeme {
		if i == 0 && r == '-' {
			neg = true
			continue
		}
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		n = -n
	}
	return n
}

func (p *Parser) parseVariableDecl() *ast.VariableDecl {
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
	end := val.Loc()
	p.eat(token.SEMI, ";")
	return &ast.VariableDecl{Name: name, Type: ty, Value: val, Location: token.Merge(loc, end)}
}

// parseLODs parses the main file's `lods { minSize : asset ; ... }`
// block.
func (p *Parser) parseLODs() *ast.LODs {
	loc := p.cur.Loc
	p.advance() // `lods`
	p.eat(token.LBRACE, "{")
	var entries []ast.LOD
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		entryLoc := p.cur.Loc
		size := p.parseExpr(0)
		p.eat(token.COLON, ":")
		asset := p.parseExpr(0)
		entries = append(entries, ast.LOD{MinSize: size, Asset: asset, Location: token.Merge(entryLoc, asset.Loc())})
		if p.at(token.SEMI) {
			p.advance()
			continue
		}
		break
	}
	end := p.cur.Loc
	p.eat(token.RBRACE, "}")
	return &ast.LODs{Entries: entries, Location: token.Merge(loc, end)}
}

// parseBehavior parses the main file's `behavior { stmt; stmt; ... }`
// block: a bare statement list, same shape as a template body.
func (p *Parser) parseBehavior() *ast.Behavior {
	loc := p.cur.Loc
	p.advance() // `behavior`
	p.eat(token.LBRACE, "{")
	var stmts []ast.Expr
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseExpr(0))
		if p.at(token.SEMI) {
			p.advance()
		}
	}
	end := p.cur.Loc
	p.eat(token.RBRACE, "}")
	return &ast.Behavior{Stmts: stmts, Location: token.Merge(loc, end)}
}
