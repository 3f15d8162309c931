package parser

import (
	"fmt"

	"github.com/efratelisha/cplc/internal/lexer"
	"github.com/efratelisha/cplc/internal/quad"
)

// parseDeclarations implements declarations → declarations declaration | ε:
// zero or more declarations, each starting with an identifier.
func (p *Parser) parseDeclarations() {
	for p.cur.Type == lexer.IDENT {
		p.parseDeclaration()
	}
}

// parseDeclaration implements declaration → idlist ':' type ';'. Each id
// is inserted into the symbol table; a redeclaration is a semantic error
// that leaves the existing entry unchanged (spec.md §4.2).
func (p *Parser) parseDeclaration() {
	ids := p.parseIDList()
	p.expect(lexer.COLON)
	typ := p.parseType()
	p.expect(lexer.SEMICOLON)

	for _, id := range ids {
		if !p.prog.Declare(id.Literal, typ) {
			p.reportError(fmt.Sprintf("%s already defined", id.Literal), id.Line)
		}
	}
}

// parseIDList implements idlist → idlist ',' ID | ID.
func (p *Parser) parseIDList() []lexer.Token {
	ids := []lexer.Token{p.expect(lexer.IDENT)}
	for p.cur.Type == lexer.COMMA {
		p.nextToken()
		ids = append(ids, p.expect(lexer.IDENT))
	}
	return ids
}

// parseType implements type → 'int' | 'float'.
func (p *Parser) parseType() quad.Type {
	switch p.cur.Type {
	case lexer.INT:
		p.nextToken()
		return quad.Integer
	case lexer.FLOAT:
		p.nextToken()
		return quad.Real
	default:
		p.reportError(fmt.Sprintf("unrecognized token %s", p.cur.Literal), p.cur.Line)
		if p.cur.Type != lexer.EOF {
			p.nextToken()
		}
		return quad.Real
	}
}
