package parser

import (
	"fmt"

	"github.com/efratelisha/cplc/internal/lexer"
	"github.com/efratelisha/cplc/internal/quad"
)

// parseBoolExpr implements boolexpr → boolexpr OR boolterm | boolterm.
func (p *Parser) parseBoolExpr() quad.Operand {
	left := p.parseBoolTerm()
	for p.cur.Type == lexer.OR {
		p.nextToken()
		right := p.parseBoolTerm()
		left = p.prog.LogicalOr(left, right)
	}
	return left
}

// parseBoolTerm implements boolterm → boolterm AND boolfactor | boolfactor.
func (p *Parser) parseBoolTerm() quad.Operand {
	left := p.parseBoolFactor()
	for p.cur.Type == lexer.AND {
		p.nextToken()
		right := p.parseBoolFactor()
		left = p.prog.LogicalAnd(left, right)
	}
	return left
}

// parseBoolFactor implements
// boolfactor → NOT '(' boolexpr ')' | expression RELOP expression.
func (p *Parser) parseBoolFactor() quad.Operand {
	if p.cur.Type == lexer.NOT {
		p.nextToken()
		p.expect(lexer.LPAREN)
		inner := p.parseBoolExpr()
		p.expect(lexer.RPAREN)
		return p.prog.LogicalNot(inner)
	}

	left := p.parseExpression()
	relop := p.expect(lexer.RELOP)
	right := p.parseExpression()
	return p.prog.Relational(relop.Literal, left, right)
}

// parseExpression implements expression → expression ADDOP term | term.
func (p *Parser) parseExpression() quad.Operand {
	left := p.parseTerm()
	for p.cur.Type == lexer.ADDOP {
		op := p.cur.Literal
		p.nextToken()
		right := p.parseTerm()
		left = p.prog.ThreeAddress(op, left, right)
	}
	return left
}

// parseTerm implements term → term MULOP factor | factor.
func (p *Parser) parseTerm() quad.Operand {
	left := p.parseFactor()
	for p.cur.Type == lexer.MULOP {
		op := p.cur.Literal
		p.nextToken()
		right := p.parseFactor()
		left = p.prog.ThreeAddress(op, left, right)
	}
	return left
}

// parseFactor implements
// factor → '(' expression ')' | CAST '(' expression ')' | ID | NUM.
func (p *Parser) parseFactor() quad.Operand {
	switch p.cur.Type {
	case lexer.LPAREN:
		p.nextToken()
		value := p.parseExpression()
		p.expect(lexer.RPAREN)
		return value

	case lexer.CAST:
		return p.parseCast()

	case lexer.IDENT:
		tok := p.cur
		p.nextToken()
		return quad.Operand{Name: tok.Literal, Type: p.lookupOrDefault(tok.Literal, tok.Line)}

	case lexer.NUM:
		tok := p.cur
		p.nextToken()
		return quad.NewLiteralOperand(tok.Literal)

	default:
		p.reportError(fmt.Sprintf("unrecognized token %s", p.cur.Literal), p.cur.Line)
		if p.cur.Type != lexer.EOF {
			p.nextToken()
		}
		return quad.Operand{Name: "0", Type: quad.Real}
	}
}

// parseCast implements factor → CAST '(' expression ')'. If the expression
// is already of the cast's target type, the cast is redundant: a WARNING
// is reported and the operand passes through unconverted (spec.md §4.2,
// §8 scenario S6 — cast idempotence).
func (p *Parser) parseCast() quad.Operand {
	castTok := p.cur
	p.nextToken()
	p.expect(lexer.LPAREN)
	value := p.parseExpression()
	p.expect(lexer.RPAREN)

	target := quad.Integer
	if lexer.CastInnerType(castTok.Literal) == "float" {
		target = quad.Real
	}

	if value.Type == target {
		p.reportWarning(fmt.Sprintf("redundant cast to %s", target), castTok.Line)
		return value
	}
	return p.prog.Convert(value, target)
}
