package parser

import (
	"fmt"

	"github.com/efratelisha/cplc/internal/lexer"
	"github.com/efratelisha/cplc/internal/quad"
)

// parseStmtBlock implements stmt_block → '{' stmtlist '}'.
func (p *Parser) parseStmtBlock() {
	p.expect(lexer.LBRACE)
	p.parseStmtList()
	p.expect(lexer.RBRACE)
}

// isStmtStart reports whether tt can begin a stmt production.
func isStmtStart(tt lexer.TokenType) bool {
	switch tt {
	case lexer.IDENT, lexer.INPUT, lexer.OUTPUT, lexer.IF, lexer.WHILE, lexer.LBRACE:
		return true
	}
	return false
}

// parseStmtList implements stmtlist → stmtlist stmt | ε.
func (p *Parser) parseStmtList() {
	for isStmtStart(p.cur.Type) {
		p.parseStmt()
	}
}

// parseStmt implements
// stmt → assignment_stmt | input_stmt | output_stmt | if_stmt | while_stmt | stmt_block.
func (p *Parser) parseStmt() {
	switch p.cur.Type {
	case lexer.IDENT:
		p.parseAssignment()
	case lexer.INPUT:
		p.parseInput()
	case lexer.OUTPUT:
		p.parseOutput()
	case lexer.IF:
		p.parseIf()
	case lexer.WHILE:
		p.parseWhile()
	case lexer.LBRACE:
		p.parseStmtBlock()
	default:
		p.reportError(fmt.Sprintf("unrecognized token %s", p.cur.Literal), p.cur.Line)
		if p.cur.Type != lexer.EOF {
			p.nextToken()
		}
	}
}

// parseAssignment implements assignment_stmt → ID '=' expression ';'.
// Narrowing real→int is a hard error (spec.md §9 resolves this open
// question); widening int→real converts implicitly via ITOR.
func (p *Parser) parseAssignment() {
	idTok := p.expect(lexer.IDENT)
	p.expect(lexer.ASSIGN)
	value := p.parseExpression()
	p.expect(lexer.SEMICOLON)

	idType := p.lookupOrDefault(idTok.Literal, idTok.Line)

	converted := value
	switch {
	case idType == quad.Integer && value.Type == quad.Real:
		p.reportError(fmt.Sprintf(
			"can't assign %s of type %s into %s of type %s",
			value.Name, value.Type, idTok.Literal, idType), idTok.Line)
	case idType == quad.Real && value.Type == quad.Integer:
		converted = p.prog.Convert(value, quad.Real)
	}

	p.prog.Emit(fmt.Sprintf("%sASN %s %s", idType.Prefix(), idTok.Literal, converted.Name))
}

// parseInput implements input_stmt → 'input' '(' ID ')' ';'.
func (p *Parser) parseInput() {
	p.expect(lexer.INPUT)
	p.expect(lexer.LPAREN)
	idTok := p.expect(lexer.IDENT)
	p.expect(lexer.RPAREN)
	p.expect(lexer.SEMICOLON)

	typ := p.lookupOrDefault(idTok.Literal, idTok.Line)
	p.prog.Emit(fmt.Sprintf("%sINP %s", typ.Prefix(), idTok.Literal))
}

// parseOutput implements output_stmt → 'output' '(' expression ')' ';'.
func (p *Parser) parseOutput() {
	p.expect(lexer.OUTPUT)
	p.expect(lexer.LPAREN)
	value := p.parseExpression()
	p.expect(lexer.RPAREN)
	p.expect(lexer.SEMICOLON)

	p.prog.Emit(fmt.Sprintf("%sPRT %s", value.Type.Prefix(), value.Name))
}

// parseIf implements
// if_stmt → 'if' '(' boolexpr ')' JIF stmt JEND 'else' FLBL stmt.
//
// The marker non-terminals become explicit labels held in locals:
//
//	<code for B producing operand b>
//	JMPZ L_false b     (JIF)
//	<code for S1>
//	JUMP  L_end        (JEND)
//	L_false:           (FLBL)
//	<code for S2>
//	L_end:             (if_stmt's own trailing action)
func (p *Parser) parseIf() {
	p.expect(lexer.IF)
	p.expect(lexer.LPAREN)
	cond := p.parseBoolExpr()
	p.expect(lexer.RPAREN)

	lFalse := p.prog.NewLabel()
	p.prog.Emit(fmt.Sprintf("JMPZ %s %s", lFalse, cond.Name))

	p.parseStmt()

	lEnd := p.prog.NewLabel()
	p.prog.Emit("JUMP " + lEnd)

	p.expect(lexer.ELSE)
	p.prog.EmitLabel(lFalse)

	p.parseStmt()

	p.prog.EmitLabel(lEnd)
}

// parseWhile implements while_stmt → 'while' LBL '(' boolexpr ')' JIF stmt.
//
//	L_top:             (LBL)
//	<code for B producing operand b>
//	JMPZ L_out b       (JIF)
//	<code for S>
//	JUMP L_top         (while_stmt's own trailing action)
//	L_out:
func (p *Parser) parseWhile() {
	p.expect(lexer.WHILE)

	lTop := p.prog.NewLabel()
	p.prog.EmitLabel(lTop)

	p.expect(lexer.LPAREN)
	cond := p.parseBoolExpr()
	p.expect(lexer.RPAREN)

	lOut := p.prog.NewLabel()
	p.prog.Emit(fmt.Sprintf("JMPZ %s %s", lOut, cond.Name))

	p.parseStmt()

	p.prog.Emit("JUMP " + lTop)
	p.prog.EmitLabel(lOut)
}
