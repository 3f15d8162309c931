// Package parser implements the CPL recursive-descent parser with
// embedded semantic actions (spec.md §4.2). Grammar conflicts that an
// LALR generator would resolve via precedence are instead resolved by the
// grammar's own non-terminal hierarchy — boolexpr < boolterm < boolfactor
// < expression < term < factor — so each precedence level gets its own
// parse method instead of a Pratt climber (spec.md §9).
//
// The marker non-terminals JIF/JEND/FLBL/LBL that the reference grammar
// uses to splice code emission mid-reduction become explicit local
// variables here: the label a production needs is computed and held by
// the caller, not recovered by indexing backwards into a parse stack
// (spec.md §9, "Replacing the 'look N symbols to the left' idiom").
package parser

import (
	"fmt"

	"github.com/efratelisha/cplc/internal/errors"
	"github.com/efratelisha/cplc/internal/lexer"
	"github.com/efratelisha/cplc/internal/quad"
)

// Parser drives the lexer one token of lookahead at a time and mutates a
// shared quad.Program as it recognizes productions.
type Parser struct {
	lex    *lexer.Lexer
	diags  *errors.Diagnostics
	prog   *quad.Program
	source string
	file   string
	cur    lexer.Token
	peek   lexer.Token
}

// New creates a Parser reading tokens from l and emitting into prog.
// source and file are only used to attribute diagnostics.
func New(l *lexer.Lexer, diags *errors.Diagnostics, prog *quad.Program, source, file string) *Parser {
	p := &Parser{lex: l, diags: diags, prog: prog, source: source, file: file}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) reportError(msg string, line int) {
	p.diags.Report(errors.SeverityError, msg, line, p.source, p.file)
}

func (p *Parser) reportWarning(msg string, line int) {
	p.diags.Report(errors.SeverityWarning, msg, line, p.source, p.file)
}

// expect consumes the current token if it matches tt, or reports spec.md
// §4.2's parser error ("unrecognized token ... at line ...") and skips a
// single token before returning — the grammar's only error-recovery
// strategy (spec.md §4.1/§7).
func (p *Parser) expect(tt lexer.TokenType) lexer.Token {
	if p.cur.Type == tt {
		tok := p.cur
		p.nextToken()
		return tok
	}
	p.reportError(fmt.Sprintf("unrecognized token %s", p.cur.Literal), p.cur.Line)
	tok := p.cur
	if p.cur.Type != lexer.EOF {
		p.nextToken()
	}
	return tok
}

// lookupOrDefault resolves an identifier's declared type, reporting a
// semantic error and defaulting to Real if it isn't declared — the
// "default-to-real" permissiveness spec.md §4.2/§7 describes for
// undeclared identifiers, so later type checks don't cascade noise.
func (p *Parser) lookupOrDefault(name string, line int) quad.Type {
	typ, ok := p.prog.Lookup(name)
	if !ok {
		p.reportError(fmt.Sprintf("%s not in symbol table", name), line)
		return quad.Real
	}
	return typ
}

// ParseProgram parses program → declarations stmt_block, emits HALT, and
// returns the finished QUAD listing.
func (p *Parser) ParseProgram() []string {
	p.parseDeclarations()
	p.parseStmtBlock()
	return p.prog.Finalize()
}
