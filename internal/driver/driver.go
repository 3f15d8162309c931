// Package driver wires the scanner, parser, and QUAD emitter into the
// three operations the CLI exposes (compile, lex-dump, parse-only),
// generalizing the pipeline that the teacher's cmd/dwscript/cmd/compile.go
// inlines directly into its RunE function, since here it's shared by three
// subcommands and by --watch.
package driver

import (
	"strings"

	"github.com/efratelisha/cplc/internal/config"
	"github.com/efratelisha/cplc/internal/errors"
	"github.com/efratelisha/cplc/internal/lexer"
	"github.com/efratelisha/cplc/internal/parser"
	"github.com/efratelisha/cplc/internal/quad"
)

// Result is the outcome of a compilation attempt.
type Result struct {
	// Listing is the QUAD instructions, terminated by HALT and the
	// signature line, valid only when Diagnostics.HasError() is false.
	Listing     []string
	Diagnostics *errors.Diagnostics
}

// Compile runs the full scan→parse→emit pipeline over source and, if
// source is free of lexical/syntactic/semantic errors, returns the QUAD
// listing with cfg.Signature appended (spec.md §1, §6). If any ERROR or
// CRITICAL diagnostic was recorded, Listing is nil: the caller (the CLI)
// must not write an output file (spec.md §3 "Error flag", §7).
func Compile(source, file string, cfg *config.Config) *Result {
	diags := &errors.Diagnostics{}
	prog := quad.NewProgram()

	l := lexer.New(source, diags, file)
	p := parser.New(l, diags, prog, source, file)
	listing := p.ParseProgram()

	if diags.HasError() {
		return &Result{Diagnostics: diags}
	}

	listing = append(listing, cfg.Signature)
	return &Result{Listing: listing, Diagnostics: diags}
}

// TokenDump is one entry of Lex's token stream dump.
type TokenDump struct {
	Kind    string
	Literal string
	Line    int
}

// Lex tokenizes source and returns every token (for `cplc lex`), including
// an EOF sentinel. Lexical errors are still reported into a Diagnostics the
// caller can inspect, but tokenizing never stops early.
func Lex(source, file string) ([]TokenDump, *errors.Diagnostics) {
	diags := &errors.Diagnostics{}
	l := lexer.New(source, diags, file)

	var tokens []TokenDump
	for {
		tok := l.NextToken()
		tokens = append(tokens, TokenDump{Kind: tok.Type.String(), Literal: tok.Literal, Line: tok.Line})
		if tok.Type == lexer.EOF {
			break
		}
	}
	return tokens, diags
}

// Parse runs the scanner and parser without requiring a clean result,
// returning the (possibly partial/incorrect) QUAD listing alongside
// whatever diagnostics were recorded, for `cplc parse`'s error-reporting
// mode.
func Parse(source, file string) ([]string, *errors.Diagnostics) {
	diags := &errors.Diagnostics{}
	prog := quad.NewProgram()

	l := lexer.New(source, diags, file)
	p := parser.New(l, diags, prog, source, file)
	listing := p.ParseProgram()
	return listing, diags
}

// WriteListing joins a QUAD listing the way the driver writes it to disk:
// one instruction per line, no trailing newline (matching cpq.py's
// '\n'.join(translated_code)).
func WriteListing(listing []string) string {
	return strings.Join(listing, "\n")
}
