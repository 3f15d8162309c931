package lexer

import (
	"strings"

	"github.com/efratelisha/cplc/internal/errors"
)

// Lexer converts CPL source into a stream of Tokens, stripping whitespace
// and single-line /* ... */ comments (spec.md §4.1). It reports and skips
// unrecognizable characters rather than aborting, so the parser can keep
// going and surface more than one diagnostic per run (spec.md §7).
type Lexer struct {
	input        string
	diagnostics  *errors.Diagnostics
	file         string
	position     int
	readPosition int
	line         int
	ch           byte
}

// New creates a Lexer over input, reporting lexical errors into diags.
// file is used only to attribute diagnostics; it may be empty.
func New(input string, diags *errors.Diagnostics, file string) *Lexer {
	l := &Lexer{
		input:       input,
		diagnostics: diags,
		file:        file,
		line:        1,
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) addError(msg string, line int) {
	l.diagnostics.Report(errors.SeverityError, msg, line, l.input, l.file)
}

// skipWhitespaceAndComments consumes spaces, tabs, newlines (bumping the
// line counter), and /* ... */ comments. A comment is single-line only:
// matching cpq_lexer.py's non-DOTALL regex, an unterminated or
// line-spanning comment simply stops matching at end of line and the
// remaining "/* ..." text is lexed as ordinary tokens (spec.md §9).
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r':
			l.readChar()
		case l.ch == '\n':
			l.line++
			l.readChar()
		case l.ch == '/' && l.peekChar() == '*' && l.hasLineTerminatedComment():
			l.skipComment()
		default:
			return
		}
	}
}

// hasLineTerminatedComment reports whether, from the current "/*", a "*/"
// appears before the next newline or end of input. The search starts after
// the opening "/*", so "/*/" does not close itself.
func (l *Lexer) hasLineTerminatedComment() bool {
	rest := l.input[l.position:]
	nl := strings.IndexByte(rest, '\n')
	end := strings.Index(rest[2:], "*/")
	if end == -1 {
		return false
	}
	end += 2
	return nl == -1 || end < nl
}

func (l *Lexer) skipComment() {
	l.readChar() // consume '/'
	l.readChar() // consume '*'
	for !(l.ch == '*' && l.peekChar() == '/') && l.ch != 0 {
		l.readChar()
	}
	l.readChar() // consume '*'
	l.readChar() // consume '/'
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// NextToken scans and returns the next token, advancing the lexer past it.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()
	line := l.line

	switch {
	case l.ch == 0:
		return NewToken(EOF, "", line)
	case isLetter(l.ch):
		return l.readWordToken(line)
	case isDigit(l.ch):
		return NewToken(NUM, l.readNumber(), line)
	}

	tok, ok := l.readOperatorOrLiteral(line)
	if ok {
		return tok
	}

	bad := string(l.ch)
	l.addError("lexical error - bad character "+bad, line)
	l.readChar()
	return NewToken(ILLEGAL, bad, line)
}

// readWordToken reads an identifier, a keyword, or (as a special case) a
// CAST token, since "static_cast<int>"/"static_cast<float>" don't fit the
// plain ID grammar (spec.md §4.1: ID has no underscore).
func (l *Lexer) readWordToken(line int) Token {
	if strings.HasPrefix(l.input[l.position:], castPrefix) {
		if tok, ok := l.tryReadCast(line); ok {
			return tok
		}
	}

	start := l.position
	l.readChar()
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	word := l.input[start:l.position]
	if kw, ok := keywords[word]; ok {
		return NewToken(kw, word, line)
	}
	return NewToken(IDENT, word, line)
}

func (l *Lexer) tryReadCast(line int) (Token, bool) {
	start := l.position
	rest := l.input[l.position:]
	end := strings.IndexByte(rest, '>')
	if end == -1 {
		return Token{}, false
	}
	lexeme := rest[:end+1]
	inner := CastInnerType(lexeme)
	if inner != "int" && inner != "float" {
		return Token{}, false
	}
	for i := 0; i < len(lexeme); i++ {
		l.readChar()
	}
	_ = start
	return NewToken(CAST, lexeme, line), true
}

// readNumber reads one or more digits, optionally followed by '.' and zero
// or more digits (spec.md §4.1 NUM).
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.position]
}

// readOperatorOrLiteral handles everything that isn't a letter or digit:
// relops, addops, mulops, the logical connectives, and the pass-through
// literal characters (spec.md §4.1).
func (l *Lexer) readOperatorOrLiteral(line int) (Token, bool) {
	ch := l.ch
	switch ch {
	case '(':
		l.readChar()
		return NewToken(LPAREN, "(", line), true
	case ')':
		l.readChar()
		return NewToken(RPAREN, ")", line), true
	case '{':
		l.readChar()
		return NewToken(LBRACE, "{", line), true
	case '}':
		l.readChar()
		return NewToken(RBRACE, "}", line), true
	case ',':
		l.readChar()
		return NewToken(COMMA, ",", line), true
	case ':':
		l.readChar()
		return NewToken(COLON, ":", line), true
	case ';':
		l.readChar()
		return NewToken(SEMICOLON, ";", line), true
	case '+', '-':
		l.readChar()
		return NewToken(ADDOP, string(ch), line), true
	case '*', '/':
		l.readChar()
		return NewToken(MULOP, string(ch), line), true
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			l.readChar()
			return NewToken(OR, "||", line), true
		}
		return Token{}, false
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			l.readChar()
			return NewToken(AND, "&&", line), true
		}
		return Token{}, false
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return NewToken(RELOP, "!=", line), true
		}
		l.readChar()
		return NewToken(NOT, "!", line), true
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return NewToken(RELOP, "==", line), true
		}
		l.readChar()
		return NewToken(ASSIGN, "=", line), true
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return NewToken(RELOP, "<=", line), true
		}
		l.readChar()
		return NewToken(RELOP, "<", line), true
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return NewToken(RELOP, ">=", line), true
		}
		l.readChar()
		return NewToken(RELOP, ">", line), true
	}
	return Token{}, false
}
