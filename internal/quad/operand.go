package quad

import "strings"

// Operand is a value-passing record carried up the parse tree: a name
// (identifier, temporary, or literal lexeme) paired with its scalar type.
// It never owns storage (spec.md §3).
type Operand struct {
	Name string
	Type Type
}

// NewLiteralOperand builds the Operand for a NUM token. A lexeme containing
// '.' is real, otherwise integer (spec.md §3 invariants).
func NewLiteralOperand(lexeme string) Operand {
	if strings.Contains(lexeme, ".") {
		return Operand{Name: lexeme, Type: Real}
	}
	return Operand{Name: lexeme, Type: Integer}
}

// Well-known integer literal operands used to lower boolean connectives to
// arithmetic (spec.md §4.2 boolexpr/boolterm/boolfactor actions). They never
// touch the symbol table or counters, so they're plain values, not temps.
var (
	zeroOperand = Operand{Name: "0", Type: Integer}
	oneOperand  = Operand{Name: "1", Type: Integer}
	twoOperand  = Operand{Name: "2", Type: Integer}
)
