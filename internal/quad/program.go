// Package quad implements the QUAD emitter and shared compiler state: the
// append-only instruction listing, the symbol table, and the monotonically
// increasing temporary/label counters (spec.md §4.3). It is not a separate
// API boundary in the usual sense — it is the state the parser mutates as
// it reduces the grammar — but its invariants (uniqueness, disjointness,
// label closure) are specified independently of the parser that drives it.
package quad

import "fmt"

// Program bundles the code listing, symbol table, and counters created
// empty at compiler startup and mutated monotonically during a single
// parse (spec.md §3 "Lifecycle").
type Program struct {
	symbols     map[string]Type
	code        []string
	tempCount   int
	labelCount  int
	halted      bool
}

// NewProgram returns an empty Program ready to receive declarations and
// instructions.
func NewProgram() *Program {
	return &Program{
		symbols: make(map[string]Type),
	}
}

// Declare inserts (name, typ) into the symbol table. It reports false
// without modifying the existing entry if name is already declared,
// matching spec.md §4.2's declaration action ("if id already present, emit
// semantic error and leave existing entry unchanged").
func (p *Program) Declare(name string, typ Type) bool {
	if _, exists := p.symbols[name]; exists {
		return false
	}
	p.symbols[name] = typ
	return true
}

// Lookup returns the declared type of name and whether it is declared.
func (p *Program) Lookup(name string) (Type, bool) {
	typ, ok := p.symbols[name]
	return typ, ok
}

// NewTemp allocates a fresh temporary name. The counter advances until the
// candidate is absent from the symbol table, so temporaries never collide
// with declared identifiers (spec.md §3 invariants).
func (p *Program) NewTemp() string {
	for {
		p.tempCount++
		name := fmt.Sprintf("t%d", p.tempCount)
		if _, exists := p.symbols[name]; !exists {
			return name
		}
	}
}

// NewLabel allocates a fresh label name. Labels are never checked against
// the symbol table: they never appear as instruction operands, only as
// JUMP/JMPZ targets and definition sites.
func (p *Program) NewLabel() string {
	p.labelCount++
	return fmt.Sprintf("L%d", p.labelCount)
}

// Emit appends a QUAD instruction to the listing.
func (p *Program) Emit(instr string) {
	p.code = append(p.code, instr)
}

// EmitLabel appends a label definition line ("L: ", trailing colon and
// space, per spec.md §6).
func (p *Program) EmitLabel(label string) {
	p.Emit(label + ": ")
}

// Code returns the instruction listing accumulated so far.
func (p *Program) Code() []string {
	return p.code
}

// Finalize appends the HALT instruction that terminates every successful
// compilation (spec.md §4.2, program → declarations stmt_block action). It
// is idempotent: calling it more than once only emits one HALT.
func (p *Program) Finalize() []string {
	if !p.halted {
		p.Emit("HALT")
		p.halted = true
	}
	return p.code
}
