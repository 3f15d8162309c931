package quad

import "fmt"

// opcodeMap translates a source operator lexeme to its QUAD mnemonic
// (spec.md §4.2 "Opcode map"). Assignments do not use the '=' entry; they
// emit the literal "ASN" suffix directly. The entry is read by Relational
// for the "=" half of the decomposed "<=" and ">=" comparisons.
var opcodeMap = map[string]string{
	"+":  "ADD",
	"-":  "SUB",
	"*":  "MLT",
	"/":  "DIV",
	"==": "EQL",
	"!=": "NQL",
	"<":  "LSS",
	">":  "GRT",
	"=":  "EQL",
}

// Convert promotes operand to target, emitting ITOR or RTOI into a fresh
// temporary if a conversion is actually needed. If operand is already of
// the target type it is returned unchanged and nothing is emitted.
func (p *Program) Convert(operand Operand, target Type) Operand {
	if operand.Type == target {
		return operand
	}
	t := p.NewTemp()
	opcode := "RTOI"
	if target == Real {
		opcode = "ITOR"
	}
	p.Emit(fmt.Sprintf("%s %s %s", opcode, t, operand.Name))
	return Operand{Name: t, Type: target}
}

// ThreeAddress implements the three_address(op, [lhs, rhs]) helper from
// spec.md §4.2: unify the operand types, promote whichever operand isn't
// of the unified type, allocate a fresh temporary, and emit the typed
// arithmetic instruction.
func (p *Program) ThreeAddress(op string, lhs, rhs Operand) Operand {
	typ := Unify(lhs.Type, rhs.Type)
	l := p.Convert(lhs, typ)
	r := p.Convert(rhs, typ)
	t := p.NewTemp()
	p.Emit(fmt.Sprintf("%s%s %s %s %s", typ.Prefix(), opcodeMap[op], t, l.Name, r.Name))
	return Operand{Name: t, Type: typ}
}

// emitTyped is a low-level helper for emitting "{T}{OP} dst a b"-shaped
// instructions without allocating anything; callers already hold dst.
func (p *Program) emitTyped(typ Type, mnemonic string, operands ...string) {
	p.Emit(fmt.Sprintf("%s%s %s", typ.Prefix(), mnemonic, joinOperands(operands)))
}

func joinOperands(operands []string) string {
	s := ""
	for i, o := range operands {
		if i > 0 {
			s += " "
		}
		s += o
	}
	return s
}
