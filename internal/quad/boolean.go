package quad

// Relational implements boolfactor → expression RELOP expression
// (spec.md §4.2). Relops with their own opcode (==, !=, <, >) emit one typed
// comparison. The two composed relops (<=, >=) have no single opcode:
// they are decomposed into their two single-character halves — "<=" into
// "<" and "=", ">=" into ">" and "=" — each compared separately and the
// 0/1 results added, so the boolean is non-zero iff either half held. This
// is also where the opcode map's otherwise-unused "=" entry (EQL) is
// actually read, resolving spec.md §9's open question about it.
//
// The returned Operand is always Integer: the comparison result is a
// 0/1 value regardless of the type used to compare the operands.
func (p *Program) Relational(op string, lhs, rhs Operand) Operand {
	typ := Unify(lhs.Type, rhs.Type)
	l := p.Convert(lhs, typ)
	r := p.Convert(rhs, typ)
	t := p.NewTemp()

	if op != "<=" && op != ">=" {
		p.emitTyped(typ, opcodeMap[op], t, l.Name, r.Name)
		return Operand{Name: t, Type: Integer}
	}

	first, second := op[0:1], op[1:2]
	t2 := p.NewTemp()
	p.emitTyped(typ, opcodeMap[first], t, l.Name, r.Name)
	p.emitTyped(typ, opcodeMap[second], t2, l.Name, r.Name)
	p.emitTyped(typ, "ADD", t, t, t2)
	return Operand{Name: t, Type: Integer}
}

// LogicalAnd implements boolterm → boolterm AND boolfactor: the boolean
// result is 1 iff both 0/1 operands summed to 2.
func (p *Program) LogicalAnd(lhs, rhs Operand) Operand {
	typ := Unify(lhs.Type, rhs.Type)
	l := p.Convert(lhs, typ)
	r := p.Convert(rhs, typ)
	t := p.NewTemp()
	p.emitTyped(typ, "ADD", t, l.Name, r.Name)
	p.emitTyped(typ, "EQL", t, t, twoOperand.Name)
	return Operand{Name: t, Type: typ}
}

// LogicalOr implements boolexpr → boolexpr OR boolterm: the boolean result
// is 1 iff the 0/1 operands summed to more than zero.
func (p *Program) LogicalOr(lhs, rhs Operand) Operand {
	typ := Unify(lhs.Type, rhs.Type)
	l := p.Convert(lhs, typ)
	r := p.Convert(rhs, typ)
	t := p.NewTemp()
	p.emitTyped(typ, "ADD", t, l.Name, r.Name)
	p.emitTyped(typ, "GRT", t, t, zeroOperand.Name)
	return Operand{Name: t, Type: typ}
}

// LogicalNot implements boolfactor → NOT '(' boolexpr ')' as
// three_address('!=', [expr, ONE]) (spec.md §4.2).
func (p *Program) LogicalNot(operand Operand) Operand {
	return p.ThreeAddress("!=", operand, oneOperand)
}
