package quad

import "testing"

func TestDeclareRejectsRedeclaration(t *testing.T) {
	p := NewProgram()

	if !p.Declare("x", Integer) {
		t.Fatalf("first declaration of x should succeed")
	}
	if p.Declare("x", Real) {
		t.Fatalf("redeclaration of x should fail")
	}

	typ, ok := p.Lookup("x")
	if !ok || typ != Integer {
		t.Fatalf("redeclaration must leave the existing entry unchanged, got type=%v ok=%v", typ, ok)
	}
}

func TestNewTempAvoidsDeclaredIdentifiers(t *testing.T) {
	p := NewProgram()
	p.Declare("t1", Integer)
	p.Declare("t2", Integer)

	got := p.NewTemp()
	if got != "t3" {
		t.Fatalf("expected NewTemp to skip declared identifiers and return t3, got %s", got)
	}
}

func TestNewTempAndNewLabelAreMonotonic(t *testing.T) {
	p := NewProgram()

	if got := p.NewTemp(); got != "t1" {
		t.Fatalf("first temp = %s, want t1", got)
	}
	if got := p.NewTemp(); got != "t2" {
		t.Fatalf("second temp = %s, want t2", got)
	}
	if got := p.NewLabel(); got != "L1" {
		t.Fatalf("first label = %s, want L1", got)
	}
	if got := p.NewLabel(); got != "L2" {
		t.Fatalf("second label = %s, want L2", got)
	}
}

func TestFinalizeAppendsHaltOnce(t *testing.T) {
	p := NewProgram()
	p.Emit("IASN x 1")

	code := p.Finalize()
	code = p.Finalize()

	if len(code) != 2 || code[0] != "IASN x 1" || code[1] != "HALT" {
		t.Fatalf("Finalize must append HALT exactly once, got %v", code)
	}
}

func TestEmitLabelFormat(t *testing.T) {
	p := NewProgram()
	p.EmitLabel("L1")

	code := p.Code()
	if len(code) != 1 || code[0] != "L1: " {
		t.Fatalf("EmitLabel must emit \"L1: \" (trailing colon and space), got %q", code)
	}
}
