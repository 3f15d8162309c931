package errors

import "testing"

func TestFormatOmitsLineWhenUnavailable(t *testing.T) {
	e := New(SeverityCritical, "wrong file type, not creating .qud file", 0, "", "")
	want := "CRITICAL: wrong file type, not creating .qud file"
	if got := e.Format(); got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatIncludesLineWhenAvailable(t *testing.T) {
	e := New(SeverityError, "z not in symbol table", 3, "", "")
	want := "ERROR: z not in symbol table at line 3"
	if got := e.Format(); got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestDiagnosticsHasErrorIgnoresWarnings(t *testing.T) {
	var d Diagnostics
	d.Report(SeverityWarning, "redundant cast to int", 1, "", "")
	if d.HasError() {
		t.Fatalf("a WARNING must not set the error flag")
	}
	d.Report(SeverityError, "x already defined", 2, "", "")
	if !d.HasError() {
		t.Fatalf("an ERROR must set the error flag")
	}
}

func TestDiagnosticsHasErrorSetByCritical(t *testing.T) {
	var d Diagnostics
	d.Report(SeverityCritical, "no file was given", 0, "", "")
	if !d.HasError() {
		t.Fatalf("a CRITICAL must set the error flag")
	}
}

func TestFormatWithContextRendersSourceLineAndCaret(t *testing.T) {
	src := "a: int;\nb: bad;\n"
	e := New(SeverityError, "unrecognized token bad", 2, src, "test.ou")
	out := e.FormatWithContext()
	if out == e.Format() {
		t.Fatalf("FormatWithContext should add source context, got identical output")
	}
}

func TestFormatAllJoinsOnePerLine(t *testing.T) {
	items := []*CompilerError{
		New(SeverityError, "a", 1, "", ""),
		New(SeverityWarning, "b", 2, "", ""),
	}
	want := "ERROR: a at line 1\nWARNING: b at line 2\n"
	if got := FormatAll(items); got != want {
		t.Fatalf("FormatAll() = %q, want %q", got, want)
	}
}
