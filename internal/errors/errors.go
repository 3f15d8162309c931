// Package errors formats CPL compiler diagnostics with source context and
// severity tagging, in the shape the driver writes to its diagnostic stream.
package errors

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic. ERROR and WARNING come from the scanner
// or parser; CRITICAL is driver-level and means no output file is written,
// either because the core never ran or because it recorded errors.
type Severity string

const (
	SeverityError    Severity = "ERROR"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// CompilerError is a single diagnostic: a severity, a message, and an
// optional source line. Line 0 means "no line available" (spec.md §6), in
// which case the "at line N" suffix is omitted.
type CompilerError struct {
	Message  string
	Source   string
	File     string
	Severity Severity
	Line     int
}

// New creates a diagnostic at the given line. Pass line 0 for CRITICAL
// diagnostics, which have no source position.
func New(severity Severity, message string, line int, source, file string) *CompilerError {
	return &CompilerError{
		Severity: severity,
		Message:  message,
		Line:     line,
		Source:   source,
		File:     file,
	}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format()
}

// Format renders the diagnostic exactly as the driver writes it to the
// diagnostic stream: "<SEVERITY>: <message> at line <n>", with the "at
// line" suffix dropped when no line is available.
func (e *CompilerError) Format() string {
	if e.Line <= 0 {
		return fmt.Sprintf("%s: %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("%s: %s at line %d", e.Severity, e.Message, e.Line)
}

// FormatWithContext additionally renders the offending source line and a
// caret under its first column. It is not part of the diagnostic stream
// format required by spec.md §6, and the CLI does not call it.
func (e *CompilerError) FormatWithContext() string {
	var sb strings.Builder
	sb.WriteString(e.Format())

	line := e.sourceLine(e.Line)
	if line == "" {
		return sb.String()
	}

	sb.WriteString("\n")
	lineNumStr := fmt.Sprintf("%4d | ", e.Line)
	sb.WriteString(lineNumStr)
	sb.WriteString(line)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", len(lineNumStr)))
	sb.WriteString("^")
	return sb.String()
}

func (e *CompilerError) sourceLine(n int) string {
	if e.Source == "" || n < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// Diagnostics is an append-only sink shared by the scanner, parser, and
// driver. It tracks whether any ERROR or CRITICAL diagnostic was recorded,
// since that flag (spec.md §3 "Error flag") decides whether the driver
// writes an output file. WARNINGs never set it (spec.md §7).
type Diagnostics struct {
	items    []*CompilerError
	hasError bool
}

// Report records a diagnostic. ERROR and CRITICAL severities set the error
// flag; WARNING does not.
func (d *Diagnostics) Report(severity Severity, message string, line int, source, file string) {
	d.items = append(d.items, New(severity, message, line, source, file))
	if severity == SeverityError || severity == SeverityCritical {
		d.hasError = true
	}
}

// HasError reports whether any ERROR or CRITICAL diagnostic was recorded.
func (d *Diagnostics) HasError() bool {
	return d.hasError
}

// Items returns all recorded diagnostics in report order.
func (d *Diagnostics) Items() []*CompilerError {
	return d.items
}

// FormatAll renders every diagnostic, one per line, in the wire format
// spec.md §6 describes for the diagnostic stream.
func FormatAll(items []*CompilerError) string {
	var sb strings.Builder
	for _, it := range items {
		sb.WriteString(it.Format())
		sb.WriteString("\n")
	}
	return sb.String()
}
