package diagnostic

import (
	"context"
	"log/slog"
)

// Diagnostic codes.
const (
	CodeKeywordName        = "keyword-name"
	CodeInvalidSignature   = "invalid-signature"
	CodeUnclassifiedMember = "unclassified-member"
	CodePlainRoutine       = "plain-routine"
	CodeRunFailed          = "run-failed"
)

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Member is the dotted path of the member this relates to (if any).
	Member string
	// Snippet is the offending documentation text (if any).
	Snippet string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// Level maps the severity to the log level Report uses. Infos are debug
// output.
func (s DiagnosticSeverity) Level() slog.Level {
	switch s {
	case DiagnosticError:
		return slog.LevelError
	case DiagnosticWarning:
		return slog.LevelWarn
	default:
		return slog.LevelDebug
	}
}

// AddError records a failure that ended the run.
func (d *Diagnostics) AddError(code, message, member, snippet string) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, member, snippet))
}

// AddWarning records a defect that was worked around.
func (d *Diagnostics) AddWarning(code, message, member, snippet string) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, member, snippet))
}

// AddInfo records a note that needs no action.
func (d *Diagnostics) AddInfo(code, message, member, snippet string) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, member, snippet))
}

func newDiagnostic(severity DiagnosticSeverity, code, message, member, snippet string) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		Member:   member,
		Snippet:  snippet,
	}
}

// Count returns the number of diagnostics with the given code.
func (d *Diagnostics) Count(code string) int {
	n := 0

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				n++
			}
		}
	}

	return n
}

// Report logs every diagnostic once: errors first, then warnings, then
// infos, each group in recording order.
func (d *Diagnostics) Report(logger *slog.Logger) {
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			attrs := []any{slog.String("code", diag.Code)}
			if diag.Member != "" {
				attrs = append(attrs, slog.String("member", diag.Member))
			}

			if diag.Snippet != "" {
				attrs = append(attrs, slog.String("text", diag.Snippet))
			}

			logger.Log(context.Background(), diag.Severity.Level(), diag.Message, attrs...)
		}
	}
}
