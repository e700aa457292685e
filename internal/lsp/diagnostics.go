package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"orn/grammar"
	"orn/internal/errors"
)

// ConvertParseError transforms a grammar parse failure into an LSP
// diagnostic for IDE display.
func ConvertParseError(parseErr *grammar.ParseError) []protocol.Diagnostic {
	if parseErr == nil {
		return nil
	}

	return []protocol.Diagnostic{{
		Range:    rangeAt(parseErr.Position, 1),
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("orn-grammar"),
		Code:     &protocol.IntegerOrString{Value: errors.ErrorMalformedGrammar},
		Message:  parseErr.Message,
	}}
}

// ConvertGrammarErrors transforms compiler defects into LSP diagnostics.
// The G-code travels in the diagnostic code slot so editors can link it.
func ConvertGrammarErrors(errs []errors.GrammarError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, e := range errs {
		diagnostic := protocol.Diagnostic{
			Range:    rangeAt(e.Position, e.Length),
			Severity: ptrSeverity(severityFor(e.Level)),
			Source:   ptrString("orn-grammar"),
			Message:  e.Message,
		}
		if e.Code != "" {
			diagnostic.Code = &protocol.IntegerOrString{Value: e.Code}
		}
		if e.HelpText != "" {
			diagnostic.Message += "\nhelp: " + e.HelpText
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

func rangeAt(pos grammar.Position, length int) protocol.Range {
	if length <= 0 {
		length = 1
	}
	line := uint32(0)
	if pos.Line > 0 {
		line = uint32(pos.Line - 1)
	}
	char := uint32(0)
	if pos.Column > 0 {
		char = uint32(pos.Column - 1)
	}
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: char},
		End:   protocol.Position{Line: line, Character: char + uint32(length)},
	}
}

func severityFor(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note, errors.Help:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityError
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
