package execute

import "hermannm.dev/enumnames"

// Diagnostic is a user-facing notice emitted by a pipeline stage: an execution error, a
// degraded shaping pass, or a cache-hit notice. The Executor returns diagnostics
// alongside the result instead of failing, so a request always yields a (possibly
// empty) result.
type Diagnostic struct {
	Level   DiagnosticLevel `json:"level"`
	Message string          `json:"message"`
	// Query is attached to store-level errors for debuggability.
	Query string `json:"query,omitempty"`
}

type DiagnosticLevel uint8

const (
	DiagnosticError DiagnosticLevel = iota + 1
	DiagnosticWarning
	DiagnosticInfo
)

var diagnosticLevelNames = enumnames.NewMap(map[DiagnosticLevel]string{
	DiagnosticError:   "ERROR",
	DiagnosticWarning: "WARNING",
	DiagnosticInfo:    "INFO",
})

func (level DiagnosticLevel) IsValid() bool {
	return diagnosticLevelNames.ContainsEnumValue(level)
}

func (level DiagnosticLevel) String() string {
	return diagnosticLevelNames.GetNameOrFallback(level, "INVALID_DIAGNOSTIC_LEVEL")
}

func (level DiagnosticLevel) MarshalJSON() ([]byte, error) {
	return diagnosticLevelNames.MarshalToNameJSON(level)
}

func (level *DiagnosticLevel) UnmarshalJSON(bytes []byte) error {
	return diagnosticLevelNames.UnmarshalFromNameJSON(bytes, level)
}

func errorDiagnostic(message string, query string) Diagnostic {
	return Diagnostic{Level: DiagnosticError, Message: message, Query: query}
}

func warningDiagnostic(message string) Diagnostic {
	return Diagnostic{Level: DiagnosticWarning, Message: message}
}

func infoDiagnostic(message string) Diagnostic {
	return Diagnostic{Level: DiagnosticInfo, Message: message}
}
