// Package interpret classifies a natural-language analytics request into either a
// deterministically assembled template query or a generative-backend fallback, always
// producing a runnable SQL query plus an optional visualization hint.
package interpret

import (
	"context"
	"strings"

	"hermannm.dev/datapanel/db"
	"hermannm.dev/devlog/log"
)

// Returned when the generative backend fails or produces nothing usable, so that the
// rest of the pipeline still has a harmless query to run.
const noOpQuery = "SELECT 1"

// Used for year filters when the store's most-recent-year lookup fails.
const fallbackYear = "2025"

// SQLGenerator is the generative backend the interpreter falls back to when no query
// domain is detected. Implemented by ollama.Client.
type SQLGenerator interface {
	GenerateSQL(ctx context.Context, prompt string) (string, error)
}

type Interpreter struct {
	db      db.PanelDB
	backend SQLGenerator
}

func NewInterpreter(panelDB db.PanelDB, backend SQLGenerator) *Interpreter {
	return &Interpreter{db: panelDB, backend: backend}
}

// Interpret converts a natural-language command into a SQL query and a visualization
// hint. It never fails: backend errors and empty generations degrade to a no-op query,
// keeping the already-detected visualization hint.
func (interpreter *Interpreter) Interpret(
	ctx context.Context,
	command string,
) (query string, visualization db.VisualizationKind) {
	lowered := strings.ToLower(command)

	// Visualization and domain detection are orthogonal: a chart can be requested for
	// any domain, including generative-backend fallbacks.
	visualization = DetectVisualization(lowered)

	if params, detected := detectDomain(lowered); detected {
		if month, found := MonthFromCommand(command); found {
			params.Month = month
		}
		params.Year = interpreter.mostRecentYear(ctx)
		return BuildTemplateQuery(params), visualization
	}

	generated, err := interpreter.backend.GenerateSQL(ctx, buildPrompt(command))
	if err != nil {
		log.Warnf("generative backend failed, falling back to no-op query: %v", err)
		return noOpQuery, visualization
	}

	query = RepairKnownAliases(StripCodeFences(generated))
	if strings.TrimSpace(query) == "" {
		return noOpQuery, visualization
	}

	return query, visualization
}

// Chart-request words, combined with a chart kind word, signal a visualization.
var chartRequestWords = []string{"gráfico", "grafico", "chart"}

var chartKindWords = []struct {
	kind  db.VisualizationKind
	words []string
}{
	{db.VisualizationPie, []string{"pizza", "pie"}},
	{db.VisualizationBar, []string{"barra", "bar"}},
	{db.VisualizationLine, []string{"linha", "line"}},
}

func DetectVisualization(lowered string) db.VisualizationKind {
	if !containsAny(lowered, chartRequestWords) {
		return db.VisualizationNone
	}

	for _, chartKind := range chartKindWords {
		if containsAny(lowered, chartKind.words) {
			return chartKind.kind
		}
	}

	return db.VisualizationNone
}

// The year filter always follows the most recent year present in the store, so that
// commands like "sales by category in May" target the latest data.
func (interpreter *Interpreter) mostRecentYear(ctx context.Context) string {
	year, err := interpreter.db.MostRecentYear(ctx)
	if err != nil {
		log.Warnf("most-recent-year lookup failed, using %s: %v", fallbackYear, err)
		return fallbackYear
	}
	return year
}

func buildPrompt(command string) string {
	var prompt strings.Builder
	prompt.WriteString("You are a SQLite expert. Convert the user's request into a single valid SQL query.\n\n")
	prompt.WriteString("AVAILABLE TABLES:\n")
	prompt.WriteString(db.SchemaDescription)
	prompt.WriteString("\n\nRespond with one SQL statement and nothing else.\n\nRequest: ")
	prompt.WriteString(command)
	return prompt.String()
}
