// Package present maps a processed query result plus a visualization hint to its
// display form: a notice for empty results, a single labeled metric for 1x1 results,
// and a table (optionally with a chart) for everything else.
package present

import (
	"strings"

	"hermannm.dev/datapanel/db"
	"hermannm.dev/datapanel/numbers"
	"hermannm.dev/enumnames"
)

type Rendering struct {
	Kind RenderingKind `json:"kind"`
	// Notice text, for KindNotice.
	Message string `json:"message,omitempty"`
	// Metric label and value, for KindMetric.
	Label string `json:"label,omitempty"`
	Value string `json:"value,omitempty"`
	// Rendered table, for KindTable.
	Table string `json:"table,omitempty"`
	// HTML chart document, set when a chart kind was requested and the result has the
	// expected category/value shape.
	Chart string `json:"chart,omitempty"`
}

type RenderingKind uint8

const (
	KindNotice RenderingKind = iota + 1
	KindMetric
	KindTable
)

var renderingKindNames = enumnames.NewMap(map[RenderingKind]string{
	KindNotice: "NOTICE",
	KindMetric: "METRIC",
	KindTable:  "TABLE",
})

func (kind RenderingKind) IsValid() bool {
	return renderingKindNames.ContainsEnumValue(kind)
}

func (kind RenderingKind) String() string {
	return renderingKindNames.GetNameOrFallback(kind, "INVALID_RENDERING_KIND")
}

func (kind RenderingKind) MarshalJSON() ([]byte, error) {
	return renderingKindNames.MarshalToNameJSON(kind)
}

func (kind *RenderingKind) UnmarshalJSON(bytes []byte) error {
	return renderingKindNames.UnmarshalFromNameJSON(bytes, kind)
}

func Format(result db.QueryResult, visualization db.VisualizationKind) Rendering {
	if result.IsEmpty() {
		return Rendering{Kind: KindNotice, Message: "No results found for this query"}
	}

	if result.NumRows() == 1 && len(result.Columns) == 1 {
		return Rendering{
			Kind:  KindMetric,
			Label: "Result",
			Value: formatMetricValue(result.Columns[0].Values[0]),
		}
	}

	result = relabelColumns(result)

	rendering := Rendering{Kind: KindTable, Table: renderTable(result)}

	// Pie is the fully implemented chart kind; bar and line are accepted hints that
	// currently fall back to the plain table.
	if visualization == db.VisualizationPie {
		if chart, ok := renderPieChart(result); ok {
			rendering.Chart = chart
		}
	}

	return rendering
}

// Cosmetic relabeling of known domain columns to human-readable headers.
var columnLabels = map[string]string{
	"total_complaints": "Total Complaints",
}

// relabelColumns copies the column slice before renaming: the result may be shared with
// the executor's cache, and rendering must not mutate it.
func relabelColumns(result db.QueryResult) db.QueryResult {
	relabeled := db.QueryResult{Columns: make([]db.Column, len(result.Columns))}
	copy(relabeled.Columns, result.Columns)

	for i, column := range relabeled.Columns {
		if label, known := columnLabels[column.Name]; known {
			relabeled.Columns[i].Name = label
		}
	}
	return relabeled
}

// formatMetricValue renders a single cell as a metric, grouping thousands of numeric
// values. Non-numeric cells pass through as text.
func formatMetricValue(value any) string {
	number, ok := numbers.Coerce(value)
	if !ok {
		return db.CellText(value)
	}

	text := db.CellText(number)
	whole, fraction, hasFraction := strings.Cut(text, ".")
	whole = groupThousands(whole)
	if hasFraction {
		return whole + "." + fraction
	}
	return whole
}

func groupThousands(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var grouped strings.Builder
	for i, digit := range digits {
		remaining := len(digits) - i
		if i > 0 && remaining%3 == 0 {
			grouped.WriteRune(',')
		}
		grouped.WriteRune(digit)
	}
	return sign + grouped.String()
}
