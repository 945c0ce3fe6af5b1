package db

import (
	"fmt"
	"strconv"
)

// QueryResult is an ordered sequence of named, equal-length columns, as returned by a
// query against the store. It may be empty (zero rows, zero or more columns). Column
// names are expected to be unique within a result.
type QueryResult struct {
	Columns []Column `json:"columns"`
}

type Column struct {
	Name string `json:"name"`
	// Cell values are string, int64, float64 or nil, matching what the store driver
	// returns (plus float64/nil produced by numeric coercion).
	Values []any `json:"values"`
}

// Canonical column names given to 2-column results shaped for charting.
const (
	CategoryColumn = "category"
	ValueColumn    = "value"
)

func NewQueryResult(columnNames []string) QueryResult {
	columns := make([]Column, len(columnNames))
	for i, name := range columnNames {
		columns[i] = Column{Name: name}
	}
	return QueryResult{Columns: columns}
}

func (result QueryResult) NumRows() int {
	if len(result.Columns) == 0 {
		return 0
	}
	return len(result.Columns[0].Values)
}

func (result QueryResult) IsEmpty() bool {
	return result.NumRows() == 0
}

func (result QueryResult) ColumnIndex(name string) int {
	for i, column := range result.Columns {
		if column.Name == name {
			return i
		}
	}
	return -1
}

// CellText formats a single cell value as text, with nil becoming the empty string.
func CellText(value any) string {
	switch value := value.(type) {
	case nil:
		return ""
	case string:
		return value
	case []byte:
		return string(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}
