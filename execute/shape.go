package execute

import (
	"sort"

	"hermannm.dev/datapanel/db"
	"hermannm.dev/datapanel/numbers"
)

// preparePieData shapes an exactly-2-column result for a pie chart: columns are renamed
// to their category/value roles, values are parsed with k-suffix support, rows with
// non-positive or unparseable values are dropped, and the remainder is sorted
// descending by value.
func preparePieData(result db.QueryResult) db.QueryResult {
	categories := result.Columns[0].Values
	values := result.Columns[1].Values

	type pieRow struct {
		category any
		value    float64
	}

	rows := make([]pieRow, 0, len(values))
	for i, cell := range values {
		value, ok := numbers.ParseSuffixed(db.CellText(cell))
		if !ok || value <= 0 {
			continue
		}
		rows = append(rows, pieRow{category: categories[i], value: value})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].value > rows[j].value })

	shaped := db.NewQueryResult([]string{db.CategoryColumn, db.ValueColumn})
	for _, row := range rows {
		shaped.Columns[0].Values = append(shaped.Columns[0].Values, row.category)
		shaped.Columns[1].Values = append(shaped.Columns[1].Values, row.value)
	}
	return shaped
}

// prepareVisualizationData shapes a result for any other visualization kind: canonical
// renaming when there are exactly two columns, lenient numeric coercion of the value
// column, and dropping of rows where coercion failed. An entirely non-numeric value
// column therefore yields an empty result.
func prepareVisualizationData(result db.QueryResult) db.QueryResult {
	if len(result.Columns) < 2 {
		return result
	}

	if len(result.Columns) == 2 {
		result.Columns[0].Name = db.CategoryColumn
		result.Columns[1].Name = db.ValueColumn
	}

	valueIndex := result.ColumnIndex(db.ValueColumn)
	if valueIndex < 0 {
		return result
	}

	values := result.Columns[valueIndex].Values
	coerced := make([]any, len(values))
	keep := make([]bool, len(values))
	for i, cell := range values {
		if value, ok := numbers.CoerceLenient(cell); ok {
			coerced[i] = value
			keep[i] = true
		}
	}

	result.Columns[valueIndex].Values = coerced
	return filterRows(result, keep)
}

func filterRows(result db.QueryResult, keep []bool) db.QueryResult {
	filtered := emptyResultWithSameColumns(result)
	for i, column := range result.Columns {
		for rowIndex, cell := range column.Values {
			if keep[rowIndex] {
				filtered.Columns[i].Values = append(filtered.Columns[i].Values, cell)
			}
		}
	}
	return filtered
}

func emptyResultWithSameColumns(result db.QueryResult) db.QueryResult {
	names := make([]string, len(result.Columns))
	for i, column := range result.Columns {
		names[i] = column.Name
	}
	return db.NewQueryResult(names)
}

// promoteNumericColumns applies best-effort numeric coercion to every column whose name
// suggests a quantity. Direct conversion is tried first for the whole column; if any
// cell resists, a lenient per-cell pass nulls out the failures instead of dropping
// rows. A column with no coercible cell at all is left as-is.
func promoteNumericColumns(result db.QueryResult) db.QueryResult {
	for i, column := range result.Columns {
		if !numbers.IsQuantityColumn(column.Name) {
			continue
		}
		if promoted, ok := promoteColumn(column.Values); ok {
			result.Columns[i].Values = promoted
		}
	}
	return result
}

func promoteColumn(values []any) ([]any, bool) {
	direct := make([]any, len(values))
	allDirect := true
	for i, cell := range values {
		number, ok := numbers.Coerce(cell)
		if !ok {
			allDirect = false
			break
		}
		direct[i] = number
	}
	if allDirect {
		return direct, true
	}

	lenient := make([]any, len(values))
	anyCoerced := false
	for i, cell := range values {
		if number, ok := numbers.CoerceLenient(cell); ok {
			lenient[i] = number
			anyCoerced = true
		}
	}
	if !anyCoerced {
		return nil, false
	}
	return lenient, true
}
