// Package csv serializes query results to downloadable CSV, following the Portuguese
// locale convention of a comma decimal separator (the CSV writer quotes such fields, so
// the format stays comma-delimited).
package csv

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"hermannm.dev/datapanel/db"
	"hermannm.dev/wrap"
)

func Export(writer io.Writer, result db.QueryResult) error {
	csvWriter := csv.NewWriter(writer)

	header := make([]string, len(result.Columns))
	for i, column := range result.Columns {
		header[i] = column.Name
	}
	if err := csvWriter.Write(header); err != nil {
		return wrap.Error(err, "failed to write CSV header")
	}

	record := make([]string, len(result.Columns))
	for rowIndex := 0; rowIndex < result.NumRows(); rowIndex++ {
		for i, column := range result.Columns {
			record[i] = formatCell(column.Values[rowIndex])
		}
		if err := csvWriter.Write(record); err != nil {
			return wrap.Errorf(err, "failed to write CSV row %d", rowIndex+1)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func formatCell(value any) string {
	if number, isFloat := value.(float64); isFloat {
		text := strconv.FormatFloat(number, 'f', -1, 64)
		return strings.Replace(text, ".", ",", 1)
	}
	return db.CellText(value)
}
