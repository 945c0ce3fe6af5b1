package present

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"hermannm.dev/datapanel/db"
)

func renderTable(result db.QueryResult) string {
	writer := table.NewWriter()

	header := make(table.Row, len(result.Columns))
	for i, column := range result.Columns {
		header[i] = column.Name
	}
	writer.AppendHeader(header)

	for rowIndex := 0; rowIndex < result.NumRows(); rowIndex++ {
		row := make(table.Row, len(result.Columns))
		for i, column := range result.Columns {
			row[i] = db.CellText(column.Values[rowIndex])
		}
		writer.AppendRow(row)
	}

	writer.SetStyle(table.StyleLight)
	// StyleLight uppercases headers by default, which would hide the cosmetic column
	// labels' casing.
	writer.Style().Format.Header = text.FormatDefault
	return writer.Render()
}
