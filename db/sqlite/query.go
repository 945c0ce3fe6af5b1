package sqlite

import (
	"context"
	"errors"

	"hermannm.dev/datapanel/db"
	"hermannm.dev/wrap"
)

func (panelDB PanelDB) QueryRows(ctx context.Context, query string) (db.QueryResult, error) {
	rows, err := panelDB.conn.QueryContext(ctx, query)
	if err != nil {
		return db.QueryResult{}, wrap.Error(err, "query failed")
	}
	defer rows.Close()

	columnNames, err := rows.Columns()
	if err != nil {
		return db.QueryResult{}, wrap.Error(err, "failed to read result columns")
	}

	result := db.NewQueryResult(columnNames)

	cells := make([]any, len(columnNames))
	cellPointers := make([]any, len(columnNames))
	for i := range cells {
		cellPointers[i] = &cells[i]
	}

	for rows.Next() {
		if err := rows.Scan(cellPointers...); err != nil {
			return db.QueryResult{}, wrap.Error(err, "failed to scan result row")
		}

		for i, cell := range cells {
			// The driver may return text cells as byte slices.
			if bytes, isBytes := cell.([]byte); isBytes {
				cell = string(bytes)
			}
			result.Columns[i].Values = append(result.Columns[i].Values, cell)
		}
	}
	if err := rows.Err(); err != nil {
		return db.QueryResult{}, wrap.Error(err, "failed to read result rows")
	}

	return result, nil
}

func (panelDB PanelDB) MostRecentYear(ctx context.Context) (string, error) {
	row := panelDB.conn.QueryRowContext(
		ctx,
		"SELECT MAX(strftime('%Y', "+db.ColumnPurchaseDate+")) FROM "+db.TablePurchases,
	)

	var year *string
	if err := row.Scan(&year); err != nil {
		return "", wrap.Error(err, "most-recent-year lookup failed")
	}
	if year == nil {
		return "", errors.New("store holds no purchase dates")
	}

	return *year, nil
}
