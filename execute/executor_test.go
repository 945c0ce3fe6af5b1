package execute_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hermannm.dev/datapanel/db"
	"hermannm.dev/datapanel/execute"
)

// mockDB implements db.PanelDB, returning a scripted result and counting queries.
type mockDB struct {
	result     db.QueryResult
	err        error
	queryCount int
}

func (mock *mockDB) QueryRows(ctx context.Context, query string) (db.QueryResult, error) {
	mock.queryCount++
	return mock.result, mock.err
}

func (mock *mockDB) MostRecentYear(ctx context.Context) (string, error) {
	return "2024", nil
}

func newExecutor(mock *mockDB) *execute.Executor {
	return execute.NewExecutor(mock, execute.NewResultCache())
}

func resultWithColumns(columns ...db.Column) db.QueryResult {
	return db.QueryResult{Columns: columns}
}

func TestExecuteRejectsBlankQuery(t *testing.T) {
	mock := &mockDB{}
	result, diagnostics := newExecutor(mock).Execute(
		context.Background(), "   ", db.VisualizationNone,
	)

	assert.True(t, result.IsEmpty())
	require.Len(t, diagnostics, 1)
	assert.Equal(t, execute.DiagnosticError, diagnostics[0].Level)
	assert.Equal(t, 0, mock.queryCount)
}

func TestExecuteRejectsDestructiveQuery(t *testing.T) {
	mock := &mockDB{}
	result, diagnostics := newExecutor(mock).Execute(
		context.Background(), "DELETE FROM purchases", db.VisualizationNone,
	)

	assert.True(t, result.IsEmpty())
	require.Len(t, diagnostics, 1)
	assert.Equal(t, execute.DiagnosticError, diagnostics[0].Level)
	assert.Contains(t, diagnostics[0].Message, "DELETE")
	assert.Equal(t, "DELETE FROM purchases", diagnostics[0].Query)
	assert.Equal(t, 0, mock.queryCount, "destructive query must never reach the store")
}

func TestExecuteReturnsDatabaseErrorAsDiagnostic(t *testing.T) {
	mock := &mockDB{err: errors.New("no such table: purchases")}
	query := "SELECT * FROM purchases"

	result, diagnostics := newExecutor(mock).Execute(
		context.Background(), query, db.VisualizationNone,
	)

	assert.True(t, result.IsEmpty())
	require.Len(t, diagnostics, 1)
	assert.Equal(t, execute.DiagnosticError, diagnostics[0].Level)
	assert.Contains(t, diagnostics[0].Message, "no such table")
	assert.Equal(t, query, diagnostics[0].Query)
}

func TestExecuteCachesByExactQueryText(t *testing.T) {
	mock := &mockDB{
		result: resultWithColumns(
			db.Column{Name: "category", Values: []any{"A", "B"}},
			db.Column{Name: "total", Values: []any{int64(1), int64(2)}},
		),
	}
	executor := newExecutor(mock)
	query := "SELECT category, COUNT(*) AS total FROM purchases GROUP BY category"

	first, diagnostics := executor.Execute(context.Background(), query, db.VisualizationNone)
	assert.Empty(t, diagnostics)
	assert.Equal(t, 1, mock.queryCount)

	// The store changing between calls must not affect the cached result.
	mock.result = resultWithColumns(
		db.Column{Name: "category", Values: []any{"C"}},
		db.Column{Name: "total", Values: []any{int64(99)}},
	)

	second, diagnostics := executor.Execute(context.Background(), query, db.VisualizationNone)
	assert.Equal(t, 1, mock.queryCount, "cache hit must not query the store again")
	assert.Equal(t, first, second)
	require.Len(t, diagnostics, 1)
	assert.Equal(t, execute.DiagnosticInfo, diagnostics[0].Level)

	// A different query text misses the cache.
	_, _ = executor.Execute(context.Background(), query+" ", db.VisualizationNone)
	assert.Equal(t, 2, mock.queryCount)
}

func TestExecuteDoesNotCacheEmptyResults(t *testing.T) {
	mock := &mockDB{result: db.NewQueryResult([]string{"category", "total"})}
	executor := newExecutor(mock)
	query := "SELECT category, COUNT(*) AS total FROM purchases GROUP BY category"

	_, _ = executor.Execute(context.Background(), query, db.VisualizationNone)
	_, _ = executor.Execute(context.Background(), query, db.VisualizationNone)
	assert.Equal(t, 2, mock.queryCount)
}

func TestExecuteShapesPieData(t *testing.T) {
	mock := &mockDB{
		result: resultWithColumns(
			db.Column{Name: "product", Values: []any{"A", "B", "C", "D"}},
			db.Column{Name: "sales", Values: []any{int64(10), "2k", "-3", "abc"}},
		),
	}

	result, diagnostics := newExecutor(mock).Execute(
		context.Background(), "SELECT product, sales FROM purchases", db.VisualizationPie,
	)

	assert.Empty(t, diagnostics)
	require.Len(t, result.Columns, 2)
	assert.Equal(t, db.CategoryColumn, result.Columns[0].Name)
	assert.Equal(t, db.ValueColumn, result.Columns[1].Name)

	// Non-positive and unparseable values are dropped, the rest sorted descending.
	assert.Equal(t, []any{"B", "A"}, result.Columns[0].Values)
	assert.Equal(t, []any{2000.0, 10.0}, result.Columns[1].Values)
}

func TestExecuteWarnsWhenShapingDropsAllRows(t *testing.T) {
	mock := &mockDB{
		result: resultWithColumns(
			db.Column{Name: "product", Values: []any{"A", "B"}},
			db.Column{Name: "sales", Values: []any{"-3", "abc"}},
		),
	}

	result, diagnostics := newExecutor(mock).Execute(
		context.Background(), "SELECT product, sales FROM purchases", db.VisualizationPie,
	)

	assert.True(t, result.IsEmpty())
	require.Len(t, diagnostics, 1)
	assert.Equal(t, execute.DiagnosticWarning, diagnostics[0].Level)
}

func TestExecuteDropsAllRowsWhenValueColumnIsNotNumeric(t *testing.T) {
	mock := &mockDB{
		result: resultWithColumns(
			db.Column{Name: "channel", Values: []any{"email", "phone"}},
			db.Column{Name: "status", Values: []any{"open", "closed"}},
		),
	}

	result, diagnostics := newExecutor(mock).Execute(
		context.Background(), "SELECT channel, status FROM support", db.VisualizationBar,
	)

	// Rows where value coercion failed are dropped unconditionally, so an entirely
	// non-numeric value column leaves nothing to chart.
	assert.True(t, result.IsEmpty())
	require.Len(t, diagnostics, 1)
	assert.Equal(t, execute.DiagnosticWarning, diagnostics[0].Level)
}

func TestExecutePromotesQuantityColumns(t *testing.T) {
	mock := &mockDB{
		result: resultWithColumns(
			db.Column{Name: "Categoria", Values: []any{"A", "B", "C"}},
			db.Column{Name: "Total_Vendas", Values: []any{"1.234,56", "1000", "n/a"}},
		),
	}

	result, diagnostics := newExecutor(mock).Execute(
		context.Background(), "SELECT Categoria, Total_Vendas FROM purchases", db.VisualizationNone,
	)

	assert.Empty(t, diagnostics)
	require.Len(t, result.Columns, 2)

	// Quantity column coerced leniently, with the uncoercible cell nulled out instead of
	// dropping the row; the category column is untouched.
	assert.Equal(t, []any{"A", "B", "C"}, result.Columns[0].Values)
	assert.Equal(t, []any{1234.56, 1000.0, nil}, result.Columns[1].Values)
}

func TestExecuteLeavesNonNumericQuantityColumnAlone(t *testing.T) {
	mock := &mockDB{
		result: resultWithColumns(
			db.Column{Name: "total_label", Values: []any{"low", "high"}},
		),
	}

	result, diagnostics := newExecutor(mock).Execute(
		context.Background(), "SELECT total_label FROM purchases", db.VisualizationNone,
	)

	assert.Empty(t, diagnostics)
	assert.Equal(t, []any{"low", "high"}, result.Columns[0].Values)
}
