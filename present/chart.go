package present

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"hermannm.dev/datapanel/db"
	"hermannm.dev/datapanel/numbers"
	"hermannm.dev/devlog/log"
)

// renderPieChart renders a donut-style pie chart for a result shaped into the
// 2-column category/value structure. Rows arrive already sorted descending by value
// from the shaping pass.
func renderPieChart(result db.QueryResult) (chart string, ok bool) {
	if len(result.Columns) != 2 ||
		result.Columns[0].Name != db.CategoryColumn || result.Columns[1].Name != db.ValueColumn {
		return "", false
	}

	categories := result.Columns[0].Values
	values := result.Columns[1].Values

	items := make([]opts.PieData, 0, len(values))
	for i, cell := range values {
		value, isNumeric := numbers.Coerce(cell)
		if !isNumeric {
			continue
		}
		items = append(items, opts.PieData{Name: db.CellText(categories[i]), Value: value})
	}
	if len(items) == 0 {
		return "", false
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s by %s", result.Columns[1].Name, result.Columns[0].Name),
		}),
	)
	pie.AddSeries("value", items).SetSeriesOptions(
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"40%", "75%"}}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
	)

	var buffer bytes.Buffer
	if err := pie.Render(&buffer); err != nil {
		log.Warnf("failed to render pie chart: %v", err)
		return "", false
	}

	return buffer.String(), true
}
