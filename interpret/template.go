package interpret

// BuildTemplateQuery deterministically assembles a SQL query from the detected
// template parameters. Month and year filters are only applied when set; the base
// filter keeps the conjunction valid on its own ("1=1" when the domain has no filter).
func BuildTemplateQuery(params TemplateParams) string {
	if params.AveragePerCustomer {
		return buildAverageQuery(params)
	}
	return buildFlatQuery(params)
}

// Flat mode: count of rows per group.
func buildFlatQuery(params TemplateParams) string {
	var query QueryBuilder
	query.WriteString("SELECT ")
	query.WriteString(params.GroupColumn)
	query.WriteString(", COUNT(*) AS total FROM ")
	query.WriteString(params.Table)
	query.WriteString(" AS t WHERE ")
	query.WriteString(params.BaseFilter)
	if params.Month != "" {
		query.WriteDateFilter("%m", "t."+params.DateColumn, params.Month)
	}
	if params.Year != "" {
		query.WriteDateFilter("%Y", "t."+params.DateColumn, params.Year)
	}
	query.WriteString(" GROUP BY ")
	query.WriteString(params.GroupColumn)
	query.WriteString(";")
	return query.String()
}

// Average mode: per-customer per-group counts in an inner query, averaged and rounded
// to 2 decimals in the outer query, ordered descending by the average.
func buildAverageQuery(params TemplateParams) string {
	var query QueryBuilder
	query.WriteString("SELECT ")
	query.WriteString(params.GroupColumn)
	query.WriteString(", ROUND(AVG(count_per_customer), 2) AS avg_per_customer FROM (")
	query.WriteString("SELECT customer_id, ")
	query.WriteString(params.GroupColumn)
	query.WriteString(", COUNT(*) AS count_per_customer FROM ")
	query.WriteString(params.Table)
	query.WriteString(" WHERE ")
	query.WriteString(params.BaseFilter)
	if params.Month != "" {
		query.WriteDateFilter("%m", params.DateColumn, params.Month)
	}
	if params.Year != "" {
		query.WriteDateFilter("%Y", params.DateColumn, params.Year)
	}
	query.WriteString(" GROUP BY customer_id, ")
	query.WriteString(params.GroupColumn)
	query.WriteString(") AS sub GROUP BY ")
	query.WriteString(params.GroupColumn)
	query.WriteString(" ORDER BY avg_per_customer DESC;")
	return query.String()
}
