package interpret

import "strings"

type QueryBuilder struct {
	strings.Builder
}

// WriteDateFilter appends a conjunction filtering the given date column on a strftime
// part ("%m" for month, "%Y" for year).
func (builder *QueryBuilder) WriteDateFilter(part string, column string, value string) {
	builder.WriteString(" AND strftime('")
	builder.WriteString(part)
	builder.WriteString("', ")
	builder.WriteString(column)
	builder.WriteString(") = '")
	builder.WriteString(value)
	builder.WriteString("'")
}
