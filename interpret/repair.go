package interpret

import (
	"regexp"
	"strings"

	"hermannm.dev/datapanel/db"
)

var (
	sqlCodeFencePattern = regexp.MustCompile("(?s)```sql\\s*(.*?)```")
	anyCodeFencePattern = regexp.MustCompile("(?s)```\\s*(.*?)```")
)

// StripCodeFences unwraps a Markdown code fence from generated text, preferring an
// explicit sql-tagged fence over a plain one. Text without fences is returned trimmed.
func StripCodeFences(text string) string {
	if match := sqlCodeFencePattern.FindStringSubmatch(text); match != nil {
		return strings.TrimSpace(match[1])
	}
	if match := anyCodeFencePattern.FindStringSubmatch(text); match != nil {
		return strings.TrimSpace(match[1])
	}
	return strings.TrimSpace(text)
}

var (
	bareSupportAliasPattern  = regexp.MustCompile(`(?i)\bFROM\s+s\b`)
	bareCustomerAliasPattern = regexp.MustCompile(`(?i)\bFROM\s+c\b`)
	customerChannelPattern   = regexp.MustCompile(`(?i)\bc\.channel\b`)
)

const supportAliasClause = "FROM " + db.TableSupport + " AS s"
const customerAliasClause = "FROM " + db.TableCustomers + " AS c"

// RepairKnownAliases rewrites the unaliased single-letter table shorthands the
// generative backend is known to produce (bare "s" for the support table, bare "c" for
// the customers table) into explicit aliased FROM clauses. When the support alias is
// introduced, stray references to the customer alias's channel column are redirected to
// the support alias. Best-effort string substitution covering only these two aliases,
// not a SQL parser.
func RepairKnownAliases(query string) string {
	query = bareSupportAliasPattern.ReplaceAllString(query, supportAliasClause)
	query = bareCustomerAliasPattern.ReplaceAllString(query, customerAliasClause)

	if strings.Contains(query, supportAliasClause) {
		query = customerChannelPattern.ReplaceAllString(query, "s."+db.ColumnChannel)
	}

	return query
}
