package interpret

import (
	"strings"

	"hermannm.dev/datapanel/db"
)

// TemplateParams holds everything needed to assemble a template query: the detected
// domain (table, date column, base filter, group column), the optional time filters,
// and the aggregation mode. Discarded after SQL assembly.
type TemplateParams struct {
	Table       string
	DateColumn  string
	BaseFilter  string
	GroupColumn string
	Month       string
	Year        string
	// AveragePerCustomer switches from a flat count to an average-per-customer
	// aggregation.
	AveragePerCustomer bool
}

// Keyword sets for domain detection, in both Portuguese and English. Substring matching
// on the lowered command, so "reclamaç" covers "reclamação"/"reclamações".
var (
	supportKeywords  = []string{"reclamaç", "não resolvid", "ticket", "complaint", "unresolved"}
	purchaseKeywords = []string{"venda", "compra", "produto", "sale", "purchase", "product"}
	averageKeywords  = []string{"média", "media", "average", "mean"}
)

// detectDomain classifies a lowered command into one of the known query domains.
// Support vocabulary wins over purchase vocabulary when both match.
func detectDomain(lowered string) (TemplateParams, bool) {
	if containsAny(lowered, supportKeywords) {
		return TemplateParams{
			Table:       db.TableSupport,
			DateColumn:  db.ColumnContactDate,
			BaseFilter:  "resolved = 0",
			GroupColumn: db.ColumnChannel,
		}, true
	}

	if containsAny(lowered, purchaseKeywords) {
		return TemplateParams{
			Table:              db.TablePurchases,
			DateColumn:         db.ColumnPurchaseDate,
			BaseFilter:         "1=1",
			GroupColumn:        db.ColumnCategory,
			AveragePerCustomer: containsAny(lowered, averageKeywords),
		}, true
	}

	return TemplateParams{}, false
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
