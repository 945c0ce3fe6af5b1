package db

import "context"

// PanelDB is the store interface consumed by the query pipeline.
// Implemented by sqlite.PanelDB.
type PanelDB interface {
	// QueryRows runs the given SQL query and returns its full result set.
	QueryRows(ctx context.Context, query string) (QueryResult, error)

	// MostRecentYear returns the latest year (as a 4-digit string) found in the
	// purchase dates of the store, or an error if the store holds no purchase dates.
	MostRecentYear(ctx context.Context) (string, error)
}
