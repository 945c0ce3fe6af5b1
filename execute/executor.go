// Package execute runs validated queries against the store, guarded by a safety gate
// and a result cache, and normalizes the returned tabular data for presentation.
package execute

import (
	"context"
	"fmt"
	"strings"

	"github.com/jellydator/ttlcache/v3"
	"hermannm.dev/datapanel/db"
	"hermannm.dev/devlog/log"
)

type Executor struct {
	db    db.PanelDB
	cache *ttlcache.Cache[string, db.QueryResult]
}

func NewExecutor(panelDB db.PanelDB, cache *ttlcache.Cache[string, db.QueryResult]) *Executor {
	return &Executor{db: panelDB, cache: cache}
}

// Execute runs the given query through the full pipeline: input validation, safety
// gate, cache lookup, store execution, visualization shaping, numeric promotion and
// cache store. Each step is a hard gate on the next. Failures never propagate as
// errors; they degrade to an empty result plus a diagnostic.
func (executor *Executor) Execute(
	ctx context.Context,
	query string,
	visualization db.VisualizationKind,
) (db.QueryResult, []Diagnostic) {
	var diagnostics []Diagnostic

	if strings.TrimSpace(query) == "" {
		return db.QueryResult{}, append(
			diagnostics, errorDiagnostic("invalid query: must not be blank", ""),
		)
	}

	if verb, safe := CheckSafety(query); !safe {
		return db.QueryResult{}, append(diagnostics, errorDiagnostic(
			fmt.Sprintf(
				"potentially destructive query detected: '%s' without WHERE clause, execution aborted",
				verb,
			),
			query,
		))
	}

	key := cacheKey(query)
	if entry := executor.cache.Get(key); entry != nil {
		// A hit short-circuits all later steps: the cached result was already fully
		// shaped and coerced when it was stored.
		return entry.Value(), append(diagnostics, infoDiagnostic("result returned from cache"))
	}

	result, err := executor.db.QueryRows(ctx, query)
	if err != nil {
		log.ErrorCause(err, "query execution failed")
		return db.QueryResult{}, append(
			diagnostics, errorDiagnostic("database error: "+err.Error(), query),
		)
	}

	// Empty results are returned as-is, and deliberately not cached: only fully
	// processed results go in the cache.
	if result.IsEmpty() {
		return result, diagnostics
	}

	switch {
	case visualization == db.VisualizationPie && len(result.Columns) == 2:
		result = preparePieData(result)
	case visualization != db.VisualizationNone:
		result = prepareVisualizationData(result)
	}
	if result.IsEmpty() {
		return result, append(diagnostics, warningDiagnostic(
			"no rows were suitable for the requested visualization",
		))
	}

	result = promoteNumericColumns(result)

	executor.cache.Set(key, result, ttlcache.NoTTL)
	return result, diagnostics
}
