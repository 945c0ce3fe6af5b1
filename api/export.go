package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"hermannm.dev/datapanel/csv"
)

// Expects:
//   - body: JSON-encoded QueryRequest with the natural-language command
//
// Returns:
//   - the query result as a CSV attachment (comma decimal separator). Re-running the
//     pipeline here is cheap: repeated commands hit the result cache.
func (api DataPanelAPI) ExportCSV(res http.ResponseWriter, req *http.Request) {
	var body QueryRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		sendClientError(res, err, "failed to parse export request body")
		return
	}

	command := strings.TrimSpace(body.Command)
	if command == "" {
		sendClientError(res, nil, "missing 'command' in request body")
		return
	}

	query, visualization := api.interpreter.Interpret(req.Context(), command)
	result, _ := api.executor.Execute(req.Context(), query, visualization)

	res.Header().Set("Content-Type", "text/csv")
	res.Header().Set("Content-Disposition", `attachment; filename="result.csv"`)

	if err := csv.Export(res, result); err != nil {
		sendServerError(res, err, "failed to export query result as CSV")
		return
	}
}
