package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"hermannm.dev/datapanel/db"
	"hermannm.dev/datapanel/execute"
	"hermannm.dev/datapanel/present"
	"hermannm.dev/devlog/log"
)

type QueryRequest struct {
	Command string `json:"command"`
}

type QueryResponse struct {
	Command       string               `json:"command"`
	SQL           string               `json:"sql"`
	Visualization db.VisualizationKind `json:"visualization"`
	Result        db.QueryResult       `json:"result"`
	Diagnostics   []execute.Diagnostic `json:"diagnostics,omitempty"`
	Rendering     present.Rendering    `json:"rendering"`
}

// Expects:
//   - body: JSON-encoded QueryRequest with the natural-language command
//
// Returns:
//   - JSON-encoded QueryResponse with the generated SQL, the processed result, any
//     diagnostics, and the rendered display form
func (api DataPanelAPI) RunQuery(res http.ResponseWriter, req *http.Request) {
	var body QueryRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		sendClientError(res, err, "failed to parse query request body")
		return
	}

	command := strings.TrimSpace(body.Command)
	if command == "" {
		sendClientError(res, nil, "missing 'command' in request body")
		return
	}

	requestID := uuid.NewString()
	log.Debug(
		"interpreting command",
		slog.String("requestId", requestID),
		slog.String("command", command),
	)

	query, visualization := api.interpreter.Interpret(req.Context(), command)

	log.Debug(
		"generated query",
		slog.String("requestId", requestID),
		slog.String("query", query),
	)

	result, diagnostics := api.executor.Execute(req.Context(), query, visualization)
	api.history.Add(command)

	sendJSON(res, QueryResponse{
		Command:       command,
		SQL:           query,
		Visualization: visualization,
		Result:        result,
		Diagnostics:   diagnostics,
		Rendering:     present.Format(result, visualization),
	})
}
