// Package api exposes the query pipeline over HTTP: natural-language queries, CSV
// export and the command history.
package api

import (
	"fmt"
	"net/http"

	"hermannm.dev/datapanel/config"
	"hermannm.dev/datapanel/execute"
	"hermannm.dev/datapanel/interpret"
)

type DataPanelAPI struct {
	interpreter *interpret.Interpreter
	executor    *execute.Executor
	history     *History
	router      *http.ServeMux
	config      config.API
}

func NewDataPanelAPI(
	interpreter *interpret.Interpreter,
	executor *execute.Executor,
	router *http.ServeMux,
	config config.API,
) DataPanelAPI {
	api := DataPanelAPI{
		interpreter: interpreter,
		executor:    executor,
		history:     NewHistory(),
		router:      router,
		config:      config,
	}

	api.router.HandleFunc("/query", api.RunQuery)
	api.router.HandleFunc("/export", api.ExportCSV)
	api.router.HandleFunc("/history", api.GetHistory)

	return api
}

func (api DataPanelAPI) ListenAndServe() error {
	return http.ListenAndServe(fmt.Sprintf(":%s", api.config.Port), api.router)
}
