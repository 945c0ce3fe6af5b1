package main

import (
	"log/slog"
	"net/http"
	"os"

	"hermannm.dev/datapanel/api"
	"hermannm.dev/datapanel/config"
	"hermannm.dev/datapanel/db/sqlite"
	"hermannm.dev/datapanel/execute"
	"hermannm.dev/datapanel/interpret"
	"hermannm.dev/datapanel/ollama"
	"hermannm.dev/devlog"
	"hermannm.dev/devlog/log"
)

func main() {
	logHandler := devlog.NewHandler(os.Stdout, &devlog.Options{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(logHandler))

	conf, err := config.ReadFromEnv()
	if err != nil {
		log.ErrorCause(err, "failed to read config from env")
		os.Exit(1)
	}

	if !ollama.CheckConnection(conf.Ollama.BaseURL, conf.Ollama.LivenessTimeout) {
		log.Warnf("Ollama is not reachable at %s, start it before querying", conf.Ollama.BaseURL)
		os.Exit(1)
	}

	panelDB, err := sqlite.NewPanelDB(conf.SQLite)
	if err != nil {
		log.ErrorCause(err, "failed to initialize database")
		os.Exit(1)
	}

	interpreter := interpret.NewInterpreter(panelDB, ollama.NewClient(conf.Ollama))
	executor := execute.NewExecutor(panelDB, execute.NewResultCache())

	panelAPI := api.NewDataPanelAPI(interpreter, executor, http.DefaultServeMux, conf.API)

	log.Infof("Listening on port %s...", conf.API.Port)
	if err := panelAPI.ListenAndServe(); err != nil {
		log.ErrorCause(err, "server stopped")
		os.Exit(1)
	}
}
