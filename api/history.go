package api

import (
	"net/http"
	"sync"
)

const historySize = 10

// History keeps the most recent successfully submitted commands, newest first.
// Safe for concurrent use.
type History struct {
	lock     sync.Mutex
	commands []string
}

func NewHistory() *History {
	return &History{}
}

func (history *History) Add(command string) {
	history.lock.Lock()
	defer history.lock.Unlock()

	history.commands = append(history.commands, command)
	if len(history.commands) > historySize {
		history.commands = history.commands[len(history.commands)-historySize:]
	}
}

func (history *History) List() []string {
	history.lock.Lock()
	defer history.lock.Unlock()

	listed := make([]string, 0, len(history.commands))
	for i := len(history.commands) - 1; i >= 0; i-- {
		listed = append(listed, history.commands[i])
	}
	return listed
}

// Returns:
//   - JSON-encoded list of the last 10 commands, most recent first
func (api DataPanelAPI) GetHistory(res http.ResponseWriter, req *http.Request) {
	sendJSON(res, api.history.List())
}
