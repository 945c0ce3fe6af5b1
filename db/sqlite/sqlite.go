package sqlite

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"hermannm.dev/datapanel/config"
	"hermannm.dev/wrap"
)

// Implements db.PanelDB for a local SQLite database file.
type PanelDB struct {
	conn *sql.DB
}

func NewPanelDB(config config.SQLite) (PanelDB, error) {
	conn, err := sql.Open("sqlite3", config.DatabasePath)
	if err != nil {
		return PanelDB{}, wrap.Error(err, "failed to open SQLite database")
	}

	if err := conn.PingContext(context.Background()); err != nil {
		return PanelDB{}, wrap.Errorf(
			err, "failed to ping SQLite database at '%s'", config.DatabasePath,
		)
	}

	return PanelDB{conn: conn}, nil
}

func (panelDB PanelDB) Close() error {
	return panelDB.conn.Close()
}
