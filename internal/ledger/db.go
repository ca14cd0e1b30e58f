package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/tidycli/tidy/internal/migrations"
)

// StateDirName is the fixed subdirectory of the working directory that
// holds the ledger database and session logs. The organize scan never
// descends into directories, so the state folder is safe from sorting.
const StateDirName = "Sort_Logs"

const dbFileName = "ledger.db"

// Recorded reports whether a ledger database has ever been written for
// the working directory. Unlike Open it never creates the state folder,
// so callers can answer "is there anything to undo?" without mutating a
// fresh directory.
func Recorded(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, StateDirName, dbFileName))
	return err == nil && !info.IsDir()
}

// Open opens the ledger database for a working directory, creating the
// state folder and applying the schema if needed.
func Open(dir string) (*sql.DB, error) {
	stateDir := filepath.Join(dir, StateDirName)
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(stateDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open ledger db: %w", err)
	}
	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate ledger db: %w", err)
	}
	return db, nil
}
