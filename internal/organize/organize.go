// Package organize implements the sort and undo engines: it relocates a
// directory's files into category subfolders, records every move in the
// ledger, and can reverse the most recent run exactly.
package organize

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tidycli/tidy/internal/classify"
	"github.com/tidycli/tidy/internal/ledger"
)

// Organizer sorts a directory's files and undoes prior sorts. It is
// synchronous and assumes exclusive access to the working directory for
// the duration of one operation.
type Organizer struct {
	ledger *ledger.Store
	table  *classify.Table
	rec    Recorder
	log    *slog.Logger
}

// New creates an organizer. A nil table uses the built-in extension
// mapping, a nil recorder discards progress lines.
func New(store *ledger.Store, table *classify.Table, rec Recorder, log *slog.Logger) *Organizer {
	if table == nil {
		table = classify.Default()
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Organizer{ledger: store, table: table, rec: rec, log: log}
}

// Outcome is the per-file result of one move attempt.
type Outcome struct {
	Name        string
	Category    classify.Category
	Destination string // empty when the move failed
	Err         error  // nil on success
}

// Result summarizes one organize run.
type Result struct {
	RunID      string
	Moved      int
	Failed     int
	ByCategory map[classify.Category]int
	Outcomes   []Outcome
}

// Organize sorts the directory's immediate files into category subfolders
// and persists the move ledger, replacing any prior undoable run. Each
// file's move is independent: failures are collected in the result and
// never abort the remaining scan.
func (o *Organizer) Organize(dir string) (*Result, error) {
	if err := checkDirectory(dir); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve directory: %w", err)
	}

	// Single upfront snapshot: entries added mid-scan are not picked up.
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	res := &Result{
		RunID:      uuid.NewString(),
		ByCategory: make(map[classify.Category]int, len(classify.All)),
	}
	var records []ledger.Record
	selfName := executableName()

	o.rec.Eventf("Starting organization of: %s", abs)
	o.log.Info("organize started", "dir", abs, "run_id", res.RunID, "entries", len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// Never sweep up the running binary if it sits in the directory.
		if selfName != "" && entry.Name() == selfName {
			continue
		}

		name := entry.Name()
		cat := o.table.Classify(filepath.Ext(name))
		src := filepath.Join(abs, name)
		catDir := filepath.Join(abs, string(cat))

		if err := os.MkdirAll(catDir, 0755); err != nil {
			o.fileFailed(res, name, cat, fmt.Errorf("create category dir: %w", err))
			continue
		}

		dest := resolveCollision(catDir, name)
		if err := moveFile(src, dest); err != nil {
			o.fileFailed(res, name, cat, fmt.Errorf("%w: %s: %w", ErrMoveFailed, name, err))
			continue
		}

		records = append(records, ledger.Record{Destination: dest, Original: src})
		res.ByCategory[cat]++
		res.Moved++
		res.Outcomes = append(res.Outcomes, Outcome{Name: name, Category: cat, Destination: dest})
		o.rec.Eventf("MOVED: %s -> %s/", name, cat)
		o.log.Debug("file moved", "file", name, "category", cat, "dest", dest)
	}

	for _, cat := range classify.All {
		if res.ByCategory[cat] == 0 {
			o.rec.Eventf("No %s files were found.", strings.ToLower(string(cat)))
		}
	}
	o.rec.Eventf("Organization complete! %d files moved.", res.Moved)

	run := &ledger.Run{RunID: res.RunID, Directory: abs, Records: records}
	if err := o.ledger.Replace(run); err != nil {
		return res, fmt.Errorf("persist ledger: %w", err)
	}
	o.rec.Eventf("Undo info saved.")
	o.log.Info("organize complete", "dir", abs, "moved", res.Moved, "failed", res.Failed)

	return res, nil
}

func (o *Organizer) fileFailed(res *Result, name string, cat classify.Category, err error) {
	res.Failed++
	res.Outcomes = append(res.Outcomes, Outcome{Name: name, Category: cat, Err: err})
	o.rec.Eventf("FAILED: %s (%v)", name, err)
	o.log.Warn("move failed", "file", name, "error", err)
}

// executableName returns the base name of the running binary, or "" when
// it cannot be determined.
func executableName() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Base(exe)
}
