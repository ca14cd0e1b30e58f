// internal/organize/undo.go
package organize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidycli/tidy/internal/classify"
	"github.com/tidycli/tidy/internal/ledger"
)

// UndoResult summarizes one undo run.
type UndoResult struct {
	RunID    string
	Restored int
	// Skipped counts records undo declined to restore: the destination
	// vanished, or the original path was reoccupied since the sort.
	Skipped int
	// Failed counts records whose restore was attempted and hit an error.
	Failed int
	// Pruned lists the category folders removed because undo emptied them.
	Pruned []string
}

// Undo reverses the most recent organize run for the directory: every
// record whose destination still exists is moved back to its original
// path, emptied category folders are pruned, and the consumed ledger is
// deleted whether or not every record restored.
func (o *Organizer) Undo(dir string) (*UndoResult, error) {
	if err := checkDirectory(dir); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve directory: %w", err)
	}

	run, err := o.ledger.Latest(abs)
	if errors.Is(err, ledger.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNoPriorSort, abs)
	}
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	res := &UndoResult{RunID: run.RunID}
	o.rec.Eventf("Undoing the last sort...")
	o.log.Info("undo started", "dir", abs, "run_id", run.RunID, "records", len(run.Records))

	for _, rec := range run.Records {
		if !exists(rec.Destination) {
			// Deleted or moved externally; not restorable, not an error.
			res.Skipped++
			o.log.Debug("destination gone, skipping", "dest", rec.Destination)
			continue
		}
		if exists(rec.Original) {
			// The original path was reoccupied since the sort. Restoring
			// would clobber an unrelated file, so leave both in place.
			res.Skipped++
			o.rec.Eventf("SKIPPED: %s (original path occupied)", filepath.Base(rec.Original))
			o.log.Warn("original path reoccupied", "path", rec.Original)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(rec.Original), 0755); err != nil {
			res.Failed++
			o.rec.Eventf("FAILED: restore of %s (%v)", filepath.Base(rec.Original), err)
			o.log.Warn("restore failed", "path", rec.Original, "error", err)
			continue
		}
		if err := moveFile(rec.Destination, rec.Original); err != nil {
			res.Failed++
			o.rec.Eventf("FAILED: restore of %s (%v)", filepath.Base(rec.Original), err)
			o.log.Warn("restore failed", "path", rec.Original, "error", err)
			continue
		}
		res.Restored++
		o.rec.Eventf("Restored -> %s", filepath.Base(rec.Original))
	}

	// Non-empty folders stay: they hold files added after the sort or
	// files that failed to restore.
	for _, cat := range classify.All {
		p := filepath.Join(abs, string(cat))
		if isEmptyDir(p) && os.Remove(p) == nil {
			res.Pruned = append(res.Pruned, string(cat))
		}
	}

	// The ledger is consumed even on partial restore.
	if err := o.ledger.Delete(run.ID); err != nil {
		return res, fmt.Errorf("discard ledger: %w", err)
	}

	o.rec.Eventf("Undo complete! %d files restored.", res.Restored)
	o.log.Info("undo complete", "dir", abs,
		"restored", res.Restored, "skipped", res.Skipped, "failed", res.Failed)

	return res, nil
}
