package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tidycli/tidy/internal/classify"
	"github.com/tidycli/tidy/internal/config"
	"github.com/tidycli/tidy/internal/ledger"
	"github.com/tidycli/tidy/internal/organize"
	"github.com/tidycli/tidy/internal/sessionlog"
)

// app bundles the settings, classification table and logger one command
// invocation needs.
type app struct {
	cfg    *config.Config
	table  *classify.Table
	logger *slog.Logger
}

func newApp() (*app, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, err
	}

	table, err := classify.NewTable(cfg.Categories)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))

	return &app{cfg: cfg, table: table, logger: logger}, nil
}

// loadSettings loads the discovered settings file. A missing file is fine;
// a broken one is not.
func loadSettings() (*config.Config, error) {
	path := configPath
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return config.Default(), nil
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.Error{Path: path, Errors: errs}
	}
	return cfg, nil
}

// resolveDir picks the working directory: an explicit argument wins,
// otherwise the persisted value is used.
func resolveDir(args []string) (string, error) {
	if len(args) > 0 {
		return filepath.Abs(args[0])
	}

	dir, err := config.LoadWorkdir()
	if errors.Is(err, config.ErrNoWorkdir) {
		return "", fmt.Errorf("no working directory configured; set one with: tidy dir <path>")
	}
	if err != nil {
		return "", err
	}
	return dir, nil
}

// withEngine opens the ledger and session log for dir, hands the wired
// engine to fn and closes both afterwards. Session log lines are echoed to
// mirror when it is non-nil.
func (a *app) withEngine(dir string, mirror io.Writer, fn func(*organize.Organizer) error) error {
	db, err := ledger.Open(dir)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	sess, err := sessionlog.Start(dir, mirror)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()

	eng := organize.New(ledger.NewStore(db), a.table, sess, a.logger.With("component", "organize"))
	return fn(eng)
}

// sortDir runs one organize pass and prints the result.
func (a *app) sortDir(dir string, mirror io.Writer) error {
	return a.withEngine(dir, mirror, func(eng *organize.Organizer) error {
		res, err := eng.Organize(dir)
		if err != nil {
			return err
		}
		printSortResult(os.Stdout, res)
		return nil
	})
}

// undoDir reverses the most recent sort. A missing ledger is reported, not
// treated as a failure, and the directory stays untouched in that case: no
// state folder, no ledger database, no session log.
func (a *app) undoDir(dir string, mirror io.Writer) error {
	if !ledger.Recorded(dir) {
		fmt.Println("Nothing to undo: no previous sort found.")
		return nil
	}

	db, err := ledger.Open(dir)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	store := ledger.NewStore(db)
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	ok, err := store.Exists(abs)
	if err != nil {
		return err
	}
	if !ok {
		// Database present but its run was already consumed.
		fmt.Println("Nothing to undo: no previous sort found.")
		return nil
	}

	sess, err := sessionlog.Start(dir, mirror)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()

	eng := organize.New(store, a.table, sess, a.logger.With("component", "organize"))
	res, err := eng.Undo(dir)
	if errors.Is(err, organize.ErrNoPriorSort) {
		fmt.Println("Nothing to undo: no previous sort found.")
		return nil
	}
	if err != nil {
		return err
	}
	printUndoResult(os.Stdout, res)
	return nil
}
