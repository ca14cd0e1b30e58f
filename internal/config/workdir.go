// internal/config/workdir.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoWorkdir indicates no working directory has been persisted yet.
var ErrNoWorkdir = errors.New("no working directory configured")

// ErrWorkdirInvalid indicates the persisted directory no longer exists or
// is not a directory.
var ErrWorkdirInvalid = errors.New("configured working directory is not usable")

// workdirFile holds the literal absolute path of the directory being
// organized, nothing else. Rewritten whenever the user changes directory.
const workdirFile = "workdir"

// WorkdirPath returns the location of the persisted working-directory file.
func WorkdirPath() string {
	return filepath.Join(ConfigDir(), workdirFile)
}

// LoadWorkdir reads the persisted working directory and verifies it still
// exists. Returns ErrNoWorkdir when nothing has been saved and
// ErrWorkdirInvalid when the saved path has gone stale.
func LoadWorkdir() (string, error) {
	return loadWorkdir(WorkdirPath())
}

func loadWorkdir(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoWorkdir
	}
	if err != nil {
		return "", fmt.Errorf("read workdir file: %w", err)
	}

	dir := strings.TrimSpace(string(data))
	if dir == "" {
		return "", ErrNoWorkdir
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrWorkdirInvalid, dir)
	}
	return dir, nil
}

// SaveWorkdir validates dir and persists its absolute path.
func SaveWorkdir(dir string) (string, error) {
	return saveWorkdir(WorkdirPath(), dir)
}

func saveWorkdir(path, dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrWorkdirInvalid, dir)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve directory: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(abs), 0644); err != nil {
		return "", fmt.Errorf("write workdir file: %w", err)
	}
	return abs, nil
}
