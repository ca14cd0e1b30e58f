// internal/organize/move.go
package organize

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// moveFile relocates src to dst. Rename is tried first; when the
// destination sits on another device it falls back to copy-and-remove.
// Never overwrites: returns ErrDestinationExists if dst appeared since the
// collision check.
func moveFile(src, dst string) error {
	if exists(dst) {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// copyFile copies src to dst, removing the partial destination on failure.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer func() { _ = dstFile.Close() }()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("copy content: %w", err)
	}
	if err := dstFile.Sync(); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("sync: %w", err)
	}
	return nil
}

// resolveCollision returns the first destination path in catDir that does
// not already exist, appending _1, _2, ... to the filename's stem until
// the name is free. The original extension is preserved.
func resolveCollision(catDir, name string) string {
	dest := filepath.Join(catDir, name)
	if !exists(dest) {
		return dest
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		dest = filepath.Join(catDir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if !exists(dest) {
			return dest
		}
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// isEmptyDir reports whether path is a directory with no entries.
func isEmptyDir(path string) bool {
	entries, err := os.ReadDir(path)
	return err == nil && len(entries) == 0
}

// checkDirectory defends the engine's precondition: the caller hands us a
// path that exists and is a directory.
func checkDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInvalidDirectory, dir)
	}
	return nil
}
