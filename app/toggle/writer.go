package toggle

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/go-pkgz/lgr"
)

// writeInPlace truncates the existing file and writes lines into it, the file keeps its mode.
func writeInPlace(filename string, lines []string, _ fs.FileMode) error {
	fh, err := os.OpenFile(filename, os.O_WRONLY|os.O_TRUNC, 0) //nolint:gosec // path comes from the command line
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", filename, err)
	}
	if err := writeLines(fh, lines); err != nil {
		_ = fh.Close()
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filename, err)
	}
	return nil
}

// writeAtomic writes lines to a temp file next to filename and renames it over filename.
// The temp file is removed on any failure.
func writeAtomic(filename string, lines []string, perm fs.FileMode) error {
	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", filename, err)
	}
	tmpName := tmp.Name()

	done := false
	defer func() {
		if done {
			return
		}
		_ = tmp.Close()
		if rmErr := os.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Printf("[WARN] failed to remove temp file %s: %v", tmpName, rmErr)
		}
	}()

	if err := writeLines(tmp, lines); err != nil {
		return fmt.Errorf("failed to write temp file %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("failed to chmod temp file %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", tmpName, filename, err)
	}
	done = true
	return nil
}
