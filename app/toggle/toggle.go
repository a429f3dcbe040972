// Package toggle comments out or uncomments LOG_DEBUG statements in a text file.
// The whole file is read and transformed in memory before anything is written back,
// so an interrupted run leaves the original content in place.
package toggle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/dbgtoggle/app/enum"
)

// ErrFileNotFound is returned when the target file does not exist.
var ErrFileNotFound = errors.New("file not found")

// Options controls how the transformed content is written.
type Options struct {
	Atomic bool // write to a temp file and rename it over the target
	DryRun bool // transform only, leave the file untouched
}

// Result describes a single run.
type Result struct {
	File    string
	Mode    enum.Mode
	Lines   int
	Changed int
	Written bool
}

// Toggler rewrites debug-log lines in files.
type Toggler struct {
	opts Options
}

// New makes a Toggler with the given options.
func New(opts Options) *Toggler {
	return &Toggler{opts: opts}
}

// Run toggles LOG_DEBUG lines of filename according to mode and writes the file back.
// Returns error wrapping ErrFileNotFound if filename doesn't exist, nothing is created in this case.
func (t *Toggler) Run(filename string, mode enum.Mode) (Result, error) {
	res := Result{File: filename, Mode: mode}

	lines, perm, err := t.read(filename)
	if err != nil {
		return res, err
	}

	out, changed := Transform(lines, PatternFor(mode))
	res.Lines, res.Changed = len(out), changed
	log.Printf("[DEBUG] %s: %d of %d lines changed, mode %s", filename, changed, len(out), mode)

	if t.opts.DryRun {
		return res, nil
	}

	write := writeInPlace
	if t.opts.Atomic {
		write = writeAtomic
	}
	if err := write(filename, out, perm); err != nil {
		return res, err
	}
	res.Written = true
	return res, nil
}

// read loads all lines and the file permissions. The file is closed before returning.
func (t *Toggler) read(filename string) (lines []string, perm fs.FileMode, err error) {
	fh, err := os.Open(filename) //nolint:gosec // path comes from the command line
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %s", ErrFileNotFound, filename)
		}
		return nil, 0, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer fh.Close()

	fi, err := fh.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to stat %s: %w", filename, err)
	}

	if lines, err = ReadLines(fh); err != nil {
		return nil, 0, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return lines, fi.Mode().Perm(), nil
}
