package toggle

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/dbgtoggle/app/enum"
)

const sample = "// LOG_DEBUG print(\"hello\")\nprint(\"world\")\n"

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	f := filepath.Join(t.TempDir(), "app.ts")
	require.NoError(t, os.WriteFile(f, []byte(content), 0o600))
	return f
}

func readTestFile(t *testing.T, f string) string {
	t.Helper()
	data, err := os.ReadFile(f) //nolint:gosec // test file
	require.NoError(t, err)
	return string(data)
}

func TestToggler_Run(t *testing.T) {
	for _, atomic := range []bool{false, true} {
		tg := New(Options{Atomic: atomic})
		name := "in place"
		if atomic {
			name = "atomic"
		}

		t.Run(name, func(t *testing.T) {
			f := writeTestFile(t, sample)

			res, err := tg.Run(f, enum.ModeEnable)
			require.NoError(t, err)
			assert.Equal(t, Result{File: f, Mode: enum.ModeEnable, Lines: 2, Changed: 1, Written: true}, res)
			assert.Equal(t, "LOG_DEBUG print(\"hello\")\nprint(\"world\")\n", readTestFile(t, f))

			res, err = tg.Run(f, enum.ModeDisable)
			require.NoError(t, err)
			assert.Equal(t, 1, res.Changed)
			assert.Equal(t, sample, readTestFile(t, f), "disable restores the original")

			entries, err := os.ReadDir(filepath.Dir(f))
			require.NoError(t, err)
			assert.Len(t, entries, 1, "no temp files left behind")
		})
	}
}

func TestToggler_RunKeepsUnmatchedBytes(t *testing.T) {
	content := "a  \r\n\t// LOG_DEBUG x\r\n\n  b\t\n// LOG_DEBUG tail"
	f := writeTestFile(t, content)

	res, err := New(Options{}).Run(f, enum.ModeEnable)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Lines)
	assert.Equal(t, 2, res.Changed)
	assert.Equal(t, "a  \r\n\tLOG_DEBUG x\r\n\n  b\t\nLOG_DEBUG tail", readTestFile(t, f))
}

func TestToggler_RunEnableTwice(t *testing.T) {
	f := writeTestFile(t, sample)
	tg := New(Options{})

	_, err := tg.Run(f, enum.ModeEnable)
	require.NoError(t, err)
	once := readTestFile(t, f)

	res, err := tg.Run(f, enum.ModeEnable)
	require.NoError(t, err)
	assert.Zero(t, res.Changed)
	assert.Equal(t, once, readTestFile(t, f))
}

func TestToggler_RunEmptyFile(t *testing.T) {
	f := writeTestFile(t, "")
	res, err := New(Options{}).Run(f, enum.ModeDisable)
	require.NoError(t, err)
	assert.Zero(t, res.Lines)
	assert.True(t, res.Written)
	assert.Empty(t, readTestFile(t, f))
}

func TestToggler_RunDryRun(t *testing.T) {
	f := writeTestFile(t, sample)

	res, err := New(Options{DryRun: true}).Run(f, enum.ModeEnable)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Changed)
	assert.False(t, res.Written)
	assert.Equal(t, sample, readTestFile(t, f))
}

func TestToggler_RunFileNotFound(t *testing.T) {
	for _, opts := range []Options{{}, {Atomic: true}} {
		f := filepath.Join(t.TempDir(), "missing.ts")

		_, err := New(opts).Run(f, enum.ModeEnable)
		require.ErrorIs(t, err, ErrFileNotFound)
		assert.Contains(t, err.Error(), f)

		_, statErr := os.Stat(f)
		assert.True(t, os.IsNotExist(statErr), "file must not be created")
	}
}

func TestToggler_RunKeepsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	for _, atomic := range []bool{false, true} {
		f := writeTestFile(t, sample)
		require.NoError(t, os.Chmod(f, 0o640))

		_, err := New(Options{Atomic: atomic}).Run(f, enum.ModeEnable)
		require.NoError(t, err)

		fi, err := os.Stat(f)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), fi.Mode().Perm(), "atomic=%v", atomic)
	}
}

func TestToggler_RunErrors(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission checks don't apply")
	}

	t.Run("unreadable file", func(t *testing.T) {
		f := writeTestFile(t, sample)
		require.NoError(t, os.Chmod(f, 0o200))

		_, err := New(Options{}).Run(f, enum.ModeEnable)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrFileNotFound)
		assert.Contains(t, err.Error(), "failed to open")
	})

	t.Run("read only file", func(t *testing.T) {
		f := writeTestFile(t, sample)
		require.NoError(t, os.Chmod(f, 0o400))

		_, err := New(Options{}).Run(f, enum.ModeEnable)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "for writing")
		assert.Equal(t, sample, readTestFile(t, f))
	})

	t.Run("read only dir with atomic write", func(t *testing.T) {
		f := writeTestFile(t, sample)
		dir := filepath.Dir(f)
		require.NoError(t, os.Chmod(dir, 0o500))
		t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

		_, err := New(Options{Atomic: true}).Run(f, enum.ModeEnable)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create temp file")
		assert.Equal(t, sample, readTestFile(t, f))
	})
}

func TestToggler_RunPathErrors(t *testing.T) {
	t.Run("path under a regular file", func(t *testing.T) {
		parent := writeTestFile(t, sample)
		f := filepath.Join(parent, "x")

		for _, atomic := range []bool{false, true} {
			_, err := New(Options{Atomic: atomic}).Run(f, enum.ModeEnable)
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrFileNotFound)
			assert.Contains(t, err.Error(), "failed to open "+f)
		}
		assert.Equal(t, sample, readTestFile(t, parent))
	})

	t.Run("directory", func(t *testing.T) {
		dir := t.TempDir()
		_, err := New(Options{}).Run(dir, enum.ModeEnable)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrFileNotFound)
		assert.Contains(t, err.Error(), "failed to read "+dir)
	})
}
