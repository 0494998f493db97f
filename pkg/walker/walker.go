// Package walker renames every entry of a directory tree so its name starts
// with an uppercase letter. The traversal is bottom-up: children are renamed
// before the directory holding them, so no pending rename ever refers to a
// stale path.
package walker

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"capfirst/pkg/rename"
	"capfirst/pkg/transform"
)

// ErrNotDirectory is returned by Run when the root path is not a directory
// or cannot be statted at all (missing, unreadable parent).
var ErrNotDirectory = errors.New("not a directory")

// renameFn is swapped out in tests to inject rename failures.
var renameFn = rename.Entry

type Config struct {
	// CaseMode tells the walker how the target volume compares names.
	// CaseAuto probes the root volume once per run.
	CaseMode rename.CaseMode

	// Warn receives collision warnings. Defaults to stderr.
	Warn io.Writer

	// Report, when set, accumulates the run's renames and skips.
	Report *Report
}

type Walker struct {
	mode   rename.CaseMode
	warn   io.Writer
	report *Report
}

func New(cfg Config) *Walker {
	if cfg.Warn == nil {
		cfg.Warn = os.Stderr
	}
	return &Walker{
		mode:   cfg.CaseMode,
		warn:   cfg.Warn,
		report: cfg.Report,
	}
}

// Run renames every entry under root, deepest entries first, then root
// itself. It returns the final root path, which differs from root when the
// root's own name changed. A rename failure aborts the walk; re-running on
// the same root is safe since completed renames are no-ops on the next pass.
func (w *Walker) Run(root string) (string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	mode := w.mode.Resolve(root)

	if err := w.walk(root, mode); err != nil {
		return "", err
	}
	final, err := w.renameEntry(filepath.Dir(root), filepath.Base(root), mode)
	if err != nil {
		return "", err
	}

	if w.report != nil {
		w.report.Root = final
		w.report.CaseMode = mode.String()
	}
	return final, nil
}

func (w *Walker) walk(dir string, mode rename.CaseMode) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	// Descend before touching anything at this level.
	for _, e := range entries {
		if e.IsDir() {
			if err := w.walk(filepath.Join(dir, e.Name()), mode); err != nil {
				return err
			}
		}
	}

	// Files first, then subdirectories. ReadDir sorts by name, which keeps
	// collision warnings reproducible across runs.
	for _, e := range entries {
		if !e.IsDir() {
			if _, err := w.renameEntry(dir, e.Name(), mode); err != nil {
				return err
			}
		}
	}
	for _, e := range entries {
		if e.IsDir() {
			if _, err := w.renameEntry(dir, e.Name(), mode); err != nil {
				return err
			}
		}
	}
	return nil
}

// renameEntry renames one entry under parent if capitalizing changes its
// name, and returns the entry's final path.
func (w *Walker) renameEntry(parent, name string, mode rename.CaseMode) (string, error) {
	oldPath := filepath.Join(parent, name)
	newName := transform.First(name)
	if newName == name {
		return oldPath, nil
	}

	newPath := filepath.Join(parent, newName)
	if occupied(newPath, name, newName, mode) {
		fmt.Fprintf(w.warn, "capfirst: skip %s: %q already exists\n", oldPath, newName)
		if w.report != nil {
			w.report.addSkip(oldPath, newName)
		}
		return oldPath, nil
	}

	if err := renameFn(oldPath, newPath, mode); err != nil {
		return "", err
	}
	if w.report != nil {
		w.report.addRename(oldPath, newPath)
	}
	return newPath, nil
}

// occupied reports whether a distinct entry already sits at newPath. A
// case-only change under an insensitive mode finds the source itself at the
// target, which is not a collision.
func occupied(newPath, oldName, newName string, mode rename.CaseMode) bool {
	if mode.Equal(oldName, newName) {
		return false
	}
	_, err := os.Lstat(newPath)
	return err == nil
}
