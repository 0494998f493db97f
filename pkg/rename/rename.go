// Package rename moves single directory entries, working around
// case-insensitive volumes that treat a case-only rename as a no-op.
package rename

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
)

// Error describes a failed rename step. Path is the entry's location when
// the failure happened; after a failed second phase that is the temporary
// name the entry was left under.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rename %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Entry moves oldPath to newPath within the same parent directory.
//
// Under CaseInsensitive mode a case-only change goes through a fresh random
// temporary name first, since a direct rename would be swallowed by the
// volume. Everything else is a single rename. The final placement never
// replaces an existing target where the platform can enforce that.
// A CaseAuto mode is resolved against the entry's parent directory first.
func Entry(oldPath, newPath string, mode CaseMode) error {
	if oldPath == newPath {
		return nil
	}
	mode = mode.Resolve(filepath.Dir(oldPath))
	oldName := filepath.Base(oldPath)
	newName := filepath.Base(newPath)

	if mode == CaseInsensitive && mode.Equal(oldName, newName) {
		tmpPath := filepath.Join(filepath.Dir(oldPath), randomToken())
		if err := renameExact(oldPath, tmpPath); err != nil {
			return &Error{Path: oldPath, Err: err}
		}
		if err := renameNoReplace(tmpPath, newPath); err != nil {
			return &Error{Path: tmpPath, Err: err}
		}
		return nil
	}

	if err := renameNoReplace(oldPath, newPath); err != nil {
		return &Error{Path: oldPath, Err: err}
	}
	return nil
}

// randomToken returns a 128-bit random identifier. The space is large
// enough that sibling collisions need no coordination.
func randomToken() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
