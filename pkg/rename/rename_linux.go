//go:build linux

package rename

import (
	"os"

	"golang.org/x/sys/unix"
)

// renameNoReplace fails with EEXIST instead of clobbering an existing
// target. Filesystems without RENAME_NOREPLACE support fall back to a plain
// rename.
func renameNoReplace(oldpath, newpath string) error {
	err := unix.Renameat2(unix.AT_FDCWD, oldpath, unix.AT_FDCWD, newpath, unix.RENAME_NOREPLACE)
	switch err {
	case nil:
		return nil
	case unix.EINVAL, unix.ENOSYS, unix.ENOTSUP:
		return renameExact(oldpath, newpath)
	default:
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}
}

func renameExact(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}
