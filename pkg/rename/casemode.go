package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// CaseMode describes how the target volume compares names that differ only
// in letter case.
type CaseMode int

const (
	CaseAuto CaseMode = iota
	CaseSensitive
	CaseInsensitive
)

func ParseCaseMode(s string) (CaseMode, error) {
	switch strings.ToLower(s) {
	case "auto":
		return CaseAuto, nil
	case "sensitive":
		return CaseSensitive, nil
	case "insensitive":
		return CaseInsensitive, nil
	default:
		return CaseAuto, fmt.Errorf("unknown case mode: %s", s)
	}
}

func (m CaseMode) String() string {
	switch m {
	case CaseSensitive:
		return "sensitive"
	case CaseInsensitive:
		return "insensitive"
	default:
		return "auto"
	}
}

// Equal reports whether two sibling names denote the same entry under m.
func (m CaseMode) Equal(a, b string) bool {
	if m == CaseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Resolve returns m unchanged unless it is CaseAuto, in which case the
// volume holding dir is probed.
func (m CaseMode) Resolve(dir string) CaseMode {
	if m != CaseAuto {
		return m
	}
	return Detect(dir)
}

// Detect probes dir with a throwaway file: the file is created under a
// lowercase name and looked up under the uppercase one. When dir is not
// writable the platform default is assumed.
func Detect(dir string) CaseMode {
	name := ".capfirst-probe-" + randomToken()
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return platformDefault()
	}
	f.Close()
	defer os.Remove(path)

	if _, err := os.Lstat(filepath.Join(dir, strings.ToUpper(name))); err == nil {
		return CaseInsensitive
	}
	return CaseSensitive
}

func platformDefault() CaseMode {
	switch runtime.GOOS {
	case "darwin", "windows":
		return CaseInsensitive
	default:
		return CaseSensitive
	}
}
