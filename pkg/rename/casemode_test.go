package rename

import (
	"os"
	"testing"
)

func TestParseCaseMode(t *testing.T) {
	for _, c := range []struct {
		in   string
		want CaseMode
	}{
		{"auto", CaseAuto},
		{"sensitive", CaseSensitive},
		{"insensitive", CaseInsensitive},
		{"AUTO", CaseAuto},
		{"Insensitive", CaseInsensitive},
	} {
		got, err := ParseCaseMode(c.in)
		if err != nil {
			t.Errorf("ParseCaseMode(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseCaseMode(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := ParseCaseMode("bogus"); err == nil {
		t.Error("ParseCaseMode(bogus) should fail")
	}
}

func TestCaseModeEqual(t *testing.T) {
	if !CaseInsensitive.Equal("foo.txt", "Foo.txt") {
		t.Error("insensitive mode should treat foo.txt and Foo.txt as one entry")
	}
	if CaseSensitive.Equal("foo.txt", "Foo.txt") {
		t.Error("sensitive mode should distinguish foo.txt and Foo.txt")
	}
	if !CaseSensitive.Equal("same", "same") {
		t.Error("identical names are always equal")
	}
}

func TestDetectCleansUpProbe(t *testing.T) {
	dir := t.TempDir()

	mode := Detect(dir)
	if mode != CaseSensitive && mode != CaseInsensitive {
		t.Fatalf("Detect returned %v", mode)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("probe file left behind: %v", entries)
	}
}

func TestResolvePassesThroughExplicitModes(t *testing.T) {
	dir := t.TempDir()
	if got := CaseSensitive.Resolve(dir); got != CaseSensitive {
		t.Errorf("Resolve(sensitive) = %v", got)
	}
	if got := CaseInsensitive.Resolve(dir); got != CaseInsensitive {
		t.Errorf("Resolve(insensitive) = %v", got)
	}
	if got := CaseAuto.Resolve(dir); got == CaseAuto {
		t.Error("Resolve(auto) should settle on a concrete mode")
	}
}
