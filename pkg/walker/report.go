package walker

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Change records one completed rename.
type Change struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Collision records a rename skipped because the target name was taken by a
// different entry.
type Collision struct {
	Path   string `yaml:"path"`
	Target string `yaml:"target"`
}

// Report accumulates the outcome of one Run.
type Report struct {
	Root     string      `yaml:"root"`
	CaseMode string      `yaml:"case_mode"`
	Renamed  []Change    `yaml:"renamed"`
	Skipped  []Collision `yaml:"skipped,omitempty"`
}

func (r *Report) addRename(from, to string) {
	r.Renamed = append(r.Renamed, Change{From: from, To: to})
}

func (r *Report) addSkip(path, target string) {
	r.Skipped = append(r.Skipped, Collision{Path: path, Target: target})
}

// WriteFile marshals the report as YAML.
func (r *Report) WriteFile(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
