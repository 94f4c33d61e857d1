package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for the .tally/ project directory.
type Paths struct {
	Root   string // .tally/
	DB     string // .tally/tally.db
	Config string // .tally/config.yml
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	root := filepath.Join(projectRoot, ".tally")
	return &Paths{
		Root:   root,
		DB:     filepath.Join(root, "tally.db"),
		Config: filepath.Join(root, "config.yml"),
	}
}

// EnsureRoot creates the .tally/ directory if it does not exist.
func (p *Paths) EnsureRoot() error {
	return os.MkdirAll(p.Root, 0755)
}
