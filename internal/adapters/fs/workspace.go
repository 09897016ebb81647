// Package fs implements the build tree adapter on the local filesystem.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace provides access to the build tree on disk.
type Workspace struct{}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Exists reports whether path exists.
func (w *Workspace) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Clean removes path and everything below it. A missing path is not an error.
// The working directory and filesystem roots are never removed.
func (w *Workspace) Clean(path string) error {
	cleaned := filepath.Clean(path)
	if isProtected(cleaned) {
		return zerr.With(zerr.Wrap(domain.ErrCleanFailed, "refusing to remove directory"), "path", cleaned)
	}

	if err := os.RemoveAll(cleaned); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCleanFailed, err.Error()), "path", cleaned)
	}
	return nil
}

func isProtected(path string) bool {
	if path == "." || path == ".." || path == filepath.VolumeName(path)+string(filepath.Separator) {
		return true
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return true
	}
	cwd, err := os.Getwd()
	if err != nil {
		return true
	}
	rel, err := filepath.Rel(abs, cwd)
	// Protected when the working directory is path itself or lies below it.
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
