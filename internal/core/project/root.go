package project

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/modu-ai/gph/internal/defs"
)

// FindProjectRoot locates the nearest directory at or above start that
// contains a .gph directory. start is made absolute first.
func FindProjectRoot(fsys afero.Fs, start string) (string, error) {
	absDir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	for {
		if ok, _ := afero.DirExists(fsys, filepath.Join(absDir, defs.GphDir)); ok {
			return absDir, nil
		}

		parent := filepath.Dir(absDir)
		if parent == absDir {
			return "", fmt.Errorf("not in a gph project (no %s directory found in %s or any parent directory)", defs.GphDir, start)
		}
		absDir = parent
	}
}

// FindProjectRootOrCurrent is like FindProjectRoot but falls back to the
// absolute form of start when no project encloses it, so the subsequent
// config load reports the missing project config for the directory the
// user is in.
func FindProjectRootOrCurrent(fsys afero.Fs, start string) (string, error) {
	if root, err := FindProjectRoot(fsys, start); err == nil {
		return root, nil
	}
	return filepath.Abs(start)
}
