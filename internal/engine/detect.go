package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// skipDirs lists engine-generated and tooling directories that never
// contain project descriptors worth building.
var skipDirs = map[string]bool{
	"node_modules":     true,
	"Binaries":         true,
	"Intermediate":     true,
	"Saved":            true,
	"DerivedDataCache": true,
	"Library":          true,
	"Temp":             true,
	"Logs":             true,
	"obj":              true,
}

// findMarkers walks root and returns the paths of files matching pattern
// (a doublestar pattern relative to root) in traversal order. Hidden and
// generated directories are skipped. A missing or unreadable root, or a
// root that is not a directory, is an error; finding nothing is not.
// Unreadable subdirectories are logged and skipped.
func (b *backend) findMarkers(ctx context.Context, root, pattern string) ([]string, error) {
	fsys := b.opts.Fs
	root = filepath.Clean(root)
	st, err := fsys.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("detect projects in %s: %w", root, err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("detect projects: %w", &pathError{path: root, err: ErrNotDirectory})
	}

	var matches []string
	err = afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			b.opts.Logger.Debug("skipping unreadable path", "engine", b.typ, "path", path, "error", err)
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if info.IsDir() {
			name := info.Name()
			if path != root && (skipDirs[name] || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		if ok, _ := doublestar.Match(pattern, filepath.ToSlash(rel)); ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("detect projects in %s: %w", root, err)
	}
	return matches, nil
}
