package config

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/modu-ai/gph/internal/defs"
)

// encodeTOML marshals v with the encoder defaults used for every gph file.
func encodeTOML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// atomicWrite writes data to a file atomically using temp file + Rename,
// creating parent directories as needed. An interrupted write leaves the
// previous file untouched.
func atomicWrite(fsys afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, defs.DirPerm); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmp, err := afero.TempFile(fsys, dir, ".gph-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = fsys.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return fsys.Rename(tmpName, path)
}
