// Package source reads YAML text from files, file systems and readers for the
// yamlbind loaders.
package source

import (
	"fmt"
	"io"
	"io/fs"
	"os"
)

// File returns the contents of the file at path.
func File(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("source: read %s: %w", path, err)
	}
	return string(b), nil
}

// FS returns the contents of name within fsys (an embed.FS, os.DirFS, ...).
func FS(fsys fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("source: read %s: %w", name, err)
	}
	return string(b), nil
}

// Reader drains r.
func Reader(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("source: read: %w", err)
	}
	return string(b), nil
}
