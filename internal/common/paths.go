package common

import (
	"os"
	"path/filepath"
	"strings"
)

// UnknownStr is the display value for unrecognized enum values.
const UnknownStr = "unknown"

// File permission constants.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)

// BareName returns the base name of a path without its extension.
// "Assets/Materials/Red.mat" -> "Red".
func BareName(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// EnsureDir creates the directory (and parents) if it does not exist.
// Safe to call repeatedly.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DirPerm)
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	return os.WriteFile(path, data, FilePerm)
}
