package rewrite

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"unity2godot/internal/common"
	"unity2godot/internal/refmap"
)

// rewritable marks the emitted text documents the pass may touch.
// Binary meshes and script stubs are left alone.
var rewritable = map[string]bool{
	".tscn": true,
	".tres": true,
	".anim": true,
}

// Apply scans every emitted document under targetRoot and replaces
// source filenames with converted filenames for every pair in the
// table, rewriting files in place. Must run strictly after all scene
// and prefab conversions. Running it a second time with the same table
// changes nothing: all source filenames are already gone.
// Returns the number of files whose content changed.
func Apply(targetRoot string, refs *refmap.Table) (int, error) {
	pairs := refs.Pairs()
	if common.IsEmpty(pairs) {
		return 0, nil
	}

	changed := 0

	err := filepath.WalkDir(targetRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !rewritable[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		didChange, err := rewriteFile(path, pairs)
		if err != nil {
			return err
		}

		if didChange {
			changed++
		}

		return nil
	})
	if err != nil {
		return changed, fmt.Errorf("rewriting references under %s: %w", targetRoot, err)
	}

	return changed, nil
}

// rewriteFile applies every filename substitution to one document.
func rewriteFile(path string, pairs []refmap.Pair) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	content := string(data)
	for _, pair := range pairs {
		content = strings.ReplaceAll(content,
			filepath.Base(pair.Source), filepath.Base(pair.Target))
	}

	if content == string(data) {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(content), common.FilePerm); err != nil {
		return false, fmt.Errorf("failed to rewrite document %s: %w", path, err)
	}

	return true, nil
}
