package inventory

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"unity2godot/internal/common"
)

// Inventory holds the per-kind name-to-path tables for one conversion
// run. Built once, read-only afterwards.
type Inventory struct {
	tables map[AssetKind]map[string]string
}

// New returns an empty inventory.
func New() *Inventory {
	tables := make(map[AssetKind]map[string]string, KindTotal)
	for _, kind := range extKinds {
		tables[kind] = map[string]string{}
	}

	return &Inventory{tables: tables}
}

// Scan walks the source project root once and classifies every file by
// extension. A root with no matching files yields empty tables, not an
// error.
func Scan(root string) (*Inventory, error) {
	inv := New()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// Skip VCS and build directories.
			switch d.Name() {
			case ".git", ".hg", ".svn", "Library", "Temp", "obj":
				if path != root {
					return filepath.SkipDir
				}
			}

			return nil
		}

		if kind := KindForExt(filepath.Ext(path)); kind != 0 {
			inv.Add(kind, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning project %s: %w", root, err)
	}

	return inv, nil
}

// Add records one file under its bare name. A later Add with the same
// bare name overwrites the earlier one (last-write-wins).
func (inv *Inventory) Add(kind AssetKind, path string) {
	inv.tables[kind][common.BareName(path)] = path
}

// Table returns the name-to-path table for one kind. Callers must not
// mutate it.
func (inv *Inventory) Table(kind AssetKind) map[string]string {
	return inv.tables[kind]
}

// Count returns the number of indexed files of one kind.
func (inv *Inventory) Count(kind AssetKind) int {
	return len(inv.tables[kind])
}

// Total returns the number of indexed files across all kinds.
func (inv *Inventory) Total() int {
	total := 0
	for _, t := range inv.tables {
		total += len(t)
	}

	return total
}
