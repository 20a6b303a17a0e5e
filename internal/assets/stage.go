package assets

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"unity2godot/internal/diagnostic"
	"unity2godot/internal/inventory"
)

// Counts tallies converted assets per kind.
type Counts map[inventory.AssetKind]int

// Stage runs all asset converters over an inventory. Individual
// conversions are independent and run concurrently up to Workers;
// reference table writes are serialized by the table itself, and each
// conversion returns its own diagnostics which are merged after the
// group finishes.
type Stage struct {
	Conv    *Converter
	Workers int
	// Skip filters out asset kinds disabled by configuration.
	Skip func(inventory.AssetKind) bool
}

// Run converts every inventoried material, mesh, animation and script.
// The first fatal conversion error cancels the remaining work.
func (s *Stage) Run(ctx context.Context, inv *inventory.Inventory) (Counts, diagnostic.Diagnostics, error) {
	var (
		mu     sync.Mutex
		counts = make(Counts)
		diags  diagnostic.Diagnostics
	)

	g, ctx := errgroup.WithContext(ctx)

	workers := s.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	kinds := []struct {
		kind    inventory.AssetKind
		convert func(string) (diagnostic.Diagnostics, error)
	}{
		{inventory.Material, s.Conv.Material},
		{inventory.Mesh, s.Conv.Mesh},
		{inventory.Animation, s.Conv.Animation},
		{inventory.Script, s.Conv.Script},
	}

	for _, k := range kinds {
		if s.Skip != nil && s.Skip(k.kind) {
			continue
		}

		kind, convert := k.kind, k.convert

		for _, sourcePath := range inv.Table(kind) {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				d, err := convert(sourcePath)

				mu.Lock()
				diags.Merge(d)
				if err == nil {
					counts[kind]++
				}
				mu.Unlock()

				return err
			})
		}
	}

	if err := g.Wait(); err != nil {
		return counts, diags, err
	}

	return counts, diags, nil
}
