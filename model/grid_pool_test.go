package model

import "testing"

func TestGridPoolRecyclesCleanGrids(t *testing.T) {
	pool := NewGridPool()

	g := pool.Get(4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("pooled grid is %dx%d, expected 4x3", g.Width(), g.Height())
	}
	if err := g.SetAlive(2, 1, true); err != nil {
		t.Fatalf("SetAlive: %v", err)
	}
	pool.Put(g)

	g = pool.Get(2, 2)
	if g.Width() != 2 || g.Height() != 2 {
		t.Fatalf("recycled grid is %dx%d, expected 2x2", g.Width(), g.Height())
	}
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("recycled grid has %d living cells, expected 0", n)
	}
}

func TestGridToPoolNilPool(t *testing.T) {
	g := mustGrid(t, 2, 2)
	// Must not panic when no pool is configured
	GridToPool(g, nil)
}
