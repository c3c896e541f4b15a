package demogrid

import (
	"testing"

	"github.com/Talgat-qypshaq/vlasiator"
)

func TestIDRoundTrip(t *testing.T) {
	g := New(3, 4, 5, 1, 1, 1)
	for k := 0; k < g.Nz; k++ {
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				id := g.ID(i, j, k)
				gi, gj, gk := g.coords(id)
				if gi != i || gj != j || gk != k {
					t.Errorf("coords(ID(%d,%d,%d)) = (%d,%d,%d)", i, j, k, gi, gj, gk)
				}
			}
		}
	}
}

func TestNeighborNonPeriodicBoundary(t *testing.T) {
	g := New(2, 2, 2, 1, 1, 1)
	id := g.ID(0, 0, 0)
	if n := g.Neighbor(id, -1, 0, 0); n != vlasiator.InvalidCellID {
		t.Errorf("Neighbor at grid edge = %d, want InvalidCellID", n)
	}
	if n := g.Neighbor(id, 1, 0, 0); n == vlasiator.InvalidCellID {
		t.Errorf("Neighbor(+x) at interior edge should exist")
	}
}

func TestNeighborPeriodicWrap(t *testing.T) {
	g := New(2, 2, 2, 1, 1, 1)
	g.PeriodicX = true
	id := g.ID(0, 0, 0)
	want := g.ID(1, 0, 0)
	if n := g.Neighbor(id, -1, 0, 0); n != want {
		t.Errorf("periodic Neighbor(-x) = %d, want %d", n, want)
	}
}

func TestLocalBoundarySplit(t *testing.T) {
	g := New(3, 3, 3, 1, 1, 1)
	local := g.LocalCells()
	bndry := g.BoundaryCells()
	if len(local) != 1 {
		t.Errorf("LocalCells: got %d, want 1 (only the center cell of a 3x3x3 grid is fully interior)", len(local))
	}
	if len(local)+len(bndry) != 27 {
		t.Errorf("local+boundary = %d, want 27", len(local)+len(bndry))
	}
	center := g.ID(1, 1, 1)
	if local[0] != center {
		t.Errorf("LocalCells[0] = %d, want center cell %d", local[0], center)
	}
}

func TestPeriodicGridIsFullyLocal(t *testing.T) {
	g := New(3, 3, 3, 1, 1, 1)
	g.PeriodicX, g.PeriodicY, g.PeriodicZ = true, true, true
	if got := len(g.LocalCells()); got != 27 {
		t.Errorf("fully periodic grid: LocalCells has %d cells, want 27", got)
	}
	if got := len(g.BoundaryCells()); got != 0 {
		t.Errorf("fully periodic grid: BoundaryCells has %d cells, want 0", got)
	}
}

func TestVolumeAveragedBShape(t *testing.T) {
	g := New(2, 3, 4, 1, 1, 1)
	arr := g.VolumeAveragedB()
	want := []int{3, 4, 3, 2}
	got := arr.GetShape()
	if len(got) != len(want) {
		t.Fatalf("shape = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("shape[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
