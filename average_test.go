package vlasiator

import (
	"testing"

	"github.com/Talgat-qypshaq/vlasiator/internal/demogrid"
)

// TestVolumeAveragedFieldsUniform checks that a spatially uniform
// perturbation B and edge E reduce to themselves under volume averaging,
// since the second-order correction coefficients are all zero when the
// limited slopes (derivatives) are zero everywhere.
func TestVolumeAveragedFieldsUniform(t *testing.T) {
	g := demogrid.New(3, 3, 3, 1, 1, 1)
	for _, id := range g.AllCells() {
		cp := g.Params(id)
		cp[BX], cp[BY], cp[BZ] = 1, 2, 3
		cp[EX], cp[EY], cp[EZ] = 0.1, 0.2, 0.3
	}
	c := NewContext(g, demogrid.NoopExchange{}, DefaultConfig(), BoundaryFuncs{})
	c.rebuildNeighborMasks()

	id := g.ID(1, 1, 1)
	c.calculateVolumeAveragedFields(id)
	cp := g.Params(id)

	if cp[BXVOL] != 1 {
		t.Errorf("BXVOL = %v, want 1", cp[BXVOL])
	}
	if cp[BYVOL] != 2 {
		t.Errorf("BYVOL = %v, want 2", cp[BYVOL])
	}
	if cp[BZVOL] != 3 {
		t.Errorf("BZVOL = %v, want 3", cp[BZVOL])
	}
	if cp[EXVOL] != 0.1 {
		t.Errorf("EXVOL = %v, want 0.1", cp[EXVOL])
	}
	if cp[EYVOL] != 0.2 {
		t.Errorf("EYVOL = %v, want 0.2", cp[EYVOL])
	}
	if cp[EZVOL] != 0.3 {
		t.Errorf("EZVOL = %v, want 0.3", cp[EZVOL])
	}
	if cp[BXFACEX] != 1 {
		t.Errorf("BXFACEX = %v, want 1", cp[BXFACEX])
	}
}

// TestVolumeAveragedEdgeMissingNeighborIsZero is the §4.8 existence gate:
// a corner cell missing one of the three extra neighbors needed to reach
// an edge contributes 0, not a partial average.
func TestVolumeAveragedEdgeMissingNeighborIsZero(t *testing.T) {
	g := demogrid.New(2, 2, 2, 1, 1, 1)
	for _, id := range g.AllCells() {
		g.Params(id)[EX] = 5
	}
	c := NewContext(g, demogrid.NoopExchange{}, DefaultConfig(), BoundaryFuncs{})
	c.rebuildNeighborMasks()

	id := g.ID(1, 1, 1) // the +x,+y,+z corner of a 2x2x2 grid has no +y or +z neighbor
	if got := c.volumeAveragedEdge(id, AxisX); got != 0 {
		t.Errorf("volumeAveragedEdge at a corner cell = %v, want 0", got)
	}
}

// TestFaceAveragesSkipMissingNeighbor checks that calculateFaceAverages
// leaves a face's BXFACEX/BYFACEY/BZFACEZ at its previous value when the
// +axis neighbor needed to average across the face does not exist.
func TestFaceAveragesSkipMissingNeighbor(t *testing.T) {
	g := demogrid.New(2, 2, 2, 1, 1, 1)
	c := NewContext(g, demogrid.NoopExchange{}, DefaultConfig(), BoundaryFuncs{})
	c.rebuildNeighborMasks()

	id := g.ID(1, 1, 1) // the +x,+y,+z corner: no +axis neighbor on any axis
	cp := g.Params(id)
	cp[BXFACEX] = -7
	rc := c.reconstructionCoefficients(id)
	c.calculateFaceAverages(id, rc)
	if got := cp[BXFACEX]; got != -7 {
		t.Errorf("BXFACEX = %v, want untouched -7 when the +x neighbor is missing", got)
	}
}
