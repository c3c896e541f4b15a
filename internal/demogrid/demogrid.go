/*
This file is part of vlasiator.

Copyright 2010, 2011, 2012 Finnish Meteorological Institute

vlasiator is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License version 3
as published by the Free Software Foundation.

vlasiator is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package demogrid is a small in-memory, single-partition, uniform
// cartesian grid implementing vlasiator.Grid and vlasiator.Exchange. It
// exists only to give the field solver something concrete to run against
// in tests and in the cmd/vlasiator demo; it is explicitly not the
// distributed grid library the solver treats as an external collaborator.
package demogrid

import (
	"github.com/Talgat-qypshaq/vlasiator"
	"github.com/ctessum/sparse"
)

// Grid is a uniform Nx*Ny*Nz cartesian mesh. Cell id 0 is the invalid
// sentinel; cell (i,j,k) (0-indexed) has id 1+i+j*Nx+k*Nx*Ny.
type Grid struct {
	Nx, Ny, Nz     int
	Dx, Dy, Dz     float64
	PeriodicX      bool
	PeriodicY      bool
	PeriodicZ      bool
	params         []vlasiator.CellParams
	derivs         []vlasiator.CellDerivs
	local, bndry   []vlasiator.CellID
	partitionBuilt bool
}

// New builds a Grid of nx*ny*nz cells with uniform spacing (dx,dy,dz).
func New(nx, ny, nz int, dx, dy, dz float64) *Grid {
	n := nx * ny * nz
	g := &Grid{
		Nx: nx, Ny: ny, Nz: nz,
		Dx: dx, Dy: dy, Dz: dz,
		params: make([]vlasiator.CellParams, n),
		derivs: make([]vlasiator.CellDerivs, n),
	}
	for i := range g.params {
		g.params[i][vlasiator.DX] = dx
		g.params[i][vlasiator.DY] = dy
		g.params[i][vlasiator.DZ] = dz
		g.params[i][vlasiator.RHO] = 1
	}
	return g
}

func (g *Grid) index(i, j, k int) int { return i + j*g.Nx + k*g.Nx*g.Ny }

// ID returns the cell id at 0-indexed (i,j,k).
func (g *Grid) ID(i, j, k int) vlasiator.CellID {
	return vlasiator.CellID(1 + g.index(i, j, k))
}

func (g *Grid) coords(id vlasiator.CellID) (i, j, k int) {
	n := int(id) - 1
	k = n / (g.Nx * g.Ny)
	n -= k * g.Nx * g.Ny
	j = n / g.Nx
	i = n - j*g.Nx
	return
}

// Coords returns the 0-indexed (i,j,k) position of id, the inverse of ID.
func (g *Grid) Coords(id vlasiator.CellID) (i, j, k int) {
	return g.coords(id)
}

func (g *Grid) wrap(v, n int, periodic bool) (int, bool) {
	if v >= 0 && v < n {
		return v, true
	}
	if !periodic {
		return 0, false
	}
	return ((v % n) + n) % n, true
}

// Neighbor implements vlasiator.Grid.
func (g *Grid) Neighbor(id vlasiator.CellID, di, dj, dk int) vlasiator.CellID {
	i, j, k := g.coords(id)
	ni, ok := g.wrap(i+di, g.Nx, g.PeriodicX)
	if !ok {
		return vlasiator.InvalidCellID
	}
	nj, ok := g.wrap(j+dj, g.Ny, g.PeriodicY)
	if !ok {
		return vlasiator.InvalidCellID
	}
	nk, ok := g.wrap(k+dk, g.Nz, g.PeriodicZ)
	if !ok {
		return vlasiator.InvalidCellID
	}
	return g.ID(ni, nj, nk)
}

// Params implements vlasiator.Grid.
func (g *Grid) Params(id vlasiator.CellID) *vlasiator.CellParams {
	return &g.params[int(id)-1]
}

// Derivs implements vlasiator.Grid.
func (g *Grid) Derivs(id vlasiator.CellID) *vlasiator.CellDerivs {
	return &g.derivs[int(id)-1]
}

// buildPartition classifies every cell as "local" (every one of its 26
// stencil neighbors exists) or "boundary" (at least one does not), the
// split vlasiator.Grid.LocalCells/BoundaryCells must provide for the
// driver's inner/boundary overlap (C9).
func (g *Grid) buildPartition() {
	g.local = g.local[:0]
	g.bndry = g.bndry[:0]
	for k := 0; k < g.Nz; k++ {
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				id := g.ID(i, j, k)
				complete := true
				for dk := -1; dk <= 1 && complete; dk++ {
					for dj := -1; dj <= 1 && complete; dj++ {
						for di := -1; di <= 1; di++ {
							if di == 0 && dj == 0 && dk == 0 {
								continue
							}
							if g.Neighbor(id, di, dj, dk) == vlasiator.InvalidCellID {
								complete = false
								break
							}
						}
					}
				}
				if complete {
					g.local = append(g.local, id)
				} else {
					g.bndry = append(g.bndry, id)
				}
			}
		}
	}
	g.partitionBuilt = true
}

// LocalCells implements vlasiator.Grid.
func (g *Grid) LocalCells() []vlasiator.CellID {
	if !g.partitionBuilt {
		g.buildPartition()
	}
	return g.local
}

// BoundaryCells implements vlasiator.Grid.
func (g *Grid) BoundaryCells() []vlasiator.CellID {
	if !g.partitionBuilt {
		g.buildPartition()
	}
	return g.bndry
}

// AllCells returns every cell id in (i,j,k) row-major order.
func (g *Grid) AllCells() []vlasiator.CellID {
	ids := make([]vlasiator.CellID, 0, g.Nx*g.Ny*g.Nz)
	for k := 0; k < g.Nz; k++ {
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				ids = append(ids, g.ID(i, j, k))
			}
		}
	}
	return ids
}

// NoopExchange is a vlasiator.Exchange for a single partition: there is no
// remote neighbor to exchange with, so every phase is a no-op. It exists
// so the driver's overlap structure (start/wait-receive/wait-send) runs
// unchanged against a demo grid that has no MPI behind it.
type NoopExchange struct{}

func (NoopExchange) Start(vlasiator.TransferType) {}
func (NoopExchange) WaitReceives()                {}
func (NoopExchange) WaitSends()                   {}

// Field returns a flat, row-major (k,j,i) slice of the named cell
// parameter, or ok=false if name is not a recognized output variable. This
// is the same by-name output-variable selection idiom as the teacher's
// InMAPdata.getValue, used here so a caller (e.g. the CLI) can summarize an
// arbitrary field without a compile-time switch over every CellParamIndex.
func (g *Grid) Field(name string) (values []float64, ok bool) {
	out := make([]float64, 0, g.Nx*g.Ny*g.Nz)
	for k := 0; k < g.Nz; k++ {
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				v, found := g.Params(g.ID(i, j, k)).Value(name)
				if !found {
					return nil, false
				}
				out = append(out, v)
			}
		}
	}
	return out, true
}

// VolumeAveragedB returns a (3,Nz,Ny,Nx) dense array of BxVol,ByVol,BzVol,
// the same sparse.DenseArray shape the teacher's aim.go uses for gridded
// output.
func (g *Grid) VolumeAveragedB() *sparse.DenseArray {
	arr := sparse.ZerosDense(3, g.Nz, g.Ny, g.Nx)
	for k := 0; k < g.Nz; k++ {
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				cp := g.Params(g.ID(i, j, k))
				arr.Set(cp[vlasiator.BXVOL], 0, k, j, i)
				arr.Set(cp[vlasiator.BYVOL], 1, k, j, i)
				arr.Set(cp[vlasiator.BZVOL], 2, k, j, i)
			}
		}
	}
	return arr
}
