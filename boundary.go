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

package vlasiator

// BoundaryDerivFunc substitutes the axis derivatives for a cell whose
// operation mask is not satisfied for that axis. It must leave every
// derivative slot touched by that axis in a defined, finite state.
type BoundaryDerivFunc func(id CellID, axis Axis, existing, missing uint32, out *CellDerivs, g Grid)

// BoundaryFieldFunc substitutes a face-B value for a cell whose
// operation mask is not satisfied. It must return a finite value.
type BoundaryFieldFunc func(id CellID, existing, missing uint32, g Grid) float64

// BoundaryFuncs bundles the project-supplied boundary functors named in
// §6. A zero-value BoundaryFuncs leaves every unset slot at its previous
// value (a no-op boundary, suitable for tests that only exercise fully
// interior cells).
type BoundaryFuncs struct {
	DerivX, DerivY, DerivZ BoundaryDerivFunc
	Bx, By, Bz             BoundaryFieldFunc
}

func noopDeriv(CellID, Axis, uint32, uint32, *CellDerivs, Grid) {}

// The no-op face-B functors return the cell's current value, so the
// propagator's substitution leaves the face B unchanged.
func noopBx(id CellID, _, _ uint32, g Grid) float64 { return g.Params(id)[BX] }
func noopBy(id CellID, _, _ uint32, g Grid) float64 { return g.Params(id)[BY] }
func noopBz(id CellID, _, _ uint32, g Grid) float64 { return g.Params(id)[BZ] }

// withDefaults fills unset functors with no-ops so the driver never has to
// nil-check a boundary callback.
func (b BoundaryFuncs) withDefaults() BoundaryFuncs {
	if b.DerivX == nil {
		b.DerivX = noopDeriv
	}
	if b.DerivY == nil {
		b.DerivY = noopDeriv
	}
	if b.DerivZ == nil {
		b.DerivZ = noopDeriv
	}
	if b.Bx == nil {
		b.Bx = noopBx
	}
	if b.By == nil {
		b.By = noopBy
	}
	if b.Bz == nil {
		b.Bz = noopBz
	}
	return b
}
