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

// faceE returns the edge-E CellParamIndex for axis.
func faceE(axis Axis) CellParamIndex {
	switch axis {
	case AxisX:
		return EX
	case AxisY:
		return EY
	default:
		return EZ
	}
}

// propagateFace advances the face-averaged perturbation B on axis, per
// spec.md §4.6: B_alpha += dt*((E_beta(+gamma)-E_beta(self))/Dgamma -
// (E_gamma(+beta)-E_gamma(self))/Dbeta), where (alpha,beta,gamma) is the
// cyclic permutation starting at axis. The update only reads this cell's
// edge-E and the edge-E of its +beta and +gamma neighbors, which is what
// makes the update exactly divergence-free (I3): every edge-E value is
// shared, with opposite sign, by the two face-B updates that border it.
func (c *Context) propagateFace(id CellID, axis Axis, dt float64) {
	mask := c.masks[id]
	if !satisfies(mask, c.opMasks.propagateB[axis]) {
		cp := c.grid.Params(id)
		bIdx, _ := faceB(axis)
		var fn BoundaryFieldFunc
		switch axis {
		case AxisY:
			fn = c.boundary.By
		case AxisZ:
			fn = c.boundary.Bz
		default:
			fn = c.boundary.Bx
		}
		cp[bIdx] = fn(id, mask, c.opMasks.propagateB[axis]&^mask, c.grid)
		return
	}

	beta := next(axis)
	gamma := next(beta)

	cp := c.grid.Params(id)
	betaP := c.grid.Params(c.neighborAlong(id, beta))
	gammaP := c.grid.Params(c.neighborAlong(id, gamma))

	eGamma := faceE(gamma)
	eBeta := faceE(beta)

	term1 := (betaP[eGamma] - cp[eGamma]) / cp[dIndex(beta)]
	term2 := (gammaP[eBeta] - cp[eBeta]) / cp[dIndex(gamma)]

	bIdx, _ := faceB(axis)
	cp[bIdx] += dt * (term2 - term1)
}

// neighborAlong returns the +1 neighbor of id along axis.
func (c *Context) neighborAlong(id CellID, axis Axis) CellID {
	switch axis {
	case AxisX:
		return c.grid.Neighbor(id, 1, 0, 0)
	case AxisY:
		return c.grid.Neighbor(id, 0, 1, 0)
	default:
		return c.grid.Neighbor(id, 0, 0, 1)
	}
}

// dIndex returns the cell-size CellParamIndex for axis.
func dIndex(axis Axis) CellParamIndex {
	switch axis {
	case AxisX:
		return DX
	case AxisY:
		return DY
	default:
		return DZ
	}
}
