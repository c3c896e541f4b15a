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

// calculateDerivatives fills the derivative slots of cell id for every
// axis whose operation mask is satisfied; axes that are not satisfied are
// handed to the boundary functors. Grounded on calculateDerivatives in the
// original field solver: the limiter runs on rho, on the face-augmented
// transverse B components (B + background on that face), and on velocity
// reconstructed as (rhoV)/rho rather than a stored V.
func (c *Context) calculateDerivatives(id CellID) {
	cp := c.grid.Params(id)
	if c.cfg.DebugAsserts && cp[RHO] <= 0 {
		c.fatalf(id, "non-positive density %g at derivative time", cp[RHO])
	}
	mask := c.masks[id]
	out := c.grid.Derivs(id)

	for _, axis := range [3]Axis{AxisX, AxisY, AxisZ} {
		if !satisfies(mask, c.opMasks.calculateD[axis]) {
			boundaryDerivForAxis(c.boundary, axis)(id, axis, mask, c.opMasks.calculateD[axis]&^mask, out, c.grid)
			continue
		}
		c.calculateDerivativesAxis(id, cp, axis, out)
	}
}

func boundaryDerivForAxis(b BoundaryFuncs, axis Axis) BoundaryDerivFunc {
	switch axis {
	case AxisY:
		return b.DerivY
	case AxisZ:
		return b.DerivZ
	default:
		return b.DerivX
	}
}

// axisNeighbors returns the (-axis, +axis) neighbor ids of id.
func (c *Context) axisNeighbors(id CellID, axis Axis) (CellID, CellID) {
	switch axis {
	case AxisY:
		return c.grid.Neighbor(id, 0, -1, 0), c.grid.Neighbor(id, 0, 1, 0)
	case AxisZ:
		return c.grid.Neighbor(id, 0, 0, -1), c.grid.Neighbor(id, 0, 0, 1)
	default:
		return c.grid.Neighbor(id, -1, 0, 0), c.grid.Neighbor(id, 1, 0, 0)
	}
}

func (c *Context) calculateDerivativesAxis(id CellID, cp *CellParams, axis Axis, out *CellDerivs) {
	left, right := c.axisNeighbors(id, axis)
	lp, rp := c.grid.Params(left), c.grid.Params(right)

	lRho, rRho := lp[RHO], rp[RHO]
	if c.cfg.DebugAsserts && (lRho <= 0 || rRho <= 0) {
		c.fatalf(id, "non-positive neighbor density along axis %d", int(axis))
	}

	lVx, rVx := lp[RHOVX]/lRho, rp[RHOVX]/rRho
	lVy, rVy := lp[RHOVY]/lRho, rp[RHOVY]/rRho
	lVz, rVz := lp[RHOVZ]/lRho, rp[RHOVZ]/rRho
	cVx, cVy, cVz := cp[RHOVX]/cp[RHO], cp[RHOVY]/cp[RHO], cp[RHOVZ]/cp[RHO]

	switch axis {
	case AxisX:
		out[DRHODX] = c.limit(lRho, cp[RHO], rRho)
		out[DVXDX] = c.limit(lVx, cVx, rVx)
		out[DVYDX] = c.limit(lVy, cVy, rVy)
		out[DVZDX] = c.limit(lVz, cVz, rVz)
		out[DBYDX] = c.limit(lp[BY]+lp[BYFACEY0], cp[BY]+cp[BYFACEY0], rp[BY]+rp[BYFACEY0])
		out[DBZDX] = c.limit(lp[BZ]+lp[BZFACEZ0], cp[BZ]+cp[BZFACEZ0], rp[BZ]+rp[BZFACEZ0])
	case AxisY:
		out[DRHODY] = c.limit(lRho, cp[RHO], rRho)
		out[DVXDY] = c.limit(lVx, cVx, rVx)
		out[DVYDY] = c.limit(lVy, cVy, rVy)
		out[DVZDY] = c.limit(lVz, cVz, rVz)
		out[DBXDY] = c.limit(lp[BX]+lp[BXFACEX0], cp[BX]+cp[BXFACEX0], rp[BX]+rp[BXFACEX0])
		out[DBZDY] = c.limit(lp[BZ]+lp[BZFACEZ0], cp[BZ]+cp[BZFACEZ0], rp[BZ]+rp[BZFACEZ0])
	case AxisZ:
		out[DRHODZ] = c.limit(lRho, cp[RHO], rRho)
		out[DVXDZ] = c.limit(lVx, cVx, rVx)
		out[DVYDZ] = c.limit(lVy, cVy, rVy)
		out[DVZDZ] = c.limit(lVz, cVz, rVz)
		out[DBXDZ] = c.limit(lp[BX]+lp[BXFACEX0], cp[BX]+cp[BXFACEX0], rp[BX]+rp[BXFACEX0])
		out[DBYDZ] = c.limit(lp[BY]+lp[BYFACEY0], cp[BY]+cp[BYFACEY0], rp[BY]+rp[BYFACEY0])
	}
}
