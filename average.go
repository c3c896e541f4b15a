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

// calculateVolumeAveragedFields fills BXVOL/BYVOL/BZVOL and
// EXVOL/EYVOL/EZVOL for cell id, grounded on calculateVolumeAveragedFields
// in the original field solver.
func (c *Context) calculateVolumeAveragedFields(id CellID) {
	cp := c.grid.Params(id)
	rc := c.reconstructionCoefficients(id)

	cp[BXVOL] = rc.a0 - cp[BXVOL0]
	cp[BYVOL] = rc.b0 - cp[BYVOL0]
	cp[BZVOL] = rc.c0 - cp[BZVOL0]

	cp[EXVOL] = c.volumeAveragedEdge(id, AxisX)
	cp[EYVOL] = c.volumeAveragedEdge(id, AxisY)
	cp[EZVOL] = c.volumeAveragedEdge(id, AxisZ)

	c.calculateFaceAverages(id, rc)
}

// volumeAveragedEdge is the arithmetic mean of the four edge-E values
// bordering the cell in the plane transverse to axis; 0 if any of the
// three extra neighbors needed to reach those edges is missing.
func (c *Context) volumeAveragedEdge(id CellID, axis Axis) float64 {
	a := next(axis)
	b := next(a)

	nbrA := c.neighborAlong(id, a)
	nbrB := c.neighborAlong(id, b)
	if nbrA == InvalidCellID || nbrB == InvalidCellID {
		return 0
	}
	di, dj, dk := deltaFor(b)
	nbrAB := c.grid.Neighbor(nbrA, di, dj, dk)
	if nbrAB == InvalidCellID {
		return 0
	}

	idx := faceE(axis)
	self := c.grid.Params(id)[idx]
	eA := c.grid.Params(nbrA)[idx]
	eB := c.grid.Params(nbrB)[idx]
	eAB := c.grid.Params(nbrAB)[idx]
	return 0.25 * (self + eA + eB + eAB)
}

// deltaFor returns the (di,dj,dk) unit offset for axis.
func deltaFor(axis Axis) (int, int, int) {
	switch axis {
	case AxisX:
		return 1, 0, 0
	case AxisY:
		return 0, 1, 0
	default:
		return 0, 0, 1
	}
}

// calculateFaceAverages evaluates the reconstruction polynomial of id and
// its +axis neighbor at the shared face and half-sums them, populating
// BXFACEX, BYFACEY and BZFACEZ (spec.md §4.8). The other slots of the
// per-face B triples and the E face triples are not written here.
func (c *Context) calculateFaceAverages(id CellID, rc reconstructionCoeffs) {
	cp := c.grid.Params(id)

	nx := c.neighborAlong(id, AxisX)
	if nx != InvalidCellID {
		nrc := c.reconstructionCoefficients(nx)
		cp[BXFACEX] = 0.5*(faceValueX(rc, 0.5)+faceValueX(nrc, -0.5)) - cp[BXVOL0]
	}
	ny := c.neighborAlong(id, AxisY)
	if ny != InvalidCellID {
		nrc := c.reconstructionCoefficients(ny)
		cp[BYFACEY] = 0.5*(faceValueY(rc, 0.5)+faceValueY(nrc, -0.5)) - cp[BYVOL0]
	}
	nz := c.neighborAlong(id, AxisZ)
	if nz != InvalidCellID {
		nrc := c.reconstructionCoefficients(nz)
		cp[BZFACEZ] = 0.5*(faceValueZ(rc, 0.5)+faceValueZ(nrc, -0.5)) - cp[BZVOL0]
	}
}

func faceValueX(rc reconstructionCoeffs, xi float64) float64 {
	return rc.a0 + rc.aX*xi + rc.aXX*xi*xi
}
func faceValueY(rc reconstructionCoeffs, yi float64) float64 {
	return rc.b0 + rc.bY*yi + rc.bYY*yi*yi
}
func faceValueZ(rc reconstructionCoeffs, zi float64) float64 {
	return rc.c0 + rc.cZ*zi + rc.cZZ*zi*zi
}
