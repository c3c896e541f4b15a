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

// reconstructionCoeffs holds the 21 divergence-free polynomial
// coefficients C7 builds for B inside a cell, indexed the way spec.md §4.7
// names them: {a_0,a_x,a_y,a_z,a_xx,a_xy,a_xz}, {b_0,b_x,b_y,b_z,b_yx,b_yy,
// b_yz}, {c_0,c_x,c_y,c_z,c_zx,c_zy,c_zz}.
type reconstructionCoeffs struct {
	a0, aX, aY, aZ, aXX, aXY, aXZ float64
	b0, bX, bY, bZ, bYX, bYY, bYZ float64
	c0, cX, cY, cZ, cZX, cZY, cZZ float64
}

// zeroDerivs and zeroParams stand in for a missing neighbor: spec.md §4.7
// says a missing neighbor contributes zero to every coefficient.
var zeroParams CellParams
var zeroDerivs CellDerivs

// reconstructionCoefficients builds the coefficients for cell id, given its
// +x, +y and +z neighbors (zero-filled when missing). Grounded on
// reconstructionCoefficients in the original field solver.
func (c *Context) reconstructionCoefficients(id CellID) reconstructionCoeffs {
	self := c.grid.Params(id)
	selfD := c.grid.Derivs(id)

	var rc reconstructionCoeffs

	nx := c.neighborAlong(id, AxisX)
	np, nd := &zeroParams, &zeroDerivs
	if nx != InvalidCellID {
		np, nd = c.grid.Params(nx), c.grid.Derivs(nx)
	}
	bx, bx0 := faceB(AxisX)
	selfBx := self[bx] + self[bx0]
	nbrBx := np[bx] + np[bx0]

	ny := c.neighborAlong(id, AxisY)
	n2p, n2d := &zeroParams, &zeroDerivs
	if ny != InvalidCellID {
		n2p, n2d = c.grid.Params(ny), c.grid.Derivs(ny)
	}
	by, by0 := faceB(AxisY)
	selfBy := self[by] + self[by0]
	nbrBy := n2p[by] + n2p[by0]

	nz := c.neighborAlong(id, AxisZ)
	n3p, n3d := &zeroParams, &zeroDerivs
	if nz != InvalidCellID {
		n3p, n3d = c.grid.Params(nz), c.grid.Derivs(nz)
	}
	bz, bz0 := faceB(AxisZ)
	selfBz := self[bz] + self[bz0]
	nbrBz := n3p[bz] + n3p[bz0]

	if c.cfg.SecondOrder {
		rc.aXY = nd[DBXDY] - selfD[DBXDY]
		rc.aXZ = nd[DBXDZ] - selfD[DBXDZ]
		rc.aX = nbrBx - selfBx
		rc.aY = 0.5 * (nd[DBXDY] + selfD[DBXDY])
		rc.aZ = 0.5 * (nd[DBXDZ] + selfD[DBXDZ])

		rc.bYX = n2d[DBYDX] - selfD[DBYDX]
		rc.bYZ = n2d[DBYDZ] - selfD[DBYDZ]
		rc.bX = 0.5 * (n2d[DBYDX] + selfD[DBYDX])
		rc.bY = nbrBy - selfBy
		rc.bZ = 0.5 * (n2d[DBYDZ] + selfD[DBYDZ])

		rc.cZX = n3d[DBZDX] - selfD[DBZDX]
		rc.cZY = n3d[DBZDY] - selfD[DBZDY]
		rc.cX = 0.5 * (n3d[DBZDX] + selfD[DBZDX])
		rc.cY = 0.5 * (n3d[DBZDY] + selfD[DBZDY])
		rc.cZ = nbrBz - selfBz

		// Divergence-free constraint I4.
		rc.aXX = -0.5 * (rc.bYX + rc.cZX)
		rc.bYY = -0.5 * (rc.aXY + rc.cZY)
		rc.cZZ = -0.5 * (rc.aXZ + rc.bYZ)
	}

	rc.a0 = 0.5*(nbrBx+selfBx) - rc.aXX/6
	rc.b0 = 0.5*(nbrBy+selfBy) - rc.bYY/6
	rc.c0 = 0.5*(nbrBz+selfBz) - rc.cZZ/6

	return rc
}
