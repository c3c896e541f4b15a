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

import "math"

// next gives the cyclic successor axis: x->y->z->x.
func next(a Axis) Axis {
	return (a + 1) % 3
}

// faceB returns the (perturbation, background) CellParamIndex pair for the
// face-normal B component on axis a's face.
func faceB(a Axis) (CellParamIndex, CellParamIndex) {
	switch a {
	case AxisX:
		return BX, BXFACEX0
	case AxisY:
		return BY, BYFACEY0
	default:
		return BZ, BZFACEZ0
	}
}

// bDeriv returns the stored cross-derivative of the B component on axis
// `component`'s face, taken with respect to `wrt`. Same-direction
// derivatives are never stored (I4's corollary) and this is never called
// with component == wrt.
func bDeriv(component, wrt Axis) CellDerivIndex {
	switch component {
	case AxisX:
		if wrt == AxisY {
			return DBXDY
		}
		return DBXDZ
	case AxisY:
		if wrt == AxisX {
			return DBYDX
		}
		return DBYDZ
	default:
		if wrt == AxisX {
			return DBZDX
		}
		return DBZDY
	}
}

func rhoDeriv(axis Axis) CellDerivIndex {
	switch axis {
	case AxisX:
		return DRHODX
	case AxisY:
		return DRHODY
	default:
		return DRHODZ
	}
}

// fastMagnetosonicSpeed estimates the fast magnetosonic speed on one
// quadrant of the edge running along edgeAxis, per spec.md §4.4. a and b
// are the two transverse axes in cyclic order (a = next(edgeAxis), b =
// next(a)); sa, sb are the quadrant's signs along those axes. nbrCp/nbrCd
// are the parameters/derivatives of the cell on the +edgeAxis side of the
// face straddled by the edge-aligned B component.
func (c *Context) fastMagnetosonicSpeed(edgeAxis Axis, cp, nbrCp *CellParams, cd, nbrCd *CellDerivs, sa, sb Sign) float64 {
	a := next(edgeAxis)
	b := next(a)

	beIdx, be0Idx := faceB(edgeAxis)
	beSelf := cp[beIdx] + cp[be0Idx]
	beNbr := nbrCp[beIdx] + nbrCp[be0Idx]

	dBeDa := bDeriv(edgeAxis, a)
	dBeDb := bDeriv(edgeAxis, b)

	a0 := 0.5 * (beNbr + beSelf)
	ax := beNbr - beSelf
	aa := nbrCd[dBeDa] + cd[dBeDa]
	axa := nbrCd[dBeDa] - cd[dBeDa]
	ab := nbrCd[dBeDb] + cd[dBeDb]
	axb := nbrCd[dBeDb] - cd[dBeDb]

	be2term := a0 + float64(sa)/2*aa + float64(sb)/2*ab
	bePerpTerm := ax + float64(sa)/2*axa + float64(sb)/2*axb
	be2 := be2term*be2term + bePerpTerm*bePerpTerm/12

	baIdx, _ := faceB(a)
	bbIdx, _ := faceB(b)
	ba := cp[baIdx] + float64(sb)/2*cd[bDeriv(a, b)]
	bb := cp[bbIdx] + float64(sa)/2*cd[bDeriv(b, a)]
	ba2 := ba*ba + cd[bDeriv(a, edgeAxis)]*cd[bDeriv(a, edgeAxis)]/12
	bb2 := bb*bb + cd[bDeriv(b, edgeAxis)]*cd[bDeriv(b, edgeAxis)]/12

	rho := c.cfg.ParticleMass * (cp[RHO] + float64(sa)/2*cd[rhoDeriv(a)] + float64(sb)/2*cd[rhoDeriv(b)])
	if c.cfg.DebugAsserts && rho <= 0 {
		c.fatalf(InvalidCellID, "non-positive reconstructed density %g in wave-speed estimator", rho)
	}

	speed2 := (be2 + ba2 + bb2) / (c.cfg.Mu0 * rho)
	if speed2 < 0 {
		speed2 = 0
	}
	return math.Sqrt(speed2)
}
