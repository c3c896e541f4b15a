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

// epsilon prevents division by zero in the HLL combination and the
// diffusive-jump terms (spec.md §4.5 step 5).
const epsilon = 1e-30

// quadrant names the four cells bordering an edge in the plane transverse
// to it, in (a,b) sign order: SW=(-,-), SE=(+,-), NW=(-,+), NE=(+,+).
type quadrant int

const (
	quadSW quadrant = iota
	quadSE
	quadNW
	quadNE
)

var quadrants = [4]quadrant{quadSW, quadSE, quadNW, quadNE}

func (q quadrant) signs() (sa, sb Sign) {
	switch q {
	case quadSE:
		return Plus, Minus
	case quadNW:
		return Minus, Plus
	case quadNE:
		return Plus, Plus
	default:
		return Minus, Minus
	}
}

func quadrantFromSigns(sa, sb Sign) quadrant {
	switch {
	case sa == Plus && sb == Minus:
		return quadSE
	case sa == Minus && sb == Plus:
		return quadNW
	case sa == Plus && sb == Plus:
		return quadNE
	default:
		return quadSW
	}
}

// baSource is the quadrant whose own a-face B value (By, for an x edge)
// this quadrant shares: londrillo_delzanna.cpp reuses By_S between the two
// cells at b=self (SW,SE) and By_N between the two at b=-1 (NW,NE), so the
// source is this quadrant with sa forced to Minus.
func (q quadrant) baSource() quadrant {
	_, sb := q.signs()
	return quadrantFromSigns(Minus, sb)
}

// bbSource mirrors baSource for the b-face B value (Bz, for an x edge):
// shared between the two cells at a=self (SW,NW) and the two at a=-1
// (SE,NE), so the source is this quadrant with sb forced to Minus.
func (q quadrant) bbSource() quadrant {
	sa, _ := q.signs()
	return quadrantFromSigns(sa, Minus)
}

// edgeFieldCoeffs is the sign table the design notes ask for: the twelve
// second-order correction terms differ from quadrant to quadrant only in
// sign, so the four quadrants' corrections are generated from one formula
// parameterized by (signA, signB, signCross) instead of four duplicated
// straight-line expressions. Row order matches quadrants above.
var edgeFieldCoeffs = [4]struct{ signA, signB, signCross float64 }{
	quadSW: {-1, -1, +1},
	quadSE: {+1, -1, -1},
	quadNW: {-1, +1, -1},
	quadNE: {+1, +1, +1},
}

// edgeQuadrantInputs bundles the per-quadrant cell data calculateEdgeField
// needs: its own params/derivs, and the +edgeAxis neighbor's params/derivs
// used by the wave-speed estimator's bilinear expansion.
type edgeQuadrantInputs struct {
	cp, nbrCp *CellParams
	cd, nbrCd *CellDerivs
}

// calculateEdgeField computes the edge-averaged E component on axis
// edgeAxis, per spec.md §4.5, and returns it. inputs[quadSW] must be the
// local cell (the caller writes the result to the local cell's E slot);
// the other three quadrants are the neighbors sharing that edge in the
// transverse (a,b) plane. Each input also carries its cell's +edgeAxis
// neighbor for the wave-speed estimator.
func (c *Context) calculateEdgeField(edgeAxis Axis, inputs [4]edgeQuadrantInputs) float64 {
	a := next(edgeAxis)
	b := next(a)

	var flux [4]float64
	var speed [4]float64

	for _, q := range quadrants {
		in := inputs[q]
		sa, sb := q.signs()

		// Ba (By, for an x edge) is the same value for the two quadrants
		// at the same b position, taken from the one at a=self (sa=Minus);
		// Bb (Bz) mirrors this, taken from the one at b=self (sb=Minus).
		Ba := inputs[q.baSource()].cp.velocityFaceB(a)
		Bb := inputs[q.bbSource()].cp.velocityFaceB(b)
		Va := in.cp.velocity(a)
		Vb := in.cp.velocity(b)

		e := Ba*Vb - Bb*Va

		if c.cfg.SecondOrder {
			coef := edgeFieldCoeffs[q]
			dBadb := in.cd[bDeriv(a, b)]
			dBade := in.cd[bDeriv(a, edgeAxis)]
			dBbda := in.cd[bDeriv(b, a)]
			dBbde := in.cd[bDeriv(b, edgeAxis)]

			dVbDa := in.cd.velocityDeriv(b, a)
			dVbDb := in.cd.velocityDeriv(b, b)
			dVaDa := in.cd.velocityDeriv(a, a)
			dVaDb := in.cd.velocityDeriv(a, b)
			dVbDe := in.cd.velocityDeriv(b, edgeAxis)
			dVaDe := in.cd.velocityDeriv(a, edgeAxis)

			e += coef.signA * 0.5 * (Ba - 0.5*coef.signB*dBadb) * (-dVbDa - dVbDb)
			e += -coef.signB * 0.5 * dBadb * Vb
			e += coef.signCross / 6 * dBade * dVbDe

			e += -coef.signB * 0.5 * (Bb - 0.5*coef.signA*dBbda) * (-dVaDb - dVaDa)
			e += coef.signA * 0.5 * dBbda * Va
			e += -coef.signCross / 6 * dBbde * dVaDe
		}

		flux[q] = e
		speed[q] = c.fastMagnetosonicSpeed(edgeAxis, in.cp, in.nbrCp, in.cd, in.nbrCd, sa, sb)
	}

	self := inputs[quadSW].cp
	selfDerivs := inputs[quadSW].cd

	var aPos, aNeg, bPos, bNeg float64
	for _, q := range quadrants {
		Vq := inputs[q].cp
		va := Vq.velocity(a)
		vb := Vq.velocity(b)
		aPos = math.Max(aPos, math.Max(0, va+speed[q]))
		aNeg = math.Max(aNeg, math.Max(0, -va+speed[q]))
		bPos = math.Max(bPos, math.Max(0, vb+speed[q]))
		bNeg = math.Max(bNeg, math.Max(0, -vb+speed[q]))
	}

	hll := (bPos*aPos*flux[quadNE] + bPos*aNeg*flux[quadSE] +
		bNeg*aPos*flux[quadNW] + bNeg*aNeg*flux[quadSW]) /
		((bPos+bNeg)*(aPos+aNeg) + epsilon)

	// The Ba (By) jump differs self against its -b neighbor (NW); the Bb
	// (Bz) jump differs self against its -a neighbor (SE).
	var deltaBa, deltaBb float64
	if c.cfg.SecondOrder {
		deltaBa = (self.velocityFaceB(a) - 0.5*selfDerivs[bDeriv(a, b)]) -
			(inputs[quadNW].cp.velocityFaceB(a) + 0.5*inputs[quadNW].cd[bDeriv(a, b)])
		deltaBb = (self.velocityFaceB(b) - 0.5*selfDerivs[bDeriv(b, a)]) -
			(inputs[quadSE].cp.velocityFaceB(b) + 0.5*inputs[quadSE].cd[bDeriv(b, a)])
	} else {
		deltaBa = self.velocityFaceB(a) - inputs[quadNW].cp.velocityFaceB(a)
		deltaBb = self.velocityFaceB(b) - inputs[quadSE].cp.velocityFaceB(b)
	}

	// The Ba jump is weighted by the b-direction wave speeds and the Bb
	// jump by the a-direction speeds, with opposite relative sign.
	jumpA := (bPos * bNeg) / (bPos + bNeg + epsilon) * deltaBa
	jumpB := (aPos * aNeg) / (aPos + aNeg + epsilon) * deltaBb

	result := hll - jumpA + jumpB
	if c.cfg.DebugAsserts && !isFinite(result) {
		c.fatalf(InvalidCellID, "non-finite edge field on axis %d", int(edgeAxis))
	}
	return result
}

// velocity returns (rhoV)/rho for axis, the reconstruction spec.md §4.3
// requires (V from momentum/density, never a stored primitive velocity).
func (p *CellParams) velocity(axis Axis) float64 {
	switch axis {
	case AxisX:
		return p[RHOVX] / p[RHO]
	case AxisY:
		return p[RHOVY] / p[RHO]
	default:
		return p[RHOVZ] / p[RHO]
	}
}

// velocityFaceB returns the face-augmented transverse B component on the
// given axis, i.e. perturbation plus background on that axis's face.
func (p *CellParams) velocityFaceB(axis Axis) float64 {
	b, b0 := faceB(axis)
	return p[b] + p[b0]
}

func (d *CellDerivs) velocityDeriv(component, wrt Axis) float64 {
	switch component {
	case AxisX:
		switch wrt {
		case AxisX:
			return d[DVXDX]
		case AxisY:
			return d[DVXDY]
		default:
			return d[DVXDZ]
		}
	case AxisY:
		switch wrt {
		case AxisX:
			return d[DVYDX]
		case AxisY:
			return d[DVYDY]
		default:
			return d[DVYDZ]
		}
	default:
		switch wrt {
		case AxisX:
			return d[DVZDX]
		case AxisY:
			return d[DVZDY]
		default:
			return d[DVZDZ]
		}
	}
}
