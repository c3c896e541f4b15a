package vlasiator

import "testing"

func TestEdgeFieldCoeffsAreSigns(t *testing.T) {
	for q, row := range edgeFieldCoeffs {
		for _, v := range []float64{row.signA, row.signB, row.signCross} {
			if v != 1 && v != -1 {
				t.Errorf("quadrant %d: coefficient %v is not +-1", q, v)
			}
		}
	}
	// SW and NE are diagonally opposite quadrants; their sign patterns
	// should be exact negations of each other on signA/signB (SW=(-,-),
	// NE=(+,+)), matching the quadrant.signs() sign convention.
	if edgeFieldCoeffs[quadSW].signA != -edgeFieldCoeffs[quadNE].signA {
		t.Errorf("SW/NE signA not opposite: %v vs %v", edgeFieldCoeffs[quadSW].signA, edgeFieldCoeffs[quadNE].signA)
	}
	if edgeFieldCoeffs[quadSW].signB != -edgeFieldCoeffs[quadNE].signB {
		t.Errorf("SW/NE signB not opposite: %v vs %v", edgeFieldCoeffs[quadSW].signB, edgeFieldCoeffs[quadNE].signB)
	}
}

func TestQuadrantSignsMatchLabel(t *testing.T) {
	cases := map[quadrant][2]Sign{
		quadSW: {Minus, Minus},
		quadSE: {Plus, Minus},
		quadNW: {Minus, Plus},
		quadNE: {Plus, Plus},
	}
	for q, want := range cases {
		sa, sb := q.signs()
		if sa != want[0] || sb != want[1] {
			t.Errorf("quadrant %d signs = (%v,%v), want (%v,%v)", q, sa, sb, want[0], want[1])
		}
	}
}

// TestCalculateEdgeFieldUniformFirstOrder checks the first-order HLL
// combination reduces to the common base flux when every quadrant has the
// same field (so all four Ê_q are identical and the diffusive jump terms
// vanish).
func TestCalculateEdgeFieldUniformFirstOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SecondOrder = false
	cfg = cfg.resolved()
	c := &Context{cfg: cfg, log: newLogger()}

	var cp CellParams
	cp[BY] = 2
	cp[BZ] = 1
	cp[RHO] = 1
	cp[RHOVY] = 0.3 // Vy = 0.3
	cp[RHOVZ] = -0.2
	var cd CellDerivs

	in := edgeQuadrantInputs{cp: &cp, cd: &cd, nbrCp: &cp, nbrCd: &cd}
	inputs := [4]edgeQuadrantInputs{quadSW: in, quadSE: in, quadNW: in, quadNE: in}

	got := c.calculateEdgeField(AxisX, inputs)
	want := cp[BY]*cp.velocity(AxisZ) - cp[BZ]*cp.velocity(AxisY)
	const tol = 1e-9
	if d := got - want; d > tol || d < -tol {
		t.Errorf("calculateEdgeField uniform = %v, want %v", got, want)
	}
}
