package vlasiator

import (
	"math"
	"testing"
)

func TestFastMagnetosonicSpeedUniformField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mu0 = 1
	cfg.ParticleMass = 1
	c := &Context{cfg: cfg.resolved(), log: newLogger()}

	var cp, nbr CellParams
	cp[BX], nbr[BX] = 2, 2
	cp[BY], nbr[BY] = 1, 1
	cp[BZ], nbr[BZ] = 0.5, 0.5
	cp[RHO], nbr[RHO] = 1, 1

	var cd, nd CellDerivs // all derivatives zero: field is perfectly uniform

	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, sa := range []Sign{Minus, Plus} {
			for _, sb := range []Sign{Minus, Plus} {
				got := c.fastMagnetosonicSpeed(axis, &cp, &nbr, &cd, &nd, sa, sb)
				want := math.Sqrt((4 + 1 + 0.25) / 1)
				if math.Abs(got-want) > 1e-12 {
					t.Errorf("axis=%d sa=%d sb=%d: speed=%v, want %v", axis, sa, sb, got, want)
				}
			}
		}
	}
}

func TestFastMagnetosonicSpeedNonNegative(t *testing.T) {
	cfg := DefaultConfig().resolved()
	c := &Context{cfg: cfg, log: newLogger()}

	var cp, nbr CellParams
	cp[RHO], nbr[RHO] = 1, 1
	var cd, nd CellDerivs
	cd[DBXDY] = 10
	cd[DBXDZ] = -10

	got := c.fastMagnetosonicSpeed(AxisX, &cp, &nbr, &cd, &nd, Minus, Plus)
	if got < 0 || math.IsNaN(got) {
		t.Errorf("speed = %v, want a finite non-negative value", got)
	}
}
