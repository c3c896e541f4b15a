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

// Limiter is a slope limiter selected by Config.Limiter.
type Limiter int

const (
	// LimiterMC is the monotonized-central limiter, the default.
	LimiterMC Limiter = iota
	LimiterMinmod
	LimiterVanLeer
)

func parseLimiter(name string) (Limiter, bool) {
	switch name {
	case "", "mc":
		return LimiterMC, true
	case "minmod":
		return LimiterMinmod, true
	case "vanleer":
		return LimiterVanLeer, true
	default:
		return 0, false
	}
}

// limit returns the limited slope across (left, cent, rght) using the
// selected limiter. The result is 0 whenever (rght-cent) and (cent-left)
// have opposite sign; otherwise it is the selected limiter of the two
// one-sided differences. The result is always finite for finite inputs.
func limit(l Limiter, left, cent, rght float64) float64 {
	d1 := cent - left
	d2 := rght - cent
	if d1*d2 <= 0 {
		return 0
	}
	switch l {
	case LimiterMinmod:
		return minmod(d1, d2)
	case LimiterVanLeer:
		return vanLeer(d1, d2)
	default:
		return mcLimiter(d1, d2)
	}
}

func minmod(d1, d2 float64) float64 {
	if math.Abs(d1) < math.Abs(d2) {
		return d1
	}
	return d2
}

func vanLeer(d1, d2 float64) float64 {
	return 2 * d1 * d2 / (d1 + d2)
}

// mcLimiter is the monotonized-central limiter:
// sign(d1+d2) * min(|d1+d2|/2, 2|d1|, 2|d2|).
func mcLimiter(d1, d2 float64) float64 {
	sum := d1 + d2
	abs1, abs2 := math.Abs(d1), math.Abs(d2)
	central := math.Abs(sum) / 2
	bound := 2 * math.Min(abs1, abs2)
	m := math.Min(central, bound)
	if sum < 0 {
		m = -m
	}
	return m
}

// isFinite reports whether v is neither NaN nor infinite. Callers use it
// for their debug assertions and report failures through fatalf (see
// errors.go) with their own cell/field context.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
