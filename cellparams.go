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

// CellID is the opaque 64-bit identifier a Grid uses to name a cell.
type CellID uint64

// InvalidCellID is the sentinel meaning "no such neighbor".
const InvalidCellID CellID = 0

// Indices into a CellParams array. Only cross-direction derivatives of B
// are stored in CellDerivs; the same-direction derivative of a face-normal
// B component is never taken, since it is fixed by the divergence-free
// constraint (I4).
const (
	DX CellParamIndex = iota
	DY
	DZ

	RHO
	RHOVX
	RHOVY
	RHOVZ

	BX
	BY
	BZ

	// Face-averaged background field on the same faces as BX/BY/BZ. Kept
	// separate so the solver only ever evolves the perturbation field.
	BXFACEX0
	BYFACEY0
	BZFACEZ0

	// Edge-averaged electric field on the three edges meeting the cell's
	// -x,-y,-z corner.
	EX
	EY
	EZ

	BXVOL
	BYVOL
	BZVOL
	EXVOL
	EYVOL
	EZVOL

	BXVOL0
	BYVOL0
	BZVOL0

	// Reconstructed face-centered B, one triple per face.
	BXFACEX
	BXFACEY
	BXFACEZ
	BYFACEX
	BYFACEY
	BYFACEZ
	BZFACEX
	BZFACEY
	BZFACEZ

	// Reconstructed face-centered E, one triple per face.
	EXFACEX
	EXFACEY
	EXFACEZ
	EYFACEX
	EYFACEY
	EYFACEZ
	EZFACEX
	EZFACEY
	EZFACEZ

	nCellParams
)

// CellParamIndex names a slot in a CellParams array.
type CellParamIndex int

// CellParams holds the per-cell scalar field values the solver reads and
// writes. It never allocates after construction: it is a fixed-size array,
// not a slice, so passing it by value copies the whole record (used by
// boundary functors to build a substitute without aliasing the original).
type CellParams [nCellParams]float64

// Indices into a CellDerivs array.
const (
	DRHODX CellDerivIndex = iota
	DRHODY
	DRHODZ

	DBXDY
	DBXDZ
	DBYDX
	DBYDZ
	DBZDX
	DBZDY

	DVXDX
	DVXDY
	DVXDZ
	DVYDX
	DVYDY
	DVYDZ
	DVZDX
	DVZDY
	DVZDZ

	nCellDerivs
)

// CellDerivIndex names a slot in a CellDerivs array.
type CellDerivIndex int

// CellDerivs holds the per-cell limited-slope values C3 computes.
type CellDerivs [nCellDerivs]float64

// paramFieldNames is used by Value for diagnostic/output lookups by name,
// the same reflection-based accessor idiom the teacher's getValue/toArray
// helpers use for generic output-variable selection.
var paramFieldNames = map[string]CellParamIndex{
	"Bx": BX, "By": BY, "Bz": BZ,
	"Rho": RHO, "RhoVx": RHOVX, "RhoVy": RHOVY, "RhoVz": RHOVZ,
	"Ex": EX, "Ey": EY, "Ez": EZ,
	"BxVol": BXVOL, "ByVol": BYVOL, "BzVol": BZVOL,
	"ExVol": EXVOL, "EyVol": EYVOL, "EzVol": EZVOL,
}

// Value looks up a named cell parameter, the way the teacher's
// InMAPdata.getValue resolves an output variable name at runtime instead
// of requiring a compile-time switch at every call site. Used by
// demogrid.Grid.Field to let a caller select an arbitrary output variable
// by name.
func (p *CellParams) Value(name string) (float64, bool) {
	idx, ok := paramFieldNames[name]
	if !ok {
		return 0, false
	}
	return p[idx], true
}
