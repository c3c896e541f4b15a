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

// Grid is the external distributed-grid collaborator (§6 of the design).
// It owns cell enumeration, neighbor lookup and geometry; the solver never
// creates, destroys or moves cells, and never holds a pointer graph across
// cells — every cross-cell read goes back through Neighbor.
type Grid interface {
	// LocalCells returns the ids of cells whose full 3x3x3 stencil is
	// resolvable without a remote neighbor (the "inner" subset of C9).
	LocalCells() []CellID

	// BoundaryCells returns the ids of cells that have at least one
	// remote neighbor (the "boundary" subset of C9).
	BoundaryCells() []CellID

	// Neighbor returns the id of the cell offset by (di,dj,dk) from id,
	// each in {-1,0,1}, or InvalidCellID if no such neighbor exists.
	Neighbor(id CellID, di, dj, dk int) CellID

	// Params and Derivs return the mutable per-cell records for id. The
	// solver reads and writes through these pointers; it never retains
	// them beyond the call that obtained them.
	Params(id CellID) *CellParams
	Derivs(id CellID) *CellDerivs
}

// TransferType selects which per-cell fields a halo exchange moves.
type TransferType int

const (
	// TransferCellParams moves B, rho, rhoV ahead of the derivative pass.
	TransferCellParams TransferType = iota
	// TransferDerivatives moves the derivative arrays ahead of edge E.
	TransferDerivatives
	// TransferElectricField moves edge E ahead of averaging/propagation.
	TransferElectricField
)

// Exchange is the halo-exchange collaborator, split into non-blocking
// start/wait phases so the driver (C9) can overlap it with inner-cell
// compute. A Grid implementation used only for single-partition testing
// may implement every method as a no-op.
type Exchange interface {
	// Start begins a non-blocking exchange of the given transfer type.
	Start(t TransferType)
	// WaitReceives blocks until all incoming data for the most recent
	// Start has arrived.
	WaitReceives()
	// WaitSends blocks until all outgoing data for the most recent Start
	// has been handed off.
	WaitSends()
}
