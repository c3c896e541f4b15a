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

import (
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Context is the solver's entry point (§6): every exported operation here
// is a method so the module-level state the original keeps as process
// globals (operation masks, neighbor-mask table, the "fields are
// propagated" flag) lives as fields instead.
type Context struct {
	grid     Grid
	exchange Exchange
	cfg      Config
	boundary BoundaryFuncs
	log      *logrus.Logger

	opMasks operationMasks
	masks   map[CellID]uint32

	propagate bool
	steps     int
}

// CellOp is the per-cell unit of work a pass runs, mirroring the teacher's
// CellManipulator functional type (run.go's Calculations(calculators
// ...CellManipulator)): a plain function closed over whatever per-pass
// state it needs, run once per cell by the worker pool.
type CellOp func(id CellID)

// NewContext constructs a solver context. g and x are the external grid
// and halo-exchange collaborators (§6); cfg and boundary may be zero
// values. A zero cfg gets the MC limiter, the default Mu0 and unit
// particle mass filled in, but SecondOrder and DebugAsserts stay false;
// a zero boundary gets no-op functors.
func NewContext(g Grid, x Exchange, cfg Config, boundary BoundaryFuncs) *Context {
	c := &Context{
		grid:      g,
		exchange:  x,
		cfg:       cfg.resolved(),
		boundary:  boundary.withDefaults(),
		log:       newLogger(),
		opMasks:   buildOperationMasks(),
		masks:     make(map[CellID]uint32),
		propagate: false,
	}
	return c
}

// limit dispatches to the configured limiter (C1).
func (c *Context) limit(l, cent, r float64) float64 {
	v := limit(c.cfg.limiter, l, cent, r)
	if c.cfg.DebugAsserts && !isFinite(v) {
		c.fatalf(InvalidCellID, "non-finite limiter output for (%g,%g,%g)", l, cent, r)
	}
	return v
}

// Initialize builds the neighbor-mask table, computes initial derivatives
// and edge-E, exchanges E, and populates volume/face averages (§6).
// propagateFields controls whether subsequent PropagateFields calls are a
// no-op, matching the original entry point's boolean parameter.
func (c *Context) Initialize(propagateFields bool) error {
	c.propagate = propagateFields
	c.rebuildNeighborMasks()

	c.runPass(TransferCellParams, func(id CellID) { c.calculateDerivatives(id) })
	c.runPass(TransferDerivatives, func(id CellID) {
		cp := c.grid.Params(id)
		cp[EX] = c.edgeFieldAt(id, AxisX)
		cp[EY] = c.edgeFieldAt(id, AxisY)
		cp[EZ] = c.edgeFieldAt(id, AxisZ)
	})
	c.exchangeOnly(TransferElectricField)

	for _, id := range c.allCells() {
		c.calculateVolumeAveragedFields(id)
	}
	return nil
}

// InitializeAfterRebalance rebuilds the neighbor-mask table and exchanges
// E, per §6 — cheaper than a full Initialize because cell parameters
// survive a load balance unchanged.
func (c *Context) InitializeAfterRebalance(propagateFields bool) error {
	c.propagate = propagateFields
	c.rebuildNeighborMasks()
	c.exchangeOnly(TransferElectricField)
	return nil
}

// PropagateFields runs one full time-step (§2's data flow): propagate B,
// exchange B/rho/rhoV, derivatives inner/wait/boundary, exchange
// derivatives, edge-E inner/wait/boundary using C4, exchange E, then
// volume/face averages. A no-op when Initialize was called with
// propagateFields=false.
func (c *Context) PropagateFields(dt float64) error {
	if !c.propagate {
		return nil
	}
	start := time.Now()

	c.parallelFor(c.allCells(), func(id CellID) {
		c.propagateFace(id, AxisX, dt)
		c.propagateFace(id, AxisY, dt)
		c.propagateFace(id, AxisZ, dt)
	})

	c.runPass(TransferCellParams, func(id CellID) { c.calculateDerivatives(id) })
	c.runPass(TransferDerivatives, func(id CellID) {
		cp := c.grid.Params(id)
		cp[EX] = c.edgeFieldAt(id, AxisX)
		cp[EY] = c.edgeFieldAt(id, AxisY)
		cp[EZ] = c.edgeFieldAt(id, AxisZ)
	})
	c.exchangeOnly(TransferElectricField)

	for _, id := range c.allCells() {
		c.calculateVolumeAveragedFields(id)
	}

	c.steps++
	c.logStep(c.steps, dt, start)
	return nil
}

// CalculateVolumeAveragedFields recomputes volume/face averages on demand,
// e.g. for a visualization output pass (§6).
func (c *Context) CalculateVolumeAveragedFields() {
	for _, id := range c.allCells() {
		c.calculateVolumeAveragedFields(id)
	}
}

// Finalize releases solver-owned state (§6).
func (c *Context) Finalize() {
	c.masks = nil
}

func (c *Context) allCells() []CellID {
	return append(append([]CellID{}, c.grid.LocalCells()...), c.grid.BoundaryCells()...)
}

func (c *Context) rebuildNeighborMasks() {
	masks := make(map[CellID]uint32)
	for _, id := range c.allCells() {
		masks[id] = buildNeighborMask(c.grid, id)
	}
	c.masks = masks
}

// edgeFieldAt gathers the four-quadrant inputs for edge axis at id and
// calls calculateEdgeField, or returns 0 when the operation mask is not
// satisfied (there is no boundary functor for edge E).
func (c *Context) edgeFieldAt(id CellID, axis Axis) float64 {
	mask := c.masks[id]
	op := c.opMasks.calculateE[axis]
	if !satisfies(mask, op) {
		return 0
	}

	a := next(axis)
	b := next(a)

	var inputs [4]edgeQuadrantInputs
	for _, q := range quadrants {
		sa, sb := q.signs()
		inputs[q] = c.quadrantInputs(id, axis, a, b, sa, sb)
	}
	return c.calculateEdgeField(axis, inputs)
}

// quadrantInputs resolves the cell bordering the edge on quadrant (sa,sb):
// the four cells sharing an edge are self and its -a, -b and -a,-b
// neighbors (londrillo_delzanna.cpp's calculateEdgeElectricFieldX reads
// cp_SW/cp_SE/cp_NW/cp_NE this way), so the quadrant's sign selects which
// side of self to step to, not a literal coordinate offset: Plus steps to
// the -1 neighbor on that axis, Minus stays at self. It also returns that
// cell's +edgeAxis neighbor (used by the wave-speed estimator's bilinear
// expansion).
func (c *Context) quadrantInputs(id CellID, edgeAxis, a, b Axis, sa, sb Sign) edgeQuadrantInputs {
	delta := [3]int{}
	delta[a] = quadrantStep(sa)
	delta[b] = quadrantStep(sb)
	q := c.grid.Neighbor(id, delta[AxisX], delta[AxisY], delta[AxisZ])
	if q == InvalidCellID {
		q = id
	}
	qNbr := c.neighborAlong(q, edgeAxis)
	return edgeQuadrantInputs{
		cp: c.grid.Params(q), cd: c.grid.Derivs(q),
		nbrCp: c.grid.Params(qNbr), nbrCd: c.grid.Derivs(qNbr),
	}
}

// quadrantStep turns a quadrant sign into the actual neighbor offset: the
// edge's four bordering cells are all at offset 0 or -1 on each transverse
// axis, never +1.
func quadrantStep(s Sign) int {
	if s == Plus {
		return -1
	}
	return 0
}

// runPass executes op over every cell as a two-phase inner/boundary pass
// overlapping the given halo exchange with inner-cell compute (C9):
// start the exchange, compute the inner subset concurrently, wait for
// receives, compute the boundary subset, wait for sends.
func (c *Context) runPass(t TransferType, op CellOp) {
	c.exchange.Start(t)
	c.parallelFor(c.grid.LocalCells(), op)
	c.exchange.WaitReceives()
	c.parallelFor(c.grid.BoundaryCells(), op)
	c.exchange.WaitSends()
}

func (c *Context) exchangeOnly(t TransferType) {
	c.exchange.Start(t)
	c.exchange.WaitReceives()
	c.exchange.WaitSends()
}

// parallelFor runs op over cells using a fixed worker pool sized to
// runtime.GOMAXPROCS(0), each worker striding over the slice — the same
// idiom as the teacher's run.go Calculations() and framework.go's
// neighbor-linking goroutine pool.
func (c *Context) parallelFor(cells []CellID, op CellOp) {
	nprocs := runtime.GOMAXPROCS(0)
	if nprocs > len(cells) {
		nprocs = len(cells)
	}
	if nprocs == 0 {
		return
	}
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			defer wg.Done()
			for ii := pp; ii < len(cells); ii += nprocs {
				op(cells[ii])
			}
		}(pp)
	}
	wg.Wait()
}
