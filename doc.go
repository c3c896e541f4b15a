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

// Package vlasiator implements the upwind constrained-transport (CT) field
// solver described by Londrillo and Del Zanna (2004), with optional
// Balsara (2009) second-order divergence-free corrections.
//
// The solver advances a face-staggered magnetic field B and an
// edge-staggered electric field E on a three-dimensional structured
// cartesian mesh supplied by an external Grid, so that the discrete
// divergence of B stays zero to machine precision. It does not own the
// mesh, halo exchange, or the surrounding fluid/kinetic solver: those are
// external collaborators reached through the Grid and Exchange
// interfaces in grid.go.
package vlasiator
