/*
 * doc.go, part of neofaunus.
 *
 * Copyright 2018 The neofaunus developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package faunus provides the particle container for Metropolis Monte
Carlo simulation of molecular systems. It holds the particle store with
its anisotropic particle properties, the elastic group views
partitioning it into molecule instances, the atom and molecule type
registries loaded from JSON input, random insertion of new molecules
and synchronization of a trial container against an accepted one
through change records.

Geometry (periodic boundaries, minimum-image distances, cell volumes)
lives in the geometry subpackage. Sampling utilities live in the
analysis subpackage.

All lengths are in angstrom, energies in units of kT and charges in
units of the elementary charge.
*/
package faunus
