/*
 * group.go, part of neofaunus.
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

package faunus

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rc83/neofaunus/geometry"
)

//Group is one molecule instance: an elastic window of particles plus
//molecular metadata. Molecular groups keep a cached mass center; atomic
//groups (salts etc.) have no meaningful mass center and their CM is
//never consulted.
type Group struct {
	ElasticRange
	//MolID is the molecule type id in the molecule table.
	MolID int
	//Atomic is true for atomic groups.
	Atomic bool
	//CM is the cached mass center of molecular groups.
	CM geometry.Vec
}

//NewGroup returns a fully active group over [beg,trueEnd) of the slice
//pointed to by p.
func NewGroup(p *[]Particle, beg, trueEnd int) *Group {
	g := &Group{}
	g.ElasticRange = *NewElasticRange(p, beg, trueEnd)
	return g
}

//Assign copies the other group's metadata and active window onto g.
//Both groups must have the same capacity; a mismatch is a programming
//error and panics. Particle data is not copied, only the window; use
//Space.Sync to carry particle data between containers.
func (g *Group) Assign(o *Group) {
	if g.Capacity() != o.Capacity() {
		panic(PanicMsg(ErrCapacityMismatch))
	}
	g.end = g.beg + o.Len()
	g.MolID = o.MolID
	g.Atomic = o.Atomic
	g.CM = o.CM
}

//Translate displaces all active particles by d and wraps them with the
//given boundary. The cached mass center is displaced and wrapped too.
func (g *Group) Translate(d geometry.Vec, boundary geometry.BoundaryFunc) {
	ps := g.Active()
	for i := range ps {
		ps[i].Pos = r3.Add(ps[i].Pos, d)
		boundary(&ps[i].Pos)
	}
	g.CM = r3.Add(g.CM, d)
	boundary(&g.CM)
}

//Rotate rotates all active particles about the mass center, including
//their internal orientations. Positions follow the quaternion with
//periodic shift as in geometry.Rotation.RotateAt; dipoles, shape axes
//and quadrupoles follow the rotation alone.
func (g *Group) Rotate(rot *geometry.Rotation, boundary geometry.BoundaryFunc) {
	ps := g.Active()
	for i := range ps {
		ps[i].Pos = rot.RotateAt(ps[i].Pos, g.CM, boundary)
		ps[i].Rotate(rot)
	}
}

//Wrap applies the boundary to all active particles and the mass
//center.
func (g *Group) Wrap(boundary geometry.BoundaryFunc) {
	ps := g.Active()
	for i := range ps {
		boundary(&ps[i].Pos)
	}
	boundary(&g.CM)
}

//Unwrap removes periodic boundary wrapping so that all active
//particles sit in the same image as the mass center. Meaningful only
//for continuous (whole-molecule) coordinates.
func (g *Group) Unwrap(dist geometry.DistanceFunc) {
	ps := g.Active()
	for i := range ps {
		ps[i].Pos = r3.Add(g.CM, dist(ps[i].Pos, g.CM))
	}
}

//UpdateMassCenter recomputes and caches the mass center using the atom
//table weights, unwrapping with respect to the current cached value so
//split periodic images are handled.
func (g *Group) UpdateMassCenter(atoms *AtomTable, dist geometry.DistanceFunc) {
	g.CM = MassCenter(g.Active(), atoms, dist, g.CM)
}

//FilterID returns pointers to the active particles with the given atom
//type id. The pointers alias the container and are valid until the
//next structural change.
func (g *Group) FilterID(id int) []*Particle {
	var out []*Particle
	ps := g.Active()
	for i := range ps {
		if ps[i].ID == id {
			out = append(out, &ps[i])
		}
	}
	return out
}

//FilterIndex returns pointers to the active particles at the given
//offsets relative to the window start.
func (g *Group) FilterIndex(index []int) []*Particle {
	out := make([]*Particle, 0, len(index))
	for _, i := range index {
		out = append(out, g.At(i))
	}
	return out
}

//MassCenter computes the weighted mass center of the particles,
//unwrapping each position with respect to ref through the distance
//function before averaging, then wrapping back is left to the caller.
func MassCenter(ps []Particle, atoms *AtomTable, dist geometry.DistanceFunc, ref geometry.Vec) geometry.Vec {
	var sum geometry.Vec
	var wsum float64
	for i := range ps {
		w := atoms.Weight(&ps[i])
		sum = r3.Add(sum, r3.Scale(w, r3.Add(ref, dist(ps[i].Pos, ref))))
		wsum += w
	}
	if wsum == 0 {
		panic(PanicMsg("neofaunus: mass center of zero total weight"))
	}
	return r3.Scale(1/wsum, sum)
}
