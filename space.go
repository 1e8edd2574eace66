/*
 * space.go, part of neofaunus.
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
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rc83/neofaunus/geometry"
)

//ChangeObserver is notified after a change has been applied to a
//container. Cell lists and similar auxiliary structures register one
//to stay in step with the particle data.
type ChangeObserver func(s *Space, c *Change)

//Space is the simulation container: all particles, the groups
//partitioning them and the simulation geometry. Two containers (the
//current and the trial state) are kept during a run and synchronized
//through Sync.
type Space struct {
	//P holds every particle, active and inactive, grouped
	//contiguously. Groups address it through integer offsets; never
	//reorder it behind their backs.
	P []Particle
	//Groups partitions P into molecule instances.
	Groups []Group
	//Geo is the simulation cell.
	Geo *geometry.Geometry
	//Atoms and Molecules are the property registries, shared between
	//containers.
	Atoms     *AtomTable
	Molecules *MoleculeTable

	observers []ChangeObserver
}

//NewSpace returns an empty container with the given geometry and
//registries.
func NewSpace(geo *geometry.Geometry, atoms *AtomTable, molecules *MoleculeTable) *Space {
	return &Space{Geo: geo, Atoms: atoms, Molecules: molecules}
}

//RegisterChangeObserver adds an observer called after every
//ApplyChange.
func (s *Space) RegisterChangeObserver(o ChangeObserver) {
	s.observers = append(s.observers, o)
}

//ApplyChange notifies the registered observers of an applied change.
//Move routines call it once a trial move has modified the container.
func (s *Space) ApplyChange(c *Change) {
	for _, o := range s.observers {
		o(s, c)
	}
}

//Append adds one molecule instance of the given type, built from the
//particles, and returns the new group. The particle slice becomes the
//group's capacity region with inactive count trailing particles
//deactivated. Groups address the particle store through integer
//offsets, so growth of the store cannot invalidate them; Append still
//verifies every group after growing as a guard against manual
//manipulation of the store.
func (s *Space) Append(molID int, ps []Particle, inactive int) (*Group, error) {
	if inactive < 0 || inactive > len(ps) {
		return nil, newError(true, "inactive count %d out of range for %d particles", inactive, len(ps))
	}
	mol := s.Molecules.Get(molID)
	beg := len(s.P)
	s.P = append(s.P, ps...)
	for i := range s.Groups {
		s.Groups[i].check()
	}
	g := NewGroup(&s.P, beg, len(s.P))
	g.MolID = molID
	g.Atomic = mol.Atomic
	if inactive > 0 {
		g.Deactivate(g.Len()-inactive, g.Len())
	}
	if !mol.Atomic && g.Len() > 0 {
		g.UpdateMassCenter(s.Atoms, s.Geo.VDist)
	}
	s.Groups = append(s.Groups, *g)
	return &s.Groups[len(s.Groups)-1], nil
}

//FindMolecules returns pointers to all groups of the given molecule
//type.
func (s *Space) FindMolecules(molID int) []*Group {
	var out []*Group
	for i := range s.Groups {
		if s.Groups[i].MolID == molID {
			out = append(out, &s.Groups[i])
		}
	}
	return out
}

//ActiveMolecules returns pointers to the non-empty groups of the given
//molecule type.
func (s *Space) ActiveMolecules(molID int) []*Group {
	var out []*Group
	for i := range s.Groups {
		if s.Groups[i].MolID == molID && !s.Groups[i].Empty() {
			out = append(out, &s.Groups[i])
		}
	}
	return out
}

//RandomMolecule returns the index in Groups of a uniformly random
//non-empty group of the given molecule type, or -1 when none exists.
//A negative molID matches every type.
func (s *Space) RandomMolecule(molID int, rnd *Random) int {
	var idx []int
	for i := range s.Groups {
		if (molID < 0 || s.Groups[i].MolID == molID) && !s.Groups[i].Empty() {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return -1
	}
	return idx[rnd.Sample(len(idx))]
}

//FindAtoms returns pointers to all active particles with the given
//atom type id, across all groups.
func (s *Space) FindAtoms(atomID int) []*Particle {
	var out []*Particle
	for i := range s.Groups {
		out = append(out, s.Groups[i].FilterID(atomID)...)
	}
	return out
}

//NumParticles returns the number of active particles.
func (s *Space) NumParticles() int {
	n := 0
	for i := range s.Groups {
		n += s.Groups[i].Len()
	}
	return n
}

//SetVolume rescales the geometry to the given volume and scales all
//particle positions and mass centers isotropically with it. Returns
//the scaling factor applied to each coordinate.
func (s *Space) SetVolume(volume float64) (float64, error) {
	oldV := s.Geo.Volume()
	if err := s.Geo.SetVolume(volume); err != nil {
		return 0, errDecorate(err, "Space.SetVolume")
	}
	f := math.Cbrt(volume / oldV)
	for i := range s.P {
		s.P[i].Pos = r3.Scale(f, s.P[i].Pos)
	}
	for i := range s.Groups {
		s.Groups[i].CM = r3.Scale(f, s.Groups[i].CM)
	}
	return f, nil
}

//Sync copies the parts of the other container named by the change onto
//s. Group metadata and window sizes are assigned; particle data is
//copied only for the touched offsets, or for the whole capacity region
//when the record has All set or changed the window. The containers
//must have identical layout.
func (s *Space) Sync(o *Space, c *Change) {
	if len(s.P) != len(o.P) || len(s.Groups) != len(o.Groups) {
		panic(PanicMsg(ErrCapacityMismatch))
	}
	if c.DV != 0 {
		s.Geo = o.Geo.Copy()
		copy(s.P, o.P)
		for i := range s.Groups {
			s.Groups[i].Assign(&o.Groups[i])
		}
		s.ApplyChange(c)
		return
	}
	for _, gc := range c.Groups {
		if gc.Index < 0 || gc.Index >= len(s.Groups) {
			panic(PanicMsg(ErrInvalidGroupIndex))
		}
		dst := &s.Groups[gc.Index]
		src := &o.Groups[gc.Index]
		resized := dst.Len() != src.Len()
		dst.Assign(src)
		switch {
		case gc.All || resized || len(gc.Atoms) == 0:
			copy(dst.All(), src.All())
		default:
			for _, i := range gc.Atoms {
				*dst.At(i) = *src.At(i)
			}
		}
	}
	s.ApplyChange(c)
}

//Clone returns a deep copy of the container sharing the registries.
//Group windows in the clone are re-pointed at the clone's particle
//store.
func (s *Space) Clone() *Space {
	c := &Space{
		Geo:       s.Geo.Copy(),
		Atoms:     s.Atoms,
		Molecules: s.Molecules,
	}
	c.P = make([]Particle, len(s.P))
	copy(c.P, s.P)
	c.Groups = make([]Group, len(s.Groups))
	copy(c.Groups, s.Groups)
	for i := range c.Groups {
		c.Groups[i].Relocate(&c.P)
	}
	return c
}
