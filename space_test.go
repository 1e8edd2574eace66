/*
 * space_test.go, part of neofaunus.
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
	"testing"

	"github.com/rc83/neofaunus/geometry"
)

func testSpace(Te *testing.T) *Space {
	geo, err := geometry.NewCuboid(geometry.Vec{X: 20, Y: 20, Z: 20})
	if err != nil {
		Te.Fatal(err)
	}
	atoms := testAtoms(Te)
	mols := NewMoleculeTable()
	water := MoleculeData{Name: "water", Atoms: []int{0, 0}}
	if err := mols.Add(water); err != nil {
		Te.Fatal(err)
	}
	salt := MoleculeData{Name: "salt", Atomic: true, Atoms: []int{1}}
	if err := mols.Add(salt); err != nil {
		Te.Fatal(err)
	}
	return NewSpace(geo, atoms, mols)
}

func TestAppendGrowthPreservesGroups(Te *testing.T) {
	s := testSpace(Te)
	// enough appends to force repeated reallocation of s.P
	for i := 0; i < 50; i++ {
		ps := idParticles(0, 0)
		ps[0].Pos = geometry.Vec{X: float64(i % 10)}
		ps[1].Pos = geometry.Vec{X: float64(i%10) + 1}
		if _, err := s.Append(0, ps, 0); err != nil {
			Te.Fatal(err)
		}
	}
	if len(s.Groups) != 50 || len(s.P) != 100 {
		Te.Fatalf("got %d groups over %d particles", len(s.Groups), len(s.P))
	}
	for i := range s.Groups {
		g := &s.Groups[i]
		if g.Len() != 2 {
			Te.Fatalf("group %d has %d active particles, want 2", i, g.Len())
		}
		want := float64(i % 10)
		if math.Abs(g.At(0).Pos.X-want) > 1e-12 {
			Te.Errorf("group %d lost its particles after growth", i)
		}
	}
}

func TestAppendInactive(Te *testing.T) {
	s := testSpace(Te)
	g, err := s.Append(1, idParticles(1, 1, 1), 2)
	if err != nil {
		Te.Fatal(err)
	}
	if g.Len() != 1 || g.Capacity() != 3 {
		Te.Errorf("got len %d cap %d, want 1 and 3", g.Len(), g.Capacity())
	}
}

func TestFindMoleculesAndAtoms(Te *testing.T) {
	s := testSpace(Te)
	for i := 0; i < 3; i++ {
		if _, err := s.Append(0, idParticles(0, 0), 0); err != nil {
			Te.Fatal(err)
		}
	}
	if _, err := s.Append(1, idParticles(1), 0); err != nil {
		Te.Fatal(err)
	}
	if got := s.FindMolecules(0); len(got) != 3 {
		Te.Errorf("found %d water groups, want 3", len(got))
	}
	if got := s.FindAtoms(1); len(got) != 1 {
		Te.Errorf("found %d B atoms, want 1", len(got))
	}
	if s.NumParticles() != 7 {
		Te.Errorf("NumParticles = %d, want 7", s.NumParticles())
	}
}

func TestRandomMolecule(Te *testing.T) {
	s := testSpace(Te)
	rnd := NewRandom(3)
	if gi := s.RandomMolecule(-1, rnd); gi != -1 {
		Te.Errorf("empty container gave group %d, want -1", gi)
	}
	for i := 0; i < 3; i++ {
		if _, err := s.Append(0, idParticles(0, 0), 0); err != nil {
			Te.Fatal(err)
		}
	}
	if _, err := s.Append(1, idParticles(1), 0); err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		gi := s.RandomMolecule(1, rnd)
		if gi < 0 || s.Groups[gi].MolID != 1 {
			Te.Fatalf("RandomMolecule(1) gave group %d", gi)
		}
	}
	for i := 0; i < 20; i++ {
		gi := s.RandomMolecule(-1, rnd)
		if gi < 0 || gi >= len(s.Groups) {
			Te.Fatalf("RandomMolecule(-1) gave group %d", gi)
		}
	}
	// deactivated groups are never picked
	s.Groups[3].Deactivate(0, s.Groups[3].Len())
	for i := 0; i < 20; i++ {
		if gi := s.RandomMolecule(1, rnd); gi != -1 {
			Te.Fatalf("empty salt group picked as %d", gi)
		}
	}
	if got := s.ActiveMolecules(1); len(got) != 0 {
		Te.Errorf("found %d active salt groups, want 0", len(got))
	}
	if got := s.ActiveMolecules(0); len(got) != 3 {
		Te.Errorf("found %d active water groups, want 3", len(got))
	}
}

func TestSyncTouchedAtomsOnly(Te *testing.T) {
	s := testSpace(Te)
	for i := 0; i < 2; i++ {
		if _, err := s.Append(0, idParticles(0, 0), 0); err != nil {
			Te.Fatal(err)
		}
	}
	trial := s.Clone()
	// perturb two particles in the first group and one in the second
	trial.Groups[0].At(0).Pos = geometry.Vec{Z: 5}
	trial.Groups[0].At(1).Pos = geometry.Vec{X: 7}
	trial.Groups[1].At(0).Pos = geometry.Vec{Y: 3}

	// sync only the first group's second particle
	ch := Change{}
	ch.Touched(0).Atoms = []int{1}
	s.Sync(trial, &ch)
	if s.Groups[0].At(1).Pos.X != 7 {
		Te.Error("touched particle not synced")
	}
	if s.Groups[0].At(0).Pos.Z != 0 {
		Te.Error("untouched particle in a touched group must not be synced")
	}
	if s.Groups[1].At(0).Pos.Y != 0 {
		Te.Error("untouched group must not be synced")
	}
}

func TestSyncResizedGroup(Te *testing.T) {
	s := testSpace(Te)
	if _, err := s.Append(1, idParticles(1, 1, 1), 0); err != nil {
		Te.Fatal(err)
	}
	trial := s.Clone()
	trial.Groups[0].Deactivate(0, 1)
	ch := Change{}
	gc := ch.Touched(0)
	gc.Deactivated = append(gc.Deactivated, [2]int{0, 1})
	s.Sync(trial, &ch)
	if s.Groups[0].Len() != 2 {
		Te.Errorf("synced group has %d active, want 2", s.Groups[0].Len())
	}
}

func TestCloneIsIndependent(Te *testing.T) {
	s := testSpace(Te)
	if _, err := s.Append(0, idParticles(0, 0), 0); err != nil {
		Te.Fatal(err)
	}
	c := s.Clone()
	c.P[0].Pos = geometry.Vec{X: 9}
	if s.P[0].Pos.X == 9 {
		Te.Error("clone shares particle storage with the original")
	}
	// the clone's groups must view the clone's particles
	if c.Groups[0].At(0).Pos.X != 9 {
		Te.Error("clone group views the original's particles")
	}
}

func TestApplyChangeNotifiesObservers(Te *testing.T) {
	s := testSpace(Te)
	if _, err := s.Append(0, idParticles(0, 0), 0); err != nil {
		Te.Fatal(err)
	}
	calls := 0
	s.RegisterChangeObserver(func(sp *Space, c *Change) {
		calls++
		if sp != s {
			Te.Error("observer got wrong container")
		}
	})
	ch := Change{}
	ch.Touched(0).All = true
	s.ApplyChange(&ch)
	trial := s.Clone()
	s.Sync(trial, &ch)
	if calls != 2 {
		Te.Errorf("observer called %d times, want 2", calls)
	}
}

func TestSpaceSetVolumeScalesPositions(Te *testing.T) {
	s := testSpace(Te)
	if _, err := s.Append(0, idParticles(0, 0), 0); err != nil {
		Te.Fatal(err)
	}
	s.P[0].Pos = geometry.Vec{X: 2, Y: 2, Z: 2}
	oldV := s.Geo.Volume()
	f, err := s.SetVolume(8 * oldV)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(f-2) > 1e-12 {
		Te.Errorf("scale factor = %g, want 2", f)
	}
	if !close3(s.P[0].Pos, geometry.Vec{X: 4, Y: 4, Z: 4}, 1e-9) {
		Te.Errorf("scaled position = %v, want (4 4 4)", s.P[0].Pos)
	}
}
