/*
 * inserter_test.go, part of neofaunus.
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
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rc83/neofaunus/geometry"
)

func rigidMolecule() MoleculeData {
	m := MoleculeData{Name: "dimer", Rotate: true,
		InsDir: geometry.Vec{X: 1, Y: 1, Z: 1}}
	a := NewParticle()
	b := NewParticle()
	b.Pos = geometry.Vec{X: 3}
	m.PushConformation([]Particle{a, b}, 1)
	return m
}

func TestInsertKeepsInternalDistances(Te *testing.T) {
	geo, err := geometry.NewCuboid(geometry.Vec{X: 50, Y: 50, Z: 50})
	if err != nil {
		Te.Fatal(err)
	}
	mol := rigidMolecule()
	rnd := NewRandom(1)
	ins := NewRandomInserter()
	for i := 0; i < 50; i++ {
		ps, err := ins.Insert(geo, &mol, rnd)
		if err != nil {
			Te.Fatal(err)
		}
		d := r3.Norm(geo.VDist(ps[0].Pos, ps[1].Pos))
		if math.Abs(d-3) > 1e-9 {
			Te.Fatalf("rigid insert changed bond length: %g", d)
		}
	}
}

func TestInsertAtomicInsideCell(Te *testing.T) {
	geo, err := geometry.NewSphere(5)
	if err != nil {
		Te.Fatal(err)
	}
	salt := MoleculeData{Name: "salt", Atomic: true,
		InsDir: geometry.Vec{X: 1, Y: 1, Z: 1}}
	a := NewParticle()
	salt.PushConformation([]Particle{a, a}, 1)
	rnd := NewRandom(2)
	ins := NewRandomInserter()
	for i := 0; i < 100; i++ {
		ps, err := ins.Insert(geo, &salt, rnd)
		if err != nil {
			Te.Fatal(err)
		}
		for j := range ps {
			if geo.Collision(ps[j].Pos, 0) {
				Te.Fatalf("inserted particle outside cell: %v", ps[j].Pos)
			}
		}
	}
}

func TestInsertNoConformations(Te *testing.T) {
	geo, err := geometry.NewSphere(5)
	if err != nil {
		Te.Fatal(err)
	}
	empty := MoleculeData{Name: "ghost"}
	ins := NewRandomInserter()
	if _, err := ins.Insert(geo, &empty, NewRandom(1)); err == nil {
		Te.Error("insert of a type without conformations must fail")
	}
}

func TestInsertMaxTrials(Te *testing.T) {
	// molecule larger than the cell can never clear the walls
	geo, err := geometry.NewSphere(1)
	if err != nil {
		Te.Fatal(err)
	}
	mol := rigidMolecule()
	ins := NewRandomInserter()
	ins.MaxTrials = 10
	_, err = ins.Insert(geo, &mol, NewRandom(3))
	var mte *MaxTrialsError
	if !errors.As(err, &mte) {
		Te.Fatalf("expected MaxTrialsError, got %v", err)
	}
	if mte.Critical() {
		Te.Error("trial exhaustion must be non-critical")
	}
}

func TestRandomConformationWeights(Te *testing.T) {
	m := MoleculeData{Name: "w"}
	a := NewParticle()
	a.ID = 1
	b := NewParticle()
	b.ID = 2
	m.PushConformation([]Particle{a}, 0)
	m.PushConformation([]Particle{b}, 1)
	rnd := NewRandom(4)
	for i := 0; i < 20; i++ {
		ps, err := m.RandomConformation(rnd)
		if err != nil {
			Te.Fatal(err)
		}
		if ps[0].ID != 2 {
			Te.Fatal("zero-weight conformation was sampled")
		}
	}
}
