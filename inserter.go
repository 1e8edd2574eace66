/*
 * inserter.go, part of neofaunus.
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

//RandomInserter places a molecule at a random position and orientation
//inside a geometry, retrying until the result clears the container
//walls or the trial budget runs out.
type RandomInserter struct {
	//Dir scales the random displacement per axis; zeroing an axis
	//confines insertion to a plane or line. Overridden per molecule
	//type by its InsDir.
	Dir geometry.Vec
	//Offset is added to the insertion position.
	Offset geometry.Vec
	//RotateMol requests a random rotation of molecular conformations.
	RotateMol bool
	//KeepPos keeps stored conformation positions, skipping both
	//displacement and rotation.
	KeepPos bool
	//AllowOverlap skips the wall collision check.
	AllowOverlap bool
	//MaxTrials bounds the number of placement attempts.
	MaxTrials int
}

//NewRandomInserter returns an inserter with full-cell isotropic
//placement, random rotation and a trial budget of 2000.
func NewRandomInserter() *RandomInserter {
	return &RandomInserter{
		Dir:       geometry.Vec{X: 1, Y: 1, Z: 1},
		RotateMol: true,
		MaxTrials: 2000,
	}
}

//Insert returns a freshly placed copy of a random conformation of the
//molecule type. Molecular types are rigidly displaced and rotated as a
//whole; atomic types get each particle placed independently. A
//non-critical MaxTrialsError is returned when no overlap-free
//placement is found within the trial budget.
func (ins *RandomInserter) Insert(geo *geometry.Geometry, mol *MoleculeData, rnd *Random) ([]Particle, error) {
	dir := geometry.Vec{
		X: ins.Dir.X * mol.InsDir.X,
		Y: ins.Dir.Y * mol.InsDir.Y,
		Z: ins.Dir.Z * mol.InsDir.Z,
	}
	offset := r3.Add(ins.Offset, mol.InsOffset)
	for trial := 0; trial < ins.MaxTrials; trial++ {
		ps, err := mol.RandomConformation(rnd)
		if err != nil {
			return nil, errDecorate(err, "RandomInserter.Insert")
		}
		if mol.Atomic {
			for i := range ps {
				var pos geometry.Vec
				geo.RandomPos(&pos, rnd.Float)
				ps[i].Pos = r3.Add(scaleDir(pos, dir), offset)
				geo.Boundary(&ps[i].Pos)
			}
		} else if !(ins.KeepPos || mol.KeepPos) {
			centerToOrigin(ps)
			if ins.RotateMol && mol.Rotate {
				rot := geometry.NewRotation(2*math.Pi*rnd.Float(), geometry.RandomUnitVec(rnd.Float))
				for i := range ps {
					ps[i].Pos = rot.Rotate(ps[i].Pos)
					ps[i].Rotate(rot)
				}
			}
			var pos geometry.Vec
			geo.RandomPos(&pos, rnd.Float)
			d := r3.Add(scaleDir(pos, dir), offset)
			for i := range ps {
				ps[i].Pos = r3.Add(ps[i].Pos, d)
				geo.Boundary(&ps[i].Pos)
			}
		}
		if ins.AllowOverlap || !anyCollision(geo, ps) {
			return ps, nil
		}
	}
	return nil, &MaxTrialsError{Molecule: mol.Name, Trials: ins.MaxTrials}
}

func scaleDir(p, dir geometry.Vec) geometry.Vec {
	return geometry.Vec{X: p.X * dir.X, Y: p.Y * dir.Y, Z: p.Z * dir.Z}
}

//centerToOrigin shifts the particles so their unweighted geometric
//center sits at the origin.
func centerToOrigin(ps []Particle) {
	if len(ps) == 0 {
		return
	}
	var c geometry.Vec
	for i := range ps {
		c = r3.Add(c, ps[i].Pos)
	}
	c = r3.Scale(1/float64(len(ps)), c)
	for i := range ps {
		ps[i].Pos = r3.Sub(ps[i].Pos, c)
	}
}

func anyCollision(geo *geometry.Geometry, ps []Particle) bool {
	for i := range ps {
		if geo.Collision(ps[i].Pos, 0) {
			return true
		}
	}
	return false
}
