/*
 * particle.go, part of neofaunus.
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
	"encoding/json"

	"github.com/rc83/neofaunus/geometry"
)

//Particle is a single simulated particle. Besides identity and
//position it carries the orientation-bearing properties that must be
//re-oriented under rigid rotation: a dipole moment, a quadrupole
//tensor, and a sphero-cylinder direction. Particles have value
//semantics; they are copied freely by the container core.
type Particle struct {
	//ID is the type index into the atom table.
	ID int
	//Pos is the particle position [angstrom].
	Pos geometry.Vec
	//Charge is the valency [e].
	Charge float64
	//Radius is the particle radius [angstrom].
	Radius float64
	//Mu is the dipole moment unit vector, MuLen its scalar moment [eA].
	Mu    geometry.Vec
	MuLen float64
	//Q is the quadrupole moment tensor.
	Q geometry.Tensor
	//SCDir is the sphero-cylinder direction unit vector, SCLen its
	//length [angstrom].
	SCDir geometry.Vec
	SCLen float64
}

//NewParticle returns a particle with default orientation vectors
//pointing along x and id -1.
func NewParticle() Particle {
	return Particle{
		ID:    -1,
		Mu:    geometry.Vec{X: 1},
		SCDir: geometry.Vec{X: 1},
	}
}

//Rotate re-orients all internal coordinates of the particle: the
//dipole and sphero-cylinder directions by the quaternion and the
//quadrupole tensor by the rotation matrix. The position is not
//touched; rigid-body position updates are the owning group's job.
func (p *Particle) Rotate(rot *geometry.Rotation) {
	p.Mu = rot.Rotate(p.Mu)
	p.SCDir = rot.Rotate(p.SCDir)
	p.Q.Rotate(rot.Matrix())
}

type particleJSON struct {
	ID     int              `json:"id"`
	Pos    []float64        `json:"pos"`
	Charge float64          `json:"q"`
	Radius float64          `json:"r"`
	Mu     []float64        `json:"mu,omitempty"`
	MuLen  float64          `json:"mulen,omitempty"`
	Q      *geometry.Tensor `json:"Q,omitempty"`
	SCDir  []float64        `json:"scdir,omitempty"`
	SCLen  float64          `json:"sclen,omitempty"`
}

func vecSlice(v geometry.Vec) []float64 { return []float64{v.X, v.Y, v.Z} }

func sliceVec(s []float64) (geometry.Vec, error) {
	if len(s) != 3 {
		return geometry.Vec{}, newError(true, "vector: array of three numbers expected, got %d", len(s))
	}
	return geometry.Vec{X: s[0], Y: s[1], Z: s[2]}, nil
}

//MarshalJSON encodes the particle with the keys used by the input
//format: id, pos, q, r, mu, mulen, Q, scdir, sclen.
func (p Particle) MarshalJSON() ([]byte, error) {
	q := p.Q
	return json.Marshal(particleJSON{
		ID:     p.ID,
		Pos:    vecSlice(p.Pos),
		Charge: p.Charge,
		Radius: p.Radius,
		Mu:     vecSlice(p.Mu),
		MuLen:  p.MuLen,
		Q:      &q,
		SCDir:  vecSlice(p.SCDir),
		SCLen:  p.SCLen,
	})
}

//UnmarshalJSON decodes a particle, leaving absent fields at their
//defaults.
func (p *Particle) UnmarshalJSON(b []byte) error {
	*p = NewParticle()
	aux := particleJSON{ID: p.ID}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	p.ID = aux.ID
	p.Charge = aux.Charge
	p.Radius = aux.Radius
	p.MuLen = aux.MuLen
	p.SCLen = aux.SCLen
	var err error
	if aux.Pos != nil {
		if p.Pos, err = sliceVec(aux.Pos); err != nil {
			return errDecorate(err, "Particle.UnmarshalJSON")
		}
	}
	if aux.Mu != nil {
		if p.Mu, err = sliceVec(aux.Mu); err != nil {
			return errDecorate(err, "Particle.UnmarshalJSON")
		}
	}
	if aux.SCDir != nil {
		if p.SCDir, err = sliceVec(aux.SCDir); err != nil {
			return errDecorate(err, "Particle.UnmarshalJSON")
		}
	}
	if aux.Q != nil {
		p.Q = *aux.Q
	}
	return nil
}
