/*
 * geometry.go, part of neofaunus.
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

//Package geometry implements the simulation cells used by neofaunus:
//periodic and non-periodic containers with minimum-image distances,
//primary-image wrapping, volume scaling and uniform position sampling.
package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

//Vec is a point or displacement in 3D space.
type Vec = r3.Vec

//BoundaryFunc wraps a point to the primary periodic image, in place.
type BoundaryFunc func(*Vec)

//DistanceFunc returns the (minimum-image) separation a-b.
type DistanceFunc func(a, b Vec) Vec

//Kind selects the shape class of a simulation cell. The set is closed:
//every Geometry method dispatches on it by matching.
type Kind int

const (
	//Cuboid is a box with periodic boundaries in all three directions.
	Cuboid Kind = iota
	//Slit is a box periodic in x and y only.
	Slit
	//Cylinder is a cylindrical cell periodic along z.
	Cylinder
	//Sphere is a spherical cell with no periodicity.
	Sphere
)

func (k Kind) String() string {
	switch k {
	case Cuboid:
		return "cuboid"
	case Slit:
		return "slit"
	case Cylinder:
		return "cylinder"
	case Sphere:
		return "sphere"
	}
	return fmt.Sprintf("geometry.Kind(%d)", int(k))
}

//Geometry is a simulation cell. The zero value is not usable; construct
//with NewCuboid and friends, which validate that the volume is positive
//at configuration time rather than on first use.
type Geometry struct {
	kind     Kind
	l        Vec //side lengths (cylinder: diameter,diameter,length)
	lHalf    Vec
	lInv     Vec
	radius   float64 //cylinder and sphere only
	periodic [3]bool
}

//NewCuboid returns a fully periodic box with the given side lengths.
func NewCuboid(l Vec) (*Geometry, error) {
	g := &Geometry{kind: Cuboid, periodic: [3]bool{true, true, true}}
	if err := g.setLength(l); err != nil {
		return nil, err
	}
	return g, nil
}

//NewSlit returns a box periodic in x and y, with hard walls along z.
func NewSlit(l Vec) (*Geometry, error) {
	g := &Geometry{kind: Slit, periodic: [3]bool{true, true, false}}
	if err := g.setLength(l); err != nil {
		return nil, err
	}
	return g, nil
}

//NewCylinder returns a cylindrical cell of the given radius, periodic
//along its axis (z) with period length.
func NewCylinder(radius, length float64) (*Geometry, error) {
	g := &Geometry{kind: Cylinder, periodic: [3]bool{false, false, true}}
	if err := g.setRadius(radius, length); err != nil {
		return nil, err
	}
	return g, nil
}

//NewSphere returns a spherical cell with no periodic boundaries.
func NewSphere(radius float64) (*Geometry, error) {
	g := &Geometry{kind: Sphere}
	if radius <= 0 {
		return nil, Error{message: fmt.Sprintf("sphere radius must be positive, got %g", radius), critical: true}
	}
	g.radius = radius
	d := 2 * radius
	return g, g.setLength(Vec{X: d, Y: d, Z: d})
}

func (g *Geometry) setLength(l Vec) error {
	if l.X <= 0 || l.Y <= 0 || l.Z <= 0 {
		return Error{message: fmt.Sprintf("cell lengths must be positive, got %v", l), critical: true}
	}
	g.l = l
	g.lHalf = r3.Scale(0.5, l)
	g.lInv = Vec{X: 1 / l.X, Y: 1 / l.Y, Z: 1 / l.Z}
	return nil
}

func (g *Geometry) setRadius(radius, length float64) error {
	if radius <= 0 || length <= 0 {
		return Error{message: fmt.Sprintf("cylinder radius and length must be positive, got r=%g l=%g", radius, length), critical: true}
	}
	g.radius = radius
	d := 2 * radius
	return g.setLength(Vec{X: d, Y: d, Z: length})
}

//Kind returns the shape class of the cell.
func (g *Geometry) Kind() Kind { return g.kind }

//Length returns the side lengths of the bounding box of the cell.
func (g *Geometry) Length() Vec { return g.l }

//Radius returns the radius for cylindrical and spherical cells, zero
//otherwise.
func (g *Geometry) Radius() float64 { return g.radius }

//Periodic reports the periodicity mask per axis x,y,z.
func (g *Geometry) Periodic() [3]bool { return g.periodic }

//Volume returns the cell volume.
func (g *Geometry) Volume() float64 {
	switch g.kind {
	case Cylinder:
		return math.Pi * g.radius * g.radius * g.l.Z
	case Sphere:
		return 4.0 / 3.0 * math.Pi * g.radius * g.radius * g.radius
	default:
		return g.l.X * g.l.Y * g.l.Z
	}
}

//SetVolume rescales the cell to the given volume, preserving its shape
//class: boxes become cubes of edge V^(1/3), cylinders keep their length
//and adjust the radius, spheres adjust the radius. A non-positive
//volume is a configuration error.
func (g *Geometry) SetVolume(v float64) error {
	if v <= 0 {
		return Error{message: fmt.Sprintf("volume must be positive, got %g", v), critical: true}
	}
	switch g.kind {
	case Cylinder:
		return g.setRadius(math.Sqrt(v/(math.Pi*g.l.Z)), g.l.Z)
	case Sphere:
		g.radius = math.Cbrt(3 * v / (4 * math.Pi))
		d := 2 * g.radius
		return g.setLength(Vec{X: d, Y: d, Z: d})
	default:
		e := math.Cbrt(v)
		return g.setLength(Vec{X: e, Y: e, Z: e})
	}
}

//VDist returns the minimum-image separation a-b. Components along
//non-periodic axes pass through unmodified.
func (g *Geometry) VDist(a, b Vec) Vec {
	r := r3.Sub(a, b)
	if g.periodic[0] {
		if r.X > g.lHalf.X {
			r.X -= g.l.X
		} else if r.X < -g.lHalf.X {
			r.X += g.l.X
		}
	}
	if g.periodic[1] {
		if r.Y > g.lHalf.Y {
			r.Y -= g.l.Y
		} else if r.Y < -g.lHalf.Y {
			r.Y += g.l.Y
		}
	}
	if g.periodic[2] {
		if r.Z > g.lHalf.Z {
			r.Z -= g.l.Z
		} else if r.Z < -g.lHalf.Z {
			r.Z += g.l.Z
		}
	}
	return r
}

//anint rounds half away from zero.
func anint(x float64) float64 {
	return math.Trunc(x + math.Copysign(0.5, x))
}

//Boundary wraps a to its primary-image representative, in place.
func (g *Geometry) Boundary(a *Vec) {
	if g.periodic[0] && math.Abs(a.X) > g.lHalf.X {
		a.X -= g.l.X * anint(a.X*g.lInv.X)
	}
	if g.periodic[1] && math.Abs(a.Y) > g.lHalf.Y {
		a.Y -= g.l.Y * anint(a.Y*g.lInv.Y)
	}
	if g.periodic[2] && math.Abs(a.Z) > g.lHalf.Z {
		a.Z -= g.l.Z * anint(a.Z*g.lInv.Z)
	}
}

//Unwrap removes periodic wrapping from a with respect to a reference
//point, in place.
func (g *Geometry) Unwrap(a *Vec, ref Vec) {
	*a = r3.Add(g.VDist(*a, ref), ref)
}

//RandomPos draws a position uniformly distributed inside the cell.
//rnd must return uniform numbers in [0,1).
func (g *Geometry) RandomPos(p *Vec, rnd func() float64) {
	switch g.kind {
	case Cylinder:
		p.Z = (rnd() - 0.5) * g.l.Z
		r2 := g.radius * g.radius
		for {
			p.X = (rnd() - 0.5) * g.l.X
			p.Y = (rnd() - 0.5) * g.l.Y
			if p.X*p.X+p.Y*p.Y <= r2 {
				return
			}
		}
	case Sphere:
		r2 := g.radius * g.radius
		for {
			p.X = (rnd() - 0.5) * g.l.X
			p.Y = (rnd() - 0.5) * g.l.Y
			p.Z = (rnd() - 0.5) * g.l.Z
			if r3.Norm2(*p) <= r2 {
				return
			}
		}
	default:
		p.X = (rnd() - 0.5) * g.l.X
		p.Y = (rnd() - 0.5) * g.l.Y
		p.Z = (rnd() - 0.5) * g.l.Z
	}
}

//Collision reports whether a particle of the given radius centered at p
//sticks out of the container. Periodic directions have no walls and are
//never checked, so a fully periodic cuboid cannot collide.
func (g *Geometry) Collision(p Vec, radius float64) bool {
	switch g.kind {
	case Cylinder:
		if math.Sqrt(p.X*p.X+p.Y*p.Y)+radius > g.radius {
			return true
		}
		return false
	case Sphere:
		return r3.Norm(p)+radius > g.radius
	case Slit:
		return math.Abs(p.Z)+radius > g.lHalf.Z
	default:
		return false
	}
}

//Copy returns an independent copy of the cell.
func (g *Geometry) Copy() *Geometry {
	c := *g
	return &c
}
