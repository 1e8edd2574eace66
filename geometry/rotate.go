/*
 * rotate.go, part of neofaunus.
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

package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

//Rotation is a rigid rotation by an angle about an axis, kept both as a
//unit quaternion (for rotating vectors) and as a 3x3 matrix (for
//rotating tensors).
type Rotation struct {
	angle float64
	q     quat.Number
	m     *mat.Dense
}

//NewRotation returns the rotation by angle (radians) about axis. The
//axis need not be normalized.
func NewRotation(angle float64, axis Vec) *Rotation {
	rot := new(Rotation)
	rot.Set(angle, axis)
	return rot
}

//Set replaces the rotation by angle (radians) about axis.
func (rot *Rotation) Set(angle float64, axis Vec) {
	rot.angle = angle
	u := r3.Unit(axis)
	s, c := math.Sincos(angle / 2)
	rot.q = quat.Number{Real: c, Imag: s * u.X, Jmag: s * u.Y, Kmag: s * u.Z}

	//Rodrigues: R = I + sin(a) K + (1-cos(a)) K^2, K the skew matrix of u.
	k := mat.NewDense(3, 3, []float64{
		0, -u.Z, u.Y,
		u.Z, 0, -u.X,
		-u.Y, u.X, 0,
	})
	var k2 mat.Dense
	k2.Mul(k, k)
	sa, ca := math.Sincos(angle)
	m := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	var ks, k2s mat.Dense
	ks.Scale(sa, k)
	k2s.Scale(1-ca, &k2)
	m.Add(m, &ks)
	m.Add(m, &k2s)
	rot.m = m
}

//Angle returns the rotation angle in radians.
func (rot *Rotation) Angle() float64 { return rot.angle }

//Matrix returns the 3x3 rotation matrix. The returned matrix is shared
//with the receiver and must not be modified.
func (rot *Rotation) Matrix() *mat.Dense { return rot.m }

//Rotate returns p rotated about the origin.
func (rot *Rotation) Rotate(p Vec) Vec {
	v := quat.Number{Imag: p.X, Jmag: p.Y, Kmag: p.Z}
	v = quat.Mul(quat.Mul(rot.q, v), quat.Conj(rot.q))
	return Vec{X: v.Imag, Y: v.Jmag, Z: v.Kmag}
}

//RotateAt rotates p about the point shift, applying boundary after the
//shift and after the rotation, matching the order used when rotating a
//molecule about its mass center under periodic boundaries. boundary may
//be nil.
func (rot *Rotation) RotateAt(p, shift Vec, boundary BoundaryFunc) Vec {
	a := r3.Sub(p, shift)
	if boundary != nil {
		boundary(&a)
	}
	a = r3.Add(rot.Rotate(a), shift)
	if boundary != nil {
		boundary(&a)
	}
	return a
}

//XYZToRTP converts cartesian to spherical coordinates (r, theta, phi)
//with theta in [-pi,pi) and phi in [0,pi].
func XYZToRTP(p, origin Vec) Vec {
	xyz := r3.Sub(p, origin)
	radius := r3.Norm(xyz)
	return Vec{
		X: radius,
		Y: math.Atan2(xyz.Y, xyz.X),
		Z: math.Acos(xyz.Z / radius),
	}
}

//RTPToXYZ converts spherical coordinates (r, theta, phi) to cartesian,
//adding origin.
func RTPToXYZ(rtp, origin Vec) Vec {
	return r3.Add(origin, r3.Scale(rtp.X, Vec{
		X: math.Cos(rtp.Y) * math.Sin(rtp.Z),
		Y: math.Sin(rtp.Y) * math.Sin(rtp.Z),
		Z: math.Cos(rtp.Z),
	}))
}

//RandomUnitVec draws a unit vector uniformly on the sphere using polar
//sphere picking. rnd must return uniform numbers in [0,1).
func RandomUnitVec(rnd func() float64) Vec {
	return RTPToXYZ(Vec{X: 1, Y: 2 * math.Pi * rnd(), Z: math.Acos(2*rnd() - 1)}, Vec{})
}
