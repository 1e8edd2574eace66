/*
 * rotate_test.go, part of neofaunus.
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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestRotateQuarterTurnAboutY(t *testing.T) {
	rot := NewRotation(math.Pi/2, Vec{Y: 1})
	p := rot.Rotate(Vec{X: 1})
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
	assert.InDelta(t, -1, p.Z, 1e-9)
}

func TestRotationMatrixMatchesQuaternion(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		axis := RandomUnitVec(rnd.Float64)
		angle := rnd.Float64() * 2 * math.Pi
		rot := NewRotation(angle, axis)
		v := RandomUnitVec(rnd.Float64)
		byQuat := rot.Rotate(v)
		m := rot.Matrix()
		byMat := Vec{
			X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
			Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
			Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
		}
		assert.InDelta(t, 0, r3.Norm(r3.Sub(byQuat, byMat)), 1e-9)
	}
}

func TestRotateAtShiftedOrigin(t *testing.T) {
	g, err := NewCuboid(Vec{X: 100, Y: 100, Z: 100})
	require.NoError(t, err)
	rot := NewRotation(math.Pi/2, Vec{Y: 1})
	// rotating about (1,0,0) leaves that point fixed
	p := rot.RotateAt(Vec{X: 1}, Vec{X: 1}, g.Boundary)
	assert.InDelta(t, 0, r3.Norm(r3.Sub(p, Vec{X: 1})), 1e-9)
	// and maps (2,0,0) to (1,0,-1)
	p = rot.RotateAt(Vec{X: 2}, Vec{X: 1}, g.Boundary)
	assert.InDelta(t, 0, r3.Norm(r3.Sub(p, Vec{X: 1, Z: -1})), 1e-9)
}

func TestTensorRotate(t *testing.T) {
	q := NewTensor(1, 2, 3, 4, 5, 6)
	rot := NewRotation(math.Pi/2, Vec{Y: 1})
	q.Rotate(rot.Matrix())
	assert.InDelta(t, 6, q.At(0, 0), 1e-9)
	assert.InDelta(t, 5, q.At(0, 1), 1e-9)
	assert.InDelta(t, -3, q.At(0, 2), 1e-9)
	assert.InDelta(t, 4, q.At(1, 1), 1e-9)
	assert.InDelta(t, -2, q.At(1, 2), 1e-9)
	assert.InDelta(t, 1, q.At(2, 2), 1e-9)
}

func TestRandomUnitVecIsUnit(t *testing.T) {
	rnd := rand.New(rand.NewSource(11)).Float64
	for i := 0; i < 100; i++ {
		v := RandomUnitVec(rnd)
		assert.InDelta(t, 1, r3.Norm(v), 1e-9)
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	p := Vec{X: 0.3, Y: -1.2, Z: 2.5}
	origin := Vec{X: 1, Y: 1, Z: 1}
	rtp := XYZToRTP(p, origin)
	back := RTPToXYZ(rtp, origin)
	assert.InDelta(t, 0, r3.Norm(r3.Sub(p, back)), 1e-9)
}
