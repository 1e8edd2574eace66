/*
 * tensor.go, part of neofaunus.
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
	"encoding/json"

	"gonum.org/v1/gonum/mat"
)

//Tensor is a symmetric 3x3 tensor (e.g. a quadrupole moment) stored
//row-major. It has value semantics so that particles carrying one can
//be copied by plain assignment.
type Tensor [9]float64

//NewTensor builds a symmetric tensor from its six independent
//coefficients xx, xy, xz, yy, yz, zz.
func NewTensor(xx, xy, xz, yy, yz, zz float64) Tensor {
	return Tensor{
		xx, xy, xz,
		xy, yy, yz,
		xz, yz, zz,
	}
}

//At returns the element at row i, column j.
func (t *Tensor) At(i, j int) float64 { return t[3*i+j] }

//Eye sets the tensor to identity.
func (t *Tensor) Eye() {
	*t = Tensor{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

//Dense returns the tensor as a gonum dense matrix. The matrix shares no
//storage with the receiver.
func (t *Tensor) Dense() *mat.Dense {
	d := make([]float64, 9)
	copy(d, t[:])
	return mat.NewDense(3, 3, d)
}

//Rotate transforms the tensor by the rotation matrix m, computing
//m * t * m^T in place.
func (t *Tensor) Rotate(m *mat.Dense) {
	var tmp, out mat.Dense
	tmp.Mul(m, t.Dense())
	out.Mul(&tmp, m.T())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[3*i+j] = out.At(i, j)
		}
	}
}

//MarshalJSON encodes the six independent coefficients
//[xx, xy, xz, yy, yz, zz].
func (t Tensor) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{t[0], t[1], t[2], t[4], t[5], t[8]})
}

//UnmarshalJSON decodes the six-coefficient form.
func (t *Tensor) UnmarshalJSON(b []byte) error {
	var c []float64
	if err := json.Unmarshal(b, &c); err != nil {
		return err
	}
	if len(c) != 6 {
		return Error{message: "tensor: array with exactly six coefficients expected", critical: true}
	}
	*t = NewTensor(c[0], c[1], c[2], c[3], c[4], c[5])
	return nil
}
