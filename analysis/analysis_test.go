/*
 * analysis_test.go, part of neofaunus.
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

package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverage(t *testing.T) {
	a := Average{}
	assert.True(t, math.IsNaN(a.Mean()))
	for _, x := range []float64{1, 2, 3, 4} {
		a.Add(x)
	}
	assert.Equal(t, 4, a.N())
	assert.InDelta(t, 2.5, a.Mean(), 1e-12)
	// sample standard deviation of 1..4
	assert.InDelta(t, math.Sqrt(5.0/3.0), a.StdDev(), 1e-12)
}

func TestHistogram(t *testing.T) {
	h := NewHistogram(0, 10, 10)
	for _, x := range []float64{0.5, 1.5, 1.6, 9.9, -1, 11} {
		h.Add(x)
	}
	assert.Equal(t, 2, h.Outside())
	assert.InDelta(t, 4, h.Sum(), 1e-12)
	counts := h.Counts()
	assert.InDelta(t, 1, counts[0], 1e-12)
	assert.InDelta(t, 2, counts[1], 1e-12)
	assert.InDelta(t, 1, counts[9], 1e-12)

	centers := h.Centers()
	assert.InDelta(t, 0.5, centers[0], 1e-12)
	assert.InDelta(t, 9.5, centers[9], 1e-12)

	// normalized bins integrate to one
	var integral float64
	for _, d := range h.Normalized() {
		integral += d * 1.0 // bin width
	}
	assert.InDelta(t, 1, integral, 1e-12)
}

func TestHistogramPanicsOnBadRange(t *testing.T) {
	assert.Panics(t, func() { NewHistogram(1, 0, 10) })
	assert.Panics(t, func() { NewHistogram(0, 1, 0) })
}
