/*
 * analysis.go, part of neofaunus.
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

//Package analysis provides sampling utilities for Monte Carlo runs:
//running averages and simple binned histograms, plus plotting of the
//collected data.
package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Average accumulates a running mean and variance of a scalar
//observable.
type Average struct {
	n          int
	sum, sumSq float64
}

//Add accumulates one sample.
func (a *Average) Add(x float64) {
	a.n++
	a.sum += x
	a.sumSq += x * x
}

//N returns the number of samples.
func (a *Average) N() int { return a.n }

//Mean returns the running mean, NaN with no samples.
func (a *Average) Mean() float64 {
	if a.n == 0 {
		return math.NaN()
	}
	return a.sum / float64(a.n)
}

//StdDev returns the sample standard deviation.
func (a *Average) StdDev() float64 {
	if a.n < 2 {
		return math.NaN()
	}
	n := float64(a.n)
	return math.Sqrt((a.sumSq - a.sum*a.sum/n) / (n - 1))
}

func (a *Average) String() string {
	return fmt.Sprintf("%.6g +/- %.3g (n=%d)", a.Mean(), a.StdDev(), a.n)
}

//Histogram is a uniformly binned histogram over [min,max). Samples
//outside the range are counted but not binned.
type Histogram struct {
	min, max float64
	width    float64
	counts   []float64
	outside  int
}

//NewHistogram returns a histogram with n bins over [min,max). Bad
//arguments panic; bins are fixed at construction.
func NewHistogram(min, max float64, n int) *Histogram {
	if n <= 0 || max <= min {
		panic("neofaunus/analysis: invalid histogram range")
	}
	return &Histogram{
		min:    min,
		max:    max,
		width:  (max - min) / float64(n),
		counts: make([]float64, n),
	}
}

//Add bins one sample.
func (h *Histogram) Add(x float64) {
	i := int(math.Floor((x - h.min) / h.width))
	if i < 0 || i >= len(h.counts) {
		h.outside++
		return
	}
	h.counts[i]++
}

//Outside returns the number of samples that fell outside the range.
func (h *Histogram) Outside() int { return h.outside }

//Sum returns the total binned count.
func (h *Histogram) Sum() float64 { return floats.Sum(h.counts) }

//Centers returns the bin center positions.
func (h *Histogram) Centers() []float64 {
	c := make([]float64, len(h.counts))
	for i := range c {
		c[i] = h.min + (float64(i)+0.5)*h.width
	}
	return c
}

//Counts returns a copy of the bin counts.
func (h *Histogram) Counts() []float64 {
	c := make([]float64, len(h.counts))
	copy(c, h.counts)
	return c
}

//Normalized returns the bin values scaled to a probability density.
func (h *Histogram) Normalized() []float64 {
	c := h.Counts()
	s := floats.Sum(c) * h.width
	if s > 0 {
		floats.Scale(1/s, c)
	}
	return c
}

//Mean returns the count-weighted mean of the bin centers.
func (h *Histogram) Mean() float64 {
	return stat.Mean(h.Centers(), h.counts)
}
