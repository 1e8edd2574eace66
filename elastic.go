/*
 * elastic.go, part of neofaunus.
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

//ElasticRange is a window [beg,end) of active particles inside a fixed
//capacity region [beg,trueEnd) of a backing slice. Particles are never
//allocated or freed during a run; activation and deactivation shrink or
//grow the window by rotating particles between its active and inactive
//parts. Offsets are kept as integers into the backing slice so the
//range survives reallocation of the slice's array.
type ElasticRange struct {
	p        *[]Particle
	beg, end int
	trueEnd  int
}

//NewElasticRange returns a range over [beg,trueEnd) of the slice
//pointed to by p, fully active. Inconsistent offsets are a programming
//error and panic.
func NewElasticRange(p *[]Particle, beg, trueEnd int) *ElasticRange {
	r := &ElasticRange{p: p, beg: beg, end: trueEnd, trueEnd: trueEnd}
	r.check()
	return r
}

func (r *ElasticRange) check() {
	if r.beg > r.end || r.end > r.trueEnd {
		panic(PanicMsg(ErrRangeInvariant))
	}
	if r.beg < 0 || r.trueEnd > len(*r.p) {
		panic(PanicMsg(ErrRangeBounds))
	}
}

//Len returns the number of active particles.
func (r *ElasticRange) Len() int { return r.end - r.beg }

//Capacity returns the total number of particles, active and inactive.
func (r *ElasticRange) Capacity() int { return r.trueEnd - r.beg }

//Empty reports whether no particles are active.
func (r *ElasticRange) Empty() bool { return r.end == r.beg }

//Begin returns the offset of the first active particle in the backing
//slice.
func (r *ElasticRange) Begin() int { return r.beg }

//End returns the offset one past the last active particle.
func (r *ElasticRange) End() int { return r.end }

//TrueEnd returns the offset one past the capacity region.
func (r *ElasticRange) TrueEnd() int { return r.trueEnd }

//Active returns the active particles as a sub-slice of the backing
//slice. The slice aliases the container; it is valid until the next
//structural change.
func (r *ElasticRange) Active() []Particle {
	return (*r.p)[r.beg:r.end]
}

//Inactive returns the inactive tail as a sub-slice of the backing
//slice.
func (r *ElasticRange) Inactive() []Particle {
	return (*r.p)[r.end:r.trueEnd]
}

//All returns the full capacity region, active particles first.
func (r *ElasticRange) All() []Particle {
	return (*r.p)[r.beg:r.trueEnd]
}

//At returns a pointer to the i:th active particle.
func (r *ElasticRange) At(i int) *Particle {
	if i < 0 || i >= r.Len() {
		panic(PanicMsg(ErrRangeBounds))
	}
	return &(*r.p)[r.beg+i]
}

//rotateLeft rotates the sub-range [i,j) of the backing slice left by k
//positions, so that the element at i+k moves to i. Classic three-
//reversal rotation, in place.
func (r *ElasticRange) rotateLeft(i, j, k int) {
	s := (*r.p)[i:j]
	reverse(s[:k])
	reverse(s[k:])
	reverse(s)
}

func reverse(s []Particle) {
	for a, b := 0, len(s)-1; a < b; a, b = a+1, b-1 {
		s[a], s[b] = s[b], s[a]
	}
}

//Deactivate removes the active sub-range [first,last) from the active
//window, preserving the relative order of the remaining active
//particles. Offsets are relative to the start of the active window.
//The deactivated particles become the head of the inactive region, in
//their original order. Bad offsets are a programming error and panic.
func (r *ElasticRange) Deactivate(first, last int) {
	if first < 0 || last < first || r.beg+last > r.end {
		panic(PanicMsg(ErrRangeBounds))
	}
	n := last - first
	if n == 0 {
		return
	}
	// Move [first,last) past the remaining active particles, then
	// shrink the window over it.
	r.rotateLeft(r.beg+first, r.end, n)
	r.end -= n
	r.check()
}

//Activate grows the active window by the inactive sub-range
//[first,last), offsets relative to the start of the inactive region.
//The activated particles keep their relative order and become the tail
//of the active window. Bad offsets are a programming error and panic.
func (r *ElasticRange) Activate(first, last int) {
	if first < 0 || last < first || r.end+last > r.trueEnd {
		panic(PanicMsg(ErrRangeBounds))
	}
	n := last - first
	if n == 0 {
		return
	}
	// Bring [first,last) to the front of the inactive region, then
	// grow the window over it.
	r.rotateLeft(r.end, r.end+last, first)
	r.end += n
	r.check()
}

//Relocate re-points the range at another backing slice, keeping the
//integer offsets. Used when a container hands its particles over to a
//copy. The new slice must be at least as long as the old capacity
//region.
func (r *ElasticRange) Relocate(p *[]Particle) {
	if len(*p) < r.trueEnd {
		panic(PanicMsg(ErrGroupRelocation))
	}
	r.p = p
}

//ToIndexPair converts pointers into the active window to a half-open
//pair of offsets relative to the window start, suitable for Change
//records. Pointers not inside the window are a programming error and
//panic.
func (r *ElasticRange) ToIndexPair(first, last *Particle) (int, int) {
	i := r.indexOf(first)
	j := r.indexOf(last)
	if i < 0 || j < i {
		panic(PanicMsg(ErrRangeBounds))
	}
	return i, j + 1
}

//indexOf returns the offset of p within the active window, or -1.
func (r *ElasticRange) indexOf(p *Particle) int {
	for i := r.beg; i < r.end; i++ {
		if p == &(*r.p)[i] {
			return i - r.beg
		}
	}
	return -1
}
