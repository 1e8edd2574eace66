/*
 * elastic_test.go, part of neofaunus.
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

import "testing"

func idParticles(ids ...int) []Particle {
	ps := make([]Particle, len(ids))
	for i, id := range ids {
		ps[i] = NewParticle()
		ps[i].ID = id
	}
	return ps
}

func activeIDs(r *ElasticRange) []int {
	ps := r.Active()
	out := make([]int, len(ps))
	for i := range ps {
		out[i] = ps[i].ID
	}
	return out
}

func sameIDs(a []int, b ...int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDeactivatePreservesOrder(Te *testing.T) {
	ps := idParticles(10, 20, 30, 40, 50, 60)
	r := NewElasticRange(&ps, 0, len(ps))
	r.Deactivate(1, 3)
	if r.Len() != 4 || r.Capacity() != 6 {
		Te.Errorf("got len %d cap %d, want 4 and 6", r.Len(), r.Capacity())
	}
	if got := activeIDs(r); !sameIDs(got, 10, 40, 50, 60) {
		Te.Errorf("active after deactivate: %v", got)
	}
	// the deactivated pair heads the inactive region, in order
	inact := r.Inactive()
	if len(inact) != 2 || inact[0].ID != 20 || inact[1].ID != 30 {
		Te.Errorf("inactive after deactivate: %v", inact)
	}
}

func TestActivateRoundTrip(Te *testing.T) {
	ps := idParticles(10, 20, 30, 40, 50, 60)
	r := NewElasticRange(&ps, 0, len(ps))
	r.Deactivate(1, 3)
	r.Activate(0, 2)
	if r.Len() != 6 {
		Te.Errorf("got len %d after round trip, want 6", r.Len())
	}
	seen := map[int]bool{}
	for _, id := range activeIDs(r) {
		seen[id] = true
	}
	for _, id := range []int{10, 20, 30, 40, 50, 60} {
		if !seen[id] {
			Te.Errorf("particle %d lost in round trip", id)
		}
	}
}

func TestDeactivateAllThenActivateAll(Te *testing.T) {
	ps := idParticles(1, 2, 3)
	r := NewElasticRange(&ps, 0, len(ps))
	r.Deactivate(0, r.Len())
	if !r.Empty() {
		Te.Error("range not empty after deactivating all")
	}
	r.Activate(0, r.Capacity())
	if got := activeIDs(r); !sameIDs(got, 1, 2, 3) {
		Te.Errorf("full round trip must restore the original order, got %v", got)
	}
}

func TestElasticRangeSubranges(Te *testing.T) {
	ps := idParticles(10, 20, 30, 40, 50, 60)
	r := NewElasticRange(&ps, 2, 6)
	if r.Begin() != 2 || r.TrueEnd() != 6 || r.Capacity() != 4 {
		Te.Errorf("window offsets wrong: beg %d trueEnd %d", r.Begin(), r.TrueEnd())
	}
	if r.At(0).ID != 30 {
		Te.Errorf("At(0) = %d, want 30", r.At(0).ID)
	}
	r.Deactivate(0, 1)
	if got := activeIDs(r); !sameIDs(got, 40, 50, 60) {
		Te.Errorf("active after deactivate: %v", got)
	}
	// particles before the window must be untouched
	if ps[0].ID != 10 || ps[1].ID != 20 {
		Te.Errorf("particles outside window disturbed: %v %v", ps[0].ID, ps[1].ID)
	}
}

func TestElasticRangePanicsOnBadOffsets(Te *testing.T) {
	ps := idParticles(1, 2, 3)
	r := NewElasticRange(&ps, 0, len(ps))
	defer func() {
		if recover() == nil {
			Te.Error("Deactivate with out-of-window offsets did not panic")
		}
	}()
	r.Deactivate(1, 5)
}

func TestToIndexPair(Te *testing.T) {
	ps := idParticles(10, 20, 30, 40)
	r := NewElasticRange(&ps, 0, len(ps))
	first, last := r.ToIndexPair(&ps[1], &ps[2])
	if first != 1 || last != 3 {
		Te.Errorf("got (%d,%d), want (1,3)", first, last)
	}
}

func TestRangeSurvivesSliceGrowth(Te *testing.T) {
	ps := idParticles(10, 20, 30)
	r := NewElasticRange(&ps, 0, 3)
	// force reallocation of the backing array
	for i := 0; i < 100; i++ {
		p := NewParticle()
		p.ID = 1000 + i
		ps = append(ps, p)
	}
	if got := activeIDs(r); !sameIDs(got, 10, 20, 30) {
		Te.Errorf("active after growth: %v", got)
	}
}
