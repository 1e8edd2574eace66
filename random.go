/*
 * random.go, part of neofaunus.
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
	"math/rand"
	"time"
)

//Random is the uniform random source consumed by the container core
//and its collaborators. It is deterministic for a given seed; a single
//instance drives one replica and must not be shared across replicas.
type Random struct {
	rng *rand.Rand
}

//NewRandom returns a source seeded with the given seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

//Seed re-seeds the source non-deterministically.
func (r *Random) Seed() {
	r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
}

//Float returns a uniform number in [0,1).
func (r *Random) Float() float64 { return r.rng.Float64() }

//Range returns a uniform integer in [min,max].
func (r *Random) Range(min, max int) int {
	return min + r.rng.Intn(max-min+1)
}

//Sample returns a uniform index in [0,n).
func (r *Random) Sample(n int) int { return r.rng.Intn(n) }
