/*
 * change_test.go, part of neofaunus.
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

//A change is empty only when nothing at all was perturbed. A volume
//change alone, or a touched group alone, must both count as
//non-empty.
func TestChangeEmpty(Te *testing.T) {
	c := Change{}
	if !c.Empty() {
		Te.Error("zero-value change must be empty")
	}
	c = Change{DV: 0.1}
	if c.Empty() {
		Te.Error("volume-only change must not be empty")
	}
	c = Change{}
	c.Touched(0).All = true
	if c.Empty() {
		Te.Error("group-only change must not be empty")
	}
	c.DV = -0.5
	if c.Empty() {
		Te.Error("change with both volume and groups must not be empty")
	}
}

func TestChangeClearKeepsCapacity(Te *testing.T) {
	c := Change{DV: 1}
	c.Touched(3).Atoms = []int{1, 2}
	c.Clear()
	if !c.Empty() {
		Te.Error("cleared change must be empty")
	}
	if cap(c.Groups) == 0 {
		Te.Error("Clear must keep allocated capacity")
	}
}

func TestChangeTouched(Te *testing.T) {
	c := Change{}
	gc := c.Touched(5)
	gc.Atoms = append(gc.Atoms, 7)
	if len(c.Groups) != 1 || c.Groups[0].Index != 5 || c.Groups[0].Atoms[0] != 7 {
		Te.Errorf("touched record not stored: %+v", c.Groups)
	}
}

func TestTouchedGroupIndices(Te *testing.T) {
	c := Change{}
	c.Touched(2)
	c.Touched(0)
	c.Touched(2)
	got := c.TouchedGroupIndices()
	if len(got) != 2 || got[0] != 2 || got[1] != 0 {
		Te.Errorf("touched indices = %v, want [2 0]", got)
	}
}
