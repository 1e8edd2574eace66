/*
 * change.go, part of neofaunus.
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

//GroupChange records what a trial move touched inside one group.
type GroupChange struct {
	//Index of the group in the container's group list.
	Index int
	//All marks every active particle in the group as touched.
	All bool
	//Atoms lists touched particle offsets relative to the group's
	//active window. Ignored when All is set.
	Atoms []int
	//Activated lists half-open offset pairs activated by the move.
	Activated [][2]int
	//Deactivated lists half-open offset pairs deactivated by the
	//move.
	Deactivated [][2]int
}

//Change describes a trial move to interested parties: which groups
//were touched and whether the volume changed. Energy evaluation and
//container synchronization both consume it.
type Change struct {
	//DV is the volume change, zero for constant-volume moves.
	DV float64
	//Groups lists the touched groups.
	Groups []GroupChange
}

//Empty reports whether the change describes no perturbation at all:
//no volume change and no touched groups.
func (c *Change) Empty() bool {
	return c.DV == 0 && len(c.Groups) == 0
}

//Clear resets the change for reuse, keeping allocated capacity.
func (c *Change) Clear() {
	c.DV = 0
	c.Groups = c.Groups[:0]
}

//Touched appends a record for group index and returns it for further
//filling.
func (c *Change) Touched(index int) *GroupChange {
	c.Groups = append(c.Groups, GroupChange{Index: index})
	return &c.Groups[len(c.Groups)-1]
}

//TouchedGroupIndices returns the distinct group indices referenced by
//the change, in first-touched order. Note that a nonzero DV affects
//every group regardless of the indices listed here.
func (c *Change) TouchedGroupIndices() []int {
	var out []int
	seen := make(map[int]bool, len(c.Groups))
	for i := range c.Groups {
		if !seen[c.Groups[i].Index] {
			seen[c.Groups[i].Index] = true
			out = append(out, c.Groups[i].Index)
		}
	}
	return out
}
