/*
 * state.go, part of neofaunus.
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
	"encoding/json"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/rc83/neofaunus/geometry"
)

//stateJSON is the on-disk snapshot of a container. Geometry is stored
//by kind plus its defining lengths; groups by molecule name and
//window offsets so a restored container rebuilds its views over the
//restored particle store.
type stateJSON struct {
	Geometry  stateGeoJSON     `json:"geometry"`
	Particles []Particle       `json:"particles"`
	Groups    []stateGroupJSON `json:"groups"`
}

type stateGeoJSON struct {
	Kind   string    `json:"type"`
	Length []float64 `json:"length"`
	Radius float64   `json:"radius,omitempty"`
}

type stateGroupJSON struct {
	Molecule string    `json:"molecule"`
	Begin    int       `json:"begin"`
	End      int       `json:"end"`
	TrueEnd  int       `json:"trueend"`
	CM       []float64 `json:"cm"`
}

//SaveState writes the container as a JSON snapshot to the named file.
//A ".state" or ".zst" suffix selects zstandard compression; anything
//else gets plain JSON.
func SaveState(s *Space, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return errDecorate(newError(true, "%v", err), "SaveState")
	}
	defer f.Close()
	st := stateJSON{
		Geometry: stateGeoJSON{
			Kind:   s.Geo.Kind().String(),
			Length: vecSlice(s.Geo.Length()),
			Radius: s.Geo.Radius(),
		},
		Particles: s.P,
	}
	for i := range s.Groups {
		g := &s.Groups[i]
		st.Groups = append(st.Groups, stateGroupJSON{
			Molecule: s.Molecules.Get(g.MolID).Name,
			Begin:    g.Begin(),
			End:      g.End(),
			TrueEnd:  g.TrueEnd(),
			CM:       vecSlice(g.CM),
		})
	}
	b, err := json.MarshalIndent(&st, "", " ")
	if err != nil {
		return errDecorate(newError(true, "%v", err), "SaveState")
	}
	if compressedState(name) {
		w, err := zstd.NewWriter(f)
		if err != nil {
			return errDecorate(newError(true, "%v", err), "SaveState")
		}
		if _, err := w.Write(b); err != nil {
			w.Close()
			return errDecorate(newError(true, "%v", err), "SaveState")
		}
		return w.Close()
	}
	_, err = f.Write(b)
	return err
}

//LoadState restores particles, groups and geometry from a snapshot
//written by SaveState into a container that already carries the atom
//and molecule registries.
func LoadState(s *Space, name string) error {
	b, err := os.ReadFile(name)
	if err != nil {
		return errDecorate(newError(true, "%v", err), "LoadState")
	}
	if compressedState(name) {
		r, err := zstd.NewReader(nil)
		if err != nil {
			return errDecorate(newError(true, "%v", err), "LoadState")
		}
		b, err = r.DecodeAll(b, nil)
		r.Close()
		if err != nil {
			return errDecorate(newError(true, "%v", err), "LoadState")
		}
	}
	st := stateJSON{}
	if err := json.Unmarshal(b, &st); err != nil {
		return errDecorate(newError(true, "%v", err), "LoadState")
	}
	geo, err := geometryFromState(&st.Geometry)
	if err != nil {
		return errDecorate(err, "LoadState")
	}
	s.Geo = geo
	s.P = st.Particles
	s.Groups = s.Groups[:0]
	for _, gj := range st.Groups {
		mol := s.Molecules.Find(gj.Molecule)
		if mol == nil {
			return newError(true, "state references unknown molecule type %q", gj.Molecule)
		}
		g := NewGroup(&s.P, gj.Begin, gj.TrueEnd)
		g.MolID = mol.ID()
		g.Atomic = mol.Atomic
		if n := gj.TrueEnd - gj.End; n > 0 {
			g.Deactivate(g.Len()-n, g.Len())
		}
		if g.CM, err = sliceVec(gj.CM); err != nil {
			return errDecorate(err, "LoadState")
		}
		s.Groups = append(s.Groups, *g)
	}
	return nil
}

func compressedState(name string) bool {
	return strings.HasSuffix(name, ".state") || strings.HasSuffix(name, ".zst")
}

func geometryFromState(g *stateGeoJSON) (*geometry.Geometry, error) {
	l, err := sliceVec(g.Length)
	if err != nil {
		return nil, err
	}
	switch g.Kind {
	case "cuboid":
		return geometry.NewCuboid(l)
	case "slit":
		return geometry.NewSlit(l)
	case "cylinder":
		return geometry.NewCylinder(g.Radius, l.Z)
	case "sphere":
		return geometry.NewSphere(g.Radius)
	}
	return nil, newError(true, "unknown geometry type %q", g.Kind)
}
