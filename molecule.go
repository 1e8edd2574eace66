/*
 * molecule.go, part of neofaunus.
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

	"github.com/rc83/neofaunus/geometry"
)

//MoleculeData holds the general properties of a molecule type: its
//atoms, whether it is an atomic group (salt etc.), insertion hints and
//the stored conformations a new instance is drawn from.
type MoleculeData struct {
	id int
	//Name of the molecule type.
	Name string
	//Atomic is true for atomic groups.
	Atomic bool
	//Rotate requests random rotation upon insertion.
	Rotate bool
	//KeepPos keeps the stored conformation positions on insertion.
	KeepPos bool
	//Activity is the chemical activity [particles/angstrom^3].
	Activity float64
	//InsDir scales random insertion positions per axis.
	InsDir geometry.Vec
	//InsOffset is added to the insertion position.
	InsOffset geometry.Vec
	//Atoms is the sequence of atom type ids in the molecule.
	Atoms []int

	conformations [][]Particle
	weights       []float64
	weightSum     float64
}

//ID returns the type id of the molecule type.
func (m *MoleculeData) ID() int { return m.id }

//PushConformation stores one conformation with the given relative
//weight (use 1 for uniform sampling). The particle slice is copied.
func (m *MoleculeData) PushConformation(ps []Particle, weight float64) {
	c := make([]Particle, len(ps))
	copy(c, ps)
	m.conformations = append(m.conformations, c)
	m.weights = append(m.weights, weight)
	m.weightSum += weight
}

//NumConformations returns the number of stored conformations.
func (m *MoleculeData) NumConformations() int { return len(m.conformations) }

//RandomConformation returns a fresh copy of a weighted-random stored
//conformation. A molecule type with no conformations is a
//configuration error.
func (m *MoleculeData) RandomConformation(rnd *Random) ([]Particle, error) {
	if len(m.conformations) == 0 {
		return nil, newError(true, "no conformations for molecule %q; perhaps the 'atomic' keyword was forgotten", m.Name)
	}
	x := rnd.Float() * m.weightSum
	i := 0
	for ; i < len(m.weights)-1; i++ {
		x -= m.weights[i]
		if x < 0 {
			break
		}
	}
	out := make([]Particle, len(m.conformations[i]))
	copy(out, m.conformations[i])
	return out, nil
}

//MoleculeTable is the registry of molecule types, constructed once at
//startup and passed by reference. Type ids match table indices.
type MoleculeTable struct {
	molecules []MoleculeData
	byName    map[string]int
}

//NewMoleculeTable returns an empty registry.
func NewMoleculeTable() *MoleculeTable {
	return &MoleculeTable{byName: make(map[string]int)}
}

//Add registers a molecule type, assigning the next free type id.
func (t *MoleculeTable) Add(m MoleculeData) error {
	if _, dup := t.byName[m.Name]; dup {
		return newError(true, "molecule type %q already registered", m.Name)
	}
	m.id = len(t.molecules)
	t.byName[m.Name] = m.id
	t.molecules = append(t.molecules, m)
	return nil
}

//Len returns the number of registered types.
func (t *MoleculeTable) Len() int { return len(t.molecules) }

//Get returns the molecule type with the given id. Out-of-range ids are
//a programming error and panic.
func (t *MoleculeTable) Get(id int) *MoleculeData {
	if id < 0 || id >= len(t.molecules) {
		panic(PanicMsg("neofaunus: molecule type id out of range"))
	}
	return &t.molecules[id]
}

//Find returns the molecule type with the given name, or nil.
func (t *MoleculeTable) Find(name string) *MoleculeData {
	if id, ok := t.byName[name]; ok {
		return &t.molecules[id]
	}
	return nil
}

type moleculeDataJSON struct {
	Activity  float64    `json:"activity"`
	Atomic    bool       `json:"atomic"`
	Rotate    *bool      `json:"rotate"`
	KeepPos   bool       `json:"keeppos"`
	InsDir    []float64  `json:"insdir"`
	InsOffset []float64  `json:"insoffset"`
	Atoms     []string   `json:"atoms"`
	Structure []Particle `json:"structure"`
}

//DecodeMoleculeList reads a moleculelist (a list of single-key objects
//mapping molecule names to properties) into the table. Atom names are
//resolved against the given atom table; an inline "structure" becomes
//the first conformation. Atomic groups get one conformation holding one
//template particle per atom.
func (t *MoleculeTable) DecodeMoleculeList(b []byte, atoms *AtomTable) error {
	var list []map[string]json.RawMessage
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	if t.byName == nil {
		t.byName = make(map[string]int)
	}
	for _, entry := range list {
		if len(entry) != 1 {
			return newError(true, "moleculelist entries must have exactly one key, got %d", len(entry))
		}
		for name, raw := range entry {
			aux := moleculeDataJSON{}
			if err := json.Unmarshal(raw, &aux); err != nil {
				return errDecorate(newError(true, "molecule type %q: %v", name, err), "MoleculeTable.DecodeMoleculeList")
			}
			m := MoleculeData{
				Name:      name,
				Atomic:    aux.Atomic,
				Rotate:    true,
				KeepPos:   aux.KeepPos,
				Activity:  Molar2Density(aux.Activity),
				InsDir:    geometry.Vec{X: 1, Y: 1, Z: 1},
				InsOffset: geometry.Vec{},
			}
			if aux.Rotate != nil {
				m.Rotate = *aux.Rotate
			}
			var err error
			if aux.InsDir != nil {
				if m.InsDir, err = sliceVec(aux.InsDir); err != nil {
					return errDecorate(err, "MoleculeTable.DecodeMoleculeList")
				}
			}
			if aux.InsOffset != nil {
				if m.InsOffset, err = sliceVec(aux.InsOffset); err != nil {
					return errDecorate(err, "MoleculeTable.DecodeMoleculeList")
				}
			}
			var template []Particle
			for _, an := range aux.Atoms {
				ad := atoms.Find(an)
				if ad == nil {
					return newError(true, "molecule type %q references unknown atom type %q", name, an)
				}
				m.Atoms = append(m.Atoms, ad.ID())
				template = append(template, ad.Particle)
			}
			switch {
			case len(aux.Structure) > 0:
				m.PushConformation(aux.Structure, 1)
				if len(m.Atoms) == 0 {
					for _, p := range aux.Structure {
						m.Atoms = append(m.Atoms, p.ID)
					}
				}
			case len(template) > 0:
				m.PushConformation(template, 1)
			}
			if err := t.Add(m); err != nil {
				return errDecorate(err, "MoleculeTable.DecodeMoleculeList")
			}
		}
	}
	return nil
}
