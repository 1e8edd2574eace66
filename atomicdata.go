/*
 * atomicdata.go, part of neofaunus.
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
)

//DefaultTemperature is the temperature [K] used for input energy
//conversions unless a table is configured otherwise.
const DefaultTemperature = 298.15

//AtomData holds the per-type physical parameters of an atom type. The
//embedded template particle carries charge, radius and multipole
//defaults assigned to every particle of this type.
type AtomData struct {
	//Name of the atom type.
	Name string
	//Particle is the template particle; its ID is the type id.
	Particle Particle
	//Eps is the Lennard-Jones well depth [kT].
	Eps float64
	//Activity is the chemical activity [particles/angstrom^3].
	Activity float64
	//DP is the translational displacement parameter [angstrom].
	DP float64
	//DProt is the rotational displacement parameter [radians].
	DProt float64
	//Weight is the atomic weight used for mass centers.
	Weight float64
}

//ID returns the type id of the atom type.
func (a *AtomData) ID() int { return a.Particle.ID }

//AtomTable is the registry of atom types. It is built once at startup
//and passed by reference to whoever needs per-type parameters; there is
//no process-wide instance. Type ids always match table indices.
type AtomTable struct {
	atoms  []AtomData
	byName map[string]int
	//Temperature [K] used to convert input energies to kT.
	Temperature float64
}

//NewAtomTable returns an empty registry at the default temperature.
func NewAtomTable() *AtomTable {
	return &AtomTable{byName: make(map[string]int), Temperature: DefaultTemperature}
}

//Add registers an atom type, assigning the next free type id. Adding a
//duplicate name is a configuration error.
func (t *AtomTable) Add(a AtomData) error {
	if _, dup := t.byName[a.Name]; dup {
		return newError(true, "atom type %q already registered", a.Name)
	}
	a.Particle.ID = len(t.atoms)
	t.byName[a.Name] = a.Particle.ID
	t.atoms = append(t.atoms, a)
	return nil
}

//Len returns the number of registered types.
func (t *AtomTable) Len() int { return len(t.atoms) }

//Get returns the atom type with the given id. Out-of-range ids are a
//programming error and panic.
func (t *AtomTable) Get(id int) *AtomData {
	if id < 0 || id >= len(t.atoms) {
		panic(PanicMsg("neofaunus: atom type id out of range"))
	}
	return &t.atoms[id]
}

//Find returns the atom type with the given name, or nil.
func (t *AtomTable) Find(name string) *AtomData {
	if id, ok := t.byName[name]; ok {
		return &t.atoms[id]
	}
	return nil
}

//Weight returns the weight of the type of particle p, defaulting to 1
//for unregistered ids so that mass centers degrade to geometric
//centers.
func (t *AtomTable) Weight(p *Particle) float64 {
	if t == nil || p.ID < 0 || p.ID >= len(t.atoms) {
		return 1
	}
	return t.atoms[p.ID].Weight
}

type atomDataJSON struct {
	Eps      float64 `json:"eps"`
	Activity float64 `json:"activity"`
	DP       float64 `json:"dp"`
	DProt    float64 `json:"dprot"`
	Weight   float64 `json:"mw"`
}

//UnmarshalJSON reads an atomlist: a list of single-key objects mapping
//the type name to its properties, in declaration order. Input units are
//converted to internal ones (activity mol/l, eps kJ/mol, dprot
//degrees).
func (t *AtomTable) UnmarshalJSON(b []byte) error {
	var list []map[string]json.RawMessage
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	if t.byName == nil {
		t.byName = make(map[string]int)
	}
	if t.Temperature == 0 {
		t.Temperature = DefaultTemperature
	}
	for _, entry := range list {
		if len(entry) != 1 {
			return newError(true, "atomlist entries must have exactly one key, got %d", len(entry))
		}
		for name, raw := range entry {
			p := NewParticle()
			if err := json.Unmarshal(raw, &p); err != nil {
				return errDecorate(newError(true, "atom type %q: %v", name, err), "AtomTable.UnmarshalJSON")
			}
			aux := atomDataJSON{Weight: 1}
			if err := json.Unmarshal(raw, &aux); err != nil {
				return errDecorate(newError(true, "atom type %q: %v", name, err), "AtomTable.UnmarshalJSON")
			}
			a := AtomData{
				Name:     name,
				Particle: p,
				Eps:      KJPerMol2KT(aux.Eps, t.Temperature),
				Activity: Molar2Density(aux.Activity),
				DP:       aux.DP,
				DProt:    Deg2Rad(aux.DProt),
				Weight:   aux.Weight,
			}
			if err := t.Add(a); err != nil {
				return errDecorate(err, "AtomTable.UnmarshalJSON")
			}
		}
	}
	return nil
}
