/*
 * config.go, part of neofaunus.
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

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/gcfg.v1"

	faunus "github.com/rc83/neofaunus"
	"github.com/rc83/neofaunus/geometry"
)

const ExampleRunControl = `[MCLoop]
# Outer loop: state is saved and progress reported once per macro step.
Macro = 10
# Inner loop: trial moves per macro step.
Micro = 10000

[Run]
# Random number seed; 0 seeds from the clock.
Seed = 1
# JSON system file with atomlist, moleculelist, geometry and insert.
System = system.json
# Snapshot written after the run (.state / .zst selects compression).
State = confout.state
# Optional histogram plot of the sampled observable.
# Plot = zprofile.png
# Temperature in kelvin.
Temperature = 298.15
# Translational displacement amplitude, angstrom.
DP = 0.5`

//RunControl holds the parameters of one simulation run, read from an
//ini file.
type RunControl struct {
	MCLoop struct {
		Macro int
		Micro int
	}
	Run struct {
		Seed        int64
		System      string
		State       string
		Plot        string
		Temperature float64
		DP          float64
	}
}

//ReadRunControl parses the named ini file, filling in defaults for
//absent optional fields.
func ReadRunControl(fname string) (*RunControl, error) {
	rc := &RunControl{}
	rc.MCLoop.Macro = 10
	rc.MCLoop.Micro = 1000
	rc.Run.Temperature = faunus.DefaultTemperature
	rc.Run.DP = 0.5
	if err := gcfg.ReadFileInto(rc, fname); err != nil {
		return nil, fmt.Errorf("run control %s: %w", fname, err)
	}
	if rc.Run.System == "" {
		return nil, fmt.Errorf("run control %s: [Run] System is required", fname)
	}
	return rc, nil
}

type systemJSON struct {
	Geometry     json.RawMessage   `json:"geometry"`
	AtomList     json.RawMessage   `json:"atomlist"`
	MoleculeList json.RawMessage   `json:"moleculelist"`
	Insert       []insertDirective `json:"insert"`
}

type insertDirective struct {
	Molecule string `json:"molecule"`
	N        int    `json:"N"`
	Inactive int    `json:"inactive"`
}

type geometryJSON struct {
	Type   string    `json:"type"`
	Length []float64 `json:"length"`
	Radius float64   `json:"radius"`
}

//BuildSpace reads the JSON system file and returns a filled container:
//registries loaded, geometry constructed and the insert directives
//executed with a RandomInserter.
func BuildSpace(fname string, rnd *faunus.Random, temperature float64) (*faunus.Space, error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	sys := systemJSON{}
	if err := json.Unmarshal(b, &sys); err != nil {
		return nil, fmt.Errorf("system %s: %w", fname, err)
	}
	geo, err := buildGeometry(sys.Geometry)
	if err != nil {
		return nil, fmt.Errorf("system %s: %w", fname, err)
	}
	atoms := faunus.NewAtomTable()
	atoms.Temperature = temperature
	if err := json.Unmarshal(sys.AtomList, atoms); err != nil {
		return nil, fmt.Errorf("system %s: atomlist: %w", fname, err)
	}
	molecules := faunus.NewMoleculeTable()
	if sys.MoleculeList != nil {
		if err := molecules.DecodeMoleculeList(sys.MoleculeList, atoms); err != nil {
			return nil, fmt.Errorf("system %s: moleculelist: %w", fname, err)
		}
	}
	spc := faunus.NewSpace(geo, atoms, molecules)
	ins := faunus.NewRandomInserter()
	for _, d := range sys.Insert {
		mol := molecules.Find(d.Molecule)
		if mol == nil {
			return nil, fmt.Errorf("system %s: insert of unknown molecule %q", fname, d.Molecule)
		}
		for i := 0; i < d.N; i++ {
			ps, err := ins.Insert(geo, mol, rnd)
			if err != nil {
				return nil, fmt.Errorf("system %s: %w", fname, err)
			}
			inactive := 0
			if i >= d.N-d.Inactive {
				inactive = len(ps)
			}
			if _, err := spc.Append(mol.ID(), ps, inactive); err != nil {
				return nil, fmt.Errorf("system %s: %w", fname, err)
			}
		}
	}
	return spc, nil
}

func buildGeometry(raw json.RawMessage) (*geometry.Geometry, error) {
	gj := geometryJSON{}
	if err := json.Unmarshal(raw, &gj); err != nil {
		return nil, err
	}
	l := geometry.Vec{}
	if len(gj.Length) == 3 {
		l = geometry.Vec{X: gj.Length[0], Y: gj.Length[1], Z: gj.Length[2]}
	} else if len(gj.Length) == 1 {
		l = geometry.Vec{X: gj.Length[0], Y: gj.Length[0], Z: gj.Length[0]}
	}
	switch gj.Type {
	case "cuboid":
		return geometry.NewCuboid(l)
	case "slit":
		return geometry.NewSlit(l)
	case "cylinder":
		return geometry.NewCylinder(gj.Radius, l.Z)
	case "sphere":
		return geometry.NewSphere(gj.Radius)
	}
	return nil, fmt.Errorf("unknown geometry type %q", gj.Type)
}
