/*
 * run.go, part of neofaunus.
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
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"

	faunus "github.com/rc83/neofaunus"
	"github.com/rc83/neofaunus/analysis"
	"github.com/rc83/neofaunus/geometry"
)

//runSimulation performs a hard-sphere Metropolis run: random rigid
//translations of whole molecules, accepted unless they produce an
//overlap. The trial container carries the perturbed state; the
//accepted container follows through Sync.
func runSimulation(rc *RunControl) error {
	rnd := faunus.NewRandom(rc.Run.Seed)
	if rc.Run.Seed == 0 {
		rnd.Seed()
	}
	spc, err := BuildSpace(rc.Run.System, rnd, rc.Run.Temperature)
	if err != nil {
		return err
	}
	trial := spc.Clone()
	slog.Info("system ready",
		"geometry", spc.Geo.Kind().String(),
		"volume", spc.Geo.Volume(),
		"particles", spc.NumParticles(),
		"groups", len(spc.Groups))

	lz := spc.Geo.Length().Z
	zprofile := analysis.NewHistogram(-lz/2, lz/2, 100)
	acceptance := analysis.Average{}
	ch := faunus.Change{}

	for macro := 0; macro < rc.MCLoop.Macro; macro++ {
		for micro := 0; micro < rc.MCLoop.Micro; micro++ {
			gi := trial.RandomMolecule(-1, rnd)
			if gi < 0 {
				break
			}
			ch.Clear()
			ch.Touched(gi).All = true
			d := geometry.Vec{
				X: (rnd.Float() - 0.5) * rc.Run.DP,
				Y: (rnd.Float() - 0.5) * rc.Run.DP,
				Z: (rnd.Float() - 0.5) * rc.Run.DP,
			}
			g := &trial.Groups[gi]
			if !g.Atomic && g.Len() > 1 && rnd.Float() < 0.5 {
				rot := geometry.NewRotation(
					(rnd.Float()-0.5)*rc.Run.DP,
					geometry.RandomUnitVec(rnd.Float))
				g.Rotate(rot, trial.Geo.Boundary)
			} else {
				g.Translate(d, trial.Geo.Boundary)
			}
			if hardSphereOverlap(trial, gi) {
				trial.Sync(spc, &ch)
				acceptance.Add(0)
			} else {
				spc.Sync(trial, &ch)
				acceptance.Add(1)
			}
		}
		for i := range spc.Groups {
			ps := spc.Groups[i].Active()
			for j := range ps {
				zprofile.Add(ps[j].Pos.Z)
			}
		}
		slog.Info("macro step done",
			"step", macro+1,
			"acceptance", acceptance.Mean())
	}

	slog.Info("run finished", "acceptance", acceptance.String())
	if rc.Run.State != "" {
		if err := faunus.SaveState(spc, rc.Run.State); err != nil {
			return err
		}
		slog.Info("state saved", "file", rc.Run.State)
	}
	if rc.Run.Plot != "" {
		if err := analysis.PlotHistogram(zprofile, "z density profile", "z", rc.Run.Plot); err != nil {
			return err
		}
		slog.Info("plot saved", "file", rc.Run.Plot)
	}
	return nil
}

//hardSphereOverlap reports whether any active particle of group gi
//overlaps an active particle of another group, using the particle
//radii and minimum-image distances.
func hardSphereOverlap(spc *faunus.Space, gi int) bool {
	moved := spc.Groups[gi].Active()
	for mi := range moved {
		if spc.Geo.Collision(moved[mi].Pos, moved[mi].Radius) {
			return true
		}
		for oi := range spc.Groups {
			if oi == gi {
				continue
			}
			others := spc.Groups[oi].Active()
			for oj := range others {
				d := spc.Geo.VDist(moved[mi].Pos, others[oj].Pos)
				if r3.Norm(d) < moved[mi].Radius+others[oj].Radius {
					return true
				}
			}
		}
	}
	return false
}
