/*
 * units.go, part of neofaunus.
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

import "math"

//Physical constants in SI units.
const (
	//Permittivity of vacuum [C^2/(J*m)]
	E0 = 8.85419e-12
	//Absolute electronic unit charge [C]
	EC = 1.602177e-19
	//Boltzmann's constant [J/K]
	KB = 1.380658e-23
	//Avogadro's number [1/mol]
	Nav = 6.022137e23
)

//Internal units are thermal energy (kT), angstrom, and electron unit
//charge; concentrations are particles per cubic angstrom.

//KT returns the thermal energy in Joule at the given temperature in
//Kelvin.
func KT(tempK float64) float64 { return tempK * KB }

//BjerrumLength returns the Bjerrum length in angstrom for the given
//temperature (Kelvin) and relative permittivity.
func BjerrumLength(tempK, epsR float64) float64 {
	return EC * EC / (4 * math.Pi * E0 * epsR * 1e-10 * KT(tempK))
}

//Debye2EA converts a dipole moment from Debye to electron-angstrom.
func Debye2EA(mu float64) float64 { return mu * 0.208194334424626 }

//Deg2Rad converts degrees to radians.
func Deg2Rad(a float64) float64 { return a * math.Pi / 180 }

//Molar2Density converts a molar concentration to particles per cubic
//angstrom.
func Molar2Density(c float64) float64 { return c * Nav / 1e27 }

//KJPerMol2KT converts an energy in kJ/mol to thermal energy units at
//the given temperature in Kelvin.
func KJPerMol2KT(u, tempK float64) float64 {
	return u / KT(tempK) / Nav * 1e3
}
