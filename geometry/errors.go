/*
 * errors.go, part of neofaunus.
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

package geometry

//Error is the error type returned by this package. Critical errors are
//configuration errors that make continued simulation meaningless.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns the error message.
func (err Error) Error() string { return err.message }

//Decorate adds dec to the decoration slice of the error and returns the
//resulting slice. An empty dec only retrieves the current decorations.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical reports whether the error is fatal for the run.
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics on programming errors. For
//recoverable conditions use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
