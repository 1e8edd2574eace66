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

package faunus

import "fmt"

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows to add and retrieve information
//from the error without changing its type or wrapping it.
type Error interface {
	error
	//Decorate adds dec to the decoration slice of the error, and
	//returns the resulting slice. If passed an empty string it only
	//returns the current value. Each element should name a function in
	//the calling stack, optionally as "FunctionName: extra info".
	Decorate(string) []string
	//Critical reports whether the error is fatal for the run (a
	//configuration or invariant problem) as opposed to a recoverable
	//collaborator-level condition such as exhausted insertion retries.
	Critical() bool
}

//CError is the concrete Error used across the root package.
type CError struct {
	msg      string
	deco     []string
	critical bool
}

func newError(critical bool, format string, args ...interface{}) *CError {
	return &CError{msg: fmt.Sprintf(format, args...), critical: critical}
}

//Error returns the error message.
func (err *CError) Error() string { return err.msg }

//Decorate adds dec to the decoration slice and returns it.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical reports whether the error is fatal for the run.
func (err *CError) Critical() bool { return err.critical }

//errDecorate asserts that err implements Error and decorates it with
//the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return fmt.Errorf("%s: %w", caller, err)
	}
	err2.Decorate(caller)
	return err2
}

//MaxTrialsError is returned by inserters that exhaust their retry
//budget without finding a non-overlapping position. It is recoverable
//at the caller's level.
type MaxTrialsError struct {
	Molecule string
	Trials   int
}

func (e *MaxTrialsError) Error() string {
	return fmt.Sprintf("max number of overlap checks (%d) reached upon insertion of %q", e.Trials, e.Molecule)
}

//Decorate implements Error.
func (e *MaxTrialsError) Decorate(dec string) []string { return nil }

//Critical implements Error. Exhausted retries are not fatal.
func (e *MaxTrialsError) Critical() bool { return false }

//PanicMsg is a message used for panics on programming errors: invariant
//violations that make the program state meaningless.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrRangeInvariant    = PanicMsg("neofaunus: elastic range invariant violated")
	ErrRangeBounds       = PanicMsg("neofaunus: elastic range operation out of bounds")
	ErrCapacityMismatch  = PanicMsg("neofaunus: group capacity mismatch")
	ErrGroupRelocation   = PanicMsg("neofaunus: group relocation check failed after append")
	ErrInvalidGroupIndex = PanicMsg("neofaunus: change references an invalid group index")
)
