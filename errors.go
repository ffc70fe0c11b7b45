/*
 * errors.go, part of torsion.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package torsion

import "strings"

// ErrKind is the kind of a CError. The ErrKind constants can be used as targets
// for errors.Is.
type ErrKind string

func (e ErrKind) Error() string { return string(e) }

const (
	ErrInvalidAngleName ErrKind = "No such dihedral angle"
	ErrUnknownResidue   ErrKind = "No such residue name"
	ErrBadResidues      ErrKind = "Wrong residues for the requested angle"
	ErrNilData          ErrKind = "Nil data given"
	ErrShape            ErrKind = "Atoms and coordinates don't match"
)

// CError is the error type returned by this package.
type CError struct {
	msg  string
	deco []string
	kind ErrKind
}

// newError returns a CError of kind kind, with the message msg, decorated
// with the given function names.
func newError(kind ErrKind, msg string, deco ...string) CError {
	if msg == "" {
		msg = string(kind)
	}
	return CError{msg: msg, deco: deco, kind: kind}
}

// Error returns a string with the error message and the function
// calls it has passed through.
func (err CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return err.msg + " (" + strings.Join(err.deco, ", ") + ")"
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Unwrap returns the kind of the error.
func (err CError) Unwrap() error {
	return err.kind
}

// errDecorate adds caller to the decorations of err if it is a CError,
// and returns it. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(CError); ok {
		e.deco = e.Decorate(caller)
		return e
	}
	return err
}
