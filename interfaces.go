/*
 * interfaces.go, part of torsion.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

import v3 "github.com/chiangles/torsion/v3"

// Residue is the basic interface for a residue. Implementations are
// only read, never modified, by this package.
type Residue interface {

	//ResName returns the 3-letter code of the residue (ALA, GLY...)
	ResName() string

	//AtomCoord returns a 1x3 matrix with the coordinates of the atom
	//with the given name, and true. If no such atom is present, it
	//returns nil and false.
	AtomCoord(name string) (*v3.Matrix, bool)
}

// Sequenced is a residue that knows its place in a structure. When both
// residues of a backbone pair implement it, they are required to belong to the
// same chain.
type Sequenced interface {
	Residue

	//ResID returns the residue number in the structure.
	ResID() int

	//ChainID returns the chain to which the residue belongs.
	ChainID() string
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it just returns the current value.
}
