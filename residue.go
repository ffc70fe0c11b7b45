/*
 * residue.go, part of torsion.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package torsion

import (
	"fmt"

	v3 "github.com/chiangles/torsion/v3"
)

// Atom contains the data of an atom except for the coordinates, which
// are kept in a matrix by the residue.
type Atom struct {
	Name   string
	ID     int
	Symbol string
	Het    bool // is hetatm in the pdb file?
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	N := *A
	return &N
}

// Res is a simple implementation of the Sequenced interface: a residue
// with its atoms and their coordinates. The ith row of Coords contains
// the coordinates of the ith atom.
type Res struct {
	Name   string
	ID     int
	Chain  string
	Atoms  []*Atom
	Coords *v3.Matrix
}

// NewRes returns a residue with the given name, number, chain, atoms and coordinates.
// It returns an error if the number of atoms and coordinates doesn't match.
func NewRes(name string, id int, chain string, atoms []*Atom, coords *v3.Matrix) (*Res, error) {
	if atoms == nil || coords == nil {
		return nil, newError(ErrNilData, "", "NewRes")
	}
	if len(atoms) != coords.NVecs() {
		return nil, newError(ErrShape, fmt.Sprintf("%d atoms but %d coordinates", len(atoms), coords.NVecs()), "NewRes")
	}
	return &Res{Name: name, ID: id, Chain: chain, Atoms: atoms, Coords: coords}, nil
}

// NewResFromSlices returns a residue whose ith atom is named names[i] and placed in
// coords[3*i:3*i+3].
func NewResFromSlices(name string, id int, chain string, names []string, coords []float64) (*Res, error) {
	if len(coords) != 3*len(names) {
		return nil, newError(ErrShape, fmt.Sprintf("%d atom names but %d coordinates", len(names), len(coords)), "NewResFromSlices")
	}
	c, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(newError(ErrShape, err.Error()), "NewResFromSlices")
	}
	atoms := make([]*Atom, len(names))
	for i, v := range names {
		atoms[i] = &Atom{Name: v, ID: i + 1, Symbol: symbolFromName(v)}
	}
	return NewRes(name, id, chain, atoms, c)
}

// ResName returns the 3-letter code of the residue.
func (R *Res) ResName() string { return R.Name }

// ResID returns the residue number.
func (R *Res) ResID() int { return R.ID }

// ChainID returns the chain of the residue.
func (R *Res) ChainID() string { return R.Chain }

// Len returns the number of atoms in the residue.
func (R *Res) Len() int { return len(R.Atoms) }

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the residue. Panics if
// out of range.
func (R *Res) Atom(i int) *Atom {
	if i >= R.Len() {
		panic("Res: Requested Atom out of bounds")
	}
	return R.Atoms[i]
}

// AtomCoord returns a view of the coordinates of the first atom
// named name in the residue, and true, or nil and false if there is no such atom.
func (R *Res) AtomCoord(name string) (*v3.Matrix, bool) {
	for i, v := range R.Atoms {
		if v.Name == name {
			return R.Coords.VecView(i), true
		}
	}
	return nil, false
}

// AddAtom appends at, with coordinates x, y, z, at the end of the residue.
// The coordinates matrix is replaced by a new one.
func (R *Res) AddAtom(at *Atom, x, y, z float64) {
	var data []float64
	if R.Coords != nil {
		data = make([]float64, 0, 3*(R.Coords.NVecs()+1))
		for i := 0; i < R.Coords.NVecs(); i++ {
			data = append(data, R.Coords.RawRowView(i)...)
		}
	}
	data = append(data, x, y, z)
	R.Coords, _ = v3.NewMatrix(data) //can't fail, data has 3*n elements.
	R.Atoms = append(R.Atoms, at)
}

// symbolFromName guesses the element of a standard protein atom from its PDB name.
func symbolFromName(name string) string {
	if name == "" {
		return ""
	}
	return name[:1]
}
