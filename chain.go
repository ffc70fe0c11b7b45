/*
 * chain.go, part of torsion.
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

import (
	"fmt"
	"log"

	"github.com/chiangles/torsion/histo"
	v3 "github.com/chiangles/torsion/v3"
)

// ResidueTorsions contains the dihedrals obtained for one residue of a chain.
type ResidueTorsions struct {
	Res    Residue
	Index  int    //position of the residue in the chain
	Prev   string //name of the preceding residue, empty for the first one
	Next   string //name of the following residue, empty for the last one
	Angles map[AngleName]Result
}

// Angle returns the Result for the dihedral a. Angles that were not
// requested are NotApplicable.
func (R *ResidueTorsions) Angle(a AngleName) Result {
	r, ok := R.Angles[a]
	if !ok {
		return Result{Status: NotApplicable}
	}
	return r
}

// bonded returns true unless prev and next belong to different chains or, when both
// the C of prev and the N of next are present, they are farther than maxdist.
func bonded(prev, next Residue, maxdist float64) bool {
	if p, ok := prev.(Sequenced); ok {
		if n, ok := next.(Sequenced); ok && p.ChainID() != n.ChainID() {
			return false
		}
	}
	if maxdist <= 0 {
		return true
	}
	c, okc := prev.AtomCoord("C")
	n, okn := next.AtomCoord("N")
	if !okc || !okn {
		return true //the missing atom will be reported by DihedralAngle
	}
	return v3.Distance(c, n) <= maxdist
}

func residueTorsions(chain []Residue, i int, o *Options) (*ResidueTorsions, error) {
	res := chain[i]
	angles := o.Angles()
	ret := &ResidueTorsions{Res: res, Index: i, Angles: make(map[AngleName]Result, len(angles))}
	var prev, next Residue
	if i > 0 {
		prev = chain[i-1]
		ret.Prev = prev.ResName()
	}
	if i < len(chain)-1 {
		next = chain[i+1]
		ret.Next = next.ResName()
	}
	for _, a := range angles {
		pair := []Residue{res}
		switch a {
		case Phi:
			pair = []Residue{prev, res}
		case Psi:
			pair = []Residue{res, next}
		}
		if a.IsBackbone() {
			if pair[0] == nil || pair[1] == nil {
				ret.Angles[a] = Result{Status: NotApplicable}
				continue
			}
			if !bonded(pair[0], pair[1], o.MaxPeptideBond()) {
				if o.Verbose() {
					log.Printf("torsion.ChainTorsions: %s of residue %d (%s) not obtained: chain break", a, i, res.ResName())
				}
				ret.Angles[a] = Result{Status: ChainBreak}
				continue
			}
		}
		r, err := DihedralAngle(pair, a)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("residueTorsions: residue %d", i))
		}
		ret.Angles[a] = r
	}
	return ret, nil
}

func concTorsions(chain []Residue, begin, end int, o *Options, ret []*ResidueTorsions, r chan error) {
	for i := begin; i < end; i++ {
		t, err := residueTorsions(chain, i, o)
		if err != nil {
			r <- err
			return
		}
		ret[i] = t
	}
	r <- nil
}

// ChainTorsions obtains the dihedrals requested in o for each residue in chain, which must
// be ordered from the N to the C terminus. Phi is not defined for the first residue, nor psi
// for the last. The residues are split among o.Cpus() gorutines. The results are
// in the same order as chain. If o is nil, DefaultOptions is used.
func ChainTorsions(chain []Residue, o *Options) ([]*ResidueTorsions, error) {
	if chain == nil {
		return nil, newError(ErrNilData, "", "ChainTorsions")
	}
	if o == nil {
		o = DefaultOptions()
	}
	for i, v := range chain {
		if isNilResidue(v) {
			return nil, newError(ErrNilData, fmt.Sprintf("residue %d is nil", i), "ChainTorsions")
		}
	}
	for _, a := range o.Angles() {
		if !a.valid() {
			return nil, newError(ErrInvalidAngleName, fmt.Sprintf("No such dihedral angle: %d", int(a)), "ChainTorsions")
		}
	}
	ret := make([]*ResidueTorsions, len(chain))
	cpus := o.Cpus()
	if cpus > len(chain) {
		cpus = len(chain)
	}
	if cpus < 1 {
		cpus = 1
	}
	chunk := (len(chain) + cpus - 1) / cpus
	results := make([]chan error, 0, cpus)
	for begin := 0; begin < len(chain); begin += chunk {
		end := begin + chunk
		if end > len(chain) {
			end = len(chain)
		}
		r := make(chan error, 1)
		results = append(results, r)
		go concTorsions(chain, begin, end, o, ret, r)
	}
	var err error
	for _, r := range results {
		if e := <-r; e != nil && err == nil {
			err = e
		}
	}
	if err != nil {
		return nil, errDecorate(err, "ChainTorsions")
	}
	return ret, nil
}

// Query selects the values of one dihedral. Empty strings match any residue.
type Query struct {
	ResName string
	Angle   AngleName
	Prev    string
	Next    string
}

func (Q Query) matches(t *ResidueTorsions) bool {
	if t == nil || isNilResidue(t.Res) {
		return false
	}
	return (Q.ResName == "" || Q.ResName == t.Res.ResName()) &&
		(Q.Prev == "" || Q.Prev == t.Prev) &&
		(Q.Next == "" || Q.Next == t.Next)
}

// Collect returns the values, in degrees, of the dihedral q.Angle for the residues in t
// that match q. Undefined values are skipped.
func Collect(t []*ResidueTorsions, q Query) []float64 {
	ret := make([]float64, 0, len(t))
	for _, v := range t {
		if !q.matches(v) {
			continue
		}
		if r := v.Angle(q.Angle); r.Defined() {
			ret = append(ret, r.Degrees)
		}
	}
	return ret
}

// FilterByName filters the torsions by residue (ex. only GLY, everything but GLY).
// The 3 letter codes of the residues to be filtered in or out are in names, whether they are filtered in
// or out depends on shouldBePresent. It returns the filtered data and a slice containing the indexes in
// the new data of the residues in the old data, when they are included, or -1 when they are not included.
// nil elements are never included.
func FilterByName(t []*ResidueTorsions, names []string, shouldBePresent bool) ([]*ResidueTorsions, []int) {
	ret := make([]*ResidueTorsions, 0, len(t))
	index := make([]int, len(t))
	for key, val := range t {
		if val == nil || isNilResidue(val.Res) {
			index[key] = -1
			continue
		}
		if isInString(names, val.Res.ResName()) == shouldBePresent {
			index[key] = len(ret)
			ret = append(ret, val)
		} else {
			index[key] = -1
		}
	}
	return ret, index
}

// Ramachandran returns the (phi, psi) pairs, in degrees, of the residues in t for which
// both angles are defined.
func Ramachandran(t []*ResidueTorsions) [][]float64 {
	ret := make([][]float64, 0, len(t))
	for _, v := range t {
		phi, psi := v.Angle(Phi), v.Angle(Psi)
		if phi.Defined() && psi.Defined() {
			ret = append(ret, []float64{phi.Degrees, psi.Degrees})
		}
	}
	return ret
}

// HistogramIndex returns the row and column, in the matrix returned by Histograms, of the
// histogram for the dihedral angle of the amino acid resName.
func HistogramIndex(resName string, angle AngleName) (int, int, error) {
	r, ok := aminoacidIndex[resName]
	if !ok {
		return -1, -1, newError(ErrUnknownResidue, "No such amino acid: "+resName, "HistogramIndex")
	}
	if angle == NoAngle || !angle.valid() {
		return -1, -1, newError(ErrInvalidAngleName, "", "HistogramIndex")
	}
	return r, int(angle - Chi1), nil
}

// Histograms bins the defined dihedrals in t. It returns a matrix with one histogram per standard
// amino acid (rows, in the order of AminoAcids) and dihedral (columns, in the order of AllAngles),
// each with o.Bins() bins between -180 and 180 degrees. Non-standard residues are ignored.
// If o is nil, DefaultOptions is used.
func Histograms(t []*ResidueTorsions, o *Options) (*histo.Matrix, error) {
	if o == nil {
		o = DefaultOptions()
	}
	angles := AllAngles()
	M := histo.NewMatrix(len(aminoacids), len(angles), histo.AngleDividers(o.Bins()))
	M.Fill()
	for i, v := range t {
		if v == nil || isNilResidue(v.Res) {
			return nil, newError(ErrNilData, fmt.Sprintf("element %d is nil", i), "Histograms")
		}
		row, ok := aminoacidIndex[v.Res.ResName()]
		if !ok {
			continue
		}
		for j, a := range angles {
			if r := v.Angle(a); r.Defined() {
				M.AddData(row, j, r.Degrees)
			}
		}
	}
	return M, nil
}
