/*
 * selector.go, part of torsion.
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

// The atoms defining each dihedral follow the side chain of each amino acid
// up to its first branch, so they are given per residue, not computed.

type selectorKey struct {
	res   string
	angle AngleName
}

// dihedralTable contains the atoms for each chi angle of each standard amino acid.
// It is filled once, in init, and never modified afterwards.
var dihedralTable = map[selectorKey][]string{}

var (
	phiAtoms = [4]string{"C", "N", "CA", "C"}
	psiAtoms = [4]string{"N", "CA", "C", "N"}
)

var chiRules = [...]func(string) []string{chi1Rule, chi2Rule, chi3Rule, chi4Rule, chi5Rule}

func init() {
	for _, res := range aminoacids {
		for i, rule := range chiRules {
			if atoms := rule(res); len(atoms) == 4 {
				dihedralTable[selectorKey{res, Chi1 + AngleName(i)}] = atoms
			}
		}
	}
}

func chi1Rule(res string) []string {
	if isInString([]string{"ALA", "GLY"}, res) {
		return nil
	}
	ret := []string{"N", "CA", "CB"}
	switch res {
	case "ILE", "VAL":
		return append(ret, "CG1")
	case "CYS":
		return append(ret, "SG")
	case "THR":
		return append(ret, "OG1")
	case "SER":
		return append(ret, "OG")
	}
	return append(ret, "CG")
}

func chi2Rule(res string) []string {
	if !isInString([]string{"ARG", "ASN", "ASP", "GLN", "GLU", "HIS", "ILE", "LEU", "LYS", "MET", "PHE", "PRO", "TRP", "TYR"}, res) {
		return nil
	}
	ret := []string{"CA", "CB", "CG"}
	if res == "ILE" {
		ret[2] = "CG1"
	}
	switch res {
	case "ARG", "GLN", "GLU", "LYS", "PRO":
		return append(ret, "CD")
	case "LEU", "PHE", "TRP", "TYR", "ILE":
		return append(ret, "CD1")
	case "ASN", "ASP":
		return append(ret, "OD1")
	case "MET":
		return append(ret, "SD")
	}
	return append(ret, "ND1")
}

func chi3Rule(res string) []string {
	if !isInString([]string{"ARG", "GLN", "GLU", "LYS", "MET"}, res) {
		return nil
	}
	if res == "MET" {
		return []string{"CB", "CG", "SD", "CE"}
	}
	ret := []string{"CB", "CG", "CD"}
	switch res {
	case "GLN", "GLU":
		return append(ret, "OE1")
	case "ARG":
		return append(ret, "NE")
	}
	return append(ret, "CE")
}

func chi4Rule(res string) []string {
	switch res {
	case "ARG":
		return []string{"CG", "CD", "NE", "CZ"}
	case "LYS":
		return []string{"CG", "CD", "CE", "NZ"}
	}
	return nil
}

func chi5Rule(res string) []string {
	if res != "ARG" {
		return nil
	}
	return []string{"CD", "NE", "CZ", "NH1"}
}

// DihedralAtoms returns the names of the 4 atoms that define the dihedral angle
// for a residue of type resName, in order. It returns an empty slice if the angle
// is not defined for that residue type, or if angle is NoAngle.
// For phi, the first atom belongs to the preceding residue, for psi, the last one
// belongs to the following residue. Residue names other than the 20 standard ones
// get the atoms given by the general rules (so chi1 is N CA CB CG).
// The returned slice is a copy and can be modified.
func DihedralAtoms(resName string, angle AngleName) []string {
	var atoms []string
	switch angle {
	case Phi:
		atoms = phiAtoms[:]
	case Psi:
		atoms = psiAtoms[:]
	case Chi1, Chi2, Chi3, Chi4, Chi5:
		var ok bool
		atoms, ok = dihedralTable[selectorKey{resName, angle}]
		if !ok && !IsAminoAcid(resName) {
			atoms = chiRules[angle.ChiIndex()-1](resName)
		}
	default:
		return []string{}
	}
	ret := make([]string, len(atoms))
	copy(ret, atoms)
	return ret
}

// Chi1Atoms returns the atoms defining the chi1 angle of resName, or an empty slice.
func Chi1Atoms(resName string) []string { return DihedralAtoms(resName, Chi1) }

// Chi2Atoms returns the atoms defining the chi2 angle of resName, or an empty slice.
func Chi2Atoms(resName string) []string { return DihedralAtoms(resName, Chi2) }

// Chi3Atoms returns the atoms defining the chi3 angle of resName, or an empty slice.
func Chi3Atoms(resName string) []string { return DihedralAtoms(resName, Chi3) }

// Chi4Atoms returns the atoms defining the chi4 angle of resName, or an empty slice.
func Chi4Atoms(resName string) []string { return DihedralAtoms(resName, Chi4) }

// Chi5Atoms returns the atoms defining the chi5 angle of resName, or an empty slice.
func Chi5Atoms(resName string) []string { return DihedralAtoms(resName, Chi5) }

// PhiAtoms returns C, N, CA, C. The first C belongs to the preceding residue.
func PhiAtoms() []string { return DihedralAtoms("", Phi) }

// PsiAtoms returns N, CA, C, N. The last N belongs to the following residue.
func PsiAtoms() []string { return DihedralAtoms("", Psi) }

// GetDihedralAngleAtoms returns the atoms defining the angle angleName for
// residues. Chi angles use residues[0], phi and psi the pair. An empty angleName gives
// an empty slice, an unknown one an ErrInvalidAngleName error.
func GetDihedralAngleAtoms(residues []Residue, angleName string) ([]string, error) {
	angle, err := ParseAngleName(angleName)
	if err != nil {
		return nil, errDecorate(err, "GetDihedralAngleAtoms")
	}
	if angle == NoAngle {
		return []string{}, nil
	}
	if err := checkResidues(residues, angle); err != nil {
		return nil, errDecorate(err, "GetDihedralAngleAtoms")
	}
	return DihedralAtoms(residues[0].ResName(), angle), nil
}
