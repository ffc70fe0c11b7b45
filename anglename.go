/*
 * anglename.go, part of torsion.
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

// AngleName identifies one of the dihedrals of a residue.
type AngleName int

const (
	NoAngle AngleName = iota //the empty name, no angle is computed.
	Chi1
	Chi2
	Chi3
	Chi4
	Chi5
	Phi
	Psi
)

var angleNames = [...]string{"", "chi1", "chi2", "chi3", "chi4", "chi5", "phi", "psi"}

// ParseAngleName returns the AngleName for name. The empty string
// gives NoAngle, any other unknown name an ErrInvalidAngleName error.
func ParseAngleName(name string) (AngleName, error) {
	for i, v := range angleNames {
		if v == name {
			return AngleName(i), nil
		}
	}
	return NoAngle, newError(ErrInvalidAngleName, "No such dihedral angle: "+name, "ParseAngleName")
}

// AllAngles returns the 7 dihedrals, chi angles first.
func AllAngles() []AngleName {
	return []AngleName{Chi1, Chi2, Chi3, Chi4, Chi5, Phi, Psi}
}

func (A AngleName) String() string {
	if !A.valid() {
		return "invalid"
	}
	return angleNames[A]
}

// IsBackbone returns true for phi and psi, which need two residues.
func (A AngleName) IsBackbone() bool {
	return A == Phi || A == Psi
}

// ChiIndex returns n for the chi angle chin, and 0 for any other angle.
func (A AngleName) ChiIndex() int {
	if A >= Chi1 && A <= Chi5 {
		return int(A-Chi1) + 1
	}
	return 0
}

func (A AngleName) valid() bool {
	return A >= NoAngle && A <= Psi
}
