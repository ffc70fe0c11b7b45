/*
 * ramacalc.go, part of torsion.
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
	"math"
	"reflect"

	v3 "github.com/chiangles/torsion/v3"
)

// Status tells whether a dihedral could be obtained and, if not, why.
type Status int

const (
	Computed      Status = iota
	NotApplicable        //the angle doesn't exist for the residue type, or no angle was requested.
	MissingAtom          //one of the 4 atoms is absent from the structure.
	ChainBreak           //the two residues of a phi/psi pair are not bonded.
	BadCoords            //one of the 4 atoms has NaN or infinite coordinates.
)

var statusNames = [...]string{"computed", "not applicable", "missing atom", "chain break", "bad coordinates"}

func (S Status) String() string {
	if S < Computed || S > BadCoords {
		return "unknown"
	}
	return statusNames[S]
}

// Result is the value of a dihedral, in degrees, in the (-180,180] range.
// Degrees is only meaningful if Status is Computed. For MissingAtom and BadCoords
// results, Missing is the name of the first offending atom.
type Result struct {
	Degrees float64
	Status  Status
	Missing string
}

// Defined returns true if the dihedral was obtained.
func (R Result) Defined() bool {
	return R.Status == Computed
}

// Radians returns the value of the dihedral in radians.
func (R Result) Radians() float64 {
	return Deg2Rad(R.Degrees)
}

func (R Result) String() string {
	switch R.Status {
	case Computed:
		return fmt.Sprintf("%.2f", R.Degrees)
	case MissingAtom:
		return "undefined (missing " + R.Missing + ")"
	case BadCoords:
		return "undefined (bad coordinates for " + R.Missing + ")"
	}
	return "undefined (" + R.Status.String() + ")"
}

// which residue contains each of the 4 atoms of a dihedral.
var (
	chiOwners = [4]int{0, 0, 0, 0}
	phiOwners = [4]int{0, 1, 1, 1}
	psiOwners = [4]int{0, 0, 0, 1}
)

// checkResidues returns an error if residues doesn't contain enough non-nil residues
// for angle.
func checkResidues(residues []Residue, angle AngleName) error {
	need := 1
	if angle.IsBackbone() {
		need = 2
	}
	if len(residues) < need {
		return newError(ErrBadResidues, fmt.Sprintf("%s requires %d residues, %d given", angle, need, len(residues)), "checkResidues")
	}
	for i := 0; i < need; i++ {
		if isNilResidue(residues[i]) {
			return newError(ErrNilData, fmt.Sprintf("residue %d is nil", i), "checkResidues")
		}
	}
	return nil
}

// isNilResidue returns true for nil residues, including nil pointers
// stored in a Residue interface.
func isNilResidue(r Residue) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func finite(c *v3.Matrix) bool {
	for _, v := range c.RawRowView(0) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// DihedralAngle obtains the dihedral angle for residues. Chi angles are taken from
// residues[0]. For phi, residues[0] must be the preceding residue and residues[1] the current
// one. For psi, residues[0] is the current residue and residues[1] the following one.
// If the angle is not defined for the residue type, or an atom is missing, the Result is
// not Defined, and the error is nil. Errors are only returned for invalid angles and
// wrong residue slices.
func DihedralAngle(residues []Residue, angle AngleName) (Result, error) {
	if !angle.valid() {
		return Result{Status: NotApplicable}, newError(ErrInvalidAngleName, fmt.Sprintf("No such dihedral angle: %d", int(angle)), "DihedralAngle")
	}
	if angle == NoAngle {
		return Result{Status: NotApplicable}, nil
	}
	if err := checkResidues(residues, angle); err != nil {
		return Result{Status: NotApplicable}, errDecorate(err, "DihedralAngle")
	}
	names := DihedralAtoms(residues[0].ResName(), angle)
	if len(names) == 0 {
		return Result{Status: NotApplicable}, nil
	}
	owners := chiOwners
	switch angle {
	case Phi:
		owners = phiOwners
	case Psi:
		owners = psiOwners
	}
	var points [4]*v3.Matrix
	for i, name := range names {
		c, ok := residues[owners[i]].AtomCoord(name)
		if !ok {
			return Result{Status: MissingAtom, Missing: name}, nil
		}
		if !finite(c) {
			return Result{Status: BadCoords, Missing: name}, nil
		}
		points[i] = c
	}
	rad := v3.Dihedral(points[0], points[1], points[2], points[3])
	if math.IsNaN(rad) || math.IsInf(rad, 0) {
		return Result{Status: BadCoords}, nil
	}
	return Result{Degrees: normalizeDegrees(Rad2Deg(rad)), Status: Computed}, nil
}

// GetDihedralAngle is like DihedralAngle, but takes the name of the angle
// (chi1...chi5, phi, psi). An empty name gives a NotApplicable Result,
// while an unknown one gives an ErrInvalidAngleName error.
func GetDihedralAngle(residues []Residue, angleName string) (Result, error) {
	angle, err := ParseAngleName(angleName)
	if err != nil {
		return Result{Status: NotApplicable}, errDecorate(err, "GetDihedralAngle")
	}
	r, err := DihedralAngle(residues, angle)
	return r, errDecorate(err, "GetDihedralAngle")
}

// normalizeDegrees puts a in the (-180,180] range.
func normalizeDegrees(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a <= -180 {
		a += 360
	}
	return a
}
