/*
 * options.go, part of torsion.
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

import "runtime"

// Options contains the options for ChainTorsions and Histograms.
type Options struct {
	angles         []AngleName
	cpus           int
	verbose        bool
	maxPeptideBond float64 //largest C-N distance, in A, for 2 residues to be considered bonded. 0 or less disables the check.
	bins           int
}

// DefaultOptions returns options that obtain all 7 dihedrals
// using all logical CPUs, check that consecutive residues are bonded
// (C-N distance of 2 A or less) and use 72 bins (5 degrees each) for histograms.
func DefaultOptions() *Options {
	r := new(Options)
	r.angles = AllAngles()
	r.cpus = runtime.NumCPU()
	r.maxPeptideBond = 2.0
	r.bins = 72
	return r
}

// Angles returns the dihedrals to be obtained,
// and sets them to new values, if given.
func (O *Options) Angles(angles ...[]AngleName) []AngleName {
	if len(angles) > 0 && len(angles[0]) > 0 {
		O.angles = angles[0]
	}
	return O.angles
}

// Cpus returns the number of gorutines to be used,
// and sets it to a new value, if given.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

// Verbose returns whether non-fatal problems, such as chain breaks, are logged,
// and sets it to a new value, if given.
func (O *Options) Verbose(v ...bool) bool {
	if len(v) > 0 {
		O.verbose = v[0]
	}
	return O.verbose
}

// MaxPeptideBond returns the largest C-N distance for which 2 consecutive residues
// are considered bonded, and sets it to a new value, if given.
// If set to 0 or less, residues are not checked.
func (O *Options) MaxPeptideBond(d ...float64) float64 {
	if len(d) > 0 {
		O.maxPeptideBond = d[0]
	}
	return O.maxPeptideBond
}

// Bins returns the number of bins for the histograms over [-180,180],
// and sets it to a new value, if given.
func (O *Options) Bins(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.bins = n[0]
	}
	return O.bins
}
