/*
 * atomicdata.go, part of torsion.
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

// Polarity is the class of an amino acid side chain.
type Polarity string

const (
	Unpolar         Polarity = "UNPOLAR"
	PolarNoncharged Polarity = "POLAR_NONCHARGED"
	Aromatic        Polarity = "AROMATIC"
	NegCharged      Polarity = "-CHARGED"
	PosCharged      Polarity = "+CHARGED"
)

// The 20 standard amino acids, in alphabetical order.
var aminoacids = [...]string{"ALA", "ARG", "ASN", "ASP", "CYS", "GLN", "GLU", "GLY", "HIS", "ILE",
	"LEU", "LYS", "MET", "PHE", "PRO", "SER", "THR", "TRP", "TYR", "VAL"}

// index of each code in aminoacids
var aminoacidIndex = map[string]int{}

// A map for assigning one-letter codes to amino acids.
var three2One = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLN": 'Q', "GLU": 'E', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
}

var one2Three = map[byte]string{}

// Number of side chain dihedrals for each amino acid.
var chiAngles = map[string]int{
	"ALA": 0, "GLY": 0,
	"CYS": 1, "SER": 1, "THR": 1, "VAL": 1,
	"ASN": 2, "ASP": 2, "HIS": 2, "ILE": 2, "LEU": 2, "PHE": 2, "PRO": 2, "TRP": 2, "TYR": 2,
	"GLN": 3, "GLU": 3, "MET": 3,
	"LYS": 4,
	"ARG": 5,
}

// HIS is kept among the positively charged residues.
var polarities = map[string]Polarity{
	"ALA": Unpolar, "GLY": Unpolar, "VAL": Unpolar, "LEU": Unpolar, "ILE": Unpolar, "PRO": Unpolar,
	"SER": PolarNoncharged, "THR": PolarNoncharged, "CYS": PolarNoncharged, "MET": PolarNoncharged,
	"ASN": PolarNoncharged, "GLN": PolarNoncharged,
	"PHE": Aromatic, "TYR": Aromatic, "TRP": Aromatic,
	"ASP": NegCharged, "GLU": NegCharged,
	"LYS": PosCharged, "ARG": PosCharged, "HIS": PosCharged,
}

// DSSP secondary structure codes.
var secStructs = [...]string{"H", "B", "E", "G", "I", "T", "S", "-"}

func init() {
	for i, v := range aminoacids {
		aminoacidIndex[v] = i
	}
	for k, v := range three2One {
		one2Three[v] = k
	}
}

// AminoAcids returns the 3-letter codes of the 20 standard amino acids, in alphabetical order.
func AminoAcids() []string {
	ret := make([]string, len(aminoacids))
	copy(ret, aminoacids[:])
	return ret
}

// IsAminoAcid returns true if code is the 3-letter code of a standard amino acid.
func IsAminoAcid(code string) bool {
	_, ok := aminoacidIndex[code]
	return ok
}

// OneLetter returns the one-letter code for the amino acid with the 3-letter code code.
func OneLetter(code string) (byte, error) {
	r, ok := three2One[code]
	if !ok {
		return 0, newError(ErrUnknownResidue, "No such amino acid: "+code, "OneLetter")
	}
	return r, nil
}

// ThreeLetter returns the 3-letter code for the amino acid with the one-letter code code.
func ThreeLetter(code byte) (string, error) {
	r, ok := one2Three[code]
	if !ok {
		return "", newError(ErrUnknownResidue, "No such amino acid: "+string(code), "ThreeLetter")
	}
	return r, nil
}

// NumberOfChiAngles returns how many side chain dihedrals the amino acid resName has.
func NumberOfChiAngles(resName string) (int, error) {
	n, ok := chiAngles[resName]
	if !ok {
		return -1, newError(ErrUnknownResidue, "No such residue name: "+resName, "NumberOfChiAngles")
	}
	return n, nil
}

// GetPolarity returns the polarity class of the amino acid resName.
func GetPolarity(resName string) (Polarity, error) {
	p, ok := polarities[resName]
	if !ok {
		return "", newError(ErrUnknownResidue, "No such amino acid: "+resName, "GetPolarity")
	}
	return p, nil
}

// SecStructs returns the DSSP secondary structure codes.
func SecStructs() []string {
	ret := make([]string, len(secStructs))
	copy(ret, secStructs[:])
	return ret
}
