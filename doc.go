/*
 * doc.go, part of torsion.
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

/*
Package torsion obtains the torsion (dihedral) angles of amino acid residues in
protein structures: the backbone phi and psi angles and the side-chain chi1 to chi5
angles.

	**Capabilities**

    Knows, for each of the 20 standard amino acids, which four atoms define
	each of its dihedral angles (DihedralAtoms, Chi1Atoms..Chi5Atoms, PhiAtoms, PsiAtoms).

    Computes a dihedral, in degrees, for a residue (chi angles) or a pair of
	consecutive residues (phi and psi) from any type implementing the Residue
	interface (DihedralAngle, GetDihedralAngle). Missing atoms are not errors: the
	returned Result is simply not Defined.

    Obtains all the angles of a chain, concurrently, and collects the defined values
	by residue type and neighbours, as (phi, psi) pairs, or as histograms
	(ChainTorsions, Collect, Ramachandran, Histograms).

    Small amino acid tables: three and one-letter codes, number of chi angles,
	polarity classes and DSSP secondary structure codes.

Coordinates are kept in v3.Matrix objects (package torsion/v3), based on gonum's
Dense matrices. Each row of a v3.Matrix represents one point in space. Histograms are
in torsion/histo, and PNG plots of them, and of Ramachandran data, in torsion/chemplot.

Structure files are not read by this library. Any parser can be used, as long as its
residues are wrapped in something that implements Residue, or copied into a Res.
*/
package torsion
