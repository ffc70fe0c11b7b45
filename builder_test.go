package torsion

import (
	"math"
	"testing"
)

// Builds residues with ideal bond lengths and angles and the requested dihedrals,
// so the values obtained from them can be checked.

type xyz [3]float64

func (a xyz) sub(b xyz) xyz { return xyz{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func (a xyz) add(b xyz) xyz { return xyz{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func (a xyz) scale(k float64) xyz { return xyz{k * a[0], k * a[1], k * a[2]} }
func (a xyz) unit() xyz {
	return a.scale(1 / math.Sqrt(a[0]*a[0]+a[1]*a[1]+a[2]*a[2]))
}
func (a xyz) cross(b xyz) xyz {
	return xyz{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}

// place returns the position of an atom bonded to c, at distance l, with
// angle b-c-new theta and dihedral a-b-c-new chi (both in degrees).
func place(a, b, c xyz, l, theta, chi float64) xyz {
	theta, chi = theta*math.Pi/180, chi*math.Pi/180
	bc := c.sub(b).unit()
	n := b.sub(a).cross(bc).unit()
	m := n.cross(bc)
	d := bc.scale(-l * math.Cos(theta)).add(m.scale(l * math.Sin(theta) * math.Cos(chi))).add(n.scale(l * math.Sin(theta) * math.Sin(chi)))
	return c.add(d)
}

// resBuilder keeps the atoms of a residue in insertion order.
type resBuilder struct {
	name  string
	order []string
	pos   map[string]xyz
}

func newResBuilder(name string) *resBuilder {
	return &resBuilder{name: name, pos: map[string]xyz{}}
}

func (r *resBuilder) set(name string, p xyz) {
	if _, ok := r.pos[name]; !ok {
		r.order = append(r.order, name)
	}
	r.pos[name] = p
}

// res returns the residue, leaving out the atoms in without.
func (r *resBuilder) res(Te *testing.T, id int, without ...string) *Res {
	Te.Helper()
	names := make([]string, 0, len(r.order))
	coords := make([]float64, 0, 3*len(r.order))
	for _, v := range r.order {
		if isInString(without, v) {
			continue
		}
		names = append(names, v)
		p := r.pos[v]
		coords = append(coords, p[0], p[1], p[2])
	}
	ret, err := NewResFromSlices(r.name, id, "A", names, coords)
	if err != nil {
		Te.Fatal(err)
	}
	return ret
}

// branch atoms that are not part of any chi angle: name, and the three atoms used to place it.
var extraAtoms = map[string][][4]string{
	"VAL": {{"CG2", "N", "CA", "CB"}},
	"ILE": {{"CG2", "N", "CA", "CB"}},
	"THR": {{"CG2", "N", "CA", "CB"}},
	"LEU": {{"CD2", "CA", "CB", "CG"}},
	"ASP": {{"OD2", "CA", "CB", "CG"}},
	"ASN": {{"ND2", "CA", "CB", "CG"}},
	"GLU": {{"OE2", "CB", "CG", "CD"}},
	"GLN": {{"NE2", "CB", "CG", "CD"}},
	"ARG": {{"NH2", "CD", "NE", "CZ"}},
	"PHE": {{"CD2", "CA", "CB", "CG"}},
	"TYR": {{"CD2", "CA", "CB", "CG"}},
	"TRP": {{"CD2", "CA", "CB", "CG"}},
	"HIS": {{"CD2", "CA", "CB", "CG"}},
}

// sideChain adds CB and the side chain atoms to r, with the given chi values.
func sideChain(r *resBuilder, chis []float64) {
	if r.name == "GLY" {
		return
	}
	r.set("CB", place(r.pos["C"], r.pos["N"], r.pos["CA"], 1.53, 110.5, -122.5))
	for i, a := range []AngleName{Chi1, Chi2, Chi3, Chi4, Chi5} {
		atoms := DihedralAtoms(r.name, a)
		if len(atoms) == 0 {
			break
		}
		chi := 180.0
		if i < len(chis) {
			chi = chis[i]
		}
		r.set(atoms[3], place(r.pos[atoms[0]], r.pos[atoms[1]], r.pos[atoms[2]], 1.52, 112, chi))
	}
	for _, e := range extraAtoms[r.name] {
		r.set(e[0], place(r.pos[e[1]], r.pos[e[2]], r.pos[e[3]], 1.52, 112, 120))
	}
}

type idealRes struct {
	name     string
	phi, psi float64
	chis     []float64
}

// buildChain returns a chain with the given residues, a trans (180) omega and
// the requested phi, psi and chi angles. The phi of the first and the psi of the last
// residue are not used.
func buildChain(Te *testing.T, spec []idealRes) []*resBuilder {
	Te.Helper()
	ret := make([]*resBuilder, len(spec))
	var prev *resBuilder
	for i, s := range spec {
		r := newResBuilder(s.name)
		if prev == nil {
			r.set("N", xyz{0, 0, 0})
			r.set("CA", xyz{1.46, 0, 0})
			t := 111 * math.Pi / 180
			r.set("C", xyz{1.46 - 1.52*math.Cos(t), 1.52 * math.Sin(t), 0})
		} else {
			ppsi := spec[i-1].psi
			r.set("N", place(prev.pos["N"], prev.pos["CA"], prev.pos["C"], 1.33, 116, ppsi))
			r.set("CA", place(prev.pos["CA"], prev.pos["C"], r.pos["N"], 1.46, 122, 180))
			r.set("C", place(prev.pos["C"], r.pos["N"], r.pos["CA"], 1.52, 111, s.phi))
			prev.set("O", place(prev.pos["N"], prev.pos["CA"], prev.pos["C"], 1.23, 121, ppsi+180))
		}
		sideChain(r, s.chis)
		ret[i] = r
		prev = r
	}
	last := ret[len(ret)-1]
	last.set("O", place(last.pos["N"], last.pos["CA"], last.pos["C"], 1.23, 121, spec[len(spec)-1].psi+180))
	return ret
}

func chainResidues(Te *testing.T, b []*resBuilder) []Residue {
	Te.Helper()
	ret := make([]Residue, len(b))
	for i, v := range b {
		ret[i] = v.res(Te, i+1)
	}
	return ret
}

// angleDiff returns the absolute difference between 2 angles in degrees, taking periodicity into account.
func angleDiff(a, b float64) float64 {
	return math.Abs(normalizeDegrees(a - b))
}

// spoil replaces the x coordinate of the atom name in r with NaN.
func spoil(Te *testing.T, r Residue, name string) {
	Te.Helper()
	res := r.(*Res)
	for i, v := range res.Atoms {
		if v.Name == name {
			res.Coords.Set(i, 0, math.NaN())
			return
		}
	}
	Te.Fatalf("%s has no atom %s", res.Name, name)
}
