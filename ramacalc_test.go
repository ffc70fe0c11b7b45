package torsion

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSideChainDihedrals(Te *testing.T) {
	spec := []idealRes{
		{name: "ARG", chis: []float64{-65, 178, -70, 85, 5}},
		{name: "LYS", chis: []float64{-170, 65, 179, -179}},
		{name: "MET", chis: []float64{62, 179, 70}},
		{name: "ILE", chis: []float64{-60, 170}},
		{name: "SER", chis: []float64{64}},
		{name: "ALA"},
	}
	res := chainResidues(Te, buildChain(Te, spec))
	for i, s := range spec {
		for j, a := range []AngleName{Chi1, Chi2, Chi3, Chi4, Chi5} {
			r, err := DihedralAngle(res[i:i+1], a)
			if err != nil {
				Te.Fatal(err)
			}
			if j >= len(s.chis) {
				if r.Defined() || r.Status != NotApplicable {
					Te.Errorf("%s %s should not be defined, got %v", s.name, a, r)
				}
				continue
			}
			if !r.Defined() {
				Te.Errorf("%s %s not defined: %v", s.name, a, r)
				continue
			}
			if d := angleDiff(r.Degrees, s.chis[j]); d > 1e-6 {
				Te.Errorf("%s %s: expected %f, got %f", s.name, a, s.chis[j], r.Degrees)
			}
		}
	}
}

func TestBackboneDihedrals(Te *testing.T) {
	spec := []idealRes{
		{name: "GLY", psi: 150},
		{name: "ALA", phi: -57, psi: -47},
		{name: "TRP", phi: -119, psi: 113, chis: []float64{-60, 90}},
	}
	res := chainResidues(Te, buildChain(Te, spec))
	phi, err := GetDihedralAngle([]Residue{res[0], res[1]}, "phi")
	if err != nil {
		Te.Fatal(err)
	}
	if !phi.Defined() || angleDiff(phi.Degrees, -57) > 1e-6 {
		Te.Errorf("expected phi -57, got %v", phi)
	}
	if phi.Degrees <= -180 || phi.Degrees > 180 {
		Te.Errorf("phi out of range: %f", phi.Degrees)
	}
	psi, err := GetDihedralAngle([]Residue{res[1], res[2]}, "psi")
	if err != nil {
		Te.Fatal(err)
	}
	if !psi.Defined() || angleDiff(psi.Degrees, -47) > 1e-6 {
		Te.Errorf("expected psi -47, got %v", psi)
	}
	psi0, _ := DihedralAngle([]Residue{res[0], res[1]}, Psi)
	if angleDiff(psi0.Degrees, 150) > 1e-6 {
		Te.Errorf("expected psi 150, got %v", psi0)
	}
	phi2, _ := DihedralAngle([]Residue{res[1], res[2]}, Phi)
	if angleDiff(phi2.Degrees, -119) > 1e-6 {
		Te.Errorf("expected phi -119, got %v", phi2)
	}
	if _, err := DihedralAngle(res[:1], Phi); !errors.Is(err, ErrBadResidues) {
		Te.Errorf("phi with one residue should give ErrBadResidues, got %v", err)
	}
}

func TestMissingAtom(Te *testing.T) {
	b := buildChain(Te, []idealRes{{name: "CYS", chis: []float64{-60}}})
	cys := b[0].res(Te, 1, "SG")
	r, err := GetDihedralAngle([]Residue{cys}, "chi1")
	if err != nil {
		Te.Fatalf("a missing atom should not be an error: %v", err)
	}
	if r.Defined() || r.Status != MissingAtom || r.Missing != "SG" {
		Te.Errorf("expected a missing SG, got %+v", r)
	}
	if !strings.Contains(r.String(), "SG") {
		Te.Errorf("the result string should name the missing atom: %s", r)
	}
	full := b[0].res(Te, 1)
	r, _ = GetDihedralAngle([]Residue{full}, "chi1")
	if !r.Defined() {
		Te.Errorf("chi1 should be defined for a complete CYS")
	}
}

func TestNotApplicable(Te *testing.T) {
	b := buildChain(Te, []idealRes{{name: "GLY"}, {name: "ALA"}})
	res := chainResidues(Te, b)
	for _, v := range res {
		r, err := GetDihedralAngle([]Residue{v}, "chi1")
		if err != nil {
			Te.Fatal(err)
		}
		if r.Defined() || r.Status != NotApplicable {
			Te.Errorf("chi1 of %s should not be applicable, got %v", v.ResName(), r)
		}
	}
	r, err := GetDihedralAngle(res, "")
	if err != nil || r.Status != NotApplicable {
		Te.Errorf("an empty angle name should give a NotApplicable result, got %v, %v", r, err)
	}
	//chi1 stays undefined for ALA and GLY even if the structure has extra atoms.
	for _, v := range res {
		R := v.(*Res)
		if _, ok := R.AtomCoord("CB"); !ok {
			R.AddAtom(&Atom{Name: "CB", Symbol: "C"}, 1.5, -0.8, 1.2)
		}
		R.AddAtom(&Atom{Name: "CG", Symbol: "C"}, 2.1, -1.9, 2.0)
		r, err := DihedralAngle([]Residue{v}, Chi1)
		if err != nil {
			Te.Fatal(err)
		}
		if r.Status != NotApplicable {
			Te.Errorf("chi1 of %s with a CG atom should not be applicable, got %v", v.ResName(), r)
		}
	}
}

func TestBadCoords(Te *testing.T) {
	res := chainResidues(Te, buildChain(Te, []idealRes{{name: "SER", chis: []float64{64}}, {name: "GLY", phi: -60}}))
	spoil(Te, res[0], "OG")
	r, err := DihedralAngle(res[:1], Chi1)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Defined() || r.Status != BadCoords || r.Missing != "OG" {
		Te.Errorf("a NaN coordinate should give a BadCoords result for OG, got %+v", r)
	}
	if math.IsNaN(r.Degrees) {
		Te.Errorf("undefined results should not carry NaN degrees")
	}
	if !strings.Contains(r.String(), "OG") {
		Te.Errorf("unexpected string for the result: %s", r)
	}
	r, err = DihedralAngle(res, Psi)
	if err != nil || !r.Defined() {
		Te.Errorf("psi doesn't involve OG and should be defined, got %v, %v", r, err)
	}
}

func TestInvalidAngle(Te *testing.T) {
	res := chainResidues(Te, buildChain(Te, []idealRes{{name: "SER"}}))
	_, err := GetDihedralAngle(res, "omega")
	if !errors.Is(err, ErrInvalidAngleName) {
		Te.Fatalf("expected ErrInvalidAngleName, got %v", err)
	}
	var e Error
	if !errors.As(err, &e) {
		Te.Fatalf("expected a decorated error, got %T", err)
	}
	if d := e.Decorate(""); len(d) < 2 || d[len(d)-1] != "GetDihedralAngle" {
		Te.Errorf("unexpected decorations %v", d)
	}
	if _, err := DihedralAngle(res, AngleName(42)); !errors.Is(err, ErrInvalidAngleName) {
		Te.Errorf("expected ErrInvalidAngleName, got %v", err)
	}
	if _, err := DihedralAngle([]Residue{nil}, Chi1); !errors.Is(err, ErrNilData) {
		Te.Errorf("expected ErrNilData, got %v", err)
	}
	var nilres *Res
	if _, err := DihedralAngle([]Residue{nilres}, Chi1); !errors.Is(err, ErrNilData) {
		Te.Errorf("expected ErrNilData for a nil *Res, got %v", err)
	}
	if _, err := DihedralAngle([]Residue{res[0], nilres}, Psi); !errors.Is(err, ErrNilData) {
		Te.Errorf("expected ErrNilData for a nil *Res in a pair, got %v", err)
	}
}

func TestNormalizeDegrees(Te *testing.T) {
	cases := map[float64]float64{-180: 180, 180: 180, 190: -170, -190: 170, 0: 0, 540: 180}
	for k, v := range cases {
		if n := normalizeDegrees(k); n != v {
			Te.Errorf("%f should be normalized to %f, got %f", k, v, n)
		}
	}
}
