package torsion

import (
	"errors"
	"reflect"
	"testing"
)

func TestChi1(Te *testing.T) {
	for _, res := range []string{"ALA", "GLY"} {
		if a := Chi1Atoms(res); len(a) != 0 {
			Te.Errorf("%s should have no chi1, got %v", res, a)
		}
	}
	cases := map[string][]string{
		"ILE": {"N", "CA", "CB", "CG1"},
		"VAL": {"N", "CA", "CB", "CG1"},
		"CYS": {"N", "CA", "CB", "SG"},
		"THR": {"N", "CA", "CB", "OG1"},
		"SER": {"N", "CA", "CB", "OG"},
		"PHE": {"N", "CA", "CB", "CG"},
	}
	for k, v := range cases {
		if a := Chi1Atoms(k); !reflect.DeepEqual(a, v) {
			Te.Errorf("%s: expected %v, got %v", k, v, a)
		}
	}
}

func TestChi2To5(Te *testing.T) {
	cases := []struct {
		res   string
		angle AngleName
		want  []string
	}{
		{"ILE", Chi2, []string{"CA", "CB", "CG1", "CD1"}},
		{"HIS", Chi2, []string{"CA", "CB", "CG", "ND1"}},
		{"MET", Chi2, []string{"CA", "CB", "CG", "SD"}},
		{"ASP", Chi2, []string{"CA", "CB", "CG", "OD1"}},
		{"PRO", Chi2, []string{"CA", "CB", "CG", "CD"}},
		{"SER", Chi2, []string{}},
		{"MET", Chi3, []string{"CB", "CG", "SD", "CE"}},
		{"GLU", Chi3, []string{"CB", "CG", "CD", "OE1"}},
		{"ARG", Chi3, []string{"CB", "CG", "CD", "NE"}},
		{"LYS", Chi3, []string{"CB", "CG", "CD", "CE"}},
		{"LEU", Chi3, []string{}},
		{"ARG", Chi4, []string{"CG", "CD", "NE", "CZ"}},
		{"LYS", Chi4, []string{"CG", "CD", "CE", "NZ"}},
		{"MET", Chi4, []string{}},
		{"ARG", Chi5, []string{"CD", "NE", "CZ", "NH1"}},
		{"LYS", Chi5, []string{}},
	}
	for _, c := range cases {
		if a := DihedralAtoms(c.res, c.angle); !reflect.DeepEqual(a, c.want) {
			Te.Errorf("%s %s: expected %v, got %v", c.res, c.angle, c.want, a)
		}
	}
}

func TestArgHasAllChis(Te *testing.T) {
	for _, f := range []func(string) []string{Chi1Atoms, Chi2Atoms, Chi3Atoms, Chi4Atoms, Chi5Atoms} {
		if a := f("ARG"); len(a) != 4 {
			Te.Errorf("ARG should have 4 atoms for every chi, got %v", a)
		}
	}
}

func TestBackboneAtoms(Te *testing.T) {
	if a := PhiAtoms(); !reflect.DeepEqual(a, []string{"C", "N", "CA", "C"}) {
		Te.Errorf("wrong phi atoms %v", a)
	}
	if a := PsiAtoms(); !reflect.DeepEqual(a, []string{"N", "CA", "C", "N"}) {
		Te.Errorf("wrong psi atoms %v", a)
	}
	//the tables must not be affected by changes in the returned slices.
	a := PhiAtoms()
	a[0] = "X"
	b := Chi1Atoms("ILE")
	b[3] = "X"
	if PhiAtoms()[0] != "C" || Chi1Atoms("ILE")[3] != "CG1" {
		Te.Errorf("the atom tables were modified through a returned slice")
	}
}

func TestNonStandardResidue(Te *testing.T) {
	if a := Chi1Atoms("MSE"); !reflect.DeepEqual(a, []string{"N", "CA", "CB", "CG"}) {
		Te.Errorf("expected the general chi1 rule for MSE, got %v", a)
	}
	if a := Chi2Atoms("MSE"); len(a) != 0 {
		Te.Errorf("expected no chi2 for MSE, got %v", a)
	}
}

func TestGetDihedralAngleAtoms(Te *testing.T) {
	b := buildChain(Te, []idealRes{{name: "ILE"}, {name: "GLY"}})
	res := chainResidues(Te, b)
	a, err := GetDihedralAngleAtoms(res, "chi2")
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(a, []string{"CA", "CB", "CG1", "CD1"}) {
		Te.Errorf("wrong chi2 atoms for ILE: %v", a)
	}
	a, err = GetDihedralAngleAtoms(nil, "")
	if err != nil || len(a) != 0 {
		Te.Errorf("an empty angle name should give no atoms and no error, got %v, %v", a, err)
	}
	if _, err = GetDihedralAngleAtoms(res, "omega"); !errors.Is(err, ErrInvalidAngleName) {
		Te.Errorf("expected ErrInvalidAngleName, got %v", err)
	}
	if _, err = GetDihedralAngleAtoms(res[:1], "phi"); !errors.Is(err, ErrBadResidues) {
		Te.Errorf("expected ErrBadResidues, got %v", err)
	}
}

func TestParseAngleName(Te *testing.T) {
	for _, a := range AllAngles() {
		b, err := ParseAngleName(a.String())
		if err != nil || b != a {
			Te.Errorf("%s parsed as %s, %v", a, b, err)
		}
	}
	if a, err := ParseAngleName(""); err != nil || a != NoAngle {
		Te.Errorf("the empty name should be NoAngle, got %s, %v", a, err)
	}
	_, err := ParseAngleName("omega")
	if !errors.Is(err, ErrInvalidAngleName) {
		Te.Errorf("expected ErrInvalidAngleName, got %v", err)
	}
	if Chi3.ChiIndex() != 3 || Phi.ChiIndex() != 0 || !Psi.IsBackbone() || Chi1.IsBackbone() {
		Te.Errorf("wrong angle properties")
	}
}
