// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/go-cmp/cmp"
)

func Test_equation01(tst *testing.T) {

	chk.PrintTitle("equation01")

	tests := []struct {
		eq        string
		reactants map[string]float64
		products  map[string]float64
	}{
		{"2 O + M <=> O2 + M", map[string]float64{"O": 2, "M": 1}, map[string]float64{"O2": 1, "M": 1}},
		{"CH3 + OH <=> CH2(S) + H2O", map[string]float64{"CH3": 1, "OH": 1}, map[string]float64{"CH2(S)": 1, "H2O": 1}},
		{"H + O2 => O + OH", map[string]float64{"H": 1, "O2": 1}, map[string]float64{"O": 1, "OH": 1}},
		{"H2 + O2 = 2OH", map[string]float64{"H2": 1, "O2": 1}, map[string]float64{"OH": 2}},
		{"OH + OH <=> O + H2O", map[string]float64{"OH": 2}, map[string]float64{"O": 1, "H2O": 1}},
		{"2 CH3 <=> H + C2H5", map[string]float64{"CH3": 2}, map[string]float64{"H": 1, "C2H5": 1}},
		{"H + O2 (+M) <=> HO2 (+M)", map[string]float64{"H": 1, "O2": 1, "(+M)": 1}, map[string]float64{"HO2": 1, "(+M)": 1}},
		{"0.5 O2 + H2 <=> H2O", map[string]float64{"O2": 0.5, "H2": 1}, map[string]float64{"H2O": 1}},
		{"H2 O2 no arrow", map[string]float64{}, map[string]float64{}},
	}
	for _, t := range tests {
		r, p := ParseEquation(t.eq)
		io.Pforan("%-28s → %v | %v\n", t.eq, r, p)
		if diff := cmp.Diff(t.reactants, r); diff != "" {
			tst.Errorf("%q: reactants mismatch (-want +got):\n%s", t.eq, diff)
		}
		if diff := cmp.Diff(t.products, p); diff != "" {
			tst.Errorf("%q: products mismatch (-want +got):\n%s", t.eq, diff)
		}
	}
}

func Test_plog01(tst *testing.T) {

	chk.PrintTitle("plog01")

	if pts := ParsePlogNote("no pressure data here"); len(pts) != 0 {
		tst.Errorf("note without tag gives no points; got %v", pts)
	}
	pts := ParsePlogNote("PLOG/ 10.0 1e10 0.5 100 /\nPLOG/ 1 2 3/\nPLOG/100.0 2e10 0.4 200/")
	want := []PlogPoint{{P: 10, A: 1e10, B: 0.5, Ea: 100}, {P: 100, A: 2e10, B: 0.4, Ea: 200}}
	if diff := cmp.Diff(want, pts); diff != "" {
		tst.Errorf("points mismatch (-want +got):\n%s", diff)
	}

	// slash attached to the last value, followed by a comment
	pts = ParsePlogNote("PLOG/ 1.0 1.2e13 0.0 12000.0/ ! comment\nPLOG/0.1 3e12 0.2 9000.0/")
	want = []PlogPoint{{P: 1, A: 1.2e13, B: 0, Ea: 12000}, {P: 0.1, A: 3e12, B: 0.2, Ea: 9000}}
	if diff := cmp.Diff(want, pts); diff != "" {
		tst.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}
