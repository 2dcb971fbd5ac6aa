// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"strings"

	"github.com/cpmech/gomech/mech"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// IdealGas implements NASA polynomial reference properties for ideal gases.
// Species without usable coefficients get the diatomic default Cp/R = CpDef and H/RT = S/R = 0.
type IdealGas struct {
	CpDef   float64        // default Cp/R
	species []*mech.Thermo // data of each species; may be shorter than the phase
}

// add model to factory
func init() {
	allocators["idealgas"] = func() Model { return new(IdealGas) }
}

// Init initialises model
func (o *IdealGas) Init(species []*mech.Thermo, prms dbf.Params) (err error) {
	o.CpDef = 3.5
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "cpdef":
			o.CpDef = p.V
		default:
			return chk.Err("idealgas: parameter named %q is incorrect\n", p.N)
		}
	}
	o.species = species
	return
}

// GetPrms gets (an example) of parameters
func (o IdealGas) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "cpdef", V: 3.5},
		}
	}
	return dbf.Params{
		&dbf.P{N: "cpdef", V: o.CpDef},
	}
}

// Calc computes H/RT, S/R and Cp/R of all species
func (o IdealGas) Calc(T float64, hrt, sr, cpr []float64) {
	for i := range hrt {
		hrt[i], sr[i], cpr[i] = o.Species(i, T)
	}
}

// Species computes H/RT, S/R and Cp/R of species i
func (o IdealGas) Species(i int, T float64) (hrt, sr, cpr float64) {
	if i < 0 || i >= len(o.species) || o.species[i] == nil {
		return 0, 0, o.CpDef
	}
	th := o.species[i]
	if a := Nasa7Coeffs(th, T); len(a) >= 7 {
		return Nasa7(a, T, HRT), Nasa7(a, T, SR), Nasa7(a, T, CpR)
	}
	if a := Nasa9Coeffs(th, T); len(a) >= 9 {
		return Nasa9(a, T, HRT), Nasa9(a, T, SR), Nasa9(a, T, CpR)
	}
	return 0, 0, o.CpDef
}

// Nasa7Coeffs selects the NASA7 set for T: low if T ≤ Tmid, high otherwise.
// Without a middle breakpoint the low set is used.
//  Note: returns nil if either set is missing
func Nasa7Coeffs(th *mech.Thermo, T float64) []float64 {
	if len(th.Low) == 0 || len(th.High) == 0 {
		return nil
	}
	Tmid, ok := th.Tmid()
	if !ok || T <= Tmid {
		return th.Low
	}
	return th.High
}

// Nasa9Coeffs selects the NASA9 range containing T, or the nearest one.
//  Note: ranges with fewer than 9 coefficients are ignored
func Nasa9Coeffs(th *mech.Thermo, T float64) (a []float64) {
	var first, last []float64
	for _, r := range th.Nasa9 {
		if len(r.Coeffs) < 9 {
			continue
		}
		if T >= r.Tmin && T <= r.Tmax {
			return r.Coeffs
		}
		if first == nil {
			first = r.Coeffs
		}
		last = r.Coeffs
	}
	if len(th.Nasa9) > 0 && first != nil && T < th.Nasa9[0].Tmin {
		return first
	}
	return last
}
