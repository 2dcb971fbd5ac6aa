// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermo implements models for reference-state thermodynamic properties of species
package thermo

import (
	"github.com/cpmech/gomech/mech"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model computes dimensionless reference properties of all species of a phase
type Model interface {
	Init(species []*mech.Thermo, prms dbf.Params) error // initialises model
	GetPrms(example bool) dbf.Params                    // gets (an example) of parameters
	Calc(T float64, hrt, sr, cpr []float64)             // computes H/RT, S/R and Cp/R of species 0..len(hrt)-1
}

// New returns a new thermo model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'thermo' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
