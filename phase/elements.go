// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import "sort"

// atomicWeights holds atomic weights [kg/kmol]
var atomicWeights = map[string]float64{
	"H":  1.008,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"Ar": 39.948,
	"He": 4.003,
	"Ne": 20.180,
	"Kr": 83.798,
	"Xe": 131.293,
	"S":  32.06,
	"P":  30.974,
	"Cl": 35.45,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.904,
}

// MolecularWeight computes the molecular weight [kg/kmol] of an elemental composition.
//  Note: unknown elements contribute nothing
func MolecularWeight(composition map[string]float64) (mw float64) {
	elems := make([]string, 0, len(composition))
	for elem := range composition {
		elems = append(elems, elem)
	}
	sort.Strings(elems)
	for _, elem := range elems {
		mw += atomicWeights[elem] * composition[elem]
	}
	return
}
