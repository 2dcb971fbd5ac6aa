// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phase implements the composition and the thermodynamic state of gas mixtures
package phase

import (
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// constants
const (
	GasConstant = 8314.462618 // universal gas constant [J/(kmol・K)]
	OneAtm      = 101325.0    // one atmosphere [Pa]
	SmallNumber = 1e-100      // sums below this are not normalised
	AirMw       = 28.96       // mean molecular weight returned when there are no species [kg/kmol]
)

// Composition holds species names, molecular weights and mole/mass fractions.
// After any Set call, each fraction array sums to 1, or is all zeros if the input was degenerate.
type Composition struct {
	names []string       // species names
	mw    []float64      // molecular weights [kg/kmol]
	x     []float64      // mole fractions
	y     []float64      // mass fractions
	index map[string]int // name => index
}

// AddSpecies adds a species with molecular weight mw [kg/kmol].
//  Note: a single species gets X = Y = 1
func (o *Composition) AddSpecies(name string, mw float64) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if _, ok := o.index[name]; !ok {
		o.index[name] = len(o.names)
	}
	o.names = append(o.names, name)
	o.mw = append(o.mw, mw)
	o.x = append(o.x, 0)
	o.y = append(o.y, 0)
	if len(o.names) == 1 {
		o.x[0], o.y[0] = 1, 1
	}
}

// NumSpecies returns the number of species
func (o *Composition) NumSpecies() int { return len(o.names) }

// SpeciesIndex returns the index of a species or -1 if not found
func (o *Composition) SpeciesIndex(name string) int {
	if idx, ok := o.index[name]; ok {
		return idx
	}
	return -1
}

// SpeciesName returns the name of species i
//  Note: panics if i is out of range
func (o *Composition) SpeciesName(i int) string {
	o.checkIndex(i)
	return o.names[i]
}

// SpeciesNames returns a copy of all names
func (o *Composition) SpeciesNames() []string { return append([]string{}, o.names...) }

// MolecularWeight returns the molecular weight of species i
//  Note: panics if i is out of range
func (o *Composition) MolecularWeight(i int) float64 {
	o.checkIndex(i)
	return o.mw[i]
}

// MolecularWeights returns a copy of all molecular weights
func (o *Composition) MolecularWeights() []float64 { return append([]float64{}, o.mw...) }

// MoleFraction returns the mole fraction of species i
//  Note: panics if i is out of range
func (o *Composition) MoleFraction(i int) float64 {
	o.checkIndex(i)
	return o.x[i]
}

// MassFraction returns the mass fraction of species i
//  Note: panics if i is out of range
func (o *Composition) MassFraction(i int) float64 {
	o.checkIndex(i)
	return o.y[i]
}

// MoleFractions returns a copy of all mole fractions
func (o *Composition) MoleFractions() []float64 { return append([]float64{}, o.x...) }

// MassFractions returns a copy of all mass fractions
func (o *Composition) MassFractions() []float64 { return append([]float64{}, o.y...) }

// MeanMolecularWeight returns Σ X_i・M_i
func (o *Composition) MeanMolecularWeight() float64 {
	if len(o.names) == 0 {
		return AirMw
	}
	return meanMw(o.x, o.mw)
}

// SetMoleFractions sets mole fractions and derives mass fractions.
// Values beyond the number of species are ignored; missing ones are zero.
func (o *Composition) SetMoleFractions(x []float64) {
	o.x = clean(x, len(o.names))
	Normalize(o.x)
	o.y = MoleToMass(o.x, o.mw)
}

// SetMassFractions sets mass fractions and derives mole fractions
func (o *Composition) SetMassFractions(y []float64) {
	o.y = clean(y, len(o.names))
	Normalize(o.y)
	o.x = MassToMole(o.y, o.mw)
}

// SetMoleFractionsByName sets mole fractions from a string such as "H2O:1.0, H2:8.0, AR:1.0"
func (o *Composition) SetMoleFractionsByName(x string) { o.SetMoleFractions(o.parse(x)) }

// SetMassFractionsByName sets mass fractions from a string such as "CH4:0.1, O2:0.2, N2:0.7"
func (o *Composition) SetMassFractionsByName(y string) { o.SetMassFractions(o.parse(y)) }

// SetMoleFractionsByMap sets mole fractions from a name => value map
func (o *Composition) SetMoleFractionsByMap(x map[string]float64) { o.SetMoleFractions(o.fromMap(x)) }

// SetMassFractionsByMap sets mass fractions from a name => value map
func (o *Composition) SetMassFractionsByMap(y map[string]float64) { o.SetMassFractions(o.fromMap(y)) }

// checkIndex panics if i is not a valid species index
func (o *Composition) checkIndex(i int) {
	if i < 0 || i >= len(o.names) {
		chk.Panic("species index %d is out of range; number of species = %d", i, len(o.names))
	}
}

// parse converts "A:1, B=2, C 3, D" into values aligned with the species.
// The separator of each token is the first one found among ':', '=' and ' '; a token without
// separator sets its species to 1. Unknown species and invalid values are ignored.
func (o *Composition) parse(comp string) (v []float64) {
	v = make([]float64, len(o.names))
	for _, token := range strings.Split(comp, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		pos := -1
		for _, sep := range []string{":", "=", " "} {
			if pos = strings.Index(token, sep); pos >= 0 {
				break
			}
		}
		if pos < 0 {
			if idx := o.SpeciesIndex(token); idx >= 0 {
				v[idx] = 1
			}
			continue
		}
		name := strings.TrimSpace(token[:pos])
		idx := o.SpeciesIndex(name)
		if idx < 0 {
			continue
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(token[pos+1:]), 64)
		if err != nil || val < 0 {
			continue
		}
		v[idx] = val
	}
	return
}

// fromMap converts a name => value map into values aligned with the species
func (o *Composition) fromMap(comp map[string]float64) (v []float64) {
	v = make([]float64, len(o.names))
	for name, val := range comp {
		if idx := o.SpeciesIndex(name); idx >= 0 {
			v[idx] = val
		}
	}
	return
}

// clean copies n values of v replacing negative, NaN and missing entries by zero
func clean(v []float64, n int) (res []float64) {
	res = make([]float64, n)
	for i := 0; i < n && i < len(v); i++ {
		if v[i] > 0 && !math.IsInf(v[i], 0) {
			res[i] = v[i]
		}
	}
	return
}

// Normalize divides v by its sum, unless the sum is not greater than SmallNumber
func Normalize(v []float64) {
	sum := 0.0
	for _, f := range v {
		sum += f
	}
	if sum > SmallNumber {
		for i := range v {
			v[i] /= sum
		}
	}
}

// MoleToMass computes Y_i = X_i・M_i / Σ X_j・M_j
func MoleToMass(x, mw []float64) (y []float64) {
	y = make([]float64, len(x))
	mean := meanMw(x, mw)
	for i := range x {
		if i < len(mw) && mean > SmallNumber {
			y[i] = x[i] * mw[i] / mean
		} else {
			y[i] = x[i]
		}
	}
	return
}

// MassToMole computes X_i = (Y_i/M_i) / Σ (Y_j/M_j)
func MassToMole(y, mw []float64) (x []float64) {
	x = make([]float64, len(y))
	moles := 0.0
	for i := range y {
		if i < len(mw) && mw[i] > SmallNumber {
			moles += y[i] / mw[i]
		}
	}
	if moles <= SmallNumber {
		return
	}
	for i := range y {
		if i < len(mw) && mw[i] > SmallNumber {
			x[i] = (y[i] / mw[i]) / moles
		}
	}
	return
}

// meanMw computes Σ X_i・M_i
func meanMw(x, mw []float64) (sum float64) {
	for i := 0; i < len(x) && i < len(mw); i++ {
		sum += x[i] * mw[i]
	}
	return
}
