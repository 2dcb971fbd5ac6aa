// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mech implements the extraction of reactions, thermodynamic and transport data
// from chemical mechanism documents
package mech

// reaction types
const (
	TypeElementary = "elementary"
	TypeThreeBody  = "three-body"
	TypeFalloff    = "falloff"
	TypeChemAct    = "chemically-activated"
	TypePlog       = "pressure-dependent-Arrhenius"
)

// ModelNasa7 is the thermo model tag of 7-coefficient polynomials
const ModelNasa7 = "NASA7"

// UnknownSpecies names transport records whose species has no valid name
const UnknownSpecies = "unknown species"

// expected counts
const (
	nasa7Ncoef     = 7
	nasa9Ncoef     = 9
	nasa7Nbreakpts = 3
)

// Arrhenius holds the parameters of k = A・T^b・exp(-Ea/RT)
type Arrhenius struct {
	A       float64 // pre-exponential factor
	Aunits  string  // units of A, if given
	B       float64 // temperature exponent
	Ea      float64 // activation energy
	EaUnits string  // units of Ea, if given
}

// Troe holds the falloff blending parameters
//  Note: the canonical keys map as A→A, T3→Tstar, T1→T2star, T2→T3star
type Troe struct {
	A      float64 // a
	Tstar  float64 // T*
	T2star float64 // T**
	T3star float64 // T***
}

// PlogPoint holds Arrhenius parameters at one pressure
type PlogPoint struct {
	P  float64 // pressure [atm]
	A  float64
	B  float64
	Ea float64
}

// Reaction holds the data of one reaction
type Reaction struct {
	Equation          string             // e.g. "H + O2 <=> O + OH"
	Type              string             // see Type constants; empty means elementary
	Rate              Arrhenius          // standalone rate or high-pressure limit
	Low               Arrhenius          // low-pressure limit (falloff and chemically-activated)
	Troe              Troe               // falloff blending
	Efficiencies      map[string]float64 // third-body efficiencies
	Orders            map[string]float64 // non-standard reaction orders
	Duplicate         bool               // marked as duplicate
	Plog              []PlogPoint        // pressure-dependent rates read from note
	PressureDependent bool               // Plog holds at least one point
}

// Nasa9Range holds NASA9 coefficients valid within [Tmin, Tmax]
type Nasa9Range struct {
	Tmin   float64
	Tmax   float64
	Coeffs []float64
}

// Thermo holds the thermodynamic data of one species
type Thermo struct {
	Name        string             // species name
	Composition map[string]float64 // element => number of atoms
	Model       string             // e.g. "NASA7"
	Tranges     []float64          // temperature breakpoints
	Low         []float64          // NASA7 coefficients for Tranges[0] ≤ T ≤ Tranges[1]
	High        []float64          // NASA7 coefficients for Tranges[1] < T ≤ Tranges[2]
	Nasa9       []Nasa9Range       // NASA9 ranges
}

// Complete tells whether the NASA7 data is complete: 3 breakpoints and 7+7 coefficients
//  Note: advisory only; incomplete records are kept
func (o *Thermo) Complete() bool {
	return o.Model == ModelNasa7 &&
		len(o.Tranges) == nasa7Nbreakpts &&
		len(o.Low) == nasa7Ncoef &&
		len(o.High) == nasa7Ncoef
}

// Tmid returns the middle temperature breakpoint, if any
func (o *Thermo) Tmid() (Tmid float64, ok bool) {
	if len(o.Tranges) < nasa7Nbreakpts {
		return 0, false
	}
	return o.Tranges[1], true
}

// Transport holds the transport data of one species
type Transport struct {
	Name           string
	Model          string  // e.g. "gas"
	Geometry       string  // "atom", "linear" or "nonlinear"
	Diameter       float64 // Lennard-Jones collision diameter [Å]
	WellDepth      float64 // Lennard-Jones well depth [K]
	Dipole         float64 // dipole moment [Debye]
	Polarizability float64 // [Å³]
	RotRelax       float64 // rotational relaxation collision number at 298 K
	Note           string
}
