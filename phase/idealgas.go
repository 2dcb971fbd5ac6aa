// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"math"

	"github.com/cpmech/gomech/mdl/thermo"
	"github.com/cpmech/gomech/mech"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// refCache holds per-species dimensionless reference properties computed at temperature T
type refCache struct {
	T     float64   // temperature key
	valid bool      // cache was computed at least once for the current species
	hrt   []float64 // H/RT
	sr    []float64 // S/R
	cpr   []float64 // Cp/R
	grt   []float64 // G/RT = H/RT - S/R
}

// fresh tells whether the cache can be used at temperature T
func (o *refCache) fresh(T, tol float64, nsp int) bool {
	return o.valid && len(o.hrt) == nsp && math.Abs(T-o.T) <= tol
}

// refresh recomputes all properties using mdl
func (o *refCache) refresh(mdl thermo.Model, T float64, nsp int) {
	if len(o.hrt) != nsp {
		o.hrt = make([]float64, nsp)
		o.sr = make([]float64, nsp)
		o.cpr = make([]float64, nsp)
		o.grt = make([]float64, nsp)
	}
	mdl.Calc(T, o.hrt, o.sr, o.cpr)
	for i := 0; i < nsp; i++ {
		o.grt[i] = o.hrt[i] - o.sr[i]
	}
	o.T = T
	o.valid = true
}

// IdealGas implements the thermodynamic state of an ideal gas mixture.
// Temperature is given in K, pressure in Pa, and molar quantities per kmol.
//  Note: not safe for concurrent use; use one instance per goroutine
type IdealGas struct {
	Composition

	// parameters
	Name string  // name of phase
	P0   float64 // reference pressure [Pa]
	Tol  float64 // temperature tolerance for reusing the cache [K]
	Patm float64 // pressures below this value are taken as atm

	// state
	temp float64 // temperature [K]
	pres float64 // pressure [Pa]

	// auxiliary
	species []*mech.Thermo // thermo records given to the model
	mdl     thermo.Model   // reference properties of species
	cache   refCache       // reference properties at cache.T
}

// NewIdealGas returns a new ideal gas with one species per thermo record.
// Molecular weights are computed from the elemental composition of each record.
func NewIdealGas(species []*mech.Thermo, prms dbf.Params) (o *IdealGas, err error) {
	o = new(IdealGas)
	o.Name = "IdealGas"
	o.species = species
	for _, th := range species {
		o.Composition.AddSpecies(th.Name, MolecularWeight(th.Composition))
	}
	err = o.Init(prms)
	if err != nil {
		return nil, err
	}
	return
}

// Init initialises parameters, state and the thermo model.
//  Note: "cpdef" is forwarded to the thermo model
func (o *IdealGas) Init(prms dbf.Params) (err error) {
	o.temp, o.pres = 300.0, OneAtm
	o.P0, o.Tol, o.Patm = OneAtm, 1e-6, 1e4
	var mprms dbf.Params
	for _, p := range prms {
		switch p.N {
		case "cpdef":
			mprms = append(mprms, p)
		case "T":
			o.temp = p.V
		case "P":
			o.pres = p.V
		case "P0":
			o.P0 = p.V
		case "tol":
			o.Tol = p.V
		case "patm":
			o.Patm = p.V
		default:
			return chk.Err("ideal gas: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.temp <= 0 {
		return chk.Err("ideal gas: temperature must be positive; T = %g is invalid\n", o.temp)
	}
	if o.P0 <= 0 {
		return chk.Err("ideal gas: reference pressure must be positive; P0 = %g is invalid\n", o.P0)
	}
	if o.mdl == nil {
		o.mdl, err = thermo.New("idealgas")
		if err != nil {
			return
		}
	}
	err = o.mdl.Init(o.species, mprms)
	if err != nil {
		return
	}
	o.cache.valid = false
	return
}

// GetPrms gets (an example) of parameters
func (o IdealGas) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "T", V: 300.0},   // [K]
			&dbf.P{N: "P", V: OneAtm},  // [Pa]
			&dbf.P{N: "P0", V: OneAtm}, // [Pa]
			&dbf.P{N: "tol", V: 1e-6},  // [K]
			&dbf.P{N: "patm", V: 1e4},  // [Pa]
			&dbf.P{N: "cpdef", V: 3.5}, // [-]
		}
	}
	prms := dbf.Params{
		&dbf.P{N: "T", V: o.temp},
		&dbf.P{N: "P", V: o.pres},
		&dbf.P{N: "P0", V: o.P0},
		&dbf.P{N: "tol", V: o.Tol},
		&dbf.P{N: "patm", V: o.Patm},
	}
	if o.mdl != nil {
		prms = append(prms, o.mdl.GetPrms(false)...)
	}
	return prms
}

// AddSpecies adds a species without thermo data; it gets the default reference properties
func (o *IdealGas) AddSpecies(name string, mw float64) {
	o.Composition.AddSpecies(name, mw)
	o.cache.valid = false
}

// Temperature returns the temperature [K]
func (o *IdealGas) Temperature() float64 { return o.temp }

// Pressure returns the pressure [Pa]
func (o *IdealGas) Pressure() float64 { return o.pres }

// RT returns R・T [J/kmol]
func (o *IdealGas) RT() float64 { return GasConstant * o.temp }

// SetTemperature sets the temperature [K]
func (o *IdealGas) SetTemperature(T float64) { o.temp = T }

// SetPressure sets the pressure. Values below Patm are taken as atm and converted to Pa.
func (o *IdealGas) SetPressure(p float64) {
	if p < o.Patm {
		p *= OneAtm
	}
	o.pres = p
}

// SetStateTP sets temperature and pressure
func (o *IdealGas) SetStateTP(T, P float64) {
	o.SetTemperature(T)
	o.SetPressure(P)
}

// SetStateTPX sets temperature, pressure and mole fractions
func (o *IdealGas) SetStateTPX(T, P float64, X []float64) {
	o.SetStateTP(T, P)
	o.SetMoleFractions(X)
}

// SetStateTPXByName sets temperature, pressure and mole fractions given as "A:xa, B:xb"
func (o *IdealGas) SetStateTPXByName(T, P float64, X string) {
	o.SetStateTP(T, P)
	o.SetMoleFractionsByName(X)
}

// SetStateTPXByMap sets temperature, pressure and mole fractions given as a map
func (o *IdealGas) SetStateTPXByMap(T, P float64, X map[string]float64) {
	o.SetStateTP(T, P)
	o.SetMoleFractionsByMap(X)
}

// SetStateTPY sets temperature, pressure and mass fractions
func (o *IdealGas) SetStateTPY(T, P float64, Y []float64) {
	o.SetStateTP(T, P)
	o.SetMassFractions(Y)
}

// SetStateTPYByName sets temperature, pressure and mass fractions given as "A:ya, B:yb"
func (o *IdealGas) SetStateTPYByName(T, P float64, Y string) {
	o.SetStateTP(T, P)
	o.SetMassFractionsByName(Y)
}

// SetStateTPYByMap sets temperature, pressure and mass fractions given as a map
func (o *IdealGas) SetStateTPYByMap(T, P float64, Y map[string]float64) {
	o.SetStateTP(T, P)
	o.SetMassFractionsByMap(Y)
}

// Density returns ρ = P・M̄/(R・T) [kg/m³], computed from the current state on every call
func (o *IdealGas) Density() float64 {
	mw := o.MeanMolecularWeight()
	if o.temp > SmallNumber && mw > SmallNumber {
		return o.pres * mw / (GasConstant * o.temp)
	}
	return 0
}

// MolarDensity returns P/(R・T) [kmol/m³]
func (o *IdealGas) MolarDensity() float64 {
	if o.temp > SmallNumber {
		return o.pres / (GasConstant * o.temp)
	}
	return 0
}

// updateThermo refreshes the reference properties if the temperature moved beyond Tol
func (o *IdealGas) updateThermo() {
	nsp := o.NumSpecies()
	if o.cache.fresh(o.temp, o.Tol, nsp) {
		return
	}
	o.cache.refresh(o.mdl, o.temp, nsp)
}

// meanX computes Σ X_i・v_i
func (o *IdealGas) meanX(v []float64) (sum float64) {
	for i := 0; i < len(o.x) && i < len(v); i++ {
		sum += o.x[i] * v[i]
	}
	return
}

// sumXlogX computes Σ X_i・ln X_i skipping zero fractions
func (o *IdealGas) sumXlogX() (sum float64) {
	for _, x := range o.x {
		if x > SmallNumber {
			sum += x * math.Log(x)
		}
	}
	return
}

// EnthalpyMole returns the molar enthalpy [J/kmol]
func (o *IdealGas) EnthalpyMole() float64 {
	o.updateThermo()
	return o.meanX(o.cache.hrt) * o.RT()
}

// EntropyMole returns the molar entropy [J/(kmol・K)] including mixing and pressure terms
func (o *IdealGas) EntropyMole() float64 {
	o.updateThermo()
	smix := -GasConstant * o.sumXlogX()
	sref := GasConstant * o.meanX(o.cache.sr)
	spres := -GasConstant * math.Log(o.pres/o.P0)
	return sref + smix + spres
}

// CpMole returns the molar heat capacity at constant pressure [J/(kmol・K)]
func (o *IdealGas) CpMole() float64 {
	o.updateThermo()
	return GasConstant * o.meanX(o.cache.cpr)
}

// CvMole returns the molar heat capacity at constant volume [J/(kmol・K)]
func (o *IdealGas) CvMole() float64 { return o.CpMole() - GasConstant }

// GibbsMole returns the molar Gibbs function [J/kmol]
func (o *IdealGas) GibbsMole() float64 { return o.EnthalpyMole() - o.temp*o.EntropyMole() }

// IntEnergyMole returns the molar internal energy [J/kmol]
func (o *IdealGas) IntEnergyMole() float64 { return o.EnthalpyMole() - o.RT() }

// EnthalpyMass returns the specific enthalpy [J/kg]
func (o *IdealGas) EnthalpyMass() float64 { return o.EnthalpyMole() / o.MeanMolecularWeight() }

// EntropyMass returns the specific entropy [J/(kg・K)]
func (o *IdealGas) EntropyMass() float64 { return o.EntropyMole() / o.MeanMolecularWeight() }

// CpMass returns the specific heat capacity at constant pressure [J/(kg・K)]
func (o *IdealGas) CpMass() float64 { return o.CpMole() / o.MeanMolecularWeight() }

// CvMass returns the specific heat capacity at constant volume [J/(kg・K)]
func (o *IdealGas) CvMass() float64 { return o.CvMole() / o.MeanMolecularWeight() }

// GibbsMass returns the specific Gibbs function [J/kg]
func (o *IdealGas) GibbsMass() float64 { return o.GibbsMole() / o.MeanMolecularWeight() }

// IntEnergyMass returns the specific internal energy [J/kg]
func (o *IdealGas) IntEnergyMass() float64 { return o.IntEnergyMole() / o.MeanMolecularWeight() }

// EnthalpyRT returns H/RT of all species at the current temperature
func (o *IdealGas) EnthalpyRT() []float64 {
	o.updateThermo()
	return append([]float64{}, o.cache.hrt...)
}

// EntropyR returns S/R of all species at the current temperature
func (o *IdealGas) EntropyR() []float64 {
	o.updateThermo()
	return append([]float64{}, o.cache.sr...)
}

// CpR returns Cp/R of all species at the current temperature
func (o *IdealGas) CpR() []float64 {
	o.updateThermo()
	return append([]float64{}, o.cache.cpr...)
}

// GibbsRT returns G/RT of all species at the current temperature
func (o *IdealGas) GibbsRT() []float64 {
	o.updateThermo()
	return append([]float64{}, o.cache.grt...)
}

// ChemPotRT returns μ_i/RT = G_i/RT + ln(max(X_i・P/P0, 1e-100)) of species i
//  Note: panics if i is out of range
func (o *IdealGas) ChemPotRT(i int) float64 {
	o.checkIndex(i)
	o.updateThermo()
	return o.cache.grt[i] + math.Log(math.Max(o.x[i]*o.pres/o.P0, SmallNumber))
}
