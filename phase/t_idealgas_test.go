// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gomech/mech"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func newTestGas(tst *testing.T) *IdealGas {
	gas, err := NewIdealGas(nil, nil)
	if err != nil {
		tst.Fatalf("NewIdealGas failed:\n%v", err)
	}
	return gas
}

func Test_idealgas01(tst *testing.T) {

	chk.PrintTitle("idealgas01")

	gas := newTestGas(tst)
	gas.AddSpecies("H2O", 18.01534)
	gas.AddSpecies("H2", 2.01588)
	gas.AddSpecies("AR", 39.948)
	gas.SetStateTPX(1000, OneAtm, []float64{0.1, 0.8, 0.1})

	mw := 0.1*18.01534 + 0.8*2.01588 + 0.1*39.948
	io.Pforan("M̄ = %v\n", gas.MeanMolecularWeight())
	io.Pforan("ρ  = %v\n", gas.Density())
	chk.Float64(tst, "M̄", 1e-14, gas.MeanMolecularWeight(), mw)
	chk.Float64(tst, "ρ", 1e-15, gas.Density(), 0.09029095563250988)
	chk.Float64(tst, "ρ/M̄", 1e-15, gas.MolarDensity(), gas.Density()/mw)

	// density follows the state
	gas.SetStateTP(500, 2*OneAtm)
	chk.Float64(tst, "ρ(500K, 2atm)", 1e-14, gas.Density(), 4*0.09029095563250988)

	// density follows the composition
	gas.SetMoleFractions([]float64{0, 0, 1})
	chk.Float64(tst, "M̄(AR)", 1e-14, gas.MeanMolecularWeight(), 39.948)
	chk.Float64(tst, "ρ(AR)", 1e-15, gas.Density(), 2*OneAtm*39.948/(GasConstant*500))
	gas.SetMassFractionsByName("H2:1")
	chk.Float64(tst, "ρ(H2)", 1e-15, gas.Density(), 2*OneAtm*2.01588/(GasConstant*500))

	// degenerate temperature
	gas.SetTemperature(0)
	chk.Float64(tst, "ρ(T=0)", 1e-15, gas.Density(), 0)
	chk.Float64(tst, "n(T=0)", 1e-15, gas.MolarDensity(), 0)
}

func Test_idealgas02(tst *testing.T) {

	chk.PrintTitle("idealgas02")

	// species without thermo data use Cp/R = 3.5 and zero reference H and S
	gas := newTestGas(tst)
	gas.AddSpecies("A", 28.0)
	gas.AddSpecies("B", 32.0)
	gas.SetStateTPX(1000, OneAtm, []float64{0.5, 0.5})

	R := GasConstant
	chk.Float64(tst, "cp", 1e-10, gas.CpMole(), 3.5*R)
	chk.Float64(tst, "cv", 1e-10, gas.CvMole(), 2.5*R)
	chk.Float64(tst, "h", 1e-10, gas.EnthalpyMole(), 0)
	chk.Float64(tst, "s", 1e-10, gas.EntropyMole(), 5763.146321537761)
	chk.Float64(tst, "u", 1e-8, gas.IntEnergyMole(), -R*1000)
	chk.Float64(tst, "g", 1e-7, gas.GibbsMole(), -1000*5763.146321537761)
	chk.Float64(tst, "cp mass", 1e-10, gas.CpMass(), 3.5*R/30)
	chk.Float64(tst, "s mass", 1e-10, gas.EntropyMass(), 5763.146321537761/30)

	// pressure term
	gas.SetPressure(2 * OneAtm)
	chk.Float64(tst, "s(2atm)", 1e-10, gas.EntropyMole(), 5763.146321537761-R*math.Log(2))

	// chemical potential
	chk.Float64(tst, "μ/RT", 1e-14, gas.ChemPotRT(0), math.Log(0.5*2))
	gas.SetMoleFractions([]float64{1, 0})
	chk.Float64(tst, "μ/RT (X=0)", 1e-12, gas.ChemPotRT(1), math.Log(SmallNumber))
	chk.Float64(tst, "s(pure)", 1e-10, gas.EntropyMole(), -R*math.Log(2))
}

func Test_idealgas03(tst *testing.T) {

	chk.PrintTitle("idealgas03")

	gas := newTestGas(tst)
	gas.AddSpecies("A", 28.0)

	// small values are taken as atm
	gas.SetPressure(2)
	chk.Float64(tst, "P(2)", 1e-15, gas.Pressure(), 2*OneAtm)
	gas.SetPressure(5e4)
	chk.Float64(tst, "P(5e4)", 1e-15, gas.Pressure(), 5e4)
	gas.SetStateTP(800, 0.5)
	chk.Float64(tst, "T", 1e-15, gas.Temperature(), 800)
	chk.Float64(tst, "P(0.5)", 1e-15, gas.Pressure(), 0.5*OneAtm)
	chk.Float64(tst, "RT", 1e-9, gas.RT(), 800*GasConstant)

	// threshold from parameters
	err := gas.Init(dbf.Params{&dbf.P{N: "patm", V: 0}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	gas.SetPressure(2)
	chk.Float64(tst, "P(2) with patm=0", 1e-15, gas.Pressure(), 2)
}

func Test_idealgas04(tst *testing.T) {

	chk.PrintTitle("idealgas04")

	gas := newTestGas(tst)
	gas.AddSpecies("A", 28.0)
	gas.AddSpecies("B", 32.0)

	gas.SetTemperature(1000)
	gas.EnthalpyMole()
	chk.Float64(tst, "cache T", 1e-15, gas.cache.T, 1000)

	// within tolerance: cache kept
	gas.SetTemperature(1000 + 1e-7)
	gas.CpMole()
	chk.Float64(tst, "cache T (within tol)", 1e-15, gas.cache.T, 1000)

	// beyond tolerance: cache refreshed
	gas.SetTemperature(1001)
	gas.EntropyMole()
	chk.Float64(tst, "cache T (beyond tol)", 1e-15, gas.cache.T, 1001)

	// new species: cache refreshed at the same temperature
	gas.AddSpecies("C", 4.0)
	chk.Int(tst, "cp/R length", len(gas.CpR()), 3)
	chk.Array(tst, "cp/R", 1e-15, gas.CpR(), []float64{3.5, 3.5, 3.5})
}

func Test_idealgas05(tst *testing.T) {

	chk.PrintTitle("idealgas05")

	m := mech.ReadMechanism("../mech/data", "h2o2.yaml", nil)
	gas, err := NewIdealGas(m.Thermo, dbf.Params{&dbf.P{N: "T", V: 1500}})
	if err != nil {
		tst.Errorf("NewIdealGas failed: %v\n", err)
		return
	}
	chk.Int(tst, "nsp", gas.NumSpecies(), 8)
	chk.Float64(tst, "mw(H2)", 1e-14, gas.MolecularWeight(0), 2.016)
	chk.Float64(tst, "mw(H2O)", 1e-14, gas.MolecularWeight(5), 18.015)
	chk.Float64(tst, "mw(AR)", 1e-14, gas.MolecularWeight(6), 39.948)

	// pure H2 at 1500 K uses the high-temperature set
	gas.SetStateTPXByName(1500, OneAtm, "H2")
	chk.Float64(tst, "T", 1e-15, gas.Temperature(), 1500)
	chk.Float64(tst, "H/RT", 1e-12, gas.EnthalpyRT()[0], 2.9101473592241667)
	chk.Float64(tst, "S/R", 1e-12, gas.EntropyR()[0], 21.51235276622741)
	chk.Float64(tst, "Cp/R", 1e-12, gas.CpR()[0], 3.8822959451999997)
	chk.Float64(tst, "G/RT", 1e-12, gas.GibbsRT()[0], 2.9101473592241667-21.51235276622741)
	chk.Float64(tst, "h", 1e-4, gas.EnthalpyMole(), 2.9101473592241667*GasConstant*1500)
	chk.Float64(tst, "s", 1e-7, gas.EntropyMole(), 21.51235276622741*GasConstant)
	chk.Float64(tst, "cp", 1e-7, gas.CpMole(), 3.8822959451999997*GasConstant)
	chk.Float64(tst, "cp mass", 1e-7, gas.CpMass(), 3.8822959451999997*GasConstant/2.016)

	// argon is monatomic
	gas.SetStateTPYByName(1500, OneAtm, "AR:1")
	chk.Float64(tst, "cp(AR)", 1e-8, gas.CpMole(), 2.5*GasConstant)
	chk.Array(tst, "x", 1e-15, gas.MoleFractions(), []float64{0, 0, 0, 0, 0, 0, 1, 0})

	// mass fractions by map
	gas.SetStateTPYByMap(1500, OneAtm, map[string]float64{"H2": 2.016, "O2": 31.998})
	chk.Float64(tst, "x(H2)", 1e-14, gas.MoleFraction(0), 0.5)
	chk.Float64(tst, "x(O2)", 1e-14, gas.MoleFraction(3), 0.5)

	// report
	gas.SetStateTPXByMap(1000, OneAtm, map[string]float64{"H2": 2, "O2": 1})
	report := gas.Report()
	io.Pf("%s", report)
	for _, s := range []string{"temperature", "density", "H2", "O2"} {
		if !strings.Contains(report, s) {
			tst.Errorf("report should contain %q", s)
		}
	}
	if strings.Contains(report, " OH ") {
		tst.Errorf("report should not list species with zero fractions")
	}
}

func Test_idealgas06(tst *testing.T) {

	chk.PrintTitle("idealgas06")

	gas := newTestGas(tst)
	chk.Float64(tst, "default T", 1e-15, gas.Temperature(), 300)
	chk.Float64(tst, "default P", 1e-15, gas.Pressure(), OneAtm)

	prms := gas.GetPrms(true)
	if err := gas.Init(prms); err != nil {
		tst.Errorf("Init with example parameters failed: %v\n", err)
	}

	for _, prms := range []dbf.Params{
		{&dbf.P{N: "gamma", V: 1.4}},
		{&dbf.P{N: "T", V: -1}},
		{&dbf.P{N: "P0", V: 0}},
	} {
		err := gas.Init(prms)
		if err == nil {
			tst.Errorf("Init should fail with %v", prms[0].N)
			continue
		}
		io.Pforan("ok, got: %v\n", err)
	}

	// current parameters
	gas.Init(dbf.Params{&dbf.P{N: "T", V: 450}, &dbf.P{N: "tol", V: 1e-3}})
	for _, p := range gas.GetPrms(false) {
		switch p.N {
		case "T":
			chk.Float64(tst, "T", 1e-15, p.V, 450)
		case "tol":
			chk.Float64(tst, "tol", 1e-15, p.V, 1e-3)
		}
	}
}

func Test_idealgas07(tst *testing.T) {

	chk.PrintTitle("idealgas07")

	// default Cp/R of species without thermo data
	gas, err := NewIdealGas(nil, dbf.Params{&dbf.P{N: "cpdef", V: 2.5}})
	if err != nil {
		tst.Errorf("NewIdealGas failed: %v\n", err)
		return
	}
	gas.AddSpecies("HE", 4.003)
	gas.SetStateTP(1000, OneAtm)
	chk.Float64(tst, "cp", 1e-10, gas.CpMole(), 2.5*GasConstant)
	chk.Float64(tst, "cv", 1e-10, gas.CvMole(), 1.5*GasConstant)
	found := false
	for _, p := range gas.GetPrms(false) {
		if p.N == "cpdef" {
			found = true
			chk.Float64(tst, "cpdef", 1e-15, p.V, 2.5)
		}
	}
	if !found {
		tst.Errorf("current parameters should include cpdef")
	}

	// re-initialising without cpdef restores the default
	err = gas.Init(nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "cp (default)", 1e-10, gas.CpMole(), 3.5*GasConstant)

	// misspelled parameter
	if _, err = NewIdealGas(nil, dbf.Params{&dbf.P{N: "cpdeff", V: 2.5}}); err == nil {
		tst.Errorf("unknown parameter should fail")
	}
}
