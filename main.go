// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gomech/mech"
	"github.com/cpmech/gomech/phase"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"go.uber.org/zap"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".yaml", true)
	T := io.ArgToFloat(1, 300.0)
	P := io.ArgToFloat(2, 1.0)
	X := io.ArgToString(3, "")
	verbose := io.ArgToBool(4, true)
	nsweep := io.ArgToInt(5, 0)

	// message
	if verbose {
		io.PfWhite("\nGomech -- Go chemical mechanisms\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"mechanism file path", "fnamepath", fnamepath,
			"temperature [K]", "T", T,
			"pressure [atm or Pa]", "P", P,
			"mole fractions", "X", X,
			"show messages", "verbose", verbose,
			"number of sweep points", "nsweep", nsweep,
		))
	}

	// logger
	log := zap.NewNop()
	if verbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			chk.Panic("cannot create logger:\n%v", err)
		}
		defer log.Sync()
	}

	// mechanism
	dir, fn := filepath.Split(fnamepath)
	m := mech.ReadMechanism(dir, fn, log)
	io.Pf("%s", m.Summary(10))
	if len(m.Thermo) == 0 {
		return
	}

	// state
	gas, err := phase.NewIdealGas(m.Thermo, nil)
	if err != nil {
		chk.Panic("cannot allocate ideal gas:\n%v", err)
	}
	if X == "" {
		X = m.Thermo[0].Name
	}
	gas.SetStateTPXByName(T, P, X)
	io.Pf("%s", gas.Report())

	// temperature sweep
	if nsweep < 2 {
		return
	}
	io.Pf("%12s%16s%16s%16s%16s\n", "T [K]", "h [J/kg]", "s [J/kg/K]", "cp [J/kg/K]", "ρ [kg/m³]")
	for _, t := range utl.LinSpace(T, 3*T, nsweep) {
		gas.SetTemperature(t)
		io.Pf("%12.2f%16.6g%16.6g%16.6g%16.6g\n", t, gas.EnthalpyMass(), gas.EntropyMass(), gas.CpMass(), gas.Density())
	}
}
