// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"bytes"

	"github.com/cpmech/gosl/io"
)

// Report returns a summary of the current state: state variables, mass and molar
// properties, and the composition of species with X or Y above 1e-10
func (o *IdealGas) Report() string {
	var b bytes.Buffer
	io.Ff(&b, "\n  %s:\n\n", o.Name)
	io.Ff(&b, "       temperature   %14.4f  K\n", o.temp)
	io.Ff(&b, "          pressure   %14.4f  Pa\n", o.pres)
	io.Ff(&b, "           density   %14.6g  kg/m³\n", o.Density())
	io.Ff(&b, "  mean mol. weight   %14.4f  kg/kmol\n", o.MeanMolecularWeight())
	io.Ff(&b, "\n")
	io.Ff(&b, "                          1 kg             1 kmol\n")
	io.Ff(&b, "                     ---------------   ---------------\n")
	io.Ff(&b, "          enthalpy   %15.6g   %15.6g     J\n", o.EnthalpyMass(), o.EnthalpyMole())
	io.Ff(&b, "   internal energy   %15.6g   %15.6g     J\n", o.IntEnergyMass(), o.IntEnergyMole())
	io.Ff(&b, "           entropy   %15.6g   %15.6g     J/K\n", o.EntropyMass(), o.EntropyMole())
	io.Ff(&b, "    Gibbs function   %15.6g   %15.6g     J\n", o.GibbsMass(), o.GibbsMole())
	io.Ff(&b, " heat capacity c_p   %15.6g   %15.6g     J/K\n", o.CpMass(), o.CpMole())
	io.Ff(&b, " heat capacity c_v   %15.6g   %15.6g     J/K\n", o.CvMass(), o.CvMole())
	if o.NumSpecies() > 0 {
		io.Ff(&b, "\n")
		io.Ff(&b, "                         X             Y          Chem. Pot. / RT\n")
		io.Ff(&b, "                     -----------   -----------   ---------------\n")
		for i, name := range o.names {
			if o.x[i] > 1e-10 || o.y[i] > 1e-10 {
				io.Ff(&b, "%18s   %11.6g   %11.6g   %15.6g\n", name, o.x[i], o.y[i], o.ChemPotRT(i))
			}
		}
	}
	io.Ff(&b, "\n")
	return b.String()
}
