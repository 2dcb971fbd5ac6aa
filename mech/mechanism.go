// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"bytes"
	"sort"

	"github.com/cpmech/gomech/doc"
	"github.com/cpmech/gosl/io"
	"go.uber.org/zap"
)

// Mechanism holds all data extracted from a mechanism document
type Mechanism struct {
	Reactions []*Reaction  // reactions
	Thermo    []*Thermo    // thermodynamic data of all species
	Transport []*Transport // transport data of species having it
	Warnings  Warnings     // fields and records skipped during extraction
}

// LoadMechanism extracts reactions, thermodynamic and transport data from root
func LoadMechanism(root *doc.Value) (o *Mechanism) {
	o = new(Mechanism)
	var w Warnings
	o.Reactions, w = ExtractKinetics(root)
	o.Warnings = append(o.Warnings, w...)
	o.Thermo, w = ExtractThermo(root)
	o.Warnings = append(o.Warnings, w...)
	o.Transport, w = ExtractTransport(root)
	o.Warnings = append(o.Warnings, w...)
	return
}

// ReadMechanism reads a mechanism file.
//  Note: a file that cannot be read or parsed is logged and gives an empty mechanism
func ReadMechanism(dir, fn string, log *zap.Logger) *Mechanism {
	if log == nil {
		log = zap.NewNop()
	}
	root, err := doc.ReadFile(dir, fn)
	if err != nil {
		log.Error("cannot load mechanism", zap.String("dir", dir), zap.String("file", fn), zap.Error(err))
		return new(Mechanism)
	}
	o := LoadMechanism(root)
	o.Warnings.Log(log)
	log.Debug("mechanism loaded",
		zap.Int("reactions", len(o.Reactions)),
		zap.Int("species", len(o.Thermo)),
		zap.Int("transport", len(o.Transport)),
		zap.Int("warnings", len(o.Warnings)))
	return o
}

// Species returns the thermo record of a species or nil if not found
func (o *Mechanism) Species(name string) *Thermo {
	for _, th := range o.Thermo {
		if th.Name == name {
			return th
		}
	}
	return nil
}

// Summary returns a text summary of the mechanism
//  maxReactions -- max number of reactions listed; -1 lists all
func (o *Mechanism) Summary(maxReactions int) string {
	var b bytes.Buffer

	// reactions
	counts := make(map[string]int)
	for _, r := range o.Reactions {
		typ := r.Type
		if typ == "" {
			typ = TypeElementary
		}
		counts[typ]++
	}
	types := make([]string, 0, len(counts))
	for typ := range counts {
		types = append(types, typ)
	}
	sort.Strings(types)
	io.Ff(&b, "reactions: %d\n", len(o.Reactions))
	for _, typ := range types {
		io.Ff(&b, "  %-30s %d\n", typ, counts[typ])
	}
	for i, r := range o.Reactions {
		if maxReactions >= 0 && i >= maxReactions {
			io.Ff(&b, "  ... %d more\n", len(o.Reactions)-i)
			break
		}
		io.Ff(&b, "  %4d  %s\n", i+1, r.Equation)
		io.Ff(&b, "        A = %g  b = %g  Ea = %g\n", r.Rate.A, r.Rate.B, r.Rate.Ea)
		if r.Type == TypeFalloff || r.Type == TypeChemAct {
			io.Ff(&b, "        low: A = %g  b = %g  Ea = %g\n", r.Low.A, r.Low.B, r.Low.Ea)
		}
		for _, p := range r.Plog {
			io.Ff(&b, "        PLOG: P = %g atm  A = %g  b = %g  Ea = %g\n", p.P, p.A, p.B, p.Ea)
		}
		if r.Duplicate {
			io.Ff(&b, "        duplicate\n")
		}
	}

	// thermo
	ncomplete := 0
	for _, th := range o.Thermo {
		if th.Complete() {
			ncomplete++
		}
	}
	io.Ff(&b, "species: %d (complete NASA7: %d)\n", len(o.Thermo), ncomplete)

	// transport
	io.Ff(&b, "transport: %d\n", len(o.Transport))
	for _, tr := range o.Transport {
		io.Ff(&b, "  %-12s %-10s σ = %g Å  ε/k = %g K\n", tr.Name, tr.Geometry, tr.Diameter, tr.WellDepth)
	}
	if len(o.Warnings) > 0 {
		io.Ff(&b, "warnings: %d\n", len(o.Warnings))
	}
	return b.String()
}
