// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"strconv"
	"strings"

	"github.com/cpmech/gomech/doc"
	"github.com/cpmech/gosl/io"
)

// plogTag marks PLOG lines inside a reaction note
const plogTag = "PLOG/"

// ExtractKinetics extracts all reactions under the "reactions" key of root.
//  Note: malformed fields are left at their defaults and reported in warns;
//        non-mapping items of the list are skipped
func ExtractKinetics(root *doc.Value) (reactions []*Reaction, warns Warnings) {
	items := list(root, "reactions", &warns)
	reactions = make([]*Reaction, 0, len(items))
	for i, item := range items {
		f, ok := newFields(item, io.Sf("reactions[%d]", i), &warns)
		if !ok {
			continue
		}
		reactions = append(reactions, readReaction(f))
	}
	return
}

// readReaction reads one reaction
func readReaction(f fields) (o *Reaction) {
	o = new(Reaction)
	f.setStr("equation", &o.Equation)
	f.setStr("type", &o.Type)

	// high-pressure limit or standalone rate
	switch {
	case f.isMap("high-P-rate-constant"):
		rate, _ := f.sub("high-P-rate-constant")
		o.Rate = readArrhenius(rate)
	case f.isMap("rate-constant"):
		rate, _ := f.sub("rate-constant")
		o.Rate = readArrhenius(rate)
	default:
		if f.has("rate-constant") || f.has("high-P-rate-constant") {
			f.w.add(f.path, "rate constant is not a map")
		}
	}

	// low-pressure limit
	if low, ok := f.sub("low-P-rate-constant"); ok {
		o.Low = readArrhenius(low)
	}

	// Troe: canonical names first, then starred names; the last one read wins
	if troe, ok := f.sub("Troe"); ok {
		troe.setNum("A", &o.Troe.A)
		troe.setNum("T3", &o.Troe.Tstar)
		troe.setNum("T1", &o.Troe.T2star)
		troe.setNum("T2", &o.Troe.T3star)
		troe.setNum("T***", &o.Troe.T3star)
		troe.setNum("T*", &o.Troe.Tstar)
		troe.setNum("T**", &o.Troe.T2star)
		troe.setNum("a", &o.Troe.A)
	}

	// third-bodies and orders
	if eff, ok := f.numMap("efficiencies"); ok {
		o.Efficiencies = eff
	}
	if ord, ok := f.numMap("orders"); ok {
		o.Orders = ord
	}

	// presence is enough
	o.Duplicate = f.has("duplicate")

	// legacy PLOG data in note
	if note, ok := f.str("note"); ok {
		o.Plog = ParsePlogNote(note)
		if len(o.Plog) > 0 {
			o.Type = TypePlog
			o.PressureDependent = true
		}
	}
	return
}

// readArrhenius reads A, b, Ea and their units
func readArrhenius(f fields) (o Arrhenius) {
	f.setNum("A", &o.A)
	f.setStr("A-units", &o.Aunits)
	f.setNum("b", &o.B)
	f.setNum("Ea", &o.Ea)
	f.setStr("Ea-units", &o.EaUnits)
	return
}

// ParsePlogNote parses lines such as "PLOG/ 0.01 1.2e13 0.0 12000.0 /" found in a note.
// Lines without the tag or without four numbers after it are ignored.
func ParsePlogNote(note string) (points []PlogPoint) {
	if !strings.Contains(note, plogTag) {
		return
	}
	for _, line := range strings.Split(note, "\n") {
		idx := strings.Index(line, plogTag)
		if idx < 0 {
			continue
		}
		vals := strings.Fields(line[idx+len(plogTag):])
		if len(vals) < 4 {
			continue
		}
		var x [4]float64
		good := true
		for k := 0; k < 4; k++ {
			v, err := strconv.ParseFloat(strings.TrimSuffix(vals[k], "/"), 64)
			if err != nil {
				good = false
				break
			}
			x[k] = v
		}
		if good {
			points = append(points, PlogPoint{P: x[0], A: x[1], B: x[2], Ea: x[3]})
		}
	}
	return
}
