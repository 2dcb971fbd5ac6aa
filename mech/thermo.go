// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"github.com/cpmech/gomech/doc"
	"github.com/cpmech/gosl/io"
)

// ExtractThermo extracts the thermodynamic data of all species under the "species" key of root.
//  Note: coefficient and breakpoint counts are checked but never cause rejection
func ExtractThermo(root *doc.Value) (species []*Thermo, warns Warnings) {
	items := list(root, "species", &warns)
	species = make([]*Thermo, 0, len(items))
	for i, item := range items {
		f, ok := newFields(item, io.Sf("species[%d]", i), &warns)
		if !ok {
			continue
		}
		species = append(species, readThermo(f))
	}
	return
}

// readThermo reads one species
func readThermo(f fields) (o *Thermo) {
	o = new(Thermo)
	f.setStr("name", &o.Name)
	if comp, ok := f.numMap("composition"); ok {
		o.Composition = comp
	}
	if f.isMap("thermo") {
		th, _ := f.sub("thermo")
		readNasa7(th, o)
	} else if f.has("thermo") {
		f.w.add(f.at("thermo"), "thermo data is not a map")
	}
	if f.isSeq("nasa9-coeffs") {
		o.Nasa9 = readNasa9(f)
	}
	return
}

// readNasa7 reads model, breakpoints and NASA7 coefficients
func readNasa7(f fields, o *Thermo) {
	f.setStr("model", &o.Model)
	nasa7 := o.Model == ModelNasa7

	if f.isSeq("temperature-ranges") {
		o.Tranges, _ = f.nums("temperature-ranges")
		if nasa7 && len(o.Tranges) != nasa7Nbreakpts {
			f.w.add(f.at("temperature-ranges"), "NASA7 requires %d breakpoints; got %d", nasa7Nbreakpts, len(o.Tranges))
		}
	} else if nasa7 {
		f.w.add(f.at("temperature-ranges"), "missing NASA7 temperature ranges")
	}

	// {low: [...], high: [...]} has priority over [[...], [...]]
	switch {
	case f.isMap("coefficients"):
		c, _ := f.sub("coefficients")
		if c.isSeq("low") {
			o.Low, _ = c.nums("low")
		}
		if c.isSeq("high") {
			o.High, _ = c.nums("high")
		}
	case f.isSeq("data"):
		data, _ := f.seq("data")
		if len(data) > 0 && data[0].IsSeq() {
			items, _ := data[0].Seq()
			o.Low = numbers(items, f.at("data[0]"), f.w)
		}
		if len(data) > 1 && data[1].IsSeq() {
			items, _ := data[1].Seq()
			o.High = numbers(items, f.at("data[1]"), f.w)
		}
	default:
		if nasa7 {
			f.w.add(f.path, "missing NASA7 coefficients")
		}
	}
	if nasa7 {
		if len(o.Low) != nasa7Ncoef {
			f.w.add(f.path, "NASA7 requires %d low-temperature coefficients; got %d", nasa7Ncoef, len(o.Low))
		}
		if len(o.High) != nasa7Ncoef {
			f.w.add(f.path, "NASA7 requires %d high-temperature coefficients; got %d", nasa7Ncoef, len(o.High))
		}
	}
}

// readNasa9 reads the species-level list of NASA9 ranges
func readNasa9(f fields) (ranges []Nasa9Range) {
	items, _ := f.seq("nasa9-coeffs")
	for j, item := range items {
		r, ok := newFields(item, io.Sf("%s[%d]", f.at("nasa9-coeffs"), j), f.w)
		if !ok {
			continue
		}
		var rng Nasa9Range
		if trange, ok := r.nums("T-range"); ok {
			if len(trange) >= 2 {
				rng.Tmin, rng.Tmax = trange[0], trange[1]
			} else {
				r.w.add(r.at("T-range"), "two temperatures required; got %d", len(trange))
			}
		}
		if coeffs, ok := r.nums("coeffs"); ok {
			rng.Coeffs = coeffs
			if len(coeffs) != nasa9Ncoef {
				r.w.add(r.at("coeffs"), "NASA9 requires %d coefficients; got %d", nasa9Ncoef, len(coeffs))
			}
		}
		ranges = append(ranges, rng)
	}
	return
}
