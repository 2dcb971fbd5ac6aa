// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"github.com/cpmech/gomech/doc"
	"github.com/cpmech/gosl/io"
)

// ExtractTransport extracts transport data of the species having a "transport" map.
//  Note: records without a valid name are named UnknownSpecies
func ExtractTransport(root *doc.Value) (species []*Transport, warns Warnings) {
	items := list(root, "species", &warns)
	for i, item := range items {
		f, ok := newFields(item, io.Sf("species[%d]", i), &warns)
		if !ok || !f.isMap("transport") {
			continue
		}
		tr, _ := f.sub("transport")
		o := new(Transport)
		o.Name = UnknownSpecies
		f.setStr("name", &o.Name)
		tr.setStr("model", &o.Model)
		tr.setStr("geometry", &o.Geometry)
		tr.setNum("diameter", &o.Diameter)
		tr.setNum("well-depth", &o.WellDepth)
		tr.setNum("dipole", &o.Dipole)
		tr.setNum("polarizability", &o.Polarizability)
		tr.setNum("rotational-relaxation", &o.RotRelax)
		tr.setStr("note", &o.Note)
		species = append(species, o)
	}
	return
}
