// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"github.com/cpmech/gomech/doc"
	"github.com/cpmech/gosl/io"
	"go.uber.org/zap"
)

// Warning records a field or record skipped during extraction
type Warning struct {
	Path string // e.g. "reactions[3].rate-constant.A"
	Msg  string // reason
}

func (o Warning) String() string { return io.Sf("%s: %s", o.Path, o.Msg) }

// Warnings holds all skipped fields and records
type Warnings []Warning

// add appends a warning
func (o *Warnings) add(path, format string, args ...interface{}) {
	*o = append(*o, Warning{Path: path, Msg: io.Sf(format, args...)})
}

// Log writes one entry per warning. A nil logger discards everything.
func (o Warnings) Log(l *zap.Logger) {
	if l == nil {
		return
	}
	for _, w := range o {
		l.Warn("skipped mechanism field", zap.String("path", w.Path), zap.String("reason", w.Msg))
	}
}

// fields reads typed fields of a mapping; variant mismatches become warnings
type fields struct {
	m    doc.Mapping
	path string
	w    *Warnings
}

// newFields returns a reader for v, or false if v is not a mapping
func newFields(v *doc.Value, path string, w *Warnings) (o fields, ok bool) {
	m, err := v.Map()
	if err != nil {
		w.add(path, "%v", err)
		return
	}
	return fields{m, path, w}, true
}

func (o fields) at(key string) string { return o.path + "." + key }

// has tells whether key is present, regardless of its value
func (o fields) has(key string) bool { return o.m.Has(key) }

// str reads a string field
func (o fields) str(key string) (s string, ok bool) {
	v, found := o.m.Get(key)
	if !found {
		return
	}
	s, err := v.Str()
	if err != nil {
		o.w.add(o.at(key), "%v", err)
		return "", false
	}
	return s, true
}

// num reads a number field
func (o fields) num(key string) (x float64, ok bool) {
	v, found := o.m.Get(key)
	if !found {
		return
	}
	x, err := v.Num()
	if err != nil {
		o.w.add(o.at(key), "%v", err)
		return 0, false
	}
	return x, true
}

// setNum sets dest if key holds a number; otherwise dest is untouched
func (o fields) setNum(key string, dest *float64) {
	if x, ok := o.num(key); ok {
		*dest = x
	}
}

// setStr sets dest if key holds a string; otherwise dest is untouched
func (o fields) setStr(key string, dest *string) {
	if s, ok := o.str(key); ok {
		*dest = s
	}
}

// sub returns a reader for a nested mapping
func (o fields) sub(key string) (f fields, ok bool) {
	v, found := o.m.Get(key)
	if !found {
		return
	}
	return newFields(v, o.at(key), o.w)
}

// isMap tells whether key holds a mapping
func (o fields) isMap(key string) bool {
	v, found := o.m.Get(key)
	return found && v.IsMap()
}

// isSeq tells whether key holds a sequence
func (o fields) isSeq(key string) bool {
	v, found := o.m.Get(key)
	return found && v.IsSeq()
}

// seq reads a sequence field
func (o fields) seq(key string) (items []*doc.Value, ok bool) {
	v, found := o.m.Get(key)
	if !found {
		return
	}
	items, err := v.Seq()
	if err != nil {
		o.w.add(o.at(key), "%v", err)
		return nil, false
	}
	return items, true
}

// nums reads a sequence of numbers; non-numeric items are skipped individually
func (o fields) nums(key string) (res []float64, ok bool) {
	items, ok := o.seq(key)
	if !ok {
		return
	}
	return numbers(items, o.at(key), o.w), true
}

// numMap reads a name => number mapping; non-numeric entries are skipped individually
func (o fields) numMap(key string) (res map[string]float64, ok bool) {
	f, ok := o.sub(key)
	if !ok {
		return
	}
	res = make(map[string]float64)
	for _, name := range f.m.Keys() {
		if x, good := f.num(name); good {
			res[name] = x
		}
	}
	return res, true
}

// numbers converts items into numbers skipping the non-numeric ones
func numbers(items []*doc.Value, path string, w *Warnings) (res []float64) {
	res = make([]float64, 0, len(items))
	for i, item := range items {
		x, err := item.Num()
		if err != nil {
			w.add(io.Sf("%s[%d]", path, i), "%v", err)
			continue
		}
		res = append(res, x)
	}
	return
}

// list returns the items under a top-level key of root.
//  Note: a non-mapping root or a missing key gives an empty list
func list(root *doc.Value, key string, w *Warnings) []*doc.Value {
	m, err := root.Map()
	if err != nil {
		w.add(key, "root is not a map: %v", err)
		return nil
	}
	v, ok := m.Get(key)
	if !ok {
		return nil
	}
	items, err := v.Seq()
	if err != nil {
		w.add(key, "%v", err)
		return nil
	}
	return items
}
