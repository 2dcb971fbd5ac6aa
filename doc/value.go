// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package doc implements a generic document tree for mechanism files
package doc

import (
	"bytes"
	"strconv"

	"github.com/cpmech/gosl/io"
)

// Kind defines the variant held by a Value
type Kind int

// kinds of values
const (
	Null Kind = iota
	String
	Number
	Bool
	Map
	Seq
)

// String returns the name of a kind
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "boolean"
	case Map:
		return "map"
	case Seq:
		return "sequence"
	}
	return io.Sf("kind(%d)", int(k))
}

// Mapping holds key-value pairs in insertion order
type Mapping struct {
	keys  []string
	items map[string]*Value
}

// Len returns the number of keys
func (o Mapping) Len() int { return len(o.keys) }

// Keys returns the keys in insertion order
func (o Mapping) Keys() []string { return o.keys }

// Has tells whether key exists
func (o Mapping) Has(key string) bool {
	_, ok := o.items[key]
	return ok
}

// Get returns the value at key
func (o Mapping) Get(key string) (v *Value, ok bool) {
	v, ok = o.items[key]
	return
}

// Value is a node of the document tree. A nil *Value behaves as null.
type Value struct {
	kind Kind
	str  string
	num  float64
	flag bool
	mp   Mapping
	seq  []*Value
}

// NewNull returns a null value
func NewNull() *Value { return &Value{kind: Null} }

// NewString returns a string value
func NewString(s string) *Value { return &Value{kind: String, str: s} }

// NewNumber returns a number value
func NewNumber(x float64) *Value { return &Value{kind: Number, num: x} }

// NewBool returns a boolean value
func NewBool(b bool) *Value { return &Value{kind: Bool, flag: b} }

// NewSeq returns a sequence holding items
func NewSeq(items ...*Value) *Value { return &Value{kind: Seq, seq: items} }

// NewMap returns an empty mapping; use Set to fill it
func NewMap() *Value {
	return &Value{kind: Map, mp: Mapping{items: make(map[string]*Value)}}
}

// Set sets key in a mapping. A repeated key keeps its first position.
//  Note: panics if o is not a mapping
func (o *Value) Set(key string, v *Value) *Value {
	if o.Kind() != Map {
		panic(io.Sf("cannot set key %q on a %v value", key, o.Kind()))
	}
	if v == nil {
		v = NewNull()
	}
	if _, ok := o.mp.items[key]; !ok {
		o.mp.keys = append(o.mp.keys, key)
	}
	o.mp.items[key] = v
	return o
}

// Kind returns the variant of this value
func (o *Value) Kind() Kind {
	if o == nil {
		return Null
	}
	return o.kind
}

// IsNull tells whether this value is null
func (o *Value) IsNull() bool { return o.Kind() == Null }

// IsString tells whether this value is a string
func (o *Value) IsString() bool { return o.Kind() == String }

// IsNumber tells whether this value is a number
func (o *Value) IsNumber() bool { return o.Kind() == Number }

// IsBool tells whether this value is a boolean
func (o *Value) IsBool() bool { return o.Kind() == Bool }

// IsMap tells whether this value is a mapping
func (o *Value) IsMap() bool { return o.Kind() == Map }

// IsSeq tells whether this value is a sequence
func (o *Value) IsSeq() bool { return o.Kind() == Seq }

// Str returns the string held by this value
func (o *Value) Str() (string, error) {
	if o.Kind() != String {
		return "", &TypeError{Want: String, Got: o.Kind()}
	}
	return o.str, nil
}

// Num returns the number held by this value
func (o *Value) Num() (float64, error) {
	if o.Kind() != Number {
		return 0, &TypeError{Want: Number, Got: o.Kind()}
	}
	return o.num, nil
}

// Bool returns the boolean held by this value
func (o *Value) Bool() (bool, error) {
	if o.Kind() != Bool {
		return false, &TypeError{Want: Bool, Got: o.Kind()}
	}
	return o.flag, nil
}

// Map returns the mapping held by this value
func (o *Value) Map() (Mapping, error) {
	if o.Kind() != Map {
		return Mapping{}, &TypeError{Want: Map, Got: o.Kind()}
	}
	return o.mp, nil
}

// Seq returns the items held by this value
func (o *Value) Seq() ([]*Value, error) {
	if o.Kind() != Seq {
		return nil, &TypeError{Want: Seq, Got: o.Kind()}
	}
	return o.seq, nil
}

// String returns an indented dump of the tree
func (o *Value) String() string {
	var b bytes.Buffer
	o.dump(&b, 0)
	return b.String()
}

func (o *Value) dump(b *bytes.Buffer, indent int) {
	pad := string(bytes.Repeat([]byte{' '}, indent))
	switch o.Kind() {
	case Null:
		io.Ff(b, "%snull\n", pad)
	case String:
		io.Ff(b, "%s%q\n", pad, o.str)
	case Number:
		io.Ff(b, "%s%s\n", pad, strconv.FormatFloat(o.num, 'g', -1, 64))
	case Bool:
		io.Ff(b, "%s%v\n", pad, o.flag)
	case Map:
		io.Ff(b, "%s{\n", pad)
		for _, key := range o.mp.keys {
			io.Ff(b, "%s  %s:\n", pad, key)
			o.mp.items[key].dump(b, indent+4)
		}
		io.Ff(b, "%s}\n", pad)
	case Seq:
		io.Ff(b, "%s[\n", pad)
		for _, item := range o.seq {
			item.dump(b, indent+4)
		}
		io.Ff(b, "%s]\n", pad)
	}
}
