// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package doc

import (
	"path/filepath"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Parse parses YAML text into a document tree
//  Note: empty text yields a null value
func Parse(text []byte) (*Value, error) {
	return parse("<text>", text)
}

// ReadFile reads and parses a YAML file
func ReadFile(dir, fn string) (*Value, error) {
	path := filepath.Join(dir, fn)
	b, err := readBytes(path)
	if err != nil {
		return nil, err
	}
	return parse(path, b)
}

// readBytes reads a file, returning the panic raised by io.ReadFile as an error
func readBytes(path string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("cannot read mechanism file %q:\n%v", path, r)
		}
	}()
	b = io.ReadFile(path)
	return
}

func parse(src string, text []byte) (*Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(text, &root); err != nil {
		return nil, &ParseError{Src: src, Err: err}
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return NewNull(), nil
	}
	return convert(root.Content[0]), nil
}

// convert converts a yaml node into a Value
func convert(n *yaml.Node) *Value {
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return NewNull()
		}
		return convert(n.Alias)
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return NewNull()
		}
		return convert(n.Content[0])
	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			m.Set(n.Content[i].Value, convert(n.Content[i+1]))
		}
		return m
	case yaml.SequenceNode:
		items := make([]*Value, len(n.Content))
		for i, c := range n.Content {
			items[i] = convert(c)
		}
		return NewSeq(items...)
	case yaml.ScalarNode:
		return scalar(n)
	}
	return NewNull()
}

// scalar resolves a scalar node into null, boolean, number or string.
// Only the literals true and false are booleans; quoted and plain scalars
// that read as numbers are numbers.
func scalar(n *yaml.Node) *Value {
	if n.ShortTag() == "!!null" {
		return NewNull()
	}
	switch n.Value {
	case "true":
		return NewBool(true)
	case "false":
		return NewBool(false)
	}
	if x, err := strconv.ParseFloat(n.Value, 64); err == nil {
		return NewNumber(x)
	}
	if n.ShortTag() == "!!int" || n.ShortTag() == "!!float" {
		var x float64
		if err := n.Decode(&x); err == nil {
			return NewNumber(x)
		}
	}
	return NewString(n.Value)
}
