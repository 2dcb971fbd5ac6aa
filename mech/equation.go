// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"strconv"
	"strings"
)

// arrows in order of priority
var arrows = []string{"<=>", "=>", "="}

// ParseEquation splits a reaction equation into reactant and product stoichiometric coefficients.
//  Example: "2 O + M <=> O2 + M" gives {O:2, M:1} and {O2:1, M:1}
//  Note: without an arrow, both maps are empty
func ParseEquation(equation string) (reactants, products map[string]float64) {
	reactants = make(map[string]float64)
	products = make(map[string]float64)
	for _, arrow := range arrows {
		idx := strings.Index(equation, arrow)
		if idx < 0 {
			continue
		}
		parseSide(equation[:idx], reactants)
		parseSide(equation[idx+len(arrow):], products)
		return
	}
	return
}

// parseSide accumulates the coefficients of one side of an equation
func parseSide(side string, species map[string]float64) {
	coef := 1.0
	pending := false
	for _, token := range strings.Fields(side) {
		if token == "+" {
			coef, pending = 1.0, false
			continue
		}
		n := leadingNumber(token)
		if n > 0 {
			c, err := strconv.ParseFloat(token[:n], 64)
			if err == nil {
				if n == len(token) {
					coef, pending = c, true
					continue
				}
				species[token[n:]] += c
				coef, pending = 1.0, false
				continue
			}
		}
		if pending {
			species[token] += coef
			coef, pending = 1.0, false
			continue
		}
		species[token] += 1.0
	}
}

// leadingNumber returns the length of the leading run of digits and dots of token
func leadingNumber(token string) (n int) {
	if token == "" || token[0] < '0' || token[0] > '9' {
		return 0
	}
	for n < len(token) && (token[n] == '.' || (token[n] >= '0' && token[n] <= '9')) {
		n++
	}
	return
}
