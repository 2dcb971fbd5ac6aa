// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import "math"

// Kind defines the dimensionless property computed by a polynomial
type Kind int

// dimensionless properties
const (
	HRT Kind = iota // H/(R・T)
	SR              // S/R
	CpR             // Cp/R
)

// Nasa7 evaluates a 7-coefficient NASA polynomial
//   Cp/R = a0 + a1 T + a2 T² + a3 T³ + a4 T⁴
//   H/RT = a0 + a1 T/2 + a2 T²/3 + a3 T³/4 + a4 T⁴/5 + a5/T
//   S/R  = a0 ln T + a1 T + a2 T²/2 + a3 T³/3 + a4 T⁴/4 + a6
//  Note: returns 0 if there are fewer than 7 coefficients
func Nasa7(a []float64, T float64, kind Kind) float64 {
	if len(a) < 7 {
		return 0
	}
	T2 := T * T
	T3 := T2 * T
	T4 := T3 * T
	switch kind {
	case HRT:
		return a[0] + a[1]*T/2.0 + a[2]*T2/3.0 + a[3]*T3/4.0 + a[4]*T4/5.0 + a[5]/T
	case SR:
		return a[0]*math.Log(T) + a[1]*T + a[2]*T2/2.0 + a[3]*T3/3.0 + a[4]*T4/4.0 + a[6]
	case CpR:
		return a[0] + a[1]*T + a[2]*T2 + a[3]*T3 + a[4]*T4
	}
	return 0
}

// Nasa9 evaluates a 9-coefficient NASA polynomial
//   Cp/R = a0 T⁻² + a1 T⁻¹ + a2 + a3 T + a4 T² + a5 T³ + a6 T⁴
//   H/RT = -a0 T⁻² + a1 ln(T)/T + a2 + a3 T/2 + a4 T²/3 + a5 T³/4 + a6 T⁴/5 + a7/T
//   S/R  = -a0 T⁻²/2 - a1 T⁻¹ + a2 ln T + a3 T + a4 T²/2 + a5 T³/3 + a6 T⁴/4 + a8
//  Note: returns 0 if there are fewer than 9 coefficients
func Nasa9(a []float64, T float64, kind Kind) float64 {
	if len(a) < 9 {
		return 0
	}
	T2 := T * T
	T3 := T2 * T
	T4 := T3 * T
	lnT := math.Log(T)
	switch kind {
	case HRT:
		return -a[0]/T2 + a[1]*lnT/T + a[2] + a[3]*T/2.0 + a[4]*T2/3.0 + a[5]*T3/4.0 + a[6]*T4/5.0 + a[7]/T
	case SR:
		return -a[0]/(2.0*T2) - a[1]/T + a[2]*lnT + a[3]*T + a[4]*T2/2.0 + a[5]*T3/3.0 + a[6]*T4/4.0 + a[8]
	case CpR:
		return a[0]/T2 + a[1]/T + a[2] + a[3]*T + a[4]*T2 + a[5]*T3 + a[6]*T4
	}
	return 0
}
