// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package doc

import "github.com/cpmech/gosl/io"

// ParseError is returned when the input text is not a valid document
type ParseError struct {
	Src string // file name or "<text>"
	Err error  // error from the underlying parser
}

func (o *ParseError) Error() string {
	return io.Sf("cannot parse document %s:\n%v", o.Src, o.Err)
}

// Unwrap returns the underlying parser error
func (o *ParseError) Unwrap() error { return o.Err }

// TypeError is returned by accessors called on the wrong variant
type TypeError struct {
	Want Kind
	Got  Kind
}

func (o *TypeError) Error() string {
	return io.Sf("value is %v; %v expected", o.Got, o.Want)
}
