// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Section holds geometric dimensions keyed by name; immutable once attached
// to an element
type Section struct {
	Name string
	dims map[string]float64
}

// NewSection returns a new named section
func NewSection(name string) *Section {
	return &Section{name, make(map[string]float64)}
}

// SetDimension assigns a named dimension; e.g. "thick"
func (o *Section) SetDimension(key string, value float64) *Section {
	o.dims[key] = value
	return o
}

// Dimension returns a named dimension
func (o *Section) Dimension(key string) (value float64, err error) {
	value, ok := o.dims[key]
	if !ok {
		err = chk.Err("section %q has no dimension named %q", o.Name, key)
	}
	return
}

// ElemTemp is one temperature-load contribution to an element's effective
// temperature rise; contributions are summed at the snapshot time
type ElemTemp struct {
	Fcn dbf.T // temperature value function of time
}

// Value returns the contribution at time t
func (o *ElemTemp) Value(t float64) float64 {
	if o.Fcn == nil {
		return 0
	}
	return o.Fcn.F(t, nil)
}
