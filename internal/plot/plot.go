// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot turns benchmark results into bar chart data by mapping
// projections of each result onto the aesthetics of a bar.
package plot

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/perf/benchfmt"
	"golang.org/x/perf/benchmath"
	"golang.org/x/perf/benchproc"
)

// Plot accumulates benchmark results as points.
type Plot struct {
	aes aesMap[projection]

	// unitAes and unitField locate the .unit field, if any.
	unitAes   Aes
	unitField *benchproc.Field
	// dvAes shows .value, if any.
	dvAes Aes

	confidence float64

	points []point
}

// A projection maps a [benchfmt.Result] to values of one aesthetic. The zero
// projection maps every result to the same value.
type projection struct {
	iv        *benchproc.Projection
	ivField   *benchproc.Field // iv's only field, if it has one
	unitField *benchproc.Field // iv's .unit field, if any

	dv bool
}

type value struct {
	kinds valueKinds
	key   benchproc.Key // kindDiscrete
	val   float64       // kindContinuous

	summary *benchmath.Summary // kindSummary
	denom   benchproc.Key      // kindRatio with kindDiscrete
}

type valueKinds uint8

const (
	kindDiscrete valueKinds = 1 << iota
	kindContinuous
	kindSummary // implies kindContinuous
	kindRatio   // implies kindContinuous or kindDiscrete

	kindMax

	kindAll = kindMax - 1
)

type point struct {
	aesMap[value]
}

// NewPlot returns an empty plot for the aesthetic bindings in c. Exactly one
// aesthetic may show .unit, and it must be paired with one showing .value.
func NewPlot(c *Config) (*Plot, error) {
	unitAes, dvAes := aesNone, aesNone
	var unitField *benchproc.Field
	for a := range aesMax {
		proj := c.aes.Get(a)
		if proj.unitField != nil {
			if unitAes != aesNone {
				return nil, fmt.Errorf("at most one dimension may show .unit")
			}
			unitAes, unitField = a, proj.unitField
		}
		if proj.dv {
			if dvAes != aesNone {
				return nil, fmt.Errorf("at most one dimension may show .value")
			}
			dvAes = a
		}
	}
	switch {
	case unitAes != aesNone && dvAes == aesNone:
		return nil, fmt.Errorf(".unit is mapped to the %s dimension, but no dimension shows .value", unitAes.Name())
	case unitAes == aesNone && dvAes != aesNone:
		return nil, fmt.Errorf(".value is mapped to the %s dimension, but no dimension shows .unit", dvAes.Name())
	case dvAes != AesY && dvAes != aesNone:
		return nil, fmt.Errorf(".value must be mapped to y, not %s", dvAes.Name())
	}

	return &Plot{
		aes:        c.aes,
		unitAes:    unitAes,
		unitField:  unitField,
		dvAes:      dvAes,
		confidence: c.confidence,
	}, nil
}

func (p projection) project(r *benchfmt.Result) []value {
	if p.dv {
		panic("cannot project DV")
	}
	if p.iv == nil {
		return []value{{kinds: kindDiscrete}}
	}

	var vals []value
	if p.unitField != nil {
		for _, key := range p.iv.ProjectValues(r) {
			vals = append(vals, value{kinds: kindDiscrete, key: key})
		}
	} else {
		vals = append(vals, value{kinds: kindDiscrete, key: p.iv.Project(r)})
	}

	// Single-field values that parse as numbers also order numerically.
	if p.ivField != nil {
		for i := range vals {
			f, err := strconv.ParseFloat(vals[i].key.Get(p.ivField), 64)
			if err == nil {
				vals[i].kinds |= kindContinuous
				vals[i].val = f
			}
		}
	}
	return vals
}

func (p projection) String() string {
	switch {
	case p.dv:
		return ".value"
	case p.iv == nil:
		return "<nil>"
	}
	var names []string
	for _, f := range p.iv.FlattenedFields() {
		names = append(names, f.String())
	}
	return strings.Join(names, ",")
}

func (v value) String() string {
	if v.kinds&kindDiscrete == 0 {
		return fmt.Sprint(v.val)
	}
	if v.key == (benchproc.Key{}) {
		return ""
	}
	if v.kinds&kindRatio != 0 {
		return v.key.String() + " vs " + v.denom.String()
	}
	return v.key.String()
}

// StringValues is like String, but omits field names.
func (v value) StringValues() string {
	if v.kinds&kindDiscrete == 0 {
		return fmt.Sprint(v.val)
	}
	if v.key == (benchproc.Key{}) {
		return ""
	}
	if v.kinds&kindRatio != 0 {
		return v.key.StringValues() + " vs " + v.denom.StringValues()
	}
	return v.key.StringValues()
}

func (v value) compare(w value) int {
	both := v.kinds & w.kinds
	if both&kindContinuous != 0 && both&kindRatio == 0 {
		// Numbers sort numerically even if they also have keys.
		if c := cmp.Compare(v.val, w.val); c != 0 {
			return c
		}
	}
	if both&kindDiscrete != 0 {
		if c := compareKeys(v.key, w.key); c != 0 {
			return c
		}
		if v.kinds&kindRatio != 0 {
			return compareKeys(v.denom, w.denom)
		}
		return 0
	}
	if both&kindContinuous != 0 {
		return cmp.Compare(v.val, w.val)
	}
	for k := valueKinds(1); k < kindMax; k <<= 1 {
		switch {
		case v.kinds&k != 0 && w.kinds&k == 0:
			return -1
		case v.kinds&k == 0 && w.kinds&k != 0:
			return 1
		}
	}
	panic(fmt.Errorf("incomparable kinds %#x, %#x", v.kinds, w.kinds))
}

// Points returns the number of points added so far.
func (p *Plot) Points() int {
	return len(p.points)
}

// Add adds the points projected from r. A result that lacks the unit an
// aesthetic asks for contributes no point for that unit.
func (p *Plot) Add(r *benchfmt.Result) {
	var pt point
	var fill func(a Aes)
	fill = func(a Aes) {
		if a == aesMax {
			p.points = append(p.points, pt)
			return
		}
		proj := p.aes.Get(a)
		if proj.dv {
			// Filled in with the unit.
			fill(a + 1)
			return
		}
		for _, v := range proj.project(r) {
			if proj.unitField != nil {
				y, ok := r.Value(v.key.Get(proj.unitField))
				if !ok {
					continue
				}
				pt.Set(p.dvAes, value{kinds: kindContinuous, val: y})
			}
			pt.Set(a, v)
			fill(a + 1)
		}
	}
	fill(0)
}

func compareKeys(a, b benchproc.Key) int {
	switch {
	case a == b:
		return 0
	case a.Less(b):
		return -1
	}
	return 1
}

// groupBy groups the elements of s by the value of key, keeping their order.
// It returns the groups and their keys in order of first appearance.
func groupBy[T any, K comparable](s []T, key func(T) K) (map[K][]T, []K) {
	out := make(map[K][]T)
	var keys []K
	for _, x := range s {
		k := key(x)
		if _, ok := out[k]; !ok {
			keys = append(keys, k)
		}
		out[k] = append(out[k], x)
	}
	return out, keys
}
