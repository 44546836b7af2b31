// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/perf/benchunit"
)

func pointsKinds(pts []point, a Aes) valueKinds {
	kinds := kindAll
	for _, pt := range pts {
		kinds &= pt.Get(a).kinds
	}
	return kinds
}

// ordScale maps the distinct values of aesthetic a to [0, len(levels)) in
// sorted order. levels holds the distinct values.
func ordScale(pts []point, a Aes) (scale func(point) int, levels []value) {
	if len(pts) > 0 && pointsKinds(pts, a)&(kindDiscrete|kindContinuous) == 0 {
		panic(a.Name() + " is neither discrete nor continuous")
	}
	seen := make(map[value]bool)
	for _, pt := range pts {
		v := pt.Get(a)
		v.summary = nil
		if !seen[v] {
			seen[v] = true
			levels = append(levels, v)
		}
	}
	slices.SortFunc(levels, value.compare)
	ord := make(map[value]int, len(levels))
	for i, v := range levels {
		ord[v] = i
	}
	return func(pt point) int {
		v := pt.Get(a)
		v.summary = nil
		if i, ok := ord[v]; ok {
			return i
		}
		panic("value has unmapped key")
	}, levels
}

// yScale returns a function that rescales bar heights to a common SI prefix
// and the axis label naming the scaled unit.
//
// Summaries are scaled by their center, which the caller must also apply to
// the interval bounds.
func (p *Plot) yScale(pts []point) (scale func(float64) float64, label string, err error) {
	if pointsKinds(pts, AesY)&kindContinuous == 0 {
		return nil, "", fmt.Errorf("y data must be numeric")
	}
	proj := p.aes.Get(AesY)
	if !proj.dv || len(pts) == 0 {
		return func(v float64) float64 { return v }, proj.String(), nil
	}

	// Collect unit names in order. Several can show up if, say, -color is
	// .unit.
	var units []string
	for _, pt := range pts {
		n := pt.Get(p.unitAes).key.Get(p.unitField)
		if !slices.Contains(units, n) {
			units = append(units, n)
		}
	}

	ratio := pointsKinds(pts, AesY)&kindRatio != 0
	cls := benchunit.Decimal
	if len(units) == 1 && !ratio {
		cls = benchunit.ClassOf(units[0])
	}

	// Scale by the largest magnitude only. Scaling for the smallest
	// value would make the axis unreadable.
	var hi float64
	for _, pt := range pts {
		hi = max(hi, math.Abs(pt.Get(AesY).val))
	}
	scaler := benchunit.CommonScale([]float64{hi}, cls)
	scale = func(v float64) float64 { return v / scaler.Factor }

	if ratio {
		return scale, "ratio of " + strings.Join(units, ", "), nil
	}
	labels := make([]string, len(units))
	for i, u := range units {
		labels[i] = scaler.Prefix + u
	}
	return scale, strings.Join(labels, ", "), nil
}
