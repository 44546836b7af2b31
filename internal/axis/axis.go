// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis computes the ticks, labels, grid lines and limit lines of a
// chart axis.
package axis

import (
	"math"

	"github.com/aclements/benchbar/internal/transform"
	"github.com/aclements/benchbar/internal/viewport"
	"golang.org/x/perf/benchunit"
)

// Direction is the pixel direction an axis runs in.
type Direction int

const (
	// Horizontal is an X axis. Its values map to pixel x coordinates.
	Horizontal Direction = iota
	// Vertical is a Y axis. Its values map to pixel y coordinates.
	Vertical
)

// DefaultLabelCount is the label count of an Axis with LabelCount 0.
const DefaultLabelCount = 6

// An Axis holds the configuration of one chart axis and the tick values last
// computed for it.
type Axis struct {
	Direction Direction

	// LabelCount is the maximum number of ticks. With ForceLabelCount it is
	// the exact number of ticks, evenly spaced over the range.
	LabelCount      int
	ForceLabelCount bool

	// Granularity is the smallest interval between ticks. 0 means no limit.
	Granularity float64

	// CenterLabels places labels halfway between ticks.
	CenterLabels bool

	// OneGridLinePerUnit draws a grid line between every two integer
	// values instead of one at every tick.
	OneGridLinePerUnit bool

	// Format formats tick labels. If nil, labels are scaled to a common
	// SI prefix of Class.
	Format func(v float64) string
	Class  benchunit.Class

	LimitLines []LimitLine

	// Min and Max are the range the ticks were last computed for.
	Min, Max float64
	// Entries are the tick values, in ascending order.
	Entries []float64
	// Centered are the label values when CenterLabels is set.
	Centered []float64
	// Interval is the distance between consecutive entries.
	Interval float64

	vp *viewport.Viewport
	tr *transform.Transformer
}

// New returns an axis running in direction dir whose values are mapped to
// pixels by tr.
func New(dir Direction, vp *viewport.Viewport, tr *transform.Transformer) *Axis {
	return &Axis{Direction: dir, vp: vp, tr: tr}
}

// Compute computes the ticks of a for the value range [min, max].
//
// If the chart is zoomed in along a, the range actually on screen is used
// instead. inverted reports whether a runs against pixel order, in which
// case the values at the content edges are swapped.
func (a *Axis) Compute(min, max float64, inverted bool) {
	vp := a.vp
	switch a.Direction {
	case Horizontal:
		if vp.ContentWidth() > 10 && !vp.IsFullyZoomedOutX() {
			p1 := a.tr.ValuesByTouchPoint(vp.ContentLeft(), vp.ContentTop())
			p2 := a.tr.ValuesByTouchPoint(vp.ContentRight(), vp.ContentTop())
			if inverted {
				min, max = p2.X, p1.X
			} else {
				min, max = p1.X, p2.X
			}
		}
	case Vertical:
		if vp.ContentHeight() > 10 && !vp.IsFullyZoomedOutY() {
			p1 := a.tr.ValuesByTouchPoint(vp.ContentLeft(), vp.ContentTop())
			p2 := a.tr.ValuesByTouchPoint(vp.ContentLeft(), vp.ContentBottom())
			if inverted {
				min, max = p1.Y, p2.Y
			} else {
				min, max = p2.Y, p1.Y
			}
		}
	}
	a.computeValues(min, max)
}

func (a *Axis) labelCount() int {
	if a.LabelCount == 0 {
		return DefaultLabelCount
	}
	return a.LabelCount
}

func (a *Axis) computeValues(lo, hi float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	a.Min, a.Max = lo, hi
	a.Entries, a.Centered, a.Interval = a.Entries[:0], a.Centered[:0], 0

	count := a.labelCount()
	span := hi - lo
	if count <= 0 || !(span > 0) || math.IsInf(span, 0) {
		return
	}

	if a.ForceLabelCount {
		if count == 1 {
			a.Entries = append(a.Entries, lo)
			a.Interval = span
		} else {
			a.Interval = span / float64(count-1)
			for i := range count {
				a.Entries = append(a.Entries, lo+float64(i)*a.Interval)
			}
		}
	} else {
		ticks, interval := niceTicks(lo, hi, count, a.Granularity)
		if len(ticks) > 0 && a.CenterLabels {
			a.Entries = append(a.Entries, ticks[0]-interval)
		}
		a.Entries = append(a.Entries, ticks...)
		a.Interval = interval
	}

	if a.CenterLabels {
		for _, v := range a.Entries {
			a.Centered = append(a.Centered, v+a.Interval/2)
		}
	}
}

// formatter returns the label formatter of a.
func (a *Axis) formatter() func(float64) string {
	if a.Format != nil {
		return a.Format
	}
	scaler := benchunit.CommonScale(a.Entries, a.Class)
	return scaler.Format
}
