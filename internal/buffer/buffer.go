// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buffer turns the entries of a bar data set into data-space quads.
package buffer

import (
	"fmt"
	"math"

	"github.com/aclements/benchbar/internal/chart"
)

// A Quad is an axis-aligned rectangle. Quads start out in data space and are
// mapped to pixel space in place.
type Quad struct {
	Left, Top, Right, Bottom float64
}

// CenterX returns the horizontal center of q.
func (q Quad) CenterX() float64 {
	return (q.Left + q.Right) / 2
}

// Quads is a flat sequence of quads, four values per quad in the order left,
// top, right, bottom. Read as pairs, it is also a sequence of (x, y) points,
// which is how it is mapped to pixel space.
type Quads []float64

// Len returns the number of quads in qs.
func (qs Quads) Len() int {
	return len(qs) / 4
}

// At returns the i'th quad.
func (qs Quads) At(i int) Quad {
	j := 4 * i
	return Quad{qs[j], qs[j+1], qs[j+2], qs[j+3]}
}

// Capacity returns the number of floats a BarBuffer needs to hold every quad
// of ds.
func Capacity(ds chart.DataSet) int {
	width := 1
	if ds.IsStacked() {
		width = ds.StackSize()
	}
	return ds.EntryCount() * 4 * width
}

// A BarBuffer converts the entries of one data set into quads. Its storage is
// reused across frames. A BarBuffer must not be fed concurrently, and the
// result of a Feed is only valid until the next Feed.
type BarBuffer struct {
	buf   []float64
	index int

	stacked  bool
	barWidth float64
}

// New returns a buffer that holds up to size floats.
func New(size int, stacked bool) *BarBuffer {
	return &BarBuffer{buf: make([]float64, max(size, 0)), stacked: stacked, barWidth: 1}
}

// Size returns the capacity of b in floats.
func (b *BarBuffer) Size() int {
	return len(b.buf)
}

// Configure validates ds against b and sets the bar width for subsequent
// feeds. It reports a *ConfigurationError if the bar width is negative or
// not finite, if a stacked data set declares a non-positive stack size, if an
// entry has more segments than the declared stack size, or if ds does not fit
// in b.
func (b *BarBuffer) Configure(ds chart.DataSet, barWidth float64) error {
	if barWidth < 0 || math.IsNaN(barWidth) || math.IsInf(barWidth, 0) {
		return &ConfigurationError{Reason: fmt.Sprintf("bar width %v is not a non-negative number", barWidth)}
	}
	stackSize := 1
	if ds.IsStacked() {
		stackSize = ds.StackSize()
		if stackSize <= 0 {
			return &ConfigurationError{Reason: fmt.Sprintf("stacked data set declares stack size %d", stackSize)}
		}
	}
	for i := range ds.EntryCount() {
		e := ds.EntryAt(i)
		if e == nil {
			continue
		}
		if n := e.RangeCount(); n > stackSize && ds.IsStacked() {
			return &ConfigurationError{Reason: fmt.Sprintf("entry %d has %d segments, more than stack size %d", i, n, stackSize)}
		}
	}
	if need := Capacity(ds); need > len(b.buf) {
		return &ConfigurationError{Reason: fmt.Sprintf("data set needs %d floats, buffer holds %d", need, len(b.buf))}
	}
	b.stacked = ds.IsStacked()
	b.barWidth = barWidth
	return nil
}

func (b *BarBuffer) addBar(left, top, right, bottom float64) {
	b.buf[b.index] = left
	b.buf[b.index+1] = top
	b.buf[b.index+2] = right
	b.buf[b.index+3] = bottom
	b.index += 4
}

// Feed converts the entries of ds revealed at phase into quads and returns
// them in entry order. ds must have been accepted by Configure.
//
// A plain entry's [bottom, top] pair is scaled on its growing side only: top
// if it is positive, otherwise bottom. A stacked entry's segments have both
// boundaries scaled by phase.Y.
func (b *BarBuffer) Feed(ds chart.DataSet, phase chart.Phase) Quads {
	count := phase.Revealed(ds.EntryCount())
	half := b.barWidth / 2

	for i := range count {
		e := ds.EntryAt(i)
		if e == nil {
			continue
		}
		vals := e.Values
		left, right := e.X-half, e.X+half

		if !b.stacked {
			if len(vals) < 2 {
				continue
			}
			bottom, top := vals[0], vals[1]
			if top > 0 {
				top *= phase.Y
			} else {
				bottom *= phase.Y
			}
			b.addBar(left, top, right, bottom)
			continue
		}

		for k := 0; k+1 < len(vals); k += 2 {
			bottom, top := vals[k]*phase.Y, vals[k+1]*phase.Y
			b.addBar(left, top, right, bottom)
		}
	}

	out := Quads(b.buf[:b.index])
	b.index = 0
	return out
}
