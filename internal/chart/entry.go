// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart holds the data model of a bar chart: entries, data sets, and
// the animation phase a frame is rendered at.
package chart

// An Entry is one bar of a data set.
//
// Values holds the vertical boundaries of the bar. For a plain entry it is the
// pair [bottom, top]. For a stacked entry it is a sequence of from/to pairs,
// one per segment. An entry with fewer than two values has no geometry.
//
// Entries must not be modified while a frame is being rendered.
type Entry struct {
	X, Y   float64
	Values []float64

	// Icon is an opaque handle drawn next to the value label, if any.
	Icon any
	// Data is an opaque payload. If it is a Description (or a
	// []Description indexed by stack segment), highlights carry it.
	Data any
}

// A Range is the vertical extent of one bar segment.
type Range struct {
	From, To float64
}

// A Description is the annotation shown for a highlighted bar.
type Description struct {
	First, Second, Third string
}

// NewEntry returns a plain entry for value y at x.
func NewEntry(x, y float64) Entry {
	if y >= 0 {
		return Entry{X: x, Y: y, Values: []float64{0, y}}
	}
	return Entry{X: x, Y: y, Values: []float64{y, 0}}
}

// NewStackedEntry returns a stacked entry at x with one segment per value in
// segments. Positive segments stack upward from 0 and negative segments stack
// downward from 0, in order. Y is the sum of all segments.
func NewStackedEntry(x float64, segments ...float64) Entry {
	e := Entry{X: x, Values: make([]float64, 0, 2*len(segments))}
	var pos, neg float64
	for _, v := range segments {
		e.Y += v
		if v >= 0 {
			e.Values = append(e.Values, pos, pos+v)
			pos += v
		} else {
			e.Values = append(e.Values, neg+v, neg)
			neg += v
		}
	}
	return e
}

// RangeCount returns the number of segments e has.
func (e *Entry) RangeCount() int {
	return len(e.Values) / 2
}

// RangeAt returns the extent of segment i.
func (e *Entry) RangeAt(i int) Range {
	return Range{From: e.Values[2*i], To: e.Values[2*i+1]}
}

// PositiveSum returns the total height of e's segments above zero.
func (e *Entry) PositiveSum() float64 {
	var sum float64
	for i := range e.RangeCount() {
		r := e.RangeAt(i)
		if r.To > 0 {
			sum += r.To - max(r.From, 0)
		}
	}
	return sum
}

// NegativeSum returns the magnitude of the total height of e's segments below
// zero.
func (e *Entry) NegativeSum() float64 {
	var sum float64
	for i := range e.RangeCount() {
		r := e.RangeAt(i)
		if r.From < 0 {
			sum += min(r.To, 0) - r.From
		}
	}
	return sum
}

// DescriptionAt returns the description attached to segment i of e, if any.
func (e *Entry) DescriptionAt(i int) (Description, bool) {
	switch d := e.Data.(type) {
	case Description:
		return d, true
	case *Description:
		if d != nil {
			return *d, true
		}
	case []Description:
		if i >= 0 && i < len(d) {
			return d[i], true
		}
	}
	return Description{}, false
}
