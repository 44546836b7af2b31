// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"github.com/gogpu/gg"
)

// AxisDependency names the Y axis a data set is plotted against.
type AxisDependency int

const (
	AxisLeft AxisDependency = iota
	AxisRight
)

func (a AxisDependency) String() string {
	switch a {
	case AxisLeft:
		return "left"
	case AxisRight:
		return "right"
	}
	return fmt.Sprintf("AxisDependency(%d)", int(a))
}

// A DataSet is an ordered sequence of entries that share style and
// visibility. Entries are in non-decreasing X order.
type DataSet interface {
	EntryCount() int
	// EntryAt returns the i'th entry, or nil if there is none.
	EntryAt(i int) *Entry

	IsStacked() bool
	// StackSize is the maximum number of segments of any entry.
	StackSize() int

	Colors() []gg.RGBA
	AxisDependency() AxisDependency
	IsVisible() bool
	IsHighlightEnabled() bool
	Label() string
}

// BarDataSet is a DataSet backed by a slice of entries.
type BarDataSet struct {
	entries []Entry
	label   string

	colors    []gg.RGBA
	axis      AxisDependency
	stackSize int
	hidden    bool
	noHigh    bool
}

var defaultColor = gg.Hex("#8cc8ff")

// NewBarDataSet returns a visible data set of entries plotted against the left
// axis. Its stack size is the largest segment count of any entry.
func NewBarDataSet(label string, entries []Entry) *BarDataSet {
	d := &BarDataSet{
		entries: entries,
		label:   label,
		colors:  []gg.RGBA{defaultColor},
	}
	d.stackSize = 1
	for i := range entries {
		d.stackSize = max(d.stackSize, entries[i].RangeCount())
	}
	return d
}

func (d *BarDataSet) EntryCount() int { return len(d.entries) }

func (d *BarDataSet) EntryAt(i int) *Entry {
	if i < 0 || i >= len(d.entries) {
		return nil
	}
	return &d.entries[i]
}

func (d *BarDataSet) IsStacked() bool                { return d.stackSize > 1 }
func (d *BarDataSet) StackSize() int                 { return d.stackSize }
func (d *BarDataSet) Colors() []gg.RGBA              { return d.colors }
func (d *BarDataSet) AxisDependency() AxisDependency { return d.axis }
func (d *BarDataSet) IsVisible() bool                { return !d.hidden }
func (d *BarDataSet) IsHighlightEnabled() bool       { return !d.noHigh }
func (d *BarDataSet) Label() string                  { return d.label }

// SetColors sets the palette used for d's bars. Bars beyond the end of the
// palette wrap around to its start.
func (d *BarDataSet) SetColors(colors ...gg.RGBA) {
	if len(colors) == 0 {
		colors = []gg.RGBA{defaultColor}
	}
	d.colors = colors
}

// SetStackSize overrides the declared stack size.
func (d *BarDataSet) SetStackSize(n int) { d.stackSize = n }

func (d *BarDataSet) SetAxisDependency(a AxisDependency) { d.axis = a }
func (d *BarDataSet) SetVisible(v bool)                  { d.hidden = !v }
func (d *BarDataSet) SetHighlightEnabled(v bool)         { d.noHigh = !v }

// Window is a read-only view of entries [From, To) of another data set.
type Window struct {
	DataSet
	From, To int
}

func (w Window) EntryCount() int {
	n := min(w.To, w.DataSet.EntryCount()) - w.From
	return max(n, 0)
}

func (w Window) EntryAt(i int) *Entry {
	if i < 0 || i >= w.EntryCount() {
		return nil
	}
	return w.DataSet.EntryAt(w.From + i)
}
