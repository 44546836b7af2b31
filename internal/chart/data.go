// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"
)

// BarData is the collection of data sets drawn in one chart.
type BarData struct {
	Sets []DataSet

	// BarWidth is the width of every bar, in X axis units.
	BarWidth float64
}

// NewBarData returns chart data with the default bar width of 0.85.
func NewBarData(sets ...DataSet) *BarData {
	return &BarData{Sets: sets, BarWidth: 0.85}
}

// DataSet returns the i'th data set, or nil.
func (d *BarData) DataSet(i int) DataSet {
	if i < 0 || i >= len(d.Sets) {
		return nil
	}
	return d.Sets[i]
}

// maxEntryCount returns the entry count of the largest data set.
func (d *BarData) maxEntryCount() int {
	n := 0
	for _, s := range d.Sets {
		n = max(n, s.EntryCount())
	}
	return n
}

// GroupWidth returns the X axis width of one group of bars.
func (d *BarData) GroupWidth(groupSpace, barSpace float64) float64 {
	return float64(len(d.Sets))*(d.BarWidth+barSpace) + groupSpace
}

// GroupBars lays the data sets out side by side. The i'th entries of all sets
// form group i, which starts at fromX + i*GroupWidth. The X values of the
// entries are rewritten, so every set must be a *BarDataSet.
func (d *BarData) GroupBars(fromX, groupSpace, barSpace float64) error {
	sets := make([]*BarDataSet, len(d.Sets))
	for i, s := range d.Sets {
		bs, ok := s.(*BarDataSet)
		if !ok {
			return fmt.Errorf("grouping bars: data set %d (%T) is read-only", i, s)
		}
		sets[i] = bs
	}
	if len(sets) <= 1 {
		return nil
	}

	interval := d.GroupWidth(groupSpace, barSpace)
	groupSpaceHalf := groupSpace / 2
	barSpaceHalf := barSpace / 2
	barWidthHalf := d.BarWidth / 2

	for i := range d.maxEntryCount() {
		start := fromX
		fromX += groupSpaceHalf
		for _, s := range sets {
			fromX += barSpaceHalf + barWidthHalf
			if i < len(s.entries) {
				s.entries[i].X = fromX
			}
			fromX += barWidthHalf + barSpaceHalf
		}
		fromX += groupSpaceHalf
		// Absorb rounding so groups stay on the interval grid.
		fromX += interval - (fromX - start)
	}
	return nil
}

// GroupSlots sizes the bars so that a group of one bar per data set, plus its
// spacing, is one X unit wide, and lays the groups out centered on X = 0, 1,
// 2 and so on. It does nothing for fewer than two data sets.
func (d *BarData) GroupSlots(groupSpace, barSpace float64) error {
	n := len(d.Sets)
	if n <= 1 {
		return nil
	}
	w := (1-groupSpace)/float64(n) - barSpace
	if !(w > 0) {
		return fmt.Errorf("%d data sets leave no room for bars with group space %v and bar space %v", n, groupSpace, barSpace)
	}
	d.BarWidth = w
	return d.GroupBars(-0.5, groupSpace, barSpace)
}

// XRange returns the X extent of all bars, including their width.
func (d *BarData) XRange() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range d.Sets {
		n := s.EntryCount()
		if n == 0 {
			continue
		}
		// Entries are sorted by X.
		if e := s.EntryAt(0); e != nil {
			lo = min(lo, e.X)
		}
		if e := s.EntryAt(n - 1); e != nil {
			hi = max(hi, e.X)
		}
	}
	if lo > hi {
		return 0, 0
	}
	return lo - d.BarWidth/2, hi + d.BarWidth/2
}

// YRange returns the vertical extent of all bars plotted against axis. The
// range always includes 0, where bars start.
func (d *BarData) YRange(axis AxisDependency) (lo, hi float64) {
	for _, s := range d.Sets {
		if s.AxisDependency() != axis {
			continue
		}
		for i := range s.EntryCount() {
			e := s.EntryAt(i)
			if e == nil {
				continue
			}
			for _, v := range e.Values {
				lo, hi = min(lo, v), max(hi, v)
			}
		}
	}
	return lo, hi
}
