// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"github.com/aclements/benchbar/internal/buffer"
	"github.com/aclements/benchbar/internal/chart"
	"github.com/gogpu/gg"
)

// HighlightMode selects what part of a stacked bar a highlight covers.
type HighlightMode int

const (
	// HighlightSegment highlights one segment of a stacked bar.
	HighlightSegment HighlightMode = iota
	// HighlightFullBar highlights the whole bar when the request does
	// not name a segment.
	HighlightFullBar
)

func (m HighlightMode) String() string {
	switch m {
	case HighlightSegment:
		return "segment"
	case HighlightFullBar:
		return "full-bar"
	}
	return fmt.Sprintf("HighlightMode(%d)", int(m))
}

// extent returns the vertical range to highlight on e and the segment it
// belongs to (-1 for the full bar). A segment index that is out of range
// falls back to the first segment.
func (m HighlightMode) extent(e *chart.Entry, stackIndex int) (chart.Range, int) {
	if m == HighlightFullBar && stackIndex == -1 {
		return chart.Range{From: -e.NegativeSum(), To: e.PositiveSum()}, -1
	}
	if stackIndex < 0 || stackIndex >= e.RangeCount() {
		stackIndex = 0
	}
	return e.RangeAt(stackIndex), stackIndex
}

// A HighlightRequest selects the entry of data set DataSet nearest to (X, Y)
// in data space. StackIndex is the segment, or -1 for none.
type HighlightRequest struct {
	DataSet    int
	X, Y       float64
	StackIndex int
}

// A HighlightResult is the resolved pixel geometry of a highlight.
type HighlightResult struct {
	DataSet int
	Entry   int
	// StackIndex is the highlighted segment, or -1 for the full bar.
	StackIndex int

	Rect buffer.Quad
	// Anchor is where annotations attach: the top center of Rect.
	Anchor gg.Point

	ColorIndex int
	Color      gg.RGBA

	// Selectors are the vertical bars drawn through the highlighted bar's
	// center, above and below it. They are empty for zero-height bars.
	Selectors []buffer.Quad

	Description    chart.Description
	HasDescription bool
}

// An EntryLocator finds the index of the entry of ds nearest to (x, y), or
// -1 if there is none.
type EntryLocator interface {
	Locate(ds chart.DataSet, x, y float64) int
}

// LocatorFunc adapts a function to an EntryLocator.
type LocatorFunc func(ds chart.DataSet, x, y float64) int

func (f LocatorFunc) Locate(ds chart.DataSet, x, y float64) int { return f(ds, x, y) }

func (o *Options) locator() EntryLocator {
	if o.Locator == nil {
		return LocatorFunc(chart.NearestEntry)
	}
	return o.Locator
}

// Highlight resolves req at phase. It reports false if the data set does not
// exist, has highlighting disabled, or has no revealed entry matching req.
func (r *Renderer) Highlight(req HighlightRequest, phase chart.Phase) (HighlightResult, bool) {
	ds := r.data.DataSet(req.DataSet)
	if ds == nil || !ds.IsHighlightEnabled() {
		return HighlightResult{}, false
	}
	phase = phase.Clamp()

	idx := r.opts.locator().Locate(ds, req.X, req.Y)
	if idx < 0 || float64(idx) >= float64(ds.EntryCount())*phase.X {
		return HighlightResult{}, false
	}
	e := ds.EntryAt(idx)
	if e == nil || e.RangeCount() == 0 {
		return HighlightResult{}, false
	}

	rg, stack := r.opts.Highlight.extent(e, req.StackIndex)
	if req.StackIndex >= 0 && stack != req.StackIndex {
		Logger().Debug("clamped highlight stack index", "dataSet", req.DataSet, "entry", idx, "stack", req.StackIndex)
	}

	half := r.data.BarWidth / 2
	q := buffer.Quad{Left: e.X - half, Top: rg.To, Right: e.X + half, Bottom: rg.From}
	if q.Top == q.Bottom && q.Top != 0 {
		// Give zero-height bars something to show.
		q.Top += half * 2
		q.Bottom -= half * 2
	}
	tr := r.trans[ds.AxisDependency()]
	tr.RectToPixelPhase(&q, phase.Y)

	res := HighlightResult{
		DataSet:    req.DataSet,
		Entry:      idx,
		StackIndex: stack,
		Rect:       q,
		Anchor:     gg.Pt(q.CenterX(), q.Top),
	}
	res.ColorIndex, res.Color = colorAt(ds.Colors(), max(stack, 0))
	res.Description, res.HasDescription = e.DescriptionAt(max(stack, 0))

	if q.Top != q.Bottom {
		w := r.opts.SelectorWidth
		if w == 0 {
			w = 4
		}
		x := tr.PixelForValues(e.X, 0).X
		upper, lower := min(q.Top, q.Bottom), max(q.Top, q.Bottom)
		res.Selectors = []buffer.Quad{
			{Left: x - w/2, Top: r.vp.ContentTop(), Right: x + w/2, Bottom: upper - 2},
			{Left: x - w/2, Top: lower + 2, Right: x + w/2, Bottom: r.vp.ContentBottom()},
		}
	}
	return res, true
}
