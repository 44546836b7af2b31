// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render runs the bar chart render pipeline: it feeds each data set
// through a geometry buffer, maps the result to pixels, culls it against the
// viewport and hands the surviving bars to a Surface.
package render

import (
	"errors"
	"math"

	"github.com/aclements/benchbar/internal/buffer"
	"github.com/aclements/benchbar/internal/chart"
	"github.com/aclements/benchbar/internal/transform"
	"github.com/aclements/benchbar/internal/viewport"
	"github.com/gogpu/gg"
	"golang.org/x/perf/benchunit"
)

// Options configures a Renderer. The zero value draws bars only.
type Options struct {
	DrawShadows bool
	DrawValues  bool
	DrawIcons   bool

	// ValueAboveBar places value labels outside the end of the bar rather
	// than inside it.
	ValueAboveBar bool
	// ValueTextHeight is the pixel height of a value label.
	ValueTextHeight float64
	// ValueOffset is the pixel gap between a bar and its label. 0 means 4.5.
	ValueOffset float64
	IconOffset  gg.Point

	// Formatter formats value labels. nil means a decimal benchunit
	// formatter.
	Formatter ValueFormatter

	Highlight HighlightMode
	// Locator finds the entry a highlight request refers to. nil means
	// chart.NearestEntry.
	Locator EntryLocator
	// SelectorWidth is the width in pixels of the vertical selector drawn
	// through a highlighted bar. 0 means 4.
	SelectorWidth float64
}

// A ValueFormatter turns a bar value into label text.
type ValueFormatter func(v float64) string

// DefaultFormatter formats values with three significant digits and an SI
// prefix.
func DefaultFormatter(v float64) string {
	return benchunit.Scale(v, benchunit.Decimal)
}

func (o *Options) formatter() ValueFormatter {
	if o.Formatter == nil {
		return DefaultFormatter
	}
	return o.Formatter
}

// Renderer draws the data sets of one chart. It keeps one geometry buffer per
// data set across passes and is not safe for concurrent use.
type Renderer struct {
	data *chart.BarData
	vp   *viewport.Viewport
	opts Options

	trans    [2]*transform.Transformer // indexed by chart.AxisDependency
	inverted [2]bool

	buffers []*buffer.BarBuffer
	keys    []int
}

// New returns a renderer for data. left and right map values plotted against
// the left and right Y axes; right may be nil if no data set uses it.
func New(data *chart.BarData, vp *viewport.Viewport, left, right *transform.Transformer, opts Options) *Renderer {
	if right == nil {
		right = left
	}
	return &Renderer{
		data:  data,
		vp:    vp,
		opts:  opts,
		trans: [2]*transform.Transformer{left, right},
	}
}

// SetInverted records whether axis is drawn inverted. It only affects the
// placement of value labels; the transformer handles the geometry.
func (r *Renderer) SetInverted(axis chart.AxisDependency, inverted bool) {
	r.inverted[axis] = inverted
}

// Transformer returns the transformer for axis.
func (r *Renderer) Transformer(axis chart.AxisDependency) *transform.Transformer {
	return r.trans[axis]
}

// buffer returns the geometry buffer of data set i, allocating a new one
// only if the data set's capacity changed since the last pass.
func (r *Renderer) buffer(i int, ds chart.DataSet) *buffer.BarBuffer {
	if n := len(r.data.Sets); len(r.buffers) != n {
		r.buffers = append(r.buffers[:0:0], make([]*buffer.BarBuffer, n)...)
		r.keys = make([]int, n)
	}
	key := buffer.Capacity(ds)
	if r.buffers[i] == nil || r.keys[i] != key {
		Logger().Debug("allocating bar buffer", "dataSet", i, "floats", key)
		r.buffers[i] = buffer.New(key, ds.IsStacked())
		r.keys[i] = key
	}
	return r.buffers[i]
}

// DrawData draws the bars of every visible data set at phase.
//
// A data set that cannot be turned into geometry is skipped and the rest are
// still drawn. The returned error joins the *buffer.ConfigurationError of
// every skipped data set.
func (r *Renderer) DrawData(s Surface, phase chart.Phase) error {
	phase = phase.Clamp()
	var errs []error
	for i, ds := range r.data.Sets {
		if !ds.IsVisible() {
			continue
		}
		if err := r.drawDataSet(s, i, ds, phase); err != nil {
			Logger().Warn("skipping data set", "dataSet", i, "label", ds.Label(), "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Renderer) drawDataSet(s Surface, i int, ds chart.DataSet, phase chart.Phase) error {
	b := r.buffer(i, ds)
	if err := b.Configure(ds, r.data.BarWidth); err != nil {
		var cerr *buffer.ConfigurationError
		if errors.As(err, &cerr) {
			cerr.DataSet, cerr.Label = i, ds.Label()
		}
		return err
	}

	qs := b.Feed(ds, phase)
	r.trans[ds.AxisDependency()].PointValuesToPixel(qs)

	colors := ds.Colors()
	drawn := 0
scan:
	for j := range qs.Len() {
		q := qs.At(j)
		switch r.vp.Classify(q.Left, q.Right) {
		case viewport.CullSkip:
			continue
		case viewport.CullStop:
			break scan
		}
		ci, c := colorAt(colors, j)
		s.DrawBar(DrawBar{DataSet: i, Index: j, Quad: q, ColorIndex: ci, Color: c})
		drawn++
	}
	Logger().Debug("drew data set", "dataSet", i, "quads", qs.Len(), "drawn", drawn)
	return nil
}

// colorAt returns the palette entry for quad j. A single-color palette is
// used for every quad; longer palettes wrap around.
func colorAt(colors []gg.RGBA, j int) (int, gg.RGBA) {
	switch len(colors) {
	case 0:
		return 0, gg.RGB(0, 0, 0)
	case 1:
		return 0, colors[0]
	}
	ci := j % len(colors)
	return ci, colors[ci]
}

// DrawShadows draws a full-height shadow behind every revealed entry of every
// visible data set. It does nothing unless shadows are enabled and s is a
// ShadowSurface.
func (r *Renderer) DrawShadows(s Surface, phase chart.Phase) {
	ss, ok := s.(ShadowSurface)
	if !r.opts.DrawShadows || !ok {
		return
	}
	phase = phase.Clamp()
	half := r.data.BarWidth / 2
	for i, ds := range r.data.Sets {
		if !ds.IsVisible() {
			continue
		}
		tr := r.trans[ds.AxisDependency()]
		n := ds.EntryCount()
		count := min(int(math.Ceil(float64(n)*phase.X)), n)
		for j := range count {
			e := ds.EntryAt(j)
			if e == nil {
				continue
			}
			q := buffer.Quad{Left: e.X - half, Right: e.X + half}
			tr.RectValueToPixel(&q)
			cull := r.vp.Classify(q.Left, q.Right)
			if cull == viewport.CullSkip {
				continue
			}
			if cull == viewport.CullStop {
				break
			}
			q.Top, q.Bottom = r.vp.ContentTop(), r.vp.ContentBottom()
			ss.DrawShadow(DrawShadow{DataSet: i, Entry: j, Quad: q})
		}
	}
}
