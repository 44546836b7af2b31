// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/aclements/benchbar/internal/axis"
	"github.com/aclements/benchbar/internal/chart"
	"github.com/aclements/benchbar/internal/config"
	"github.com/aclements/benchbar/internal/plot"
	"github.com/aclements/benchbar/internal/render"
	"github.com/aclements/benchbar/internal/sheet"
	"github.com/aclements/benchbar/internal/surface"
	"github.com/aclements/benchbar/internal/transform"
	"github.com/aclements/benchbar/internal/viewport"
)

// A page is the data of one chart.
type page struct {
	name string
	data *chart.BarData

	categories []string
	// stacks names the segments of stacked bars.
	stacks []string
	title  string
}

func pageFromBars(b *plot.Bars) *page {
	return &page{
		name:       b.Page,
		data:       b.Data,
		categories: b.Categories,
		stacks:     b.Stacks,
		title:      b.YTitle,
	}
}

func pageFromSheet(t *sheet.Table, stacked bool) *page {
	pg := &page{data: t.Data, categories: t.Categories, title: t.Title}
	if stacked {
		pg.stacks = t.Series
	}
	return pg
}

// legend has one item per data set, or per segment for stacked bars.
func (pg *page) legend() []surface.LegendItem {
	var items []surface.LegendItem
	if len(pg.stacks) > 0 && len(pg.data.Sets) > 0 {
		colors := pg.data.Sets[0].Colors()
		for i, s := range pg.stacks {
			items = append(items, surface.LegendItem{Label: s, Color: colors[i%len(colors)]})
		}
		return items
	}
	for _, ds := range pg.data.Sets {
		if c := ds.Colors(); len(c) > 0 {
			items = append(items, surface.LegendItem{Label: ds.Label(), Color: c[0]})
		}
	}
	return items
}

// highlights parses a -highlight flag of the form set:x[:stack]. Each part
// is a name or an index.
func (pg *page) highlights(spec string) ([]render.HighlightRequest, error) {
	if spec == "" {
		return nil, nil
	}
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("-highlight %s: want set:x[:stack]", spec)
	}
	lookup := func(what, s string, names []string) (int, error) {
		if i, ok := indexOf(names, s); ok {
			return i, nil
		}
		return 0, fmt.Errorf("-highlight %s: unknown %s %q", spec, what, s)
	}

	var setNames []string
	for _, ds := range pg.data.Sets {
		setNames = append(setNames, ds.Label())
	}
	set, err := lookup("data set", parts[0], setNames)
	if err != nil {
		return nil, err
	}
	slot, err := lookup("x", parts[1], pg.categories)
	if err != nil {
		return nil, err
	}
	req := render.HighlightRequest{DataSet: set, StackIndex: -1}
	if e := pg.data.Sets[set].EntryAt(slot); e != nil {
		req.X, req.Y = e.X, e.Y
	}
	if len(parts) == 3 {
		if req.StackIndex, err = lookup("stack", parts[2], pg.stacks); err != nil {
			return nil, err
		}
	}
	return []render.HighlightRequest{req}, nil
}

// indexOf finds s in names, either by name or as an index.
func indexOf(names []string, s string) (int, bool) {
	if i := slices.Index(names, s); i >= 0 {
		return i, true
	}
	if i, err := strconv.Atoi(s); err == nil && i >= 0 && i < len(names) {
		return i, true
	}
	return 0, false
}

// A window is the range of X slots shown, inclusive.
type window struct {
	lo, hi int
}

// window parses a -window flag of the form lo:hi. Each end is a category
// name or index.
func (pg *page) window(spec string) (*window, error) {
	if spec == "" {
		return nil, nil
	}
	lo, hi, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("-window %s: want lo:hi", spec)
	}
	var w window
	for _, end := range []struct {
		s string
		i *int
	}{{lo, &w.lo}, {hi, &w.hi}} {
		if *end.i, ok = indexOf(pg.categories, end.s); !ok {
			return nil, fmt.Errorf("-window %s: unknown x %q", spec, end.s)
		}
	}
	if w.lo > w.hi {
		return nil, fmt.Errorf("-window %s: empty range", spec)
	}
	return &w, nil
}

// category returns a formatter that labels slot positions with their
// category.
func category(names []string) func(float64) string {
	return func(v float64) string {
		i := math.Round(v)
		if math.Abs(v-i) > 1e-9 || i < 0 || int(i) >= len(names) {
			return ""
		}
		return names[int(i)]
	}
}

// newChart lays out pg in the viewport of style. If win is not nil, the chart
// is zoomed in on its slots.
func newChart(pg *page, style *config.Style, hl []render.HighlightRequest, win *window) *surface.Chart {
	vp := viewport.New(float64(style.Layout.Width), float64(style.Layout.Height), style.Offsets())

	// Slots are centered on 0, 1, 2, ...
	xlo, xhi := -0.5, float64(len(pg.categories))-0.5
	if lo, hi := pg.data.XRange(); lo < hi {
		xlo, xhi = min(xlo, lo), max(xhi, hi)
	}
	ylo, yhi := pg.data.YRange(chart.AxisLeft)
	if ylo == yhi {
		yhi = ylo + 1
	}
	yhi += (yhi - ylo) * style.Axis.SpaceTop / 100
	inverted := style.Axis.InvertedY

	tr := transform.New(vp)
	tr.PrepareMatrixValuePx(xlo, xhi-xlo, yhi-ylo, ylo)
	tr.PrepareMatrixOffset(inverted)

	nSlots := len(pg.categories)
	if win != nil {
		lo, hi := float64(win.lo)-0.5, float64(win.hi)+0.5
		if hi-lo < xhi-xlo {
			p := tr.PixelForValues(lo, 0)
			tr.Zoom((xhi-xlo)/(hi-lo), 1, p.X, p.Y)
			tr.Translate(vp.ContentLeft()-p.X, 0)
		}
		nSlots = win.hi - win.lo + 1
	}

	r := render.New(pg.data, vp, tr, nil, style.Render())
	r.SetInverted(chart.AxisLeft, inverted)

	x := axis.New(axis.Horizontal, vp, tr)
	style.ConfigureAxis(x)
	x.LabelCount = max(nSlots, 1)
	x.ForceLabelCount = false
	x.Granularity = 1
	x.Format = category(pg.categories)
	x.Compute(xlo, xhi, false)

	y := axis.New(axis.Vertical, vp, tr)
	style.ConfigureAxis(y)
	y.Compute(ylo, yhi, inverted)

	return &surface.Chart{
		Viewport:   vp,
		Renderer:   r,
		Axes:       []*axis.Axis{x, y},
		Highlights: hl,
		Legend:     pg.legend(),
		Title:      pg.title,
	}
}

// drawPage writes the chart of pg. PNG output has one file per frame; each
// frame reveals more of the bars and more of their height.
func drawPage(pg *page, style *config.Style, hl []render.HighlightRequest, win *window, out output, frames int, logger *slog.Logger) error {
	c := newChart(pg, style, hl, win)
	warn := func(err error) {
		if err != nil {
			logger.Warn("some bars were not drawn", "page", pg.name, "err", err)
		}
	}

	if out.ext == ".gp" {
		g := surface.NewGnuplot(style.Layout.Width, style.Layout.Height, style.Font.Size)
		warn(c.Draw(&surface.Painter{Canvas: g, Style: style.Surface()}, chart.Phase{X: 1, Y: 1}))
		path := out.frame(0, 1)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := g.Write("", f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return f.Close()
	}

	r, err := surface.NewRaster(style.Layout.Width, style.Layout.Height, style.Font.Size, style.Background())
	if err != nil {
		return err
	}
	defer r.Close()
	p := &surface.Painter{Canvas: r, Style: style.Surface()}
	for i := range frames {
		f := float64(i+1) / float64(frames)
		phase := chart.Phase{X: f, Y: f}
		r.Clear()
		warn(c.Draw(p, phase))
		path := out.frame(i, frames)
		if err := r.SavePNG(path); err != nil {
			return err
		}
		logger.Debug("wrote frame", "path", path, "phase", f)
	}
	return nil
}
