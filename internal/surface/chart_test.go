// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"testing"

	"github.com/aclements/benchbar/internal/axis"
	"github.com/aclements/benchbar/internal/chart"
	"github.com/aclements/benchbar/internal/render"
	"github.com/aclements/benchbar/internal/transform"
	"github.com/aclements/benchbar/internal/viewport"
	"github.com/gogpu/gg"
)

// newTestChart plots bars of height 1, 2 and 3 at x = 0, 1, 2 on a content
// rectangle from (30, 20) to (190, 120).
func newTestChart(opts render.Options) *Chart {
	ds := chart.NewBarDataSet("set", []chart.Entry{
		chart.NewEntry(0, 1), chart.NewEntry(1, 2), chart.NewEntry(2, 3),
	})
	ds.SetColors(gg.RGB(1, 0, 0))
	data := chart.NewBarData(ds)
	data.BarWidth = 0.5

	vp := viewport.New(200, 150, viewport.Offsets{Left: 30, Top: 20, Right: 10, Bottom: 30})
	tr := transform.New(vp)
	tr.PrepareMatrixValuePx(-0.5, 3, 3, 0)
	tr.PrepareMatrixOffset(false)

	x := axis.New(axis.Horizontal, vp, tr)
	x.Compute(-0.5, 2.5, false)
	y := axis.New(axis.Vertical, vp, tr)
	y.Compute(0, 3, false)

	return &Chart{
		Viewport: vp,
		Renderer: render.New(data, vp, tr, nil, opts),
		Axes:     []*axis.Axis{x, y},
		Title:    "title",
	}
}

func TestChartDraw(t *testing.T) {
	c := newTestChart(render.Options{})
	r := newTestRaster(t, 200, 150)
	p := &Painter{Canvas: r, Style: DefaultStyle}

	// The last bar spans x from 150 to 176.7.
	if err := c.Draw(p, chart.Phase{X: 1, Y: 0.5}); err != nil {
		t.Fatal(err)
	}
	img := r.Image()
	if !isRed(img, 170, 100) {
		t.Errorf("bar at half height missing: %v", img.At(170, 100))
	}
	if isRed(img, 170, 40) {
		t.Errorf("bar drawn above half height")
	}

	r.Clear()
	if err := c.Draw(p, chart.Phase{X: 1, Y: 1}); err != nil {
		t.Fatal(err)
	}
	if img := r.Image(); !isRed(img, 170, 40) {
		t.Errorf("full bar missing: %v", img.At(170, 40))
	}
}

func TestChartDrawCommands(t *testing.T) {
	c := newTestChart(render.Options{DrawShadows: true, DrawValues: true})
	c.Highlights = []render.HighlightRequest{{DataSet: 0, X: 1, Y: 2, StackIndex: -1}}
	c.Legend = []LegendItem{{"a", gg.RGB(1, 0, 0)}, {"b", gg.RGB(0, 0, 1)}}
	rc := &recordCanvas{}
	if err := c.Draw(&Painter{Canvas: rc, Style: DefaultStyle}, chart.Phase{X: 1, Y: 1}); err != nil {
		t.Fatal(err)
	}
	// 3 shadows, 3 bars, a highlight with 2 selectors and 2 legend boxes.
	if got := len(rc.filter("rect")); got != 11 {
		t.Errorf("got %d rects, want 11:\n%q", got, rc.ops)
	}
	if got := rc.ops[len(rc.ops)-1]; got != `text "title" 30,16 0` {
		t.Errorf("last op %q, want the title", got)
	}
}
