// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/aclements/benchbar/internal/buffer"
	"github.com/aclements/benchbar/internal/chart"
	"github.com/gogpu/gg"
)

func highlightData() *chart.BarDataSet {
	stacked := chart.NewStackedEntry(2, 1, 2, -1)
	stacked.Data = []chart.Description{{First: "low"}, {First: "mid"}, {First: "neg"}}
	ds := chart.NewBarDataSet("", []chart.Entry{
		chart.NewStackedEntry(1, 1, 1),
		stacked,
	})
	ds.SetColors(gg.RGB(1, 0, 0), gg.RGB(0, 1, 0))
	return ds
}

func TestHighlightModes(t *testing.T) {
	for _, test := range []struct {
		name      string
		mode      HighlightMode
		stack     int
		phaseY    float64
		wantStack int
		want      buffer.Quad
	}{
		{"full bar", HighlightFullBar, -1, 1, -1, buffer.Quad{Left: 25, Top: 40, Right: 35, Bottom: 80}},
		{"full bar mid animation", HighlightFullBar, -1, 0.5, -1, buffer.Quad{Left: 25, Top: 55, Right: 35, Bottom: 75}},
		{"full bar with segment", HighlightFullBar, 1, 1, 1, buffer.Quad{Left: 25, Top: 40, Right: 35, Bottom: 60}},
		{"segment without index", HighlightSegment, -1, 1, 0, buffer.Quad{Left: 25, Top: 60, Right: 35, Bottom: 70}},
		{"segment", HighlightSegment, 1, 1, 1, buffer.Quad{Left: 25, Top: 40, Right: 35, Bottom: 60}},
		{"segment out of range", HighlightSegment, 7, 1, 0, buffer.Quad{Left: 25, Top: 60, Right: 35, Bottom: 70}},
	} {
		r := newTestRenderer(1, Options{Highlight: test.mode}, highlightData())
		res, ok := r.Highlight(HighlightRequest{DataSet: 0, X: 2.1, Y: 0, StackIndex: test.stack}, chart.Phase{X: 1, Y: test.phaseY})
		if !ok {
			t.Errorf("%s: no highlight", test.name)
			continue
		}
		if res.Entry != 1 || res.StackIndex != test.wantStack {
			t.Errorf("%s: entry %d stack %d, want 1 %d", test.name, res.Entry, res.StackIndex, test.wantStack)
		}
		if !nearQuad(res.Rect, test.want) {
			t.Errorf("%s: rect %+v, want %+v", test.name, res.Rect, test.want)
		}
		if !near(res.Anchor.X, 30) || !near(res.Anchor.Y, test.want.Top) {
			t.Errorf("%s: anchor %v", test.name, res.Anchor)
		}
	}
}

func TestHighlightDetails(t *testing.T) {
	r := newTestRenderer(1, Options{}, highlightData())
	res, ok := r.Highlight(HighlightRequest{X: 2, StackIndex: 1}, chart.FullPhase)
	if !ok {
		t.Fatal("no highlight")
	}
	if res.ColorIndex != 1 || res.Color != gg.RGB(0, 1, 0) {
		t.Errorf("color %d %v", res.ColorIndex, res.Color)
	}
	if !res.HasDescription || res.Description.First != "mid" {
		t.Errorf("description %+v %v", res.Description, res.HasDescription)
	}
	want := []buffer.Quad{
		{Left: 28, Top: 20, Right: 32, Bottom: 38},
		{Left: 28, Top: 62, Right: 32, Bottom: 120},
	}
	if len(res.Selectors) != 2 || !nearQuad(res.Selectors[0], want[0]) || !nearQuad(res.Selectors[1], want[1]) {
		t.Errorf("selectors %+v, want %+v", res.Selectors, want)
	}
}

func TestHighlightRejects(t *testing.T) {
	disabled := highlightData()
	disabled.SetHighlightEnabled(false)

	for _, test := range []struct {
		name  string
		ds    chart.DataSet
		req   HighlightRequest
		phase chart.Phase
	}{
		{"missing data set", highlightData(), HighlightRequest{DataSet: 3}, chart.FullPhase},
		{"disabled", disabled, HighlightRequest{X: 2}, chart.FullPhase},
		{"not revealed", highlightData(), HighlightRequest{X: 2}, chart.Phase{X: 0.5, Y: 1}},
		{"empty", chart.NewBarDataSet("", nil), HighlightRequest{}, chart.FullPhase},
	} {
		r := newTestRenderer(1, Options{}, test.ds)
		if res, ok := r.Highlight(test.req, test.phase); ok {
			t.Errorf("%s: got highlight %+v", test.name, res)
		}
	}
}

func TestHighlightLocator(t *testing.T) {
	calls := 0
	loc := LocatorFunc(func(ds chart.DataSet, x, y float64) int {
		calls++
		return 0
	})
	r := newTestRenderer(1, Options{Locator: loc}, highlightData())
	res, ok := r.Highlight(HighlightRequest{X: 100, StackIndex: -1}, chart.FullPhase)
	if !ok || res.Entry != 0 || calls != 1 {
		t.Errorf("locator not used: %+v %v calls=%d", res, ok, calls)
	}
}

func TestHighlightZeroHeight(t *testing.T) {
	ds := chart.NewBarDataSet("", []chart.Entry{{X: 1, Values: []float64{2, 2}}})
	r := newTestRenderer(1, Options{}, ds)
	res, ok := r.Highlight(HighlightRequest{X: 1}, chart.FullPhase)
	if !ok {
		t.Fatal("no highlight")
	}
	// [2, 2] is widened by the bar width to [1, 3].
	want := buffer.Quad{Left: 15, Top: 40, Right: 25, Bottom: 60}
	if !nearQuad(res.Rect, want) {
		t.Errorf("rect %+v, want %+v", res.Rect, want)
	}
}
