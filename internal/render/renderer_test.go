// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/aclements/benchbar/internal/buffer"
	"github.com/aclements/benchbar/internal/chart"
	"github.com/aclements/benchbar/internal/transform"
	"github.com/aclements/benchbar/internal/viewport"
	"github.com/gogpu/gg"
)

// newTestRenderer maps x in [0, 10] and y in [-5, 5] onto a 100x100 content
// rectangle at (10, 20), 10 pixels per unit.
func newTestRenderer(barWidth float64, opts Options, sets ...chart.DataSet) *Renderer {
	vp := viewport.New(130, 150, viewport.Offsets{Left: 10, Top: 20, Right: 20, Bottom: 30})
	tr := transform.New(vp)
	tr.PrepareMatrixValuePx(0, 10, 10, -5)
	tr.PrepareMatrixOffset(false)
	data := chart.NewBarData(sets...)
	data.BarWidth = barWidth
	return New(data, vp, tr, nil, opts)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func nearQuad(a, b buffer.Quad) bool {
	return near(a.Left, b.Left) && near(a.Top, b.Top) && near(a.Right, b.Right) && near(a.Bottom, b.Bottom)
}

func TestDrawDataCulls(t *testing.T) {
	var entries []chart.Entry
	for x := -5; x <= 15; x++ {
		entries = append(entries, chart.NewEntry(float64(x), 1))
	}
	r := newTestRenderer(0.5, Options{}, chart.NewBarDataSet("", entries))

	var rec Recorder
	if err := r.DrawData(&rec, chart.FullPhase); err != nil {
		t.Fatal(err)
	}
	if len(rec.Bars) != 11 {
		t.Fatalf("drew %d bars, want 11", len(rec.Bars))
	}
	for i, b := range rec.Bars {
		if b.Index != i+5 {
			t.Errorf("bar %d has index %d, want %d", i, b.Index, i+5)
		}
		if i > 0 && b.Quad.Left < rec.Bars[i-1].Quad.Left {
			t.Errorf("bar %d out of order", i)
		}
	}
	want := buffer.Quad{Left: 7.5, Top: 60, Right: 12.5, Bottom: 70}
	if !nearQuad(rec.Bars[0].Quad, want) {
		t.Errorf("first bar = %+v, want %+v", rec.Bars[0].Quad, want)
	}
}

func TestDrawDataColors(t *testing.T) {
	entries := []chart.Entry{chart.NewEntry(1, 1), chart.NewEntry(2, 1), chart.NewEntry(3, 1), chart.NewEntry(4, 1)}
	palette := []gg.RGBA{gg.RGB(1, 0, 0), gg.RGB(0, 1, 0), gg.RGB(0, 0, 1)}

	multi := chart.NewBarDataSet("multi", entries)
	multi.SetColors(palette...)
	single := chart.NewBarDataSet("single", entries)
	single.SetColors(palette[2])

	r := newTestRenderer(0.5, Options{}, multi, single)
	var rec Recorder
	if err := r.DrawData(&rec, chart.FullPhase); err != nil {
		t.Fatal(err)
	}
	for _, b := range rec.Bars {
		want := 0
		if b.DataSet == 0 {
			want = b.Index % 3
		}
		if b.ColorIndex != want {
			t.Errorf("set %d bar %d: color index %d, want %d", b.DataSet, b.Index, b.ColorIndex, want)
		}
		if b.DataSet == 1 && b.Color != palette[2] {
			t.Errorf("single-color set drew %v", b.Color)
		}
	}
}

func TestDrawDataIsolatesErrors(t *testing.T) {
	bad := chart.NewBarDataSet("bad", []chart.Entry{chart.NewStackedEntry(1, 1, 1, 1)})
	bad.SetStackSize(2)
	good := chart.NewBarDataSet("good", []chart.Entry{chart.NewEntry(1, 1)})
	hidden := chart.NewBarDataSet("hidden", []chart.Entry{chart.NewEntry(2, 1)})
	hidden.SetVisible(false)

	r := newTestRenderer(0.5, Options{}, bad, good, hidden)
	var rec Recorder
	err := r.DrawData(&rec, chart.FullPhase)
	var cerr *buffer.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("got error %v, want ConfigurationError", err)
	}
	if cerr.DataSet != 0 || cerr.Label != "bad" {
		t.Errorf("error names data set %d %q", cerr.DataSet, cerr.Label)
	}
	if len(rec.Bars) != 1 || rec.Bars[0].DataSet != 1 {
		t.Errorf("bars = %+v, want one bar of data set 1", rec.Bars)
	}
}

func TestDrawDataReusesBuffers(t *testing.T) {
	ds := chart.NewBarDataSet("", []chart.Entry{chart.NewEntry(1, 1), chart.NewEntry(2, 2)})
	r := newTestRenderer(0.5, Options{}, ds)
	var rec Recorder
	for range 3 {
		if err := r.DrawData(&rec, chart.FullPhase); err != nil {
			t.Fatal(err)
		}
	}
	first := r.buffers[0]
	if err := r.DrawData(&rec, chart.Phase{X: 0.5, Y: 0.5}); err != nil {
		t.Fatal(err)
	}
	if r.buffers[0] != first {
		t.Errorf("buffer reallocated for an unchanged data set")
	}

	r.data.Sets[0] = chart.NewBarDataSet("", []chart.Entry{chart.NewEntry(1, 1), chart.NewEntry(2, 2), chart.NewEntry(3, 3)})
	rec.Reset()
	if err := r.DrawData(&rec, chart.FullPhase); err != nil {
		t.Fatal(err)
	}
	if r.buffers[0] == first || r.buffers[0].Size() != 12 {
		t.Errorf("buffer not reallocated for a larger data set")
	}
	if len(rec.Bars) != 3 {
		t.Errorf("drew %d bars, want 3", len(rec.Bars))
	}
}

func TestDrawDataPhaseZero(t *testing.T) {
	ds := chart.NewBarDataSet("", []chart.Entry{chart.NewEntry(1, 1), chart.NewEntry(2, 2)})
	r := newTestRenderer(0.5, Options{}, ds)
	var rec Recorder
	if err := r.DrawData(&rec, chart.Phase{X: 0, Y: 1}); err != nil {
		t.Fatal(err)
	}
	if len(rec.Bars) != 0 {
		t.Errorf("phase X 0 drew %d bars", len(rec.Bars))
	}
}

func TestDrawShadows(t *testing.T) {
	ds := chart.NewBarDataSet("", []chart.Entry{chart.NewEntry(0, 1), chart.NewEntry(1, 2), chart.NewEntry(2, 3)})
	var rec Recorder

	newTestRenderer(1, Options{}, ds).DrawShadows(&rec, chart.FullPhase)
	if len(rec.Shadows) != 0 {
		t.Fatalf("shadows drawn while disabled")
	}

	newTestRenderer(1, Options{DrawShadows: true}, ds).DrawShadows(&rec, chart.Phase{X: 0.5, Y: 1})
	if len(rec.Shadows) != 2 {
		t.Fatalf("drew %d shadows, want 2", len(rec.Shadows))
	}
	want := buffer.Quad{Left: 15, Top: 20, Right: 25, Bottom: 120}
	if !nearQuad(rec.Shadows[1].Quad, want) {
		t.Errorf("shadow = %+v, want %+v", rec.Shadows[1].Quad, want)
	}
}

func TestDrawValues(t *testing.T) {
	ds := chart.NewBarDataSet("", []chart.Entry{chart.NewEntry(1, 4), chart.NewEntry(2, -2)})
	format := func(v float64) string { return fmt.Sprint(v) }

	for _, test := range []struct {
		above  bool
		wantY0 float64
		wantY1 float64
	}{
		{false, 44.5, 85.5},
		{true, 25.5, 104.5},
	} {
		r := newTestRenderer(1, Options{DrawValues: true, ValueAboveBar: test.above, ValueTextHeight: 10, Formatter: format}, ds)
		var rec Recorder
		r.DrawValues(&rec, chart.FullPhase)
		if len(rec.Values) != 2 {
			t.Fatalf("above=%v: drew %d values, want 2", test.above, len(rec.Values))
		}
		v0, v1 := rec.Values[0], rec.Values[1]
		if v0.Text != "4" || v1.Text != "-2" {
			t.Errorf("above=%v: texts %q, %q", test.above, v0.Text, v1.Text)
		}
		if !near(v0.X, 20) || !near(v0.Y, test.wantY0) || !near(v1.Y, test.wantY1) {
			t.Errorf("above=%v: positions (%v, %v), (%v, %v)", test.above, v0.X, v0.Y, v1.X, v1.Y)
		}
	}
}

func TestDrawValuesStacked(t *testing.T) {
	ds := chart.NewBarDataSet("", []chart.Entry{chart.NewStackedEntry(1, 1, 2, -1)})
	r := newTestRenderer(1, Options{DrawValues: true}, ds)
	var rec Recorder
	r.DrawValues(&rec, chart.FullPhase)
	if len(rec.Values) != 3 {
		t.Fatalf("drew %d values, want 3", len(rec.Values))
	}
	for k, want := range []float64{1, 2, -1} {
		if v := rec.Values[k]; v.Stack != k || v.Value != want || v.Text == "" {
			t.Errorf("segment %d: %+v", k, v)
		}
	}
}

func TestDefaultFormatter(t *testing.T) {
	if got := DefaultFormatter(1500); got == "" || got == "1500" {
		t.Errorf("DefaultFormatter(1500) = %q, want a scaled value", got)
	}
}
