// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/aclements/benchbar/internal/transform"
	"github.com/aclements/benchbar/internal/viewport"
)

// newTestAxis maps x in [0, 10] and y in [-5, 5] onto a 100x100 content
// rectangle at (10, 20).
func newTestAxis(dir Direction) (*Axis, *viewport.Viewport) {
	vp := viewport.New(130, 150, viewport.Offsets{Left: 10, Top: 20, Right: 20, Bottom: 30})
	tr := transform.New(vp)
	tr.PrepareMatrixValuePx(0, 10, 10, -5)
	tr.PrepareMatrixOffset(false)
	a := New(dir, vp, tr)
	a.Format = func(v float64) string { return fmt.Sprint(v) }
	return a, vp
}

// charMeasurer gives every character a 6x10 pixel box.
type charMeasurer struct{}

func (charMeasurer) MeasureString(s string) (w, h float64) {
	return 6 * float64(len(s)), 10
}

func approxEqual(a, b []float64) bool {
	return slices.EqualFunc(a, b, func(x, y float64) bool { return math.Abs(x-y) < 1e-9 })
}

func TestComputeValues(t *testing.T) {
	for _, test := range []struct {
		name         string
		lo, hi       float64
		count        int
		force        bool
		granularity  float64
		center       bool
		want         []float64
		wantCentered []float64
		interval     float64
	}{
		{"default", 0, 10, 0, false, 0, false, []float64{0, 5, 10}, nil, 5},
		{"dense", 0, 10, 11, false, 0, false, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, nil, 1},
		{"fraction", 0, 1, 6, false, 0, false, []float64{0, 0.5, 1}, nil, 0.5},
		{"granularity", 0, 1, 6, false, 1, false, []float64{0, 1}, nil, 1},
		{"reversed", 10, 0, 0, false, 0, false, []float64{0, 5, 10}, nil, 5},
		{"forced", 0, 10, 3, true, 0, false, []float64{0, 5, 10}, nil, 5},
		{"forced uneven", 1, 2, 5, true, 0, false, []float64{1, 1.25, 1.5, 1.75, 2}, nil, 0.25},
		{"centered", 0, 10, 0, false, 0, true, []float64{-5, 0, 5, 10}, []float64{-2.5, 2.5, 7.5, 12.5}, 5},
		{"empty range", 3, 3, 0, false, 0, false, nil, nil, 0},
	} {
		a, _ := newTestAxis(Horizontal)
		a.LabelCount, a.ForceLabelCount, a.Granularity, a.CenterLabels = test.count, test.force, test.granularity, test.center
		a.Compute(test.lo, test.hi, false)
		if !approxEqual(a.Entries, test.want) {
			t.Errorf("%s: entries %v, want %v", test.name, a.Entries, test.want)
		}
		if !approxEqual(a.Centered, test.wantCentered) {
			t.Errorf("%s: centered %v, want %v", test.name, a.Centered, test.wantCentered)
		}
		if math.Abs(a.Interval-test.interval) > 1e-9 {
			t.Errorf("%s: interval %v, want %v", test.name, a.Interval, test.interval)
		}
	}
}

func TestComputeZoomed(t *testing.T) {
	a, vp := newTestAxis(Horizontal)
	vp.Zoom(2, 1, vp.ContentLeft(), vp.ContentBottom())
	a.Compute(0, 10, false)
	if math.Abs(a.Min) > 1e-9 || math.Abs(a.Max-5) > 1e-9 {
		t.Errorf("zoomed range [%v, %v], want [0, 5]", a.Min, a.Max)
	}
	if !approxEqual(a.Entries, []float64{0, 1, 2, 3, 4, 5}) {
		t.Errorf("entries %v", a.Entries)
	}

	// Too narrow to bother with the visible range.
	vp.SetDimensions(35, 150)
	a.Compute(0, 10, false)
	if a.Min != 0 || a.Max != 10 {
		t.Errorf("narrow range [%v, %v], want [0, 10]", a.Min, a.Max)
	}
}

func TestRenderHorizontal(t *testing.T) {
	a, _ := newTestAxis(Horizontal)
	a.LimitLines = []LimitLine{
		{Value: 5, Label: "lim", Position: RightTop, LineWidth: 1},
		{Value: 5, Label: "lim", Position: LeftBottom, LineWidth: 1},
		{Value: 5, Label: "off", Disabled: true},
		{Value: 20, Label: "far"},
	}
	a.Compute(0, 10, false)
	r := a.Render(charMeasurer{})

	if !approxEqual(r.Positions, []float64{10, 60, 110}) {
		t.Fatalf("positions %v", r.Positions)
	}
	if r.Cross != 148 {
		t.Errorf("cross %v, want 148", r.Cross)
	}
	var labels []string
	for _, l := range r.Plan.Labels {
		labels = append(labels, l.Label)
	}
	if !slices.Equal(labels, []string{"0", "5", "10"}) {
		t.Errorf("labels %q", labels)
	}
	if last := r.Plan.Labels[2]; last.Left != 96 || last.Right != 110 {
		t.Errorf("last label spans [%v, %v], want [96, 110]", last.Left, last.Right)
	}

	if len(r.Grid) != 3 {
		t.Fatalf("%d grid lines, want 3", len(r.Grid))
	}
	for i, g := range r.Grid {
		if g.Edge != (i != 1) || !g.Long || g.From != 20 || g.To != 150 {
			t.Errorf("grid line %d = %+v", i, g)
		}
	}

	if len(r.Limits) != 2 {
		t.Fatalf("%d limit lines, want 2", len(r.Limits))
	}
	rt, lb := r.Limits[0], r.Limits[1]
	if rt.X1 != 60 || rt.Y1 != 20 || rt.Y2 != 120 {
		t.Errorf("limit line at (%v, %v)-(%v, %v)", rt.X1, rt.Y1, rt.X2, rt.Y2)
	}
	if rt.LabelX != 61 || rt.LabelY != 32 || rt.AlignRight {
		t.Errorf("right-top label at (%v, %v) right=%v", rt.LabelX, rt.LabelY, rt.AlignRight)
	}
	if lb.LabelX != 59 || lb.LabelY != 118 || !lb.AlignRight {
		t.Errorf("left-bottom label at (%v, %v) right=%v", lb.LabelX, lb.LabelY, lb.AlignRight)
	}
}

func TestRenderVertical(t *testing.T) {
	a, _ := newTestAxis(Vertical)
	a.Compute(-5, 5, false)
	r := a.Render(charMeasurer{})

	if !approxEqual(r.Positions, []float64{120, 70, 20}) {
		t.Fatalf("positions %v", r.Positions)
	}
	want := [][2]float64{{110, 120}, {60, 70}, {20, 30}}
	if len(r.Plan.Labels) != len(want) {
		t.Fatalf("labels %+v", r.Plan.Labels)
	}
	for i, l := range r.Plan.Labels {
		if math.Abs(l.Left-want[i][0]) > 1e-9 || math.Abs(l.Right-want[i][1]) > 1e-9 {
			t.Errorf("label %d spans [%v, %v], want %v", i, l.Left, l.Right, want[i])
		}
	}
	for _, g := range r.Grid {
		if g.From != 0 || g.To != 110 {
			t.Errorf("grid line %+v", g)
		}
	}
}

func TestRenderGridPerUnit(t *testing.T) {
	a, _ := newTestAxis(Horizontal)
	a.OneGridLinePerUnit = true
	a.Compute(0, 10, false)
	r := a.Render(nil)
	// Lines at -0.5, 0.5, ..., 10.5; the outer two are off screen.
	if len(r.Grid) != 10 {
		t.Fatalf("%d grid lines, want 10", len(r.Grid))
	}
	if r.Grid[0].Pos != 15 || r.Grid[9].Pos != 105 {
		t.Errorf("grid from %v to %v", r.Grid[0].Pos, r.Grid[9].Pos)
	}
}

func TestDefaultFormat(t *testing.T) {
	a, _ := newTestAxis(Horizontal)
	a.Format = nil
	a.Compute(0, 3000, false)
	r := a.Render(nil)
	for _, l := range r.Plan.Labels {
		if l.Label == "" {
			t.Errorf("tick %d has no label", l.Index)
		}
	}
}
