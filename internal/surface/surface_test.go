// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"
	"slices"
	"testing"

	"github.com/aclements/benchbar/internal/axis"
	"github.com/aclements/benchbar/internal/buffer"
	"github.com/aclements/benchbar/internal/chart"
	"github.com/aclements/benchbar/internal/render"
	"github.com/aclements/benchbar/internal/transform"
	"github.com/aclements/benchbar/internal/viewport"
	"github.com/gogpu/gg"
)

// recordCanvas logs every primitive. Every character is 6x10 pixels.
type recordCanvas struct {
	ops []string
}

func (c *recordCanvas) MeasureString(s string) (w, h float64) {
	return 6 * float64(len(s)), 10
}

func (c *recordCanvas) FillRect(q buffer.Quad, col gg.RGBA) {
	c.ops = append(c.ops, fmt.Sprintf("rect %g,%g,%g,%g", q.Left, q.Top, q.Right, q.Bottom))
}

func (c *recordCanvas) Line(x1, y1, x2, y2, width float64, col gg.RGBA) {
	c.ops = append(c.ops, fmt.Sprintf("line %g,%g-%g,%g", x1, y1, x2, y2))
}

func (c *recordCanvas) Text(s string, x, y, ax float64, col gg.RGBA) {
	c.ops = append(c.ops, fmt.Sprintf("text %q %g,%g %g", s, x, y, ax))
}

func (c *recordCanvas) filter(prefix string) []string {
	var out []string
	for _, op := range c.ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			out = append(out, op)
		}
	}
	return out
}

func TestDrawAxisHorizontal(t *testing.T) {
	vp := viewport.New(130, 150, viewport.Offsets{Left: 10, Top: 20, Right: 20, Bottom: 30})
	tr := transform.New(vp)
	tr.PrepareMatrixValuePx(0, 10, 10, -5)
	tr.PrepareMatrixOffset(false)
	a := axis.New(axis.Horizontal, vp, tr)
	a.Format = func(v float64) string { return fmt.Sprint(v) }
	a.Compute(0, 10, false)

	c := &recordCanvas{}
	p := &Painter{Canvas: c, Style: DefaultStyle}
	p.DrawAxis(a.Direction, a.Render(p))

	wantText := []string{`text "0" 11,148 0`, `text "5" 61,148 0`, `text "10" 97,148 0`}
	if got := c.filter("text"); !slices.Equal(got, wantText) {
		t.Errorf("labels:\n got %q\nwant %q", got, wantText)
	}
	wantLines := []string{"line 10,20-10,150", "line 60,20-60,150", "line 110,20-110,150"}
	if got := c.filter("line"); !slices.Equal(got, wantLines) {
		t.Errorf("grid:\n got %q\nwant %q", got, wantLines)
	}
}

func TestFit(t *testing.T) {
	p := &Painter{Canvas: &recordCanvas{}}
	for _, test := range []struct {
		s       string
		width   float64
		clipped bool
		want    string
	}{
		{"abcdef", 20, false, "abcdef"},
		{"abcdef", 20, true, "abc"},
		{"abcdef", 36, true, "abcdef"},
		{"abcdef", 5, true, ""},
	} {
		if got := p.fit(test.s, test.width, test.clipped); got != test.want {
			t.Errorf("fit(%q, %v, %v) = %q, want %q", test.s, test.width, test.clipped, got, test.want)
		}
	}
}

func TestDrawHighlight(t *testing.T) {
	c := &recordCanvas{}
	p := &Painter{Canvas: c, Style: DefaultStyle}
	p.DrawHighlight(render.HighlightResult{
		Rect:   buffer.Quad{Left: 10, Top: 40, Right: 20, Bottom: 80},
		Anchor: gg.Pt(15, 40),
		Selectors: []buffer.Quad{
			{Left: 13, Top: 20, Right: 17, Bottom: 38},
			{Left: 13, Top: 82, Right: 17, Bottom: 120},
		},
		Description:    chart.Description{First: "a", Third: "c"},
		HasDescription: true,
	})
	want := []string{
		"rect 10,40,20,80",
		"rect 13,20,17,38",
		"rect 13,82,17,120",
		`text "c" 15,36 0.5`,
		`text "a" 15,26 0.5`,
	}
	if !slices.Equal(c.ops, want) {
		t.Errorf("got %q\nwant %q", c.ops, want)
	}
}

func TestDrawLegend(t *testing.T) {
	c := &recordCanvas{}
	p := &Painter{Canvas: c, Style: DefaultStyle}
	p.DrawLegend([]LegendItem{{"old", gg.RGB(1, 0, 0)}, {"new", gg.RGB(0, 0, 1)}}, 100, 0)
	want := []string{
		"rect 93,0,100,7",
		`text "old" 89,7 1`,
		"rect 93,10,100,17",
		`text "new" 89,17 1`,
	}
	if !slices.Equal(c.ops, want) {
		t.Errorf("got %q\nwant %q", c.ops, want)
	}
}

func TestPainterCommands(t *testing.T) {
	c := &recordCanvas{}
	p := &Painter{Canvas: c, Style: DefaultStyle}
	p.DrawShadow(render.DrawShadow{Quad: buffer.Quad{Left: 1, Top: 2, Right: 3, Bottom: 4}})
	p.DrawBar(render.DrawBar{Quad: buffer.Quad{Left: 1, Top: 3, Right: 3, Bottom: 4}})
	p.DrawValue(render.DrawValue{Text: "12", X: 2, Y: 1})
	want := []string{"rect 1,2,3,4", "rect 1,3,3,4", `text "12" 2,1 0.5`}
	if !slices.Equal(c.ops, want) {
		t.Errorf("got %q\nwant %q", c.ops, want)
	}
}
