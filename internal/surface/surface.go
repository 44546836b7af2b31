// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface draws bar chart frames. A Painter turns the commands of
// the render pipeline, axis renderings and highlights into a handful of
// primitives that a Canvas implements: a raster image or gnuplot code.
package surface

import (
	"github.com/aclements/benchbar/internal/axis"
	"github.com/aclements/benchbar/internal/buffer"
	"github.com/aclements/benchbar/internal/render"
	"github.com/gogpu/gg"
)

// A Canvas draws primitives in chart pixel coordinates, with Y growing
// downward.
type Canvas interface {
	axis.Measurer

	FillRect(q buffer.Quad, c gg.RGBA)
	Line(x1, y1, x2, y2, width float64, c gg.RGBA)
	// Text draws s with its baseline at y. ax anchors it horizontally: 0
	// puts the start of s at x, 0.5 centers it and 1 ends it at x.
	Text(s string, x, y, ax float64, c gg.RGBA)
}

// Style holds the colors a Painter uses for everything that is not a bar.
type Style struct {
	Text, Grid, Edge gg.RGBA
	Shadow           gg.RGBA
	// Highlight is drawn over highlighted bars. It should be translucent.
	Highlight gg.RGBA
}

// DefaultStyle is black text on light gray grid lines.
var DefaultStyle = Style{
	Text:      gg.Hex("#000000"),
	Grid:      gg.Hex("#dddddd"),
	Edge:      gg.Hex("#888888"),
	Shadow:    gg.Hex("#eeeeee"),
	Highlight: gg.RGBA2(0, 0, 0, 0.25),
}

// A Painter is a render.Surface that draws on a Canvas. It also accepts
// shadows and value labels.
type Painter struct {
	Canvas
	Style Style
}

var (
	_ render.ShadowSurface = (*Painter)(nil)
	_ render.ValueSurface  = (*Painter)(nil)
)

func (p *Painter) DrawBar(b render.DrawBar) {
	p.FillRect(b.Quad, b.Color)
}

func (p *Painter) DrawShadow(s render.DrawShadow) {
	p.FillRect(s.Quad, p.Style.Shadow)
}

func (p *Painter) DrawValue(v render.DrawValue) {
	p.Text(v.Text, v.X, v.Y, 0.5, p.Style.Text)
}

// DrawAxis draws the grid, labels and limit lines of an axis rendering.
func (p *Painter) DrawAxis(dir axis.Direction, r axis.Rendering) {
	for _, g := range r.Grid {
		c := p.Style.Grid
		if g.Edge {
			c = p.Style.Edge
		}
		if dir == axis.Horizontal {
			p.Line(g.Pos, g.From, g.Pos, g.To, 1, c)
		} else {
			p.Line(g.From, g.Pos, g.To, g.Pos, 1, c)
		}
	}

	for _, l := range r.Plan.Labels {
		if dir == axis.Horizontal {
			s := p.fit(l.Label, l.Right-l.Left-axis.LabelPadding, l.Clipped)
			p.Text(s, l.Left+axis.LabelPadding/2, r.Cross, 0, p.Style.Text)
		} else {
			p.Text(l.Label, r.Cross, l.Right, 1, p.Style.Text)
		}
	}

	for _, m := range r.Limits {
		w := m.Line.LineWidth
		if w <= 0 {
			w = 1
		}
		p.Line(m.X1, m.Y1, m.X2, m.Y2, w, m.Line.Color)
		if m.Line.Label != "" {
			ax := 0.0
			if m.AlignRight {
				ax = 1
			}
			p.Text(m.Line.Label, m.LabelX, m.LabelY, ax, m.Line.Color)
		}
	}
}

// fit shortens s until it is at most width wide. Only clipped labels are
// shortened.
func (p *Painter) fit(s string, width float64, clipped bool) string {
	if !clipped {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		if w, _ := p.MeasureString(string(r)); w <= width {
			break
		}
		r = r[:len(r)-1]
	}
	return string(r)
}

// DrawHighlight shades a highlighted bar, draws its selectors and writes its
// description above it, one line per part.
func (p *Painter) DrawHighlight(h render.HighlightResult) {
	p.FillRect(h.Rect, p.Style.Highlight)
	for _, s := range h.Selectors {
		p.FillRect(s, h.Color)
	}
	if !h.HasDescription {
		return
	}
	var lines []string
	for _, s := range []string{h.Description.First, h.Description.Second, h.Description.Third} {
		if s != "" {
			lines = append(lines, s)
		}
	}
	y := min(h.Rect.Top, h.Rect.Bottom) - 4
	for i := len(lines) - 1; i >= 0; i-- {
		_, lh := p.MeasureString(lines[i])
		p.Text(lines[i], h.Anchor.X, y, 0.5, p.Style.Text)
		y -= lh
	}
}

// A LegendItem is one color key of a legend.
type LegendItem struct {
	Label string
	Color gg.RGBA
}

// DrawLegend draws items in a column whose top right corner is at (x, y).
func (p *Painter) DrawLegend(items []LegendItem, x, y float64) {
	for _, it := range items {
		_, h := p.MeasureString(it.Label)
		if h == 0 {
			h = 10
		}
		box := h * 0.7
		p.FillRect(buffer.Quad{Left: x - box, Top: y, Right: x, Bottom: y + box}, it.Color)
		p.Text(it.Label, x-box-4, y+box, 1, p.Style.Text)
		y += h
	}
}
