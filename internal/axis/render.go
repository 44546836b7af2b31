// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import "github.com/gogpu/gg"

// A Measurer measures rendered text. *gg.Context is a Measurer.
type Measurer interface {
	MeasureString(s string) (w, h float64)
}

// A GridLine is a line across the content area at pixel coordinate Pos along
// the axis, spanning From to To across it.
type GridLine struct {
	Pos      float64
	From, To float64
	// Edge is set on the first and last lines of the axis.
	Edge bool
	// Long lines extend through the label area.
	Long bool
}

// LabelPosition says which side of a limit line its label is drawn on.
type LabelPosition int

const (
	RightTop LabelPosition = iota
	RightBottom
	LeftTop
	LeftBottom
)

// A LimitLine marks a value on an axis.
type LimitLine struct {
	Value    float64
	Label    string
	Position LabelPosition

	LineWidth        float64
	XOffset, YOffset float64
	Color            gg.RGBA
	Disabled         bool
}

// A LimitMark is the pixel geometry of a LimitLine.
type LimitMark struct {
	Line *LimitLine

	X1, Y1, X2, Y2 float64

	// LabelX and LabelY are the start of the label's baseline, or its end
	// if AlignRight is set.
	LabelX, LabelY float64
	AlignRight     bool
}

// A Rendering is everything needed to draw an axis.
type Rendering struct {
	// Positions are the pixel coordinates along the axis of the ticks
	// that are on screen.
	Positions []float64
	Plan      TickPlan
	Grid      []GridLine
	Limits    []LimitMark

	// Cross is the pixel coordinate across the axis of the labels: the
	// baseline for a horizontal axis, the right edge of the text for a
	// vertical one. Each label is drawn within its span along the axis.
	Cross float64
}

const tickLength = 4

// LabelPadding is the gap in pixels between a horizontal axis label and the
// edge of its span, and between the labels and the bottom of the chart.
const LabelPadding = 2

// Render maps the computed ticks of a to pixels and lays out its labels, grid
// lines and limit lines. m measures label text; nil treats every label as
// zero-sized.
func (a *Axis) Render(m Measurer) Rendering {
	var r Rendering
	vp := a.vp
	off := vp.Offsets()
	if a.Direction == Horizontal {
		r.Cross = vp.ContentBottom() + off.Bottom - LabelPadding
	} else {
		r.Cross = vp.ContentLeft() - tickLength
	}

	vals := a.Entries
	if a.CenterLabels {
		vals = a.Centered
	}
	pos := a.toPixels(vals)

	var labels []string
	var sizes []float64
	if len(a.Entries) > 0 {
		format := a.formatter()
		for i, p := range pos {
			if !a.inBounds(p) {
				continue
			}
			text := format(a.Entries[i])
			r.Positions = append(r.Positions, p)
			labels = append(labels, text)
			sizes = append(sizes, a.measure(m, text))
		}
	}
	r.Plan = Plan(r.Positions, labels, sizes)

	labeled := make(map[int]bool, len(r.Plan.Labels))
	for _, l := range r.Plan.Labels {
		labeled[l.Index] = true
	}

	if a.OneGridLinePerUnit {
		var units []float64
		for u := int(a.Min); u <= int(a.Max)+1; u++ {
			units = append(units, float64(u)-0.5)
		}
		dist := max(1, r.Plan.LabelDistance)
		upos := a.toPixels(units)
		for i, p := range upos {
			a.addGridLine(&r, p, i == 0 || i == len(upos)-1, i%dist == 0)
		}
	} else {
		for i, p := range r.Positions {
			a.addGridLine(&r, p, i == 0 || i == len(r.Positions)-1, labeled[i])
		}
	}

	for i := range a.LimitLines {
		if mk, ok := a.limitMark(&a.LimitLines[i], m); ok {
			r.Limits = append(r.Limits, mk)
		}
	}
	return r
}

// toPixels maps axis values to pixel coordinates along the axis.
func (a *Axis) toPixels(vals []float64) []float64 {
	pts := make([]float64, 2*len(vals))
	for i, v := range vals {
		if a.Direction == Horizontal {
			pts[2*i] = v
		} else {
			pts[2*i+1] = v
		}
	}
	a.tr.PointValuesToPixel(pts)
	out := make([]float64, len(vals))
	for i := range out {
		if a.Direction == Horizontal {
			out[i] = pts[2*i]
		} else {
			out[i] = pts[2*i+1]
		}
	}
	return out
}

func (a *Axis) inBounds(p float64) bool {
	if a.Direction == Horizontal {
		return a.vp.IsInBoundsX(p)
	}
	return a.vp.IsInBoundsY(p)
}

func (a *Axis) measure(m Measurer, s string) float64 {
	if m == nil {
		return 0
	}
	w, h := m.MeasureString(s)
	if a.Direction == Horizontal {
		return w + LabelPadding
	}
	return h
}

func (a *Axis) addGridLine(r *Rendering, p float64, edge, long bool) {
	if !a.inBounds(p) {
		return
	}
	vp := a.vp
	off := vp.Offsets()
	l := GridLine{Pos: p, Edge: edge, Long: edge || long}
	if a.Direction == Horizontal {
		l.From, l.To = vp.ContentTop(), vp.ContentBottom()+tickLength
		if l.Long {
			l.To = vp.ContentBottom() + off.Bottom
		}
	} else {
		l.From, l.To = vp.ContentLeft()-tickLength, vp.ContentRight()
		if l.Long {
			l.From = vp.ContentLeft() - off.Left
		}
	}
	r.Grid = append(r.Grid, l)
}

func (a *Axis) limitMark(l *LimitLine, m Measurer) (LimitMark, bool) {
	if l.Disabled {
		return LimitMark{}, false
	}
	vp := a.vp
	p := a.toPixels([]float64{l.Value})[0]
	var h float64
	if m != nil && l.Label != "" {
		_, h = m.MeasureString(l.Label)
	}

	mk := LimitMark{Line: l}
	if a.Direction == Horizontal {
		if p < vp.ContentLeft()-l.LineWidth || p > vp.ContentRight()+l.LineWidth {
			return LimitMark{}, false
		}
		mk.X1, mk.Y1, mk.X2, mk.Y2 = p, vp.ContentTop(), p, vp.ContentBottom()

		xOff := l.LineWidth + l.XOffset
		yOff := LabelPadding + l.YOffset
		switch l.Position {
		case RightTop:
			mk.LabelX, mk.LabelY = p+xOff, vp.ContentTop()+yOff+h
		case RightBottom:
			mk.LabelX, mk.LabelY = p+xOff, vp.ContentBottom()-yOff
		case LeftTop:
			mk.LabelX, mk.LabelY, mk.AlignRight = p-xOff, vp.ContentTop()+yOff+h, true
		default:
			mk.LabelX, mk.LabelY, mk.AlignRight = p-xOff, vp.ContentBottom()-yOff, true
		}
		return mk, true
	}

	if p < vp.ContentTop()-l.LineWidth || p > vp.ContentBottom()+l.LineWidth {
		return LimitMark{}, false
	}
	mk.X1, mk.Y1, mk.X2, mk.Y2 = vp.ContentLeft(), p, vp.ContentRight(), p

	xOff := tickLength + l.XOffset
	yOff := l.LineWidth + h + l.YOffset
	switch l.Position {
	case RightTop:
		mk.LabelX, mk.LabelY, mk.AlignRight = vp.ContentRight()-xOff, p-yOff+h, true
	case RightBottom:
		mk.LabelX, mk.LabelY, mk.AlignRight = vp.ContentRight()-xOff, p+yOff, true
	case LeftTop:
		mk.LabelX, mk.LabelY = vp.ContentLeft()+xOff, p-yOff+h
	default:
		mk.LabelX, mk.LabelY = vp.ContentLeft()+xOff, p+yOff
	}
	return mk, true
}
