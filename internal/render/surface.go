// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/aclements/benchbar/internal/buffer"
	"github.com/gogpu/gg"
)

// DrawBar asks a surface to fill one bar or bar segment.
type DrawBar struct {
	DataSet int
	// Index is the position of the quad in the data set's geometry.
	Index int
	Quad  buffer.Quad

	ColorIndex int
	Color      gg.RGBA
}

// DrawShadow asks a surface to fill the full-height shadow behind a bar.
type DrawShadow struct {
	DataSet int
	Entry   int
	Quad    buffer.Quad
}

// DrawValue asks a surface to draw a value label, horizontally centered on X
// with its baseline at Y.
type DrawValue struct {
	DataSet int
	Entry   int
	// Stack is the segment the label belongs to, or -1 for a plain bar.
	Stack int

	Value float64
	Text  string
	X, Y  float64

	// Icon is the entry's icon, if icons are enabled, drawn centered at
	// IconX, IconY.
	Icon         any
	IconX, IconY float64
}

// A Surface consumes the bars of a render pass. The pipeline never draws
// anything itself.
type Surface interface {
	DrawBar(DrawBar)
}

// A ShadowSurface also draws bar shadows.
type ShadowSurface interface {
	Surface
	DrawShadow(DrawShadow)
}

// A ValueSurface also draws value labels.
type ValueSurface interface {
	Surface
	DrawValue(DrawValue)
}

// Recorder is a surface that keeps every command it receives.
type Recorder struct {
	Bars    []DrawBar
	Shadows []DrawShadow
	Values  []DrawValue
}

func (r *Recorder) DrawBar(b DrawBar)       { r.Bars = append(r.Bars, b) }
func (r *Recorder) DrawShadow(s DrawShadow) { r.Shadows = append(r.Shadows, s) }
func (r *Recorder) DrawValue(v DrawValue)   { r.Values = append(r.Values, v) }

// Reset empties r, keeping its storage.
func (r *Recorder) Reset() {
	r.Bars = r.Bars[:0]
	r.Shadows = r.Shadows[:0]
	r.Values = r.Values[:0]
}
