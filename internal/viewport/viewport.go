// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewport describes the pixel area a chart is drawn into and decides
// which geometry is visible in it.
package viewport

import (
	"math"

	"github.com/gogpu/gg"
)

// Offsets is the space reserved around the content area, in pixels, for
// axis labels and annotations.
type Offsets struct {
	Left, Top, Right, Bottom float64
}

// A Viewport is a chart of a given pixel size whose content rectangle is
// inset by offsets. It also carries the zoom and pan state applied on top of
// the data-to-pixel mapping.
type Viewport struct {
	width, height float64
	offsets       Offsets

	scaleX, scaleY float64
	transX, transY float64
}

// New returns a viewport for a chart of width x height pixels.
func New(width, height float64, offsets Offsets) *Viewport {
	return &Viewport{width: width, height: height, offsets: offsets, scaleX: 1, scaleY: 1}
}

// SetDimensions changes the chart size. The zoom state is kept, but limited
// to the new content rectangle.
func (v *Viewport) SetDimensions(width, height float64) {
	v.width, v.height = width, height
	v.limit()
}

// SetOffsets changes the space reserved around the content rectangle.
func (v *Viewport) SetOffsets(o Offsets) {
	v.offsets = o
	v.limit()
}

func (v *Viewport) ChartWidth() float64  { return v.width }
func (v *Viewport) ChartHeight() float64 { return v.height }
func (v *Viewport) Offsets() Offsets     { return v.offsets }

func (v *Viewport) ContentLeft() float64   { return v.offsets.Left }
func (v *Viewport) ContentTop() float64    { return v.offsets.Top }
func (v *Viewport) ContentRight() float64  { return v.width - v.offsets.Right }
func (v *Viewport) ContentBottom() float64 { return v.height - v.offsets.Bottom }

func (v *Viewport) ContentWidth() float64 {
	return max(v.ContentRight()-v.ContentLeft(), 0)
}

func (v *Viewport) ContentHeight() float64 {
	return max(v.ContentBottom()-v.ContentTop(), 0)
}

// ContentCenter returns the center of the content rectangle.
func (v *Viewport) ContentCenter() gg.Point {
	return gg.Pt((v.ContentLeft()+v.ContentRight())/2, (v.ContentTop()+v.ContentBottom())/2)
}

// trunc2 truncates x to a hundredth of a pixel so that values a rounding error
// past an edge still count as on it.
func trunc2(x float64) float64 {
	return math.Trunc(x*100) / 100
}

// IsInBoundsLeft reports whether x is not left of the content rectangle,
// allowing one pixel for anti-aliased edges.
func (v *Viewport) IsInBoundsLeft(x float64) bool {
	return v.ContentLeft() <= x+1
}

// IsInBoundsRight reports whether x is not right of the content rectangle,
// allowing one pixel for anti-aliased edges.
func (v *Viewport) IsInBoundsRight(x float64) bool {
	return trunc2(x)-1 <= v.ContentRight()
}

func (v *Viewport) IsInBoundsTop(y float64) bool {
	return v.ContentTop() <= y
}

func (v *Viewport) IsInBoundsBottom(y float64) bool {
	return trunc2(y) <= v.ContentBottom()
}

func (v *Viewport) IsInBoundsX(x float64) bool {
	return v.IsInBoundsLeft(x) && v.IsInBoundsRight(x)
}

func (v *Viewport) IsInBoundsY(y float64) bool {
	return v.IsInBoundsTop(y) && v.IsInBoundsBottom(y)
}

// Cull is the verdict on one quad of a left-to-right scan.
type Cull int

const (
	// CullDraw means the quad overlaps the content rectangle.
	CullDraw Cull = iota
	// CullSkip means the quad is entirely left of the content rectangle.
	// Later quads may still be visible.
	CullSkip
	// CullStop means the quad starts right of the content rectangle. When
	// quads are sorted by left edge, so do all later quads.
	CullStop
)

// Classify returns the verdict for a quad spanning [left, right] in pixels.
func (v *Viewport) Classify(left, right float64) Cull {
	if !v.IsInBoundsLeft(right) {
		return CullSkip
	}
	if !v.IsInBoundsRight(left) {
		return CullStop
	}
	return CullDraw
}
