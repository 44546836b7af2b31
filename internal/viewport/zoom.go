// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import "github.com/gogpu/gg"

// The zoom state is kept in the coordinate space between the value matrix and
// the offset matrix of a transformer: X runs over [0, ContentWidth] and Y over
// [-ContentHeight, 0] when fully zoomed out.

// Touch returns the zoom and pan matrix.
func (v *Viewport) Touch() gg.Matrix {
	return gg.Matrix{
		A: v.scaleX, C: v.transX,
		E: v.scaleY, F: v.transY,
	}
}

// TouchInverse returns the inverse of Touch.
func (v *Viewport) TouchInverse() gg.Matrix {
	return gg.Scale(1/v.scaleX, 1/v.scaleY).Multiply(gg.Translate(-v.transX, -v.transY))
}

func (v *Viewport) ScaleX() float64 { return v.scaleX }
func (v *Viewport) ScaleY() float64 { return v.scaleY }

// IsFullyZoomedOutX reports whether the whole X range is visible.
func (v *Viewport) IsFullyZoomedOutX() bool {
	return v.scaleX <= 1
}

// IsFullyZoomedOutY reports whether the whole Y range is visible.
func (v *Viewport) IsFullyZoomedOutY() bool {
	return v.scaleY <= 1
}

// Zoom multiplies the current zoom by (scaleX, scaleY) around the chart pixel
// (cx, cy) of a chart whose Y axis is not inverted. Transformer.Zoom handles
// both orientations. The result never zooms out beyond the full data range.
func (v *Viewport) Zoom(scaleX, scaleY, cx, cy float64) {
	v.ZoomTouch(scaleX, scaleY, cx-v.ContentLeft(), cy-v.ContentBottom())
}

// ZoomTouch is like Zoom, but the center (tx, ty) is in zoom coordinates.
func (v *Viewport) ZoomTouch(scaleX, scaleY, tx, ty float64) {
	v.transX = tx - (tx-v.transX)*scaleX
	v.transY = ty - (ty-v.transY)*scaleY
	v.scaleX *= scaleX
	v.scaleY *= scaleY
	v.limit()
}

// Translate pans the content by (dx, dy) in zoom coordinates, which are
// pixels for a chart whose Y axis is not inverted.
func (v *Viewport) Translate(dx, dy float64) {
	v.transX += dx
	v.transY += dy
	v.limit()
}

// ResetZoom shows the full data range.
func (v *Viewport) ResetZoom() {
	v.scaleX, v.scaleY = 1, 1
	v.transX, v.transY = 0, 0
}

// limit keeps the scaled content covering the content rectangle.
func (v *Viewport) limit() {
	v.scaleX = max(v.scaleX, 1)
	v.scaleY = max(v.scaleY, 1)

	maxTransX := -v.ContentWidth() * (v.scaleX - 1)
	v.transX = min(max(v.transX, maxTransX), 0)

	maxTransY := v.ContentHeight() * (v.scaleY - 1)
	v.transY = max(min(v.transY, maxTransY), 0)
}
