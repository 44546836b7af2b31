// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform maps chart values to pixels and back.
//
// A Transformer composes three affine matrices: the value matrix, which maps
// the axis ranges onto the content rectangle; the touch matrix, which applies
// the viewport's zoom and pan; and the offset matrix, which moves the result
// to the content rectangle's position in the chart and mirrors it for
// inverted axes.
package transform

import (
	"github.com/aclements/benchbar/internal/buffer"
	"github.com/aclements/benchbar/internal/viewport"
	"github.com/gogpu/gg"
)

// A Transformer maps between data space and pixel space for one pair of
// axes. It is not safe for concurrent use.
type Transformer struct {
	vp *viewport.Viewport

	valueToPx gg.Matrix
	offset    gg.Matrix

	// Inverses of valueToPx and offset. The product is never inverted:
	// gg.Matrix.Invert gives up below a determinant of 1e-10.
	pxToValue gg.Matrix
	offsetInv gg.Matrix
}

// New returns a transformer for vp with identity matrices. Call
// PrepareMatrixValuePx and PrepareMatrixOffset before use.
func New(vp *viewport.Viewport) *Transformer {
	return &Transformer{
		vp:        vp,
		valueToPx: gg.Identity(),
		offset:    gg.Identity(),
		pxToValue: gg.Identity(),
		offsetInv: gg.Identity(),
	}
}

// PrepareMatrixValuePx maps the X range [xMin, xMin+deltaX] and Y range
// [yMin, yMin+deltaY] onto the content rectangle. Larger Y values map to
// smaller pixel rows. Zero deltas are treated as 1.
func (t *Transformer) PrepareMatrixValuePx(xMin, deltaX, deltaY, yMin float64) {
	if deltaX == 0 {
		deltaX = 1
	}
	if deltaY == 0 {
		deltaY = 1
	}
	scaleX := t.vp.ContentWidth() / deltaX
	scaleY := t.vp.ContentHeight() / deltaY
	t.valueToPx = gg.Scale(scaleX, -scaleY).Multiply(gg.Translate(-xMin, -yMin))
	if scaleX == 0 || scaleY == 0 {
		// Empty content rectangle: every pixel is the minimum.
		t.pxToValue = gg.Translate(xMin, yMin).Multiply(gg.Scale(0, 0))
		return
	}
	t.pxToValue = gg.Translate(xMin, yMin).Multiply(gg.Scale(1/scaleX, -1/scaleY))
}

// PrepareMatrixOffset positions the content in the chart. If inverted, the
// vertical direction is mirrored so that larger values map to larger rows.
func (t *Transformer) PrepareMatrixOffset(inverted bool) {
	off := t.vp.Offsets()
	if !inverted {
		t.offset = gg.Translate(off.Left, t.vp.ChartHeight()-off.Bottom)
		t.offsetInv = gg.Translate(-off.Left, off.Bottom-t.vp.ChartHeight())
		return
	}
	t.offset = gg.Scale(1, -1).Multiply(gg.Translate(off.Left, -off.Top))
	t.offsetInv = gg.Translate(-off.Left, off.Top).Multiply(gg.Scale(1, -1))
}

// Matrix returns the full value-to-pixel matrix.
func (t *Transformer) Matrix() gg.Matrix {
	return t.offset.Multiply(t.vp.Touch()).Multiply(t.valueToPx)
}

// InverseMatrix returns the full pixel-to-value matrix.
func (t *Transformer) InverseMatrix() gg.Matrix {
	return t.pxToValue.Multiply(t.vp.TouchInverse()).Multiply(t.offsetInv)
}

// PointValuesToPixel maps pts, a sequence of interleaved x, y values, to
// pixels in place. A trailing odd value is left alone.
func (t *Transformer) PointValuesToPixel(pts []float64) {
	m := t.Matrix()
	for i := 0; i+1 < len(pts); i += 2 {
		p := m.TransformPoint(gg.Pt(pts[i], pts[i+1]))
		pts[i], pts[i+1] = p.X, p.Y
	}
}

// PixelsToValue is the inverse of PointValuesToPixel.
func (t *Transformer) PixelsToValue(pts []float64) {
	m := t.InverseMatrix()
	for i := 0; i+1 < len(pts); i += 2 {
		p := m.TransformPoint(gg.Pt(pts[i], pts[i+1]))
		pts[i], pts[i+1] = p.X, p.Y
	}
}

// RectValueToPixel maps all four edges of q to pixels.
func (t *Transformer) RectValueToPixel(q *buffer.Quad) {
	m := t.Matrix()
	lt := m.TransformPoint(gg.Pt(q.Left, q.Top))
	rb := m.TransformPoint(gg.Pt(q.Right, q.Bottom))
	q.Left, q.Top, q.Right, q.Bottom = lt.X, lt.Y, rb.X, rb.Y
}

// RectToPixelPhase scales the vertical extent of q toward zero by phaseY and
// then maps it to pixels. It matches the geometry of a bar that is still
// growing.
func (t *Transformer) RectToPixelPhase(q *buffer.Quad, phaseY float64) {
	q.Top *= phaseY
	q.Bottom *= phaseY
	t.RectValueToPixel(q)
}

// PixelForValues returns the pixel that (x, y) maps to.
func (t *Transformer) PixelForValues(x, y float64) gg.Point {
	return t.Matrix().TransformPoint(gg.Pt(x, y))
}

// ValuesByTouchPoint returns the value at pixel (px, py).
func (t *Transformer) ValuesByTouchPoint(px, py float64) gg.Point {
	return t.InverseMatrix().TransformPoint(gg.Pt(px, py))
}

// Zoom multiplies the viewport's zoom by (scaleX, scaleY) around the pixel
// (cx, cy), which keeps showing the same value.
func (t *Transformer) Zoom(scaleX, scaleY, cx, cy float64) {
	p := t.offsetInv.TransformPoint(gg.Pt(cx, cy))
	t.vp.ZoomTouch(scaleX, scaleY, p.X, p.Y)
}

// Translate pans the viewport's content by (dx, dy) pixels.
func (t *Transformer) Translate(dx, dy float64) {
	d := t.offsetInv.TransformVector(gg.Pt(dx, dy))
	t.vp.Translate(d.X, d.Y)
}
