// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"
	"image"
	"io"

	"github.com/aclements/benchbar/internal/buffer"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Raster is a Canvas backed by an in-memory image.
type Raster struct {
	dc         *gg.Context
	font       *text.FontSource
	background gg.RGBA

	// err is the first drawing error.
	err error
}

// NewRaster returns a width x height raster cleared to background that draws
// text in Go Regular at fontSize pixels.
func NewRaster(width, height int, fontSize float64, background gg.RGBA) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bad image size %dx%d", width, height)
	}
	font, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	dc := gg.NewContext(width, height)
	dc.SetFont(font.Face(fontSize))
	r := &Raster{dc: dc, font: font, background: background}
	r.Clear()
	return r, nil
}

// Clear erases everything drawn so far and forgets drawing errors.
func (r *Raster) Clear() {
	r.dc.ClearWithColor(r.background)
	r.err = nil
}

func (r *Raster) MeasureString(s string) (w, h float64) {
	return r.dc.MeasureString(s)
}

func (r *Raster) setColor(c gg.RGBA) {
	r.dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func (r *Raster) check(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// flush finishes pending drawing and returns the first drawing error.
func (r *Raster) flush() error {
	r.check(r.dc.FlushGPU())
	return r.err
}

func (r *Raster) FillRect(q buffer.Quad, c gg.RGBA) {
	top, bottom := min(q.Top, q.Bottom), max(q.Top, q.Bottom)
	r.setColor(c)
	r.dc.DrawRectangle(q.Left, top, q.Right-q.Left, bottom-top)
	r.check(r.dc.Fill())
}

func (r *Raster) Line(x1, y1, x2, y2, width float64, c gg.RGBA) {
	r.setColor(c)
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.check(r.dc.Stroke())
}

func (r *Raster) Text(s string, x, y, ax float64, c gg.RGBA) {
	if s == "" {
		return
	}
	r.setColor(c)
	r.dc.DrawStringAnchored(s, x, y, ax, 0)
}

// Image returns the current contents of r.
func (r *Raster) Image() image.Image {
	r.check(r.dc.FlushGPU())
	return r.dc.Image()
}

// EncodePNG writes the current contents of r as a PNG. It reports the first
// error drawing r, if any.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := r.flush(); err != nil {
		return err
	}
	return r.dc.EncodePNG(w)
}

// SavePNG writes the current contents of r to a PNG file. Like EncodePNG,
// it reports the first error drawing r.
func (r *Raster) SavePNG(path string) error {
	if err := r.flush(); err != nil {
		return err
	}
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Close releases the resources of r.
func (r *Raster) Close() error {
	err := r.dc.Close()
	if ferr := r.font.Close(); err == nil {
		err = ferr
	}
	return err
}
