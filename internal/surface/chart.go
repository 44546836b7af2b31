// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"github.com/aclements/benchbar/internal/axis"
	"github.com/aclements/benchbar/internal/chart"
	"github.com/aclements/benchbar/internal/render"
	"github.com/aclements/benchbar/internal/viewport"
)

// Chart is everything drawn in a frame.
type Chart struct {
	Viewport *viewport.Viewport
	Renderer *render.Renderer
	// Axes must already be computed.
	Axes []*axis.Axis

	Highlights []render.HighlightRequest
	Legend     []LegendItem
	Title      string
}

// Draw draws one frame of c at phase: axes first, then shadows, bars, value
// labels, highlights, legend and title. Bars of data sets that cannot be
// drawn are skipped and their errors returned.
func (c *Chart) Draw(p *Painter, phase chart.Phase) error {
	for _, a := range c.Axes {
		p.DrawAxis(a.Direction, a.Render(p))
	}
	c.Renderer.DrawShadows(p, phase)
	err := c.Renderer.DrawData(p, phase)
	c.Renderer.DrawValues(p, phase)
	for _, req := range c.Highlights {
		if h, ok := c.Renderer.Highlight(req, phase); ok {
			p.DrawHighlight(h)
		}
	}

	vp := c.Viewport
	if len(c.Legend) > 1 {
		p.DrawLegend(c.Legend, vp.ContentRight(), vp.ContentTop())
	}
	if c.Title != "" {
		p.Text(c.Title, vp.ContentLeft(), vp.ContentTop()-4, 0, p.Style.Text)
	}
	return err
}
