// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/aclements/benchbar/internal/chart"
)

// DrawValues draws a label with the value of every revealed bar of every
// visible data set. Stacked entries get one label per segment. It does
// nothing unless values are enabled and s is a ValueSurface.
func (r *Renderer) DrawValues(s Surface, phase chart.Phase) {
	vs, ok := s.(ValueSurface)
	if !r.opts.DrawValues || !ok {
		return
	}
	phase = phase.Clamp()
	format := r.opts.formatter()

	plus := r.opts.ValueOffset
	if plus == 0 {
		plus = 4.5
	}
	height := r.opts.ValueTextHeight

	for i, ds := range r.data.Sets {
		if !ds.IsVisible() {
			continue
		}
		posOffset, negOffset := height+plus, -plus
		if r.opts.ValueAboveBar {
			posOffset, negOffset = -plus, height+plus
		}
		if r.inverted[ds.AxisDependency()] {
			posOffset = -posOffset - height
			negOffset = -negOffset - height
		}

		tr := r.trans[ds.AxisDependency()]
		count := phase.Revealed(ds.EntryCount())
	entries:
		for j := range count {
			e := ds.EntryAt(j)
			if e == nil || e.RangeCount() == 0 {
				continue
			}
			segments := 1
			if ds.IsStacked() {
				segments = e.RangeCount()
			}
			for k := range segments {
				rg := e.RangeAt(k)
				value := e.Y
				stack := -1
				if ds.IsStacked() {
					value = rg.To - rg.From
					if rg.From < 0 && rg.To <= 0 {
						value = -value
					}
					stack = k
				}

				// The label sits at the growing end of the bar.
				end, offset := rg.To, posOffset
				if value < 0 {
					end, offset = rg.From, negOffset
				}
				p := tr.PixelForValues(e.X, end*phase.Y)

				if !r.vp.IsInBoundsRight(p.X) {
					break entries
				}
				if !r.vp.IsInBoundsY(p.Y) || !r.vp.IsInBoundsLeft(p.X) {
					continue
				}

				dv := DrawValue{
					DataSet: i,
					Entry:   j,
					Stack:   stack,
					Value:   value,
					Text:    format(value),
					X:       p.X,
					Y:       p.Y + offset,
				}
				if r.opts.DrawIcons && e.Icon != nil {
					dv.Icon = e.Icon
					dv.IconX = p.X + r.opts.IconOffset.X
					dv.IconY = dv.Y + r.opts.IconOffset.Y
				}
				vs.DrawValue(dv)
			}
		}
	}
}
