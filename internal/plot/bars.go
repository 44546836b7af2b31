// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"

	"github.com/aclements/benchbar/internal/chart"
	"github.com/gogpu/gg"
)

// BarOptions controls how points become bars.
type BarOptions struct {
	// Palette colors the data sets, or the segments of stacked bars.
	Palette []gg.RGBA

	// BarWidth is the width of a bar in X slots when there is one color.
	BarWidth float64
	// GroupSpace and BarSpace are the gaps, in X slots, around each group
	// of side-by-side bars and between the bars of a group.
	GroupSpace, BarSpace float64
}

// Bars is bar chart data built from a Plot.
type Bars struct {
	// Page is the value of the page aesthetic shared by these bars.
	Page string

	Data *chart.BarData

	// Categories are the labels of the X slots. Slot i is centered on
	// X = i.
	Categories []string
	// Stacks are the labels of the stack segments, if stacked.
	Stacks []string

	XTitle, YTitle string
}

// Bars summarizes the points of p and lays them out as bar charts, one per
// distinct value of the page aesthetic. Within a chart there is one data set
// per color, one X slot per distinct X value and, if the stack aesthetic is
// bound, one segment per distinct stack value. Every data set has an entry in
// every slot so the sets can be grouped; missing points are zero.
//
// Each entry's Data is a chart.Description, or a []chart.Description for
// stacked entries, naming the slot, the value and its confidence interval.
func (p *Plot) Bars(opts BarOptions) ([]*Bars, error) {
	if len(p.points) == 0 {
		return nil, fmt.Errorf("no data")
	}
	if p.dvAes == aesNone {
		return nil, fmt.Errorf("no dimension shows .value")
	}
	if len(opts.Palette) == 0 {
		opts.Palette = []gg.RGBA{gg.Hex("#8cc8ff")}
	}

	pts, err := summarize(p.points, AesY, p.confidence)
	if err != nil {
		return nil, err
	}
	pageScale, pages := ordScale(pts, AesPage)
	byPage := make([][]point, len(pages))
	for _, pt := range pts {
		i := pageScale(pt)
		byPage[i] = append(byPage[i], pt)
	}
	out := make([]*Bars, len(pages))
	for i, pts := range byPage {
		b, err := p.bars(pts, opts)
		if err != nil {
			if len(pages) > 1 {
				err = fmt.Errorf("page %s: %w", pages[i].StringValues(), err)
			}
			return nil, err
		}
		b.Page = pages[i].StringValues()
		out[i] = b
	}
	return out, nil
}

func (p *Plot) bars(pts []point, opts BarOptions) (*Bars, error) {
	yScale, yLabel, err := p.yScale(pts)
	if err != nil {
		return nil, err
	}
	xScale, xs := ordScale(pts, AesX)
	colorScale, colors := ordScale(pts, AesColor)
	stackScale, stacks := ordScale(pts, AesStack)

	type cell struct {
		pt point
		ok bool
	}
	nx, ns := len(xs), len(stacks)
	cells := make([]cell, len(colors)*nx*ns)
	for _, pt := range pts {
		c := &cells[(colorScale(pt)*nx+xScale(pt))*ns+stackScale(pt)]
		if c.ok {
			return nil, fmt.Errorf("more than one value for %s", pt.String())
		}
		*c = cell{pt, true}
	}

	b := &Bars{
		Data:   chart.NewBarData(),
		XTitle: p.aes.Get(AesX).String(),
		YTitle: yLabel,
	}
	for _, x := range xs {
		b.Categories = append(b.Categories, x.StringValues())
	}
	if ns > 1 {
		for _, s := range stacks {
			b.Stacks = append(b.Stacks, s.StringValues())
		}
	}

	describe := func(pt point, slot string) chart.Description {
		y := pt.Get(AesY)
		d := chart.Description{
			First:  slot,
			Second: fmt.Sprintf("%.4g %s", yScale(y.val), yLabel),
		}
		if s := y.summary; s != nil && !math.IsInf(s.Lo, 0) && !math.IsInf(s.Hi, 0) {
			d.Third = fmt.Sprintf("[%.4g, %.4g] @ %g%%", yScale(s.Lo), yScale(s.Hi), s.Confidence*100)
		}
		return d
	}

	for ci, color := range colors {
		entries := make([]chart.Entry, nx)
		for xi := range nx {
			row := cells[(ci*nx+xi)*ns:][:ns]
			if ns == 1 {
				var e chart.Entry
				if row[0].ok {
					e = chart.NewEntry(float64(xi), yScale(row[0].pt.Get(AesY).val))
					e.Data = describe(row[0].pt, b.Categories[xi])
				} else {
					e = chart.NewEntry(float64(xi), 0)
				}
				entries[xi] = e
				continue
			}
			segs := make([]float64, ns)
			descs := make([]chart.Description, ns)
			for si, c := range row {
				if c.ok {
					segs[si] = yScale(c.pt.Get(AesY).val)
					descs[si] = describe(c.pt, b.Categories[xi]+" / "+b.Stacks[si])
				}
			}
			e := chart.NewStackedEntry(float64(xi), segs...)
			e.Data = descs
			entries[xi] = e
		}

		ds := chart.NewBarDataSet(color.StringValues(), entries)
		if ns > 1 {
			pal := make([]gg.RGBA, ns)
			for si := range pal {
				pal[si] = opts.Palette[si%len(opts.Palette)]
			}
			ds.SetColors(pal...)
		} else {
			ds.SetColors(opts.Palette[ci%len(opts.Palette)])
		}
		b.Data.Sets = append(b.Data.Sets, ds)
	}

	if opts.BarWidth > 0 {
		b.Data.BarWidth = opts.BarWidth
	}
	if err := b.Data.GroupSlots(opts.GroupSpace, opts.BarSpace); err != nil {
		return nil, err
	}
	return b, nil
}
