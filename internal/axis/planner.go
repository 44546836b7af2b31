// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import "math"

// A TickLabel is one labeled tick of a TickPlan.
type TickLabel struct {
	// Index is the index of the tick in the planned positions.
	Index    int
	Position float64
	Label    string

	// IsContainerEdge is set for the first and last ticks, which are
	// always labeled.
	IsContainerEdge bool

	// Left and Right are the pixel span the label occupies along the
	// axis, with Left <= Right.
	Left, Right float64

	// Clipped is set on edge labels that had to be shortened so the two
	// edge labels would not overlap.
	Clipped bool
}

// A TickPlan is the set of labels drawn on an axis, in tick order.
type TickPlan struct {
	Labels []TickLabel
	// LabelDistance is the number of ticks between consecutive
	// candidate labels.
	LabelDistance int
}

// Plan decides which of the pixel positions get a label, given the label text
// and the rendered size of each label along the axis.
//
// The first and last positions are container edges and are always labeled.
// The first edge label extends from its tick toward the inside of the axis,
// the last one extends backward from its tick, and every other label starts
// at its tick. Candidates are taken every LabelDistance ticks and a candidate
// is dropped if it would overlap the previous label or the last edge label.
// If the two edge labels do not fit, the gap between the edge ticks is split
// at its midpoint and both are clipped to their half. Labels never overlap.
//
// Positions must be monotonic. Descending positions, as produced by an
// inverted axis, are planned in mirror image.
func Plan(positions []float64, labels []string, widths []float64) TickPlan {
	n := len(positions)
	if n == 0 {
		return TickPlan{}
	}
	if n > 1 && positions[n-1] < positions[0] {
		mirrored := make([]float64, n)
		for i, p := range positions {
			mirrored[i] = -p
		}
		plan := plan(mirrored, labels, widths)
		for i := range plan.Labels {
			l := &plan.Labels[i]
			l.Position = positions[l.Index]
			l.Left, l.Right = -l.Right, -l.Left
		}
		return plan
	}
	return plan(positions, labels, widths)
}

func plan(pos []float64, labels []string, widths []float64) TickPlan {
	n := len(pos)
	width := func(i int) float64 {
		if i >= len(widths) || !(widths[i] > 0) {
			return 0
		}
		return widths[i]
	}
	label := func(i int) string {
		if i >= len(labels) {
			return ""
		}
		return labels[i]
	}
	mk := func(i int, left, right float64) TickLabel {
		return TickLabel{Index: i, Position: pos[i], Label: label(i), Left: left, Right: right}
	}

	first := mk(0, pos[0], pos[0]+width(0))
	first.IsContainerEdge = true
	if n == 1 {
		return TickPlan{Labels: []TickLabel{first}, LabelDistance: 1}
	}

	last := mk(n-1, pos[n-1]-width(n-1), pos[n-1])
	last.IsContainerEdge = true
	if first.Right > last.Left {
		mid := (pos[0] + pos[n-1]) / 2
		if first.Right > mid {
			first.Right, first.Clipped = mid, true
		}
		if last.Left < mid {
			last.Left, last.Clipped = mid, true
		}
	}

	spacing, maxWidth := math.Inf(1), 0.0
	for i := range n {
		if i > 0 {
			spacing = min(spacing, pos[i]-pos[i-1])
		}
		maxWidth = max(maxWidth, width(i))
	}

	out := TickPlan{Labels: make([]TickLabel, 1, n)}
	out.Labels[0] = first
	switch {
	case !(spacing > 0):
		// Coincident ticks. Only the edges can be labeled.
		out.LabelDistance = n - 1
	case spacing < maxWidth:
		out.LabelDistance = max(1, int(math.Ceil(maxWidth/spacing)))
	default:
		out.LabelDistance = 1
	}

	if spacing > 0 {
		prevRight := first.Right
		for i := out.LabelDistance; i < n-1; i += out.LabelDistance {
			l := mk(i, pos[i], pos[i]+width(i))
			if l.Left < prevRight || l.Right >= last.Left {
				continue
			}
			out.Labels = append(out.Labels, l)
			prevRight = l.Right
		}
	}
	out.Labels = append(out.Labels, last)
	return out
}
