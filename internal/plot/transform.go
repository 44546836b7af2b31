// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"slices"

	"golang.org/x/perf/benchmath"
)

// summaryOf summarizes aesthetic a of pts, which must be continuous.
func summaryOf(pts []point, a Aes, confidence float64) benchmath.Summary {
	xs := make([]float64, len(pts))
	for i, pt := range pts {
		v := pt.Get(a)
		if v.kinds&kindContinuous == 0 {
			panic("non-continuous " + a.Name())
		}
		xs[i] = v.val
	}
	sample := benchmath.NewSample(xs, &benchmath.DefaultThresholds)
	return benchmath.AssumeNothing.Summary(sample, confidence)
}

// summarize replaces every group of points that differ only in aesthetic a
// by one point holding the group's summary, which becomes a bar's height and
// interval. Points that are already summaries pass through.
func summarize(pts []point, a Aes, confidence float64) ([]point, error) {
	kinds := pointsKinds(pts, a)
	switch {
	case kinds&kindSummary != 0:
		return pts, nil
	case len(pts) > 0 && kinds&kindContinuous == 0:
		return nil, fmt.Errorf("summarizing: %s data must be numeric", a.Name())
	}

	groups, keys := groupBy(pts, func(pt point) point {
		pt.Set(a, value{})
		return pt
	})
	// One backing array for all summaries.
	summaries := make([]benchmath.Summary, len(keys))
	out := make([]point, len(keys))
	for i, k := range keys {
		summaries[i] = summaryOf(groups[k], a, confidence)
		out[i] = groups[k][0]
		out[i].Set(a, value{
			kinds:   kindContinuous | kindSummary | kinds&kindRatio,
			val:     summaries[i].Center,
			summary: &summaries[i],
		})
	}
	return out, nil
}

// TransformCompare turns the bars of every color after the first into ratios
// against the bar of the first color in the same slot, and drops the first
// color. Ratios keep their interval, scaled by the baseline.
func (p *Plot) TransformCompare() error {
	if p.dvAes == aesNone {
		return fmt.Errorf("compare: no dimension shows .value")
	}
	if p.aes.Get(AesColor).iv == nil {
		return fmt.Errorf("compare: -color is not set, so there is nothing to compare against")
	}
	pts, err := compare(p.points, AesColor, p.dvAes, p.confidence)
	if err != nil {
		return err
	}
	p.points = pts
	return nil
}

// compare divides the aesRatio summary of each aesCompare value by that of
// the smallest aesCompare value among points that agree on every other
// aesthetic. Groups with no baseline, or a zero baseline, are dropped.
func compare(pts []point, aesCompare, aesRatio Aes, confidence float64) ([]point, error) {
	if len(pts) == 0 {
		return nil, nil
	}
	if pointsKinds(pts, aesRatio)&kindContinuous == 0 {
		return nil, fmt.Errorf("compare: %s data must be numeric", aesRatio.Name())
	}

	// Sorting first keeps every group below in aesCompare order.
	slices.SortStableFunc(pts, func(a, b point) int {
		return a.Get(aesCompare).compare(b.Get(aesCompare))
	})
	base := pts[0].Get(aesCompare)

	slots, slotKeys := groupBy(pts, func(pt point) point {
		pt.Set(aesCompare, value{})
		pt.Set(aesRatio, value{})
		return pt
	})
	var out []point
	for _, k := range slotKeys {
		slot := slots[k]
		if slot[0].Get(aesCompare) != base {
			continue
		}
		bars, barKeys := groupBy(slot, func(pt point) value {
			return pt.Get(aesCompare)
		})
		denom := summaryOf(bars[base], aesRatio, confidence).Center
		if denom == 0 {
			continue
		}
		for _, bk := range barKeys[1:] {
			s := summaryOf(bars[bk], aesRatio, confidence)
			ratio := &benchmath.Summary{
				Center:     s.Center / denom,
				Lo:         s.Lo / denom,
				Hi:         s.Hi / denom,
				Confidence: s.Confidence,
			}
			pt := bars[bk][0]
			bk.kinds |= kindRatio
			bk.denom = base.key
			pt.Set(aesCompare, bk)
			pt.Set(aesRatio, value{
				kinds:   kindContinuous | kindSummary | kindRatio,
				val:     ratio.Center,
				summary: ratio,
			})
			out = append(out, pt)
		}
	}
	return out, nil
}
