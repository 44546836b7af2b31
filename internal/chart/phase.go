// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "math"

// Phase is the progress of the chart's animation. X controls how many entries
// are revealed and Y scales the height of the bars. Both are in [0, 1].
type Phase struct {
	X, Y float64
}

// FullPhase is a completed animation.
var FullPhase = Phase{X: 1, Y: 1}

// Clamp returns p with both components limited to [0, 1]. NaN becomes 0.
func (p Phase) Clamp() Phase {
	return Phase{X: clamp01(p.X), Y: clamp01(p.Y)}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return min(v, 1)
}

// Revealed returns how many of n entries are visible at p: floor(n * p.X).
func (p Phase) Revealed(n int) int {
	return min(int(math.Floor(float64(n)*p.X)), n)
}
