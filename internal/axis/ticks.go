// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// decimalTicker places ticks at n*10^⌊l/2⌋ on even levels and at
// 5n*10^⌊l/2⌋ on odd levels, the same levels as scale.Linear, but refuses
// levels finer than a granularity.
type decimalTicker struct {
	lin         scale.Linear
	granularity float64
}

func levelSpacing(level int) float64 {
	exp := math.Floor(float64(level) / 2)
	s := math.Pow(10, exp)
	if level%2 != 0 {
		s *= 5
	}
	return s
}

func (t decimalTicker) CountTicks(level int) int {
	if t.granularity > 0 && levelSpacing(level) < t.granularity {
		return math.MaxInt
	}
	return t.lin.CountTicks(level)
}

func (t decimalTicker) TicksAtLevel(level int) interface{} {
	return t.lin.TicksAtLevel(level)
}

// niceTicks returns at most count tick values in [lo, hi] at multiples of a
// nice interval no finer than granularity, and that interval.
func niceTicks(lo, hi float64, count int, granularity float64) ([]float64, float64) {
	t := decimalTicker{scale.Linear{Min: lo, Max: hi}, granularity}
	guess := 2 * int(math.Log10(hi-lo))
	opts := scale.TickOptions{Max: count}
	level, ok := opts.FindLevel(t, guess)
	if !ok {
		return nil, 0
	}
	return t.TicksAtLevel(level).([]float64), levelSpacing(level)
}
