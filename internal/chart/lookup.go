// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"sort"
)

// NearestEntry returns the index of the entry of ds whose X is closest to x.
// If several entries share that X, the one whose Y is closest to y wins, and
// ties go to the earlier entry. It returns -1 if ds is empty.
func NearestEntry(ds DataSet, x, y float64) int {
	n := ds.EntryCount()
	if n == 0 {
		return -1
	}
	xAt := func(i int) float64 {
		if e := ds.EntryAt(i); e != nil {
			return e.X
		}
		return math.NaN()
	}

	// First entry with X >= x.
	i := sort.Search(n, func(i int) bool { return xAt(i) >= x })
	switch {
	case i == n:
		i = n - 1
	case i > 0 && x-xAt(i-1) <= xAt(i)-x:
		i--
	}

	// Walk back to the first entry at this X, then pick the closest Y.
	best := i
	bestX := xAt(i)
	for best > 0 && xAt(best-1) == bestX {
		best--
	}
	bestDist := math.Inf(1)
	for j := best; j < n && xAt(j) == bestX; j++ {
		if d := math.Abs(ds.EntryAt(j).Y - y); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}
