// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import "testing"

func testViewport() *Viewport {
	return New(200, 100, Offsets{Left: 10, Top: 5, Right: 20, Bottom: 15})
}

func TestContentRect(t *testing.T) {
	v := testViewport()
	if v.ContentLeft() != 10 || v.ContentTop() != 5 || v.ContentRight() != 180 || v.ContentBottom() != 85 {
		t.Errorf("content rect = %v %v %v %v", v.ContentLeft(), v.ContentTop(), v.ContentRight(), v.ContentBottom())
	}
	if v.ContentWidth() != 170 || v.ContentHeight() != 80 {
		t.Errorf("content size = %v x %v", v.ContentWidth(), v.ContentHeight())
	}
	if c := v.ContentCenter(); c.X != 95 || c.Y != 45 {
		t.Errorf("center = %v", c)
	}
}

func TestBounds(t *testing.T) {
	v := testViewport()
	for _, test := range []struct {
		name string
		f    func(float64) bool
		x    float64
		want bool
	}{
		{"left inside", v.IsInBoundsLeft, 10, true},
		{"left epsilon", v.IsInBoundsLeft, 9, true},
		{"left outside", v.IsInBoundsLeft, 8.9, false},
		{"right inside", v.IsInBoundsRight, 180, true},
		{"right epsilon", v.IsInBoundsRight, 181, true},
		{"right truncated", v.IsInBoundsRight, 181.004, true},
		{"right outside", v.IsInBoundsRight, 181.5, false},
		{"top", v.IsInBoundsTop, 5, true},
		{"above top", v.IsInBoundsTop, 4.99, false},
		{"bottom", v.IsInBoundsBottom, 85.009, true},
		{"below bottom", v.IsInBoundsBottom, 85.5, false},
		{"x", v.IsInBoundsX, 100, true},
		{"y", v.IsInBoundsY, 90, false},
	} {
		if got := test.f(test.x); got != test.want {
			t.Errorf("%s(%v) = %v, want %v", test.name, test.x, got, test.want)
		}
	}
}

func TestClassify(t *testing.T) {
	v := testViewport()
	for _, test := range []struct {
		left, right float64
		want        Cull
	}{
		{0, 5, CullSkip},
		{0, 20, CullDraw},
		{50, 60, CullDraw},
		{175, 195, CullDraw},
		{190, 200, CullStop},
	} {
		if got := v.Classify(test.left, test.right); got != test.want {
			t.Errorf("Classify(%v, %v) = %v, want %v", test.left, test.right, got, test.want)
		}
	}
}

func TestZoomLimits(t *testing.T) {
	v := testViewport()
	if !v.IsFullyZoomedOutX() {
		t.Fatal("new viewport is zoomed in")
	}
	v.Zoom(0.5, 0.5, 50, 50)
	if v.ScaleX() != 1 || v.ScaleY() != 1 {
		t.Errorf("zoomed out past full range: %v, %v", v.ScaleX(), v.ScaleY())
	}

	// Zooming 2x around the content center keeps the center fixed.
	v.Zoom(2, 1, v.ContentCenter().X, 0)
	if v.IsFullyZoomedOutX() {
		t.Fatal("not zoomed in")
	}
	m := v.Touch()
	if got := m.A*85 + m.C; got != 85 {
		t.Errorf("center maps to %v, want 85", got)
	}

	// Panning is limited to the scaled content.
	v.Translate(-1000, 0)
	if got := v.Touch().C; got != -170 {
		t.Errorf("transX = %v, want -170", got)
	}
	v.Translate(5000, 0)
	if got := v.Touch().C; got != 0 {
		t.Errorf("transX = %v, want 0", got)
	}

	v.ResetZoom()
	if !v.Touch().IsIdentity() {
		t.Errorf("reset touch matrix = %v", v.Touch())
	}
}
