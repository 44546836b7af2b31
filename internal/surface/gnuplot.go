// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"strconv"
	"unicode/utf8"

	"github.com/aclements/benchbar/internal/buffer"
	"github.com/gogpu/gg"
)

// Gnuplot is a Canvas that emits gnuplot code. Each primitive becomes a
// gnuplot object, arrow or label placed in a coordinate system that matches
// chart pixels.
type Gnuplot struct {
	width, height int
	fontSize      float64

	code bytes.Buffer
	body bytes.Buffer

	nObject, nArrow, nLabel int
}

// NewGnuplot returns an empty width x height gnuplot canvas. fontSize is used
// both for the emitted labels and to estimate text extents.
func NewGnuplot(width, height int, fontSize float64) *Gnuplot {
	return &Gnuplot{width: width, height: height, fontSize: fontSize}
}

// MeasureString estimates the extent of s. gnuplot does not report text
// metrics, so every rune is taken to be 0.6em wide.
func (g *Gnuplot) MeasureString(s string) (w, h float64) {
	return 0.6 * g.fontSize * float64(utf8.RuneCountInString(s)), 1.2 * g.fontSize
}

func (g *Gnuplot) FillRect(q buffer.Quad, c gg.RGBA) {
	g.nObject++
	fmt.Fprintf(&g.body, "set object %d rect from %g,%g to %g,%g fc rgb %s fs solid %g noborder front\n",
		g.nObject, q.Left, q.Bottom, q.Right, q.Top, gpColor(c), alpha(c))
}

func (g *Gnuplot) Line(x1, y1, x2, y2, width float64, c gg.RGBA) {
	g.nArrow++
	fmt.Fprintf(&g.body, "set arrow %d from %g,%g to %g,%g nohead lw %g lc rgb %s front\n",
		g.nArrow, x1, y1, x2, y2, width, gpColor(c))
}

func (g *Gnuplot) Text(s string, x, y, ax float64, c gg.RGBA) {
	if s == "" {
		return
	}
	just := "left"
	switch {
	case ax >= 1:
		just = "right"
	case ax > 0:
		just = "center"
	}
	// gnuplot centers labels vertically on their position.
	y -= g.fontSize * 7 / 20
	g.nLabel++
	fmt.Fprintf(&g.body, "set label %d %s at %g,%g %s tc rgb %s font \",%g\" front\n",
		g.nLabel, gpString(s), x, y, just, gpColor(c), g.fontSize)
}

// Write writes the gnuplot program for everything drawn so far to out. If
// term is "png", the program is run through gnuplot and out receives the
// PNG image instead.
func (g *Gnuplot) Write(term string, out io.Writer) error {
	g.code.Reset()
	switch term {
	case "":
		// Just code
	case "png":
		fmt.Fprintf(&g.code, "set terminal pngcairo size %d,%d\n", g.width, g.height)
	default:
		return fmt.Errorf("unknown output type %s", term)
	}

	// Map the plot area onto the whole canvas with Y pointing down.
	fmt.Fprintf(&g.code, "set lmargin at screen 0\nset rmargin at screen 1\n")
	fmt.Fprintf(&g.code, "set tmargin at screen 1\nset bmargin at screen 0\n")
	fmt.Fprintf(&g.code, "set xrange [0:%d]\nset yrange [%d:0]\n", g.width, g.height)
	fmt.Fprintf(&g.code, "unset border\nunset tics\nunset key\n")
	g.code.Write(g.body.Bytes())
	fmt.Fprintf(&g.code, "plot NaN notitle\n")
	code := g.code.Bytes()

	if term == "" {
		_, err := out.Write(code)
		return err
	}
	cmd := exec.Command("gnuplot")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("creating pipe to gnuplot: %w", err)
	}
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting gnuplot: %w", err)
	}
	defer cmd.Process.Kill()
	if _, err := stdin.Write(code); err != nil {
		return fmt.Errorf("writing to gnuplot: %w", err)
	}
	stdin.Close()
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("gnuplot failed: %w", err)
	}
	return nil
}

func gpColor(c gg.RGBA) string {
	b := func(v float64) int { return int(math.Round(max(0, min(1, v)) * 255)) }
	return fmt.Sprintf(`"#%02x%02x%02x"`, b(c.R), b(c.G), b(c.B))
}

func alpha(c gg.RGBA) float64 {
	return max(0, min(1, c.A))
}

// gpString returns s escaped for Gnuplot
func gpString(s string) string {
	// I can't find any documentation on Gnuplot's escape syntax, but as far as
	// I can tell, it's compatible with Go's escaping rules.
	return strconv.Quote(s)
}
