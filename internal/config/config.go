// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads chart styles from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/benchbar/internal/axis"
	"github.com/aclements/benchbar/internal/render"
	"github.com/aclements/benchbar/internal/surface"
	"github.com/aclements/benchbar/internal/viewport"
	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"
)

// Style is the look of a chart. Fields left out of a style file keep their
// Default values.
type Style struct {
	Layout struct {
		Width        int     `yaml:"width"`
		Height       int     `yaml:"height"`
		MarginTop    float64 `yaml:"margin_top"`
		MarginBottom float64 `yaml:"margin_bottom"`
		MarginLeft   float64 `yaml:"margin_left"`
		MarginRight  float64 `yaml:"margin_right"`
	} `yaml:"layout"`

	Font struct {
		Size float64 `yaml:"size"`
	} `yaml:"font"`

	Colors struct {
		Background string   `yaml:"background"`
		Text       string   `yaml:"text"`
		Grid       string   `yaml:"grid"`
		Edge       string   `yaml:"edge"`
		Shadow     string   `yaml:"shadow"`
		Highlight  string   `yaml:"highlight"`
		Palette    []string `yaml:"palette"`
	} `yaml:"colors"`

	Bars struct {
		Width      float64 `yaml:"width"`
		GroupSpace float64 `yaml:"group_space"`
		BarSpace   float64 `yaml:"bar_space"`
		Shadows    bool    `yaml:"shadows"`
		Values     bool    `yaml:"values"`
		ValueAbove bool    `yaml:"value_above"`
		FullBar    bool    `yaml:"full_bar_highlight"`
	} `yaml:"bars"`

	Axis struct {
		LabelCount   int     `yaml:"label_count"`
		ForceCount   bool    `yaml:"force_label_count"`
		Granularity  float64 `yaml:"granularity"`
		CenterLabels bool    `yaml:"center_labels"` // X axis only
		GridPerUnit  bool    `yaml:"grid_per_unit"` // X axis only
		InvertedY    bool    `yaml:"inverted_y"`
		// SpaceTop is the percentage of the Y range added above the
		// highest bar.
		SpaceTop float64 `yaml:"space_top"`
	} `yaml:"axis"`

	LimitLines []LimitLine `yaml:"limit_lines"`
}

// A LimitLine marks a value of the Y axis.
type LimitLine struct {
	Value    float64 `yaml:"value"`
	Label    string  `yaml:"label"`
	Position string  `yaml:"position"` // right-top, right-bottom, left-top or left-bottom
	Width    float64 `yaml:"width"`
	Color    string  `yaml:"color"`
}

// Default returns the default style.
func Default() *Style {
	s := new(Style)
	s.Layout.Width, s.Layout.Height = 800, 480
	s.Layout.MarginTop, s.Layout.MarginBottom = 30, 40
	s.Layout.MarginLeft, s.Layout.MarginRight = 60, 20
	s.Font.Size = 12
	s.Colors.Background = "#ffffff"
	s.Colors.Text = "#000000"
	s.Colors.Grid = "#dddddd"
	s.Colors.Edge = "#888888"
	s.Colors.Shadow = "#eeeeee"
	s.Colors.Highlight = "#00000040"
	s.Colors.Palette = []string{"#8cc8ff", "#ffb86c", "#8ce08c", "#ff8c8c", "#c8a0ff", "#c8c8c8"}
	s.Bars.Width = 0.85
	s.Bars.GroupSpace = 0.2
	s.Bars.BarSpace = 0.02
	s.Axis.LabelCount = axis.DefaultLabelCount
	s.Axis.SpaceTop = 10
	return s
}

// Load reads a style file. An empty path returns the default style.
func Load(path string) (*Style, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading style: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a style over the default style and checks it.
func Parse(data []byte) (*Style, error) {
	s := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Style) check() error {
	if s.Layout.Width <= 0 || s.Layout.Height <= 0 {
		return fmt.Errorf("layout: bad size %dx%d", s.Layout.Width, s.Layout.Height)
	}
	if s.Font.Size <= 0 {
		return fmt.Errorf("font: bad size %v", s.Font.Size)
	}
	if !(s.Bars.Width > 0) {
		return fmt.Errorf("bars: width must be positive, not %v", s.Bars.Width)
	}
	if s.Bars.GroupSpace < 0 || s.Bars.BarSpace < 0 {
		return fmt.Errorf("bars: spaces must not be negative")
	}
	if s.Axis.SpaceTop < 0 {
		return fmt.Errorf("axis: space_top must not be negative")
	}
	if len(s.Colors.Palette) == 0 {
		return fmt.Errorf("colors: empty palette")
	}
	for _, c := range append([]string{s.Colors.Background, s.Colors.Text, s.Colors.Grid, s.Colors.Edge, s.Colors.Shadow, s.Colors.Highlight}, s.Colors.Palette...) {
		if _, err := parseColor(c); err != nil {
			return fmt.Errorf("colors: %w", err)
		}
	}
	for i, l := range s.LimitLines {
		if _, err := parsePosition(l.Position); err != nil {
			return fmt.Errorf("limit_lines[%d]: %w", i, err)
		}
		if l.Color != "" {
			if _, err := parseColor(l.Color); err != nil {
				return fmt.Errorf("limit_lines[%d]: %w", i, err)
			}
		}
	}
	return nil
}

// parseColor parses #rgb, #rgba, #rrggbb or #rrggbbaa.
func parseColor(s string) (gg.RGBA, error) {
	h, ok := strings.CutPrefix(s, "#")
	if ok {
		switch len(h) {
		case 3, 4, 6, 8:
			if _, err := strconv.ParseUint(h, 16, 32); err == nil {
				return gg.Hex(h), nil
			}
		}
	}
	return gg.RGBA{}, fmt.Errorf("bad color %q", s)
}

func mustColor(s string) gg.RGBA {
	c, err := parseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parsePosition(s string) (axis.LabelPosition, error) {
	switch s {
	case "", "right-top":
		return axis.RightTop, nil
	case "right-bottom":
		return axis.RightBottom, nil
	case "left-top":
		return axis.LeftTop, nil
	case "left-bottom":
		return axis.LeftBottom, nil
	}
	return 0, fmt.Errorf("unknown label position %q", s)
}

// The accessors below assume s has been checked, as it is by Parse.

func (s *Style) Offsets() viewport.Offsets {
	l := &s.Layout
	return viewport.Offsets{Left: l.MarginLeft, Top: l.MarginTop, Right: l.MarginRight, Bottom: l.MarginBottom}
}

func (s *Style) Background() gg.RGBA {
	return mustColor(s.Colors.Background)
}

func (s *Style) Palette() []gg.RGBA {
	p := make([]gg.RGBA, len(s.Colors.Palette))
	for i, c := range s.Colors.Palette {
		p[i] = mustColor(c)
	}
	return p
}

// Surface returns the colors of everything but the bars.
func (s *Style) Surface() surface.Style {
	c := &s.Colors
	return surface.Style{
		Text:      mustColor(c.Text),
		Grid:      mustColor(c.Grid),
		Edge:      mustColor(c.Edge),
		Shadow:    mustColor(c.Shadow),
		Highlight: mustColor(c.Highlight),
	}
}

// Render returns the render pipeline options of s.
func (s *Style) Render() render.Options {
	o := render.Options{
		DrawShadows:     s.Bars.Shadows,
		DrawValues:      s.Bars.Values,
		ValueAboveBar:   s.Bars.ValueAbove,
		ValueTextHeight: s.Font.Size,
	}
	if s.Bars.FullBar {
		o.Highlight = render.HighlightFullBar
	}
	return o
}

// ConfigureAxis applies the axis settings of s to a.
func (s *Style) ConfigureAxis(a *axis.Axis) {
	if s.Axis.LabelCount > 0 {
		a.LabelCount = s.Axis.LabelCount
	}
	a.ForceLabelCount = s.Axis.ForceCount
	a.Granularity = s.Axis.Granularity
	if a.Direction == axis.Horizontal {
		a.CenterLabels = s.Axis.CenterLabels
		a.OneGridLinePerUnit = s.Axis.GridPerUnit
	} else {
		a.LimitLines = s.limitLines()
	}
}

func (s *Style) limitLines() []axis.LimitLine {
	var out []axis.LimitLine
	for _, l := range s.LimitLines {
		pos, _ := parsePosition(l.Position)
		ll := axis.LimitLine{
			Value:     l.Value,
			Label:     l.Label,
			Position:  pos,
			LineWidth: l.Width,
			Color:     mustColor(s.Colors.Text),
		}
		if l.Color != "" {
			ll.Color = mustColor(l.Color)
		}
		out = append(out, ll)
	}
	return out
}
