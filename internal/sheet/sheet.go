// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sheet reads bar chart data from spreadsheets.
//
// A sheet is a table. The first row names the data sets (or, for stacked
// data, the segments of each bar) and the first column names the X slots:
//
//	ns/op    old   new
//	Encode   120   100
//	Decode   300   310
//
// Empty value cells are zero. Rows that are entirely empty are skipped.
package sheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/benchbar/internal/chart"
	"github.com/gogpu/gg"
	"github.com/xuri/excelize/v2"
)

// Options controls how a sheet becomes chart data.
type Options struct {
	// Sheet is the name of the sheet to read. "" means the first one.
	Sheet string
	// Stacked makes each row a single stacked bar with one segment per
	// column, rather than one bar per column.
	Stacked bool

	Palette []gg.RGBA

	// BarWidth is the width of a bar in X slots when there is one
	// series. Zero keeps the default.
	BarWidth             float64
	GroupSpace, BarSpace float64
}

// A Table is chart data read from a sheet.
type Table struct {
	Data *chart.BarData

	// Title is the top left cell.
	Title string
	// Categories are the labels of the X slots.
	Categories []string
	// Series are the column headers: data set labels, or segment
	// labels if stacked.
	Series []string
}

// Error is an error in a cell of a sheet.
type Error struct {
	Sheet string
	Cell  string
	Err   error
}

func (e *Error) Error() string {
	if e.Cell == "" {
		return fmt.Sprintf("sheet %s: %v", e.Sheet, e.Err)
	}
	return fmt.Sprintf("sheet %s, cell %s: %v", e.Sheet, e.Cell, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Load reads the spreadsheet at path.
func Load(path string, opts Options) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	t, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read reads a table from an open workbook.
func Read(f *excelize.File, opts Options) (*Table, error) {
	name := opts.Sheet
	if name == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		name = sheets[0]
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, &Error{Sheet: name, Err: err}
	}

	if len(rows) == 0 || len(rows[0]) < 2 {
		return nil, &Error{Sheet: name, Err: fmt.Errorf("need a header row with at least one series")}
	}
	header := rows[0]
	t := &Table{Title: strings.TrimSpace(header[0])}
	for _, h := range header[1:] {
		t.Series = append(t.Series, strings.TrimSpace(h))
	}
	nSeries := len(t.Series)

	// values[i][j] is series j of category i.
	var values [][]float64
	for r, row := range rows[1:] {
		if blank(row) {
			continue
		}
		if len(row) > nSeries+1 {
			cell, _ := excelize.CoordinatesToCellName(nSeries+2, r+2)
			return nil, &Error{Sheet: name, Cell: cell, Err: fmt.Errorf("value has no header")}
		}
		vals := make([]float64, nSeries)
		for c := 1; c < len(row); c++ {
			s := strings.TrimSpace(row[c])
			if s == "" {
				continue
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
				return nil, &Error{Sheet: name, Cell: cell, Err: fmt.Errorf("not a finite number: %q", s)}
			}
			vals[c-1] = v
		}
		t.Categories = append(t.Categories, strings.TrimSpace(row[0]))
		values = append(values, vals)
	}
	if len(values) == 0 {
		return nil, &Error{Sheet: name, Err: fmt.Errorf("no data rows")}
	}

	palette := opts.Palette
	if len(palette) == 0 {
		palette = []gg.RGBA{gg.Hex("#8cc8ff")}
	}
	t.Data = chart.NewBarData()
	if opts.BarWidth > 0 {
		t.Data.BarWidth = opts.BarWidth
	}
	if opts.Stacked {
		entries := make([]chart.Entry, len(values))
		for i, vals := range values {
			entries[i] = chart.NewStackedEntry(float64(i), vals...)
			descs := make([]chart.Description, nSeries)
			for j, v := range vals {
				descs[j] = describe(t.Categories[i]+" / "+t.Series[j], v)
			}
			entries[i].Data = descs
		}
		ds := chart.NewBarDataSet(t.Title, entries)
		colors := make([]gg.RGBA, nSeries)
		for j := range colors {
			colors[j] = palette[j%len(palette)]
		}
		ds.SetColors(colors...)
		t.Data.Sets = append(t.Data.Sets, ds)
		return t, nil
	}

	for j, series := range t.Series {
		entries := make([]chart.Entry, len(values))
		for i, vals := range values {
			entries[i] = chart.NewEntry(float64(i), vals[j])
			entries[i].Data = describe(t.Categories[i], vals[j])
		}
		ds := chart.NewBarDataSet(series, entries)
		ds.SetColors(palette[j%len(palette)])
		t.Data.Sets = append(t.Data.Sets, ds)
	}
	if err := t.Data.GroupSlots(opts.GroupSpace, opts.BarSpace); err != nil {
		return nil, err
	}
	return t, nil
}

func describe(label string, v float64) chart.Description {
	return chart.Description{First: label, Second: strconv.FormatFloat(v, 'g', 4, 64)}
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
