// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchbar draws bar charts of Go benchmark results.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aclements/benchbar/internal/config"
	"github.com/aclements/benchbar/internal/plot"
	"github.com/aclements/benchbar/internal/render"
	"github.com/aclements/benchbar/internal/sheet"
	"golang.org/x/perf/benchfmt"
	"golang.org/x/perf/benchproc"
)

func main() {
	if err := benchbar(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

type aesFlag struct {
	aes plot.Aes
	def string
	doc string
}

var aesFlags = []aesFlag{
	{plot.AesX, ".fullname", "map values of `projection` to the X axis"},
	{plot.AesY, ".value", "map values of `projection` to bar height"},
	{plot.AesColor, ".residue", "map values of `projection` to side-by-side bars"},
	{plot.AesStack, "", "map values of `projection` to stacked bar segments"},
	{plot.AesPage, ".unit", "map values of `projection` to separate charts"},
}

type transformOpt struct {
	doc string
	do  func(p *plot.Plot) error
}

var transformOpts = map[string]transformOpt{
	"compare": {"normalize each value against the first color at the same X",
		(*plot.Plot).TransformCompare},
}

func benchbar(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("", flag.ExitOnError)
	flags.SetOutput(wErr)

	// We break the flags into a few subsets for help printing.
	mainFlagSet := flag.NewFlagSet("", 0)
	mainFlagSet.SetOutput(wErr)
	aesFlagSet := flag.NewFlagSet("", 0)
	aesFlagSet.SetOutput(wErr)

	flags.Usage = func() {
		fmt.Fprintf(wErr, `Usage: benchbar [flags] inputs...

Inputs are Go benchmark result files, or a single .xlsx spreadsheet.

`)
		mainFlagSet.PrintDefaults()

		// Print aesthetic flags in natural order.
		fmt.Fprintf(wErr, "\nAesthetic flags:\n")
		for _, f := range aesFlags {
			fset := flag.NewFlagSet("", 0)
			fset.SetOutput(wErr)
			fset.String(f.aes.Name(), f.def, f.doc)
			fset.PrintDefaults()
		}
		fmt.Fprintf(wErr, `
For the syntax of projections, see

  https://pkg.go.dev/golang.org/x/perf/benchproc/syntax

In addition, any projection may be one of the following:

  .unit    The unit of each benchmark-reported metric
  .value   The value of the metric corresponding to .unit
  .residue All fields that were not in some other projection
`)

		// Print transforms.
		fmt.Fprintf(wErr, "\nTransformations:\n")
		var names []string
		for name := range transformOpts {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			fmt.Fprintf(wErr, "  %s\n    \t%s\n", name, transformOpts[name].doc)
		}
	}

	// Register aesthetic flags.
	type aesFlagReg struct {
		aesFlag

		flagString *string

		dv   bool
		proj *benchproc.Projection
	}
	var aesFlagRegs = make([]aesFlagReg, 0, len(aesFlags))
	for _, f := range aesFlags {
		aesFlagRegs = append(aesFlagRegs,
			aesFlagReg{
				aesFlag:    f,
				flagString: aesFlagSet.String(f.aes.Name(), f.def, f.doc),
			})
	}

	// Register main flags.
	flagIgnore := mainFlagSet.String("ignore", "", "ignore variations in `keys`")
	flagFilter := mainFlagSet.String("filter", "*", "use only benchmarks matching benchfilter `query`")
	// This is a convenience filter, since if you want to filter on anything,
	// it's usually this.
	flagUnits := mainFlagSet.String("unit", "", "comma-separated list of `units` to show")
	flagTransform := mainFlagSet.String("transform", "", "comma-separated `list` of data transformations")
	flagConfidence := mainFlagSet.Float64("confidence", 0.95, "confidence `level` of the intervals in bar descriptions")
	flagSheet := mainFlagSet.String("sheet", "", "read spreadsheet sheet `name` (default the first sheet)")
	flagStacked := mainFlagSet.Bool("stacked", false, "stack the columns of a spreadsheet")
	flagConfig := mainFlagSet.String("config", "", "read chart style from YAML `file`")
	flagOut := mainFlagSet.String("o", "benchbar.png", "write chart to `file`, a .png image or .gp gnuplot code")
	flagFrames := mainFlagSet.Int("frames", 1, "write an animation of `n` frames in which the bars appear and grow")
	flagHighlight := mainFlagSet.String("highlight", "", "highlight the bar at `set:x[:stack]`, naming or numbering each part")
	flagWindow := mainFlagSet.String("window", "", "show only the X slots `lo:hi`, naming or numbering each end")
	flagFullBar := mainFlagSet.Bool("full-bar", false, "highlight whole stacked bars")
	flagVerbose := mainFlagSet.Bool("v", false, "print debug logs")

	// Merge flag sets.
	mergeFlags := func(dst, src *flag.FlagSet) {
		src.VisitAll(func(f *flag.Flag) {
			dst.Var(f.Value, f.Name, f.Usage)
		})
	}
	mergeFlags(flags, mainFlagSet)
	mergeFlags(flags, aesFlagSet)

	// Parse flags. Finally!
	flags.Parse(args)
	if flags.NArg() == 0 {
		flags.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(wErr, &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)

	style, err := config.Load(*flagConfig)
	if err != nil {
		return err
	}
	if *flagFullBar {
		style.Bars.FullBar = true
	}
	if *flagFrames < 1 {
		return fmt.Errorf("-frames must be at least 1")
	}
	out := outputOf(*flagOut)
	if out.ext != ".png" && out.ext != ".gp" {
		return fmt.Errorf("-o %s: unknown output type %q", *flagOut, out.ext)
	}
	if out.ext == ".gp" && *flagFrames > 1 {
		return fmt.Errorf("-frames needs .png output")
	}

	var pages []*page
	if flags.NArg() == 1 && strings.EqualFold(filepath.Ext(flags.Arg(0)), ".xlsx") {
		t, err := sheet.Load(flags.Arg(0), sheet.Options{
			Sheet:      *flagSheet,
			Stacked:    *flagStacked,
			Palette:    style.Palette(),
			BarWidth:   style.Bars.Width,
			GroupSpace: style.Bars.GroupSpace,
			BarSpace:   style.Bars.BarSpace,
		})
		if err != nil {
			return err
		}
		pages = append(pages, pageFromSheet(t, *flagStacked))
	} else {
		plotConfig := plot.NewConfig()
		plotConfig.SetConfidence(*flagConfidence)

		// Parse filter options.
		filter, err := benchproc.NewFilter(*flagFilter)
		if err != nil {
			return fmt.Errorf("parsing -filter: %s", err)
		}
		var keepUnits map[string]bool
		if *flagUnits != "" {
			keepUnits = make(map[string]bool)
			for _, unit := range strings.Split(*flagUnits, ",") {
				keepUnits[unit] = true
			}
		}

		// Parse projection options.
		var parser benchproc.ProjectionParser
		var parseResidue []*aesFlagReg
		for i := range aesFlagRegs {
			f := &aesFlagRegs[i]
			switch *f.flagString {
			case ".unit":
				proj, _, _ := parser.ParseWithUnit("", filter)
				f.proj = proj
			case ".value":
				f.dv = true
			case ".residue":
				parseResidue = append(parseResidue, f)
			default:
				proj, err := parser.Parse(*f.flagString, filter)
				if err != nil {
					return fmt.Errorf("parsing -%s: %s", f.aes.Name(), err)
				}
				f.proj = proj
			}
		}

		// Process projection residue.
		_, err = parser.Parse(*flagIgnore, filter)
		if err != nil {
			return fmt.Errorf("parsing -ignore: %s", err)
		}
		residue := parser.Residue()
		for _, f := range parseResidue {
			f.proj = residue
		}

		// Bind projections to aesthetics.
		for _, f := range aesFlagRegs {
			if f.dv {
				plotConfig.SetDV(f.aes)
			} else {
				plotConfig.SetIV(f.aes, f.proj)
			}
		}

		// Parse transforms.
		var transforms []func(p *plot.Plot) error
		if *flagTransform != "" {
			for _, opt := range strings.Split(*flagTransform, ",") {
				t, ok := transformOpts[opt]
				if !ok {
					return fmt.Errorf("unknown transform %s", opt)
				}
				transforms = append(transforms, t.do)
			}
		}

		pl, err := plot.NewPlot(plotConfig)
		if err != nil {
			return err
		}
		if err := readResults(pl, flags.Args(), filter, keepUnits, wErr); err != nil {
			return err
		}

		// Apply transforms.
		for _, transform := range transforms {
			if err := transform(pl); err != nil {
				return err
			}
		}

		bars, err := pl.Bars(plot.BarOptions{
			Palette:    style.Palette(),
			BarWidth:   style.Bars.Width,
			GroupSpace: style.Bars.GroupSpace,
			BarSpace:   style.Bars.BarSpace,
		})
		if err != nil {
			return err
		}
		for _, b := range bars {
			pages = append(pages, pageFromBars(b))
		}
	}

	for i, pg := range pages {
		name := ""
		if len(pages) > 1 {
			name = pg.name
			if name == "" {
				name = fmt.Sprint(i)
			}
		}
		hl, err := pg.highlights(*flagHighlight)
		if err != nil {
			return err
		}
		win, err := pg.window(*flagWindow)
		if err != nil {
			return err
		}
		if err := drawPage(pg, style, hl, win, out.page(name), *flagFrames, logger); err != nil {
			return err
		}
	}
	return nil
}

// readResults adds the results in files that pass filter and keepUnits to pl.
func readResults(pl *plot.Plot, paths []string, filter *benchproc.Filter, keepUnits map[string]bool, wErr io.Writer) error {
	var nParsed, nFiltered, nUnitFiltered int
	files := benchfmt.Files{Paths: paths, AllowStdin: true, AllowLabels: true}
	for files.Scan() {
		switch rec := files.Result(); rec := rec.(type) {
		case *benchfmt.SyntaxError:
			// Non-fatal result parse error. Warn
			// but keep going.
			fmt.Fprintln(wErr, rec)
		case *benchfmt.Result:
			nParsed++
			if ok, err := filter.Apply(rec); !ok {
				nFiltered++
				if err != nil {
					// Print the reason we rejected this result.
					fmt.Fprintln(wErr, err)
				}
				continue
			}
			if keepUnits != nil {
				j := 0
				for _, val := range rec.Values {
					if keepUnits[val.Unit] || (val.OrigUnit != "" && keepUnits[val.OrigUnit]) {
						rec.Values[j] = val
						j++
					}
				}
				rec.Values = rec.Values[:j]
				if j == 0 {
					nUnitFiltered++
					continue
				}
			}

			pl.Add(rec)
		}
	}
	if err := files.Err(); err != nil {
		return err
	}
	if nParsed == 0 {
		return fmt.Errorf("no data")
	} else if nUnitFiltered == nParsed {
		return fmt.Errorf("no data has units %s", joinUnits(keepUnits))
	} else if nUnitFiltered+nFiltered == nParsed {
		return fmt.Errorf("all data filtered")
	}
	if nFiltered > 0 || nUnitFiltered > 0 {
		fmt.Fprintf(wErr, "%d records did not match -filter, %d records did not match -unit\n", nFiltered, nUnitFiltered)
	}
	return nil
}

func joinUnits(units map[string]bool) string {
	var names []string
	for u := range units {
		names = append(names, u)
	}
	slices.Sort(names)
	return strings.Join(names, ",")
}

// output is the path of the chart files to write.
type output struct {
	base, ext string
}

func outputOf(path string) output {
	ext := filepath.Ext(path)
	return output{strings.TrimSuffix(path, ext), strings.ToLower(ext)}
}

// page returns the output for the chart of page name. The unnamed page is
// written to the path given by the user.
func (o output) page(name string) output {
	if name == "" {
		return o
	}
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ', '*', '?':
			return '_'
		}
		return r
	}, name)
	return output{o.base + "-" + clean, o.ext}
}

// frame returns the path of frame i of n.
func (o output) frame(i, n int) string {
	if n == 1 {
		return o.base + o.ext
	}
	return fmt.Sprintf("%s-%03d%s", o.base, i, o.ext)
}
