package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"unitmap/config"
	"unitmap/layout"
	"unitmap/model"
	"unitmap/nav"
	"unitmap/render"
	"unitmap/ui"
)

// Version is set at build time via ldflags.
var Version = "0.2.0"

func printUsage() {
	fmt.Fprintf(os.Stderr, `unitmap v%s — interactive treemap viewer for decompilation progress reports

Usage:
  unitmap [OPTIONS] REPORT.json

Modes:
  (default)         Interactive TUI treemap (fullscreen, mouse + keyboard)
  --svg FILE        Write a static SVG treemap and exit (FILE "-" = stdout)

Options:
  --filter EXPR     Initial filter (e.g. '>50%%', '<10kB', 'name', combined)
  --unit NAME       Open the unit-scoped detail view directly
  --location Q      Restore a full shared view query (e.g. '?filter=%%3E50%%25')
  --aspect R        Width/height ratio for packing unlaid reports
  --width N         SVG viewBox width (default 800)
  --height N        SVG viewBox height (default 400)
  --no-mouse        Disable mouse reporting
  --version         Print version and exit

Filter terms are AND-combined: a comparison (> < >= <= == != with a %%
or size suffix) tests the unit's match percent or code size; anything
else is a case-insensitive name substring.

Examples:
  unitmap report.json
  unitmap --filter '>50%% init' report.json
  unitmap --unit MainLoop report.json
  unitmap --svg map.svg --width 1200 --height 600 report.json
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	cfg := config.Load()

	var (
		filterExpr  string
		unitName    string
		locQuery    string
		svgPath     string
		svgWidth    int
		svgHeight   int
		aspect      float64
		noMouse     bool
		showVersion bool
	)
	flag.StringVar(&filterExpr, "filter", "", "initial filter expression")
	flag.StringVar(&unitName, "unit", "", "open the detail view for one unit")
	flag.StringVar(&locQuery, "location", "", "restore a shared view query string")
	flag.StringVar(&svgPath, "svg", "", "write a static SVG treemap and exit")
	flag.IntVar(&svgWidth, "width", 800, "SVG viewBox width")
	flag.IntVar(&svgHeight, "height", 400, "SVG viewBox height")
	flag.Float64Var(&aspect, "aspect", cfg.LayoutAspect, "layout aspect ratio for unlaid reports")
	flag.BoolVar(&noMouse, "no-mouse", !cfg.Mouse, "disable mouse reporting")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("unitmap v%s\n", Version)
		return nil
	}

	args := flag.Args()
	if len(args) != 1 {
		printUsage()
		return fmt.Errorf("expected exactly one report file")
	}

	report, err := model.Load(args[0])
	if err != nil {
		return err
	}
	if report.NeedsLayout() {
		layout.Layout(report.Units, aspect)
	}

	if svgPath != "" {
		return writeSVG(report, svgPath, svgWidth, svgHeight)
	}

	// The location carries the addressable view state; explicit flags
	// override what a restored query brought along.
	loc := nav.Parse(locQuery)
	if filterExpr != "" {
		loc.Set("filter", filterExpr)
	} else if loc.Get("filter") == "" && cfg.DefaultFilter != "" {
		loc.Set("filter", cfg.DefaultFilter)
	}
	if unitName != "" {
		loc = loc.Navigate(unitName)
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		// No interactive terminal: emit the fallback image instead.
		fmt.Print(render.SVG(report.Units, svgWidth, svgHeight))
		return nil
	}

	var m tea.Model
	if scoped := loc.Get("unit"); scoped != "" {
		u := report.FindUnit(scoped)
		if u == nil {
			return fmt.Errorf("unit %q not found in report", scoped)
		}
		m = ui.NewDetailModel(report, loc, u)
	} else {
		m = ui.NewModel(report, loc)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !noMouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return err
	}

	// Print the final addressable state so the view can be shared.
	if fm, ok := final.(ui.Model); ok {
		if q := fm.Location().String(); q != "" {
			fmt.Printf("view: unitmap --location '?%s' %s\n", q, args[0])
		}
	}
	return nil
}

func writeSVG(report *model.Report, path string, w, h int) error {
	out := render.SVG(report.Units, w, h)
	if path == "-" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
