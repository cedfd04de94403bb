// Command passepartout pads a photograph with white so that, printed on a
// sheet of paper, it sits centered behind a passepartout window.
//
//	passepartout -pw 297 -ph 210 -mw 260 -mh 180 [-m aspectFill|aspectFit] photo.jpg
//
// Flags may also follow the image name. The result is written to the working directory as out_photo.jpg.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/dixieflatline76/passepartout/config"
	"github.com/dixieflatline76/passepartout/pkg/canvas"
	"github.com/dixieflatline76/passepartout/pkg/geometry"
	"github.com/dixieflatline76/passepartout/pkg/passepartout"
	"github.com/dixieflatline76/passepartout/util/log"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitBadInput = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		paperW, paperH float64
		matW, matH     float64
		mode           string
		prefix         string
		preset         string
		configPath     string
		dryRun         bool
		verbose        bool
		version        bool
	)
	fs.Float64Var(&paperW, "pw", 0, "paper width in mm")
	fs.Float64Var(&paperH, "ph", 0, "paper height in mm")
	fs.Float64Var(&matW, "mw", 0, "passepartout window width in mm")
	fs.Float64Var(&matH, "mh", 0, "passepartout window height in mm")
	fs.StringVar(&mode, "m", "", "mode: aspectFill or aspectFit (shorthand)")
	fs.StringVar(&mode, "mode", "", "mode: aspectFill or aspectFit")
	fs.StringVar(&prefix, "prefix", "", "output file name prefix")
	fs.StringVar(&preset, "preset", "", "named paper/passepartout preset")
	fs.StringVar(&configPath, "config", "", "config file (default ~/."+config.AppName+"/"+config.ConfigFileName+")")
	fs.BoolVar(&dryRun, "dry-run", false, "print the computed canvas without writing a file")
	fs.BoolVar(&verbose, "v", false, "verbose diagnostics")
	fs.BoolVar(&version, "version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] <image> [flags]\n", config.AppName)
		fs.PrintDefaults()
	}

	positional, err := parse(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitBadInput
	}
	if version {
		fmt.Fprintf(stdout, "%s %s\n", config.AppName, appVersion())
		return exitOK
	}
	if len(positional) != 1 {
		fs.Usage()
		return exitBadInput
	}
	log.SetDebug(verbose)

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if preset != "" {
		p, ok := cfg.Preset(preset)
		if !ok {
			fmt.Fprintf(stderr, "unknown preset %q (known: %s)\n", preset, strings.Join(cfg.PresetNames(), ", "))
			return exitBadInput
		}
		if !set["pw"] {
			paperW = p.Paper.Width
		}
		if !set["ph"] {
			paperH = p.Paper.Height
		}
		if !set["mw"] {
			matW = p.Passepartout.Width
		}
		if !set["mh"] {
			matH = p.Passepartout.Height
		}
	} else {
		var missing []string
		for _, name := range []string{"pw", "ph", "mw", "mh"} {
			if !set[name] {
				missing = append(missing, "-"+name)
			}
		}
		if len(missing) > 0 {
			fmt.Fprintf(stderr, "missing required flags: %s\n", strings.Join(missing, " "))
			fs.Usage()
			return exitBadInput
		}
	}

	if mode == "" {
		mode = cfg.Mode
	}
	if !set["prefix"] {
		prefix = cfg.OutputPrefix
	}

	opts := passepartout.Options{
		Input:  positional[0],
		Prefix: prefix,
		Mode:   mode,
		Layout: geometry.Layout{
			Paper:        geometry.NewSize(paperW, paperH),
			Passepartout: geometry.NewSize(matW, matH),
		},
		JPEGQuality: cfg.JPEGQuality,
		AutoOrient:  cfg.AutoOrient,
		MaxCanvas:   image.Pt(cfg.MaxCanvas.Width, cfg.MaxCanvas.Height),
		DryRun:      dryRun,
	}

	report, err := passepartout.Run(opts)
	switch {
	case err == nil:
	case errors.Is(err, canvas.ErrNotFound):
		fmt.Fprintf(stdout, "File not found: %s\n", opts.Input)
		return exitFailure
	case errors.Is(err, geometry.ErrInvalidMode),
		errors.Is(err, geometry.ErrInvalidSize),
		errors.Is(err, geometry.ErrUnsatisfiableGeometry),
		errors.Is(err, passepartout.ErrCanvasTooLarge),
		errors.Is(err, passepartout.ErrInvalidOutput):
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		return exitBadInput
	default:
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		return exitFailure
	}

	printReport(stdout, report)
	return exitOK
}

// parse parses args allowing flags after positional arguments. Everything
// after "--" is positional.
func parse(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		// Parse consumed a "--" terminator if one directly precedes rest.
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func appVersion() string {
	if config.AppVersion == "" {
		return "dev"
	}
	return config.AppVersion
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.GetConfig(), nil
	}
	return config.Load(path)
}

func printReport(w io.Writer, r passepartout.Report) {
	res := r.Result
	fmt.Fprintf(w, "mode: %v\n", res.Mode)
	fmt.Fprintf(w, "PAPER size %s\n", res.Layout.Paper.Format("mm"))
	fmt.Fprintf(w, "PASSEPARTOUT size %s\n", res.Layout.Passepartout.Format("mm"))
	fmt.Fprintf(w, "INPUT IMAGE size %s\n", res.Image.Format("px"))
	fmt.Fprintf(w, "density w=%f h=%f px/mm, using %f\n", res.WidthDensity, res.HeightDensity, res.Density)
	fmt.Fprintf(w, "slack %.2fmm x %.2fmm\n", res.Slack.Width, res.Slack.Height)
	fmt.Fprintf(w, "OUTPUT IMAGE size %dpx x %dpx, offset %d,%d\n", r.Canvas.X, r.Canvas.Y, r.Offset.X, r.Offset.Y)
	if r.Output != "" {
		fmt.Fprintf(w, "saved %s\n", r.Output)
	}
}
