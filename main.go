package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"colorkit/compare"
	"colorkit/convert"
	"colorkit/factory"
	"colorkit/palette"
	"colorkit/parallel"
	"colorkit/swatch"
)

var cli struct {
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"info"`
	Workers  int    `help:"Number of parallel workers, 0 uses every CPU" default:"0"`

	Convert convert.CLICmd `cmd:"" help:"Convert colors to other color spaces"`
	Compare compare.CLICmd `cmd:"" help:"Compute distance and contrast between two colors"`
	Swatch  swatch.CLICmd  `cmd:"" help:"Render colors as an image of tiles"`
	Palette palette.CLICmd `cmd:"" help:"Inspect, export and match against palettes"`
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("colorkit"),
		kong.Description("Parse, convert and compare colors across RGB, Hex, HSL, HSB, CMYK, CIELab and XYZ."),
		kong.UsageOnError(),
		kong.Vars{"builtin_palettes": strings.Join(palette.Builtin, ", ")},
		kong.Configuration(kong.JSON, "~/.config/colorkit.json", "./colorkit.json"),
	}
}

func main() {
	kctx := kong.Parse(&cli, options()...)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levels[cli.LogLevel]}))
	slog.SetDefault(logger)
	if cli.LogLevel == "debug" {
		factory.SetLogger(logger.With("component", "factory"))
	}

	pool := parallel.Start(cli.Workers)
	slog.Debug("running", "command", kctx.Command(), "workers", pool.Size())

	err := kctx.Run(pool.Do, pool.Wait)
	pool.Wait(true)
	kctx.FatalIfErrorf(err)
}
