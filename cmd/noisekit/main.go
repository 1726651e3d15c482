package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Sample  SampleCmd        `cmd:"" help:"Print sequential noise samples for a seed"`
	Heatmap HeatmapCmd       `cmd:"" help:"Render a fractal noise field as a terminal heatmap"`
	Stats   StatsCmd         `cmd:"" help:"Summarize stream output and check uniformity"`
	Serve   ServeCmd         `cmd:"" help:"Stream noise samples over WebSocket"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("noisekit"),
		kong.Description("Deterministic seedable noise toolkit for procedural generation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
