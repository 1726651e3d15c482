package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/wildgrid/noisekit/cmd/noisekit/shared"
	"github.com/wildgrid/noisekit/internal/config"
	"github.com/wildgrid/noisekit/worldgen"
)

// HeatmapCmd renders a fractal noise field to the terminal.
type HeatmapCmd struct {
	Seed        uint32  `kong:"default='0',help='Generator seed'"`
	Width       int     `kong:"default='80',help='Field width in cells'"`
	Height      int     `kong:"default='24',help='Field height in cells'"`
	Frequency   float64 `kong:"default='0.05',help='Sample frequency per cell'"`
	Octaves     int     `kong:"default='4',help='Fractal octave count'"`
	Lacunarity  float64 `kong:"default='2',help='Per-octave frequency multiplier'"`
	Persistence float64 `kong:"default='0.5',help='Per-octave amplitude multiplier'"`
	Config      string  `kong:"help='HCL config file with generator profiles'"`
	Profile     string  `kong:"help='Profile name to load from the config file'"`
	Ascii       bool    `kong:"help='Force monochrome ASCII output'"`
	Debug       bool    `kong:"help='Enable debug logging'"`
}

func (c *HeatmapCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	if c.Profile != "" {
		cfg, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		p, err := cfg.Profile(c.Profile)
		if err != nil {
			return err
		}
		logger.Debug("Loaded profile", "name", p.Name, "seed", p.Seed)
		c.Seed = uint32(p.Seed)
		c.Width = p.Width
		c.Height = p.Height
		c.Frequency = p.Frequency
		c.Octaves = p.Octaves
		c.Lacunarity = p.Lacunarity
		c.Persistence = p.Persistence
	}

	octaves := worldgen.Octaves{
		Count:       c.Octaves,
		Lacunarity:  c.Lacunarity,
		Persistence: c.Persistence,
	}
	rows, err := worldgen.Heightmap(context.Background(), c.Width, c.Height, c.Seed, octaves, c.Frequency)
	if err != nil {
		return err
	}

	colored := !c.Ascii && termenv.ColorProfile() != termenv.Ascii
	fmt.Print(renderHeatmap(rows, colored))
	return nil
}

func renderHeatmap(rows [][]float64, colored bool) string {
	var sb strings.Builder
	for _, row := range rows {
		for _, v := range row {
			if colored {
				idx := int(v * float64(len(rampStyles)))
				if idx >= len(rampStyles) {
					idx = len(rampStyles) - 1
				}
				sb.WriteString(rampStyles[idx].Render("█"))
			} else {
				idx := int(v * float64(len(asciiRamp)))
				if idx >= len(asciiRamp) {
					idx = len(asciiRamp) - 1
				}
				sb.WriteByte(asciiRamp[idx])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
