// Package config loads named generator profiles from an HCL file. Profiles
// bundle the knobs the heatmap and serve commands share: seed, fractal
// settings, and render dimensions.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the root of a noisekit.hcl file.
type Config struct {
	Profiles []Profile `hcl:"profile,block"`
}

// Profile is one named generator configuration.
type Profile struct {
	Name        string  `hcl:"name,label"`
	Seed        int64   `hcl:"seed,optional"`
	Position    int64   `hcl:"position,optional"`
	Octaves     int     `hcl:"octaves,optional"`
	Lacunarity  float64 `hcl:"lacunarity,optional"`
	Persistence float64 `hcl:"persistence,optional"`
	Frequency   float64 `hcl:"frequency,optional"`
	Width       int     `hcl:"width,optional"`
	Height      int     `hcl:"height,optional"`
}

// DefaultConfig returns the configuration used when no file is present: a
// single "default" profile with conventional terrain settings.
func DefaultConfig() *Config {
	return &Config{
		Profiles: []Profile{defaultProfile("default")},
	}
}

func defaultProfile(name string) Profile {
	return Profile{
		Name:        name,
		Seed:        0,
		Octaves:     4,
		Lacunarity:  2,
		Persistence: 0.5,
		Frequency:   0.05,
		Width:       80,
		Height:      24,
	}
}

// Load reads profiles from an HCL file. A missing file yields the defaults
// rather than an error, matching how the CLI treats configuration as
// optional.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Fill in anything a profile left unset.
	for i := range config.Profiles {
		p := &config.Profiles[i]
		d := defaultProfile(p.Name)
		if p.Octaves == 0 {
			p.Octaves = d.Octaves
		}
		if p.Lacunarity == 0 {
			p.Lacunarity = d.Lacunarity
		}
		if p.Persistence == 0 {
			p.Persistence = d.Persistence
		}
		if p.Frequency == 0 {
			p.Frequency = d.Frequency
		}
		if p.Width == 0 {
			p.Width = d.Width
		}
		if p.Height == 0 {
			p.Height = d.Height
		}
	}

	return &config, nil
}

// Profile returns the named profile, or an error listing what exists.
func (c *Config) Profile(name string) (*Profile, error) {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i], nil
		}
	}
	names := make([]string, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		names = append(names, p.Name)
	}
	return nil, fmt.Errorf("no profile named %q (have %v)", name, names)
}
