package main

import (
	"fmt"

	"github.com/wildgrid/noisekit/cmd/noisekit/shared"
	"github.com/wildgrid/noisekit/internal/statistics"
	"github.com/wildgrid/noisekit/noise"
)

// StatsCmd draws a batch of samples and reports summary statistics with a
// chi-square uniformity check.
type StatsCmd struct {
	Seed    uint32 `kong:"default='0',help='Stream seed'"`
	Count   int    `kong:"default='100000',help='Number of samples to draw'"`
	Buckets int    `kong:"default='20',help='Histogram bucket count'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *StatsCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	buckets, err := statistics.NewBuckets(0, 1, c.Buckets)
	if err != nil {
		return err
	}

	logger.Debug("Drawing samples", "seed", c.Seed, "count", c.Count)

	var sample statistics.Sample
	stream := noise.NewStream(c.Seed, 0)
	for i := 0; i < c.Count; i++ {
		v := stream.ZeroToOne()
		sample.Add(v)
		buckets.Add(v)
	}

	lo, hi := sample.ConfidenceInterval95()
	fmt.Printf("seed=%d n=%d\n", c.Seed, sample.N)
	fmt.Printf("mean=%.6f median=%.6f stddev=%.6f\n", sample.Mean(), sample.Median(), sample.StdDev())
	fmt.Printf("min=%.6f max=%.6f ci95=[%.6f, %.6f]\n", sample.Min, sample.Max, lo, hi)
	fmt.Print(buckets.Report())
	return nil
}
