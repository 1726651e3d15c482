package main

import (
	"time"

	"github.com/coder/quartz"

	"github.com/wildgrid/noisekit/cmd/noisekit/shared"
	"github.com/wildgrid/noisekit/internal/noiseserver"
)

// ServeCmd runs the WebSocket sample-streaming server. Clients pick their
// own seed and starting position via query parameters.
type ServeCmd struct {
	Addr       string `kong:"default=':8080',help='Listen address'"`
	IntervalMs int    `kong:"default='100',help='Milliseconds between samples per connection'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
}

func (c *ServeCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)
	interval := time.Duration(c.IntervalMs) * time.Millisecond

	server := noiseserver.New(c.Addr, interval, logger, quartz.NewReal())
	return server.Start()
}
