package main

import (
	"fmt"

	"github.com/wildgrid/noisekit/noise"
)

// SampleCmd prints sequential draws from one stream.
type SampleCmd struct {
	Seed     uint32 `kong:"default='0',help='Stream seed'"`
	Position int32  `kong:"default='0',help='Starting cursor position'"`
	Count    int    `kong:"default='10',help='Number of samples to print'"`
	Format   string `kong:"default='uint32',enum='uint32,int32,unit,signed',help='Output format: uint32, int32, unit ([0,1)) or signed ([-1,1])'"`
}

func (c *SampleCmd) Run() error {
	stream := noise.NewStream(c.Seed, c.Position)

	for i := 0; i < c.Count; i++ {
		pos := stream.Position()
		switch c.Format {
		case "uint32":
			fmt.Printf("%d\t%d\n", pos, stream.NextUint32())
		case "int32":
			fmt.Printf("%d\t%d\n", pos, stream.NextInt32())
		case "unit":
			fmt.Printf("%d\t%.10f\n", pos, stream.ZeroToOne())
		case "signed":
			fmt.Printf("%d\t%+.10f\n", pos, stream.SignedUnit())
		}
	}
	return nil
}
