package worldgen

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Heightmap samples a width x height grid of fractal noise at the given
// frequency, generating rows in parallel. Because every cell is a pure
// function of (coordinates, seed), the output is identical regardless of
// how rows are scheduled across workers.
func Heightmap(ctx context.Context, width, height int, seed uint32, o Octaves, frequency float64) ([][]float64, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("worldgen: invalid heightmap dimensions %dx%d", width, height)
	}

	rows := make([][]float64, height)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for y := range rows {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := make([]float64, width)
			for x := range row {
				row[x] = Fractal2D(float64(x)*frequency, float64(y)*frequency, seed, o)
			}
			rows[y] = row
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
