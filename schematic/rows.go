package schematic

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/schematic/textgrid"
)

// forEachRow calls fn once for every row of g. With o.workers > 1 rows run
// concurrently under an errgroup; fn must only write state owned by its row.
// The first error (or cancellation of o.ctx) stops rows not yet started.
func forEachRow(o options, g *textgrid.Grid, fn func(y int) error) error {
	if o.workers <= 1 {
		for y := 0; y < g.Rows(); y++ {
			if err := o.ctx.Err(); err != nil {
				return err
			}
			if err := fn(y); err != nil {
				return err
			}
		}
		return nil
	}

	eg, ctx := errgroup.WithContext(o.ctx)
	eg.SetLimit(o.workers)
	for y := 0; y < g.Rows(); y++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(y)
		})
	}

	return eg.Wait()
}
