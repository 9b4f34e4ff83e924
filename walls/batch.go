package walls

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wallcut/gridgraph"
)

// Request names one room for SolveAll.
type Request struct {
	Name    string
	Size    int
	Terrain gridgraph.Terrain
}

// SolveAll solves independent rooms concurrently, at most
// Options.Concurrency at a time. Each solve is itself single-threaded
// and owns its network.
//
// Plans are returned in request order. The first failure cancels ctx
// for the rooms not yet started and is returned wrapped with the room
// name. A running solve is never interrupted.
func SolveAll(ctx context.Context, reqs []Request, opts ...Option) ([]*Plan, error) {
	o := buildOptions(opts)
	plans := make([]*Plan, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			room, err := gridgraph.NewRoom(req.Size, req.Terrain, o.roomOptions()...)
			if err != nil {
				return fmt.Errorf("walls: room %q: %w", req.Name, err)
			}
			plan, err := solveRoom(room, o)
			if err != nil {
				return fmt.Errorf("walls: room %q: %w", req.Name, err)
			}
			plans[i] = plan
			o.Logger.Debug("walls: room done", "room", req.Name, "walls", len(plan.Positions))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return plans, nil
}
