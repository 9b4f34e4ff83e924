// The wallcut command reads an ASCII room and prints the fewest tiles to
// fortify so that the center is cut off from every exit.
//
// Room format: one row per line, all rows the same length as the row
// count. 'W' is a wall, 'C' a center tile, '.' floor.
//
// Usage: wallcut [-verify] [-no-exit-buffer] [-v] [room.txt]
//
// With no file argument the room is read from stdin. The room is printed
// back with proposed walls drawn as 'o', followed by the wall count.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/wallcut/gridgraph"
	"github.com/katalvlaran/wallcut/walls"
)

var (
	verify       = flag.Bool("verify", false, "fail if the proposed walls do not seal the center")
	noExitBuffer = flag.Bool("no-exit-buffer", false, "allow walls directly next to exits")
	verbose      = flag.Bool("v", false, "log solver progress to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wallcut [-verify] [-no-exit-buffer] [-v] [room.txt]")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(os.Stdout, flag.Args(), logger); err != nil {
		logger.Error("wallcut failed", "err", err)
		os.Exit(1)
	}
}

func run(w io.Writer, args []string, logger *slog.Logger) error {
	in := io.Reader(os.Stdin)
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	terrain, err := gridgraph.ReadTerrain(in)
	if err != nil {
		return err
	}

	opts := []walls.Option{walls.WithLogger(logger)}
	if *verify {
		opts = append(opts, walls.WithVerify())
	}
	if *noExitBuffer {
		opts = append(opts, walls.WithoutExitBuffer())
	}
	positions, err := walls.Solve(terrain.Size(), terrain, opts...)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, gridgraph.Render(terrain.Size(), terrain, positions)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "walls: %d\n", len(positions))

	return err
}
