package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"fortio.org/safecast"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/pavanmanishd/krc/arena"
	"github.com/pavanmanishd/krc/fnvhash"
	"github.com/pavanmanishd/krc/internal/config"
	"github.com/pavanmanishd/krc/internal/grid"
	"github.com/pavanmanishd/krc/internal/maze"
	"github.com/pavanmanishd/krc/text"
)

// built is one generated maze with its optional solution.
type built struct {
	maze *maze.Maze
	path []grid.Pos
}

// generate builds opts.Count mazes concurrently, all drawing cell storage
// from one shared arena. Results are in seed order. The caller must keep
// the returned arena alive while it uses the mazes and release it after.
func generate(ctx context.Context, opts config.Options, jobs int) ([]built, *arena.SafeArena, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	mem := arena.NewSafeArena(arena.DefaultChunkSize, arena.WithLimit(opts.MemLimit))
	results := make([]built, opts.Count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, opts.Count))

	for i := range opts.Count {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			offset, err := safecast.Conv[uint32](i)
			if err != nil {
				return fmt.Errorf("maze %d: %w", i, err)
			}
			m, err := maze.Generate(maze.Options{
				Width:  opts.Width,
				Height: opts.Height,
				Seed:   opts.Seed + offset,
				Params: opts.Params,
			}, mem)
			if err != nil {
				return fmt.Errorf("maze %d: %w", i, err)
			}

			res := built{maze: m}
			if opts.Solve {
				end := grid.Pos{Row: m.Height() - 1, Col: m.Width() - 1}
				if res.path, err = m.Solve(grid.Pos{}, end); err != nil {
					return fmt.Errorf("maze %d: %w", i, err)
				}
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		mem.Release()
		return nil, nil, err
	}
	return results, mem, nil
}

// writeMazes draws every maze to w. With more than one maze each gets a
// seed header.
func writeMazes(w io.Writer, log *slog.Logger, mazes []built, opts config.Options, colored bool) error {
	header := color.New(color.FgCyan, color.Bold)
	if colored {
		header.EnableColor()
	} else {
		header.DisableColor()
	}

	frame := lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	if colored {
		frame = frame.BorderForeground(lipgloss.Color("6"))
	}

	for i, b := range mazes {
		if len(mazes) > 1 {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if _, err := header.Fprintf(w, "seed %d\n", b.maze.Seed()); err != nil {
				return err
			}
		}

		var drawn text.String
		if err := b.maze.RenderPath(&drawn, b.path); err != nil {
			return err
		}
		log.Debug("rendered",
			"seed", b.maze.Seed(), "bytes", drawn.Len(),
			"digest", fmt.Sprintf("%016x", fnvhash.Sum64(drawn.Bytes())),
			"path", len(b.path))

		out := drawn.String()
		if opts.Frame {
			out = frame.Render(strings.TrimSuffix(out, "\n")) + "\n"
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	return nil
}
