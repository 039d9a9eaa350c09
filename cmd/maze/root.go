package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/krc/internal/config"
	"github.com/pavanmanishd/krc/internal/version"
)

// newRootCmd returns the maze command with its flags and subcommands.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate binary-tree mazes",
		Long: `maze draws random binary-tree mazes as text.

Each cell after the first opens a passage north or west. The same seed and
parameter table index always draw the same maze.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Plain(),
		RunE:          runMaze,
	}

	f := cmd.Flags()
	f.Int("size", config.DefaultSize, "set both width and height")
	f.Int("width", config.DefaultSize, "maze width in cells")
	f.Int("height", config.DefaultSize, "maze height in cells")
	f.Uint32("seed", config.DefaultSeed, "random seed of the first maze")
	f.Int("params", 0, "xorshift shift triple, taken modulo the table size")
	f.Int("count", config.DefaultCount, "number of mazes, seeded seed, seed+1, ...")
	f.Int("jobs", 0, "mazes built in parallel (0 = one per CPU)")
	f.Int("mem-limit", 0, "arena budget in bytes shared by all mazes (0 = none)")
	f.Bool("frame", false, "draw a border around each maze")
	f.Bool("solve", false, "mark the path from the top-left to the bottom-right cell")
	f.String("config", "", "read options from a .toml or .yaml file")

	pf := cmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.BoolP("verbose", "v", false, "log progress to stderr")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// resolveOptions merges defaults, the config file and explicitly set flags,
// in that order.
func resolveOptions(cmd *cobra.Command) (config.Options, error) {
	f := cmd.Flags()
	opts := config.Default()

	if path, _ := f.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Options{}, err
		}
		opts = loaded
	}

	if f.Changed("size") {
		n, _ := f.GetInt("size")
		opts.Width, opts.Height = n, n
	}
	if f.Changed("width") {
		opts.Width, _ = f.GetInt("width")
	}
	if f.Changed("height") {
		opts.Height, _ = f.GetInt("height")
	}
	if f.Changed("seed") {
		opts.Seed, _ = f.GetUint32("seed")
	}
	if f.Changed("params") {
		opts.Params, _ = f.GetInt("params")
	}
	if f.Changed("count") {
		opts.Count, _ = f.GetInt("count")
	}
	if f.Changed("mem-limit") {
		opts.MemLimit, _ = f.GetInt("mem-limit")
	}
	if f.Changed("frame") {
		opts.Frame, _ = f.GetBool("frame")
	}
	if f.Changed("solve") {
		opts.Solve, _ = f.GetBool("solve")
	}

	if err := opts.Validate(); err != nil {
		return config.Options{}, err
	}
	return opts, nil
}

// useColor decides whether output to w is colored.
func useColor(cmd *cobra.Command, w io.Writer) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && isTerminal(f), nil
	}
	return false, fmt.Errorf("unsupported color mode %q (must be auto, on or off)", mode)
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if v, _ := cmd.Root().PersistentFlags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func runMaze(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	colored, err := useColor(cmd, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	log := newLogger(cmd)

	log.Debug("generating",
		"width", opts.Width, "height", opts.Height,
		"seed", opts.Seed, "params", opts.Params,
		"count", opts.Count, "mem_limit", opts.MemLimit)

	mazes, mem, err := generate(cmd.Context(), opts, jobs)
	if err != nil {
		return err
	}
	defer mem.Release()

	metrics := mem.Metrics()

	log.Debug("arena",
		"in_use", metrics.SizeInUse, "capacity", metrics.Capacity,
		"chunks", metrics.NumChunks, "limit", metrics.Limit,
		"utilization", fmt.Sprintf("%.1f%%", metrics.Utilization*100))

	return writeMazes(cmd.OutOrStdout(), log, mazes, opts, colored)
}
