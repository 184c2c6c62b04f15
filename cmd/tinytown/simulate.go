package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/tinytown/internal/application/replay"
	"github.com/younwookim/tinytown/internal/application/sim"
	"github.com/younwookim/tinytown/internal/application/system"
	"github.com/younwookim/tinytown/internal/application/world"
)

var (
	flagTicks  int
	flagDT     float64
	flagReplay string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a variant headless",
	Long: `Run a variant without a window, driven by a scripted bot or a recorded
replay, and print a summary of what happened.

A replay carries its own variant, seed and timestep and is played to its end.

Examples:
  tinytown simulate
  tinytown simulate --variant platformer --ticks 3600 --seed 7
  tinytown simulate --replay run.json`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagVariant, "variant", "", "Variant preset name (default: survivor)")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom variant YAML")
	simulateCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 1800, "Number of ticks to run")
	simulateCmd.Flags().Float64Var(&flagDT, "dt", 1.0/60, "Seconds per tick")
	simulateCmd.Flags().StringVar(&flagReplay, "replay", "", "Replay file to drive the run instead of the bot")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}

	variant, seed, dt, ticks := flagVariant, resolveSeed(flagSeed), flagDT, flagTicks

	var data *replay.Data
	if flagReplay != "" {
		data, err = replay.LoadReplay(flagReplay)
		if err != nil {
			return err
		}
		variant, seed, dt, ticks = data.Variant, data.Seed, data.DT, len(data.Frames)
	}

	cfg, lvl, err := loadVariant(logger, variant, flagConfig)
	if err != nil {
		return err
	}
	w := world.New(cfg, lvl, seed, world.WithLogger(logger), world.WithSound(false))

	var source system.InputSource
	if data != nil {
		source = replay.NewReplayer(*data)
	} else {
		source = sim.NewBot(w, seed)
	}

	logger.Debug("simulation started", "variant", cfg.Name, "seed", seed, "ticks", ticks, "dt", dt)
	stats, err := sim.NewRunner(w, source, dt).Run(ticks)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(cfg.Name, seed, stats))
	return nil
}
