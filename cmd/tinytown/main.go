// tinytown is a small single-screen action game with swappable variants.
//
// Usage:
//
//	tinytown [play]          - Play a variant in a window
//	tinytown simulate        - Run a variant headless with a bot or a replay
//	tinytown variants        - List the embedded variants
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/tinytown/internal/infrastructure/config"
	"github.com/younwookim/tinytown/internal/infrastructure/level"
)

var (
	// Global flags
	flagLogLevel string

	// Shared by play and simulate
	flagVariant string
	flagConfig  string
	flagSeed    int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tinytown",
	Short: "Tiny Town - a single-screen action game",
	Long: `Tiny Town is a single-screen action game. Variants change the movement
model, enemy behaviour, level and rules.

Examples:
  tinytown
  tinytown play --variant platformer
  tinytown simulate --variant brawler --ticks 3600
  tinytown variants`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(variantsCmd)
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tinytown",
		Level:           lvl,
	}), nil
}

// resolveSeed maps 0 to a time-based seed
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// loadVariant loads and normalizes a config and builds its level
func loadVariant(logger *log.Logger, name, customPath string) (*config.Config, *level.Level, error) {
	cfg, err := config.Load(name, customPath)
	if err != nil {
		return nil, nil, err
	}
	for _, w := range cfg.Normalize() {
		logger.Warn("config adjusted", "variant", cfg.Name, "detail", w)
	}

	lvl, err := level.FromConfig(cfg, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build level for %s: %w", cfg.Name, err)
	}
	return cfg, lvl, nil
}
