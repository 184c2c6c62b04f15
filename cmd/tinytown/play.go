package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/tinytown/internal/application/game"
	"github.com/younwookim/tinytown/internal/application/replay"
	"github.com/younwookim/tinytown/internal/application/scene/playing"
	"github.com/younwookim/tinytown/internal/application/world"
	"github.com/younwookim/tinytown/internal/infrastructure/audio"
	"github.com/younwookim/tinytown/internal/infrastructure/render"
)

var (
	flagMute   bool
	flagRecord string
	flagAssets string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a variant",
	Long: `Open a window and play the chosen variant.

Controls:
  Arrows/WASD  - Move (Up/W jumps in platformer variants)
  Space/Z      - Attack
  Enter        - Start from the menu
  Esc          - Pause
  F5           - Save the recording (with --record)

Examples:
  tinytown play
  tinytown play --variant bouncer --mute
  tinytown play --record run.json --seed 42
  tinytown play --assets ./sprites`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagVariant, "variant", "", "Variant preset name (default: survivor)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom variant YAML")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to a replay file")
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory of PNG sprites such as character_idle1.png")

	// play is the default command
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}

	cfg, lvl, err := loadVariant(logger, flagVariant, flagConfig)
	if err != nil {
		return err
	}
	seed := resolveSeed(flagSeed)

	opts := []world.Option{world.WithLogger(logger)}
	if flagMute {
		opts = append(opts, world.WithSound(false))
	} else {
		player, err := audio.NewPlayer(cfg.Audio.Volume)
		if err != nil {
			logger.Warn("audio unavailable, continuing muted", "error", err)
			opts = append(opts, world.WithSound(false))
		} else {
			defer player.Close()
			opts = append(opts, world.WithAudio(player))
		}
	}
	w := world.New(cfg, lvl, seed, opts...)

	atlas := render.Placeholders(int(cfg.Player.Width), int(cfg.Player.Height), int(cfg.Enemies.Width), int(cfg.Enemies.Height))
	if flagAssets != "" {
		if err := atlas.LoadDir(os.DirFS(flagAssets), "."); err != nil {
			return err
		}
	}

	tps := cfg.Display.Framerate
	var rec *replay.Recorder
	if flagRecord != "" {
		rec = replay.NewRecorder(seed, cfg.Name, 1.0/float64(tps))
		logger.Info("recording enabled", "file", flagRecord, "seed", seed)
	}

	sc := playing.New(w, playing.Options{
		Atlas:      atlas,
		Logger:     logger,
		Recorder:   rec,
		RecordPath: flagRecord,
	})
	g := game.New(sc, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, tps)
	defer g.Close()

	ebiten.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(tps)

	return ebiten.RunGame(g)
}
