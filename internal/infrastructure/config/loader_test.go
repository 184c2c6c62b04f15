package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tinytown/internal/domain/entity"
)

func TestPresets_Names(t *testing.T) {
	names, err := Presets().Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"bouncer", "brawler", "platformer", "survivor"}, names)
}

func TestLoadPreset_Survivor(t *testing.T) {
	cfg, err := LoadPreset("survivor")
	require.NoError(t, err)
	assert.Empty(t, cfg.Normalize())

	assert.Equal(t, "survivor", cfg.Name)
	assert.Equal(t, 800, cfg.Display.ScreenWidth)
	assert.Equal(t, 600, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.True(t, cfg.Movement.TopDown())
	assert.Equal(t, 200.0, cfg.Movement.Speed)
	assert.Equal(t, 0.0, cfg.Physics.Gravity)
	assert.Equal(t, 5, cfg.Enemies.Count)
	assert.Equal(t, []entity.AIMode{entity.AIOrbit}, cfg.Enemies.AI.ParsedModes())
	assert.Equal(t, 25, cfg.Combat.MeleeDamage)
	assert.Equal(t, 10, cfg.Combat.ContactDamage)
	assert.Equal(t, 10, cfg.Combat.KillScore)
	assert.Equal(t, GameOverScreen, cfg.Rules.GameOver)
	assert.Equal(t, LevelInline, cfg.Level.Source)
	assert.Empty(t, cfg.Level.Platforms)
}

func TestLoadPreset_AllNormalizeCleanly(t *testing.T) {
	names, err := Presets().Names()
	require.NoError(t, err)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			cfg, err := LoadPreset(name)
			require.NoError(t, err)
			assert.Empty(t, cfg.Normalize())
			assert.Equal(t, name, cfg.Name)
		})
	}
}

func TestLoadPreset_Unknown(t *testing.T) {
	_, err := LoadPreset("nope")
	assert.Error(t, err)
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"cfg/custom.yaml": {Data: []byte("display:\n  screenWidth: 320\n  screenHeight: 240\nmovement:\n  mode: platformer\n")},
		"cfg/broken.yaml": {Data: []byte("display: [\n")},
	}
	loader := NewFSLoader(fsys, "cfg")

	cfg, err := loader.LoadConfig("custom")
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Name)
	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.False(t, cfg.Movement.TopDown())

	_, err = loader.LoadConfig("broken")
	assert.ErrorContains(t, err, "failed to parse")

	names, err := loader.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"broken", "custom"}, names)
}

func TestLoad_CustomPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "mine.yaml")
	require.NoError(t, os.WriteFile(file, []byte("name: mine\nenemies:\n  count: 2\n"), 0o644))

	cfg, err := Load("", file)
	require.NoError(t, err)
	assert.Equal(t, "mine", cfg.Name)
	assert.Equal(t, 2, cfg.Enemies.Count)

	_, err = Load("", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_FallsBackToPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("brawler", "")
	require.NoError(t, err)
	assert.Equal(t, "brawler", cfg.Name)

	cfg, err = Load("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPreset, cfg.Name)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(c *Config)
		check func(t *testing.T, c *Config)
	}{
		{
			name: "screen size defaults",
			mut:  func(c *Config) { c.Display.ScreenWidth = 0 },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 800, c.Display.ScreenWidth)
				assert.Equal(t, 600, c.Display.ScreenHeight)
			},
		},
		{
			name: "unknown movement mode",
			mut:  func(c *Config) { c.Movement.Mode = "sideways" },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, MovementTopDown, c.Movement.Mode)
			},
		},
		{
			name: "invalid ai modes dropped",
			mut:  func(c *Config) { c.Enemies.AI.Modes = []string{"dance", "chase"} },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, []string{"chase"}, c.Enemies.AI.Modes)
			},
		},
		{
			name: "all ai modes invalid",
			mut:  func(c *Config) { c.Enemies.AI.Modes = []string{"dance"} },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, []string{"patrol"}, c.Enemies.AI.Modes)
			},
		},
		{
			name: "inverted reroll range",
			mut:  func(c *Config) { c.Enemies.AI.Reroll = RangeConfig{Min: 3, Max: 1} },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, RangeConfig{Min: 1, Max: 3}, c.Enemies.AI.Reroll)
			},
		},
		{
			name: "volume clamped",
			mut:  func(c *Config) { c.Audio.Volume = 4 },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 1.0, c.Audio.Volume)
			},
		},
		{
			name: "tmx without path",
			mut:  func(c *Config) { c.Level = LevelConfig{Source: LevelTMX} },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, LevelInline, c.Level.Source)
			},
		},
		{
			name: "unknown game over rule",
			mut:  func(c *Config) { c.Rules.GameOver = "explode" },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, GameOverScreen, c.Rules.GameOver)
			},
		},
		{
			name: "negative damage",
			mut:  func(c *Config) { c.Combat.MeleeDamage = -5 },
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 0, c.Combat.MeleeDamage)
				assert.Equal(t, 10, c.Combat.ContactDamage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadPreset("survivor")
			require.NoError(t, err)
			tt.mut(cfg)

			warnings := cfg.Normalize()
			assert.NotEmpty(t, warnings)
			tt.check(t, cfg)
		})
	}
}

func TestSpawnRect(t *testing.T) {
	cfg := &Config{
		Display: DisplayConfig{ScreenWidth: 800, ScreenHeight: 600},
		Enemies: EnemiesConfig{Width: 32, Height: 32},
	}
	assert.Equal(t, entity.Rect{W: 768, H: 568}, cfg.SpawnRect())

	cfg.Enemies.SpawnArea = RectConfig{X: 100, Y: 100, W: 600, H: 400}
	assert.Equal(t, entity.Rect{X: 100, Y: 100, W: 600, H: 400}, cfg.SpawnRect())
}
