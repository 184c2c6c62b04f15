package config

import (
	"fmt"
	"slices"

	"github.com/younwookim/tinytown/internal/domain/entity"
)

// Normalize replaces impossible values with safe defaults.
// It never fails; each correction is reported as a warning.
func (c *Config) Normalize() []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		warn("display size %dx%d is not positive, using 800x600", c.Display.ScreenWidth, c.Display.ScreenHeight)
		c.Display.ScreenWidth, c.Display.ScreenHeight = 800, 600
	}
	if c.Display.Framerate <= 0 {
		warn("framerate %d is not positive, using 60", c.Display.Framerate)
		c.Display.Framerate = 60
	}
	if c.Display.Title == "" {
		c.Display.Title = "Tiny Town"
	}

	switch c.Movement.Mode {
	case MovementTopDown, MovementPlatformer:
	default:
		warn("unknown movement mode %q, using %s", c.Movement.Mode, MovementTopDown)
		c.Movement.Mode = MovementTopDown
	}
	if c.Movement.Speed < 0 {
		warn("movement speed %.1f is negative, using its magnitude", c.Movement.Speed)
		c.Movement.Speed = -c.Movement.Speed
	}

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		warn("player size %.0fx%.0f is not positive, using 32x32", c.Player.Width, c.Player.Height)
		c.Player.Width, c.Player.Height = 32, 32
	}
	if c.Player.MaxHealth <= 0 {
		warn("player maxHealth %d is not positive, using %d", c.Player.MaxHealth, entity.MaxPlayerHealth)
		c.Player.MaxHealth = entity.MaxPlayerHealth
	}

	if c.Enemies.Count < 0 {
		warn("enemy count %d is negative, using 0", c.Enemies.Count)
		c.Enemies.Count = 0
	}
	if c.Enemies.Width <= 0 || c.Enemies.Height <= 0 {
		warn("enemy size %.0fx%.0f is not positive, using 32x32", c.Enemies.Width, c.Enemies.Height)
		c.Enemies.Width, c.Enemies.Height = 32, 32
	}
	if c.Enemies.MaxHealth <= 0 {
		warn("enemy maxHealth %d is not positive, using 50", c.Enemies.MaxHealth)
		c.Enemies.MaxHealth = 50
	}
	if c.Enemies.SpawnArea.W < 0 || c.Enemies.SpawnArea.H < 0 {
		warn("enemy spawn area has negative extent, using the whole screen")
		c.Enemies.SpawnArea = RectConfig{}
	}

	valid := c.Enemies.AI.Modes[:0]
	for _, name := range c.Enemies.AI.Modes {
		if _, err := entity.ParseAIMode(name); err != nil {
			warn("dropping %v", err)
			continue
		}
		valid = append(valid, name)
	}
	c.Enemies.AI.Modes = valid
	if len(c.Enemies.AI.Modes) == 0 {
		c.Enemies.AI.Modes = []string{entity.AIPatrol.String()}
	}
	if slices.Contains(c.Enemies.AI.Modes, entity.AIOrbit.String()) {
		if c.Enemies.AI.OrbitRadius <= 0 {
			c.Enemies.AI.OrbitRadius = 100
		}
		if c.Enemies.AI.OrbitSpeed == 0 {
			c.Enemies.AI.OrbitSpeed = 1
		}
	}
	if c.Enemies.AI.Reroll.Min > c.Enemies.AI.Reroll.Max {
		warn("ai reroll range is inverted, swapping")
		c.Enemies.AI.Reroll.Min, c.Enemies.AI.Reroll.Max = c.Enemies.AI.Reroll.Max, c.Enemies.AI.Reroll.Min
	}
	if c.Enemies.AI.JumpEvery.Min > c.Enemies.AI.JumpEvery.Max {
		warn("ai jump interval is inverted, swapping")
		c.Enemies.AI.JumpEvery.Min, c.Enemies.AI.JumpEvery.Max = c.Enemies.AI.JumpEvery.Max, c.Enemies.AI.JumpEvery.Min
	}

	if c.Combat.MeleeDamage < 0 || c.Combat.ContactDamage < 0 || c.Combat.KillScore < 0 {
		warn("negative combat values are treated as zero")
		c.Combat.MeleeDamage = max(c.Combat.MeleeDamage, 0)
		c.Combat.ContactDamage = max(c.Combat.ContactDamage, 0)
		c.Combat.KillScore = max(c.Combat.KillScore, 0)
	}

	switch c.Rules.GameOver {
	case GameOverScreen, GameOverReset:
	case "":
		c.Rules.GameOver = GameOverScreen
	default:
		warn("unknown gameOver rule %q, using %s", c.Rules.GameOver, GameOverScreen)
		c.Rules.GameOver = GameOverScreen
	}

	switch c.Level.Source {
	case LevelInline:
	case LevelTMX:
		if c.Level.Path == "" {
			warn("tmx level without a path, using inline platforms")
			c.Level.Source = LevelInline
		}
	case "":
		c.Level.Source = LevelInline
	default:
		warn("unknown level source %q, using %s", c.Level.Source, LevelInline)
		c.Level.Source = LevelInline
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		warn("audio volume %.2f outside [0, 1], clamping", c.Audio.Volume)
		c.Audio.Volume = min(max(c.Audio.Volume, 0), 1)
	}

	return warnings
}

// SpawnRect returns the enemy spawn area, defaulting to the whole screen minus the enemy size
func (c *Config) SpawnRect() entity.Rect {
	a := c.Enemies.SpawnArea
	if a.W > 0 && a.H > 0 {
		return entity.Rect{X: a.X, Y: a.Y, W: a.W, H: a.H}
	}
	return entity.Rect{
		W: float64(c.Display.ScreenWidth) - c.Enemies.Width,
		H: float64(c.Display.ScreenHeight) - c.Enemies.Height,
	}
}

// ParsedModes converts the mode names, skipping unknown ones
func (a AIConfig) ParsedModes() []entity.AIMode {
	modes := make([]entity.AIMode, 0, len(a.Modes))
	for _, name := range a.Modes {
		if m, err := entity.ParseAIMode(name); err == nil {
			modes = append(modes, m)
		}
	}
	if len(modes) == 0 {
		modes = append(modes, entity.AIPatrol)
	}
	return modes
}
