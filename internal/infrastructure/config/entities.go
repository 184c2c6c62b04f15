package config

type PlayerConfig struct {
	Width          float64        `yaml:"width"`
	Height         float64        `yaml:"height"`
	MaxHealth      int            `yaml:"maxHealth"`
	AttackDuration float64        `yaml:"attackDuration"`
	AttackCooldown float64        `yaml:"attackCooldown"`
	Spawn          PositionConfig `yaml:"spawn"`
}

type EnemiesConfig struct {
	Count     int     `yaml:"count"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MaxHealth int     `yaml:"maxHealth"`
	Speed     float64 `yaml:"speed"`

	// Bounce reflects horizontal velocity off obstacles
	Bounce bool `yaml:"bounce"`

	SpawnArea RectConfig    `yaml:"spawnArea"`
	AI        AIConfig      `yaml:"ai"`
	Attack    AttackConfig  `yaml:"attack"`
	Spawner   SpawnerConfig `yaml:"spawner"`
}

type AIConfig struct {
	// Modes lists the modes an enemy may take; more than one enables re-rolls
	Modes       []string    `yaml:"modes"`
	Reroll      RangeConfig `yaml:"reroll"`
	AggroRadius float64     `yaml:"aggroRadius"`
	MeleeRadius float64     `yaml:"meleeRadius"`
	OrbitRadius float64     `yaml:"orbitRadius"`
	OrbitSpeed  float64     `yaml:"orbitSpeed"`
	JumpForce   float64     `yaml:"jumpForce"`
	JumpEvery   RangeConfig `yaml:"jumpEvery"`
	JumpChance  float64     `yaml:"jumpChance"`
}

type AttackConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
}

type SpawnerConfig struct {
	Interval float64 `yaml:"interval"`
	Max      int     `yaml:"max"`
}

// Enabled reports whether periodic spawning is on
func (s SpawnerConfig) Enabled() bool {
	return s.Interval > 0 && s.Max > 0
}
