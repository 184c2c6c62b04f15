package config

// Config is the root of a variant preset (presets/*.yaml)
type Config struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Display     DisplayConfig  `yaml:"display"`
	Physics     PhysicsConfig  `yaml:"physics"`
	Movement    MovementConfig `yaml:"movement"`
	Player      PlayerConfig   `yaml:"player"`
	Enemies     EnemiesConfig  `yaml:"enemies"`
	Combat      CombatConfig   `yaml:"combat"`
	Rules       RulesConfig    `yaml:"rules"`
	Level       LevelConfig    `yaml:"level"`
	Audio       AudioConfig    `yaml:"audio"`
}

type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Framerate    int    `yaml:"framerate"`
}

type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
}

// Movement modes
const (
	MovementTopDown    = "topdown"
	MovementPlatformer = "platformer"
)

type MovementConfig struct {
	Mode                 string  `yaml:"mode"`
	Speed                float64 `yaml:"speed"`
	JumpForce            float64 `yaml:"jumpForce"`
	CoyoteTime           float64 `yaml:"coyoteTime"`
	JumpBuffer           float64 `yaml:"jumpBuffer"`
	FreezeWhileAttacking bool    `yaml:"freezeWhileAttacking"`
}

// TopDown reports whether the player moves freely on both axes
func (m MovementConfig) TopDown() bool {
	return m.Mode == MovementTopDown
}

type CombatConfig struct {
	MeleeDamage     int     `yaml:"meleeDamage"`
	ContactDamage   int     `yaml:"contactDamage"`
	KillScore       int     `yaml:"killScore"`
	HitOncePerSwing bool    `yaml:"hitOncePerSwing"`
	Iframes         float64 `yaml:"iframes"`
}

// Game-over handling
const (
	GameOverScreen = "screen"
	GameOverReset  = "reset"
)

type RulesConfig struct {
	GameOver string `yaml:"gameOver"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}
