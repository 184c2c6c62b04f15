package config

// Level sources
const (
	LevelInline = "inline"
	LevelTMX    = "tmx"
)

// LevelConfig describes where the platform layout comes from
type LevelConfig struct {
	Source    string           `yaml:"source"`
	Path      string           `yaml:"path"`
	Platforms []PlatformConfig `yaml:"platforms"`
}

type PlatformConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	W        float64 `yaml:"w"`
	H        float64 `yaml:"h"`
	Material string  `yaml:"material"`
}
