package level

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"

	"github.com/younwookim/tinytown/internal/domain/entity"
	"github.com/younwookim/tinytown/internal/infrastructure/config"
)

//go:embed levels/*.tmx
var levelFS embed.FS

// Object group and object names recognised in TMX maps
const (
	GroupPlatforms = "Platforms"
	GroupSpawns    = "Spawns"

	SpawnPlayer = "player"
	SpawnEnemy  = "enemy"
)

// Level is the static layout of a scene
type Level struct {
	Width, Height float64
	Platforms     []entity.Platform

	// PlayerSpawn overrides the configured spawn when HasPlayerSpawn is set
	PlayerSpawn    entity.Vec2
	HasPlayerSpawn bool

	// EnemySpawns are fixed enemy positions, used round-robin before falling back to the spawn area
	EnemySpawns []entity.Vec2
}

// FS returns the embedded level files
func FS() fs.FS {
	return levelFS
}

// FromConfig builds the level a variant asks for. TMX paths are resolved in fsys;
// a nil fsys means the embedded levels.
func FromConfig(cfg *config.Config, fsys fs.FS) (*Level, error) {
	switch cfg.Level.Source {
	case config.LevelTMX:
		if fsys == nil {
			fsys = levelFS
		}
		lvl, err := LoadTMX(fsys, cfg.Level.Path)
		if err != nil {
			return nil, err
		}
		// The screen is the world; the map only contributes geometry.
		lvl.Width = float64(cfg.Display.ScreenWidth)
		lvl.Height = float64(cfg.Display.ScreenHeight)
		return lvl, nil
	default:
		return Inline(cfg), nil
	}
}

// Inline builds a level from the platforms listed in the config
func Inline(cfg *config.Config) *Level {
	lvl := &Level{
		Width:  float64(cfg.Display.ScreenWidth),
		Height: float64(cfg.Display.ScreenHeight),
	}
	for _, p := range cfg.Level.Platforms {
		lvl.Platforms = append(lvl.Platforms,
			entity.NewPlatform(p.X, p.Y, p.W, p.H, entity.ParseMaterial(p.Material)))
	}
	return lvl
}

// LoadTMX parses a Tiled map. Rectangle objects in the Platforms group become
// platforms; objects in the Spawns group named player or enemy become spawn points.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				material := entity.ParseMaterial(o.Properties.GetString("material"))
				lvl.Platforms = append(lvl.Platforms,
					entity.NewPlatform(o.X, o.Y, o.Width, o.Height, material))
			}
		case GroupSpawns:
			for _, o := range og.Objects {
				pos := entity.Vec2{X: o.X, Y: o.Y}
				switch o.Name {
				case SpawnPlayer:
					lvl.PlayerSpawn = pos
					lvl.HasPlayerSpawn = true
				case SpawnEnemy:
					lvl.EnemySpawns = append(lvl.EnemySpawns, pos)
				}
			}
		}
	}

	return lvl, nil
}
