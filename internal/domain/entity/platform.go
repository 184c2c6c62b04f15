package entity

// Material is a cosmetic tag on a platform
type Material int

const (
	MaterialStone Material = iota
	MaterialWood
	MaterialGrass
	MaterialMetal
)

// String returns the material name used in level files
func (m Material) String() string {
	switch m {
	case MaterialStone:
		return "stone"
	case MaterialWood:
		return "wood"
	case MaterialGrass:
		return "grass"
	case MaterialMetal:
		return "metal"
	default:
		return "unknown"
	}
}

// ParseMaterial maps a level-file name to a Material. Unknown names become stone.
func ParseMaterial(name string) Material {
	switch name {
	case "wood":
		return MaterialWood
	case "grass":
		return MaterialGrass
	case "metal":
		return MaterialMetal
	default:
		return MaterialStone
	}
}

// Platform is a static obstacle, immutable for the lifetime of a level
type Platform struct {
	Bounds   Rect
	Material Material
}

// NewPlatform creates a platform
func NewPlatform(x, y, w, h float64, material Material) Platform {
	return Platform{Bounds: Rect{X: x, Y: y, W: w, H: h}, Material: material}
}
