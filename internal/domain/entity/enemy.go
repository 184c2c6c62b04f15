package entity

import "fmt"

// AIMode defines the type of AI behavior
type AIMode int

const (
	AIPatrol AIMode = iota
	AIChase
	AIFlee
	AIOrbit
)

// String returns the mode name used in config files
func (m AIMode) String() string {
	switch m {
	case AIPatrol:
		return "patrol"
	case AIChase:
		return "chase"
	case AIFlee:
		return "flee"
	case AIOrbit:
		return "orbit"
	default:
		return "unknown"
	}
}

// ParseAIMode maps a config name to an AIMode
func ParseAIMode(name string) (AIMode, error) {
	switch name {
	case "patrol":
		return AIPatrol, nil
	case "chase":
		return AIChase, nil
	case "flee":
		return AIFlee, nil
	case "orbit":
		return AIOrbit, nil
	default:
		return AIPatrol, fmt.Errorf("unknown ai mode %q", name)
	}
}

// Physical reports whether the mode goes through gravity and collision
func (m AIMode) Physical() bool {
	return m != AIOrbit
}

// EnemyAI is the behavior-specific state of an enemy
type EnemyAI struct {
	Mode AIMode

	// Modes is the set the mode is re-rolled from; a single entry means fixed
	Modes       []AIMode
	RerollTimer float64

	// Orbit
	Anchor Vec2
	Phase  float64

	// Patrol
	PatrolDir int
	JumpTimer float64
}

// NewEnemyAI creates AI state starting in the first of modes
func NewEnemyAI(modes []AIMode, anchor Vec2, phase float64) *EnemyAI {
	if len(modes) == 0 {
		modes = []AIMode{AIPatrol}
	}
	return &EnemyAI{
		Mode:      modes[0],
		Modes:     modes,
		Anchor:    anchor,
		Phase:     phase,
		PatrolDir: -1,
	}
}

// CanReroll reports whether there is more than one mode to pick from
func (ai *EnemyAI) CanReroll() bool {
	return len(ai.Modes) > 1
}
