package entity

// EntityID is a unique identifier for an actor within one scene
type EntityID uint32

// Kind tells players and enemies apart
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Facing directions
const (
	FacingLeft  = -1
	FacingRight = 1
)

// MaxPlayerHealth is the health a fresh player starts with
const MaxPlayerHealth = 100
