package game

import "image/color"

// EnemyKind defines different types of enemies
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota // Slow circle, speeds up with level
	EnemyFast                   // Small spinning triangle, level 2+
	EnemyTank                   // Large square with 4 hp, level 3+
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyFast:
		return "fast"
	case EnemyTank:
		return "tank"
	default:
		return "basic"
	}
}

// Shape is the outline a renderer draws for a sprite
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeTriangle
	ShapeSquare
	ShapeShip
)

// EnemyTypeConfig holds configuration for each enemy type
type EnemyTypeConfig struct {
	Kind   EnemyKind
	Radius float64
	Color  color.RGBA
	Speed  float64
	HP     int
	Score  int

	// Draw descriptor
	Shape Shape
	// Multiplier on the shared spin clock
	Spin float64
}

// GetEnemyTypeConfig returns configuration for an enemy type at the given level
func GetEnemyTypeConfig(kind EnemyKind, level int) EnemyTypeConfig {
	switch kind {
	case EnemyFast:
		return EnemyTypeConfig{
			Kind:   EnemyFast,
			Radius: 10,
			Color:  color.RGBA{0x00, 0xff, 0xff, 0xff},
			Speed:  2.5,
			HP:     1,
			Score:  200,
			Shape:  ShapeTriangle,
			Spin:   2,
		}
	case EnemyTank:
		return EnemyTypeConfig{
			Kind:   EnemyTank,
			Radius: 30,
			Color:  color.RGBA{0xcc, 0x00, 0xff, 0xff},
			Speed:  0.5,
			HP:     4,
			Score:  300,
			Shape:  ShapeSquare,
			Spin:   1,
		}
	default:
		return EnemyTypeConfig{
			Kind:   EnemyBasic,
			Radius: 15,
			Color:  color.RGBA{0xff, 0x33, 0x66, 0xff},
			Speed:  1.2 + 0.2*float64(level),
			HP:     1,
			Score:  100,
			Shape:  ShapeCircle,
			Spin:   1,
		}
	}
}

// RollEnemyKind picks an enemy type from a single uniform draw r in [0,1).
// Level 2 unlocks fast enemies (r < 0.3), level 3 unlocks tanks (r > 0.8).
func RollEnemyKind(r float64, level int) EnemyKind {
	if level >= 2 && r < 0.3 {
		return EnemyFast
	}
	if level >= 3 && r > 0.8 {
		return EnemyTank
	}
	return EnemyBasic
}

// ScoreFor returns the points awarded for killing an enemy of the given kind
func ScoreFor(kind EnemyKind) int {
	return GetEnemyTypeConfig(kind, 1).Score
}
