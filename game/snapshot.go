package game

import (
	"image/color"
	"time"
)

// spinPeriod is the time for one radian of enemy rotation at Spin 1
const spinPeriod = 500 * time.Millisecond

// Player draw colours
var (
	PlayerColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	PlayerGlow  = color.RGBA{0x00, 0x88, 0xff, 0xff}
)

// Sprite is everything a renderer needs to draw one entity
type Sprite struct {
	Pos      Vec2
	Radius   float64
	Color    color.RGBA
	Shape    Shape
	Rotation float64
	// HPFraction is HP/MaxHP, meaningful when ShowHP is set
	HPFraction float64
	ShowHP     bool
}

// HUD carries the overlay values
type HUD struct {
	Progress
	Weapon WeaponMode
	// Dwell is the time left in a level transition
	Dwell time.Duration
	// LowLives is set when a single life remains
	LowLives bool
}

// Snapshot is a read-only view of one frame
type Snapshot struct {
	Player      Sprite
	Enemies     []Sprite
	Projectiles []Sprite
	Drops       []Sprite
	HUD         HUD
}

// Snapshot captures the world for rendering
func (s *Session) Snapshot() Snapshot {
	p := s.progression.Progress()
	elapsed := s.now.Sub(s.started)
	spin := float64(elapsed) / float64(spinPeriod)

	snap := Snapshot{
		Player: Sprite{
			Pos:      s.PlayerPos(),
			Radius:   PlayerRadius,
			Color:    PlayerColor,
			Shape:    ShapeShip,
			Rotation: s.heading,
		},
		Enemies:     make([]Sprite, 0, len(s.world.Enemies)),
		Projectiles: make([]Sprite, 0, len(s.world.Projectiles)),
		Drops:       make([]Sprite, 0, len(s.world.Drops)),
		HUD: HUD{
			Progress: p,
			Weapon:   s.world.Weapon,
			Dwell:    s.progression.DwellRemaining(s.now),
			LowLives: p.Lives == 1,
		},
	}

	for _, e := range s.world.Enemies {
		tc := GetEnemyTypeConfig(e.Kind, p.Level)
		sp := Sprite{
			Pos:      e.Pos,
			Radius:   e.Radius,
			Color:    e.Color,
			Shape:    tc.Shape,
			Rotation: spin * tc.Spin,
			ShowHP:   e.MaxHP > 1,
		}
		if e.MaxHP > 0 {
			sp.HPFraction = float64(e.HP) / float64(e.MaxHP)
		}
		snap.Enemies = append(snap.Enemies, sp)
	}
	for _, pr := range s.world.Projectiles {
		snap.Projectiles = append(snap.Projectiles, Sprite{
			Pos:    pr.Pos,
			Radius: pr.Radius,
			Color:  pr.Color,
			Shape:  ShapeCircle,
		})
	}
	for _, d := range s.world.Drops {
		snap.Drops = append(snap.Drops, Sprite{
			Pos:    d.Pos,
			Radius: d.Radius,
			Color:  d.Color,
			Shape:  ShapeSquare,
		})
	}
	return snap
}
