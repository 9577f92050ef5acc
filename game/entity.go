package game

import "image/color"

// Projectile is a shot fired by the player
type Projectile struct {
	Pos Vec2
	// Velocity in units per tick
	Vel    Vec2
	Radius float64
	Color  color.RGBA
	// Remaining enemies this projectile may hit
	Pierce int
	Mode   WeaponMode

	removed bool
}

// Enemy is a hostile moving toward the player
type Enemy struct {
	Pos Vec2
	// Velocity in units per tick, refreshed every tick under pursuit
	Vel    Vec2
	Radius float64
	Color  color.RGBA
	HP     int
	MaxHP  int
	Kind   EnemyKind
	// Distance covered per tick
	Speed float64

	removed bool
	dead    bool
}

// Dead reports whether the enemy has taken lethal damage
func (e *Enemy) Dead() bool { return e.dead }

// Drop is a weapon pickup left behind by a killed enemy
type Drop struct {
	Pos    Vec2
	Radius float64
	Color  color.RGBA
	Kind   DropKind

	removed bool
}

// DropKind identifies the weapon a drop grants
type DropKind int

const (
	DropShotgun DropKind = iota
	DropPierce
)

// Weapon returns the weapon mode granted on pickup
func (k DropKind) Weapon() WeaponMode {
	if k == DropPierce {
		return WeaponPierce
	}
	return WeaponShotgun
}

func (k DropKind) String() string {
	return k.Weapon().String()
}

// Drop constants
const (
	DropRadius = 8.0
	DropChance = 0.15
	// DropSpeed is the magnetic drift toward the player per tick
	DropSpeed = 1.0
)

// NewDrop creates a drop of the given kind at pos
func NewDrop(pos Vec2, kind DropKind) *Drop {
	return &Drop{
		Pos:    pos,
		Radius: DropRadius,
		Color:  GetWeaponConfig(kind.Weapon()).Color,
		Kind:   kind,
	}
}
