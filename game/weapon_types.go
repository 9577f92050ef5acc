package game

import (
	"image/color"
	"time"
)

// WeaponMode defines the active player weapon
type WeaponMode int

const (
	WeaponDefault WeaponMode = iota
	WeaponShotgun
	WeaponPierce
)

func (m WeaponMode) String() string {
	switch m {
	case WeaponShotgun:
		return "shotgun"
	case WeaponPierce:
		return "pierce"
	default:
		return "default"
	}
}

// WeaponConfig holds configuration for each weapon mode
type WeaponConfig struct {
	Mode WeaponMode
	// Angular offsets of each projectile relative to the aim, in radians
	Spread          []float64
	ProjectileSpeed float64
	Radius          float64
	Pierce          int
	Color           color.RGBA
	Cooldown        time.Duration
	Sound           Sound
}

// GetWeaponConfig returns configuration for a weapon mode
func GetWeaponConfig(mode WeaponMode) WeaponConfig {
	switch mode {
	case WeaponShotgun:
		return WeaponConfig{
			Mode:            WeaponShotgun,
			Spread:          []float64{-0.2, 0, 0.2},
			ProjectileSpeed: 8,
			Radius:          4,
			Pierce:          1,
			Color:           color.RGBA{0xff, 0xff, 0x00, 0xff},
			Cooldown:        400 * time.Millisecond,
			Sound:           SoundShootShotgun,
		}
	case WeaponPierce:
		return WeaponConfig{
			Mode:            WeaponPierce,
			Spread:          []float64{0},
			ProjectileSpeed: 12,
			Radius:          8,
			Pierce:          3,
			Color:           color.RGBA{0x00, 0xff, 0xcc, 0xff},
			Cooldown:        600 * time.Millisecond,
			Sound:           SoundShootPierce,
		}
	default:
		return WeaponConfig{
			Mode:            WeaponDefault,
			Spread:          []float64{0},
			ProjectileSpeed: 7,
			Radius:          5,
			Pierce:          1,
			Color:           color.RGBA{0xff, 0xff, 0xff, 0xff},
			Cooldown:        200 * time.Millisecond,
			Sound:           SoundShootDefault,
		}
	}
}

// CanShoot checks if a weapon is ready to fire based on time since last shot
// Returns true if the weapon hasn't been fired yet or if enough time has passed
func (wc WeaponConfig) CanShoot(sinceLastShot time.Duration, hasBeenFired bool) bool {
	if !hasBeenFired {
		return true
	}
	return sinceLastShot >= wc.Cooldown
}
