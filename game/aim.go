package game

import "math"

// Aimer derives the firing direction for a shot leaving origin
type Aimer interface {
	// Aim returns a direction (not necessarily unit length) and whether a shot should be taken
	Aim(origin Vec2, w *World) (Vec2, bool)
}

// PointerAim fires toward the last known pointer position
type PointerAim struct {
	Target Vec2
}

// Aim returns the direction from origin to the pointer.
// A pointer sitting on the origin yields Up.
func (p *PointerAim) Aim(origin Vec2, _ *World) (Vec2, bool) {
	d := p.Target.Sub(origin)
	if d.IsZero() {
		return Up, true
	}
	return d, true
}

// AutoAim fires at the nearest live enemy, leading moving targets.
// With no enemies there is nothing to shoot at.
type AutoAim struct {
	// Lead enables intercept prediction against the target's velocity
	Lead bool
}

// Aim returns the direction toward the nearest enemy, or false when none exist
func (a *AutoAim) Aim(origin Vec2, w *World) (Vec2, bool) {
	target := w.NearestEnemy(origin)
	if target == nil {
		return Vec2{}, false
	}
	point := target.Pos
	if a.Lead {
		speed := GetWeaponConfig(w.Weapon).ProjectileSpeed
		point = PredictiveAim(origin, target.Pos, target.Vel, speed)
	}
	d := point.Sub(origin)
	if d.IsZero() {
		return Up, true
	}
	return d, true
}

// PredictiveAim calculates the predicted target position accounting for target velocity and projectile speed
// Returns the predicted position where the shooter should aim
func PredictiveAim(shooter, target, targetVel Vec2, projectileSpeed float64) Vec2 {
	// If target is not moving, just return current position
	if math.Abs(targetVel.X) < 0.01 && math.Abs(targetVel.Y) < 0.01 {
		return target
	}

	distance := shooter.Dist(target)
	if distance < 1.0 {
		return target
	}

	// Solve distance(shooter, target + vel*t) = speed*t by fixed-point iteration
	t := distance / projectileSpeed
	for i := 0; i < 5; i++ {
		predicted := target.Add(targetVel.Scale(t))
		newT := shooter.Dist(predicted) / projectileSpeed
		if math.Abs(newT-t) < 0.001 {
			break
		}
		t = newT
	}

	return target.Add(targetVel.Scale(t))
}

// RotateTowardsTarget smoothly rotates a rotation value towards a target angle
// Returns the new rotation value
func RotateTowardsTarget(currentRotation, targetRotation, maxStep float64) float64 {
	angleDiff := targetRotation - currentRotation

	// Normalize angle difference to [-π, π]
	for angleDiff > math.Pi {
		angleDiff -= 2 * math.Pi
	}
	for angleDiff < -math.Pi {
		angleDiff += 2 * math.Pi
	}

	if math.Abs(angleDiff) > maxStep {
		if angleDiff > 0 {
			return currentRotation + maxStep
		}
		return currentRotation - maxStep
	}
	return currentRotation + angleDiff
}
