package game

// Mover advances every entity by one tick
type Mover struct {
	movement EnemyMovement
}

// NewMover creates a mover using the run's enemy movement rule
func NewMover(movement EnemyMovement) *Mover {
	return &Mover{movement: movement}
}

// Step moves projectiles, enemies and drops. Projectiles that leave bounds
// are removed before Step returns.
func (m *Mover) Step(w *World, player Vec2, bounds Rect) {
	for _, p := range w.Projectiles {
		p.Pos = p.Pos.Add(p.Vel)
		if !bounds.Contains(p.Pos) {
			w.RemoveProjectile(p)
		}
	}

	for _, e := range w.Enemies {
		if m.movement == MovementPursuit {
			e.Vel = pursue(e.Pos, player, e.Speed)
		}
		e.Pos = e.Pos.Add(e.Vel)
	}

	for _, d := range w.Drops {
		d.Pos = d.Pos.Add(pursue(d.Pos, player, DropSpeed))
	}

	w.Compact()
}

// pursue returns a step of length speed from pos toward target, never overshooting it
func pursue(pos, target Vec2, speed float64) Vec2 {
	delta := target.Sub(pos)
	dist := delta.Len()
	if dist == 0 {
		return Vec2{}
	}
	if dist < speed {
		return delta
	}
	return delta.Scale(speed / dist)
}
