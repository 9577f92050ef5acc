package game

// World owns every live entity of the current level and the active weapon.
// Removal is always deferred: systems mark entities while iterating and
// Compact drops them once the pass is complete.
type World struct {
	Projectiles []*Projectile
	Enemies     []*Enemy
	Drops       []*Drop
	Weapon      WeaponMode
}

// NewWorld creates an empty world with the default weapon
func NewWorld() *World {
	return &World{
		Projectiles: make([]*Projectile, 0, 64),
		Enemies:     make([]*Enemy, 0, 64),
		Drops:       make([]*Drop, 0, 8),
		Weapon:      WeaponDefault,
	}
}

// AddProjectile registers a projectile
func (w *World) AddProjectile(p *Projectile) { w.Projectiles = append(w.Projectiles, p) }

// AddEnemy registers an enemy
func (w *World) AddEnemy(e *Enemy) { w.Enemies = append(w.Enemies, e) }

// AddDrop registers a drop
func (w *World) AddDrop(d *Drop) { w.Drops = append(w.Drops, d) }

// RemoveProjectile marks a projectile for removal at the next Compact
func (w *World) RemoveProjectile(p *Projectile) { p.removed = true }

// RemoveEnemy marks an enemy for removal at the next Compact
func (w *World) RemoveEnemy(e *Enemy) { e.removed = true }

// RemoveDrop marks a drop for removal at the next Compact
func (w *World) RemoveDrop(d *Drop) { d.removed = true }

// Compact drops every marked entity, preserving order of the survivors
func (w *World) Compact() {
	w.Projectiles = compact(w.Projectiles, func(p *Projectile) bool { return p.removed })
	w.Enemies = compact(w.Enemies, func(e *Enemy) bool { return e.removed })
	w.Drops = compact(w.Drops, func(d *Drop) bool { return d.removed })
}

// Clear empties all collections and resets the weapon
func (w *World) Clear() {
	clear(w.Projectiles)
	clear(w.Enemies)
	clear(w.Drops)
	w.Projectiles = w.Projectiles[:0]
	w.Enemies = w.Enemies[:0]
	w.Drops = w.Drops[:0]
	w.Weapon = WeaponDefault
}

// Count returns the total number of live entities
func (w *World) Count() int {
	return len(w.Projectiles) + len(w.Enemies) + len(w.Drops)
}

// NearestEnemy returns the closest enemy still in play, or nil
func (w *World) NearestEnemy(from Vec2) *Enemy {
	var nearest *Enemy
	best := 0.0
	for _, e := range w.Enemies {
		if e.removed || e.dead {
			continue
		}
		d := from.Dist(e.Pos)
		if nearest == nil || d < best {
			nearest, best = e, d
		}
	}
	return nearest
}

func compact[T any](items []*T, removed func(*T) bool) []*T {
	kept := items[:0]
	for _, it := range items {
		if !removed(it) {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
