package game

// Outcome collects everything one collision pass produced.
// The session applies it after the pass has finished.
type Outcome struct {
	Score     int
	LivesLost int
	Kills     []*Enemy
	Pickups   []WeaponMode
	Drops     []*Drop
	Sounds    []Sound
}

func (o *Outcome) cue(s Sound) { o.Sounds = append(o.Sounds, s) }

// CollisionSystem detects and resolves overlaps between the player, enemies,
// projectiles and drops
type CollisionSystem struct {
	rng Random
}

// NewCollisionSystem creates a collision system rolling drops from rng
func NewCollisionSystem(rng Random) *CollisionSystem {
	return &CollisionSystem{rng: rng}
}

// Resolve runs pickup, contact and hit checks in that order. Entities are
// only marked during the pass; the world is compacted at the end.
func (c *CollisionSystem) Resolve(w *World, player Vec2) Outcome {
	var out Outcome

	c.checkPickups(w, player, &out)
	c.checkContacts(w, player, &out)
	c.checkHits(w, &out)

	w.Compact()
	return out
}

func (c *CollisionSystem) checkPickups(w *World, player Vec2, out *Outcome) {
	for _, d := range w.Drops {
		if d.removed {
			continue
		}
		if player.Dist(d.Pos) < PlayerRadius+d.Radius {
			w.Weapon = d.Kind.Weapon()
			w.RemoveDrop(d)
			out.Pickups = append(out.Pickups, w.Weapon)
			out.cue(SoundPickup)
		}
	}
}

func (c *CollisionSystem) checkContacts(w *World, player Vec2, out *Outcome) {
	for _, e := range w.Enemies {
		if e.removed {
			continue
		}
		if player.Dist(e.Pos) < PlayerHitBox+e.Radius {
			w.RemoveEnemy(e)
			out.LivesLost++
			out.cue(SoundDamage)
		}
	}
}

func (c *CollisionSystem) checkHits(w *World, out *Outcome) {
	for _, e := range w.Enemies {
		if e.removed || e.dead {
			continue
		}
		for _, p := range w.Projectiles {
			if p.removed {
				continue
			}
			if !Overlaps(p.Pos, p.Radius, e.Pos, e.Radius) {
				continue
			}

			e.HP--
			p.Pierce--
			if p.Pierce <= 0 {
				w.RemoveProjectile(p)
			}
			out.cue(SoundHit)

			if e.HP <= 0 {
				c.kill(w, e, out)
				break
			}
		}
	}
}

// kill runs the death branch exactly once per enemy
func (c *CollisionSystem) kill(w *World, e *Enemy, out *Outcome) {
	if e.dead {
		return
	}
	e.dead = true
	w.RemoveEnemy(e)

	out.Score += ScoreFor(e.Kind)
	out.Kills = append(out.Kills, e)
	out.cue(SoundExplode)

	if Chance(c.rng, DropChance) {
		kind := DropShotgun
		if c.rng.Float64() >= 0.5 {
			kind = DropPierce
		}
		d := NewDrop(e.Pos, kind)
		w.AddDrop(d)
		out.Drops = append(out.Drops, d)
	}
}
