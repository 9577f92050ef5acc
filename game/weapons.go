package game

// Armory turns fire requests into projectiles
type Armory struct {
	world *World
	sink  AudioSink
}

// NewArmory creates an armory adding projectiles to w and cueing sounds on sink
func NewArmory(w *World, sink AudioSink) *Armory {
	if sink == nil {
		sink = nopSink{}
	}
	return &Armory{world: w, sink: sink}
}

// Fire spawns the projectiles of one shot from origin along aim.
// A zero aim vector fires Up.
func (a *Armory) Fire(origin, aim Vec2, mode WeaponMode) []*Projectile {
	wc := GetWeaponConfig(mode)
	heading := aim.Angle()

	shots := make([]*Projectile, 0, len(wc.Spread))
	for _, offset := range wc.Spread {
		p := &Projectile{
			Pos:    origin,
			Vel:    FromAngle(heading+offset, wc.ProjectileSpeed),
			Radius: wc.Radius,
			Color:  wc.Color,
			Pierce: wc.Pierce,
			Mode:   mode,
		}
		a.world.AddProjectile(p)
		shots = append(shots, p)
	}
	a.sink.Play(wc.Sound)
	return shots
}
