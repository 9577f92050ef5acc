package game

// Spawner creates enemies just outside the playfield edges
type Spawner struct {
	rng Random
}

// NewSpawner creates a spawner drawing from rng
func NewSpawner(rng Random) *Spawner {
	return &Spawner{rng: rng}
}

// TrySpawnEnemy creates one enemy for the level, or returns nil when the
// phase is not actively playing. The caller registers it with the world.
func (s *Spawner) TrySpawnEnemy(bounds Rect, level int, phase Phase) *Enemy {
	if phase != PhasePlaying {
		return nil
	}

	kind := RollEnemyKind(s.rng.Float64(), level)
	cfg := GetEnemyTypeConfig(kind, level)
	pos := s.edgePosition(bounds, cfg.Radius)

	heading := pos.AngleTo(bounds.Center())
	return &Enemy{
		Pos:    pos,
		Vel:    FromAngle(heading, cfg.Speed),
		Radius: cfg.Radius,
		Color:  cfg.Color,
		HP:     cfg.HP,
		MaxHP:  cfg.HP,
		Kind:   kind,
		Speed:  cfg.Speed,
	}
}

// edgePosition picks a point on a random edge, pushed out by radius so the
// enemy starts fully off-screen
func (s *Spawner) edgePosition(bounds Rect, radius float64) Vec2 {
	if s.rng.Float64() < 0.5 {
		x := -radius
		if s.rng.Float64() >= 0.5 {
			x = bounds.W + radius
		}
		return Vec2{X: x, Y: s.rng.Float64() * bounds.H}
	}
	y := -radius
	if s.rng.Float64() >= 0.5 {
		y = bounds.H + radius
	}
	return Vec2{X: s.rng.Float64() * bounds.W, Y: y}
}
