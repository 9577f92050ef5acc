package game

import "testing"

// noDrops never passes the drop roll
var noDrops = &ScriptedRandom{Values: []float64{0.99}}

func basicAt(pos Vec2) *Enemy {
	cfg := GetEnemyTypeConfig(EnemyBasic, 1)
	return &Enemy{Pos: pos, Radius: cfg.Radius, HP: cfg.HP, MaxHP: cfg.HP, Kind: EnemyBasic, Speed: cfg.Speed}
}

func shotAt(pos Vec2, mode WeaponMode) *Projectile {
	wc := GetWeaponConfig(mode)
	return &Projectile{Pos: pos, Radius: wc.Radius, Pierce: wc.Pierce, Mode: mode}
}

func TestHitKillsAndScores(t *testing.T) {
	w := NewWorld()
	e := basicAt(Vec2{X: 100, Y: 100})
	w.AddEnemy(e)
	w.AddProjectile(shotAt(Vec2{X: 100, Y: 119}, WeaponDefault))

	out := NewCollisionSystem(noDrops).Resolve(w, Vec2{X: 400, Y: 300})

	if out.Score != 100 {
		t.Errorf("Expected score 100, got %d", out.Score)
	}
	if len(w.Enemies) != 0 || len(w.Projectiles) != 0 {
		t.Errorf("Expected both removed, got %d enemies %d projectiles", len(w.Enemies), len(w.Projectiles))
	}
	if len(out.Kills) != 1 || !e.Dead() {
		t.Errorf("Expected one kill, got %d", len(out.Kills))
	}
	want := []Sound{SoundHit, SoundExplode}
	if len(out.Sounds) != 2 || out.Sounds[0] != want[0] || out.Sounds[1] != want[1] {
		t.Errorf("Expected %v, got %v", want, out.Sounds)
	}
}

func TestDeathProcessedOnce(t *testing.T) {
	w := NewWorld()
	w.AddEnemy(basicAt(Vec2{X: 100, Y: 100}))
	first := shotAt(Vec2{X: 100, Y: 100}, WeaponDefault)
	second := shotAt(Vec2{X: 101, Y: 100}, WeaponDefault)
	w.AddProjectile(first)
	w.AddProjectile(second)

	out := NewCollisionSystem(noDrops).Resolve(w, Vec2{X: 400, Y: 300})

	if out.Score != 100 || len(out.Kills) != 1 {
		t.Errorf("Expected a single kill worth 100, got %d kills worth %d", len(out.Kills), out.Score)
	}
	if len(w.Projectiles) != 1 || w.Projectiles[0] != second {
		t.Errorf("Expected second projectile to survive, got %d projectiles", len(w.Projectiles))
	}
}

func TestPierceProjectileHitsSeveral(t *testing.T) {
	w := NewWorld()
	w.AddEnemy(basicAt(Vec2{X: 100, Y: 100}))
	w.AddEnemy(basicAt(Vec2{X: 110, Y: 100}))
	p := shotAt(Vec2{X: 105, Y: 100}, WeaponPierce)
	w.AddProjectile(p)

	out := NewCollisionSystem(noDrops).Resolve(w, Vec2{X: 400, Y: 300})

	if out.Score != 200 {
		t.Errorf("Expected score 200, got %d", out.Score)
	}
	if p.Pierce != 1 || len(w.Projectiles) != 1 {
		t.Errorf("Expected projectile alive with pierce 1, got pierce %d", p.Pierce)
	}
}

func TestTankTakesFourHits(t *testing.T) {
	cfg := GetEnemyTypeConfig(EnemyTank, 3)
	e := &Enemy{Pos: Vec2{X: 100, Y: 100}, Radius: cfg.Radius, HP: cfg.HP, MaxHP: cfg.HP, Kind: EnemyTank}
	w := NewWorld()
	w.AddEnemy(e)
	c := NewCollisionSystem(noDrops)

	for i := 1; i <= 3; i++ {
		w.AddProjectile(shotAt(e.Pos, WeaponDefault))
		out := c.Resolve(w, Vec2{X: 400, Y: 300})
		if out.Score != 0 || e.HP != 4-i {
			t.Fatalf("Hit %d: expected hp %d and no score, got hp %d score %d", i, 4-i, e.HP, out.Score)
		}
		if e.MaxHP != 4 {
			t.Fatalf("Expected MaxHP to stay 4, got %d", e.MaxHP)
		}
	}
	w.AddProjectile(shotAt(e.Pos, WeaponDefault))
	if out := c.Resolve(w, Vec2{X: 400, Y: 300}); out.Score != 300 {
		t.Errorf("Expected 300 for the kill, got %d", out.Score)
	}
}

func TestDropRoll(t *testing.T) {
	tests := []struct {
		name  string
		rolls []float64
		want  *DropKind
	}{
		{"No drop", []float64{0.15}, nil},
		{"Shotgun", []float64{0.1, 0.49}, ptr(DropShotgun)},
		{"Pierce", []float64{0.1, 0.5}, ptr(DropPierce)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			w.AddEnemy(basicAt(Vec2{X: 100, Y: 100}))
			w.AddProjectile(shotAt(Vec2{X: 100, Y: 100}, WeaponDefault))

			out := NewCollisionSystem(&ScriptedRandom{Values: tt.rolls}).Resolve(w, Vec2{X: 400, Y: 300})

			if tt.want == nil {
				if len(w.Drops) != 0 {
					t.Errorf("Expected no drop, got %d", len(w.Drops))
				}
				return
			}
			if len(w.Drops) != 1 || len(out.Drops) != 1 {
				t.Fatalf("Expected one drop, got %d", len(w.Drops))
			}
			d := w.Drops[0]
			if d.Kind != *tt.want || d.Pos != (Vec2{X: 100, Y: 100}) || d.Radius != 8 {
				t.Errorf("Expected %v drop at the kill, got %v at %v r%v", *tt.want, d.Kind, d.Pos, d.Radius)
			}
			if d.Color != GetWeaponConfig(tt.want.Weapon()).Color {
				t.Errorf("Expected weapon colour, got %v", d.Color)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestPickupRadius(t *testing.T) {
	player := Vec2{X: 400, Y: 300}
	tests := []struct {
		name string
		dist float64
		want bool
	}{
		{"Inside", 27.9, true},
		{"On the boundary", 28, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			w.AddDrop(NewDrop(player.Add(Vec2{X: tt.dist}), DropPierce))

			out := NewCollisionSystem(noDrops).Resolve(w, player)

			picked := len(out.Pickups) == 1
			if picked != tt.want {
				t.Fatalf("Expected pickup %v, got %v", tt.want, picked)
			}
			if picked && (w.Weapon != WeaponPierce || len(w.Drops) != 0) {
				t.Errorf("Expected pierce weapon and drop removed, got %v with %d drops", w.Weapon, len(w.Drops))
			}
			if picked && out.Sounds[0] != SoundPickup {
				t.Errorf("Expected pickup sound, got %v", out.Sounds)
			}
		})
	}
}

func TestContactCostsLife(t *testing.T) {
	player := Vec2{X: 400, Y: 300}
	w := NewWorld()
	w.AddEnemy(basicAt(player.Add(Vec2{Y: 29.9})))
	w.AddEnemy(basicAt(player.Add(Vec2{Y: -30})))

	out := NewCollisionSystem(noDrops).Resolve(w, player)

	if out.LivesLost != 1 {
		t.Errorf("Expected one life lost, got %d", out.LivesLost)
	}
	if out.Score != 0 {
		t.Errorf("Expected no score for contact, got %d", out.Score)
	}
	if len(w.Enemies) != 1 {
		t.Errorf("Expected the distant enemy to remain, got %d", len(w.Enemies))
	}
}

func TestResolutionOrder(t *testing.T) {
	player := Vec2{X: 400, Y: 300}
	w := NewWorld()
	e := basicAt(player)
	w.AddEnemy(e)
	w.AddDrop(NewDrop(player, DropShotgun))
	// A projectile on the enemy must not score: contact removes it first
	w.AddProjectile(shotAt(player, WeaponDefault))

	out := NewCollisionSystem(noDrops).Resolve(w, player)

	if len(out.Sounds) != 2 || out.Sounds[0] != SoundPickup || out.Sounds[1] != SoundDamage {
		t.Errorf("Expected [pickup damage], got %v", out.Sounds)
	}
	if out.Score != 0 || out.LivesLost != 1 {
		t.Errorf("Expected no score and one life lost, got %d and %d", out.Score, out.LivesLost)
	}
	if len(w.Projectiles) != 1 {
		t.Errorf("Expected projectile untouched, got %d", len(w.Projectiles))
	}
}
