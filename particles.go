package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neonshooter/game"
)

// Particle is one spark of a kill burst
type Particle struct {
	pos      game.Vec2
	vel      game.Vec2 // pixels per second
	age      float64   // seconds
	lifetime float64
	color    color.NRGBA
	size     float64
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// ParticleSystem holds the sparks thrown off by destroyed enemies.
// It is purely cosmetic and never feeds back into the simulation.
type ParticleSystem struct {
	particles    []Particle
	maxParticles int
	rng          *rand.Rand

	burstCount  int
	velocityMin float64
	velocityMax float64
	lifetimeMin float64
	lifetimeMax float64
	sizeMin     float64
	sizeMax     float64
}

// NewBurstParticleSystem creates the kill-burst emitter
func NewBurstParticleSystem(seed int64) *ParticleSystem {
	return &ParticleSystem{
		maxParticles: 600,
		rng:          rand.New(rand.NewSource(seed)),
		burstCount:   18,
		velocityMin:  60.0,
		velocityMax:  220.0,
		lifetimeMin:  0.25,
		lifetimeMax:  0.6,
		sizeMin:      1.5,
		sizeMax:      3.0,
	}
}

// Burst emits a ring of sparks at pos. Larger enemies throw more sparks.
func (ps *ParticleSystem) Burst(pos game.Vec2, radius float64, base color.RGBA) {
	n := ps.burstCount + int(radius/2)
	for i := 0; i < n && len(ps.particles) < ps.maxParticles; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := ps.velocityMin + ps.rng.Float64()*(ps.velocityMax-ps.velocityMin)
		ps.particles = append(ps.particles, Particle{
			pos:      pos,
			vel:      game.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			lifetime: ps.lifetimeMin + ps.rng.Float64()*(ps.lifetimeMax-ps.lifetimeMin),
			color:    color.NRGBA{R: base.R, G: base.G, B: base.B, A: 255},
			size:     ps.sizeMin + ps.rng.Float64()*(ps.sizeMax-ps.sizeMin),
		})
	}
}

// Update ages every particle by dt seconds and drops the expired ones
func (ps *ParticleSystem) Update(dt float64) {
	live := ps.particles[:0]
	for _, p := range ps.particles {
		p.age += dt
		p.pos = p.pos.Add(p.vel.Scale(dt))
		// sparks slow as they fade
		p.vel = p.vel.Scale(1 - 2*dt)
		if p.IsAlive() {
			live = append(live, p)
		}
	}
	ps.particles = live
}

// Len returns the number of live particles
func (ps *ParticleSystem) Len() int { return len(ps.particles) }

// Clear drops every particle
func (ps *ParticleSystem) Clear() { ps.particles = ps.particles[:0] }

// Draw renders all particles
func (ps *ParticleSystem) Draw(screen *ebiten.Image) {
	for _, p := range ps.particles {
		ageAlpha := math.Max(0, math.Min(1, 1.0-(p.age/p.lifetime)))
		c := p.color
		c.A = uint8(float64(c.A) * ageAlpha)
		vector.DrawFilledCircle(screen, float32(p.pos.X), float32(p.pos.Y), float32(p.size), c, true)
	}
}
