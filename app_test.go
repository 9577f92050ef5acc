package main

import (
	"errors"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"neonshooter/game"
)

func TestBurstScalesWithRadius(t *testing.T) {
	ps := NewBurstParticleSystem(1)
	ps.Burst(game.Vec2{X: 10, Y: 10}, 10, color.RGBA{0, 255, 255, 255})
	small := ps.Len()

	ps.Clear()
	ps.Burst(game.Vec2{X: 10, Y: 10}, 30, color.RGBA{255, 165, 0, 255})
	if ps.Len() <= small {
		t.Errorf("Expected a tank burst larger than %d sparks, got %d", small, ps.Len())
	}
}

func TestParticlesExpire(t *testing.T) {
	ps := NewBurstParticleSystem(1)
	ps.Burst(game.Vec2{}, 15, color.RGBA{255, 0, 85, 255})
	if ps.Len() == 0 {
		t.Fatal("Expected sparks after a burst")
	}

	ps.Update(0.1)
	if ps.Len() == 0 {
		t.Error("Expected sparks to outlive 0.1s")
	}
	// longest lifetime is 0.6s
	for i := 0; i < 10; i++ {
		ps.Update(0.1)
	}
	if ps.Len() != 0 {
		t.Errorf("Expected every spark gone, got %d", ps.Len())
	}
}

func TestParticleCap(t *testing.T) {
	ps := NewBurstParticleSystem(1)
	for i := 0; i < 100; i++ {
		ps.Burst(game.Vec2{}, 30, color.RGBA{255, 255, 255, 255})
	}
	if ps.Len() != ps.maxParticles {
		t.Errorf("Expected %d sparks at the cap, got %d", ps.maxParticles, ps.Len())
	}
}

func TestTransformRotatesOutline(t *testing.T) {
	s := game.Sprite{Pos: game.Vec2{X: 100, Y: 100}, Radius: 20, Rotation: game.Up.Angle()}
	pts := transform(shipPoints, s)

	// the nose points at the heading
	if math.Abs(pts[0].X-100) > 1e-9 || math.Abs(pts[0].Y-80) > 1e-9 {
		t.Errorf("Expected nose at (100,80), got (%v,%v)", pts[0].X, pts[0].Y)
	}
	if len(pts) != len(shipPoints) {
		t.Errorf("Expected %d points, got %d", len(shipPoints), len(pts))
	}
}

func TestRestartButtonCentered(t *testing.T) {
	btn := restartButton(800, 600)
	if btn.Dx() != buttonWidth || btn.Dy() != buttonHeight {
		t.Errorf("Expected %dx%d button, got %dx%d", buttonWidth, buttonHeight, btn.Dx(), btn.Dy())
	}
	if !image.Pt(400, btn.Min.Y+1).In(btn) {
		t.Error("Expected the screen centre column inside the button")
	}
	if image.Pt(400, 300).In(btn) {
		t.Error("Expected the score line outside the button")
	}
}

func TestHearts(t *testing.T) {
	tests := []struct {
		lives int
		want  string
	}{
		{0, ""},
		{-1, ""},
		{1, "<3 "},
		{3, "<3 <3 <3 "},
	}
	for _, tt := range tests {
		if got := hearts(tt.lives); got != tt.want {
			t.Errorf("hearts(%d): Expected %q, got %q", tt.lives, tt.want, got)
		}
	}
}

func TestProfilerCooldown(t *testing.T) {
	p, err := NewProfiler(t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewProfiler: %v", err)
	}
	p.captureDuration = 0

	if err := p.CaptureProfile("first"); err != nil {
		t.Fatalf("Expected first capture to start, got %v", err)
	}
	if err := p.CaptureProfile("second"); !errors.Is(err, errProfileCooldown) {
		t.Errorf("Expected cooldown error, got %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for p.IsProfiling() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if p.IsProfiling() {
		t.Error("Expected the capture to finish")
	}
}

func TestRunReturnsSetupErrors(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Mute = true
	cfg.LogFile = filepath.Join(t.TempDir(), "missing", "game.log")

	err := run(cfg, t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "open log") {
		t.Errorf("Expected an open log error, got %v", err)
	}
}
