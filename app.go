package main

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"neonshooter/game"
)

const (
	fpsSampleInterval = 500 * time.Millisecond
	fpsDropThreshold  = 55.0
	fpsWarmup         = 3 * time.Second
)

// App adapts a game.Session to ebiten's Update/Draw/Layout loop
type App struct {
	session   *game.Session
	renderer  *Renderer
	particles *ParticleSystem
	profiler  *Profiler
	log       zerolog.Logger

	showDebug bool

	fps          float64
	fpsSampledAt time.Time
	startedAt    time.Time
}

// NewApp wires the session's events to the cosmetic layers
func NewApp(session *game.Session, profiler *Profiler, log zerolog.Logger) *App {
	a := &App{
		session:   session,
		renderer:  NewRenderer(),
		particles: NewBurstParticleSystem(time.Now().UnixNano()),
		profiler:  profiler,
		log:       log,
		fps:       60,
		startedAt: time.Now(),
	}

	events := session.Events()
	events.Subscribe(game.EventEnemyKilled, game.ListenerFunc(func(ev game.Event) {
		if e, ok := ev.Data.(*game.Enemy); ok {
			a.particles.Burst(e.Pos, e.Radius, e.Color)
		}
	}))
	wipe := game.ListenerFunc(func(game.Event) {
		a.particles.Clear()
		a.renderer.Reset()
	})
	events.Subscribe(game.EventSessionReset, wipe)
	events.Subscribe(game.EventLevelStarted, wipe)
	return a
}

// Update handles input and advances the session to the current time
func (a *App) Update() error {
	a.handleInput()
	a.session.Tick()
	a.particles.Update(1.0 / float64(ebiten.TPS()))
	a.sampleFPS()
	return nil
}

// Draw renders the current snapshot with HUD and overlay
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.session.Snapshot()
	a.renderer.Render(screen, snap, a.particles)
	drawHUD(screen, snap.HUD)
	drawOverlay(screen, snap.HUD)
	if a.showDebug {
		drawDebug(screen, a.fps, a.session.Ticks(), snap, a.particles.Len())
	}
}

// Layout makes the playfield follow the window size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.session.SetBounds(game.Rect{W: float64(outsideWidth), H: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}

// handleInput processes pointer, fire, restart, debug and fullscreen input
func (a *App) handleInput() {
	x, y := ebiten.CursorPosition()
	a.session.SetPointer(game.Vec2{X: float64(x), Y: float64(y)})

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.showDebug = !a.showDebug
	}

	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		return
	}

	if a.session.Phase() == game.PhaseGameOver {
		clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		b := a.session.Bounds()
		btn := restartButton(int(b.W), int(b.H))
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || (clicked && image.Pt(x, y).In(btn)) {
			a.restart()
		}
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.session.Press(a.session.Now())
	}
}

// restart resets the session; the restart gesture also counts as the start gesture
func (a *App) restart() {
	a.session.Restart()
	a.session.Start()
}

// sampleFPS refreshes the FPS reading and captures a profile on a sustained drop
func (a *App) sampleFPS() {
	now := time.Now()
	if now.Sub(a.fpsSampledAt) < fpsSampleInterval {
		return
	}
	a.fpsSampledAt = now
	a.fps = ebiten.ActualFPS()

	if a.profiler == nil || a.fps >= fpsDropThreshold || now.Sub(a.startedAt) < fpsWarmup {
		return
	}
	if a.session.Phase() != game.PhasePlaying {
		return
	}

	w := a.session.World()
	reason := fmt.Sprintf("fps%.0f-enemies%d-projectiles%d", a.fps, len(w.Enemies), len(w.Projectiles))
	if err := a.profiler.CaptureProfile(reason); err != nil {
		if !errors.Is(err, errProfileCooldown) && !errors.Is(err, errProfileBusy) {
			a.log.Warn().Err(err).Msg("profile capture failed")
		}
		return
	}
	a.log.Warn().Float64("fps", a.fps).Str("reason", reason).Msg("fps drop, capturing profile")
}
