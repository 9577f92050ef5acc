package game

import (
	"time"

	"github.com/rs/zerolog"
)

// aimEase is the largest heading change per frame, in radians
const aimEase = 0.3

// Session drives one run of the game: it owns the world, the systems that
// act on it and the progression, and converts wall time into fixed ticks.
// A Session is not safe for concurrent use.
type Session struct {
	cfg    Config
	bounds Rect

	clock  Clock
	rng    Random
	sink   AudioSink
	log    zerolog.Logger
	events *Dispatcher
	aimer  Aimer
	manual *PointerAim // non-nil when aiming follows the pointer

	world       *World
	spawner     *Spawner
	armory      *Armory
	mover       *Mover
	collisions  *CollisionSystem
	progression *Progression

	drivers drivers
	started time.Time
	now     time.Time
	ticks   uint64

	pointer  Vec2
	heading  float64
	lastShot time.Time
	hasFired bool

	sounds  []Sound
	pending []Event
	torn    bool
}

// Option customises a Session
type Option func(*Session)

// WithClock sets the time source used by Start, Restart and Tick
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithRandom sets the randomness for spawning and drop rolls
func WithRandom(r Random) Option {
	return func(s *Session) { s.rng = r }
}

// WithAudio sets the sink that receives sound cues after each frame
func WithAudio(sink AudioSink) Option {
	return func(s *Session) { s.sink = sink }
}

// WithLogger sets the session logger and logs every gameplay event with it
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithAimer replaces the aim provider chosen from Config.AimMode
func WithAimer(a Aimer) Option {
	return func(s *Session) { s.aimer = a }
}

// NewSession creates a session for cfg. The world is empty and no drivers
// run until Start.
func NewSession(cfg Config, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		bounds: cfg.Bounds(),
		clock:  SystemClock{},
		sink:   nopSink{},
		log:    zerolog.Nop(),
		events: NewDispatcher(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewPRNG(cfg.Seed)
	}
	if s.sink == nil {
		s.sink = nopSink{}
	}
	if s.aimer == nil {
		if cfg.AimMode == AimAuto {
			s.aimer = &AutoAim{Lead: true}
		} else {
			s.manual = &PointerAim{}
			s.aimer = s.manual
		}
	}
	if s.log.GetLevel() != zerolog.Disabled {
		s.events.SubscribeAll(NewEventLogger(s.log))
	}

	s.world = NewWorld()
	s.spawner = NewSpawner(s.rng)
	s.armory = NewArmory(s.world, AudioSinkFunc(s.cue))
	s.mover = NewMover(cfg.EnemyMovement)
	s.collisions = NewCollisionSystem(s.rng)
	s.progression = NewProgression(cfg.RequireStartGesture)

	s.now = s.clock.Now()
	s.started = s.now
	s.SetPointer(s.bounds.Center())
	s.heading = Up.Angle()
	return s
}

// Events returns the dispatcher gameplay events are delivered on
func (s *Session) Events() *Dispatcher { return s.events }

// World returns the entity store
func (s *Session) World() *World { return s.world }

// Progress returns score, lives, level and phase
func (s *Session) Progress() Progress { return s.progression.Progress() }

// Phase returns the current phase
func (s *Session) Phase() Phase { return s.progression.Phase() }

// Bounds returns the playfield
func (s *Session) Bounds() Rect { return s.bounds }

// Ticks returns how many simulation steps have run
func (s *Session) Ticks() uint64 { return s.ticks }

// Running reports whether the frame driver and spawn timer are held
func (s *Session) Running() bool { return s.drivers.active }

// Start leaves WaitingToStart and acquires the drivers. Calling it again
// while playing is harmless.
func (s *Session) Start() {
	if s.torn {
		return
	}
	now := s.clock.Now()
	s.now = now
	defer s.flush()

	if t := s.progression.Begin(); t != TransitionNone {
		s.transition(t, now)
		return
	}
	if s.progression.Phase() == PhasePlaying && !s.drivers.active {
		s.log.Info().Int("level", s.progression.Progress().Level).Msg("session started")
		s.drivers.acquire(now, s.progression.Progress().Level)
	}
}

// Restart resets to level 1 with score 0 and three lives, clears the world
// and resets the weapon. Without a start gesture play resumes at once.
func (s *Session) Restart() {
	if s.torn {
		return
	}
	now := s.clock.Now()
	s.now = now
	defer s.flush()

	s.drivers.release()
	s.progression.Reset()
	s.world.Clear()
	s.hasFired = false
	s.started = now
	s.emit(EventSessionReset, nil)
	s.emit(EventPhaseChanged, s.progression.Phase())

	if s.progression.Phase() == PhasePlaying {
		s.drivers.acquire(now, s.progression.Progress().Level)
	}
}

// Teardown releases every driver. It is idempotent and later frames are no-ops.
func (s *Session) Teardown() {
	if s.torn {
		return
	}
	s.drivers.release()
	s.sounds = nil
	s.pending = nil
	s.torn = true
	s.log.Info().Uint64("ticks", s.ticks).Msg("session torn down")
}

// Now reads the session clock
func (s *Session) Now() time.Time { return s.clock.Now() }

// Tick runs Frame at the clock's current time
func (s *Session) Tick() {
	s.Frame(s.clock.Now())
}

// Frame advances the session to now: it finishes an elapsed level
// transition, runs the owed fixed steps, fires the spawn timer and the
// auto-fire cadence, then delivers the frame's sounds and events.
func (s *Session) Frame(now time.Time) {
	if s.torn {
		return
	}
	s.now = now

	ok := false
	defer func() {
		if !ok {
			s.drivers.release()
		}
	}()

	if t := s.progression.Update(now); t != TransitionNone {
		s.transition(t, now)
	}

	for n := s.drivers.ticks(now); n > 0 && s.drivers.active; n-- {
		s.Step()
	}
	for n := s.drivers.spawn.due(now, MaxCatchUpTicks); n > 0 && s.drivers.active; n-- {
		s.spawn()
	}
	if s.cfg.AutoFire {
		s.fire(now)
	}
	s.ease()

	s.flush()
	ok = true
}

// Step advances the simulation by exactly one tick: motion, collisions,
// then progression. It does nothing outside Playing.
func (s *Session) Step() {
	if s.torn || s.progression.Phase() != PhasePlaying {
		return
	}
	s.ticks++

	player := s.PlayerPos()
	s.mover.Step(s.world, player, s.bounds)
	out := s.collisions.Resolve(s.world, player)

	s.sounds = append(s.sounds, out.Sounds...)
	for _, e := range out.Kills {
		s.emit(EventEnemyKilled, e)
	}
	for _, d := range out.Drops {
		s.emit(EventDropSpawned, d)
	}
	for _, m := range out.Pickups {
		s.emit(EventWeaponPickup, m)
	}

	t := s.progression.Apply(out, s.now)
	if out.LivesLost > 0 {
		s.emit(EventPlayerHit, s.progression.Progress().Lives)
	}
	if t != TransitionNone {
		s.transition(t, s.now)
	}
}

// Trigger is a discrete fire request at now, honouring the weapon cooldown.
// It reports whether a shot was fired.
func (s *Session) Trigger(now time.Time) bool {
	if s.torn {
		return false
	}
	fired := s.fire(now)
	s.flush()
	return fired
}

// Press handles the primary button: it starts a waiting session and fires
// while playing. Other phases ignore it.
func (s *Session) Press(now time.Time) {
	switch s.Phase() {
	case PhaseWaitingToStart:
		s.Start()
	case PhasePlaying:
		s.Trigger(now)
	}
}

// SetPointer records the pointer position. It steers the player in
// pointer mode and the aim when aiming follows the pointer.
func (s *Session) SetPointer(p Vec2) {
	s.pointer = p
	if s.manual != nil {
		s.manual.Target = p
	}
}

// SetBounds resizes the playfield
func (s *Session) SetBounds(r Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	s.bounds = r
}

// PlayerPos returns the avatar position for the configured player mode
func (s *Session) PlayerPos() Vec2 {
	if s.cfg.PlayerMode == PlayerPointer {
		return Vec2{
			X: min(max(s.pointer.X, 0), s.bounds.W),
			Y: min(max(s.pointer.Y, 0), s.bounds.H),
		}
	}
	return s.bounds.Center()
}

// Heading returns the eased player facing angle
func (s *Session) Heading() float64 { return s.heading }

func (s *Session) fire(now time.Time) bool {
	if s.progression.Phase() != PhasePlaying {
		return false
	}
	mode := s.world.Weapon
	wc := GetWeaponConfig(mode)
	if !wc.CanShoot(now.Sub(s.lastShot), s.hasFired) {
		return false
	}

	origin := s.PlayerPos()
	aim, ok := s.aimer.Aim(origin, s.world)
	if !ok {
		return false
	}
	s.armory.Fire(origin, aim, mode)
	s.lastShot = now
	s.hasFired = true
	return true
}

func (s *Session) spawn() {
	p := s.progression.Progress()
	e := s.spawner.TrySpawnEnemy(s.bounds, p.Level, p.Phase)
	if e == nil {
		return
	}
	s.world.AddEnemy(e)
}

// ease turns the avatar toward the current aim
func (s *Session) ease() {
	origin := s.PlayerPos()
	aim, ok := s.aimer.Aim(origin, s.world)
	if !ok {
		return
	}
	s.heading = RotateTowardsTarget(s.heading, aim.Angle(), aimEase)
}

// transition reacts to a phase change: drivers are held only while Playing.
// Phase changes are logged by the EventLogger, not here.
func (s *Session) transition(t Transition, now time.Time) {
	p := s.progression.Progress()
	switch t {
	case TransitionStarted:
		s.drivers.acquire(now, p.Level)
	case TransitionLevelCleared:
		s.drivers.release()
		if p.Won {
			s.cue(SoundWin)
		} else {
			s.cue(SoundLevelUp)
		}
		s.emit(EventLevelCleared, p.Level)
	case TransitionLevelStarted:
		s.world.Clear()
		s.hasFired = false
		s.drivers.acquire(now, p.Level)
		s.emit(EventLevelStarted, p.Level)
	case TransitionGameOver:
		s.drivers.release()
		s.emit(EventGameOver, p)
	}
	s.emit(EventPhaseChanged, p.Phase)
}

func (s *Session) cue(snd Sound) { s.sounds = append(s.sounds, snd) }

func (s *Session) emit(t EventType, data any) {
	s.pending = append(s.pending, Event{Type: t, Data: data})
}

// flush hands queued sounds to the sink and events to listeners. Both run
// after the step that produced them has returned.
func (s *Session) flush() {
	sounds, events := s.sounds, s.pending
	s.sounds, s.pending = nil, nil
	if !s.cfg.Mute {
		for _, snd := range sounds {
			s.sink.Play(snd)
		}
	}
	for _, ev := range events {
		s.events.Dispatch(ev)
	}
}
