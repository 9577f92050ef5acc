package game

// Sound is a named audio cue. Delivery is fire-and-forget.
type Sound string

const (
	SoundShootDefault Sound = "shoot_default"
	SoundShootShotgun Sound = "shoot_shotgun"
	SoundShootPierce  Sound = "shoot_pierce"
	SoundHit          Sound = "hit"
	SoundExplode      Sound = "explode"
	SoundLevelUp      Sound = "level_up"
	SoundWin          Sound = "win"
	SoundPickup       Sound = "pickup"
	SoundDamage       Sound = "damage"
)

// AllSounds lists every cue a sink may receive
var AllSounds = []Sound{
	SoundShootDefault, SoundShootShotgun, SoundShootPierce,
	SoundHit, SoundExplode, SoundLevelUp, SoundWin, SoundPickup, SoundDamage,
}

// AudioSink plays sound cues
type AudioSink interface {
	Play(s Sound)
}

// AudioSinkFunc adapts a function to AudioSink
type AudioSinkFunc func(Sound)

// Play calls f(s)
func (f AudioSinkFunc) Play(s Sound) { f(s) }

type nopSink struct{}

func (nopSink) Play(Sound) {}

// EventType names a gameplay event
type EventType string

const (
	EventEnemyKilled  EventType = "EnemyKilled"  // Data: *Enemy
	EventPlayerHit    EventType = "PlayerHit"    // Data: lives remaining (int)
	EventWeaponPickup EventType = "WeaponPickup" // Data: WeaponMode
	EventDropSpawned  EventType = "DropSpawned"  // Data: *Drop
	EventLevelCleared EventType = "LevelCleared" // Data: cleared level (int)
	EventLevelStarted EventType = "LevelStarted" // Data: new level (int)
	EventPhaseChanged EventType = "PhaseChanged" // Data: Phase
	EventGameOver     EventType = "GameOver"     // Data: Progress
	EventSessionReset EventType = "SessionReset" // Data: nil
)

// Event is a gameplay occurrence delivered after the step that produced it
type Event struct {
	Type EventType
	Data any
}

// Listener receives dispatched events
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(Event)

// OnEvent calls f(event)
func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher fans events out to subscribers by type
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers a listener for one event type
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers a listener for every event type
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

// Dispatch sends the event to its subscribers, then to catch-all listeners
func (d *Dispatcher) Dispatch(event Event) {
	for _, l := range d.listeners[event.Type] {
		l.OnEvent(event)
	}
	for _, l := range d.all {
		l.OnEvent(event)
	}
}
