package game

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds a timestamped logger at the named level. Console output
// is human-readable; anything else gets JSON lines.
func NewLogger(w io.Writer, level string, console bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// EventLogger writes every gameplay event to a logger
type EventLogger struct {
	log zerolog.Logger
}

// NewEventLogger creates a listener logging to log
func NewEventLogger(log zerolog.Logger) *EventLogger {
	return &EventLogger{log: log}
}

// OnEvent logs kills and pickups at debug, everything else at info
func (l *EventLogger) OnEvent(event Event) {
	switch event.Type {
	case EventEnemyKilled:
		if e, ok := event.Data.(*Enemy); ok {
			l.log.Debug().
				Str("kind", e.Kind.String()).
				Int("score", ScoreFor(e.Kind)).
				Float64("x", e.Pos.X).
				Float64("y", e.Pos.Y).
				Msg("enemy killed")
		}
	case EventWeaponPickup:
		if m, ok := event.Data.(WeaponMode); ok {
			l.log.Debug().Stringer("weapon", m).Msg("weapon picked up")
		}
	case EventDropSpawned:
		if d, ok := event.Data.(*Drop); ok {
			l.log.Debug().Stringer("drop", d.Kind).Msg("drop spawned")
		}
	case EventPlayerHit:
		l.log.Info().Interface("lives", event.Data).Msg("player hit")
	case EventGameOver:
		if p, ok := event.Data.(Progress); ok {
			l.log.Info().
				Int("score", p.Score).
				Int("level", p.Level).
				Bool("won", p.Won).
				Msg("game over")
		}
	default:
		ev := l.log.Info().Str("event", string(event.Type))
		if s, ok := event.Data.(fmt.Stringer); ok {
			ev = ev.Stringer("data", s)
		} else if event.Data != nil {
			ev = ev.Interface("data", event.Data)
		}
		ev.Msg("event")
	}
}
