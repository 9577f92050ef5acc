package game

import "time"

// Phase is the progression state machine's current mode
type Phase int

const (
	PhaseWaitingToStart Phase = iota
	PhasePlaying
	PhaseTransitioning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseWaitingToStart:
		return "waiting"
	case PhasePlaying:
		return "playing"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Progress is a read-only view of score, lives, level and phase
type Progress struct {
	Score int
	Lives int
	Level int
	Phase Phase
	// Won is set once the final threshold has been cleared
	Won bool
}

// Threshold returns the score that clears the current level
func (p Progress) Threshold() int {
	return LevelThresholds[min(max(p.Level, 1), MaxLevel)-1]
}

// Transition reports what a progression call changed
type Transition int

const (
	TransitionNone Transition = iota
	TransitionStarted
	TransitionLevelCleared
	TransitionLevelStarted
	TransitionGameOver
)

// Progression owns score, lives and level and drives the phase machine:
//
//	WaitingToStart -> Playing -> Transitioning -> Playing (next level) ... -> GameOver
//
// GameOver is terminal until Reset.
type Progression struct {
	progress     Progress
	clearedAt    time.Time
	requireStart bool
}

// NewProgression creates a progression at level 1. With requireStart the
// machine waits in WaitingToStart for Begin.
func NewProgression(requireStart bool) *Progression {
	p := &Progression{requireStart: requireStart}
	p.Reset()
	return p
}

// Reset returns to level 1, score 0, three lives
func (p *Progression) Reset() {
	phase := PhasePlaying
	if p.requireStart {
		phase = PhaseWaitingToStart
	}
	p.progress = Progress{
		Score: 0,
		Lives: StartLives,
		Level: 1,
		Phase: phase,
	}
	p.clearedAt = time.Time{}
}

// Progress returns a snapshot of the current state
func (p *Progression) Progress() Progress { return p.progress }

// Phase returns the current phase
func (p *Progression) Phase() Phase { return p.progress.Phase }

// FinalLevel reports whether the current level is the last one
func (p *Progression) FinalLevel() bool { return p.progress.Level >= MaxLevel }

// Begin leaves WaitingToStart
func (p *Progression) Begin() Transition {
	if p.progress.Phase != PhaseWaitingToStart {
		return TransitionNone
	}
	p.progress.Phase = PhasePlaying
	return TransitionStarted
}

// Apply folds a collision outcome into the state. Kills always score, but
// losing the last life wins over a level clear earned on the same tick.
func (p *Progression) Apply(out Outcome, now time.Time) Transition {
	if p.progress.Phase != PhasePlaying {
		return TransitionNone
	}

	if out.Score > 0 {
		p.progress.Score += out.Score
	}
	if out.LivesLost > 0 {
		p.progress.Lives -= out.LivesLost
		if p.progress.Lives <= 0 {
			p.progress.Phase = PhaseGameOver
			return TransitionGameOver
		}
	}

	if p.progress.Score >= p.progress.Threshold() {
		p.progress.Phase = PhaseTransitioning
		p.clearedAt = now
		if p.FinalLevel() {
			p.progress.Won = true
		}
		return TransitionLevelCleared
	}
	return TransitionNone
}

// Update finishes a level transition once the dwell has elapsed
func (p *Progression) Update(now time.Time) Transition {
	if p.progress.Phase != PhaseTransitioning {
		return TransitionNone
	}
	if now.Sub(p.clearedAt) < TransitionDwell {
		return TransitionNone
	}

	if p.FinalLevel() {
		p.progress.Phase = PhaseGameOver
		return TransitionGameOver
	}
	p.progress.Level++
	p.progress.Lives++
	p.progress.Phase = PhasePlaying
	return TransitionLevelStarted
}

// DwellRemaining returns how long the current transition has left
func (p *Progression) DwellRemaining(now time.Time) time.Duration {
	if p.progress.Phase != PhaseTransitioning {
		return 0
	}
	return max(0, TransitionDwell-now.Sub(p.clearedAt))
}
