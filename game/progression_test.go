package game

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestBeginLeavesWaiting(t *testing.T) {
	p := NewProgression(true)
	if p.Phase() != PhaseWaitingToStart {
		t.Fatalf("Expected waiting, got %v", p.Phase())
	}
	if got := p.Begin(); got != TransitionStarted {
		t.Errorf("Expected started, got %v", got)
	}
	if got := p.Begin(); got != TransitionNone {
		t.Errorf("Expected second Begin to do nothing, got %v", got)
	}
	if NewProgression(false).Phase() != PhasePlaying {
		t.Errorf("Expected playing without a start gesture")
	}
}

func TestLevelClearAndDwell(t *testing.T) {
	p := NewProgression(false)

	if got := p.Apply(Outcome{Score: 1400}, t0); got != TransitionNone {
		t.Fatalf("Expected no transition below threshold, got %v", got)
	}
	if got := p.Apply(Outcome{Score: 100}, t0); got != TransitionLevelCleared {
		t.Fatalf("Expected level cleared at 1500, got %v", got)
	}
	if p.Phase() != PhaseTransitioning {
		t.Fatalf("Expected transitioning, got %v", p.Phase())
	}
	if got := p.Apply(Outcome{Score: 100, LivesLost: 3}, t0); got != TransitionNone {
		t.Errorf("Expected outcomes ignored while transitioning, got %v", got)
	}

	if got := p.Update(t0.Add(2999 * time.Millisecond)); got != TransitionNone {
		t.Errorf("Expected dwell to hold at 2999ms, got %v", got)
	}
	if d := p.DwellRemaining(t0.Add(2 * time.Second)); d != time.Second {
		t.Errorf("Expected 1s dwell remaining, got %v", d)
	}
	if got := p.Update(t0.Add(TransitionDwell)); got != TransitionLevelStarted {
		t.Fatalf("Expected level started at 3000ms, got %v", got)
	}

	got := p.Progress()
	if got.Level != 2 || got.Lives != 4 || got.Score != 1500 || got.Phase != PhasePlaying {
		t.Errorf("Expected level 2, 4 lives, score 1500, playing; got %+v", got)
	}
}

func TestLosingLastLife(t *testing.T) {
	p := NewProgression(false)
	p.Apply(Outcome{LivesLost: 2}, t0)
	if p.Progress().Lives != 1 || p.Phase() != PhasePlaying {
		t.Fatalf("Expected 1 life left and still playing, got %+v", p.Progress())
	}
	if got := p.Apply(Outcome{LivesLost: 1}, t0); got != TransitionGameOver {
		t.Errorf("Expected game over, got %v", got)
	}
	if p.Progress().Won {
		t.Errorf("Expected a loss")
	}
}

func TestLifeLossBeatsLevelClear(t *testing.T) {
	p := NewProgression(false)
	p.Apply(Outcome{LivesLost: 2}, t0)

	got := p.Apply(Outcome{Score: 1500, LivesLost: 1}, t0)
	if got != TransitionGameOver || p.Phase() != PhaseGameOver {
		t.Errorf("Expected game over to win over level up, got %v in %v", got, p.Phase())
	}
	if p.Progress().Score != 1500 {
		t.Errorf("Expected the fatal tick's kills scored, got %d", p.Progress().Score)
	}
}

func TestFinalLevelWins(t *testing.T) {
	p := NewProgression(false)
	now := t0
	for _, score := range []int{1500, 2500} {
		if got := p.Apply(Outcome{Score: score}, now); got != TransitionLevelCleared {
			t.Fatalf("Expected level cleared, got %v", got)
		}
		now = now.Add(TransitionDwell)
		p.Update(now)
	}
	if p.Progress().Level != 3 || p.Progress().Lives != 5 {
		t.Fatalf("Expected level 3 with 5 lives, got %+v", p.Progress())
	}

	if got := p.Apply(Outcome{Score: 4000}, now); got != TransitionLevelCleared {
		t.Fatalf("Expected final clear at 8000, got %v", got)
	}
	if !p.Progress().Won {
		t.Errorf("Expected Won after the final threshold")
	}
	if got := p.Update(now.Add(TransitionDwell)); got != TransitionGameOver {
		t.Fatalf("Expected game over after the final dwell, got %v", got)
	}
	if p.Progress().Level != 3 {
		t.Errorf("Expected level to stay 3, got %d", p.Progress().Level)
	}

	// Terminal until reset
	if got := p.Update(now.Add(time.Hour)); got != TransitionNone {
		t.Errorf("Expected no transition out of game over, got %v", got)
	}
	p.Reset()
	if got := p.Progress(); got.Level != 1 || got.Score != 0 || got.Lives != 3 || got.Won {
		t.Errorf("Expected fresh progress after reset, got %+v", got)
	}
}
