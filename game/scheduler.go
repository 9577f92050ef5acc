package game

import "time"

// intervalTimer fires every interval of frame time while armed
type intervalTimer struct {
	interval time.Duration
	next     time.Time
	armed    bool
}

// arm schedules the first firing one interval after now
func (t *intervalTimer) arm(now time.Time, interval time.Duration) {
	t.interval = interval
	t.next = now.Add(interval)
	t.armed = true
}

func (t *intervalTimer) disarm() {
	t.armed = false
}

// due returns how many firings elapsed up to now, at most limit, and
// reschedules. A long stall drops the firings beyond limit.
func (t *intervalTimer) due(now time.Time, limit int) int {
	if !t.armed || t.interval <= 0 || now.Before(t.next) {
		return 0
	}
	n := int(now.Sub(t.next)/t.interval) + 1
	if n > limit {
		t.next = now.Add(t.interval)
		return limit
	}
	t.next = t.next.Add(t.interval * time.Duration(n))
	return n
}

// drivers are the two recurring schedules a playing session holds: the
// frame driver that converts wall time into ticks, and the spawn timer.
// Both exist only while the phase is Playing.
type drivers struct {
	active    bool
	lastFrame time.Time
	accum     time.Duration
	spawn     intervalTimer
}

func (d *drivers) acquire(now time.Time, level int) {
	d.active = true
	d.lastFrame = now
	d.accum = 0
	d.spawn.arm(now, SpawnInterval(level))
}

func (d *drivers) release() {
	d.active = false
	d.accum = 0
	d.spawn.disarm()
}

// ticks folds the wall time since the previous frame into the accumulator
// and returns how many fixed steps are owed, capped at MaxCatchUpTicks
func (d *drivers) ticks(now time.Time) int {
	if !d.active {
		return 0
	}
	elapsed := now.Sub(d.lastFrame)
	d.lastFrame = now
	if elapsed < 0 {
		elapsed = 0
	}
	d.accum = min(d.accum+elapsed, MaxCatchUpTicks*TickDuration)
	n := int(d.accum / TickDuration)
	d.accum -= time.Duration(n) * TickDuration
	return n
}
