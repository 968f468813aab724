package shadowpaws

import "sort"

// Scheduler is a tick-indexed queue of deferred one-shot actions.
// It is polled once at the start of every tick; clearing it cancels
// everything still pending.
type Scheduler struct {
	now     int
	seq     int
	pending []deferred
}

type deferred struct {
	at  int
	seq int
	fn  func()
}

// After schedules fn to run ticks from now. Zero or negative delays run
// at the next poll.
func (s *Scheduler) After(ticks int, fn func()) {
	if ticks < 0 {
		ticks = 0
	}
	s.seq++
	s.pending = append(s.pending, deferred{at: s.now + ticks, seq: s.seq, fn: fn})
}

// RunDue advances the clock to tick and runs every due action in
// schedule order. Actions may schedule further actions; those run at a
// later poll.
func (s *Scheduler) RunDue(tick int) int {
	s.now = tick

	var due []deferred
	keep := s.pending[:0]
	for _, d := range s.pending {
		if d.at <= tick {
			due = append(due, d)
		} else {
			keep = append(keep, d)
		}
	}
	s.pending = keep

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, d := range due {
		d.fn()
	}
	return len(due)
}

// Len returns the number of pending actions.
func (s *Scheduler) Len() int {
	return len(s.pending)
}

// Clear drops every pending action and rewinds the clock.
func (s *Scheduler) Clear() {
	s.pending = s.pending[:0]
	s.now = 0
}
