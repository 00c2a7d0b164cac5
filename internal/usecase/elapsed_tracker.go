package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/pkg/clock"
)

// DefaultTickInterval is the display refresh period of a live dispute timer.
const DefaultTickInterval = time.Second

// ElapsedTracker measures how long a dispute has been active.
//
// The tracker never counts ticks: every reading is derived from the start instant, so any
// number of concurrent viewers (Run loops) show the same value and a tracker rebuilt after a
// restart from DisputeLog.IniciadaEm is indistinguishable from one that ran continuously.
type ElapsedTracker struct {
	clock clock.Clock

	mu        sync.Mutex
	startedAt time.Time
	stoppedAt time.Time
	running   bool
	done      chan struct{}
}

func NewElapsedTracker(c clock.Clock) *ElapsedTracker {
	return &ElapsedTracker{clock: c}
}

// Start begins measuring from now.
func (t *ElapsedTracker) Start() {
	t.StartAt(t.clock.Now())
}

// StartAt begins (or resumes) measuring from a durable start instant.
func (t *ElapsedTracker) StartAt(startedAt time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		close(t.done)
	}
	t.startedAt = startedAt
	t.stoppedAt = time.Time{}
	t.running = true
	t.done = make(chan struct{})
}

// Tick returns the current elapsed time. After Stop it returns the frozen final value.
func (t *ElapsedTracker) Tick() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsedLocked()
}

// Stop freezes the tracker and releases every Run loop. It returns the final elapsed time;
// calling it again returns the same value.
func (t *ElapsedTracker) Stop() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		t.stoppedAt = t.clock.Now()
		t.running = false
		close(t.done)
	}
	return t.elapsedLocked()
}

func (t *ElapsedTracker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Run calls onTick every interval until ctx is cancelled or the tracker stops. running is
// false only on the last call, made once the tracker has stopped.
// Cancelling ctx only ends this loop; the tracker keeps running.
func (t *ElapsedTracker) Run(ctx context.Context, interval time.Duration, onTick func(elapsed time.Duration, running bool)) {
	t.mu.Lock()
	if !t.running {
		final := t.elapsedLocked()
		t.mu.Unlock()
		onTick(final, false)
		return
	}
	done := t.done
	t.mu.Unlock()

	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	onTick(t.reading())
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			onTick(t.Tick(), false)
			return
		case <-ticker.C:
			onTick(t.reading())
		}
	}
}

func (t *ElapsedTracker) reading() (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsedLocked(), t.running
}

func (t *ElapsedTracker) elapsedLocked() time.Duration {
	if t.startedAt.IsZero() {
		return 0
	}
	end := t.stoppedAt
	if t.running {
		end = t.clock.Now()
	}
	if d := end.Sub(t.startedAt); d > 0 {
		return d
	}
	return 0
}

// ElapsedFor derives the elapsed dispute time from the persisted log.
//
//   - EM_DISPUTA: now - iniciadaEm (keeps advancing)
//   - DISPUTA_CONCLUIDA and later: finalizadaEm - iniciadaEm (fixed)
//
// ok is false when the dispute has not started.
func ElapsedFor(b entities.Bid, now time.Time) (time.Duration, bool) {
	if b.DisputaLog == nil || b.DisputaLog.IniciadaEm == nil {
		return 0, false
	}
	start := *b.DisputaLog.IniciadaEm
	end := now
	if b.Status != entities.BidStatusEmDisputa {
		if b.DisputaLog.FinalizadaEm == nil {
			return 0, false
		}
		end = *b.DisputaLog.FinalizadaEm
	}
	if d := end.Sub(start); d > 0 {
		return d, true
	}
	return 0, true
}

// FormatDuration renders d as HH:MM:SS, truncated to whole seconds. Hours are not capped at 24.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// TrackerRegistry holds the live tracker of every active dispute served by this process.
//
// Concluded disputes are remembered so a reader holding a snapshot taken before the
// conclusion cannot bring their timer back.
type TrackerRegistry struct {
	clock clock.Clock

	mu        sync.Mutex
	trackers  map[string]*ElapsedTracker
	concluded map[string]struct{}
}

func NewTrackerRegistry(c clock.Clock) *TrackerRegistry {
	return &TrackerRegistry{
		clock:     c,
		trackers:  make(map[string]*ElapsedTracker),
		concluded: make(map[string]struct{}),
	}
}

// Start creates (or restarts) the tracker of bidID from startedAt.
func (r *TrackerRegistry) Start(bidID string, startedAt time.Time) *ElapsedTracker {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.concluded, bidID)
	t, ok := r.trackers[bidID]
	if !ok {
		t = NewElapsedTracker(r.clock)
		r.trackers[bidID] = t
	}
	t.StartAt(startedAt)
	return t
}

// Ensure returns the tracker of an active dispute, rebuilding it from IniciadaEm when this
// process has none (e.g. after a restart). Non-active bids get nil, and a bid whose dispute
// is already over has its leftover tracker dropped.
func (r *TrackerRegistry) Ensure(b entities.Bid) *ElapsedTracker {
	if b.Status != entities.BidStatusEmDisputa {
		if b.Status.HasDisputeStarted() {
			r.Conclude(b.ID)
		}
		return nil
	}
	if b.DisputaLog == nil || b.DisputaLog.IniciadaEm == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, over := r.concluded[b.ID]; over {
		return nil
	}
	t, ok := r.trackers[b.ID]
	if ok && t.Running() {
		return t
	}
	if !ok {
		t = NewElapsedTracker(r.clock)
		r.trackers[b.ID] = t
	}
	t.StartAt(*b.DisputaLog.IniciadaEm)
	return t
}

// Stop freezes the tracker of bidID, returning whether one was running.
func (r *TrackerRegistry) Stop(bidID string) (time.Duration, bool) {
	r.mu.Lock()
	t, ok := r.trackers[bidID]
	r.mu.Unlock()
	if !ok || !t.Running() {
		return 0, false
	}
	return t.Stop(), true
}

// Remove drops the tracker of bidID, stopping it first.
func (r *TrackerRegistry) Remove(bidID string) {
	r.mu.Lock()
	t, ok := r.trackers[bidID]
	delete(r.trackers, bidID)
	r.mu.Unlock()
	if ok {
		t.Stop()
	}
}

// Conclude drops the tracker of bidID and refuses to rebuild it from then on.
func (r *TrackerRegistry) Conclude(bidID string) {
	r.mu.Lock()
	t, ok := r.trackers[bidID]
	delete(r.trackers, bidID)
	r.concluded[bidID] = struct{}{}
	r.mu.Unlock()
	if ok {
		t.Stop()
	}
}

// Concluded reports whether this process saw the dispute of bidID end.
func (r *TrackerRegistry) Concluded(bidID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.concluded[bidID]
	return ok
}

// Len reports how many trackers are registered.
func (r *TrackerRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.trackers)
}
