// Package notify displays reconciler notices: an in-memory banner that
// auto-dismisses after a TTL, and a slog-backed notifier.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kikiarya/hsc-planner/internal/reconciler"
)

// DefaultTTL is how long a notice stays visible.
const DefaultTTL = 3 * time.Second

// Event is published to subscribers when a notice appears or is dismissed.
type Event struct {
	Notice    reconciler.Notice
	Dismissed bool
}

type entry struct {
	notice reconciler.Notice
	timer  *time.Timer
}

// Banner holds the currently visible notices.
type Banner struct {
	ttl time.Duration
	log *slog.Logger

	mu      sync.Mutex
	visible []entry
	subs    map[int]chan Event
	nextSub int
	closed  bool
}

var _ reconciler.Notifier = (*Banner)(nil)

// NewBanner creates a Banner. A non-positive ttl uses DefaultTTL and a nil
// log uses slog.Default.
func NewBanner(ttl time.Duration, log *slog.Logger) *Banner {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &Banner{
		ttl:  ttl,
		log:  log.With("component", "banner"),
		subs: make(map[int]chan Event),
	}
}

// Notify shows n and schedules its dismissal.
func (b *Banner) Notify(n reconciler.Notice) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	id := n.ID
	b.visible = append(b.visible, entry{
		notice: n,
		timer:  time.AfterFunc(b.ttl, func() { b.Dismiss(id) }),
	})
	b.publishLocked(Event{Notice: n})
}

// Dismiss hides the notice with id. Unknown ids are ignored.
func (b *Banner) Dismiss(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, e := range b.visible {
		if e.notice.ID != id {
			continue
		}
		e.timer.Stop()
		b.visible = append(b.visible[:i:i], b.visible[i+1:]...)
		b.publishLocked(Event{Notice: e.notice, Dismissed: true})
		return
	}
}

// Visible returns the notices currently shown, oldest first.
func (b *Banner) Visible() []reconciler.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]reconciler.Notice, len(b.visible))
	for i, e := range b.visible {
		out[i] = e.notice
	}
	return out
}

// Subscribe returns a channel of events and a cancel func. Slow subscribers
// lose events once buffer is full.
func (b *Banner) Subscribe(buffer int) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextSub
	b.nextSub++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

// Close stops pending timers and closes every subscriber channel.
func (b *Banner) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, e := range b.visible {
		e.timer.Stop()
	}
	b.visible = nil
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

func (b *Banner) publishLocked(ev Event) {
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			b.log.Warn("subscriber buffer full, event dropped",
				slog.String("notice_id", ev.Notice.ID.String()),
			)
		}
	}
}
