// Package reconciler keeps a local list of selected subjects convergent with
// a remote store. Toggles are applied to the local view immediately and
// confirmed or rolled back when the store answers.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/kikiarya/hsc-planner/internal/domain"
)

// Store is the authoritative selection store.
// Create reports a duplicate natural key with an error wrapping
// domain.ErrAlreadyExists.
type Store interface {
	List(ctx context.Context) ([]Confirmed, error)
	Create(ctx context.Context, item Item) (Confirmed, error)
	Delete(ctx context.Context, id string) error
}

// Policy selects how toggles are serialized.
type Policy int

const (
	// PerKey drops a toggle only while the same key is in flight.
	PerKey Policy = iota
	// Global drops every toggle while any key is in flight.
	Global
)

func (p Policy) String() string {
	if p == Global {
		return "global"
	}
	return "per_key"
}

const (
	DefaultRequestTimeout = 10 * time.Second
	maxRefreshAttempts    = 3
)

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithPolicy sets the serialization policy. Default PerKey.
func WithPolicy(p Policy) Option {
	return func(r *Reconciler) { r.policy = p }
}

// WithRequestTimeout bounds every store call. Non-positive values are ignored.
func WithRequestTimeout(d time.Duration) Option {
	return func(r *Reconciler) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithTempID replaces the pending identity generator.
func WithTempID(fn func() string) Option {
	return func(r *Reconciler) {
		if fn != nil {
			r.newTempID = fn
		}
	}
}

func defaultTempID() string { return "tmp-" + uuid.NewString() }

// op is the in-flight state of one key.
type op struct {
	action  Action
	pending Pending
	removed Confirmed
	// index is where removed sat in the local view; rollback reinserts there.
	index int
	// reconciling is set once the store reported a conflict and the list is
	// being refetched; refresh must not re-apply the overlay.
	reconciling bool
}

// Reconciler owns the local selection view.
type Reconciler struct {
	store     Store
	notifier  Notifier
	log       *slog.Logger
	policy    Policy
	timeout   time.Duration
	newTempID func() string

	mu       sync.Mutex
	items    []Record
	inflight map[Key]*op
	// gen counts settled mutations; refresh refetches if it moved mid-fetch.
	gen uint64

	wg      sync.WaitGroup
	refresh singleflight.Group
}

// New creates a Reconciler with an empty local view. Call Refresh to load it.
func New(store Store, notifier Notifier, log *slog.Logger, opts ...Option) *Reconciler {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if log == nil {
		log = slog.Default()
	}
	r := &Reconciler{
		store:     store,
		notifier:  notifier,
		log:       log.With("component", "reconciler"),
		policy:    PerKey,
		timeout:   DefaultRequestTimeout,
		newTempID: defaultTempID,
		inflight:  make(map[Key]*op),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Toggle flips the selection state of item. The local view is mutated before
// Toggle returns; the store call runs in the background. The returned channel
// yields exactly one Outcome and is then closed.
func (r *Reconciler) Toggle(ctx context.Context, item Item) <-chan Outcome {
	out := make(chan Outcome, 1)

	if !item.Key.Valid() {
		out <- Outcome{
			Key:    item.Key,
			Action: ActionNone,
			Status: StatusDropped,
			Err:    fmt.Errorf("toggle %q: %w", item.Key.String(), domain.ErrValidation),
		}
		close(out)
		return out
	}
	item.Key = item.Key.normalize()
	key := item.Key

	r.mu.Lock()
	if r.busyLocked(key) {
		r.mu.Unlock()
		r.log.DebugContext(ctx, "toggle dropped, key in flight",
			slog.String("key", key.String()),
			slog.String("policy", r.policy.String()),
		)
		out <- Outcome{Key: key, Action: ActionNone, Status: StatusDropped}
		close(out)
		return out
	}

	var (
		o        *op
		removeID string
	)
	idx := r.indexLocked(key)
	if idx < 0 {
		p := Pending{TempID: r.newTempID(), Key: key, Meta: item.Meta}
		r.items = append(r.items, p)
		o = &op{action: ActionAdd, pending: p}
	} else {
		// A Pending record implies its key is in flight, so this is Confirmed.
		c := r.items[idx].(Confirmed)
		r.items = append(r.items[:idx:idx], r.items[idx+1:]...)
		o = &op{action: ActionRemove, removed: c, index: idx}
		removeID = c.ID
	}
	action := o.action
	r.inflight[key] = o
	r.wg.Add(1)
	r.mu.Unlock()

	notice := Notice{ID: uuid.New(), Kind: NoticeSuccess, Key: key}
	if action == ActionAdd {
		notice.Message = key.Name + " added to your selection"
	} else {
		notice.Message = key.Name + " removed from your selection"
	}
	r.notifier.Notify(notice)

	go r.settle(ctx, o, action, key, removeID, notice, out)
	return out
}

// settle runs the store call for o. o.removed and o.index are rewritten by
// refresh, so they are only read under r.mu; key and removeID are captured
// by Toggle.
func (r *Reconciler) settle(ctx context.Context, o *op, action Action, key Key, removeID string, notice Notice, out chan<- Outcome) {
	defer r.wg.Done()
	defer close(out)

	var res Outcome
	if action == ActionAdd {
		res = r.settleAdd(ctx, o, notice)
	} else {
		res = r.settleRemove(ctx, o, key, removeID, notice)
	}

	if res.Err != nil {
		r.log.WarnContext(ctx, "toggle settled with error",
			slog.String("key", res.Key.String()),
			slog.String("action", string(res.Action)),
			slog.String("status", string(res.Status)),
			slog.String("error", res.Err.Error()),
		)
	} else {
		r.log.DebugContext(ctx, "toggle settled",
			slog.String("key", res.Key.String()),
			slog.String("action", string(res.Action)),
			slog.String("status", string(res.Status)),
		)
	}
	out <- res
}

func (r *Reconciler) settleAdd(ctx context.Context, o *op, notice Notice) Outcome {
	key := o.pending.Key
	res := Outcome{Key: key, Action: ActionAdd}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	created, err := r.store.Create(callCtx, Item{Key: key, Meta: o.pending.Meta})
	cancel()

	switch {
	case err == nil:
		created.Key = key
		r.mu.Lock()
		r.confirmLocked(o.pending.TempID, created)
		r.finishLocked(key)
		r.mu.Unlock()
		res.Status = StatusApplied
		return res

	case errors.Is(err, domain.ErrAlreadyExists):
		r.mu.Lock()
		o.reconciling = true
		r.dropPendingLocked(o.pending.TempID)
		r.gen++
		r.mu.Unlock()

		refreshErr := r.Refresh(ctx)

		r.mu.Lock()
		r.finishLocked(key)
		r.mu.Unlock()

		if refreshErr != nil {
			r.fail(notice, refreshErr)
			res.Status = StatusRolledBack
			res.Err = refreshErr
			return res
		}
		res.Status = StatusReconciled
		return res

	default:
		r.mu.Lock()
		r.dropPendingLocked(o.pending.TempID)
		r.finishLocked(key)
		r.mu.Unlock()
		r.fail(notice, err)
		res.Status = StatusRolledBack
		res.Err = err
		return res
	}
}

func (r *Reconciler) settleRemove(ctx context.Context, o *op, key Key, id string, notice Notice) Outcome {
	res := Outcome{Key: key, Action: ActionRemove}

	for attempt := 1; ; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		err := r.store.Delete(callCtx, id)
		cancel()

		r.mu.Lock()
		// A missing row already matches the requested state.
		if err == nil || errors.Is(err, domain.ErrNotFound) {
			// A refresh during the call may have brought in a newer store
			// record for the key; it has to go too.
			next := o.removed.ID
			if next == id {
				r.finishLocked(key)
				r.mu.Unlock()
				res.Status = StatusApplied
				return res
			}
			if attempt < maxRefreshAttempts {
				r.mu.Unlock()
				r.log.DebugContext(ctx, "removed record replaced by refresh, deleting again",
					slog.String("key", key.String()),
					slog.Int("attempt", attempt),
				)
				id = next
				continue
			}
			err = fmt.Errorf("remove %s: store record keeps changing: %w", key.String(), domain.ErrConflict)
		}

		if r.indexLocked(key) < 0 {
			at := min(o.index, len(r.items))
			r.items = append(r.items[:at], append([]Record{o.removed}, r.items[at:]...)...)
		}
		r.finishLocked(key)
		r.mu.Unlock()

		r.fail(notice, err)
		res.Status = StatusRolledBack
		res.Err = err
		return res
	}
}

// fail replaces the optimistic notice with an error notice.
func (r *Reconciler) fail(optimistic Notice, err error) {
	r.notifier.Dismiss(optimistic.ID)
	r.notifier.Notify(Notice{
		ID:      uuid.New(),
		Kind:    NoticeError,
		Message: err.Error(),
		Key:     optimistic.Key,
	})
}

// Refresh replaces the local view with the store's list. Concurrent callers
// share one fetch. Keys still in flight keep their optimistic state.
func (r *Reconciler) Refresh(ctx context.Context) error {
	_, err, _ := r.refresh.Do("list", func() (any, error) {
		return nil, r.fetch(ctx)
	})
	return err
}

func (r *Reconciler) fetch(ctx context.Context) error {
	for attempt := 1; ; attempt++ {
		r.mu.Lock()
		gen := r.gen
		r.mu.Unlock()

		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		list, err := r.store.List(callCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("refresh selections: %w", err)
		}

		r.mu.Lock()
		if r.gen != gen && attempt < maxRefreshAttempts {
			r.mu.Unlock()
			r.log.DebugContext(ctx, "refresh raced a settled toggle, refetching",
				slog.Int("attempt", attempt),
			)
			continue
		}
		r.applyLocked(list)
		n := len(r.items)
		r.mu.Unlock()

		r.log.DebugContext(ctx, "selections refreshed", slog.Int("count", n))
		return nil
	}
}

// applyLocked adopts list and re-applies the overlay of every in-flight key.
func (r *Reconciler) applyLocked(list []Confirmed) {
	items := make([]Record, 0, len(list)+len(r.inflight))
	seen := make(map[Key]bool, len(list))
	for _, c := range list {
		c.Key = c.Key.normalize()
		if seen[c.Key] {
			continue
		}
		seen[c.Key] = true
		items = append(items, c)
	}

	for key, o := range r.inflight {
		if o.reconciling {
			continue
		}
		switch o.action {
		case ActionAdd:
			if !seen[key] {
				items = append(items, o.pending)
			}
		case ActionRemove:
			for i, rec := range items {
				if rec.RecordKey() == key {
					o.removed = rec.(Confirmed)
					o.index = i
					items = append(items[:i:i], items[i+1:]...)
					break
				}
			}
		}
	}

	r.items = items
}

// confirmLocked swaps the pending record for created. If a refresh already
// brought in the store's copy, that copy is replaced.
func (r *Reconciler) confirmLocked(tempID string, created Confirmed) {
	for i, rec := range r.items {
		if p, ok := rec.(Pending); ok && p.TempID == tempID {
			r.items[i] = created
			return
		}
	}
	if i := r.indexLocked(created.Key); i >= 0 {
		r.items[i] = created
		return
	}
	r.items = append(r.items, created)
}

func (r *Reconciler) dropPendingLocked(tempID string) {
	for i, rec := range r.items {
		if p, ok := rec.(Pending); ok && p.TempID == tempID {
			r.items = append(r.items[:i:i], r.items[i+1:]...)
			return
		}
	}
}

func (r *Reconciler) finishLocked(key Key) {
	delete(r.inflight, key)
	r.gen++
}

func (r *Reconciler) busyLocked(key Key) bool {
	if r.policy == Global {
		return len(r.inflight) > 0
	}
	_, ok := r.inflight[key]
	return ok
}

func (r *Reconciler) indexLocked(key Key) int {
	for i, rec := range r.items {
		if rec.RecordKey() == key {
			return i
		}
	}
	return -1
}

// Items returns a copy of the local view in display order.
func (r *Reconciler) Items() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.items))
	copy(out, r.items)
	return out
}

// Selected reports whether key is in the local view, pending or confirmed.
func (r *Reconciler) Selected(key Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.indexLocked(key.normalize()) >= 0
}

// InFlight reports whether a toggle for key has not settled yet.
func (r *Reconciler) InFlight(key Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.inflight[key.normalize()]
	return ok
}

// Wait blocks until every started toggle has settled.
func (r *Reconciler) Wait() {
	r.wg.Wait()
}
