package access

import (
	"context"
	"sync"

	"aula/internal/shared/goroutine"
	"aula/internal/shared/logger"
)

// WatchHandle cancels a role subscription. Cancel is idempotent.
type WatchHandle struct {
	once   sync.Once
	cancel func()
}

// Cancel detaches the subscriber.
func (h *WatchHandle) Cancel() {
	h.once.Do(h.cancel)
}

// RoleWatcher keeps a live, re-derivable view of one user's role. Triggers
// (auth-state change, token refresh, navigation) may overlap in flight;
// each resolution is stamped with a monotonic sequence at start and applied
// last-write-wins on that sequence, so a slow stale lookup never overwrites
// a fresher one.
type RoleWatcher struct {
	store  *RoleStore
	logger logger.Interface

	mu          sync.Mutex
	nextSeq     uint64
	appliedSeq  uint64
	current     Resolution
	resolved    bool
	subscribers map[uint64]func(Resolution)
	nextSubID   uint64
}

// NewRoleWatcher creates a watcher over the given store. Until the first
// trigger completes, Current reports resolved=false and subscribers hear
// nothing.
func NewRoleWatcher(store *RoleStore, logger logger.Interface) *RoleWatcher {
	return &RoleWatcher{
		store:       store,
		logger:      logger,
		subscribers: make(map[uint64]func(Resolution)),
	}
}

// Current returns the latest applied resolution and whether any resolution
// has completed yet.
func (w *RoleWatcher) Current() (Resolution, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current, w.resolved
}

// Subscribe registers fn for every applied resolution and returns a handle
// that detaches it. If a resolution has already been applied, fn is invoked
// immediately with the current value.
func (w *RoleWatcher) Subscribe(fn func(Resolution)) *WatchHandle {
	w.mu.Lock()
	id := w.nextSubID
	w.nextSubID++
	w.subscribers[id] = fn
	notify := w.resolved
	current := w.current
	w.mu.Unlock()

	if notify {
		fn(current)
	}

	return &WatchHandle{cancel: func() {
		w.mu.Lock()
		delete(w.subscribers, id)
		w.mu.Unlock()
	}}
}

// Trigger starts an asynchronous resolution for userID with the given claims.
// The result is applied only if no newer trigger has been applied first.
func (w *RoleWatcher) Trigger(ctx context.Context, userID uint, claims TokenClaims) {
	w.mu.Lock()
	w.nextSeq++
	seq := w.nextSeq
	w.mu.Unlock()

	goroutine.SafeGo(w.logger, "access.role_resolution", func() {
		res := w.store.ResolveRole(ctx, userID, claims)
		w.apply(seq, res)
	})
}

func (w *RoleWatcher) apply(seq uint64, res Resolution) {
	w.mu.Lock()
	if seq <= w.appliedSeq {
		w.mu.Unlock()
		w.logger.Debugw("dropping stale role resolution", "seq", seq, "applied_seq", w.appliedSeq)
		return
	}
	w.appliedSeq = seq
	w.current = res
	w.resolved = true
	subs := make([]func(Resolution), 0, len(w.subscribers))
	for _, fn := range w.subscribers {
		subs = append(subs, fn)
	}
	w.mu.Unlock()

	for _, fn := range subs {
		fn(res)
	}
}
