package persist

import (
	"context"
	"log/slog"
	"time"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/store"
)

// SaveFailedMessage is shown to the user when a write-through fails.
const SaveFailedMessage = "Unable to save your changes"

// Notifier surfaces a message to the user.
type Notifier interface {
	Show(message string, kind domain.ToastKind)
}

// Sync hydrates a Store from a Bridge and writes every later change back.
type Sync struct {
	bridge  *Bridge
	store   *store.Store
	notify  Notifier
	onTheme func(domain.Theme)
	now     func() time.Time

	ctx         context.Context
	unsubscribe func()
}

// SyncOption configures a Sync.
type SyncOption func(*Sync)

// WithNotifier reports write failures through n.
func WithNotifier(n Notifier) SyncOption {
	return func(s *Sync) { s.notify = n }
}

// WithThemeHook calls fn with the theme after hydration and after every
// theme change.
func WithThemeHook(fn func(domain.Theme)) SyncOption {
	return func(s *Sync) { s.onTheme = fn }
}

// WithSeedClock sets the time the seed data is dated from.
func WithSeedClock(now func() time.Time) SyncOption {
	return func(s *Sync) { s.now = now }
}

// NewSync creates a new Sync. It does nothing until Start.
func NewSync(b *Bridge, st *store.Store, opts ...SyncOption) *Sync {
	s := &Sync{
		bridge: b,
		store:  st,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start subscribes to the store and hydrates it. The subscription is in
// place before hydration so the hydrated state, seeds included, is written
// back immediately.
func (s *Sync) Start(ctx context.Context) {
	s.ctx = context.WithoutCancel(ctx)
	s.unsubscribe = s.store.Subscribe(s.onChange)
	snap := s.LoadSnapshot(ctx)
	s.store.Dispatch(store.Hydrate{Snapshot: snap})
	slog.Info("store hydrated",
		"applications", len(snap.Applications),
		"jobs", len(snap.Jobs),
		"authenticated", snap.Session.IsAuthenticated,
	)
}

// Stop removes the store subscription.
func (s *Sync) Stop() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// LoadSnapshot reads the persisted state. A missing or empty applications
// list is replaced by the demo applications. A missing jobs list is replaced
// by the demo jobs, but a stored empty list is kept.
func (s *Sync) LoadSnapshot(ctx context.Context) store.Snapshot {
	var snap store.Snapshot

	if auth, ok := Load[domain.Session](ctx, s.bridge, KeyAuth); ok {
		if auth.IsAuthenticated && auth.User != nil && auth.Role.Valid() {
			snap.Session = auth
		}
	}

	apps, _ := Load[[]domain.Application](ctx, s.bridge, KeyApplications)
	if len(apps) == 0 {
		apps = SeedApplications(s.now())
	}
	snap.Applications = apps

	jobs, ok := Load[[]domain.Job](ctx, s.bridge, KeyJobs)
	if !ok || jobs == nil {
		jobs = SeedJobs(s.now())
	}
	snap.Jobs = jobs

	theme, _ := Load[domain.Theme](ctx, s.bridge, KeyTheme)
	if !theme.Valid() {
		theme = domain.ThemeLight
	}
	snap.Theme = theme

	return snap
}

func (s *Sync) onChange(prev, next store.State, a store.Action) {
	_, hydrated := a.(store.Hydrate)

	if hydrated || prev.Session != next.Session {
		switch {
		case next.Session.IsAuthenticated:
			s.save(KeyAuth, next.Session)
		case prev.Session.IsAuthenticated:
			s.save(KeyAuth, domain.Session{})
		}
	}
	if hydrated || !sameSlice(prev.Applications, next.Applications) {
		s.save(KeyApplications, next.Applications)
	}
	if hydrated || !sameSlice(prev.Jobs, next.Jobs) {
		s.save(KeyJobs, next.Jobs)
	}
	if hydrated || prev.Theme != next.Theme {
		s.save(KeyTheme, next.Theme)
		if s.onTheme != nil {
			s.onTheme(next.Theme)
		}
	}
}

func (s *Sync) save(key string, v any) {
	ctx := s.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if err := s.bridge.Save(ctx, key, v); err != nil {
		slog.Error("write-through failed", "key", key, "error", err)
		if s.notify != nil {
			s.notify.Show(SaveFailedMessage, domain.ToastError)
		}
	}
}

// sameSlice reports whether a and b are the same collection. Reducers
// allocate a new slice for every change, so identity is enough.
func sameSlice[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
