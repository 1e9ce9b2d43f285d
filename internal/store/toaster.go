package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/msomdec/jobtracker/internal/domain"
)

// DefaultToastTimeout is how long a toast stays visible before auto-dismiss.
const DefaultToastTimeout = 3 * time.Second

// Toaster shows toasts and dismisses them after a delay. Only the dismissal
// of the most recently shown toast is pending at any time.
type Toaster struct {
	store   *Store
	timeout time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewToaster creates a Toaster. A non-positive timeout uses DefaultToastTimeout.
func NewToaster(s *Store, timeout time.Duration) *Toaster {
	if timeout <= 0 {
		timeout = DefaultToastTimeout
	}
	t := &Toaster{store: s, timeout: timeout}
	s.Subscribe(t.schedule)
	return t
}

// Show displays message. Its dismissal replaces any pending one. An empty
// kind means success.
func (t *Toaster) Show(message string, kind domain.ToastKind) {
	if kind == "" {
		kind = domain.ToastSuccess
	}
	t.store.Dispatch(ShowToast{Toast: domain.Toast{ID: uuid.NewString(), Message: message, Kind: kind}})
}

// schedule arms the dismissal of each toast as its ShowToast is delivered.
// Deliveries follow dispatch order, so the last armed timer belongs to the
// toast in the state.
func (t *Toaster) schedule(_, _ State, a Action) {
	show, ok := a.(ShowToast)
	if !ok {
		return
	}
	id := show.Toast.ID

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.timeout, func() {
		t.store.Dispatch(HideToast{ID: id})
	})
}

// Dismiss hides the current toast now and cancels its pending dismissal.
func (t *Toaster) Dismiss() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
	t.store.Dispatch(HideToast{})
}
