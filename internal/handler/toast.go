package handler

import (
	"log/slog"
	"net/http"

	datastar "github.com/starfederation/datastar-go/datastar"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/store"
	"github.com/msomdec/jobtracker/internal/view"
)

// ToastHandler pushes the transient notification to the browser.
type ToastHandler struct {
	store   *store.Store
	toaster *store.Toaster
}

// NewToastHandler creates a new ToastHandler.
func NewToastHandler(st *store.Store, toaster *store.Toaster) *ToastHandler {
	return &ToastHandler{store: st, toaster: toaster}
}

// HandleStream patches the toast container whenever the toast changes,
// until the client disconnects.
// GET /api/toasts
func (h *ToastHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	updates := make(chan *domain.Toast, 1)
	unsubscribe := h.store.Subscribe(func(prev, next store.State, _ store.Action) {
		if prev.Toast == next.Toast {
			return
		}
		// Listeners run one at a time, so only the newest toast is kept.
		select {
		case <-updates:
		default:
		}
		updates <- next.Toast
	})
	defer unsubscribe()

	sse := datastar.NewSSE(w, r)
	if err := h.patch(sse, h.store.State().Toast); err != nil {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case t := <-updates:
			if err := h.patch(sse, t); err != nil {
				slog.Debug("toast stream closed", "error", err)
				return
			}
		}
	}
}

// HandleDismiss hides the current toast.
// DELETE /api/toasts
func (h *ToastHandler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	h.toaster.Dismiss()
	w.WriteHeader(http.StatusNoContent)
}

func (h *ToastHandler) patch(sse *datastar.ServerSentEventGenerator, t *domain.Toast) error {
	return sse.PatchElementTempl(view.Toast(t))
}
