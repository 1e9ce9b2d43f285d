package transfer

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/store"
)

// Notifier surfaces a message to the user.
type Notifier interface {
	Show(message string, kind domain.ToastKind)
}

// Reconciler exports the store's applications and imports documents back
// into it.
type Reconciler struct {
	store  *store.Store
	notify Notifier
	now    func() time.Time
}

// NewReconciler creates a new Reconciler.
func NewReconciler(s *store.Store, notify Notifier) *Reconciler {
	return &Reconciler{store: s, notify: notify, now: time.Now}
}

// Export returns the current applications as a document together with its
// download name.
func (r *Reconciler) Export() ([]byte, string, error) {
	data, err := Export(r.store.State().Applications)
	if err != nil {
		return nil, "", err
	}
	r.show("Applications exported successfully", domain.ToastSuccess)
	return data, FileName(r.now()), nil
}

// Preview parses data without changing anything.
func (r *Reconciler) Preview(data []byte) (*Candidate, error) {
	c, err := Parse(data)
	if err != nil {
		r.rejected(err)
		return nil, err
	}
	return c, nil
}

// Import parses data and applies it in the given mode with a single
// SetApplications.
func (r *Reconciler) Import(data []byte, mode Mode) (Result, error) {
	c, err := Parse(data)
	if err != nil {
		r.rejected(err)
		return Result{}, err
	}

	switch mode {
	case ModeReplace:
		r.store.Dispatch(store.SetApplications{Applications: c.Applications})
		r.show(fmt.Sprintf("Replaced all applications with %d imported applications", c.Count()), domain.ToastSuccess)
		slog.Info("applications replaced", "count", c.Count())
		return Result{Mode: ModeReplace, Imported: c.Count(), Total: c.Count()}, nil

	case ModeMerge:
		merged, res := Merge(r.store.State().Applications, c.Applications)
		r.store.Dispatch(store.SetApplications{Applications: merged})
		r.show(fmt.Sprintf("Imported %d new applications (%d duplicates skipped)", res.Imported, res.DuplicatesSkipped), domain.ToastSuccess)
		slog.Info("applications merged", "imported", res.Imported, "skipped", res.DuplicatesSkipped)
		return res, nil
	}
	return Result{}, fmt.Errorf("%w: unknown import mode %q", domain.ErrInvalidInput, mode)
}

func (r *Reconciler) rejected(err error) {
	var fe *FormatError
	if errors.As(err, &fe) {
		slog.Warn("import rejected", "error", err)
		r.show(fe.Message, domain.ToastError)
	}
}

func (r *Reconciler) show(message string, kind domain.ToastKind) {
	if r.notify != nil {
		r.notify.Show(message, kind)
	}
}
