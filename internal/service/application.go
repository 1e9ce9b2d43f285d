package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/store"
	"github.com/msomdec/jobtracker/internal/validate"
)

// ApplicationService manages the tracked job applications.
type ApplicationService struct {
	store  *store.Store
	notify Notifier
	now    func() time.Time
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(st *store.Store, notify Notifier) *ApplicationService {
	return &ApplicationService{store: st, notify: notify, now: time.Now}
}

// Create validates d and adds it as a new application.
func (s *ApplicationService) Create(d domain.ApplicationDraft) (*domain.Application, error) {
	app, err := applicationFromDraft(d)
	if err != nil {
		return nil, err
	}
	app.ID = uuid.NewString()

	s.store.Dispatch(store.AddApplication{Application: app})
	s.show("Application added successfully")
	return s.Get(app.ID)
}

// Update replaces the fields of the application with id.
func (s *ApplicationService) Update(id string, d domain.ApplicationDraft) (*domain.Application, error) {
	if _, ok := s.store.State().Application(id); !ok {
		return nil, fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}

	app, err := applicationFromDraft(d)
	if err != nil {
		return nil, err
	}
	app.ID = id

	s.store.Dispatch(store.UpdateApplication{Application: app})
	s.show("Application updated successfully")
	return s.Get(id)
}

// Delete removes the application with id. Deleting an unknown id succeeds.
func (s *ApplicationService) Delete(id string) {
	s.store.Dispatch(store.DeleteApplication{ID: id})
	s.show("Application deleted successfully")
}

// Get returns the application with id.
func (s *ApplicationService) Get(id string) (*domain.Application, error) {
	app, ok := s.store.State().Application(id)
	if !ok {
		return nil, fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	return &app, nil
}

// List returns the applications matching q.
func (s *ApplicationService) List(q ApplicationQuery) ([]domain.Application, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q.Apply(s.store.State().Applications), nil
}

// Stats counts the applications per status.
func (s *ApplicationService) Stats() ApplicationStats {
	return countApplications(s.store.State().Applications)
}

// DraftFromJob returns a new application form prefilled from a job listing.
func (s *ApplicationService) DraftFromJob(jobID string) (*domain.ApplicationDraft, error) {
	job, ok := s.store.State().Job(jobID)
	if !ok {
		return nil, fmt.Errorf("job %s: %w", jobID, domain.ErrNotFound)
	}
	return &domain.ApplicationDraft{
		Company:     job.Company,
		Title:       job.Title,
		Status:      string(domain.StatusApplied),
		AppliedDate: s.now().Format(time.DateOnly),
	}, nil
}

func (s *ApplicationService) show(message string) {
	if s.notify != nil {
		s.notify.Show(message, domain.ToastSuccess)
	}
}

func applicationFromDraft(d domain.ApplicationDraft) (domain.Application, error) {
	res := validate.ApplicationForm(d)
	if !res.Valid {
		return domain.Application{}, res.Err()
	}

	status := domain.ApplicationStatus(strings.TrimSpace(d.Status))
	if !status.Valid() {
		return domain.Application{}, &domain.ValidationError{Fields: map[string]string{"status": "Status must be one of Applied, Interviewing, Offer, Rejected"}}
	}

	applied, err := parseDate(d.AppliedDate)
	if err != nil {
		return domain.Application{}, &domain.ValidationError{Fields: map[string]string{"appliedDate": "Application date is invalid"}}
	}

	return domain.Application{
		Company:     strings.TrimSpace(d.Company),
		Title:       strings.TrimSpace(d.Title),
		Status:      status,
		AppliedDate: applied,
		Notes:       d.Notes,
	}, nil
}
