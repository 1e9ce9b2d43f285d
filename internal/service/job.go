package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/store"
	"github.com/msomdec/jobtracker/internal/validate"
)

// JobService manages job listings posted by company accounts.
type JobService struct {
	store  *store.Store
	notify Notifier
	now    func() time.Time
}

// NewJobService creates a new JobService.
func NewJobService(st *store.Store, notify Notifier) *JobService {
	return &JobService{store: st, notify: notify, now: time.Now}
}

// Create posts a new listing owned by actor, who must be signed in as a
// company.
func (s *JobService) Create(actor string, d domain.JobDraft) (*domain.Job, error) {
	if err := s.requireCompany(actor); err != nil {
		return nil, err
	}
	job, err := s.jobFromDraft(d)
	if err != nil {
		return nil, err
	}
	job.ID = uuid.NewString()
	job.CreatedBy = actor

	s.store.Dispatch(store.AddJob{Job: job})
	s.show("Job posted successfully")
	slog.Info("job posted", "id", job.ID, "by", actor)
	return s.Get(job.ID)
}

// Update replaces the listing with id. Only its creator may update it.
func (s *JobService) Update(actor, id string, d domain.JobDraft) (*domain.Job, error) {
	if err := s.checkOwner(actor, id); err != nil {
		return nil, err
	}
	job, err := s.jobFromDraft(d)
	if err != nil {
		return nil, err
	}
	job.ID = id

	s.store.Dispatch(store.UpdateJob{Job: job, Actor: actor})
	s.show("Job updated successfully")
	return s.Get(id)
}

// Delete removes the listing with id. Only its creator may delete it.
func (s *JobService) Delete(actor, id string) error {
	if err := s.checkOwner(actor, id); err != nil {
		return err
	}
	s.store.Dispatch(store.DeleteJob{ID: id, Actor: actor})
	s.show("Job deleted successfully")
	return nil
}

// Get returns the listing with id.
func (s *JobService) Get(id string) (*domain.Job, error) {
	job, ok := s.store.State().Job(id)
	if !ok {
		return nil, fmt.Errorf("job %s: %w", id, domain.ErrNotFound)
	}
	return &job, nil
}

// List returns every listing whose title, company, or location contains
// search, ignoring case.
func (s *JobService) List(search string) []domain.Job {
	term := strings.ToLower(search)
	jobs := s.store.State().Jobs
	out := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if term == "" || contains(job.Title, term) || contains(job.Company, term) || contains(job.Location, term) {
			out = append(out, job)
		}
	}
	return out
}

// ListByOwner returns the listings created by owner whose title or location
// contains search, ignoring case.
func (s *JobService) ListByOwner(owner, search string) []domain.Job {
	term := strings.ToLower(search)
	jobs := s.store.State().Jobs
	out := make([]domain.Job, 0)
	for _, job := range jobs {
		if job.CreatedBy != owner {
			continue
		}
		if term == "" || contains(job.Title, term) || contains(job.Location, term) {
			out = append(out, job)
		}
	}
	return out
}

// Stats counts owner's listings and those posted this month.
func (s *JobService) Stats(owner string) JobStats {
	return countJobs(s.ListByOwner(owner, ""), s.now())
}

func (s *JobService) show(message string) {
	if s.notify != nil {
		s.notify.Show(message, domain.ToastSuccess)
	}
}

func (s *JobService) requireCompany(actor string) error {
	sess := s.store.State().Session
	if sess.Email() == "" || sess.Email() != actor {
		return domain.ErrUnauthorized
	}
	if sess.Role != domain.RoleCompany {
		return fmt.Errorf("%w: only company accounts can post jobs", domain.ErrForbidden)
	}
	return nil
}

func (s *JobService) checkOwner(actor, id string) error {
	if err := s.requireCompany(actor); err != nil {
		return err
	}
	job, ok := s.store.State().Job(id)
	if !ok {
		return fmt.Errorf("job %s: %w", id, domain.ErrNotFound)
	}
	if job.CreatedBy != actor {
		return fmt.Errorf("%w: job %s belongs to another account", domain.ErrForbidden, id)
	}
	return nil
}

func (s *JobService) jobFromDraft(d domain.JobDraft) (domain.Job, error) {
	res := validate.JobForm(d)
	if !res.Valid {
		return domain.Job{}, res.Err()
	}

	posted := s.now().UTC()
	if strings.TrimSpace(d.PostedDate) != "" {
		t, err := parseDate(d.PostedDate)
		if err != nil {
			return domain.Job{}, &domain.ValidationError{Fields: map[string]string{"postedDate": "Posted date is invalid"}}
		}
		posted = t
	}

	return domain.Job{
		Title:          strings.TrimSpace(d.Title),
		Company:        strings.TrimSpace(d.Company),
		Location:       strings.TrimSpace(d.Location),
		PostedDate:     posted,
		EmploymentType: strings.TrimSpace(d.EmploymentType),
		SalaryRange:    strings.TrimSpace(d.SalaryRange),
		Description:    d.Description,
		Tags:           SplitTags(d.Tags),
	}, nil
}

// SplitTags splits a comma-separated tag list, trimming each tag and
// dropping empty ones.
func SplitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
