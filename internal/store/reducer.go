package store

import (
	"log/slog"
	"slices"
	"time"

	"github.com/msomdec/jobtracker/internal/domain"
)

// Env supplies the non-deterministic inputs of a transition.
type Env struct {
	Now   time.Time
	NewID func() string
}

// Reduce computes the state that follows s under a. It never mutates s and
// never panics for a well-typed action. Update and Delete of an unknown ID
// return s unchanged.
func Reduce(s State, a Action, env Env) State {
	switch a := a.(type) {
	case Hydrate:
		s.Session = a.Snapshot.Session
		s.Applications = orEmpty(a.Snapshot.Applications)
		s.Jobs = orEmpty(a.Snapshot.Jobs)
		s.Theme = a.Snapshot.Theme
		if !s.Theme.Valid() {
			s.Theme = domain.ThemeLight
		}

	case Login:
		user := a.User
		s.Session = domain.Session{IsAuthenticated: true, User: &user, Role: a.Role}

	case Logout:
		s.Session = domain.Session{}

	case AddApplication:
		app := a.Application
		if app.ID == "" {
			app.ID = env.NewID()
		}
		if indexApplication(s.Applications, app.ID) >= 0 {
			slog.Debug("ignoring add of existing application", "id", app.ID)
			return s
		}
		app.CreatedAt = env.Now
		app.UpdatedAt = env.Now
		s.Applications = append(slices.Clip(s.Applications), app)

	case UpdateApplication:
		i := indexApplication(s.Applications, a.Application.ID)
		if i < 0 {
			slog.Debug("update of unknown application", "id", a.Application.ID)
			return s
		}
		prev := s.Applications[i]
		next := a.Application
		if next.Raw == nil {
			next.Raw = prev.Raw
		}
		next.CreatedAt = prev.CreatedAt
		next.UpdatedAt = later(env.Now, prev.CreatedAt)
		s.Applications = slices.Clone(s.Applications)
		s.Applications[i] = next

	case DeleteApplication:
		i := indexApplication(s.Applications, a.ID)
		if i < 0 {
			slog.Debug("delete of unknown application", "id", a.ID)
			return s
		}
		s.Applications = slices.Delete(slices.Clone(s.Applications), i, i+1)

	case SetApplications:
		s.Applications = orEmpty(slices.Clone(a.Applications))

	case AddJob:
		job := a.Job
		if job.ID == "" {
			job.ID = env.NewID()
		}
		if indexJob(s.Jobs, job.ID) >= 0 {
			slog.Debug("ignoring add of existing job", "id", job.ID)
			return s
		}
		job.Tags = orEmpty(slices.Clone(job.Tags))
		job.CreatedAt = env.Now
		job.UpdatedAt = env.Now
		s.Jobs = append(slices.Clip(s.Jobs), job)

	case UpdateJob:
		i := indexJob(s.Jobs, a.Job.ID)
		if i < 0 {
			slog.Debug("update of unknown job", "id", a.Job.ID)
			return s
		}
		prev := s.Jobs[i]
		if prev.CreatedBy != a.Actor {
			slog.Debug("update of job by non-owner", "id", prev.ID, "actor", a.Actor)
			return s
		}
		next := a.Job
		next.Tags = orEmpty(slices.Clone(next.Tags))
		next.CreatedBy = prev.CreatedBy
		next.CreatedAt = prev.CreatedAt
		next.UpdatedAt = later(env.Now, prev.CreatedAt)
		s.Jobs = slices.Clone(s.Jobs)
		s.Jobs[i] = next

	case DeleteJob:
		i := indexJob(s.Jobs, a.ID)
		if i < 0 {
			slog.Debug("delete of unknown job", "id", a.ID)
			return s
		}
		if s.Jobs[i].CreatedBy != a.Actor {
			slog.Debug("delete of job by non-owner", "id", a.ID, "actor", a.Actor)
			return s
		}
		s.Jobs = slices.Delete(slices.Clone(s.Jobs), i, i+1)

	case SetTheme:
		if !a.Theme.Valid() {
			return s
		}
		s.Theme = a.Theme

	case ShowToast:
		t := a.Toast
		s.Toast = &t

	case HideToast:
		if s.Toast == nil {
			return s
		}
		if a.ID != "" && s.Toast.ID != a.ID {
			return s
		}
		s.Toast = nil
	}
	return s
}

func later(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
