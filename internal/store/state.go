// Package store holds the single authoritative in-memory state of the
// tracker. State changes only through Reduce, driven by Dispatch.
package store

import "github.com/msomdec/jobtracker/internal/domain"

// State is an immutable snapshot. Collections are copy-on-write: a reducer
// that changes a collection allocates a new slice, so callers must treat the
// slices in a State as read-only.
type State struct {
	Session      domain.Session
	Applications []domain.Application
	Jobs         []domain.Job
	Theme        domain.Theme
	Toast        *domain.Toast
}

// Initial returns the state before hydration.
func Initial() State {
	return State{
		Applications: []domain.Application{},
		Jobs:         []domain.Job{},
		Theme:        domain.ThemeLight,
	}
}

// Snapshot is the persisted part of the state supplied to Hydrate.
type Snapshot struct {
	Session      domain.Session
	Applications []domain.Application
	Jobs         []domain.Job
	Theme        domain.Theme
}

// Application returns the application with the given id.
func (s State) Application(id string) (domain.Application, bool) {
	if i := indexApplication(s.Applications, id); i >= 0 {
		return s.Applications[i], true
	}
	return domain.Application{}, false
}

// Job returns the job listing with the given id.
func (s State) Job(id string) (domain.Job, bool) {
	if i := indexJob(s.Jobs, id); i >= 0 {
		return s.Jobs[i], true
	}
	return domain.Job{}, false
}

func indexApplication(apps []domain.Application, id string) int {
	for i := range apps {
		if apps[i].ID == id {
			return i
		}
	}
	return -1
}

func indexJob(jobs []domain.Job, id string) int {
	for i := range jobs {
		if jobs[i].ID == id {
			return i
		}
	}
	return -1
}
