package store

import "github.com/msomdec/jobtracker/internal/domain"

// Action is a state transition request. The set of actions is closed.
type Action interface {
	action()
}

// Hydrate replaces session, collections and theme wholesale. Startup only.
type Hydrate struct{ Snapshot Snapshot }

// Login sets an authenticated session.
type Login struct {
	User domain.UserProfile
	Role domain.Role
}

// Logout clears the session.
type Logout struct{}

// AddApplication appends an application. An empty ID is assigned.
type AddApplication struct{ Application domain.Application }

// UpdateApplication replaces the application with the same ID, keeping its
// ID and CreatedAt.
type UpdateApplication struct{ Application domain.Application }

// DeleteApplication removes the application with ID.
type DeleteApplication struct{ ID string }

// SetApplications replaces the whole application collection.
type SetApplications struct{ Applications []domain.Application }

// AddJob appends a job listing. An empty ID is assigned.
type AddJob struct{ Job domain.Job }

// UpdateJob replaces the listing with the same ID. Actor must be the email
// that created the listing.
type UpdateJob struct {
	Job   domain.Job
	Actor string
}

// DeleteJob removes the listing with ID when Actor created it.
type DeleteJob struct {
	ID    string
	Actor string
}

// SetTheme replaces the theme.
type SetTheme struct{ Theme domain.Theme }

// ShowToast sets the transient notification.
type ShowToast struct{ Toast domain.Toast }

// HideToast clears the notification. A non-empty ID only clears the toast
// with that ID.
type HideToast struct{ ID string }

func (Hydrate) action()           {}
func (Login) action()             {}
func (Logout) action()            {}
func (AddApplication) action()    {}
func (UpdateApplication) action() {}
func (DeleteApplication) action() {}
func (SetApplications) action()   {}
func (AddJob) action()            {}
func (UpdateJob) action()         {}
func (DeleteJob) action()         {}
func (SetTheme) action()          {}
func (ShowToast) action()         {}
func (HideToast) action()         {}
