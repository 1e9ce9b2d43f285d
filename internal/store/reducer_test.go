package store_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/store"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func envAt(now time.Time) store.Env {
	n := 0
	return store.Env{Now: now, NewID: func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}}
}

func TestReduce_AddApplicationStampsTimes(t *testing.T) {
	s := store.Reduce(store.Initial(), store.AddApplication{Application: domain.Application{
		ID:        "5",
		Title:     "A",
		CreatedAt: t0.Add(-48 * time.Hour),
	}}, envAt(t0))

	require.Len(t, s.Applications, 1)
	got := s.Applications[0]
	assert.Equal(t, "5", got.ID)
	assert.Equal(t, t0, got.CreatedAt, "caller-supplied createdAt must be ignored")
	assert.Equal(t, t0, got.UpdatedAt)
}

func TestReduce_AddApplicationAssignsID(t *testing.T) {
	s := store.Reduce(store.Initial(), store.AddApplication{Application: domain.Application{Title: "A"}}, envAt(t0))
	require.Len(t, s.Applications, 1)
	assert.Equal(t, "gen-1", s.Applications[0].ID)
}

func TestReduce_AddApplicationDuplicateIDIgnored(t *testing.T) {
	s := store.Reduce(store.Initial(), store.AddApplication{Application: domain.Application{ID: "1", Title: "A"}}, envAt(t0))
	s2 := store.Reduce(s, store.AddApplication{Application: domain.Application{ID: "1", Title: "B"}}, envAt(t0))
	require.Len(t, s2.Applications, 1)
	assert.Equal(t, "A", s2.Applications[0].Title)
}

func TestReduce_UpdatePreservesIdentity(t *testing.T) {
	s := store.Reduce(store.Initial(), store.AddApplication{Application: domain.Application{ID: "5", Title: "A"}}, envAt(t0))

	t1 := t0.Add(time.Minute)
	s = store.Reduce(s, store.UpdateApplication{Application: domain.Application{
		ID:        "5",
		Title:     "B",
		CreatedAt: t1.Add(time.Hour),
	}}, envAt(t1))

	got, ok := s.Application("5")
	require.True(t, ok)
	assert.Equal(t, "B", got.Title)
	assert.Equal(t, t0, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(t0))
}

func TestReduce_UpdateNeverPredatesCreation(t *testing.T) {
	s := store.Reduce(store.Initial(), store.AddApplication{Application: domain.Application{ID: "1"}}, envAt(t0))
	s = store.Reduce(s, store.UpdateApplication{Application: domain.Application{ID: "1", Title: "x"}}, envAt(t0.Add(-time.Hour)))
	got, _ := s.Application("1")
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestReduce_UpdateUnknownIsNoop(t *testing.T) {
	s := store.Reduce(store.Initial(), store.AddApplication{Application: domain.Application{ID: "1"}}, envAt(t0))
	s2 := store.Reduce(s, store.UpdateApplication{Application: domain.Application{ID: "missing"}}, envAt(t0))
	assert.Equal(t, s.Applications, s2.Applications)
	assert.Same(t, &s.Applications[0], &s2.Applications[0])
}

func TestReduce_DeleteNonexistentIsNoop(t *testing.T) {
	s := store.Initial()
	for _, id := range []string{"a", "b", "c"} {
		s = store.Reduce(s, store.AddApplication{Application: domain.Application{ID: id}}, envAt(t0))
	}

	s2 := store.Reduce(s, store.DeleteApplication{ID: "nonexistent"}, envAt(t0))
	require.Len(t, s2.Applications, 3)
	assert.Same(t, &s.Applications[0], &s2.Applications[0])
	assert.Equal(t, []string{"a", "b", "c"}, ids(s2.Applications))
}

func TestReduce_DeleteDoesNotMutatePrevious(t *testing.T) {
	s := store.Initial()
	for _, id := range []string{"a", "b", "c"} {
		s = store.Reduce(s, store.AddApplication{Application: domain.Application{ID: id}}, envAt(t0))
	}
	s2 := store.Reduce(s, store.DeleteApplication{ID: "a"}, envAt(t0))

	assert.Equal(t, []string{"b", "c"}, ids(s2.Applications))
	assert.Equal(t, []string{"a", "b", "c"}, ids(s.Applications))
}

func TestReduce_SetApplicationsCopies(t *testing.T) {
	in := []domain.Application{{ID: "x"}}
	s := store.Reduce(store.Initial(), store.SetApplications{Applications: in}, envAt(t0))
	in[0].ID = "mutated"
	assert.Equal(t, "x", s.Applications[0].ID)

	s = store.Reduce(s, store.SetApplications{}, envAt(t0))
	assert.NotNil(t, s.Applications)
	assert.Empty(t, s.Applications)
}

func TestReduce_JobOwnership(t *testing.T) {
	s := store.Reduce(store.Initial(), store.AddJob{Job: domain.Job{
		ID:        "j1",
		Title:     "Engineer",
		CreatedBy: "owner@acme.com",
	}}, envAt(t0))

	t1 := t0.Add(time.Minute)
	s2 := store.Reduce(s, store.UpdateJob{Job: domain.Job{ID: "j1", Title: "Hacked"}, Actor: "other@evil.com"}, envAt(t1))
	got, _ := s2.Job("j1")
	assert.Equal(t, "Engineer", got.Title)

	s3 := store.Reduce(s, store.DeleteJob{ID: "j1", Actor: "other@evil.com"}, envAt(t1))
	assert.Len(t, s3.Jobs, 1)

	s4 := store.Reduce(s, store.UpdateJob{Job: domain.Job{ID: "j1", Title: "Senior Engineer", CreatedBy: "someone@else.com"}, Actor: "owner@acme.com"}, envAt(t1))
	got, _ = s4.Job("j1")
	assert.Equal(t, "Senior Engineer", got.Title)
	assert.Equal(t, "owner@acme.com", got.CreatedBy)
	assert.Equal(t, t0, got.CreatedAt)
	assert.Equal(t, t1, got.UpdatedAt)
	assert.NotNil(t, got.Tags)

	s5 := store.Reduce(s, store.DeleteJob{ID: "j1", Actor: "owner@acme.com"}, envAt(t1))
	assert.Empty(t, s5.Jobs)
}

func TestReduce_LoginLogout(t *testing.T) {
	s := store.Reduce(store.Initial(), store.Login{
		User: domain.UserProfile{Name: "Ann", Email: "ann@example.com"},
		Role: domain.RoleUser,
	}, envAt(t0))
	assert.True(t, s.Session.IsAuthenticated)
	assert.Equal(t, "ann@example.com", s.Session.Email())
	assert.Equal(t, domain.RoleUser, s.Session.Role)

	s = store.Reduce(s, store.Logout{}, envAt(t0))
	assert.Equal(t, domain.Session{}, s.Session)
	assert.Equal(t, "", s.Session.Email())
}

func TestReduce_SetThemeRejectsUnknown(t *testing.T) {
	s := store.Reduce(store.Initial(), store.SetTheme{Theme: domain.ThemeDark}, envAt(t0))
	assert.Equal(t, domain.ThemeDark, s.Theme)

	s = store.Reduce(s, store.SetTheme{Theme: "sepia"}, envAt(t0))
	assert.Equal(t, domain.ThemeDark, s.Theme)
}

func TestReduce_HideToastByID(t *testing.T) {
	s := store.Reduce(store.Initial(), store.ShowToast{Toast: domain.Toast{ID: "new", Message: "hi"}}, envAt(t0))

	s2 := store.Reduce(s, store.HideToast{ID: "old"}, envAt(t0))
	require.NotNil(t, s2.Toast)
	assert.Equal(t, "new", s2.Toast.ID)

	s3 := store.Reduce(s, store.HideToast{ID: "new"}, envAt(t0))
	assert.Nil(t, s3.Toast)

	s4 := store.Reduce(s, store.HideToast{}, envAt(t0))
	assert.Nil(t, s4.Toast)
}

func TestReduce_HydrateReplacesWholesale(t *testing.T) {
	s := store.Reduce(store.Initial(), store.AddApplication{Application: domain.Application{ID: "old"}}, envAt(t0))
	s = store.Reduce(s, store.Hydrate{Snapshot: store.Snapshot{
		Applications: []domain.Application{{ID: "h1"}},
		Theme:        domain.ThemeDark,
	}}, envAt(t0))

	assert.Equal(t, []string{"h1"}, ids(s.Applications))
	assert.NotNil(t, s.Jobs)
	assert.Equal(t, domain.ThemeDark, s.Theme)
	assert.False(t, s.Session.IsAuthenticated)
}

func ids(apps []domain.Application) []string {
	out := make([]string, len(apps))
	for i, a := range apps {
		out[i] = a.ID
	}
	return out
}

func TestReduce_UpdateApplicationKeepsImportedFields(t *testing.T) {
	raw := map[string]json.RawMessage{"id": json.RawMessage(`"1"`), "source": json.RawMessage(`"linkedin"`)}
	s := store.State{Applications: []domain.Application{{ID: "1", Raw: raw}}}

	s = store.Reduce(s, store.UpdateApplication{Application: domain.Application{ID: "1", Title: "x"}}, envAt(t0))

	require.Len(t, s.Applications, 1)
	assert.Equal(t, raw, s.Applications[0].Raw)
	assert.Equal(t, "x", s.Applications[0].Title)
}
