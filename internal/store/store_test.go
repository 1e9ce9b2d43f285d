package store_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/store"
)

func TestStore_DispatchNotifiesListeners(t *testing.T) {
	s := store.New(store.WithClock(func() time.Time { return t0 }))

	var got []store.Action
	unsubscribe := s.Subscribe(func(prev, next store.State, a store.Action) {
		got = append(got, a)
		assert.Len(t, next.Applications, len(prev.Applications)+1)
	})

	s.Dispatch(store.AddApplication{Application: domain.Application{ID: "1"}})
	require.Len(t, got, 1)
	assert.Len(t, s.State().Applications, 1)

	unsubscribe()
	s.Dispatch(store.AddApplication{Application: domain.Application{ID: "2"}})
	assert.Len(t, got, 1)
}

func TestStore_NestedDispatchRunsAfterCurrent(t *testing.T) {
	s := store.New()

	var order []string
	s.Subscribe(func(prev, next store.State, a store.Action) {
		switch a := a.(type) {
		case store.AddApplication:
			order = append(order, "add:"+a.Application.ID)
			s.Dispatch(store.ShowToast{Toast: domain.Toast{ID: "t", Message: "added"}})
			// applied at once, delivered after the current listeners
			assert.NotNil(t, s.State().Toast)
			assert.Nil(t, next.Toast)
		case store.ShowToast:
			order = append(order, "toast")
		}
	})
	s.Subscribe(func(prev, next store.State, a store.Action) {
		if _, ok := a.(store.AddApplication); ok {
			order = append(order, "second-listener")
		}
	})

	s.Dispatch(store.AddApplication{Application: domain.Application{ID: "1"}})

	assert.Equal(t, []string{"add:1", "second-listener", "toast"}, order)
	require.NotNil(t, s.State().Toast)
}

func TestStore_ConcurrentDispatchIsSerialized(t *testing.T) {
	s := store.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(store.AddApplication{Application: domain.Application{}})
		}()
	}
	wg.Wait()

	// Every transition is applied before the dispatching goroutines return.
	assert.Len(t, s.State().Applications, 50)
}

func TestStore_WithState(t *testing.T) {
	st := store.Initial()
	st.Theme = domain.ThemeDark
	s := store.New(store.WithState(st), store.WithIDGenerator(func() string { return "fixed" }))
	assert.Equal(t, domain.ThemeDark, s.State().Theme)

	s.Dispatch(store.AddJob{Job: domain.Job{Title: "x"}})
	job, ok := s.State().Job("fixed")
	require.True(t, ok)
	assert.Equal(t, "x", job.Title)
}

func TestStore_UnsubscribeKeepsOtherListenersInOrder(t *testing.T) {
	s := store.New()

	var order []string
	s.Subscribe(func(prev, next store.State, a store.Action) { order = append(order, "first") })
	drop := s.Subscribe(func(prev, next store.State, a store.Action) { order = append(order, "second") })
	s.Subscribe(func(prev, next store.State, a store.Action) { order = append(order, "third") })

	drop()
	s.Dispatch(store.SetTheme{Theme: domain.ThemeDark})

	assert.Equal(t, []string{"first", "third"}, order)
}
