package store_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/store"
)

func TestToaster_AutoDismiss(t *testing.T) {
	s := store.New()
	toaster := store.NewToaster(s, 20*time.Millisecond)

	toaster.Show("Saved", "")
	toast := s.State().Toast
	require.NotNil(t, toast)
	assert.Equal(t, "Saved", toast.Message)
	assert.Equal(t, domain.ToastSuccess, toast.Kind)

	assert.Eventually(t, func() bool { return s.State().Toast == nil }, time.Second, 5*time.Millisecond)
}

func TestToaster_LastShowWins(t *testing.T) {
	s := store.New()
	toaster := store.NewToaster(s, 200*time.Millisecond)

	toaster.Show("first", domain.ToastWarning)
	time.Sleep(120 * time.Millisecond)
	toaster.Show("second", domain.ToastError)

	// The first dismissal would have fired by now had it not been replaced.
	time.Sleep(120 * time.Millisecond)
	toast := s.State().Toast
	require.NotNil(t, toast)
	assert.Equal(t, "second", toast.Message)

	assert.Eventually(t, func() bool { return s.State().Toast == nil }, time.Second, 5*time.Millisecond)
}

func TestToaster_Dismiss(t *testing.T) {
	s := store.New()
	toaster := store.NewToaster(s, time.Hour)

	toaster.Show("sticky", domain.ToastSuccess)
	require.NotNil(t, s.State().Toast)

	toaster.Dismiss()
	assert.Nil(t, s.State().Toast)
}

func TestNewToaster_DefaultTimeout(t *testing.T) {
	s := store.New()
	toaster := store.NewToaster(s, 0)
	toaster.Show("x", domain.ToastSuccess)
	// still visible well before the default timeout
	assert.NotNil(t, s.State().Toast)
	toaster.Dismiss()
}

func TestToaster_ConcurrentShowsAreAllDismissed(t *testing.T) {
	s := store.New()
	toaster := store.NewToaster(s, 30*time.Millisecond)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			toaster.Show(fmt.Sprintf("toast %d", i), domain.ToastSuccess)
		}()
	}
	wg.Wait()

	assert.Eventually(t, func() bool { return s.State().Toast == nil }, time.Second, 5*time.Millisecond)
}

func TestToaster_DismissesToastsDispatchedDirectly(t *testing.T) {
	s := store.New()
	store.NewToaster(s, 20*time.Millisecond)

	s.Dispatch(store.ShowToast{Toast: domain.Toast{ID: "direct", Message: "hi", Kind: domain.ToastSuccess}})
	require.NotNil(t, s.State().Toast)

	assert.Eventually(t, func() bool { return s.State().Toast == nil }, time.Second, 5*time.Millisecond)
}
