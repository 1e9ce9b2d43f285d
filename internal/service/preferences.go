package service

import (
	"fmt"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/store"
)

// PreferencesService manages the presentation theme.
type PreferencesService struct {
	store *store.Store
}

// NewPreferencesService creates a new PreferencesService.
func NewPreferencesService(st *store.Store) *PreferencesService {
	return &PreferencesService{store: st}
}

// Theme returns the current theme.
func (s *PreferencesService) Theme() domain.Theme {
	return s.store.State().Theme
}

// SetTheme switches to theme, which must be light or dark.
func (s *PreferencesService) SetTheme(theme domain.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: unknown theme %q", domain.ErrInvalidInput, theme)
	}
	s.store.Dispatch(store.SetTheme{Theme: theme})
	return nil
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *PreferencesService) ToggleTheme() domain.Theme {
	next := domain.ThemeDark
	if s.Theme() == domain.ThemeDark {
		next = domain.ThemeLight
	}
	s.store.Dispatch(store.SetTheme{Theme: next})
	return next
}
