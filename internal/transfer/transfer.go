// Package transfer moves the application collection in and out of the
// tracker as a JSON document.
package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/jobtracker/internal/domain"
)

// FormatError rejects an import document. No part of a rejected document is
// applied.
type FormatError struct {
	Message string
	Err     error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *FormatError) Unwrap() []error {
	if e.Err != nil {
		return []error{domain.ErrInvalidFormat, e.Err}
	}
	return []error{domain.ErrInvalidFormat}
}

// Mode selects how an import is reconciled with the current collection.
type Mode string

const (
	ModeMerge   Mode = "merge"
	ModeReplace Mode = "replace"
)

// ParseMode parses s, defaulting to merge when s is empty.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeMerge:
		return ModeMerge, nil
	case ModeReplace:
		return ModeReplace, nil
	}
	return "", fmt.Errorf("%w: unknown import mode %q", domain.ErrInvalidInput, s)
}

// Result reports the outcome of an import.
type Result struct {
	Mode              Mode `json:"mode"`
	Imported          int  `json:"imported"`
	DuplicatesSkipped int  `json:"duplicatesSkipped"`
	Total             int  `json:"total"`
}

// Export encodes apps as an indented JSON array. A nil collection encodes as
// an empty array.
func Export(apps []domain.Application) ([]byte, error) {
	if apps == nil {
		apps = []domain.Application{}
	}
	data, err := json.MarshalIndent(apps, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode applications: %w", err)
	}
	return data, nil
}

// FileName returns the download name for an export taken at t.
func FileName(t time.Time) string {
	return "applications-" + t.Format(time.DateOnly) + ".json"
}

// Candidate is a structurally valid import document awaiting a decision.
type Candidate struct {
	Applications []domain.Application
}

// Count is the number of elements in the document.
func (c *Candidate) Count() int {
	return len(c.Applications)
}

// Parse checks that data is a JSON array whose elements are all objects.
// Element fields are not validated: an element is decoded leniently and
// keeps any fields the tracker does not model.
func Parse(data []byte) (*Candidate, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &FormatError{Message: "Invalid file format"}
		}
		return nil, &FormatError{Message: "Error reading file", Err: err}
	}
	if items == nil {
		return nil, &FormatError{Message: "Invalid file format"}
	}

	apps := make([]domain.Application, 0, len(items))
	for i, item := range items {
		if !bytes.HasPrefix(bytes.TrimSpace(item), []byte("{")) {
			return nil, &FormatError{Message: "Invalid file format", Err: fmt.Errorf("element %d is not an object", i)}
		}
		var app domain.Application
		if err := json.Unmarshal(item, &app); err != nil {
			return nil, &FormatError{Message: "Invalid file format", Err: fmt.Errorf("element %d: %w", i, err)}
		}
		apps = append(apps, app)
	}
	return &Candidate{Applications: apps}, nil
}

// Merge appends to current every imported application whose id is not
// already present. Unlike a plain membership test against current, an id
// repeated within imported is kept only at its first occurrence and the
// repeats count as duplicates, so the merged collection never holds two
// applications with one id. Ids are compared as text, so a numeric id 1
// matches "1". current is not modified.
func Merge(current, imported []domain.Application) ([]domain.Application, Result) {
	seen := make(map[string]struct{}, len(current)+len(imported))
	for _, app := range current {
		seen[app.ID] = struct{}{}
	}

	merged := make([]domain.Application, len(current), len(current)+len(imported))
	copy(merged, current)
	for _, app := range imported {
		if _, dup := seen[app.ID]; dup {
			continue
		}
		seen[app.ID] = struct{}{}
		merged = append(merged, app)
	}

	kept := len(merged) - len(current)
	return merged, Result{
		Mode:              ModeMerge,
		Imported:          kept,
		DuplicatesSkipped: len(imported) - kept,
		Total:             len(imported),
	}
}
