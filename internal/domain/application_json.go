package domain

import (
	"bytes"
	"encoding/json"
	"maps"
	"time"
)

// applicationJSON has Application's fields and tags without its methods.
type applicationJSON Application

type applicationField struct {
	name  string
	equal func(a, b Application) bool
}

var applicationFields = []applicationField{
	{"id", func(a, b Application) bool { return a.ID == b.ID }},
	{"company", func(a, b Application) bool { return a.Company == b.Company }},
	{"title", func(a, b Application) bool { return a.Title == b.Title }},
	{"status", func(a, b Application) bool { return a.Status == b.Status }},
	{"appliedDate", func(a, b Application) bool { return a.AppliedDate.Equal(b.AppliedDate) }},
	{"notes", func(a, b Application) bool { return a.Notes == b.Notes }},
	{"createdAt", func(a, b Application) bool { return a.CreatedAt.Equal(b.CreatedAt) }},
	{"updatedAt", func(a, b Application) bool { return a.UpdatedAt.Equal(b.UpdatedAt) }},
}

// MarshalJSON writes a field from Raw while it still holds the value decoded
// from Raw, so an untouched imported element is written back as it was read.
func (a Application) MarshalJSON() ([]byte, error) {
	if a.Raw == nil {
		return json.Marshal(applicationJSON(a))
	}

	canonical, err := canonicalFields(a)
	if err != nil {
		return nil, err
	}
	src := decodeApplication(a.Raw)
	out := maps.Clone(a.Raw)
	for _, f := range applicationFields {
		if f.equal(a, src) {
			continue
		}
		if enc, ok := canonical[f.name]; ok {
			out[f.name] = enc
		} else {
			delete(out, f.name)
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts any JSON object. Known fields are read leniently: a
// numeric id becomes its decimal text, dates may be RFC 3339 or YYYY-MM-DD,
// and a value of the wrong type decodes as the zero value. When the object
// cannot be reproduced from the decoded fields alone, it is kept in Raw.
func (a *Application) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*a = decodeApplication(fields)
	if fields == nil {
		return nil
	}

	canonical, err := canonicalFields(*a)
	if err != nil {
		return err
	}
	if !sameFields(canonical, fields) {
		a.Raw = fields
	}
	return nil
}

func decodeApplication(fields map[string]json.RawMessage) Application {
	return Application{
		ID:          looseString(fields["id"]),
		Company:     looseString(fields["company"]),
		Title:       looseString(fields["title"]),
		Status:      ApplicationStatus(looseString(fields["status"])),
		AppliedDate: looseTime(fields["appliedDate"]),
		Notes:       looseString(fields["notes"]),
		CreatedAt:   looseTime(fields["createdAt"]),
		UpdatedAt:   looseTime(fields["updatedAt"]),
	}
}

func canonicalFields(a Application) (map[string]json.RawMessage, error) {
	a.Raw = nil
	data, err := json.Marshal(applicationJSON(a))
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func sameFields(a, b map[string]json.RawMessage) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || !bytes.Equal(v, w) {
			return false
		}
	}
	return true
}

func looseString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func looseTime(raw json.RawMessage) time.Time {
	s := looseString(raw)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t
	}
	return time.Time{}
}
