package validate_test

import (
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/validate"
)

func TestApplicationForm_Empty(t *testing.T) {
	res := validate.ApplicationForm(domain.ApplicationDraft{})
	if res.Valid {
		t.Fatal("expected empty draft to be invalid")
	}

	got := slices.Sorted(maps.Keys(res.Errors))
	want := []string{"appliedDate", "company", "status", "title"}
	if !slices.Equal(got, want) {
		t.Fatalf("error keys = %v, want %v", got, want)
	}
}

func TestApplicationForm_WhitespaceIsBlank(t *testing.T) {
	res := validate.ApplicationForm(domain.ApplicationDraft{
		Company:     "  ",
		Title:       "Engineer",
		Status:      "Applied",
		AppliedDate: "2024-03-01",
	})
	if res.Valid {
		t.Fatal("expected whitespace company to be invalid")
	}
	if len(res.Errors) != 1 || res.Errors["company"] == "" {
		t.Fatalf("expected only company error, got %v", res.Errors)
	}
}

func TestApplicationForm_Valid(t *testing.T) {
	res := validate.ApplicationForm(domain.ApplicationDraft{
		Company:     "TechCorp",
		Title:       "Engineer",
		Status:      "Applied",
		AppliedDate: "2024-03-01",
	})
	if !res.Valid || len(res.Errors) != 0 {
		t.Fatalf("expected valid, got %+v", res)
	}
	if res.Err() != nil {
		t.Fatalf("Err() = %v, want nil", res.Err())
	}
}

func TestJobForm_Empty(t *testing.T) {
	res := validate.JobForm(domain.JobDraft{})
	got := slices.Sorted(maps.Keys(res.Errors))
	want := []string{"company", "description", "employmentType", "title"}
	if res.Valid || !slices.Equal(got, want) {
		t.Fatalf("got valid=%v keys=%v, want invalid with %v", res.Valid, got, want)
	}
}

func TestResultErr_IsInvalidInput(t *testing.T) {
	err := validate.JobForm(domain.JobDraft{}).Err()
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || len(verr.Fields) != 4 {
		t.Fatalf("expected ValidationError with 4 fields, got %v", err)
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"a@b.co", true},
		{"user@example", false},
		{"user example@x.com", false},
		{"@example.com", false},
		{"user@@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := validate.Email(tt.in); got != tt.want {
			t.Errorf("Email(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPassword(t *testing.T) {
	if validate.Password("12345") {
		t.Error("expected 5 chars to be rejected")
	}
	if !validate.Password("123456") {
		t.Error("expected 6 chars to be accepted")
	}
}

func TestSignupForm_CompanyNeedsName(t *testing.T) {
	res := validate.SignupForm(domain.SignupDraft{
		Name:     "Acme HR",
		Email:    "hr@acme.com",
		Password: "secret1",
		Role:     domain.RoleCompany,
	})
	if res.Valid {
		t.Fatal("expected company signup without company name to be invalid")
	}
	if _, ok := res.Errors["companyName"]; !ok {
		t.Fatalf("expected companyName error, got %v", res.Errors)
	}
}

func TestLoginForm_InvalidEmail(t *testing.T) {
	res := validate.LoginForm(domain.LoginDraft{Email: "nope", Password: "x"})
	if res.Errors["email"] != "Please enter a valid email" {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
}
