// Package validate holds the pure form checks shared by the services.
// None of the functions panic: invalid input is reported only through the
// returned Result.
package validate

import (
	"regexp"
	"strings"

	"github.com/msomdec/jobtracker/internal/domain"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result is the outcome of a form check. Errors maps a field name to a
// user-facing message and is empty when Valid is true.
type Result struct {
	Valid  bool              `json:"isValid"`
	Errors map[string]string `json:"errors"`
}

// Err returns nil for a valid result and a *domain.ValidationError otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &domain.ValidationError{Fields: r.Errors}
}

func newResult(errs map[string]string) Result {
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// Required reports whether value has at least one non-whitespace character.
func Required(value string) bool {
	return len(strings.TrimSpace(value)) > 0
}

// Email reports whether s looks like local@domain.tld with no whitespace.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Password reports whether s is long enough to be accepted at signup.
func Password(s string) bool {
	return len(s) >= minPasswordLength
}

// ApplicationForm checks the required application fields.
func ApplicationForm(d domain.ApplicationDraft) Result {
	errs := map[string]string{}
	if !Required(d.Company) {
		errs["company"] = "Company name is required"
	}
	if !Required(d.Title) {
		errs["title"] = "Job title is required"
	}
	if !Required(d.Status) {
		errs["status"] = "Status is required"
	}
	if !Required(d.AppliedDate) {
		errs["appliedDate"] = "Application date is required"
	}
	return newResult(errs)
}

// JobForm checks the required job listing fields.
func JobForm(d domain.JobDraft) Result {
	errs := map[string]string{}
	if !Required(d.Title) {
		errs["title"] = "Job title is required"
	}
	if !Required(d.Company) {
		errs["company"] = "Company name is required"
	}
	if !Required(d.EmploymentType) {
		errs["employmentType"] = "Employment type is required"
	}
	if !Required(d.Description) {
		errs["description"] = "Job description is required"
	}
	return newResult(errs)
}

// LoginForm checks the login form.
func LoginForm(d domain.LoginDraft) Result {
	errs := map[string]string{}
	switch {
	case !Required(d.Email):
		errs["email"] = "Email is required"
	case !Email(d.Email):
		errs["email"] = "Please enter a valid email"
	}
	if !Required(d.Password) {
		errs["password"] = "Password is required"
	}
	return newResult(errs)
}

// SignupForm checks the signup form. Company accounts must name their company.
func SignupForm(d domain.SignupDraft) Result {
	errs := map[string]string{}
	if !Required(d.Name) {
		errs["name"] = "Name is required"
	}
	switch {
	case !Required(d.Email):
		errs["email"] = "Email is required"
	case !Email(d.Email):
		errs["email"] = "Please enter a valid email"
	}
	if !Password(d.Password) {
		errs["password"] = "Password must be at least 6 characters"
	}
	if !d.Role.Valid() {
		errs["role"] = "Role must be user or company"
	}
	if d.Role == domain.RoleCompany && !Required(d.CompanyName) {
		errs["companyName"] = "Company name is required"
	}
	return newResult(errs)
}
