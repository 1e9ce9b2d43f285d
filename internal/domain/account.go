package domain

import "time"

// Account is a registered login kept in the account registry. Email is the
// unique key. Accounts are never mutated or deleted once created.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         Role      `json:"role"`
	CompanyName  string    `json:"companyName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile returns the session-facing view of the account.
func (a Account) Profile() UserProfile {
	p := UserProfile{Name: a.Name, Email: a.Email}
	if a.Role == RoleCompany {
		p.CompanyName = a.CompanyName
	}
	return p
}

// SignupDraft is the raw signup form.
type SignupDraft struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        Role   `json:"role"`
	CompanyName string `json:"companyName"`
}

// LoginDraft is the raw login form.
type LoginDraft struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
