package domain

// Role tags an account as a job seeker or a company.
type Role string

const (
	RoleUser    Role = "user"
	RoleCompany Role = "company"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleCompany
}

// UserProfile is the public part of an account carried by the session.
// CompanyName is set only for company accounts.
type UserProfile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName,omitempty"`
}

// Session is the authentication state of the current profile. It is rebuilt
// from the persisted auth blob at startup or set fresh on login.
type Session struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *UserProfile `json:"user"`
	Role            Role         `json:"role"`
}

// Email returns the signed-in user's email, or "" when signed out.
func (s Session) Email() string {
	if !s.IsAuthenticated || s.User == nil {
		return ""
	}
	return s.User.Email
}

// Theme is the presentation color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is light or dark.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
