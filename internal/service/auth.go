package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/store"
	"github.com/msomdec/jobtracker/internal/validate"
)

const tokenTTL = 24 * time.Hour

// Demo profiles used by DemoLogin.
const (
	DemoName        = "Hafiz Faizan"
	DemoUserEmail   = "demo-user@example.com"
	DemoCompanyMail = "demo-company@example.com"
	DemoCompanyName = "Demo Company"
)

// Notifier surfaces a message to the user.
type Notifier interface {
	Show(message string, kind domain.ToastKind)
}

// AccountRepository stores registered accounts keyed by email.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Add(ctx context.Context, acct domain.Account) error
}

// Claims are the identity carried by a session token.
type Claims struct {
	Email string
	Role  domain.Role
}

// AuthService handles signup, login, logout, and session tokens.
type AuthService struct {
	accounts   AccountRepository
	store      *store.Store
	notify     Notifier
	jwtSecret  []byte
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(accounts AccountRepository, st *store.Store, notify Notifier, jwtSecret string, bcryptCost int) *AuthService {
	return &AuthService{
		accounts:   accounts,
		store:      st,
		notify:     notify,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcryptCost,
	}
}

// Signup registers a new account, signs it in, and returns a session token.
func (s *AuthService) Signup(ctx context.Context, d domain.SignupDraft) (string, error) {
	if err := validate.SignupForm(d).Err(); err != nil {
		return "", err
	}

	if _, err := s.accounts.FindByEmail(ctx, d.Email); err == nil {
		return "", fmt.Errorf("%w: User with this email already exists", domain.ErrDuplicateEmail)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("find account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(d.Password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	acct := domain.Account{
		ID:           uuid.NewString(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: string(hash),
		Role:         d.Role,
		CreatedAt:    time.Now().UTC(),
	}
	if d.Role == domain.RoleCompany {
		acct.CompanyName = d.CompanyName
	}

	if err := s.accounts.Add(ctx, acct); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return "", fmt.Errorf("%w: User with this email already exists", err)
		}
		return "", fmt.Errorf("create account: %w", err)
	}
	slog.Info("account created", "email", acct.Email, "role", acct.Role)

	token, err := s.signIn(acct.Profile(), acct.Role)
	if err != nil {
		return "", err
	}
	s.show(fmt.Sprintf("Welcome to JobTracker, %s!", acct.Name))
	return token, nil
}

// Login verifies credentials, signs the account in, and returns a session
// token.
func (s *AuthService) Login(ctx context.Context, d domain.LoginDraft) (string, error) {
	if err := validate.LoginForm(d).Err(); err != nil {
		return "", err
	}

	acct, err := s.accounts.FindByEmail(ctx, d.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(d.Password)); err != nil {
		return "", domain.ErrUnauthorized
	}

	token, err := s.signIn(acct.Profile(), acct.Role)
	if err != nil {
		return "", err
	}
	s.show(fmt.Sprintf("Welcome back, %s!", acct.Name))
	return token, nil
}

// DemoLogin signs in the fixed demo profile for role without touching the
// account registry.
func (s *AuthService) DemoLogin(role domain.Role) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}

	profile := domain.UserProfile{Name: DemoName, Email: DemoUserEmail}
	if role == domain.RoleCompany {
		profile.Email = DemoCompanyMail
		profile.CompanyName = DemoCompanyName
	}

	token, err := s.signIn(profile, role)
	if err != nil {
		return "", err
	}
	s.show(fmt.Sprintf("Welcome, %s! (Demo %s)", profile.Name, role))
	return token, nil
}

// Logout clears the session.
func (s *AuthService) Logout() {
	s.store.Dispatch(store.Logout{})
}

// Session returns the current session.
func (s *AuthService) Session() domain.Session {
	return s.store.State().Session
}

// ValidateToken parses and validates a session token.
func (s *AuthService) ValidateToken(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return Claims{}, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, domain.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Claims{}, domain.ErrUnauthorized
	}

	role, _ := claims["role"].(string)
	if !domain.Role(role).Valid() {
		return Claims{}, domain.ErrUnauthorized
	}

	return Claims{Email: sub, Role: domain.Role(role)}, nil
}

func (s *AuthService) signIn(profile domain.UserProfile, role domain.Role) (string, error) {
	token, err := s.generateJWT(profile.Email, role)
	if err != nil {
		return "", fmt.Errorf("generate jwt: %w", err)
	}
	s.store.Dispatch(store.Login{User: profile, Role: role})
	return token, nil
}

func (s *AuthService) generateJWT(email string, role domain.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) show(message string) {
	if s.notify != nil {
		s.notify.Show(message, domain.ToastSuccess)
	}
}
