package persist

import (
	"context"
	"fmt"
	"sync"

	"github.com/msomdec/jobtracker/internal/domain"
)

// Accounts is the registry of signed-up logins, stored as one list under
// KeyUsers.
type Accounts struct {
	bridge *Bridge
	mu     sync.Mutex
}

// NewAccounts creates a new Accounts registry.
func NewAccounts(b *Bridge) *Accounts {
	return &Accounts{bridge: b}
}

// List returns every registered account.
func (a *Accounts) List(ctx context.Context) []domain.Account {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.list(ctx)
}

func (a *Accounts) list(ctx context.Context) []domain.Account {
	accounts, _ := Load[[]domain.Account](ctx, a.bridge, KeyUsers)
	return accounts
}

// FindByEmail returns the account registered under email.
func (a *Accounts) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, acct := range a.list(ctx) {
		if acct.Email == email {
			return &acct, nil
		}
	}
	return nil, fmt.Errorf("account %q: %w", email, domain.ErrNotFound)
}

// Add registers acct. The email must not already be registered.
func (a *Accounts) Add(ctx context.Context, acct domain.Account) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	accounts := a.list(ctx)
	for _, existing := range accounts {
		if existing.Email == acct.Email {
			return domain.ErrDuplicateEmail
		}
	}
	return a.bridge.Save(ctx, KeyUsers, append(accounts, acct))
}
