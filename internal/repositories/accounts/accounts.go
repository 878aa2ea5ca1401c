// Package accounts stores the account map: email -> {credential, profile}.
package accounts

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/launchpad/internal/models"
	"github.com/dmitrijs2005/launchpad/internal/records"
	"github.com/dmitrijs2005/launchpad/internal/repositories/kv"
)

// Key is the storage key of the account map.
const Key = "launchpad_users"

type Repository struct {
	r kv.Repository
}

// New binds the repository to r, which may be a transactional view.
func New(r kv.Repository) *Repository {
	return &Repository{r: r}
}

// All returns the whole map. A malformed record yields an empty map together
// with an error wrapping records.ErrMalformed; the next Put replaces it.
func (a *Repository) All(ctx context.Context) (map[string]models.Account, error) {
	m, _, err := records.Load[map[string]models.Account](ctx, a.r, Key)
	if err != nil {
		if errors.Is(err, records.ErrMalformed) {
			return map[string]models.Account{}, err
		}
		return nil, err
	}
	if m == nil {
		m = map[string]models.Account{}
	}
	return m, nil
}

// Get returns (nil, nil) when email is unknown.
func (a *Repository) Get(ctx context.Context, email string) (*models.Account, error) {
	m, err := a.All(ctx)
	if err != nil {
		return nil, err
	}
	acct, ok := m[email]
	if !ok {
		return nil, nil
	}
	return &acct, nil
}

// Put writes acct under email, reading the map first. A malformed map is
// treated as empty.
func (a *Repository) Put(ctx context.Context, email string, acct models.Account) error {
	m, err := a.All(ctx)
	if err != nil && !errors.Is(err, records.ErrMalformed) {
		return err
	}
	m[email] = acct
	return records.Save(ctx, a.r, Key, m)
}
