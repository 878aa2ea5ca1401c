// Package sessions stores the pointer to the signed-in account.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/launchpad/internal/models"
	"github.com/dmitrijs2005/launchpad/internal/records"
	"github.com/dmitrijs2005/launchpad/internal/repositories/kv"
)

const Key = "launchpad_session"

type Repository struct {
	r kv.Repository
}

func New(r kv.Repository) *Repository {
	return &Repository{r: r}
}

// Get returns (nil, nil) when nobody is signed in.
func (s *Repository) Get(ctx context.Context) (*models.Session, error) {
	sess, found, err := records.Load[models.Session](ctx, s.r, Key)
	if err != nil || !found {
		return nil, err
	}
	return &sess, nil
}

func (s *Repository) Put(ctx context.Context, sess models.Session) error {
	return records.Save(ctx, s.r, Key, sess)
}

func (s *Repository) Delete(ctx context.Context) error {
	return s.r.Delete(ctx, Key)
}
