// Package attempts stores the append-only quiz attempt log.
package attempts

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/launchpad/internal/models"
	"github.com/dmitrijs2005/launchpad/internal/records"
	"github.com/dmitrijs2005/launchpad/internal/repositories/kv"
)

const Key = "quiz_attempts"

type Repository struct {
	r kv.Repository
}

func New(r kv.Repository) *Repository {
	return &Repository{r: r}
}

// List returns attempts oldest first. A malformed log reads as empty along
// with an error wrapping records.ErrMalformed.
func (a *Repository) List(ctx context.Context) ([]models.Attempt, error) {
	list, _, err := records.Load[[]models.Attempt](ctx, a.r, Key)
	if err != nil {
		if errors.Is(err, records.ErrMalformed) {
			return []models.Attempt{}, err
		}
		return nil, err
	}
	if list == nil {
		list = []models.Attempt{}
	}
	return list, nil
}

// Append adds at to the end of the log. A malformed log is replaced.
func (a *Repository) Append(ctx context.Context, at models.Attempt) error {
	list, err := a.List(ctx)
	if err != nil && !errors.Is(err, records.ErrMalformed) {
		return err
	}
	return records.Save(ctx, a.r, Key, append(list, at))
}
