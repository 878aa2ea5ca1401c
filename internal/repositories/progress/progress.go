// Package progress stores study-material progress: the completed id list and
// accumulated reading minutes per material.
package progress

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/launchpad/internal/records"
	"github.com/dmitrijs2005/launchpad/internal/repositories/kv"
)

const (
	CompletedKey    = "launchpad_completed_materials"
	ReadingTimesKey = "launchpad_reading_times"
)

type Repository struct {
	r kv.Repository
}

func New(r kv.Repository) *Repository {
	return &Repository{r: r}
}

// Completed returns completed material ids in completion order. Malformed
// data reads as empty with an error wrapping records.ErrMalformed.
func (p *Repository) Completed(ctx context.Context) ([]string, error) {
	ids, _, err := records.Load[[]string](ctx, p.r, CompletedKey)
	if err != nil {
		if errors.Is(err, records.ErrMalformed) {
			return []string{}, err
		}
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (p *Repository) SetCompleted(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return records.Save(ctx, p.r, CompletedKey, ids)
}

// ReadingTimes returns minutes read per material id.
func (p *Repository) ReadingTimes(ctx context.Context) (map[string]int, error) {
	m, _, err := records.Load[map[string]int](ctx, p.r, ReadingTimesKey)
	if err != nil {
		if errors.Is(err, records.ErrMalformed) {
			return map[string]int{}, err
		}
		return nil, err
	}
	if m == nil {
		m = map[string]int{}
	}
	return m, nil
}

func (p *Repository) SetReadingTimes(ctx context.Context, m map[string]int) error {
	if m == nil {
		m = map[string]int{}
	}
	return records.Save(ctx, p.r, ReadingTimesKey, m)
}
