// Package materials serves the study-material catalog and tracks per-user
// progress: which materials are completed and how long each was read.
package materials

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/launchpad/internal/logging"
	"github.com/dmitrijs2005/launchpad/internal/models"
	"github.com/dmitrijs2005/launchpad/internal/notify"
	"github.com/dmitrijs2005/launchpad/internal/records"
	"github.com/dmitrijs2005/launchpad/internal/repositories/kv"
	"github.com/dmitrijs2005/launchpad/internal/repositories/progress"
)

// ProgressNoticeMinutes is the reading time after which an unfinished
// material gets a progress notification.
const ProgressNoticeMinutes = 3

// ActivityRecorder is the part of the account store the tracker needs.
type ActivityRecorder interface {
	RecordActivity(ctx context.Context, kind models.ActivityKind) error
}

type Tracker struct {
	mu         sync.Mutex
	store      kv.Store
	catalog    *Catalog
	activities ActivityRecorder
	notifier   notify.Notifier
	log        logging.Logger
}

func NewTracker(store kv.Store, catalog *Catalog, activities ActivityRecorder, notifier notify.Notifier, log logging.Logger) *Tracker {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Tracker{
		store:      store,
		catalog:    catalog,
		activities: activities,
		notifier:   notifier,
		log:        log.With("component", "materials"),
	}
}

// Completed returns completed ids in completion order. An unreadable list
// is logged and treated as empty.
func (t *Tracker) Completed(ctx context.Context) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completed(ctx, progress.New(t.store))
}

func (t *Tracker) completed(ctx context.Context, repo *progress.Repository) ([]string, error) {
	ids, err := repo.Completed(ctx)
	if errors.Is(err, records.ErrMalformed) {
		t.log.Warn(ctx, "completed materials unreadable", "error", err)
		return ids, nil
	}
	return ids, err
}

func (t *Tracker) IsCompleted(ctx context.Context, id string) (bool, error) {
	ids, err := t.Completed(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, id), nil
}

// List applies f to the catalog using the stored completion list.
func (t *Tracker) List(ctx context.Context, f Filter) ([]Material, error) {
	ids, err := t.Completed(ctx)
	if err != nil {
		return nil, err
	}
	return t.catalog.Filter(f, ids), nil
}

// Toggle flips the completion state of id and returns the new state.
// Completing counts as a material activity for the signed-in user.
func (t *Tracker) Toggle(ctx context.Context, id string) (bool, error) {
	if _, err := t.catalog.Find(id); err != nil {
		return false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var nowCompleted bool
	err := t.store.Update(ctx, func(ctx context.Context, r kv.Repository) error {
		repo := progress.New(r)
		ids, err := t.completed(ctx, repo)
		if err != nil {
			return err
		}

		if i := slices.Index(ids, id); i >= 0 {
			ids = slices.Delete(ids, i, i+1)
			nowCompleted = false
		} else {
			ids = append(ids, id)
			nowCompleted = true
		}
		return repo.SetCompleted(ctx, ids)
	})
	if err != nil {
		return false, fmt.Errorf("toggle material %s: %w", id, err)
	}

	if !nowCompleted {
		t.notifier.Notify(ctx, notify.Notification{
			Title:       "Material marked as incomplete",
			Description: "You can mark it as complete when you're ready.",
		})
		return false, nil
	}

	if t.activities != nil {
		if err := t.activities.RecordActivity(ctx, models.ActivityMaterial); err != nil {
			return true, err
		}
	}
	t.notifier.Notify(ctx, notify.Notification{
		Title:       "Material completed!",
		Description: "Great job on completing this study material.",
	})
	return true, nil
}

// RecordReading adds a reading session to the material's total. Sessions
// under half a minute round to zero and are dropped. It returns the minutes
// counted.
func (t *Tracker) RecordReading(ctx context.Context, id string, elapsed time.Duration) (int, error) {
	if _, err := t.catalog.Find(id); err != nil {
		return 0, err
	}

	minutes := int(math.Round(elapsed.Minutes()))
	if minutes < 1 {
		return 0, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var completed bool
	err := t.store.Update(ctx, func(ctx context.Context, r kv.Repository) error {
		repo := progress.New(r)

		ids, err := t.completed(ctx, repo)
		if err != nil {
			return err
		}
		completed = slices.Contains(ids, id)

		times, err := repo.ReadingTimes(ctx)
		if err != nil && !errors.Is(err, records.ErrMalformed) {
			return err
		}
		times[id] += minutes
		return repo.SetReadingTimes(ctx, times)
	})
	if err != nil {
		return 0, fmt.Errorf("record reading for %s: %w", id, err)
	}

	if minutes >= ProgressNoticeMinutes && !completed {
		t.notifier.Notify(ctx, notify.Notification{
			Title:       "Learning progress tracked!",
			Description: fmt.Sprintf("You spent %d minutes reading this material.", minutes),
		})
	}
	return minutes, nil
}

// ReadingTime returns the total minutes recorded for id.
func (t *Tracker) ReadingTime(ctx context.Context, id string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	times, err := progress.New(t.store).ReadingTimes(ctx)
	if err != nil && !errors.Is(err, records.ErrMalformed) {
		return 0, err
	}
	return times[id], nil
}
