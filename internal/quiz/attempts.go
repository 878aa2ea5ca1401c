package quiz

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/launchpad/internal/logging"
	"github.com/dmitrijs2005/launchpad/internal/models"
	"github.com/dmitrijs2005/launchpad/internal/records"
	"github.com/dmitrijs2005/launchpad/internal/repositories/attempts"
	"github.com/dmitrijs2005/launchpad/internal/repositories/kv"
)

// AttemptLog is the durable, append-only list of finished runs.
type AttemptLog struct {
	store kv.Store
	log   logging.Logger
}

func NewAttemptLog(store kv.Store, log logging.Logger) *AttemptLog {
	return &AttemptLog{store: store, log: log}
}

// Append adds at in one read-modify-write batch.
func (l *AttemptLog) Append(ctx context.Context, at models.Attempt) error {
	return l.store.Update(ctx, func(ctx context.Context, r kv.Repository) error {
		return attempts.New(r).Append(ctx, at)
	})
}

// List returns attempts oldest first. An unreadable log is logged and
// reported as empty.
func (l *AttemptLog) List(ctx context.Context) ([]models.Attempt, error) {
	list, err := attempts.New(l.store).List(ctx)
	if errors.Is(err, records.ErrMalformed) {
		l.log.Warn(ctx, "quiz attempt log unreadable", "error", err)
		return list, nil
	}
	return list, err
}
