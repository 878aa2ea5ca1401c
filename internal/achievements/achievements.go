// Package achievements awards badges for activity milestones: the first
// activity of each kind and every level reached.
package achievements

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/launchpad/internal/leveling"
	"github.com/dmitrijs2005/launchpad/internal/logging"
	"github.com/dmitrijs2005/launchpad/internal/models"
	"github.com/dmitrijs2005/launchpad/internal/notify"
)

const (
	FirstQuiz      = "First Quiz Completed"
	FirstInterview = "First Mock Interview"
	FirstMaterial  = "First Study Material"
	PerfectScore   = "Perfect Score"
)

// Accounts is the slice of the account store a Recorder drives.
type Accounts interface {
	CurrentUser() *models.Profile
	RecordActivity(ctx context.Context, kind models.ActivityKind) error
	AddAchievement(ctx context.Context, label string) error
}

// Recorder records activities on the signed-in account and awards whatever
// milestones they unlock.
type Recorder struct {
	accounts Accounts
	notifier notify.Notifier
	log      logging.Logger
}

func NewRecorder(accounts Accounts, notifier notify.Notifier, log logging.Logger) *Recorder {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Recorder{accounts: accounts, notifier: notifier, log: log.With("component", "achievements")}
}

func (r *Recorder) RecordActivity(ctx context.Context, kind models.ActivityKind) error {
	before := r.accounts.CurrentUser()
	if err := r.accounts.RecordActivity(ctx, kind); err != nil {
		return err
	}
	after := r.accounts.CurrentUser()
	if before == nil || after == nil {
		return nil
	}

	for _, label := range Milestones(before.Activities, after.Activities) {
		if err := r.Award(ctx, label); err != nil {
			return err
		}
	}
	return nil
}

// Award grants label and announces it. Labels already held are ignored.
func (r *Recorder) Award(ctx context.Context, label string) error {
	p := r.accounts.CurrentUser()
	if p == nil || p.HasAchievement(label) {
		return nil
	}
	if err := r.accounts.AddAchievement(ctx, label); err != nil {
		return fmt.Errorf("award %q: %w", label, err)
	}

	r.log.Info(ctx, "achievement unlocked", "label", label)
	r.notifier.Notify(ctx, notify.Notification{
		Title:       "Achievement unlocked!",
		Description: label,
	})
	return nil
}

// Milestones lists the labels earned by moving from before to after.
func Milestones(before, after models.Activities) []string {
	var out []string

	firsts := []struct {
		was, is int
		label   string
	}{
		{before.QuizzesCompleted, after.QuizzesCompleted, FirstQuiz},
		{before.InterviewsCompleted, after.InterviewsCompleted, FirstInterview},
		{before.MaterialsCompleted, after.MaterialsCompleted, FirstMaterial},
	}
	for _, f := range firsts {
		if f.was == 0 && f.is > 0 {
			out = append(out, f.label)
		}
	}

	for lvl := leveling.Level(before) + 1; lvl <= leveling.Level(after); lvl++ {
		out = append(out, LevelLabel(lvl))
	}
	return out
}

func LevelLabel(level int) string {
	return fmt.Sprintf("Reached Level %d", level)
}
