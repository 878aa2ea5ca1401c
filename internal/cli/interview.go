package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/launchpad/internal/models"
	"github.com/dmitrijs2005/launchpad/internal/notify"
)

var interviewQuestions = []string{
	"Tell me about yourself.",
	"Describe a challenging project you worked on and how you handled it.",
	"Why do you want to work for our company?",
	"Where do you see yourself in five years?",
}

// Interview runs a mock interview. Answering every question counts as a
// completed interview; an empty answer ends the session without credit.
func (a *App) Interview(ctx context.Context) error {
	a.printf("Mock interview: %d questions. Leave an answer empty to stop.\n", len(interviewQuestions))

	words := 0
	for i, q := range interviewQuestions {
		a.printf("\nQuestion %d of %d\n", i+1, len(interviewQuestions))
		answer, err := GetMultiline(a.reader, q, a.out)
		if err != nil {
			return err
		}
		if answer == "" {
			a.printf("Interview ended early.\n")
			return nil
		}
		words += len(strings.Fields(answer))
	}

	a.printf("\nYou answered %d questions using %d words.\n", len(interviewQuestions), words)
	if err := a.activities.RecordActivity(ctx, models.ActivityInterview); err != nil {
		return err
	}
	a.notifier.Notify(ctx, notify.Notification{
		Title:       "Interview completed!",
		Description: "Keep practicing to sharpen your answers.",
	})
	return nil
}
