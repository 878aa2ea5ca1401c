package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/launchpad/internal/achievements"
	"github.com/dmitrijs2005/launchpad/internal/models"
	"github.com/dmitrijs2005/launchpad/internal/quiz"
)

// Quiz runs an interactive quiz. The optional argument picks the category;
// without one every question is asked. Typing "q" abandons the run.
func (a *App) Quiz(ctx context.Context, args []string) error {
	questions := a.quizzes.All()
	if len(args) > 0 && !strings.EqualFold(args[0], string(quiz.CategoryMixed)) {
		cat, ok := quiz.ParseCategory(strings.ToLower(args[0]))
		if !ok {
			return fmt.Errorf("unknown quiz category %q (technical, aptitude, mixed)", args[0])
		}
		questions = a.quizzes.ByCategory(cat)
	}
	if len(questions) == 0 {
		a.printf("No questions available.\n")
		return nil
	}

	r := quiz.NewRunner(questions, a.attempts, quiz.Options{Clock: a.clock, Notifier: a.notifier})

	for !r.IsCompleted() {
		q, _ := r.CurrentQuestion()
		a.printf("\nQuestion %d of %d\n%s\n", r.QuestionNumber(), r.Total(), q.Prompt)
		for i, opt := range q.Options {
			a.printf("  %d) %s\n", i+1, opt)
		}

		text, err := getSimpleText(a.reader, "Your answer (number, q to quit)", a.out)
		if err != nil {
			return err
		}
		if strings.EqualFold(text, "q") {
			a.printf("Quiz abandoned.\n")
			return nil
		}

		n, err := strconv.Atoi(text)
		if err != nil {
			a.printf("Please enter an option number.\n")
			continue
		}
		if err := r.SubmitAnswer(n - 1); err != nil {
			if errors.Is(err, quiz.ErrInvalidChoice) {
				a.printf("Choose between 1 and %d.\n", len(q.Options))
				continue
			}
			return err
		}
	}

	at, err := r.SaveAttempt(ctx)
	if err != nil {
		return err
	}
	a.printf("\nYou scored %d out of %d in %s.\n", at.Score, at.TotalQuestions, time.Duration(at.TimeSpent)*time.Second)

	if err := a.activities.RecordActivity(ctx, models.ActivityQuiz); err != nil {
		return err
	}
	if at.Score == at.TotalQuestions {
		return a.activities.Award(ctx, achievements.PerfectScore)
	}
	return nil
}

// Attempts prints the attempt history, newest first.
func (a *App) Attempts(ctx context.Context) error {
	list, err := a.attempts.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.printf("No quiz attempts yet. Try: quiz aptitude\n")
		return nil
	}

	for i := len(list) - 1; i >= 0; i-- {
		at := list[i]
		a.printf("  %s  %-9s  %d/%d  %ds\n", at.Date, at.Category, at.Score, at.TotalQuestions, at.TimeSpent)
	}
	return nil
}
