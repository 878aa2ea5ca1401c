// Package quiz runs a fixed list of multiple-choice questions one at a time
// and records finished runs in the attempt log.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/launchpad/internal/models"
	"github.com/dmitrijs2005/launchpad/internal/notify"
	"github.com/dmitrijs2005/launchpad/internal/timex"
	"github.com/google/uuid"
)

var (
	ErrQuizCompleted = errors.New("quiz already completed")
	ErrInvalidChoice = errors.New("choice out of range")
)

// isoMillis matches JavaScript's Date.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type Options struct {
	Clock    timex.Clock
	Notifier notify.Notifier
	NewID    func() string
}

// Runner is a single quiz run. It is not safe for concurrent use.
type Runner struct {
	questions []Question
	answers   []int
	current   int
	completed bool
	started   time.Time

	log      *AttemptLog
	now      timex.Clock
	notifier notify.Notifier
	newID    func() string
}

// NewRunner starts a run over questions. An empty list is completed from
// the start with a score of 0.
func NewRunner(questions []Question, log *AttemptLog, opts Options) *Runner {
	r := &Runner{
		questions: append([]Question(nil), questions...),
		answers:   make([]int, 0, len(questions)),
		log:       log,
		now:       opts.Clock,
		notifier:  opts.Notifier,
		newID:     opts.NewID,
	}
	if r.now == nil {
		r.now = timex.Now
	}
	if r.notifier == nil {
		r.notifier = notify.Nop{}
	}
	if r.newID == nil {
		r.newID = uuid.NewString
	}
	r.started = r.now()
	r.completed = len(r.questions) == 0
	return r
}

// SubmitAnswer records choice for the current question and advances.
func (r *Runner) SubmitAnswer(choice int) error {
	if r.completed {
		return ErrQuizCompleted
	}
	if q := r.questions[r.current]; choice < 0 || choice >= len(q.Options) {
		return fmt.Errorf("%w: %d", ErrInvalidChoice, choice)
	}

	r.answers = append(r.answers, choice)
	r.current++
	r.completed = r.current >= len(r.questions)
	return nil
}

// Score counts correct answers so far.
func (r *Runner) Score() int {
	score := 0
	for i, a := range r.answers {
		if r.questions[i].IsCorrect(a) {
			score++
		}
	}
	return score
}

// CurrentQuestion returns false once the run is completed.
func (r *Runner) CurrentQuestion() (Question, bool) {
	if r.completed {
		return Question{}, false
	}
	return r.questions[r.current], true
}

// QuestionNumber is the 1-based position of the current question.
func (r *Runner) QuestionNumber() int { return r.current + 1 }
func (r *Runner) Total() int          { return len(r.questions) }
func (r *Runner) IsCompleted() bool   { return r.completed }

func (r *Runner) Answers() []int {
	return append([]int(nil), r.answers...)
}

func (r *Runner) Elapsed() time.Duration {
	return r.now().Sub(r.started)
}

// Category is the shared category of all questions, or CategoryMixed when
// they differ or there are none.
func (r *Runner) Category() Category {
	if len(r.questions) == 0 {
		return CategoryMixed
	}
	c := r.questions[0].Category
	for _, q := range r.questions[1:] {
		if q.Category != c {
			return CategoryMixed
		}
	}
	return c
}

// SaveAttempt appends the finished run to the attempt log and announces the
// score. Before completion it does nothing and returns (nil, nil). Each call
// after completion appends a new record.
func (r *Runner) SaveAttempt(ctx context.Context) (*models.Attempt, error) {
	if !r.completed {
		return nil, nil
	}

	now := r.now()
	at := models.Attempt{
		ID:             r.newID(),
		Date:           now.UTC().Format(isoMillis),
		Category:       string(r.Category()),
		Score:          r.Score(),
		TotalQuestions: len(r.questions),
		TimeSpent:      int(now.Sub(r.started) / time.Second),
	}

	if err := r.log.Append(ctx, at); err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}

	r.notifier.Notify(ctx, notify.Notification{
		Title:       "Quiz Completed!",
		Description: fmt.Sprintf("You scored %d out of %d", at.Score, at.TotalQuestions),
	})
	return &at, nil
}
