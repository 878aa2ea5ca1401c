package quiz

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/launchpad/internal/logging"
	"github.com/dmitrijs2005/launchpad/internal/models"
	"github.com/dmitrijs2005/launchpad/internal/notify"
	"github.com/dmitrijs2005/launchpad/internal/repositories/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time { return f.t }

func fourQuestions(cat Category) []Question {
	correct := []int{1, 0, 2, 3}
	qs := make([]Question, len(correct))
	for i, c := range correct {
		qs[i] = Question{ID: string(rune('a' + i)), Prompt: "q", Options: []string{"0", "1", "2", "3"}, Correct: c, Category: cat}
	}
	return qs
}

type fixture struct {
	log   *AttemptLog
	rec   *notify.Recorder
	clock *fakeClock
}

func newFixture() *fixture {
	return &fixture{
		log:   NewAttemptLog(kv.NewMemoryStore(), logging.Nop()),
		rec:   &notify.Recorder{},
		clock: &fakeClock{t: time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC)},
	}
}

func (f *fixture) runner(qs []Question) *Runner {
	return NewRunner(qs, f.log, Options{Clock: f.clock.Now, Notifier: f.rec, NewID: func() string { return "id-1" }})
}

func TestRunner_CompletesAfterLastAnswer(t *testing.T) {
	f := newFixture()
	r := f.runner(fourQuestions(CategoryTechnical))

	for i, a := range []int{1, 0, 2} {
		require.NoError(t, r.SubmitAnswer(a))
		assert.False(t, r.IsCompleted(), "after answer %d", i+1)
		assert.Equal(t, i+2, r.QuestionNumber())
	}
	require.NoError(t, r.SubmitAnswer(0))

	assert.True(t, r.IsCompleted())
	assert.Equal(t, 3, r.Score())
	assert.Equal(t, []int{1, 0, 2, 0}, r.Answers())
	_, ok := r.CurrentQuestion()
	assert.False(t, ok)

	assert.ErrorIs(t, r.SubmitAnswer(1), ErrQuizCompleted)
	assert.Len(t, r.Answers(), 4)
}

func TestRunner_InvalidChoiceDoesNotAdvance(t *testing.T) {
	r := newFixture().runner(fourQuestions(CategoryTechnical))

	assert.ErrorIs(t, r.SubmitAnswer(4), ErrInvalidChoice)
	assert.ErrorIs(t, r.SubmitAnswer(-1), ErrInvalidChoice)
	assert.Equal(t, 1, r.QuestionNumber())
	assert.Empty(t, r.Answers())
}

func TestRunner_SaveBeforeCompletionIsNoop(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	r := f.runner(fourQuestions(CategoryTechnical))
	require.NoError(t, r.SubmitAnswer(1))

	at, err := r.SaveAttempt(ctx)
	require.NoError(t, err)
	assert.Nil(t, at)

	list, err := f.log.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, f.rec.Notifications())
}

func TestRunner_SaveAttempt(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	r := f.runner(fourQuestions(CategoryAptitude))
	for _, a := range []int{1, 0, 2, 0} {
		require.NoError(t, r.SubmitAnswer(a))
	}
	f.clock.t = f.clock.t.Add(95*time.Second + 900*time.Millisecond)

	at, err := r.SaveAttempt(ctx)
	require.NoError(t, err)

	want := models.Attempt{
		ID:             "id-1",
		Date:           "2025-02-03T10:01:35.900Z",
		Category:       "aptitude",
		Score:          3,
		TotalQuestions: 4,
		TimeSpent:      95,
	}
	assert.Equal(t, &want, at)

	list, err := f.log.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Attempt{want}, list)

	assert.Equal(t, notify.Notification{Title: "Quiz Completed!", Description: "You scored 3 out of 4"}, f.rec.Last())
}

func TestRunner_RepeatedSaveAppendsAgain(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	r := f.runner(fourQuestions(CategoryTechnical)[:1])
	require.NoError(t, r.SubmitAnswer(1))

	_, err := r.SaveAttempt(ctx)
	require.NoError(t, err)
	_, err = r.SaveAttempt(ctx)
	require.NoError(t, err)

	list, err := f.log.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRunner_Empty(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	r := f.runner(nil)

	assert.True(t, r.IsCompleted())
	assert.Equal(t, 0, r.Score())
	assert.Equal(t, 0, r.Total())
	assert.ErrorIs(t, r.SubmitAnswer(0), ErrQuizCompleted)

	at, err := r.SaveAttempt(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mixed", at.Category)
	assert.Equal(t, 0, at.TotalQuestions)
}

func TestRunner_Category(t *testing.T) {
	f := newFixture()

	assert.Equal(t, CategoryTechnical, f.runner(fourQuestions(CategoryTechnical)).Category())

	mixed := append(fourQuestions(CategoryTechnical)[:2], fourQuestions(CategoryAptitude)[2:]...)
	assert.Equal(t, CategoryMixed, f.runner(mixed).Category())
}

func TestRunner_Elapsed(t *testing.T) {
	f := newFixture()
	r := f.runner(fourQuestions(CategoryTechnical))

	f.clock.t = f.clock.t.Add(42 * time.Second)
	assert.Equal(t, 42*time.Second, r.Elapsed())
}

func TestAttemptLog_MalformedReadsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "quiz_attempts", []byte("[")))
	log := NewAttemptLog(store, logging.Nop())

	list, err := log.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, log.Append(ctx, models.Attempt{ID: "x"}))
	list, err = log.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
