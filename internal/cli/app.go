package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/launchpad/internal/logging"
	"github.com/dmitrijs2005/launchpad/internal/materials"
	"github.com/dmitrijs2005/launchpad/internal/models"
	"github.com/dmitrijs2005/launchpad/internal/notify"
	"github.com/dmitrijs2005/launchpad/internal/quiz"
	"github.com/dmitrijs2005/launchpad/internal/timex"
)

// AccountService is the account store surface the CLI drives.
type AccountService interface {
	CurrentUser() *models.Profile
	IsAuthenticated() bool
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, email, password, name string) error
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) error
	AddSkill(ctx context.Context, skill string) error
	RemoveSkill(ctx context.Context, skill string) error
	SetAvatar(ctx context.Context, path string) error
}

// ActivityRecorder records completed activities and awards achievements.
type ActivityRecorder interface {
	RecordActivity(ctx context.Context, kind models.ActivityKind) error
	Award(ctx context.Context, label string) error
}

// MaterialTracker is the study-material progress surface.
type MaterialTracker interface {
	List(ctx context.Context, f materials.Filter) ([]materials.Material, error)
	IsCompleted(ctx context.Context, id string) (bool, error)
	Toggle(ctx context.Context, id string) (bool, error)
	RecordReading(ctx context.Context, id string, elapsed time.Duration) (int, error)
	ReadingTime(ctx context.Context, id string) (int, error)
}

// Deps lists what an App needs. In and Out default to nothing; callers pass
// os.Stdin and os.Stdout.
type Deps struct {
	Accounts   AccountService
	Activities ActivityRecorder
	Quizzes    *quiz.Catalog
	Attempts   *quiz.AttemptLog
	Materials  *materials.Catalog
	Tracker    MaterialTracker
	Notifier   notify.Notifier
	Clock      timex.Clock
	Log        logging.Logger
	In         io.Reader
	Out        io.Writer
}

type App struct {
	accounts   AccountService
	activities ActivityRecorder
	quizzes    *quiz.Catalog
	attempts   *quiz.AttemptLog
	catalog    *materials.Catalog
	tracker    MaterialTracker
	notifier   notify.Notifier
	clock      timex.Clock
	log        logging.Logger
	reader     *bufio.Reader
	out        io.Writer
}

func NewApp(d Deps) *App {
	a := &App{
		accounts:   d.Accounts,
		activities: d.Activities,
		quizzes:    d.Quizzes,
		attempts:   d.Attempts,
		catalog:    d.Materials,
		tracker:    d.Tracker,
		notifier:   d.Notifier,
		clock:      d.Clock,
		log:        d.Log,
		reader:     bufio.NewReader(d.In),
		out:        d.Out,
	}
	if a.notifier == nil {
		a.notifier = notify.Nop{}
	}
	if a.clock == nil {
		a.clock = timex.Now
	}
	if a.log == nil {
		a.log = logging.Nop()
	}
	return a
}

// Run greets the user and blocks in the REPL until exit or end of input.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Launchpad (type 'help' for commands)")
	if u := a.accounts.CurrentUser(); u != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Name)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.accounts.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.accounts.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
