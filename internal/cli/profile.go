package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/launchpad/internal/account"
	"github.com/dmitrijs2005/launchpad/internal/dashboard"
	"github.com/dmitrijs2005/launchpad/internal/leveling"
	"github.com/dmitrijs2005/launchpad/internal/models"
	"github.com/dmitrijs2005/launchpad/internal/notify"
)

func (a *App) Profile(_ context.Context) error {
	u := a.accounts.CurrentUser()
	if u == nil {
		return nil
	}

	acts := u.Activities
	a.printf("%s <%s>\n", u.Name, u.Email)
	if u.Bio != "" {
		a.printf("\n%s\n", u.Bio)
	}
	a.printf("\nLevel %d, %d activities (%d quizzes, %d interviews, %d materials)\n",
		leveling.Level(acts), acts.Total(), acts.QuizzesCompleted, acts.InterviewsCompleted, acts.MaterialsCompleted)

	if len(u.Skills) > 0 {
		a.printf("Skills: %s\n", strings.Join(u.Skills, ", "))
	} else {
		a.printf("Skills: none yet (skill add <name>)\n")
	}
	if u.ProfilePicture != "" {
		a.printf("Avatar: set\n")
	}
	return nil
}

func (a *App) Name(ctx context.Context, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		a.printf("Usage: name <new name>\n")
		return nil
	}
	return a.updateProfile(ctx, models.ProfilePatch{Name: &name})
}

func (a *App) Bio(ctx context.Context) error {
	bio, err := GetMultiline(a.reader, "Tell us about yourself", a.out)
	if err != nil {
		return err
	}
	return a.updateProfile(ctx, models.ProfilePatch{Bio: &bio})
}

func (a *App) updateProfile(ctx context.Context, patch models.ProfilePatch) error {
	if err := a.accounts.UpdateProfile(ctx, patch); err != nil {
		a.notifier.Notify(ctx, notify.Notification{
			Title:       "Error",
			Description: "Failed to update profile.",
			Variant:     notify.VariantDestructive,
		})
		return err
	}
	a.notifier.Notify(ctx, notify.Notification{
		Title:       "Profile updated",
		Description: "Your profile has been updated successfully.",
	})
	return nil
}

// Skill handles "skill add <name>" and "skill rm <name>".
func (a *App) Skill(ctx context.Context, args []string) error {
	if len(args) < 2 {
		a.printf("Usage: skill add|rm <name>\n")
		return nil
	}
	skill := strings.Join(args[1:], " ")

	switch args[0] {
	case "add":
		err := a.accounts.AddSkill(ctx, skill)
		if errors.Is(err, account.ErrSkillExists) {
			a.notifier.Notify(ctx, notify.Notification{
				Title:       "Skill already exists",
				Description: "You've already added this skill.",
				Variant:     notify.VariantDestructive,
			})
			return nil
		}
		return err
	case "rm", "remove":
		return a.accounts.RemoveSkill(ctx, skill)
	default:
		a.printf("Usage: skill add|rm <name>\n")
		return nil
	}
}

func (a *App) Avatar(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.printf("Usage: avatar <image path>\n")
		return nil
	}

	err := a.accounts.SetAvatar(ctx, args[0])
	if errors.Is(err, account.ErrAvatarTooLarge) {
		a.notifier.Notify(ctx, notify.Notification{
			Title:       "Image too large",
			Description: "Please upload an image smaller than 1MB.",
			Variant:     notify.VariantDestructive,
		})
		return nil
	}
	if err != nil {
		return err
	}

	a.notifier.Notify(ctx, notify.Notification{
		Title:       "Profile updated",
		Description: "Your profile picture has been updated.",
	})
	return nil
}

func (a *App) Achievements(_ context.Context) error {
	u := a.accounts.CurrentUser()
	if u == nil {
		return nil
	}
	if len(u.Achievements) == 0 {
		a.printf("Complete activities to earn achievements.\n")
		return nil
	}
	for _, label := range u.Achievements {
		a.printf("  * %s\n", label)
	}
	return nil
}

func (a *App) Dashboard(_ context.Context) error {
	u := a.accounts.CurrentUser()
	if u == nil {
		return nil
	}
	d := dashboard.Build(*u)

	a.printf("Welcome back, %s!\n\n", d.Name)
	a.printf("Level %d  %s %.0f%%  (%d/%d activities to next level)\n",
		d.Level, progressBar(d.ProgressPercent, 20), d.ProgressPercent, d.Total, d.NextLevelAt)
	a.printf("Quizzes: %d  Interviews: %d  Materials: %d\n\n",
		d.Activities.QuizzesCompleted, d.Activities.InterviewsCompleted, d.Activities.MaterialsCompleted)

	a.printf("Recent achievements:\n")
	if len(d.RecentAchievements) == 0 {
		a.printf("  Complete activities to earn achievements\n")
	}
	for _, label := range d.RecentAchievements {
		a.printf("  * %s\n", label)
	}

	a.printf("\nSuggested next steps:\n")
	for _, s := range d.Suggestions {
		mark := " "
		if s.Completed {
			mark = "x"
		}
		a.printf("  [%s] %s: %s (%s)\n", mark, s.Title, s.Description, s.Command)
	}
	return nil
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = max(0, min(filled, width))
	return fmt.Sprintf("[%s%s]", strings.Repeat("#", filled), strings.Repeat(".", width-filled))
}
