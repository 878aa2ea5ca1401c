package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/launchpad/internal/materials"
	"github.com/dmitrijs2005/launchpad/internal/notify"
)

// parseFilter reads "category:x", "difficulty:x", "done" and "todo" tokens;
// the remaining words form the search text.
func parseFilter(args []string) materials.Filter {
	var (
		f      materials.Filter
		search []string
	)
	for _, arg := range args {
		key, value, found := strings.Cut(strings.ToLower(arg), ":")
		switch {
		case found && key == "category":
			f.Category = materials.Category(value)
		case found && key == "difficulty":
			f.Difficulty = materials.Difficulty(value)
		case !found && key == "done":
			done := true
			f.Completed = &done
		case !found && key == "todo":
			todo := false
			f.Completed = &todo
		default:
			search = append(search, arg)
		}
	}
	f.Search = strings.Join(search, " ")
	return f
}

// Materials lists study materials matching the given filter words.
func (a *App) Materials(ctx context.Context, args []string) error {
	list, err := a.tracker.List(ctx, parseFilter(args))
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.printf("No materials found.\n")
		return nil
	}

	for _, m := range list {
		done, err := a.tracker.IsCompleted(ctx, m.ID)
		if err != nil {
			return err
		}
		mark := " "
		if done {
			mark = "x"
		}
		a.printf("  [%s] %-22s %s (%s, %s, %d min)\n", mark, m.ID, m.Title, m.Category, m.Difficulty, m.EstimatedMinutes)
	}
	return nil
}

// Read prints a material and records how long the user spent before
// pressing Enter.
func (a *App) Read(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.printf("Usage: read <id>\n")
		return nil
	}

	m, err := a.catalog.Find(args[0])
	if errors.Is(err, materials.ErrMaterialNotFound) {
		a.notifyNotFound(ctx)
		return nil
	}
	if err != nil {
		return err
	}

	a.printf("\n%s\n%s\n\n", m.Title, strings.Repeat("=", len(m.Title)))
	a.printf("%s | %s | %d min | %s\n\n", m.Category, m.Difficulty, m.EstimatedMinutes, strings.Join(m.Tags, ", "))
	a.printf("%s\n", m.Content)

	start := a.clock()
	if _, err := getSimpleText(a.reader, "Press Enter when you are done reading", a.out); err != nil {
		return err
	}

	if _, err := a.tracker.RecordReading(ctx, m.ID, a.clock().Sub(start)); err != nil {
		return err
	}
	total, err := a.tracker.ReadingTime(ctx, m.ID)
	if err != nil {
		return err
	}
	if total > 0 {
		a.printf("Total reading time: %d min\n", total)
	}
	return nil
}

// Complete toggles the completion mark of a material.
func (a *App) Complete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.printf("Usage: complete <id>\n")
		return nil
	}

	_, err := a.tracker.Toggle(ctx, args[0])
	if errors.Is(err, materials.ErrMaterialNotFound) {
		a.notifyNotFound(ctx)
		return nil
	}
	return err
}

func (a *App) notifyNotFound(ctx context.Context) {
	a.notifier.Notify(ctx, notify.Notification{
		Title:       "Material not found",
		Description: "The requested study material could not be found.",
		Variant:     notify.VariantDestructive,
	})
}
