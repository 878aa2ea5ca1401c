package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/launchpad/internal/account"
	"github.com/dmitrijs2005/launchpad/internal/common"
	"github.com/dmitrijs2005/launchpad/internal/notify"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Signup prompts for name, email and password, validates them and creates
// the account. The new account is signed in right away.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form := signupForm{Name: name, Email: email, Password: string(password)}
	if err := validateForm(form); err != nil {
		return err
	}

	if err := a.accounts.Signup(ctx, form.Email, form.Password, form.Name); err != nil {
		if errors.Is(err, account.ErrAccountExists) {
			a.notifier.Notify(ctx, notify.Notification{
				Title:       "Error",
				Description: "An account with this email already exists.",
				Variant:     notify.VariantDestructive,
			})
			return nil
		}
		return err
	}

	a.notifier.Notify(ctx, notify.Notification{
		Title:       "Account created!",
		Description: fmt.Sprintf("Welcome to Launchpad, %s.", form.Name),
	})
	return nil
}

// Login prompts for credentials and signs in. Wrong credentials are reported
// as a notification; the previous session, if any, is left alone.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form := loginForm{Email: email, Password: string(password)}
	if err := validateForm(form); err != nil {
		return err
	}

	if err := a.accounts.Login(ctx, form.Email, form.Password); err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			a.notifier.Notify(ctx, notify.Notification{
				Title:       "Error",
				Description: "Invalid email or password.",
				Variant:     notify.VariantDestructive,
			})
			return nil
		}
		return err
	}

	a.notifier.Notify(ctx, notify.Notification{
		Title:       "Welcome back!",
		Description: "You have been logged in successfully.",
	})
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.accounts.Logout(ctx); err != nil {
		return err
	}
	a.printf("Logged out.\n")
	return nil
}

func (a *App) Whoami(_ context.Context) error {
	u := a.accounts.CurrentUser()
	if u == nil {
		a.printf("Not logged in.\n")
		return nil
	}
	a.printf("%s <%s>\n", u.Name, u.Email)
	return nil
}
