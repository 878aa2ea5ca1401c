package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printFn and printlnFn are test seams for REPL output.
var (
	printFn   = fmt.Print
	printlnFn = fmt.Println
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Profile(ctx context.Context) error
	Name(ctx context.Context, args []string) error
	Bio(ctx context.Context) error
	Skill(ctx context.Context, args []string) error
	Avatar(ctx context.Context, args []string) error
	Achievements(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Quiz(ctx context.Context, args []string) error
	Attempts(ctx context.Context) error
	Materials(ctx context.Context, args []string) error
	Read(ctx context.Context, args []string) error
	Complete(ctx context.Context, args []string) error
	Interview(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: signup, login, exit"
	helpSignedIn  = "Available commands: whoami, profile, name, bio, skill add|rm, avatar, achievements, dashboard, " +
		"quiz [technical|aptitude|mixed], attempts, materials [search], read <id>, complete <id>, interview, logout, exit"
)

// commands that work without a session
var publicCommands = map[string]bool{
	"help": true, "signup": true, "register": true, "login": true, "exit": true, "quit": true,
}

// runREPL reads a line, dispatches on its first word and prints any error
// the handler returns. It exits on end of input or on "exit" / "quit".
//
//	Signed out: help, signup, login, exit
//	Signed in:  everything else, see helpSignedIn
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("launchpad %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			printlnFn()
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if !publicCommands[cmd] && !a.isLoggedIn() {
			printlnFn("Please log in first (signup or login).")
			continue
		}

		if err := dispatch(ctx, a, cmd, args); err != nil {
			if errors.Is(err, errExit) {
				printlnFn("Bye!")
				return
			}
			printlnFn("Error:", err)
		}
	}
}

var errExit = errors.New("exit")

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpSignedIn)
		} else {
			printlnFn(helpSignedOut)
		}
		return nil
	case "signup", "register":
		return a.Signup(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.Whoami(ctx)
	case "profile":
		return a.Profile(ctx)
	case "name":
		return a.Name(ctx, args)
	case "bio":
		return a.Bio(ctx)
	case "skill":
		return a.Skill(ctx, args)
	case "avatar":
		return a.Avatar(ctx, args)
	case "achievements":
		return a.Achievements(ctx)
	case "dashboard":
		return a.Dashboard(ctx)
	case "quiz":
		return a.Quiz(ctx, args)
	case "attempts":
		return a.Attempts(ctx)
	case "materials", "m":
		return a.Materials(ctx, args)
	case "read":
		return a.Read(ctx, args)
	case "complete":
		return a.Complete(ctx, args)
	case "interview":
		return a.Interview(ctx)
	case "exit", "quit":
		return errExit
	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}
