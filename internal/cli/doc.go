// Package cli provides the interactive Launchpad terminal client.
//
// App wires the account store, quiz catalog, study materials and
// notifications behind a small REPL. Typical flow: restore the previous
// session, sign up or log in, then take quizzes, read materials and review
// progress on the dashboard.
//
// Commands:
//   - signup / login / logout / whoami
//   - profile, name, bio, skill add|rm, avatar, achievements, dashboard
//   - quiz [technical|aptitude|mixed], attempts
//   - materials [filters] [search], read <id>, complete <id>
//   - interview
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
