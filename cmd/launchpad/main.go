package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/launchpad/internal/account"
	"github.com/dmitrijs2005/launchpad/internal/achievements"
	"github.com/dmitrijs2005/launchpad/internal/auth"
	"github.com/dmitrijs2005/launchpad/internal/buildinfo"
	"github.com/dmitrijs2005/launchpad/internal/cli"
	"github.com/dmitrijs2005/launchpad/internal/config"
	"github.com/dmitrijs2005/launchpad/internal/cryptox"
	"github.com/dmitrijs2005/launchpad/internal/db"
	"github.com/dmitrijs2005/launchpad/internal/logging"
	"github.com/dmitrijs2005/launchpad/internal/materials"
	"github.com/dmitrijs2005/launchpad/internal/notify"
	"github.com/dmitrijs2005/launchpad/internal/quiz"
	"github.com/dmitrijs2005/launchpad/internal/timex"
	"golang.org/x/crypto/bcrypt"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig(os.Args[1:])
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	store, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer store.Close()

	cipher, err := cryptox.NewCipher(cfg.SecretKey)
	if err != nil {
		log.Fatalf("init cipher: %v", err)
	}

	var sealer cryptox.Sealer = cryptox.NewCipherSealer(cipher)
	if cfg.SecurityMode == config.ModeHardened {
		sealer = cryptox.NewBcryptSealer(bcrypt.DefaultCost)
	}

	tokens, err := auth.NewCodec(cfg.SecurityMode, cipher, cfg.SecretKey, cfg.TokenTTL, timex.Now)
	if err != nil {
		log.Fatalf("init token codec: %v", err)
	}

	notifier := notify.Fanout{notify.NewConsole(os.Stdout)}
	if cfg.AMQPURL != "" {
		notifier = append(notifier, notify.NewAMQP(cfg.AMQPURL, logger))
	}

	accounts := account.NewStore(store, sealer, tokens, logger)
	accounts.Bootstrap(ctx)

	recorder := achievements.NewRecorder(accounts, notifier, logger)
	catalog := materials.DefaultCatalog()

	app := cli.NewApp(cli.Deps{
		Accounts:   accounts,
		Activities: recorder,
		Quizzes:    quiz.DefaultCatalog(),
		Attempts:   quiz.NewAttemptLog(store, logger),
		Materials:  catalog,
		Tracker:    materials.NewTracker(store, catalog, recorder, notifier, logger),
		Notifier:   notifier,
		Clock:      timex.Now,
		Log:        logger,
		In:         os.Stdin,
		Out:        os.Stdout,
	})

	app.Run(ctx)
}
