package config

import (
	"flag"

	"github.com/dmitrijs2005/launchpad/internal/flagx"
	"github.com/dmitrijs2005/launchpad/internal/timex"
)

// parseFlags populates Config fields from command-line flags.
//
//	-s string   storage driver (sqlite|postgres|redis|memory)
//	-d string   storage DSN
//	-k string   secret key
//	-m string   security mode (legacy|hardened)
//	-t string   token TTL, e.g. 168h or 7d
//	-l string   log level
//	-f string   log format (text|json|pretty)
//	-q string   AMQP URL for notifications
//
// args is filtered with flagx.FilterArgs so flags owned by other layers
// (-c, -e) do not trip the parser.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-s", "-d", "-k", "-m", "-t", "-l", "-f", "-q"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "storage driver")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "storage DSN")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "secret key")
	fs.StringVar(&cfg.SecurityMode, "m", cfg.SecurityMode, "security mode")
	ttl := fs.String("t", "", "token TTL")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")
	fs.StringVar(&cfg.AMQPURL, "q", cfg.AMQPURL, "AMQP URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *ttl != "" {
		d, err := timex.ParseDuration(*ttl)
		if err != nil {
			panic(err)
		}
		cfg.TokenTTL = d
	}
}
