// Package flagx contains helpers for reading a handful of flags from os.Args
// without registering them on the global flag.CommandLine, so that several
// configuration layers can each pick the flags they own.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the allowed flags (and their values) from args.
//
// Both "-c conf.json" and "-c=conf.json" forms are recognised. A value is
// attached to a flag only when the following argument does not start with
// "-". The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// StringFlag returns the value of a string flag known under a short and a
// long name (without the leading dash), or "" when neither is present.
func StringFlag(args []string, short, long, usage string) string {
	var v string

	filtered := FilterArgs(args, []string{"-" + short, "-" + long, "--" + long})

	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&v, long, "", usage)
	fs.StringVar(&v, short, "", usage+" (short)")
	_ = fs.Parse(filtered)

	return v
}

// JsonConfigFlags returns the JSON config path given by -c or -config.
func JsonConfigFlags() string {
	return StringFlag(os.Args[1:], "c", "config", "path to JSON config file")
}

// EnvFileFlags returns the dotenv path given by -e or -env.
func EnvFileFlags() string {
	return StringFlag(os.Args[1:], "e", "env", "path to .env file")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
