package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"schedexpr.dev/cmd/schedexpr/cmdutil"
	_ "schedexpr.dev/cmd/schedexpr/config"
	"schedexpr.dev/cmd/schedexpr/root"
	"schedexpr.dev/internal/userconfig"
	"schedexpr.dev/pkg/schedule"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newParser returns a parser that logs to the CLI's logger.
// It must be called after flags are parsed so the log level is set.
func newParser() *schedule.Parser {
	return schedule.New(schedule.WithLogger(log.With().Str("component", "schedule").Logger()))
}

// loadConfig loads the user config that applies to dir,
// or the global config if dir is empty.
func loadConfig(dir string) *userconfig.Config {
	cached := userconfig.Global()
	if dir != "" {
		cached = userconfig.ForDir(dir)
	}
	cfg, err := cached.Get()
	if err != nil {
		cmdutil.Fatal(err)
	}
	return cfg
}
