package root

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var Verbosity int

var preRuns []func(cmd *cobra.Command, args []string)

// AddPreRun adds a function to be executed before the command runs.
func AddPreRun(f func(cmd *cobra.Command, args []string)) {
	preRuns = append(preRuns, f)
}

var Cmd = &cobra.Command{
	Use:           "schedexpr",
	Short:         "schedexpr turns human-written schedules into cron expressions",
	SilenceErrors: true, // We'll handle displaying an error in our main func
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true, // Hide the "completion" command from help (used for generating auto-completions for the shell)
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if Verbosity == 1 {
			level = zerolog.DebugLevel
		} else if Verbosity >= 2 {
			level = zerolog.TraceLevel
			zerolog.SetGlobalLevel(zerolog.TraceLevel)
		}
		log.Logger = log.Logger.Level(level)

		for _, f := range preRuns {
			f(cmd, args)
		}
	},
}

func init() {
	Cmd.PersistentFlags().CountVarP(&Verbosity, "verbose", "v", "verbose output (-vv for parser traces)")
}
