package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"schedexpr.dev/cmd/schedexpr/cmdutil"
	"schedexpr.dev/cmd/schedexpr/root"
	"schedexpr.dev/pkg/schedule"
)

var (
	nextCount    int
	nextTimezone string
	nextOutput   = cmdutil.OutputFlag()
)

var nextCmd = &cobra.Command{
	Use:   "next <expression...>",
	Short: "Lists the next times a schedule fires",
	Long: `Lists the next times a schedule fires.

The number of times and the timezone default to the next.count and
timezone config settings (see 'schedexpr config').`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		expr := strings.Join(args, " ")
		cfg := loadConfig("")
		format := nextOutput.Resolve(cmd, cfg.OutputFormat)

		n := cfg.NextCount
		if cmd.Flags().Changed("count") {
			n = nextCount
		}
		tz := cfg.Timezone
		if cmd.Flags().Changed("tz") {
			tz = nextTimezone
		}
		loc, err := time.LoadLocation(tz)
		if err != nil {
			cmdutil.Fatalf("unknown timezone %q", tz)
		}

		p := newParser()
		times, err := p.Upcoming(expr, time.Now(), loc, n)
		if err != nil {
			if perr, ok := err.(*schedule.Error); ok {
				cmdutil.RenderDiagnostic(os.Stderr, expr, perr.Diagnostic)
				os.Exit(1)
			}
			cmdutil.Fatal(err)
		}

		if format == "json" {
			cron, _ := p.Parse(expr)
			cmdutil.PrintJSON(os.Stdout, struct {
				Expression string      `json:"expression"`
				Cron       string      `json:"cron"`
				Timezone   string      `json:"timezone"`
				Times      []time.Time `json:"times"`
			}{expr, cron, loc.String(), append([]time.Time{}, times...)})
			return
		}
		for _, t := range times {
			fmt.Println(t.Format("Mon 2006-01-02 15:04 MST"))
		}
	},
}

func init() {
	nextCmd.Flags().IntVarP(&nextCount, "count", "n", 5, "number of times to list")
	nextCmd.Flags().StringVar(&nextTimezone, "tz", "UTC", "timezone to list the times in")
	nextOutput.AddFlag(nextCmd)
	root.Cmd.AddCommand(nextCmd)
}
