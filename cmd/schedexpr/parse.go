package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"schedexpr.dev/cmd/schedexpr/cmdutil"
	"schedexpr.dev/cmd/schedexpr/root"
	"schedexpr.dev/pkg/schedule"
)

var parseOutput = cmdutil.OutputFlag()

var parseCmd = &cobra.Command{
	Use:   "parse <expression...>",
	Short: "Translates a schedule expression into a cron expression",
	Example: `  schedexpr parse every day at 9am
  schedexpr parse "mon, wed, fri at 8am"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		expr := strings.Join(args, " ")
		format := parseOutput.Resolve(cmd, loadConfig("").OutputFormat)
		cron, err := newParser().Parse(expr)

		if format == "json" {
			out := struct {
				Expression string               `json:"expression"`
				Cron       string               `json:"cron,omitempty"`
				Error      *schedule.Diagnostic `json:"error,omitempty"`
			}{Expression: expr, Cron: cron}
			if perr, ok := err.(*schedule.Error); ok {
				out.Error = &perr.Diagnostic
			}
			cmdutil.PrintJSON(os.Stdout, out)
		} else if err == nil {
			color.New(color.Bold).Println(cron)
		}

		if err != nil {
			if perr, ok := err.(*schedule.Error); ok && format != "json" {
				cmdutil.RenderDiagnostic(os.Stderr, expr, perr.Diagnostic)
			}
			os.Exit(1)
		}
	},
}

func init() {
	parseOutput.AddFlag(parseCmd)
	root.Cmd.AddCommand(parseCmd)
}
