package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"schedexpr.dev/cmd/schedexpr/cmdutil"
	"schedexpr.dev/cmd/schedexpr/root"
	"schedexpr.dev/pkg/schedule"
)

var validateOutput = cmdutil.OutputFlag()

var validateCmd = &cobra.Command{
	Use:   "validate <expression...>",
	Short: "Reports every problem in a schedule expression",
	Long: `Reports every problem in a schedule expression.

Unlike parse, which stops at the first problem, validate lists all of them.
It exits with status 1 if there is at least one.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		expr := strings.Join(args, " ")
		format := validateOutput.Resolve(cmd, loadConfig("").OutputFormat)
		diags := newParser().Validate(expr)

		if format == "json" {
			cmdutil.PrintJSON(os.Stdout, struct {
				Expression  string                `json:"expression"`
				Valid       bool                  `json:"valid"`
				Diagnostics []schedule.Diagnostic `json:"diagnostics"`
			}{expr, len(diags) == 0, append([]schedule.Diagnostic{}, diags...)})
		} else if len(diags) == 0 {
			_, _ = color.New(color.FgGreen).Fprintln(os.Stdout, "valid")
		} else {
			for i, d := range diags {
				if i > 0 {
					fmt.Fprintln(os.Stderr)
				}
				cmdutil.RenderDiagnostic(os.Stderr, expr, d)
			}
		}

		if len(diags) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	validateOutput.AddFlag(validateCmd)
	root.Cmd.AddCommand(validateCmd)
}
