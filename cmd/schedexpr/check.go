package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"schedexpr.dev/cmd/schedexpr/cmdutil"
	"schedexpr.dev/cmd/schedexpr/root"
	"schedexpr.dev/pkg/jobfile"
	"schedexpr.dev/pkg/schedule/schedcache"
)

var (
	checkConcurrency int
	checkOutput      = cmdutil.OutputFlag()
)

var checkCmd = &cobra.Command{
	Use:   "check <jobs.yaml>",
	Short: "Checks the schedules of a job file for errors",
	Long: `Checks the schedules of a job file for errors.

Jobs without a timezone run in the timezone config setting of the
directory holding the job file (see 'schedexpr config --dir').`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		cfg := loadConfig(filepath.Dir(path))
		format := checkOutput.Resolve(cmd, cfg.OutputFormat)

		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			cmdutil.Fatalf("invalid timezone config setting %q", cfg.Timezone)
		}
		f, err := jobfile.Load(path)
		if err != nil {
			cmdutil.Fatal(err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		results, err := jobfile.Check(ctx, f.Jobs,
			jobfile.WithCache(schedcache.New(newParser(), 0)),
			jobfile.WithConcurrency(checkConcurrency),
			jobfile.WithDefaultLocation(loc),
			jobfile.WithLogger(log.Logger),
		)
		if err != nil {
			cmdutil.Fatal(err)
		}

		failed := 0
		for i := range results {
			if !results[i].OK() {
				failed++
			}
		}
		if format == "json" {
			printCheckJSON(results)
		} else {
			printCheckText(path, results)
		}
		if failed > 0 {
			os.Exit(1)
		}
	},
}

func printCheckText(path string, results []jobfile.Result) {
	var (
		red   = color.New(color.FgRed)
		green = color.New(color.FgGreen)
		faint = color.New(color.Faint)
	)
	for i := range results {
		res := &results[i]
		if res.OK() {
			_, _ = green.Print("ok   ")
			fmt.Printf("%-24s %-16s ", res.Job.Name, res.Cron)
			_, _ = faint.Println(res.Location)
			continue
		}
		for _, p := range res.Problems() {
			_, _ = red.Print("FAIL ")
			fmt.Printf("%s:%d: %s: %s\n", path, res.Job.Line, res.Job.Name, p.Message())
			if help := p.Help(); help != "" {
				_, _ = faint.Printf("     help: %s\n", help)
			}
		}
	}
}

type jsonProblem struct {
	Code    int    `json:"code"`
	Kind    string `json:"type,omitempty"`
	Message string `json:"message"`
	Help    string `json:"help,omitempty"`
}

type jsonResult struct {
	jobfile.Job
	OK       bool          `json:"ok"`
	Cron     string        `json:"canonicalCron,omitempty"`
	Location string        `json:"location,omitempty"`
	Problems []jsonProblem `json:"problems,omitempty"`
}

func printCheckJSON(results []jobfile.Result) {
	out := make([]jsonResult, 0, len(results))
	for i := range results {
		res := &results[i]
		r := jsonResult{Job: res.Job, OK: res.OK(), Cron: res.Cron}
		if res.Location != nil {
			r.Location = res.Location.String()
		}
		for _, p := range res.Problems() {
			r.Problems = append(r.Problems, jsonProblem{Code: p.Code, Kind: p.Kind, Message: p.Message(), Help: p.Help()})
		}
		out = append(out, r)
	}
	cmdutil.PrintJSON(os.Stdout, out)
}

func init() {
	checkCmd.Flags().IntVar(&checkConcurrency, "concurrency", 8, "number of jobs to check at the same time")
	checkOutput.AddFlag(checkCmd)
	root.Cmd.AddCommand(checkCmd)
}
