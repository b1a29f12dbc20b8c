package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"schedexpr.dev/cmd/schedexpr/cmdutil"
	"schedexpr.dev/cmd/schedexpr/root"
	"schedexpr.dev/internal/userconfig"
)

var (
	dir             string
	viewAllSettings bool
)

var autoCompleteConfigKeys = cmdutil.AutoCompleteFromStaticList(userconfig.Keys()...)

var longDocs = `Gets or sets configuration values for customizing the behavior of schedexpr.

Configuration options can be set globally for the local user,
as well as for individual directories of job files.

Configuration options can be set using ` + bt("schedexpr config <key> <value>") + `,
and options can similarly be read using ` + bt("schedexpr config <key>") + `.

To set or get the configuration of a directory, use the ` + bt("--dir") + ` flag.
It is stored in ` + bt(".schedexpr/config") + ` inside the directory and overrides
the global configuration for job files in that directory.

Available configuration settings are:

` + userconfig.CLIDocs()

var configCmd = &cobra.Command{
	Use:   "config <key> [<value>]",
	Short: "Get or set a configuration value",
	Long:  longDocs,
	Args:  cobra.RangeArgs(0, 2),

	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 2 {
			var err error
			if dir != "" {
				err = userconfig.SetForDir(dir, args[0], args[1])
			} else {
				err = userconfig.SetGlobal(args[0], args[1])
			}
			if err != nil {
				cmdutil.Fatal(err)
			}
			return
		}

		cached := userconfig.Global()
		if dir != "" {
			cached = userconfig.ForDir(dir)
		}
		cfg, err := cached.Get()
		if err != nil {
			cmdutil.Fatal(err)
		}

		if viewAllSettings {
			if len(args) > 0 {
				cmdutil.Fatalf("cannot specify a settings key when using --all")
			}
			fmt.Println(strings.TrimSuffix(cfg.Render(), "\n"))
			return
		}

		if len(args) == 0 {
			// No args are only allowed when --all is specified.
			_ = cmd.Usage()
			os.Exit(1)
		}

		val, ok := cfg.GetByKey(args[0])
		if !ok {
			cmdutil.Fatalf("unknown key %q", args[0])
		}
		fmt.Printf("%v\n", val)
	},
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return autoCompleteConfigKeys(cmd, args, toComplete)
		}
		if typ, ok := userconfig.GetType(args[0]); ok && len(args) == 1 {
			var values []string
			for _, v := range typ.Oneof {
				values = append(values, userconfig.RenderValue(v))
			}
			return values, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
}

func init() {
	configCmd.Flags().BoolVar(&viewAllSettings, "all", false, "view all settings")
	configCmd.Flags().StringVar(&dir, "dir", "", "get or set the value for the job files in this directory")
	_ = configCmd.MarkFlagDirname("dir")

	root.Cmd.AddCommand(configCmd)
}

// bt renders a backtick-enclosed string.
func bt(val string) string {
	return fmt.Sprintf("`%s`", val)
}
