package cmdutil

import (
	"errors"
	"io"
	"slices"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Oneof struct {
	Value       string
	Allowed     []string
	Flag        string // defaults to "output" if empty
	FlagShort   string // defaults to "o" if both Flag and FlagShort are empty
	Desc        string // usage desc
	TypeDesc    string // type description, defaults to the name of the flag
	NoOptDefVal string // default value when no option is provided
}

func (o *Oneof) AddFlag(cmd *cobra.Command) {
	name, short := o.FlagName()
	cmd.Flags().AddFlag(
		&pflag.Flag{
			Name:        name,
			NoOptDefVal: o.NoOptDefVal,
			Shorthand:   short,
			Usage:       o.Usage(),
			Value:       o,
			DefValue:    o.String(),
		})
	_ = cmd.RegisterFlagCompletionFunc(name, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return o.Allowed, cobra.ShellCompDirectiveNoFileComp
	})
}

func (o *Oneof) FlagName() (name, short string) {
	name, short = o.Flag, o.FlagShort
	if name == "" {
		name, short = "output", "o"
	}
	return name, short
}

func (o *Oneof) String() string {
	return o.Value
}

func (o *Oneof) Type() string {
	if o.TypeDesc != "" {
		return o.TypeDesc
	}
	name, _ := o.FlagName()
	return name
}

func (o *Oneof) Set(v string) error {
	if slices.Contains(o.Allowed, v) {
		o.Value = v
		return nil
	}

	var b strings.Builder
	b.WriteString("must be one of ")
	o.oneOf(&b)
	return errors.New(b.String())
}

func (o *Oneof) Usage() string {
	var b strings.Builder
	desc := o.Desc
	if desc == "" {
		desc = "Output format"
	}
	b.WriteString(desc + ". One of (")
	o.oneOf(&b)
	b.WriteString(").")
	return b.String()
}

// Resolve returns the flag value if it was given on the command line,
// and fallback otherwise.
func (o *Oneof) Resolve(cmd *cobra.Command, fallback string) string {
	name, _ := o.FlagName()
	if cmd.Flags().Changed(name) || !slices.Contains(o.Allowed, fallback) {
		return o.Value
	}
	return fallback
}

func (o *Oneof) oneOf(b *strings.Builder) {
	n := len(o.Allowed)
	for i, s := range o.Allowed {
		if i > 0 {
			switch {
			case n == 2:
				b.WriteString(" or ")
			case i == n-1:
				b.WriteString(", or ")
			default:
				b.WriteString(", ")
			}
		}

		b.WriteString(strconv.Quote(s))
	}
}

// OutputFlag returns the -o flag shared by commands that print results.
func OutputFlag() *Oneof {
	return &Oneof{
		Value:   "text",
		Allowed: []string{"text", "json"},
	}
}

var json = jsoniter.Config{
	EscapeHTML:    false,
	SortMapKeys:   true,
	IndentionStep: 2,
}.Froze()

// PrintJSON writes v to w as indented JSON.
func PrintJSON(w io.Writer, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		Fatalf("unable to marshal output: %v", err)
	}
	_, _ = w.Write(append(data, '\n'))
}
