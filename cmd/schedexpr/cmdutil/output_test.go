package cmdutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	qt "github.com/frankban/quicktest"
	"github.com/spf13/cobra"

	"schedexpr.dev/pkg/schedule"
)

func TestOneof(t *testing.T) {
	c := qt.New(t)
	o := OutputFlag()
	c.Assert(o.Usage(), qt.Equals, `Output format. One of ("text" or "json").`)
	c.Assert(o.Set("yaml"), qt.ErrorMatches, `must be one of "text" or "json"`)
	c.Assert(o.Set("json"), qt.IsNil)
	c.Assert(o.String(), qt.Equals, "json")
	c.Assert(o.Type(), qt.Equals, "output")

	three := &Oneof{Allowed: []string{"a", "b", "c"}, Flag: "mode", Desc: "Mode"}
	c.Assert(three.Usage(), qt.Equals, `Mode. One of ("a", "b", or "c").`)
	name, short := three.FlagName()
	c.Assert(name, qt.Equals, "mode")
	c.Assert(short, qt.Equals, "")
}

func TestOneofResolve(t *testing.T) {
	c := qt.New(t)

	newCmd := func() (*cobra.Command, *Oneof) {
		cmd := &cobra.Command{Use: "test"}
		o := OutputFlag()
		o.AddFlag(cmd)
		return cmd, o
	}

	cmd, o := newCmd()
	c.Assert(cmd.ParseFlags(nil), qt.IsNil)
	c.Assert(o.Resolve(cmd, "json"), qt.Equals, "json")
	c.Assert(o.Resolve(cmd, "bogus"), qt.Equals, "text")

	cmd, o = newCmd()
	c.Assert(cmd.ParseFlags([]string{"-o", "text"}), qt.IsNil)
	c.Assert(o.Resolve(cmd, "json"), qt.Equals, "text")
}

func TestRenderDiagnostic(t *testing.T) {
	c := qt.New(t)
	color.NoColor = true

	expr := "Every day at 25:00"
	var buf bytes.Buffer
	RenderDiagnostic(&buf, expr, schedule.Validate(expr)[0])
	c.Assert(buf.String(), qt.Equals, strings.Join([]string{
		"error[invalid_time]: Invalid time: hour must be 0-23 for 24-hour format, got 25",
		"  | every day at 25:00",
		"  |              ^^^^^",
		"",
	}, "\n"))

	buf.Reset()
	RenderDiagnostic(&buf, "every 120 minutes", schedule.Validate("every 120 minutes")[0])
	c.Assert(buf.String(), qt.Contains, "  |       ^^^^^^^^^^^\n")
	c.Assert(buf.String(), qt.Contains, "  = help: try \"every 2 hours\"\n")

	buf.Reset()
	RenderDiagnostic(&buf, "café every day at 25:00", schedule.Validate("café every day at 25:00")[0])
	c.Assert(buf.String(), qt.Contains, "  |                   ^^^^^\n")

	buf.Reset()
	RenderDiagnostic(&buf, "会议 every day at 25:00", schedule.Validate("会议 every day at 25:00")[0])
	c.Assert(buf.String(), qt.Contains, "  |                  ^^^^^\n")

	buf.Reset()
	RenderDiagnostic(&buf, "whenever", schedule.Validate("whenever")[0])
	c.Assert(buf.String(), qt.Not(qt.Contains), "^")
	c.Assert(buf.String(), qt.Contains, "  = note: Supported patterns include")
}

func TestPrintJSON(t *testing.T) {
	c := qt.New(t)
	var buf bytes.Buffer
	PrintJSON(&buf, struct {
		Cron       string `json:"cron"`
		Expression string `json:"expression"`
	}{"0 9 * * *", "every day at 9am & more"})
	c.Assert(buf.String(), qt.Equals, "{\n  \"cron\": \"0 9 * * *\",\n  \"expression\": \"every day at 9am & more\"\n}\n")
}
