package cmdutil

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func Fatal(args ...any) {
	red := color.New(color.FgRed)
	_, _ = red.Fprint(os.Stderr, "error: ")
	_, _ = red.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func Fatalf(format string, args ...any) {
	Fatal(fmt.Sprintf(format, args...))
}
