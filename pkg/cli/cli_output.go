package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	stdout io.Writer = color.Output
	stderr io.Writer = color.Error

	warn  = color.New(color.FgYellow)
	fatal = color.New(color.FgRed)
)

func Info(v ...any) {
	fmt.Fprintln(stdout, v...)
}

func Infof(format string, a ...any) {
	Info(fmt.Sprintf(format, a...))
}

func Warn(v ...any) {
	fmt.Fprintln(stderr, warn.Sprint(v...))
}

func Error(v ...any) {
	fmt.Fprintln(stderr, fatal.Sprint(v...))
}

func Errorf(format string, a ...any) {
	Error(fmt.Sprintf(format, a...))
}

func Fatal(v ...any) {
	Error(v...)
	os.Exit(1)
}

// SetOutput redirects console output, mainly for tests.
func SetOutput(out, err io.Writer) {
	stdout = out
	stderr = err
}
