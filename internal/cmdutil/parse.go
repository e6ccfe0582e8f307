package cmdutil

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"maskprep/internal/appshell"
	"maskprep/internal/clibase"
	"maskprep/internal/version"
	"maskprep/internal/writers"
)

// PrintTo writes the text produced by fn to w and returns code, or a runtime
// error code when the write fails. A closed pipe is not a failure.
func PrintTo(w, stderr io.Writer, code int, fn func(io.Writer)) int {
	bw := bufio.NewWriter(w)
	fn(bw)
	if err := bw.Flush(); writers.IsBrokenPipe(err) {
		return appshell.ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appshell.ExitRuntime
	}
	return code
}

// EarlyExit handles the ParseArgs outcomes that end a run before any work:
// help, examples, version, and usage errors. done is false when the tool
// should proceed.
func EarlyExit(name string, fs *flag.FlagSet, err error, showVersion bool, examples func(io.Writer, string), stdout, stderr io.Writer) (code int, done bool) {
	switch {
	case errors.Is(err, flag.ErrHelp):
		return PrintTo(stdout, stderr, appshell.ExitOK, func(w io.Writer) {
			fs.SetOutput(w)
			fs.Usage()
		}), true
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		return PrintTo(stdout, stderr, appshell.ExitOK, func(w io.Writer) { examples(w, name) }), true
	case err != nil:
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", name, err)
		_, _ = fmt.Fprintf(stderr, "Run '%s -h' for usage.\n", name)
		return appshell.ExitUsage, true
	case showVersion:
		return PrintTo(stdout, stderr, appshell.ExitOK, func(w io.Writer) {
			_, _ = fmt.Fprintf(w, "%s version %s\n", name, version.Version)
		}), true
	}
	return 0, false
}
